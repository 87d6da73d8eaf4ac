package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DataBiosphere/toil/appliance"
	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
)

const pkgPath = "github.com/DataBiosphere/toil/appliance"

// Must be run from the module root so doc comments can be found, e.g.
//
//	go run ./cmd/gen-jsonschema docs/values.schema.json
func main() {
	flag.Parse()

	if err := run("./", flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run(root, out string) error {
	dt, err := valuesSchema(root)
	if err != nil {
		return err
	}

	if out == "" {
		_, err := fmt.Println(string(dt))
		return err
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return errors.Wrap(err, "error creating output directory")
	}
	return errors.Wrap(os.WriteFile(out, dt, 0o644), "error writing schema")
}

// valuesSchema describes the document printed by `toil-dockerfile values`.
func valuesSchema(root string) ([]byte, error) {
	r := jsonschema.Reflector{
		DoNotReference: true,
	}
	if err := r.AddGoComments(pkgPath, root); err != nil {
		return nil, errors.Wrap(err, "error loading doc comments")
	}

	schema := r.Reflect(&appliance.Values{})
	schema.Title = "Toil appliance Dockerfile values"

	dt, err := json.MarshalIndent(schema, "", "\t")
	return dt, errors.Wrap(err, "error marshalling schema")
}
