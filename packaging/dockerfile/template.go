// Package dockerfile renders the Toil appliance Dockerfile.
package dockerfile

import (
	"bytes"
	_ "embed"
	"io"
	"text/template"

	"github.com/DataBiosphere/toil/appliance"
	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
)

var (
	//go:embed templates/Dockerfile.tmpl
	dockerfileTmplContent string

	dockerfileTmpl = template.Must(
		template.New("Dockerfile").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(dockerfileTmplContent),
	)
)

// WriteDockerfile renders the recipe for v into w.
// Nothing is written to w unless the whole recipe rendered.
func WriteDockerfile(w io.Writer, v *appliance.Values) error {
	dt, err := Render(v)
	if err != nil {
		return err
	}
	_, err = w.Write(dt)
	return errors.Wrap(err, "error writing Dockerfile")
}

// Render returns the rendered recipe for v.
func Render(v *appliance.Values) ([]byte, error) {
	if v == nil {
		return nil, errors.New("no values to render")
	}

	buf := bytes.NewBuffer(nil)
	if err := dockerfileTmpl.Execute(buf, v); err != nil {
		return nil, errors.Wrap(err, "error rendering Dockerfile")
	}
	return buf.Bytes(), nil
}
