// Package appliance computes the values used to generate the Toil appliance
// Dockerfile: the configuration read from the environment, the Python
// interpreter the image targets, its apt dependencies and the message of the
// day.
package appliance

import (
	"os"
	"sort"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const (
	EnvApplianceSelf = "TOIL_APPLIANCE_SELF"
	EnvSdistName     = "_TOIL_SDIST_NAME"
	EnvPythonVersion = "_TOIL_PYTHON_VERSION"
	EnvPython        = "_TOIL_PYTHON"

	DefaultPythonCommand = "python3"
)

// Config holds the values the recipe is generated from.
// It is constructed once, from the environment, before anything is rendered.
type Config struct {
	// ApplianceSelf is the image reference the appliance uses to launch more
	// copies of itself, e.g. quay.io/ucsc_cgl/toil:6.0.0.
	ApplianceSelf string `env:"TOIL_APPLIANCE_SELF,required"`
	// SdistName is the file name of the Toil source distribution copied into
	// the image.
	SdistName string `env:"_TOIL_SDIST_NAME,required"`
	// PythonVersion selects the interpreter the image is built for.
	// When empty the version of PythonCommand on the host is used.
	PythonVersion string `env:"_TOIL_PYTHON_VERSION"`
	// PythonCommand is the interpreter probed when PythonVersion is empty.
	PythonCommand string `env:"_TOIL_PYTHON" envDefault:"python3"`
}

// LoadConfig reads the configuration from the provided environment.
// A required variable that is present but empty is accepted, only absence
// is an error.
func LoadConfig(environ map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, configError(err)
	}
	return &cfg, nil
}

// LoadConfigFromEnv is LoadConfig using the process environment.
func LoadConfigFromEnv() (*Config, error) {
	return LoadConfig(env.ToMap(os.Environ()))
}

func configError(err error) error {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return errors.Wrap(err, "error loading configuration")
	}

	var missing []string
	for _, e := range agg.Errors {
		var notSet env.EnvVarIsNotSetError
		if errors.As(e, &notSet) {
			missing = append(missing, notSet.Key)
		}
	}

	if len(missing) == 0 {
		return errors.Wrap(err, "error loading configuration")
	}

	sort.Strings(missing)
	return &MissingConfigError{Keys: missing}
}
