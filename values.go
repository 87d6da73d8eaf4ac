package appliance

import (
	"context"

	"github.com/distribution/reference"
	"github.com/moby/buildkit/util/bklog"
)

// Values is everything substituted into the appliance Dockerfile.
type Values struct {
	// ApplianceSelf is embedded in the image as TOIL_APPLIANCE_SELF.
	ApplianceSelf string `json:"applianceSelf" yaml:"applianceSelf" jsonschema:"required"`
	// SdistName is the Toil source distribution installed into the image.
	SdistName string `json:"sdistName" yaml:"sdistName" jsonschema:"required"`
	// Python is the interpreter executable, e.g. python3.9.
	Python string `json:"python" yaml:"python" jsonschema:"required"`
	// Pip is the command used to invoke pip for Python.
	Pip string `json:"pip" yaml:"pip" jsonschema:"required"`
	// Dependencies are the apt packages to install, in order.
	Dependencies []string `json:"dependencies" yaml:"dependencies" jsonschema:"required"`
	// MOTD is the message of the day, already escaped for printf.
	MOTD string `json:"motd" yaml:"motd" jsonschema:"required"`
}

// Resolve computes the recipe values from the configuration.
func Resolve(ctx context.Context, cfg *Config) (*Values, error) {
	py, err := ResolveInterpreter(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewValues(ctx, cfg, py), nil
}

// NewValues builds the recipe values for a known interpreter.
func NewValues(ctx context.Context, cfg *Config, py Interpreter) *Values {
	if _, err := reference.ParseNormalizedNamed(cfg.ApplianceSelf); err != nil {
		bklog.G(ctx).WithError(err).WithField(EnvApplianceSelf, cfg.ApplianceSelf).Warn("appliance self-reference is not a valid image reference")
	}

	return &Values{
		ApplianceSelf: cfg.ApplianceSelf,
		SdistName:     cfg.SdistName,
		Python:        py.Name(),
		Pip:           py.Pip(),
		Dependencies:  Dependencies(py),
		MOTD:          EscapeMOTD(MOTD(cfg.ApplianceSelf)),
	}
}
