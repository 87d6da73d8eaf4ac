package appliance

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/google/shlex"
	"github.com/moby/buildkit/util/bklog"
	"github.com/pkg/errors"
)

// Interpreter identifies the Python the image is built around.
// Only the major and minor components affect the recipe.
type Interpreter struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
}

// Name is the interpreter executable and apt package name, e.g. python3.9.
func (i Interpreter) Name() string {
	return fmt.Sprintf("python%d.%d", i.Major, i.Minor)
}

// Pip is the command used to run pip for this interpreter.
// pip is always invoked as a module so packages land in this interpreter's
// site-packages rather than whichever python the pip script points at.
func (i Interpreter) Pip() string {
	return i.Name() + " -m pip"
}

func (i Interpreter) String() string {
	return fmt.Sprintf("%d.%d", i.Major, i.Minor)
}

// Larger major or minor versions are rejected rather than rendered.
const maxVersionComponent = 999

// ParseInterpreter parses a version such as "3.9" or "3.9.18".
func ParseInterpreter(s string) (Interpreter, error) {
	v, err := semver.NewVersion(strings.TrimSpace(s))
	if err != nil {
		return Interpreter{}, errors.Wrapf(ErrInvalidInterpreter, "%q: %v", s, err)
	}
	if v.Major() > maxVersionComponent || v.Minor() > maxVersionComponent {
		return Interpreter{}, errors.Wrapf(ErrInvalidInterpreter, "%q: version component out of range", s)
	}
	return Interpreter{Major: int(v.Major()), Minor: int(v.Minor())}, nil
}

const probeScript = `import sys; print("%d.%d" % sys.version_info[:2])`

// runCommand is swapped out in tests.
var runCommand = func(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// DetectInterpreter asks the given interpreter command for its version.
// The command is split using shell quoting rules, so wrappers such as
// "pyenv exec python" are supported.
func DetectInterpreter(ctx context.Context, command string) (Interpreter, error) {
	argv, err := shlex.Split(command)
	if err != nil {
		return Interpreter{}, errors.Wrapf(err, "error parsing interpreter command %q", command)
	}
	if len(argv) == 0 {
		return Interpreter{}, errors.Wrap(ErrInvalidInterpreter, "empty interpreter command")
	}

	argv = append(argv, "-c", probeScript)
	out, err := runCommand(ctx, argv[0], argv[1:]...)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return Interpreter{}, errors.Wrapf(err, "error probing interpreter %q: %s", command, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return Interpreter{}, errors.Wrapf(err, "error probing interpreter %q", command)
	}

	py, err := ParseInterpreter(string(out))
	if err != nil {
		return Interpreter{}, errors.Wrapf(err, "unexpected output from interpreter %q", command)
	}

	bklog.G(ctx).WithField("command", command).WithField("version", py.String()).Debug("detected interpreter")
	return py, nil
}

// ResolveInterpreter returns the interpreter selected by the configuration.
// An explicit version takes precedence over probing the host.
func ResolveInterpreter(ctx context.Context, cfg *Config) (Interpreter, error) {
	if cfg.PythonVersion != "" {
		return ParseInterpreter(cfg.PythonVersion)
	}

	cmd := cfg.PythonCommand
	if cmd == "" {
		cmd = DefaultPythonCommand
	}
	return DetectInterpreter(ctx, cmd)
}
