package appliance

import (
	"context"
	"testing"

	"github.com/goccy/go-yaml"
	"gotest.tools/v3/assert"
)

func TestNewValues(t *testing.T) {
	cfg := &Config{
		ApplianceSelf: "v6.0.0",
		SdistName:     "toil-6.0.0.tar.gz",
	}

	v := NewValues(context.Background(), cfg, Interpreter{3, 9})
	assert.Equal(t, v.ApplianceSelf, "v6.0.0")
	assert.Equal(t, v.SdistName, "toil-6.0.0.tar.gz")
	assert.Equal(t, v.Python, "python3.9")
	assert.Equal(t, v.Pip, "python3.9 -m pip")
	assert.DeepEqual(t, v.Dependencies, Dependencies(Interpreter{3, 9}))
	assert.Equal(t, v.MOTD, EscapeMOTD(MOTD("v6.0.0")))
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit version", func(t *testing.T) {
		v, err := Resolve(ctx, &Config{
			ApplianceSelf: "quay.io/ucsc_cgl/toil:6.0.0",
			SdistName:     "toil-6.0.0.tar.gz",
			PythonVersion: "3.10",
		})
		assert.NilError(t, err)
		assert.Equal(t, v.Python, "python3.10")
		assert.Equal(t, v.Pip, "python3.10 -m pip")
	})

	t.Run("invalid version", func(t *testing.T) {
		_, err := Resolve(ctx, &Config{PythonVersion: "latest"})
		assert.ErrorIs(t, err, ErrInvalidInterpreter)
	})

	t.Run("not an image reference", func(t *testing.T) {
		// Only logged, the recipe is still generated.
		v, err := Resolve(ctx, &Config{
			ApplianceSelf: "Not A Reference",
			SdistName:     "toil.tar.gz",
			PythonVersion: "3.9",
		})
		assert.NilError(t, err)
		assert.Equal(t, v.ApplianceSelf, "Not A Reference")
	})

	t.Run("deterministic", func(t *testing.T) {
		cfg := &Config{ApplianceSelf: "v6.0.0", SdistName: "toil-6.0.0.tar.gz", PythonVersion: "3.9"}
		v1, err := Resolve(ctx, cfg)
		assert.NilError(t, err)
		v2, err := Resolve(ctx, cfg)
		assert.NilError(t, err)
		assert.DeepEqual(t, v1, v2)
	})
}

func TestValuesYAML(t *testing.T) {
	v := NewValues(context.Background(), &Config{ApplianceSelf: "v6.0.0", SdistName: "toil-6.0.0.tar.gz"}, Interpreter{3, 8})

	dt, err := yaml.Marshal(v)
	assert.NilError(t, err)

	var fields map[string]any
	assert.NilError(t, yaml.Unmarshal(dt, &fields))
	for _, k := range []string{"applianceSelf", "sdistName", "python", "pip", "dependencies", "motd"} {
		_, ok := fields[k]
		assert.Check(t, ok, "missing field %q in:\n%s", k, dt)
	}
	assert.Equal(t, fields["pip"], "python3.8 -m pip")
}
