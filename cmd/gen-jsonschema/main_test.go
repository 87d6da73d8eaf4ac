package main

import (
	"encoding/json"
	"testing"

	"gotest.tools/v3/assert"
)

func TestValuesSchema(t *testing.T) {
	dt, err := valuesSchema("./")
	assert.NilError(t, err)

	var schema struct {
		Title      string                    `json:"title"`
		Properties map[string]map[string]any `json:"properties"`
		Required   []string                  `json:"required"`
	}
	assert.NilError(t, json.Unmarshal(dt, &schema))
	assert.Equal(t, schema.Title, "Toil appliance Dockerfile values")

	for _, k := range []string{"applianceSelf", "sdistName", "python", "pip", "dependencies", "motd"} {
		_, ok := schema.Properties[k]
		assert.Check(t, ok, "missing property %q", k)
	}
	assert.Equal(t, schema.Properties["dependencies"]["type"], "array")
	assert.Equal(t, len(schema.Required), 6)
}
