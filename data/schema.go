package data

import (
	"github.com/invopop/jsonschema"
)

// BoardConfigSchema returns the JSON schema of the board configuration file
func BoardConfigSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	schema := reflector.Reflect(&BoardConfig{})
	schema.Title = "Board Configuration"
	schema.Description = "Board size, tile variants and count ranges of the randomly placed categories."
	return schema
}
