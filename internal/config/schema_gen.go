//go:build ignore

// Regenerates schema.json:
//
//	go run schema_gen.go > schema.json
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

// SchemaConfig represents the root configuration for schema generation
type SchemaConfig struct {
	Namespace     *Namespace `json:"namespace,omitempty" jsonschema:"description=Prefixes used in generated code"`
	Words         []Word     `json:"words,omitempty" jsonschema:"description=Word completion targets"`
	Inserts       []Insert   `json:"inserts,omitempty" jsonschema:"description=Text blocks inserted at the caret"`
	FilterInserts bool       `json:"filter_inserts,omitempty" jsonschema:"default=true,description=Offer text inserts only when their name fuzzy matches the word under the caret"`
	LogLevel      string     `json:"log_level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,description=Default log level when --log-level is not given"`
}

// Namespace prefixes
type Namespace struct {
	Types  string `json:"types,omitempty" jsonschema:"minLength=1,description=Namespace of base classes and owner types"`
	Props  string `json:"props,omitempty" jsonschema:"minLength=1,description=Namespace of property constructors"`
	Keymap string `json:"keymap,omitempty" jsonschema:"minLength=1,description=Keymap variable used by keymap items"`
}

// Word is an identifier
type Word string

// JSONSchema restricts words to identifiers
func (Word) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:    "string",
		Pattern: "^[A-Za-z_][A-Za-z0-9_]*$",
	}
}

// Insert is a named text block
type Insert struct {
	Name string `json:"name" jsonschema:"required,minLength=1,description=Display name in the candidate list"`
	Text string `json:"text" jsonschema:"required,description=Inserted text"`
}

func main() {
	r := &jsonschema.Reflector{
		ExpandedStruct:             true,
		DoNotReference:             true,
		AllowAdditionalProperties:  false,
		RequiredFromJSONSchemaTags: true,
	}

	schema := r.Reflect(&SchemaConfig{})
	schema.Version = "http://json-schema.org/draft-07/schema#"
	schema.ID = "https://github.com/NikitaCOEUR/scriptcomplete/schema.json"
	schema.Title = "scriptcomplete configuration"

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal schema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
