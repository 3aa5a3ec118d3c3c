package scaffold

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// scaffoldSchemaURL names the embedded schema resource for compiler and
// error messages.
const scaffoldSchemaURL = "https://uxforge.dev/schemas/scaffold.schema.json"

// scaffoldSchema is the structural contract for scaffold documents. Ingest
// validates raw JSON against it before decoding, so everything downstream
// can trust shapes: rules never re-check that children is an array or that
// a grid's columns is an integer.
const scaffoldSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://uxforge.dev/schemas/scaffold.schema.json",
  "type": "object",
  "required": ["version", "root"],
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "settings": {
      "type": "object",
      "properties": {
        "viewportWidth": {"type": "integer", "minimum": 1},
        "gap": {"type": "integer", "minimum": 0},
        "padding": {"type": "integer", "minimum": 0},
        "breakpoints": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["maxWidth", "viewportWidth"],
            "properties": {
              "maxWidth": {"type": "integer", "minimum": 1},
              "viewportWidth": {"type": "integer", "minimum": 1}
            }
          }
        }
      }
    },
    "root": {"$ref": "#/$defs/node"}
  },
  "$defs": {
    "node": {
      "type": "object",
      "required": ["id", "type"],
      "properties": {
        "id": {"type": "string", "minLength": 1},
        "type": {"enum": ["stack", "grid", "box", "text", "button", "field", "form", "table"]},
        "visible": {"type": "boolean"},
        "affordances": {"type": "array", "items": {"type": "string"}},
        "behaviors": {
          "type": "object",
          "properties": {
            "disclosure": {
              "type": "object",
              "properties": {
                "collapsible": {"type": "boolean"},
                "defaultState": {"enum": ["collapsed", "expanded"]},
                "controlsId": {"type": "string"},
                "targetId": {"type": "string"}
              }
            }
          }
        }
      },
      "allOf": [
        {
          "if": {"properties": {"type": {"const": "stack"}}, "required": ["type"]},
          "then": {
            "properties": {
              "direction": {"enum": ["vertical", "horizontal"]},
              "children": {"type": "array", "items": {"$ref": "#/$defs/node"}}
            }
          }
        },
        {
          "if": {"properties": {"type": {"const": "grid"}}, "required": ["type"]},
          "then": {
            "properties": {
              "columns": {"type": "integer", "minimum": 1},
              "children": {"type": "array", "items": {"$ref": "#/$defs/node"}}
            }
          }
        },
        {
          "if": {"properties": {"type": {"const": "box"}}, "required": ["type"]},
          "then": {"properties": {"child": {"$ref": "#/$defs/node"}}}
        },
        {
          "if": {"properties": {"type": {"const": "text"}}, "required": ["type"]},
          "then": {"properties": {"text": {"type": "string"}}}
        },
        {
          "if": {"properties": {"type": {"const": "button"}}, "required": ["type"]},
          "then": {
            "properties": {
              "text": {"type": "string"},
              "roleHint": {"type": "string"}
            }
          }
        },
        {
          "if": {"properties": {"type": {"const": "field"}}, "required": ["type"]},
          "then": {
            "properties": {
              "label": {"type": "string"},
              "required": {"type": "boolean"}
            }
          }
        },
        {
          "if": {"properties": {"type": {"const": "form"}}, "required": ["type"]},
          "then": {
            "properties": {
              "fields": {"type": "array", "items": {"$ref": "#/$defs/node"}},
              "actions": {"type": "array", "items": {"$ref": "#/$defs/node"}}
            }
          }
        },
        {
          "if": {"properties": {"type": {"const": "table"}}, "required": ["type"]},
          "then": {"properties": {"columns": {"type": "array", "items": {"type": "string"}}}}
        }
      ]
    }
  }
}`

// compiledSchema is compiled once at package init; the schema is a static
// constant, so compilation cannot fail at runtime.
var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(scaffoldSchemaURL, strings.NewReader(scaffoldSchema)); err != nil {
		panic("scaffold: add schema resource: " + err.Error())
	}
	s, err := c.Compile(scaffoldSchemaURL)
	if err != nil {
		panic("scaffold: compile schema: " + err.Error())
	}
	return s
}
