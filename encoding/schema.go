package encoding

import "github.com/xeipuuv/gojsonschema"

// envelopeJSONSchema constrains the shape of a payment envelope before it is
// unmarshaled. Scheme and network values are only required to be non-empty
// strings here; whether they are recognized is decided by the validation
// layer.
const envelopeJSONSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["x402Version", "scheme", "network", "payload"],
  "properties": {
    "x402Version": {"type": "integer", "minimum": 1},
    "scheme": {"type": "string", "minLength": 1},
    "network": {"type": "string", "minLength": 1},
    "payload": {
      "type": "object",
      "properties": {
        "signature": {"type": "string"},
        "authorization": {
          "type": "object",
          "required": ["from", "to", "value", "validAfter", "validBefore", "nonce"],
          "properties": {
            "from": {"type": "string", "minLength": 1},
            "to": {"type": "string", "minLength": 1},
            "value": {"type": "string", "pattern": "^[0-9]+$"},
            "validAfter": {"type": "integer"},
            "validBefore": {"type": "integer"},
            "nonce": {"type": "string", "minLength": 1}
          }
        },
        "transaction": {"type": "string"},
        "signatures": {"type": "array", "items": {"type": "string"}}
      }
    }
  }
}`

var envelopeSchema = mustCompileSchema(envelopeJSONSchema)

func mustCompileSchema(source string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		panic("encoding: invalid envelope schema: " + err.Error())
	}
	return schema
}
