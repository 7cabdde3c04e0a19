package advisor

import "encoding/json"

const suggestionsSchemaJSON = `{
  "type": "object",
  "properties": {
    "suggestions": {
      "type": "array",
      "description": "Array of 3-5 action suggestions",
      "minItems": 3,
      "maxItems": 5,
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string"},
          "rationale": {"type": "string"},
          "effort": {"type": "string", "enum": ["S", "M", "L"]}
        },
        "required": ["title", "rationale", "effort"],
        "additionalProperties": false
      }
    }
  },
  "required": ["suggestions"],
  "additionalProperties": false
}`

const summarySchemaJSON = `{
  "type": "object",
  "properties": {
    "bullets": {
      "type": "array",
      "items": {"type": "string"},
      "description": "Key summary points",
      "minItems": 3,
      "maxItems": 5
    },
    "confidence": {
      "type": "integer",
      "minimum": 1,
      "maximum": 5,
      "description": "Confidence level from 1 (low) to 5 (high)"
    },
    "risk_tag": {
      "type": "string",
      "enum": ["on_track", "at_risk", "off_track"],
      "description": "Risk assessment tag"
    }
  },
  "required": ["bullets", "confidence", "risk_tag"],
  "additionalProperties": false
}`

func suggestionsResponseFormat() *responseFormat {
	return &responseFormat{
		Type: "json_schema",
		JSONSchema: jsonSchemaSpec{
			Name:   "action_suggestions",
			Strict: true,
			Schema: json.RawMessage(suggestionsSchemaJSON),
		},
	}
}

func summaryResponseFormat() *responseFormat {
	return &responseFormat{
		Type: "json_schema",
		JSONSchema: jsonSchemaSpec{
			Name:   "checkin_summary",
			Strict: true,
			Schema: json.RawMessage(summarySchemaJSON),
		},
	}
}
