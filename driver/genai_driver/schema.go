package genai_driver

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"gameshub/domain"
)

const quizSchemaJSON = `{
  "type": "object",
  "required": ["title", "questions"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["question", "options", "answer_index"],
        "properties": {
          "question": {"type": "string", "minLength": 1},
          "options": {
            "type": "array",
            "minItems": 4,
            "maxItems": 4,
            "items": {"type": "string", "minLength": 1}
          },
          "answer_index": {"type": "integer", "minimum": 0, "maximum": 3},
          "explanation": {"type": "string"}
        }
      }
    }
  }
}`

const hangmanSchemaJSON = `{
  "type": "object",
  "required": ["words"],
  "properties": {
    "words": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["word", "hint"],
        "properties": {
          "word": {"type": "string", "minLength": 3, "maxLength": 24, "pattern": "^\\p{L}+$"},
          "hint": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

// payloadSchemas holds one compiled schema per provider-generated game type.
var payloadSchemas = mustLoadSchemas(map[domain.GameType]string{
	domain.GameTypeQuiz:    quizSchemaJSON,
	domain.GameTypeHangman: hangmanSchemaJSON,
})

func mustLoadSchemas(raw map[domain.GameType]string) map[domain.GameType]*openapi3.Schema {
	out := make(map[domain.GameType]*openapi3.Schema, len(raw))
	for gameType, doc := range raw {
		schema := &openapi3.Schema{}
		if err := json.Unmarshal([]byte(doc), schema); err != nil {
			panic(fmt.Sprintf("invalid %s schema: %v", gameType, err))
		}
		out[gameType] = schema
	}
	return out
}

// validateAgainstSchema decodes raw into a generic value and checks it
// against the game type's schema.
func validateAgainstSchema(gameType domain.GameType, raw []byte) error {
	schema, ok := payloadSchemas[gameType]
	if !ok {
		return fmt.Errorf("no schema for game type %q", gameType)
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("reply is not JSON: %w", err)
	}

	if err := schema.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("reply does not match %s schema: %w", gameType, err)
	}
	return nil
}
