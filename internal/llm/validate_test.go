package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-component",
		Description: "A test component judgment",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"component":  map[string]any{"type": "string", "enum": []any{"medical_opinion", "service_connection"}},
				"present":    map[string]any{"type": "boolean"},
				"confidence": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			},
			"required": []any{"component", "present"},
		},
	}
}

func TestValidate_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"component":"medical_opinion","present":true,"confidence":0.9}`)
	err := Validate(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"component":"service_connection","present":false}`)
	err := Validate(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"component":"medical_opinion"}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"component":"medical_opinion","present":"yes"}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"component":"penmanship","present":true}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_ConfidenceOutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"component":"medical_opinion","present":true,"confidence":1.5}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for out-of-range confidence")
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidate_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	err := Validate(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidate_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"judgment": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"present": map[string]any{"type": "boolean"},
					},
					"required": []any{"present"},
				},
				"strengths": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"judgment", "strengths"},
		},
	}

	valid := json.RawMessage(`{"judgment":{"present":true},"strengths":["clear opinion","cited records"]}`)
	if err := Validate(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"judgment":{"present":true},"strengths":[1,2]}`)
	if err := Validate(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
