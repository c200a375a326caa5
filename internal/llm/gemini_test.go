package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"present":    map[string]any{"type": "boolean"},
			"confidence": map[string]any{"type": "number"},
			"category":   map[string]any{"type": "string", "enum": []any{"auto_approve", "attorney_review", "revision_required"}},
			"weaknesses": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"present", "confidence"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["present"].Type != "BOOLEAN" {
		t.Fatalf("expected BOOLEAN for present, got %s", schema.Properties["present"].Type)
	}
	if schema.Properties["confidence"].Type != "NUMBER" {
		t.Fatalf("expected NUMBER for confidence, got %s", schema.Properties["confidence"].Type)
	}
	if len(schema.Properties["category"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["category"].Enum))
	}
	if schema.Properties["weaknesses"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for weaknesses, got %s", schema.Properties["weaknesses"].Type)
	}
	if schema.Properties["weaknesses"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for weaknesses items, got %s", schema.Properties["weaknesses"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
