package assessor

import "github.com/claimkit/nexusgrade/internal/llm"

// AssessmentSchema defines the JSON schema for assessor responses.
// Property names match the rubric component identifiers.
var AssessmentSchema = &llm.Schema{
	Name:        "letter-assessment",
	Description: "Structured judgment of a nexus letter against the four rubric components",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"medical_opinion":     componentDef("a clear medical opinion with a calibrated probability statement"),
			"service_connection":  componentDef("an explicit link between the condition and a service event or exposure"),
			"medical_rationale":   componentDef("clinical reasoning that explains the causal mechanism"),
			"professional_format": componentDef("author credentials, signature, and professional letter structure"),
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Short notes on what the letter does well",
			},
			"weaknesses": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Short notes on what the letter is missing or doing poorly",
			},
		},
		"required": []any{
			"medical_opinion", "service_connection", "medical_rationale",
			"professional_format", "strengths", "weaknesses",
		},
		"additionalProperties": false,
	},
}

func componentDef(desc string) map[string]any {
	return map[string]any{
		"type":        "object",
		"description": "Judgment on whether the letter contains " + desc,
		"properties": map[string]any{
			"present": map[string]any{
				"type":        "boolean",
				"description": "Whether the component's substance appears in the letter",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Certainty of the present/absent call (0.0-1.0), not a quality grade",
			},
		},
		"required":             []any{"present", "confidence"},
		"additionalProperties": false,
	}
}
