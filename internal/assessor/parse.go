package assessor

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/claimkit/nexusgrade/internal/llm"
	"github.com/claimkit/nexusgrade/internal/rubric"
)

// ParseOutput extracts an Output from a raw assessor payload. It never
// fails: a malformed payload degrades to an Output with fewer (or no)
// valid component judgments, and the returned problems list describes
// what could not be used. Callers log the problems; the scorer handles
// the degradation through Output.For.
//
// Parsing is strict-first: a payload that passes schema validation is
// extracted with no problems. On validation failure each field is
// salvaged independently, so one garbled component does not discard
// the rest.
func ParseOutput(raw []byte) (*Output, []string) {
	out := &Output{
		Components: make(map[rubric.Component]ComponentAssessment, 4),
	}

	if len(raw) == 0 {
		return out, []string{"assessor payload is empty"}
	}
	out.Raw = append([]byte(nil), raw...)

	var problems []string
	if err := llm.Validate(AssessmentSchema, raw); err != nil {
		problems = append(problems, fmt.Sprintf("payload failed schema validation: %v", err))
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		problems = append(problems, "payload is not a JSON object")
		return out, problems
	}

	for _, c := range rubric.Components() {
		field := doc.Get(string(c))
		if !field.IsObject() {
			problems = append(problems, fmt.Sprintf("%s: no judgment object", c))
			continue
		}

		present := field.Get("present")
		if present.Type != gjson.True && present.Type != gjson.False {
			problems = append(problems, fmt.Sprintf("%s: present is not a boolean", c))
			continue
		}

		conf := field.Get("confidence")
		if conf.Type != gjson.Number || conf.Float() < 0 || conf.Float() > 1 {
			problems = append(problems, fmt.Sprintf("%s: confidence is not a number in [0,1]", c))
			continue
		}

		out.Components[c] = ComponentAssessment{
			Valid:      true,
			Present:    present.Bool(),
			Confidence: conf.Float(),
		}
	}

	// Notes are best-effort: keep string elements, drop the rest.
	for _, s := range doc.Get("strengths").Array() {
		if s.Type == gjson.String {
			out.Strengths = append(out.Strengths, s.String())
		}
	}
	for _, w := range doc.Get("weaknesses").Array() {
		if w.Type == gjson.String {
			out.Weaknesses = append(out.Weaknesses, w.String())
		}
	}

	return out, problems
}
