// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/claimkit/nexusgrade/ent/analysisrecord"
	"github.com/claimkit/nexusgrade/ent/assessorevent"
	"github.com/claimkit/nexusgrade/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisrecordFields := schema.AnalysisRecord{}.Fields()
	_ = analysisrecordFields
	// analysisrecordDescFingerprint is the schema descriptor for fingerprint field.
	analysisrecordDescFingerprint := analysisrecordFields[1].Descriptor()
	// analysisrecord.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	analysisrecord.FingerprintValidator = analysisrecordDescFingerprint.Validators[0].(func(string) error)
	// analysisrecordDescAssessorModel is the schema descriptor for assessor_model field.
	analysisrecordDescAssessorModel := analysisrecordFields[6].Descriptor()
	// analysisrecord.DefaultAssessorModel holds the default value on creation for the assessor_model field.
	analysisrecord.DefaultAssessorModel = analysisrecordDescAssessorModel.Default.(string)
	// analysisrecordDescAssessorRef is the schema descriptor for assessor_ref field.
	analysisrecordDescAssessorRef := analysisrecordFields[7].Descriptor()
	// analysisrecord.DefaultAssessorRef holds the default value on creation for the assessor_ref field.
	analysisrecord.DefaultAssessorRef = analysisrecordDescAssessorRef.Default.(string)
	// analysisrecordDescCreatedAt is the schema descriptor for created_at field.
	analysisrecordDescCreatedAt := analysisrecordFields[10].Descriptor()
	// analysisrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysisrecord.DefaultCreatedAt = analysisrecordDescCreatedAt.Default.(func() time.Time)
	assessoreventMixin := schema.AssessorEvent{}.Mixin()
	assessoreventMixinFields0 := assessoreventMixin[0].Fields()
	_ = assessoreventMixinFields0
	assessoreventFields := schema.AssessorEvent{}.Fields()
	_ = assessoreventFields
	// assessoreventDescTimestamp is the schema descriptor for timestamp field.
	assessoreventDescTimestamp := assessoreventMixinFields0[1].Descriptor()
	// assessorevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessorevent.DefaultTimestamp = assessoreventDescTimestamp.Default.(func() time.Time)
	// assessoreventDescRunID is the schema descriptor for run_id field.
	assessoreventDescRunID := assessoreventFields[3].Descriptor()
	// assessorevent.DefaultRunID holds the default value on creation for the run_id field.
	assessorevent.DefaultRunID = assessoreventDescRunID.Default.(string)
	// assessoreventDescInputTokens is the schema descriptor for input_tokens field.
	assessoreventDescInputTokens := assessoreventFields[4].Descriptor()
	// assessorevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	assessorevent.DefaultInputTokens = assessoreventDescInputTokens.Default.(int)
	// assessoreventDescOutputTokens is the schema descriptor for output_tokens field.
	assessoreventDescOutputTokens := assessoreventFields[5].Descriptor()
	// assessorevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	assessorevent.DefaultOutputTokens = assessoreventDescOutputTokens.Default.(int)
	// assessoreventDescLatencyMs is the schema descriptor for latency_ms field.
	assessoreventDescLatencyMs := assessoreventFields[6].Descriptor()
	// assessorevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	assessorevent.DefaultLatencyMs = assessoreventDescLatencyMs.Default.(int64)
	// assessoreventDescErrorMessage is the schema descriptor for error_message field.
	assessoreventDescErrorMessage := assessoreventFields[8].Descriptor()
	// assessorevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	assessorevent.DefaultErrorMessage = assessoreventDescErrorMessage.Default.(string)
	// assessoreventDescRequestBody is the schema descriptor for request_body field.
	assessoreventDescRequestBody := assessoreventFields[9].Descriptor()
	// assessorevent.DefaultRequestBody holds the default value on creation for the request_body field.
	assessorevent.DefaultRequestBody = assessoreventDescRequestBody.Default.(string)
	// assessoreventDescResponseBody is the schema descriptor for response_body field.
	assessoreventDescResponseBody := assessoreventFields[10].Descriptor()
	// assessorevent.DefaultResponseBody holds the default value on creation for the response_body field.
	assessorevent.DefaultResponseBody = assessoreventDescResponseBody.Default.(string)
}
