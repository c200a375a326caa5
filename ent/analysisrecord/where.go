// Code generated by ent, DO NOT EDIT.

package analysisrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/claimkit/nexusgrade/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldRunID, v))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldFingerprint, v))
}

// RulesetVersion applies equality check predicate on the "ruleset_version" field. It's identical to RulesetVersionEQ.
func RulesetVersion(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldRulesetVersion, v))
}

// EngineVersion applies equality check predicate on the "engine_version" field. It's identical to EngineVersionEQ.
func EngineVersion(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldEngineVersion, v))
}

// Aggregate applies equality check predicate on the "aggregate" field. It's identical to AggregateEQ.
func Aggregate(v int) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldAggregate, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldCategory, v))
}

// AssessorModel applies equality check predicate on the "assessor_model" field. It's identical to AssessorModelEQ.
func AssessorModel(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldAssessorModel, v))
}

// AssessorRef applies equality check predicate on the "assessor_ref" field. It's identical to AssessorRefEQ.
func AssessorRef(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldAssessorRef, v))
}

// LetterZstd applies equality check predicate on the "letter_zstd" field. It's identical to LetterZstdEQ.
func LetterZstd(v []byte) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldLetterZstd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContainsFold(FieldRunID, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContainsFold(FieldFingerprint, v))
}

// RulesetVersionEQ applies the EQ predicate on the "ruleset_version" field.
func RulesetVersionEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldRulesetVersion, v))
}

// RulesetVersionNEQ applies the NEQ predicate on the "ruleset_version" field.
func RulesetVersionNEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldRulesetVersion, v))
}

// RulesetVersionIn applies the In predicate on the "ruleset_version" field.
func RulesetVersionIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldRulesetVersion, vs...))
}

// RulesetVersionNotIn applies the NotIn predicate on the "ruleset_version" field.
func RulesetVersionNotIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldRulesetVersion, vs...))
}

// RulesetVersionGT applies the GT predicate on the "ruleset_version" field.
func RulesetVersionGT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldRulesetVersion, v))
}

// RulesetVersionGTE applies the GTE predicate on the "ruleset_version" field.
func RulesetVersionGTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldRulesetVersion, v))
}

// RulesetVersionLT applies the LT predicate on the "ruleset_version" field.
func RulesetVersionLT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldRulesetVersion, v))
}

// RulesetVersionLTE applies the LTE predicate on the "ruleset_version" field.
func RulesetVersionLTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldRulesetVersion, v))
}

// RulesetVersionContains applies the Contains predicate on the "ruleset_version" field.
func RulesetVersionContains(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContains(FieldRulesetVersion, v))
}

// RulesetVersionHasPrefix applies the HasPrefix predicate on the "ruleset_version" field.
func RulesetVersionHasPrefix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasPrefix(FieldRulesetVersion, v))
}

// RulesetVersionHasSuffix applies the HasSuffix predicate on the "ruleset_version" field.
func RulesetVersionHasSuffix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasSuffix(FieldRulesetVersion, v))
}

// RulesetVersionEqualFold applies the EqualFold predicate on the "ruleset_version" field.
func RulesetVersionEqualFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEqualFold(FieldRulesetVersion, v))
}

// RulesetVersionContainsFold applies the ContainsFold predicate on the "ruleset_version" field.
func RulesetVersionContainsFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContainsFold(FieldRulesetVersion, v))
}

// EngineVersionEQ applies the EQ predicate on the "engine_version" field.
func EngineVersionEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldEngineVersion, v))
}

// EngineVersionNEQ applies the NEQ predicate on the "engine_version" field.
func EngineVersionNEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldEngineVersion, v))
}

// EngineVersionIn applies the In predicate on the "engine_version" field.
func EngineVersionIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldEngineVersion, vs...))
}

// EngineVersionNotIn applies the NotIn predicate on the "engine_version" field.
func EngineVersionNotIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldEngineVersion, vs...))
}

// EngineVersionGT applies the GT predicate on the "engine_version" field.
func EngineVersionGT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldEngineVersion, v))
}

// EngineVersionGTE applies the GTE predicate on the "engine_version" field.
func EngineVersionGTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldEngineVersion, v))
}

// EngineVersionLT applies the LT predicate on the "engine_version" field.
func EngineVersionLT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldEngineVersion, v))
}

// EngineVersionLTE applies the LTE predicate on the "engine_version" field.
func EngineVersionLTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldEngineVersion, v))
}

// EngineVersionContains applies the Contains predicate on the "engine_version" field.
func EngineVersionContains(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContains(FieldEngineVersion, v))
}

// EngineVersionHasPrefix applies the HasPrefix predicate on the "engine_version" field.
func EngineVersionHasPrefix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasPrefix(FieldEngineVersion, v))
}

// EngineVersionHasSuffix applies the HasSuffix predicate on the "engine_version" field.
func EngineVersionHasSuffix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasSuffix(FieldEngineVersion, v))
}

// EngineVersionEqualFold applies the EqualFold predicate on the "engine_version" field.
func EngineVersionEqualFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEqualFold(FieldEngineVersion, v))
}

// EngineVersionContainsFold applies the ContainsFold predicate on the "engine_version" field.
func EngineVersionContainsFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContainsFold(FieldEngineVersion, v))
}

// AggregateEQ applies the EQ predicate on the "aggregate" field.
func AggregateEQ(v int) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldAggregate, v))
}

// AggregateNEQ applies the NEQ predicate on the "aggregate" field.
func AggregateNEQ(v int) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldAggregate, v))
}

// AggregateIn applies the In predicate on the "aggregate" field.
func AggregateIn(vs ...int) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldAggregate, vs...))
}

// AggregateNotIn applies the NotIn predicate on the "aggregate" field.
func AggregateNotIn(vs ...int) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldAggregate, vs...))
}

// AggregateGT applies the GT predicate on the "aggregate" field.
func AggregateGT(v int) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldAggregate, v))
}

// AggregateGTE applies the GTE predicate on the "aggregate" field.
func AggregateGTE(v int) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldAggregate, v))
}

// AggregateLT applies the LT predicate on the "aggregate" field.
func AggregateLT(v int) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldAggregate, v))
}

// AggregateLTE applies the LTE predicate on the "aggregate" field.
func AggregateLTE(v int) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldAggregate, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContainsFold(FieldCategory, v))
}

// AssessorModelEQ applies the EQ predicate on the "assessor_model" field.
func AssessorModelEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldAssessorModel, v))
}

// AssessorModelNEQ applies the NEQ predicate on the "assessor_model" field.
func AssessorModelNEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldAssessorModel, v))
}

// AssessorModelIn applies the In predicate on the "assessor_model" field.
func AssessorModelIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldAssessorModel, vs...))
}

// AssessorModelNotIn applies the NotIn predicate on the "assessor_model" field.
func AssessorModelNotIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldAssessorModel, vs...))
}

// AssessorModelGT applies the GT predicate on the "assessor_model" field.
func AssessorModelGT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldAssessorModel, v))
}

// AssessorModelGTE applies the GTE predicate on the "assessor_model" field.
func AssessorModelGTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldAssessorModel, v))
}

// AssessorModelLT applies the LT predicate on the "assessor_model" field.
func AssessorModelLT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldAssessorModel, v))
}

// AssessorModelLTE applies the LTE predicate on the "assessor_model" field.
func AssessorModelLTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldAssessorModel, v))
}

// AssessorModelContains applies the Contains predicate on the "assessor_model" field.
func AssessorModelContains(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContains(FieldAssessorModel, v))
}

// AssessorModelHasPrefix applies the HasPrefix predicate on the "assessor_model" field.
func AssessorModelHasPrefix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasPrefix(FieldAssessorModel, v))
}

// AssessorModelHasSuffix applies the HasSuffix predicate on the "assessor_model" field.
func AssessorModelHasSuffix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasSuffix(FieldAssessorModel, v))
}

// AssessorModelEqualFold applies the EqualFold predicate on the "assessor_model" field.
func AssessorModelEqualFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEqualFold(FieldAssessorModel, v))
}

// AssessorModelContainsFold applies the ContainsFold predicate on the "assessor_model" field.
func AssessorModelContainsFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContainsFold(FieldAssessorModel, v))
}

// AssessorRefEQ applies the EQ predicate on the "assessor_ref" field.
func AssessorRefEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldAssessorRef, v))
}

// AssessorRefNEQ applies the NEQ predicate on the "assessor_ref" field.
func AssessorRefNEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldAssessorRef, v))
}

// AssessorRefIn applies the In predicate on the "assessor_ref" field.
func AssessorRefIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldAssessorRef, vs...))
}

// AssessorRefNotIn applies the NotIn predicate on the "assessor_ref" field.
func AssessorRefNotIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldAssessorRef, vs...))
}

// AssessorRefGT applies the GT predicate on the "assessor_ref" field.
func AssessorRefGT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldAssessorRef, v))
}

// AssessorRefGTE applies the GTE predicate on the "assessor_ref" field.
func AssessorRefGTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldAssessorRef, v))
}

// AssessorRefLT applies the LT predicate on the "assessor_ref" field.
func AssessorRefLT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldAssessorRef, v))
}

// AssessorRefLTE applies the LTE predicate on the "assessor_ref" field.
func AssessorRefLTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldAssessorRef, v))
}

// AssessorRefContains applies the Contains predicate on the "assessor_ref" field.
func AssessorRefContains(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContains(FieldAssessorRef, v))
}

// AssessorRefHasPrefix applies the HasPrefix predicate on the "assessor_ref" field.
func AssessorRefHasPrefix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasPrefix(FieldAssessorRef, v))
}

// AssessorRefHasSuffix applies the HasSuffix predicate on the "assessor_ref" field.
func AssessorRefHasSuffix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasSuffix(FieldAssessorRef, v))
}

// AssessorRefEqualFold applies the EqualFold predicate on the "assessor_ref" field.
func AssessorRefEqualFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEqualFold(FieldAssessorRef, v))
}

// AssessorRefContainsFold applies the ContainsFold predicate on the "assessor_ref" field.
func AssessorRefContainsFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContainsFold(FieldAssessorRef, v))
}

// LetterZstdEQ applies the EQ predicate on the "letter_zstd" field.
func LetterZstdEQ(v []byte) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldLetterZstd, v))
}

// LetterZstdNEQ applies the NEQ predicate on the "letter_zstd" field.
func LetterZstdNEQ(v []byte) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldLetterZstd, v))
}

// LetterZstdIn applies the In predicate on the "letter_zstd" field.
func LetterZstdIn(vs ...[]byte) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldLetterZstd, vs...))
}

// LetterZstdNotIn applies the NotIn predicate on the "letter_zstd" field.
func LetterZstdNotIn(vs ...[]byte) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldLetterZstd, vs...))
}

// LetterZstdGT applies the GT predicate on the "letter_zstd" field.
func LetterZstdGT(v []byte) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldLetterZstd, v))
}

// LetterZstdGTE applies the GTE predicate on the "letter_zstd" field.
func LetterZstdGTE(v []byte) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldLetterZstd, v))
}

// LetterZstdLT applies the LT predicate on the "letter_zstd" field.
func LetterZstdLT(v []byte) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldLetterZstd, v))
}

// LetterZstdLTE applies the LTE predicate on the "letter_zstd" field.
func LetterZstdLTE(v []byte) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldLetterZstd, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisRecord) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisRecord) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisRecord) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.NotPredicates(p))
}
