// Code generated by ent, DO NOT EDIT.

package analysisrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the analysisrecord type in the database.
	Label = "analysis_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldRulesetVersion holds the string denoting the ruleset_version field in the database.
	FieldRulesetVersion = "ruleset_version"
	// FieldEngineVersion holds the string denoting the engine_version field in the database.
	FieldEngineVersion = "engine_version"
	// FieldAggregate holds the string denoting the aggregate field in the database.
	FieldAggregate = "aggregate"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldAssessorModel holds the string denoting the assessor_model field in the database.
	FieldAssessorModel = "assessor_model"
	// FieldAssessorRef holds the string denoting the assessor_ref field in the database.
	FieldAssessorRef = "assessor_ref"
	// FieldRecord holds the string denoting the record field in the database.
	FieldRecord = "record"
	// FieldLetterZstd holds the string denoting the letter_zstd field in the database.
	FieldLetterZstd = "letter_zstd"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the analysisrecord in the database.
	Table = "analysis_records"
)

// Columns holds all SQL columns for analysisrecord fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldFingerprint,
	FieldRulesetVersion,
	FieldEngineVersion,
	FieldAggregate,
	FieldCategory,
	FieldAssessorModel,
	FieldAssessorRef,
	FieldRecord,
	FieldLetterZstd,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	FingerprintValidator func(string) error
	// DefaultAssessorModel holds the default value on creation for the "assessor_model" field.
	DefaultAssessorModel string
	// DefaultAssessorRef holds the default value on creation for the "assessor_ref" field.
	DefaultAssessorRef string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the AnalysisRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}

// ByRulesetVersion orders the results by the ruleset_version field.
func ByRulesetVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRulesetVersion, opts...).ToFunc()
}

// ByEngineVersion orders the results by the engine_version field.
func ByEngineVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngineVersion, opts...).ToFunc()
}

// ByAggregate orders the results by the aggregate field.
func ByAggregate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAggregate, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByAssessorModel orders the results by the assessor_model field.
func ByAssessorModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessorModel, opts...).ToFunc()
}

// ByAssessorRef orders the results by the assessor_ref field.
func ByAssessorRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessorRef, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
