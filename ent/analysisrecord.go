// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/claimkit/nexusgrade/ent/analysisrecord"
)

// AnalysisRecord is the model entity for the AnalysisRecord schema.
type AnalysisRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID identifying this analysis run
	RunID string `json:"run_id,omitempty"`
	// SHA-256 of the normalized letter text
	Fingerprint string `json:"fingerprint,omitempty"`
	// Semver of the rule pack used
	RulesetVersion string `json:"ruleset_version,omitempty"`
	// Engine version that produced the record
	EngineVersion string `json:"engine_version,omitempty"`
	// Aggregate score 0-100
	Aggregate int `json:"aggregate,omitempty"`
	// Recommendation category
	Category string `json:"category,omitempty"`
	// Model that produced the assessor output, empty when none
	AssessorModel string `json:"assessor_model,omitempty"`
	// SHA-256 of the raw assessor payload, empty when none
	AssessorRef string `json:"assessor_ref,omitempty"`
	// Full analysis record as produced by the engine
	Record map[string]interface{} `json:"record,omitempty"`
	// zstd-compressed normalized letter text
	LetterZstd []byte `json:"letter_zstd,omitempty"`
	// UTC wall-clock time the record was saved
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisrecord.FieldRecord, analysisrecord.FieldLetterZstd:
			values[i] = new([]byte)
		case analysisrecord.FieldID, analysisrecord.FieldAggregate:
			values[i] = new(sql.NullInt64)
		case analysisrecord.FieldRunID, analysisrecord.FieldFingerprint, analysisrecord.FieldRulesetVersion, analysisrecord.FieldEngineVersion, analysisrecord.FieldCategory, analysisrecord.FieldAssessorModel, analysisrecord.FieldAssessorRef:
			values[i] = new(sql.NullString)
		case analysisrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisRecord fields.
func (_m *AnalysisRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case analysisrecord.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case analysisrecord.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case analysisrecord.FieldRulesetVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ruleset_version", values[i])
			} else if value.Valid {
				_m.RulesetVersion = value.String
			}
		case analysisrecord.FieldEngineVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engine_version", values[i])
			} else if value.Valid {
				_m.EngineVersion = value.String
			}
		case analysisrecord.FieldAggregate:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field aggregate", values[i])
			} else if value.Valid {
				_m.Aggregate = int(value.Int64)
			}
		case analysisrecord.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case analysisrecord.FieldAssessorModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessor_model", values[i])
			} else if value.Valid {
				_m.AssessorModel = value.String
			}
		case analysisrecord.FieldAssessorRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessor_ref", values[i])
			} else if value.Valid {
				_m.AssessorRef = value.String
			}
		case analysisrecord.FieldRecord:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field record", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Record); err != nil {
					return fmt.Errorf("unmarshal field record: %w", err)
				}
			}
		case analysisrecord.FieldLetterZstd:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field letter_zstd", values[i])
			} else if value != nil {
				_m.LetterZstd = *value
			}
		case analysisrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisRecord.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnalysisRecord.
// Note that you need to call AnalysisRecord.Unwrap() before calling this method if this AnalysisRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisRecord) Update() *AnalysisRecordUpdateOne {
	return NewAnalysisRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisRecord) Unwrap() *AnalysisRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("ruleset_version=")
	builder.WriteString(_m.RulesetVersion)
	builder.WriteString(", ")
	builder.WriteString("engine_version=")
	builder.WriteString(_m.EngineVersion)
	builder.WriteString(", ")
	builder.WriteString("aggregate=")
	builder.WriteString(fmt.Sprintf("%v", _m.Aggregate))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("assessor_model=")
	builder.WriteString(_m.AssessorModel)
	builder.WriteString(", ")
	builder.WriteString("assessor_ref=")
	builder.WriteString(_m.AssessorRef)
	builder.WriteString(", ")
	builder.WriteString("record=")
	builder.WriteString(fmt.Sprintf("%v", _m.Record))
	builder.WriteString(", ")
	builder.WriteString("letter_zstd=")
	builder.WriteString(fmt.Sprintf("%v", _m.LetterZstd))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisRecords is a parsable slice of AnalysisRecord.
type AnalysisRecords []*AnalysisRecord
