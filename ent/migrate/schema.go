// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisRecordsColumns holds the columns for the "analysis_records" table.
	AnalysisRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "ruleset_version", Type: field.TypeString},
		{Name: "engine_version", Type: field.TypeString},
		{Name: "aggregate", Type: field.TypeInt},
		{Name: "category", Type: field.TypeString},
		{Name: "assessor_model", Type: field.TypeString, Default: ""},
		{Name: "assessor_ref", Type: field.TypeString, Default: ""},
		{Name: "record", Type: field.TypeJSON},
		{Name: "letter_zstd", Type: field.TypeBytes},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AnalysisRecordsTable holds the schema information for the "analysis_records" table.
	AnalysisRecordsTable = &schema.Table{
		Name:       "analysis_records",
		Columns:    AnalysisRecordsColumns,
		PrimaryKey: []*schema.Column{AnalysisRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisrecord_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{AnalysisRecordsColumns[2]},
			},
			{
				Name:    "analysisrecord_category",
				Unique:  false,
				Columns: []*schema.Column{AnalysisRecordsColumns[6]},
			},
			{
				Name:    "analysisrecord_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisRecordsColumns[11]},
			},
		},
	}
	// AssessorEventsColumns holds the columns for the "assessor_events" table.
	AssessorEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString, Default: ""},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// AssessorEventsTable holds the schema information for the "assessor_events" table.
	AssessorEventsTable = &schema.Table{
		Name:       "assessor_events",
		Columns:    AssessorEventsColumns,
		PrimaryKey: []*schema.Column{AssessorEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessorevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AssessorEventsColumns[1]},
			},
			{
				Name:    "assessorevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssessorEventsColumns[2]},
			},
			{
				Name:    "assessorevent_provider",
				Unique:  false,
				Columns: []*schema.Column{AssessorEventsColumns[3]},
			},
			{
				Name:    "assessorevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{AssessorEventsColumns[5]},
			},
			{
				Name:    "assessorevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{AssessorEventsColumns[6]},
			},
			{
				Name:    "assessorevent_success",
				Unique:  false,
				Columns: []*schema.Column{AssessorEventsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisRecordsTable,
		AssessorEventsTable,
	}
)

func init() {
}
