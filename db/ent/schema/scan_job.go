package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"invoicedesk/constants"
	"invoicedesk/db/ent/schema/utils"
)

type ScanJob struct{ ent.Schema }

func (ScanJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "scan_job"},
	}
}

func (ScanJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("invoice_id", uuid.UUID{}).Optional().Nillable(),
		field.String("file_name").NotEmpty(),
		field.String("source_type").NotEmpty().
			Validate(utils.EnumValidator(constants.SourcePDF, constants.SourceImage)),
		field.String("status").
			Default(string(constants.ScanStatusQueued)).
			Validate(utils.EnumValidator(constants.ScanStatusValues()...)),
		field.String("ocr_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float32("confidence").Optional(),
		field.JSON("extracted_json", json.RawMessage{}).
			Optional(),
		field.JSON("review_issues", []string{}).
			Optional(),
		field.String("failure_message").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ScanJob) Edges() []ent.Edge {
	return []ent.Edge{
		// OPTIONAL: MANY scans -> ONE invoice, linked once approved
		edge.From("invoice", Invoice.Type).
			Ref("scans").
			Field("invoice_id").
			Unique(),
	}
}

func (ScanJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("invoice_id"),
	}
}
