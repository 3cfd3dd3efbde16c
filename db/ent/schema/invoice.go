package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/shopspring/decimal"

	"github.com/google/uuid"

	"invoicedesk/constants"
	"invoicedesk/db/ent/schema/utils"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("vendor_id", uuid.UUID{}).Optional().Nillable(),
		field.String("invoice_number").NotEmpty(),
		field.Time("invoice_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("subtotal").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("cgst").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("sgst").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("cess").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total_amount").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("status").
			Default(string(constants.InvoiceStatusDraft)).
			Validate(utils.EnumValidator(constants.InvoiceStatusValues()...)),
		field.String("notes").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("tally_pushed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// OPTIONAL: MANY invoices -> ONE vendor (FK: invoices.vendor_id)
		edge.From("vendor", Vendor.Type).
			Ref("invoices").
			Field("vendor_id").
			Unique(),
		// ONE invoice -> MANY items
		edge.To("items", InvoiceItem.Type),
		// ONE invoice -> MANY scan jobs
		edge.To("scans", ScanJob.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_date"),
		index.Fields("vendor_id", "invoice_date"),
		index.Fields("invoice_number"),
	}
}
