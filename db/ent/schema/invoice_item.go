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
)

type InvoiceItem struct{ ent.Schema }

func (InvoiceItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_items"},
	}
}

func (InvoiceItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("invoice_id", uuid.UUID{}),
		field.String("description").NotEmpty(),
		field.Float("quantity").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.String("unit").Default(constants.DefaultUnit),
		field.Float("unit_price").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("gst_rate").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.String("category_name").Default(constants.OtherCategory),
		field.Time("created_at").Default(time.Now),
	}
}

func (InvoiceItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY items -> ONE invoice (FK: invoice_items.invoice_id)
		edge.From("invoice", Invoice.Type).
			Ref("items").
			Field("invoice_id").
			Unique().
			Required(),
	}
}

func (InvoiceItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id"),
		// price history lookups: latest row per description
		index.Fields("description", "created_at"),
	}
}
