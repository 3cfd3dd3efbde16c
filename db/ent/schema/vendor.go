package schema

import (
	"errors"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

var reGSTIN = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z][A-Z][0-9A-Z]$`)

var errInvalidGSTIN = errors.New("invalid GSTIN")

type Vendor struct{ ent.Schema }

func (Vendor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vendors"},
	}
}

func (Vendor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty().Unique(),
		field.String("gstin").Optional().
			Validate(func(s string) error {
				if s == "" || reGSTIN.MatchString(s) {
					return nil
				}
				return errInvalidGSTIN
			}),
		field.String("phone").Optional(),
		field.String("address").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Vendor) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE vendor -> MANY invoices
		edge.To("invoices", Invoice.Type),
	}
}
