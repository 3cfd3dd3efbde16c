package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Subcategory is a named item kind under a category; matching walks these.
type Subcategory struct {
	ent.Schema
}

func (Subcategory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "subcategories"},
	}
}

func (Subcategory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("category_id", uuid.UUID{}),
		field.String("name").
			NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (Subcategory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category", Category.Type).
			Ref("subcategories").
			Field("category_id").
			Required().
			Unique(),
	}
}

func (Subcategory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_id", "name").Unique(),
	}
}
