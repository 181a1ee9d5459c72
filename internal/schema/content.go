package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Content is a CMS record for marketing surfaces: FAQs, articles, facilities.
type Content struct {
	ent.Schema
}

func (Content) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Content) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("kind").
			Values("faq", "article", "facility"),

		field.String("slug").
			NotEmpty().
			Unique().
			MaxLen(200),

		field.String("title").
			NotEmpty().
			MaxLen(300),

		field.Text("body"),

		field.JSON("tags", []string{}).
			Default([]string{}),

		field.Bool("is_published").
			Default(false),

		field.Int("sort_order").
			Default(0).
			Comment("Ascending display order within a kind"),
	}
}

func (Content) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "is_published", "sort_order"),
	}
}
