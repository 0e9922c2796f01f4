package blog

import "github.com/jsamuelsen11/blog-domain/internal/domain/model"

// FieldName is the category name field.
const FieldName = "name"

var categorySchema = model.NewSchema("category",
	model.Field{Name: model.PKField, Type: model.Int64},
	model.Field{Name: FieldName, Type: model.String, Required: true},
)

// Category groups posts by topic.
type Category struct {
	*model.Entity
}

// NewCategory validates attrs against the category schema.
func NewCategory(attrs ...model.Attr) (*Category, error) {
	e, err := model.New(categorySchema, attrs...)
	if err != nil {
		return nil, err
	}
	return &Category{Entity: e}, nil
}

// Name returns the category name.
func (c *Category) Name() string {
	return model.As[string](c.Get(FieldName))
}

func (c *Category) String() string {
	return "<Category: " + c.Name() + ">"
}
