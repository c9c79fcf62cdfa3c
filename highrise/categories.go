package highrise

import (
	"context"
	"fmt"
	"time"

	"github.com/s0up4200/highton/record"
)

// CategoryKind selects the category flavour.
type CategoryKind string

const (
	CategoryTask CategoryKind = "task"
	CategoryDeal CategoryKind = "deal"
)

// ParseCategoryKind converts s into a CategoryKind.
func ParseCategoryKind(s string) (CategoryKind, error) {
	switch k := CategoryKind(s); k {
	case CategoryTask, CategoryDeal:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategoryKind, s)
	}
}

func (k CategoryKind) endpoint() string {
	return string(k) + "_categories"
}

// Category holds the fields shared by task and deal categories.
type Category struct {
	ID            int64     `json:"highrise_id" yaml:"highrise_id"`
	Name          string    `json:"name" yaml:"name"`
	AccountID     int64     `json:"account_id,omitempty" yaml:"account_id,omitempty"`
	Color         string    `json:"color,omitempty" yaml:"color,omitempty"`
	ElementsCount int64     `json:"elements_count" yaml:"elements_count"`
	CreatedAt     time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" yaml:"updated_at"`
}

// Attributes returns the flat field view keyed by local field name.
func (c *Category) Attributes() map[string]string {
	return categorySchema.attributes(c)
}

// Base returns the shared category values.
func (c *Category) Base() *Category {
	return c
}

// CategoryEntity is implemented by *TaskCategory and *DealCategory.
type CategoryEntity interface {
	Kind() CategoryKind
	Base() *Category
	Attributes() map[string]string
}

// TaskCategory is a category that can be assigned to tasks.
type TaskCategory struct {
	Category `yaml:",inline"`
}

// Kind implements CategoryEntity.
func (*TaskCategory) Kind() CategoryKind { return CategoryTask }

// DealCategory is a category that can be assigned to deals.
type DealCategory struct {
	Category `yaml:",inline"`
}

// Kind implements CategoryEntity.
func (*DealCategory) Kind() CategoryKind { return CategoryDeal }

var categorySchema = &schema[Category]{
	entity: "category",
	tag:    "category",
	scalars: []scalar[Category]{
		required(intField("id", func(c *Category) *int64 { return &c.ID })),
		required(stringField("name", func(c *Category) *string { return &c.Name })),
		timeField("updated-at", func(c *Category) *time.Time { return &c.UpdatedAt }),
		intField("account-id", func(c *Category) *int64 { return &c.AccountID }),
		stringField("color", func(c *Category) *string { return &c.Color }),
		timeField("created-at", func(c *Category) *time.Time { return &c.CreatedAt }),
		countField("elements-count", func(c *Category) *int64 { return &c.ElementsCount }),
	},
}

// mapCategory wraps an already decoded category in the flavour named by kind.
// The record itself never decides the flavour.
func mapCategory(kind CategoryKind, n *record.Node) (CategoryEntity, error) {
	base, err := categorySchema.decode(n)
	if err != nil {
		return nil, err
	}
	switch kind {
	case CategoryTask:
		return &TaskCategory{Category: *base}, nil
	case CategoryDeal:
		return &DealCategory{Category: *base}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategoryKind, kind)
	}
}

// GetCategories fetches the categories of the given kind.
func (c *Client) GetCategories(ctx context.Context, kind CategoryKind) ([]CategoryEntity, error) {
	if _, err := ParseCategoryKind(string(kind)); err != nil {
		return nil, err
	}

	nodes, err := c.getData(ctx, kind.endpoint())
	if err != nil {
		return nil, err
	}

	out := make([]CategoryEntity, 0, len(nodes))
	for i, n := range nodes {
		entity, err := mapCategory(kind, n)
		if err != nil {
			return nil, &MappingError{Entity: string(kind) + " category", Index: i, Err: err}
		}
		out = append(out, entity)
	}
	return out, nil
}

// GetTaskCategories fetches all task categories.
func (c *Client) GetTaskCategories(ctx context.Context) ([]*TaskCategory, error) {
	entities, err := c.GetCategories(ctx, CategoryTask)
	if err != nil {
		return nil, err
	}
	out := make([]*TaskCategory, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.(*TaskCategory))
	}
	return out, nil
}

// GetDealCategories fetches all deal categories.
func (c *Client) GetDealCategories(ctx context.Context) ([]*DealCategory, error) {
	entities, err := c.GetCategories(ctx, CategoryDeal)
	if err != nil {
		return nil, err
	}
	out := make([]*DealCategory, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.(*DealCategory))
	}
	return out, nil
}
