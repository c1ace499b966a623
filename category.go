package expenselog

import "time"

// Category is a named grouping label attached to a transaction.
//
// Two categories with the same name are the same category for aggregation
// purposes, but the parser still creates one instance per row; see
// [Ledger.SetDefaultCategoryCreatedAts] for how the instances converge.
type Category struct {
	// Name identifies the category.
	Name string
	// CreatedAt is the earliest transaction timestamp bearing this name.
	// It is zero until the ledger derives it, and is set exactly once.
	CreatedAt time.Time
}

// NewCategory creates a category with no derived timestamp yet.
func NewCategory(name string) *Category {
	return &Category{Name: name}
}

// MarshalJSON renders the category in the output document shape.
func (c *Category) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", c.Name)
	w.Append("created_at", FormatStamp(c.CreatedAt))
	return w.MarshalJSON()
}
