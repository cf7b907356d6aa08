package domain

// Category represents a named grouping for tasks.
// There is no hierarchy and names need not be unique.
type Category struct {
	ID   string
	Name string
}

// NewCategory creates a new Category with the given id and name.
func NewCategory(id string, name string) Category {
	return Category{ID: id, Name: name}
}

// IsValid checks if the category has valid data.
func (c Category) IsValid() bool {
	return c.ID != "" && c.Name != ""
}

// String returns the category name for display purposes.
func (c Category) String() string {
	return c.Name
}

// DefaultCategories returns the categories seeded on first run, before the
// user has persisted any of their own.
func DefaultCategories() []Category {
	return []Category{
		{ID: "work", Name: "Work"},
		{ID: "personal", Name: "Personal"},
		{ID: "health", Name: "Health"},
	}
}
