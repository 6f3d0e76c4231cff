package models

// Category is a small tagging object records can reference by ID.
type Category struct {
	// ID is the unique identifier for the category (UUID format, except
	// seeded defaults which use stable well-known IDs).
	ID string `json:"id"`

	// Name is the display name, unique case-insensitively.
	Name string `json:"name"`

	// Color is a hex color for the UI chip.
	Color string `json:"color"`

	// Icon is a symbolic icon name.
	Icon string `json:"icon"`

	// IsDefault protects the category against deletion. Records with no
	// CategoryID fall back to the default category.
	IsDefault bool `json:"isDefault"`
}
