package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned when a category tag does not match any
// of the known variants.
var ErrUnknownCategory = errors.New("unknown category")

// Category classifies a single expenditure. The wire form is the bare
// tag string, matched case-sensitively on input.
type Category string

// Spending categories
const (
	CategoryDining        Category = "Dining"
	CategoryGrocery       Category = "Grocery"
	CategoryTravel        Category = "Travel"
	CategoryMerchandise   Category = "Merchandise"
	CategoryEntertainment Category = "Entertainment"
	CategoryOther         Category = "Other"
)

// AllCategories returns all valid categories
func AllCategories() []Category {
	return []Category{
		CategoryDining,
		CategoryGrocery,
		CategoryTravel,
		CategoryMerchandise,
		CategoryEntertainment,
		CategoryOther,
	}
}

// IsValidCategory checks if a category value is one of the known variants
func IsValidCategory(category Category) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// String returns the stable display name, identical to the tag.
func (c Category) String() string {
	return string(c)
}

// MarshalJSON serializes the category as its bare tag string.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

// UnmarshalJSON decodes a bare tag string, rejecting unknown tags so
// that a bad category surfaces as a decode error.
func (c *Category) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	if !IsValidCategory(Category(tag)) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, tag)
	}
	*c = Category(tag)
	return nil
}
