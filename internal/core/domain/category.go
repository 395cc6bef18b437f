package domain

// CategoryUncategorized is assigned to transactions created without a category.
const CategoryUncategorized = "Uncategorized"

// CategoryMiscellaneous is the safe default when auto-categorization cannot
// produce a usable label.
const CategoryMiscellaneous = "Miscellaneous"

// Categories is the fixed, ordered vocabulary offered to the generative
// categorizer. Order matters: it is embedded verbatim in the prompt.
var Categories = []string{
	"Food & Drink",
	"Shopping",
	"Housing",
	"Transportation",
	"Entertainment",
	"Groceries",
	"Utilities",
	"Health & Wellness",
	"Travel",
	"Education",
	"Personal Care",
	"Gifts & Donations",
	"Kids",
	"Pets",
	"Business",
	"Investments",
	CategoryMiscellaneous,
}

var categorySet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Categories))
	for _, c := range Categories {
		m[c] = struct{}{}
	}
	return m
}()

// IsKnownCategory reports whether label is part of the fixed vocabulary.
func IsKnownCategory(label string) bool {
	_, ok := categorySet[label]
	return ok
}
