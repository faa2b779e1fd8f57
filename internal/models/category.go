package models

// Spending categories available for transactions and budget allocations
const (
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryHousing       = "housing"
	CategoryUtilities     = "utilities"
	CategoryEntertainment = "entertainment"
	CategoryHealthcare    = "healthcare"
	CategoryEducation     = "education"
	CategoryShopping      = "shopping"
	CategoryTravel        = "travel"
	CategorySavings       = "savings"
	CategorySalary        = "salary"
	CategoryOther         = "other"
)

// AllCategories returns all valid category keys
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryHousing,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryHealthcare,
		CategoryEducation,
		CategoryShopping,
		CategoryTravel,
		CategorySavings,
		CategorySalary,
		CategoryOther,
	}
}

// IsValidCategory checks if a category key is valid
func IsValidCategory(category string) bool {
	for _, valid := range AllCategories() {
		if category == valid {
			return true
		}
	}
	return false
}
