package core

// Suggested category tags per direction. Categories are free-form strings
// in storage; these sets only feed the form's suggestion list.
var (
	IncomeCategories  = []string{"salario", "investimentos", "outros"}
	ExpenseCategories = []string{"alimentacao", "moradia", "transporte", "lazer", "saude", "investimentos", "outros"}
)

var incomeIcons = map[string]string{
	"salario":       "briefcase",
	"investimentos": "bar-chart-2",
}

var expenseIcons = map[string]string{
	"alimentacao":   "shopping-cart",
	"moradia":       "home",
	"transporte":    "truck",
	"lazer":         "film",
	"saude":         "heart",
	"investimentos": "trending-down",
}

// CategoryIcon maps a category tag and direction to a presentational icon
// key. Unrecognized categories fall back to a generic icon per direction.
func CategoryIcon(category string, dir Direction) string {
	if dir == Income {
		if icon, ok := incomeIcons[category]; ok {
			return icon
		}
		return "dollar-sign"
	}
	if icon, ok := expenseIcons[category]; ok {
		return icon
	}
	return "tag"
}

// SuggestedCategories returns the suggestion set for a direction.
func SuggestedCategories(dir Direction) []string {
	if dir == Income {
		return append([]string(nil), IncomeCategories...)
	}
	return append([]string(nil), ExpenseCategories...)
}
