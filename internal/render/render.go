// Package render turns aggregates into what the UI collaborators consume:
// formatted currency and date strings, list rows with icon keys, and the
// two chart-ready datasets.
package render

import (
	"fmt"
	"strconv"

	"financas/internal/aggregate"
	"financas/internal/core"
)

// CurrencyMarker prefixes every formatted amount.
const CurrencyMarker = "R$"

var categoryPalette = []string{
	"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0",
	"#9966FF", "#FF9F40", "#E7E9ED", "#8B008B",
}

type (
	// Dashboard holds the three formatted headline numbers.
	Dashboard struct {
		Balance  string
		Income   string
		Expenses string
	}

	// ListRow is one rendered transaction of the filtered list.
	ListRow struct {
		ID          string
		Description string
		Category    string
		DateLabel   string
		Icon        string
		Direction   core.Direction
		Sign        string
		Value       string
	}

	// ChartStyle carries the theme-dependent color parameters.
	ChartStyle struct {
		Border string `json:"border"`
		Legend string `json:"legend"`
		Grid   string `json:"grid"`
	}

	// CategoryChart is the expense proportion dataset.
	CategoryChart struct {
		Labels []string   `json:"labels"`
		Values []float64  `json:"values"`
		Colors []string   `json:"colors"`
		Style  ChartStyle `json:"style"`
	}

	// FlowChart is the 30-day trend dataset: one label and one income and
	// expense value per day.
	FlowChart struct {
		Labels  []string   `json:"labels"`
		Income  []float64  `json:"income"`
		Expense []float64  `json:"expense"`
		Style   ChartStyle `json:"style"`
	}
)

// FormatCurrency renders cents as "R$ 1.234,56" with pt-BR separators.
// Negative values keep the sign after the marker, as the original UI did.
func FormatCurrency(m core.Money) string {
	cents := m.Cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100
	return CurrencyMarker + " " + sign + groupThousands(whole) + "," + fmt.Sprintf("%02d", frac)
}

func groupThousands(v int64) string {
	digits := strconv.FormatInt(v, 10)
	n := len(digits)
	if n <= 3 {
		return digits
	}
	out := make([]byte, 0, n+n/3)
	lead := n % 3
	if lead > 0 {
		out = append(out, digits[:lead]...)
	}
	for i := lead; i < n; i += 3 {
		if len(out) > 0 {
			out = append(out, '.')
		}
		out = append(out, digits[i:i+3]...)
	}
	return string(out)
}

// FormatDate renders a date as dd/mm/yyyy.
func FormatDate(d core.Date) string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day(), int(d.Month()), d.Year())
}

// FlowLabel renders the short dd/mm axis label of a flow point.
func FlowLabel(d core.Date) string {
	return fmt.Sprintf("%02d/%02d", d.Day(), int(d.Month()))
}

// StyleFor returns the chart color parameters for a theme.
func StyleFor(theme core.Theme) ChartStyle {
	if theme == core.ThemeDark {
		return ChartStyle{Border: "#1e1e1e", Legend: "#f1f1f1", Grid: "#333"}
	}
	return ChartStyle{Border: "#ffffff", Legend: "#0a0a0a", Grid: "#eee"}
}

// NewDashboard formats the totals. Expenses display as absolute value.
func NewDashboard(t aggregate.Totals) Dashboard {
	return Dashboard{
		Balance:  FormatCurrency(t.Balance),
		Income:   FormatCurrency(t.Income),
		Expenses: FormatCurrency(t.Expenses.Abs()),
	}
}

// NewListRows renders the filtered view in its given order.
func NewListRows(txns []core.Transaction) []ListRow {
	rows := make([]ListRow, len(txns))
	for i, t := range txns {
		dir := t.Direction()
		sign := "+"
		if dir == core.Expense {
			sign = "-"
		}
		rows[i] = ListRow{
			ID:          t.ID,
			Description: t.Description,
			Category:    t.Category,
			DateLabel:   FormatDate(t.Date),
			Icon:        core.CategoryIcon(t.Category, dir),
			Direction:   dir,
			Sign:        sign,
			Value:       FormatCurrency(t.Amount.Abs()),
		}
	}
	return rows
}

// NewCategoryChart builds the proportion dataset from the breakdown.
func NewCategoryChart(breakdown []aggregate.CategoryTotal, theme core.Theme) CategoryChart {
	chart := CategoryChart{
		Labels: make([]string, len(breakdown)),
		Values: make([]float64, len(breakdown)),
		Colors: make([]string, len(breakdown)),
		Style:  StyleFor(theme),
	}
	for i, ct := range breakdown {
		chart.Labels[i] = ct.Category
		chart.Values[i] = float64(ct.Amount.Cents) / 100.0
		chart.Colors[i] = categoryPalette[i%len(categoryPalette)]
	}
	return chart
}

// NewFlowChart builds the trend dataset from the daily series.
func NewFlowChart(series []aggregate.FlowPoint, theme core.Theme) FlowChart {
	chart := FlowChart{
		Labels:  make([]string, len(series)),
		Income:  make([]float64, len(series)),
		Expense: make([]float64, len(series)),
		Style:   StyleFor(theme),
	}
	for i, p := range series {
		chart.Labels[i] = FlowLabel(p.Date)
		chart.Income[i] = float64(p.Income.Cents) / 100.0
		chart.Expense[i] = float64(p.Expense.Cents) / 100.0
	}
	return chart
}
