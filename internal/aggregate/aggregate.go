// Package aggregate computes the derived views the dashboard renders:
// the filtered list, the income/expense totals, the category breakdown and
// the daily flow series. Everything here is pure and deterministic given
// the transactions and the reference date.
package aggregate

import (
	"sort"
	"strings"

	"financas/internal/core"
)

const (
	// WindowMonth keeps transactions dated on or after the first day of
	// the current month.
	WindowMonth Window = "month"
	// WindowAll keeps every transaction.
	WindowAll Window = "all"
)

// FlowDays is the fixed length of the trailing daily flow series.
const FlowDays = 30

type (
	// Window is the time-window selector of the list filter.
	Window string

	// Totals are the dashboard numbers. Expenses is kept negative
	// internally; Balance = Income + Expenses.
	Totals struct {
		Income   core.Money
		Expenses core.Money
		Balance  core.Money
	}

	// CategoryTotal is one slice of the expense proportion chart: the
	// absolute expense magnitude summed for a category.
	CategoryTotal struct {
		Category string
		Amount   core.Money
	}

	// FlowPoint is one day of the flow series. Expense carries the
	// absolute magnitude of that day's expenses.
	FlowPoint struct {
		Date    core.Date
		Income  core.Money
		Expense core.Money
	}
)

// ParseWindow maps a form value to a window, defaulting to the current
// month when unrecognized.
func ParseWindow(s string) Window {
	if Window(s) == WindowAll {
		return WindowAll
	}
	return WindowMonth
}

// FilteredView returns the transactions matching the window and the
// case-insensitive substring search on description, sorted by date
// descending. Same-date transactions keep their insertion order.
func FilteredView(txns []core.Transaction, w Window, search string, today core.Date) []core.Transaction {
	firstOfMonth := today.FirstOfMonth()
	needle := strings.ToLower(search)

	out := make([]core.Transaction, 0, len(txns))
	for _, txn := range txns {
		if !strings.Contains(strings.ToLower(txn.Description), needle) {
			continue
		}
		if w == WindowMonth && txn.Date.Before(firstOfMonth) {
			continue
		}
		out = append(out, txn)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].Date.Time.Before(out[i].Date.Time)
	})
	return out
}

// ComputeTotals sums the filtered view into the dashboard numbers.
func ComputeTotals(txns []core.Transaction) Totals {
	var t Totals
	for _, txn := range txns {
		if txn.Amount.Cents > 0 {
			t.Income.Cents += txn.Amount.Cents
		} else {
			t.Expenses.Cents += txn.Amount.Cents
		}
	}
	t.Balance.Cents = t.Income.Cents + t.Expenses.Cents
	return t
}

// CategoryBreakdown groups the filtered expense transactions by category,
// summing absolute magnitudes. Categories without expense transactions are
// absent, not zero-valued. Order follows first appearance in the input.
func CategoryBreakdown(txns []core.Transaction) []CategoryTotal {
	index := make(map[string]int)
	var out []CategoryTotal
	for _, txn := range txns {
		if txn.Amount.Cents >= 0 {
			continue
		}
		magnitude := -txn.Amount.Cents
		if i, ok := index[txn.Category]; ok {
			out[i].Amount.Cents += magnitude
			continue
		}
		index[txn.Category] = len(out)
		out = append(out, CategoryTotal{Category: txn.Category, Amount: core.Money{Cents: magnitude}})
	}
	return out
}

// FlowSeries produces one point per day for the trailing FlowDays window
// ending today inclusive. It scans the full transaction set, not the
// filtered view, so the trend chart is independent of the list filter.
// Days without transactions yield zero points.
func FlowSeries(all []core.Transaction, today core.Date) []FlowPoint {
	out := make([]FlowPoint, FlowDays)
	for i := range out {
		out[i].Date = today.AddDays(i - (FlowDays - 1))
	}
	first := out[0].Date
	for _, txn := range all {
		if txn.Date.Before(first) {
			continue
		}
		offset := daysBetween(first, txn.Date)
		if offset < 0 || offset >= FlowDays {
			continue
		}
		if txn.Amount.Cents > 0 {
			out[offset].Income.Cents += txn.Amount.Cents
		} else {
			out[offset].Expense.Cents += -txn.Amount.Cents
		}
	}
	return out
}

func daysBetween(from, to core.Date) int {
	return int(to.Time.Sub(from.Time).Hours() / 24)
}
