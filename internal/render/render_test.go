package render

import (
	"testing"

	"financas/internal/aggregate"
	"financas/internal/core"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "R$ 0,00"},
		{5, "R$ 0,05"},
		{123456, "R$ 1.234,56"},
		{100000000, "R$ 1.000.000,00"},
		{-123456, "R$ -1.234,56"},
		{95000, "R$ 950,00"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(core.Money{Cents: tc.cents}); got != tc.want {
			t.Fatalf("%d expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}

func TestFormatDateAndFlowLabel(t *testing.T) {
	d := core.NewDate(2024, 3, 5)
	if got := FormatDate(d); got != "05/03/2024" {
		t.Fatalf("FormatDate got %q", got)
	}
	if got := FlowLabel(d); got != "05/03" {
		t.Fatalf("FlowLabel got %q", got)
	}
}

func TestStyleForTheme(t *testing.T) {
	dark := StyleFor(core.ThemeDark)
	light := StyleFor(core.ThemeLight)
	if dark == light {
		t.Fatalf("themes must differ")
	}
	if dark.Border != "#1e1e1e" || light.Border != "#ffffff" {
		t.Fatalf("unexpected borders: %+v %+v", dark, light)
	}
}

func TestNewDashboardUsesAbsoluteExpenses(t *testing.T) {
	d := NewDashboard(aggregate.Totals{
		Income:   core.Money{Cents: 100000},
		Expenses: core.Money{Cents: -5000},
		Balance:  core.Money{Cents: 95000},
	})
	if d.Income != "R$ 1.000,00" || d.Expenses != "R$ 50,00" || d.Balance != "R$ 950,00" {
		t.Fatalf("unexpected dashboard: %+v", d)
	}
}

func TestNewListRows(t *testing.T) {
	rows := NewListRows([]core.Transaction{
		{ID: "a", Description: "salario", Amount: core.Money{Cents: 100000}, Date: core.NewDate(2024, 3, 1), Category: "salario"},
		{ID: "b", Description: "mercado", Amount: core.Money{Cents: -5000}, Date: core.NewDate(2024, 3, 2), Category: "alimentacao"},
	})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Sign != "+" || rows[0].Icon != "briefcase" || rows[0].Value != "R$ 1.000,00" {
		t.Fatalf("unexpected income row: %+v", rows[0])
	}
	if rows[1].Sign != "-" || rows[1].Icon != "shopping-cart" || rows[1].DateLabel != "02/03/2024" {
		t.Fatalf("unexpected expense row: %+v", rows[1])
	}
}

func TestNewCharts(t *testing.T) {
	breakdown := []aggregate.CategoryTotal{
		{Category: "alimentacao", Amount: core.Money{Cents: 7000}},
		{Category: "lazer", Amount: core.Money{Cents: 3000}},
	}
	cat := NewCategoryChart(breakdown, core.ThemeDark)
	if len(cat.Labels) != 2 || cat.Values[0] != 70 || cat.Colors[0] != "#FF6384" {
		t.Fatalf("unexpected category chart: %+v", cat)
	}

	series := []aggregate.FlowPoint{
		{Date: core.NewDate(2024, 3, 1), Income: core.Money{Cents: 100}, Expense: core.Money{Cents: 250}},
	}
	flow := NewFlowChart(series, core.ThemeLight)
	if flow.Labels[0] != "01/03" || flow.Income[0] != 1 || flow.Expense[0] != 2.5 {
		t.Fatalf("unexpected flow chart: %+v", flow)
	}
	if flow.Style != StyleFor(core.ThemeLight) {
		t.Fatalf("flow chart must carry theme style")
	}
}
