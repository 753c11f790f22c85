package store

import (
	"context"
	"testing"

	"financas/internal/core"
	"financas/internal/storage"
)

func newTestStore(t *testing.T) (*TransactionStore, KV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	return NewTransactionStore(context.Background(), kv), kv
}

func validFields() Fields {
	return Fields{
		Description: "mercado",
		Magnitude:   core.Money{Cents: 5000},
		Direction:   core.Expense,
		Date:        core.NewDate(2024, 3, 10),
		Category:    "alimentacao",
	}
}

func TestCreateSignsAmountByDirection(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	expense, err := s.Create(ctx, validFields())
	if err != nil {
		t.Fatalf("create expense: %v", err)
	}
	if expense.Amount.Cents != -5000 {
		t.Fatalf("expense expected -5000, got %d", expense.Amount.Cents)
	}

	f := validFields()
	f.Direction = core.Income
	f.Magnitude = core.Money{Cents: -7000} // typed sign must not matter
	income, err := s.Create(ctx, f)
	if err != nil {
		t.Fatalf("create income: %v", err)
	}
	if income.Amount.Cents != 7000 {
		t.Fatalf("income expected 7000, got %d", income.Amount.Cents)
	}

	if expense.ID == "" || income.ID == "" || expense.ID == income.ID {
		t.Fatalf("ids must be fresh and unique: %q vs %q", expense.ID, income.ID)
	}
}

func TestCreateValidation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	cases := []Fields{
		func() Fields { f := validFields(); f.Description = "   "; return f }(),
		func() Fields { f := validFields(); f.Magnitude = core.Money{}; return f }(),
		func() Fields { f := validFields(); f.Date = core.Date{}; return f }(),
		func() Fields { f := validFields(); f.Category = ""; return f }(),
	}
	for i, f := range cases {
		if _, err := s.Create(ctx, f); err == nil {
			t.Fatalf("case %d expected validation error", i)
		}
	}
	if n := len(s.All()); n != 0 {
		t.Fatalf("failed creates must not append, got %d items", n)
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	s := NewTransactionStore(ctx, kv)

	first, _ := s.Create(ctx, validFields())
	f := validFields()
	f.Description = "salario"
	f.Direction = core.Income
	f.Magnitude = core.Money{Cents: 100000}
	f.Category = "salario"
	second, _ := s.Create(ctx, f)

	reloaded := NewTransactionStore(ctx, kv).All()
	if len(reloaded) != 2 {
		t.Fatalf("expected 2 after reload, got %d", len(reloaded))
	}
	for i, want := range []core.Transaction{first, second} {
		got := reloaded[i]
		if got.ID != want.ID || got.Description != want.Description ||
			got.Amount != want.Amount || !got.Date.Equal(want.Date) || got.Category != want.Category {
			t.Fatalf("round-trip mismatch at %d:\n got %+v\nwant %+v", i, got, want)
		}
	}
}

func TestLoadCorruptEntryStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	if err := kv.Put(ctx, TransactionsKey, "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := NewTransactionStore(ctx, kv)
	if n := len(s.All()); n != 0 {
		t.Fatalf("corrupt entry must degrade to empty, got %d", n)
	}
}

func TestUpdateReplacesAllFieldsExceptID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	created, _ := s.Create(ctx, validFields())

	f := Fields{
		Description: "feira da semana",
		Magnitude:   core.Money{Cents: 9900},
		Direction:   core.Expense,
		Date:        core.NewDate(2024, 3, 12),
		Category:    "alimentacao",
	}
	if err := s.Update(ctx, created.ID, f); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, ok := s.Get(created.ID)
	if !ok {
		t.Fatalf("updated transaction vanished")
	}
	if got.Description != "feira da semana" || got.Amount.Cents != -9900 || !got.Date.Equal(core.NewDate(2024, 3, 12)) {
		t.Fatalf("fields not replaced: %+v", got)
	}
}

func TestUpdateAndDeleteMissingIDAreNoOps(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	created, _ := s.Create(ctx, validFields())

	if err := s.Update(ctx, "ghost", validFields()); err != nil {
		t.Fatalf("update of missing id must not error: %v", err)
	}
	s.Delete(ctx, "ghost")

	all := s.All()
	if len(all) != 1 || all[0].ID != created.ID || all[0].Amount != created.Amount {
		t.Fatalf("collection changed by missing-id operations: %+v", all)
	}
}

func TestDeleteAndClear(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()
	a, _ := s.Create(ctx, validFields())
	b, _ := s.Create(ctx, validFields())

	s.Delete(ctx, a.ID)
	all := s.All()
	if len(all) != 1 || all[0].ID != b.ID {
		t.Fatalf("delete removed the wrong entry: %+v", all)
	}

	s.Clear(ctx)
	if len(s.All()) != 0 {
		t.Fatalf("clear must empty the collection")
	}
	raw, found, err := kv.Get(ctx, TransactionsKey)
	if err != nil || !found || raw != "[]" {
		t.Fatalf("clear must persist the empty collection, got %q found=%v err=%v", raw, found, err)
	}
}

func TestThemeStore(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	themes := NewThemeStore(kv)

	if got := themes.Load(ctx); got != core.ThemeDark {
		t.Fatalf("absent theme expected dark, got %s", got)
	}

	themes.Save(ctx, core.ThemeLight)
	if got := themes.Load(ctx); got != core.ThemeLight {
		t.Fatalf("expected light after save, got %s", got)
	}

	if err := kv.Put(ctx, ThemeKey, "neon"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if got := themes.Load(ctx); got != core.ThemeDark {
		t.Fatalf("unrecognized theme expected dark, got %s", got)
	}
}
