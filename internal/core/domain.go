package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  Direction = "income"
	Expense Direction = "expense"
)

type (
	// Direction classifies a transaction as money coming in or going out.
	// It is derived from the amount sign and never stored separately.
	Direction string

	// Date is a calendar date with no time-of-day component.
	Date struct {
		time.Time
	}

	// Money is a signed amount in cents. Positive is income, negative is
	// expense; the sign is the sole source of truth for direction.
	Money struct {
		Cents int64
	}

	Transaction struct {
		ID          string
		Description string
		Amount      Money
		Date        Date
		Category    string
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrZeroAmount       = errors.New("amount cannot be zero")
	ErrEmptyDescription = errors.New("empty description")
	ErrMissingDate      = errors.New("missing date")
	ErrEmptyCategory    = errors.New("empty category")
	ErrInvalidDirection = errors.New("invalid direction")
)

// ISODateLayout is the on-disk and form wire format for dates.
const ISODateLayout = "2006-01-02"

// NewDate creates a Date from year, month, day in UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time to its calendar date in UTC.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseISODate parses a yyyy-mm-dd string.
func ParseISODate(s string) (Date, error) {
	t, err := time.Parse(ISODateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrMissingDate
	}
	return Date{Time: t}, nil
}

// ISO renders the date as yyyy-mm-dd.
func (d Date) ISO() string {
	return d.Format(ISODateLayout)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrMissingDate
	}
	return nil
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.AddDate(0, 0, n)}
}

// FirstOfMonth returns the first day of the date's month.
func (d Date) FirstOfMonth() Date {
	return NewDate(d.Year(), int(d.Month()), 1)
}

// Before reports whether d falls on an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// Equal reports whether two dates fall on the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month() && d.Day() == other.Day()
}

func (m Money) Validate() error {
	if m.Cents == 0 {
		return ErrZeroAmount
	}
	return nil
}

// Direction derives the classification from the amount sign.
func (m Money) Direction() Direction {
	if m.Cents > 0 {
		return Income
	}
	return Expense
}

// Abs returns the magnitude of the amount.
func (m Money) Abs() Money {
	if m.Cents < 0 {
		return Money{Cents: -m.Cents}
	}
	return m
}

func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.TrimSpace(strings.ToLower(s))) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	}
	return "", ErrInvalidDirection
}

// Signed applies the direction to a magnitude: expenses become negative,
// incomes positive. The magnitude sign is discarded first, so a signed
// value typed by the user never overrides the declared direction.
func Signed(magnitude Money, dir Direction) Money {
	cents := magnitude.Abs().Cents
	if dir == Expense {
		cents = -cents
	}
	return Money{Cents: cents}
}

func (t Transaction) Validate() error {
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// Direction derives the transaction classification from the amount sign.
func (t Transaction) Direction() Direction {
	return t.Amount.Direction()
}
