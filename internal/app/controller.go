// Package app is the view controller: it maps user actions to state
// transitions over the store and recomputes the derived views. It knows
// nothing about HTTP or templates, so every transition is testable
// headless.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"financas/internal/aggregate"
	"financas/internal/core"
	"financas/internal/render"
	"financas/internal/store"
)

// ValidationMessage is the single user-facing message for any form
// validation failure. The form stays open and the caller re-prompts.
const ValidationMessage = "Por favor, preencha todos os campos."

type (
	// State is the session-only UI state. It is never persisted; a new
	// session starts back at this-month with an empty search.
	State struct {
		Editing   bool
		EditingID string
		Window    aggregate.Window
		Search    string
		FormError string
	}

	// FormInput is the raw submission from the form collaborator.
	FormInput struct {
		Description string
		Amount      string
		Date        string
		Direction   string
		Category    string
	}

	// FormPrefill is what edit mode puts back into the form: the
	// absolute magnitude plus the direction derived from the sign.
	FormPrefill struct {
		ID          string
		Description string
		Amount      string
		Date        string
		Direction   core.Direction
		Category    string
	}

	// Clock supplies "today" for filtering and the flow window.
	Clock func() core.Date

	// Action is one user command. Each maps to a single state
	// transition in Dispatch.
	Action interface{ isAction() }

	Submit      struct{ Form FormInput }
	StartEdit   struct{ ID string }
	CloseForm   struct{}
	Delete      struct {
		ID        string
		Confirmed bool
	}
	ClearAll    struct{ Confirmed bool }
	SetWindow   struct{ Value string }
	SetSearch   struct{ Text string }
	ToggleTheme struct{}
)

func (Submit) isAction()      {}
func (StartEdit) isAction()   {}
func (CloseForm) isAction()   {}
func (Delete) isAction()      {}
func (ClearAll) isAction()    {}
func (SetWindow) isAction()   {}
func (SetSearch) isAction()   {}
func (ToggleTheme) isAction() {}

// View is the full recomputed render input: dashboard numbers, list rows,
// both chart datasets and the theme. There is no partial-update path.
type View struct {
	State         State
	Theme         core.Theme
	Dashboard     render.Dashboard
	Rows          []render.ListRow
	Empty         bool
	CategoryChart render.CategoryChart
	FlowChart     render.FlowChart
	Today         core.Date
}

type Controller struct {
	store  *store.TransactionStore
	themes *store.ThemeStore
	now    Clock
}

func NewController(txns *store.TransactionStore, themes *store.ThemeStore, now Clock) *Controller {
	if now == nil {
		now = func() core.Date { return core.DateOf(time.Now()) }
	}
	return &Controller{store: txns, themes: themes, now: now}
}

// NewState is the session starting point: this-month window, no search,
// create mode.
func NewState() State {
	return State{Window: aggregate.WindowMonth}
}

// Dispatch applies one action and returns the next state. Mutating
// actions persist through the store before returning; the caller then
// recomputes everything via View. Validation failures set FormError and
// keep the current mode, they never propagate as faults.
func (c *Controller) Dispatch(ctx context.Context, state State, action Action) State {
	switch a := action.(type) {
	case Submit:
		fields, err := parseForm(a.Form)
		if err != nil {
			state.FormError = ValidationMessage
			return state
		}
		if state.Editing {
			if err := c.store.Update(ctx, state.EditingID, fields); err != nil {
				state.FormError = ValidationMessage
				return state
			}
		} else {
			if _, err := c.store.Create(ctx, fields); err != nil {
				state.FormError = ValidationMessage
				return state
			}
		}
		return closeForm(state)

	case StartEdit:
		if _, ok := c.store.Get(a.ID); !ok {
			// Vanished id: stay in create mode, no form opens.
			return state
		}
		state.Editing = true
		state.EditingID = a.ID
		state.FormError = ""
		return state

	case CloseForm:
		return closeForm(state)

	case Delete:
		if a.Confirmed {
			c.store.Delete(ctx, a.ID)
		}
		return state

	case ClearAll:
		if a.Confirmed {
			c.store.Clear(ctx)
		}
		return state

	case SetWindow:
		state.Window = aggregate.ParseWindow(a.Value)
		return state

	case SetSearch:
		state.Search = a.Text
		return state

	case ToggleTheme:
		c.themes.Save(ctx, c.themes.Load(ctx).Toggle())
		return state
	}
	return state
}

func closeForm(state State) State {
	state.Editing = false
	state.EditingID = ""
	state.FormError = ""
	return state
}

// EditForm returns the prefill for the current edit target, or false when
// the state is not editing or the target vanished.
func (c *Controller) EditForm(state State) (FormPrefill, bool) {
	if !state.Editing {
		return FormPrefill{}, false
	}
	txn, ok := c.store.Get(state.EditingID)
	if !ok {
		return FormPrefill{}, false
	}
	magnitude := txn.Amount.Abs().Cents
	return FormPrefill{
		ID:          txn.ID,
		Description: txn.Description,
		Amount:      fmt.Sprintf("%d.%02d", magnitude/100, magnitude%100),
		Date:        txn.Date.ISO(),
		Direction:   txn.Direction(),
		Category:    txn.Category,
	}, true
}

// View recomputes every derived view from scratch: filtered list,
// dashboard totals and category chart from the filtered set, flow series
// from the full set.
func (c *Controller) View(ctx context.Context, state State) View {
	today := c.now()
	all := c.store.All()
	filtered := aggregate.FilteredView(all, state.Window, state.Search, today)
	totals := aggregate.ComputeTotals(filtered)
	breakdown := aggregate.CategoryBreakdown(filtered)
	series := aggregate.FlowSeries(all, today)
	theme := c.themes.Load(ctx)

	return View{
		State:         state,
		Theme:         theme,
		Dashboard:     render.NewDashboard(totals),
		Rows:          render.NewListRows(filtered),
		Empty:         len(filtered) == 0,
		CategoryChart: render.NewCategoryChart(breakdown, theme),
		FlowChart:     render.NewFlowChart(series, theme),
		Today:         today,
	}
}

func parseForm(f FormInput) (store.Fields, error) {
	description := strings.TrimSpace(f.Description)
	if description == "" {
		return store.Fields{}, core.ErrEmptyDescription
	}
	cents, err := core.ParseDecimalToCents(f.Amount)
	if err != nil {
		return store.Fields{}, err
	}
	date, err := core.ParseISODate(f.Date)
	if err != nil {
		return store.Fields{}, err
	}
	direction, err := core.ParseDirection(f.Direction)
	if err != nil {
		return store.Fields{}, err
	}
	category := strings.TrimSpace(f.Category)
	if category == "" {
		return store.Fields{}, core.ErrEmptyCategory
	}
	return store.Fields{
		Description: description,
		Magnitude:   core.Money{Cents: cents},
		Direction:   direction,
		Date:        date,
		Category:    category,
	}, nil
}
