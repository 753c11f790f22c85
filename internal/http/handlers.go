package http

import (
	"encoding/json"
	"net/http"

	"financas/internal/app"
	"financas/internal/core"
	applog "financas/internal/log"
)

// pageData is the single template input: the recomputed view plus the
// form collaborator's prefill and category suggestions.
type pageData struct {
	View              app.View
	ShowForm          bool
	Prefill           app.FormPrefill
	TodayISO          string
	IncomeCategories  []string
	ExpenseCategories []string
}

func (s *Server) currentState() app.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Server) dispatch(r *http.Request, action app.Action) app.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.controller.Dispatch(r.Context(), s.state, action)
	return s.state
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.renderIndex(w, r, s.currentState(), http.StatusOK)
}

// handleSubmit creates or updates depending on the edit mode carried in
// session state. A validation failure re-renders with the form open and
// the inline message; it is not an HTTP error path beyond the 422.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := app.FormInput{
		Description: r.FormValue("description"),
		Amount:      r.FormValue("amount"),
		Date:        r.FormValue("date"),
		Direction:   r.FormValue("direction"),
		Category:    r.FormValue("category"),
	}
	state := s.dispatch(r, app.Submit{Form: form})
	if state.FormError != "" {
		applog.FromContext(r.Context()).InfoContext(r.Context(), "Form submission rejected",
			applog.FieldOperation, applog.OpCreate)
		s.renderIndex(w, r, state, http.StatusUnprocessableEntity)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleStartEdit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := r.URL.Query().Get("id")
	s.dispatch(r, app.StartEdit{ID: id})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleCloseForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.dispatch(r, app.CloseForm{})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	s.dispatch(r, app.Delete{
		ID:        r.FormValue("id"),
		Confirmed: r.FormValue("confirmed") == "true",
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleClearAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	s.dispatch(r, app.ClearAll{Confirmed: r.FormValue("confirmed") == "true"})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleViewControls updates the filter window and the search text. Both
// arrive together so typing in the search box does not reset the window.
func (s *Server) handleViewControls(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	if windows, ok := r.Form["window"]; ok && len(windows) > 0 {
		s.dispatch(r, app.SetWindow{Value: windows[0]})
	}
	if searches, ok := r.Form["search"]; ok && len(searches) > 0 {
		s.dispatch(r, app.SetSearch{Text: searches[0]})
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.dispatch(r, app.ToggleTheme{})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleCharts returns both chart datasets as JSON for the client-side
// chart collaborator.
func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	view := s.controller.View(r.Context(), s.currentState())
	w.Header().Set("Content-Type", "application/json")
	payload := map[string]any{
		"category": view.CategoryChart,
		"flow":     view.FlowChart,
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Failed encoding chart payload",
			applog.FieldError, err)
	}
}

func (s *Server) renderIndex(w http.ResponseWriter, r *http.Request, state app.State, status int) {
	view := s.controller.View(r.Context(), state)
	prefill, editing := s.controller.EditForm(state)
	data := pageData{
		View:              view,
		ShowForm:          editing || state.FormError != "",
		Prefill:           prefill,
		TodayISO:          view.Today.ISO(),
		IncomeCategories:  core.SuggestedCategories(core.Income),
		ExpenseCategories: core.SuggestedCategories(core.Expense),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Failed rendering index",
			applog.FieldError, err, applog.FieldOperation, applog.OpRender)
	}
}
