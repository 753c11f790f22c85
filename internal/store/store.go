// Package store owns the persisted collections: the ordered transaction
// list and the theme preference. The only persistence boundary is
// whole-collection serialize/deserialize on every mutation; there are no
// partial writes and no transaction log.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"financas/internal/core"
)

// Versioned storage keys. Bump the suffix when the record shape changes.
const (
	TransactionsKey = "financeAppTransactions_v2"
	ThemeKey        = "financeAppTheme_v2"
)

// KV is the key-value persistence the stores write through. Implemented
// by storage.SQLiteKV and storage.MemoryKV.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Fields carries validated-to-be form input for create and update. The
// magnitude is always positive; Direction decides the stored sign.
type Fields struct {
	Description string
	Magnitude   core.Money
	Direction   core.Direction
	Date        core.Date
	Category    string
}

// transactionRecord is the on-disk shape of one transaction.
type transactionRecord struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	AmountCents int64  `json:"amount_cents"`
	Date        string `json:"date"`
	Category    string `json:"category"`
}

// TransactionStore keeps the ordered collection in memory and mirrors
// every mutation to the KV. Collection order is insertion order; display
// order is the aggregator's concern.
type TransactionStore struct {
	mu    sync.Mutex
	kv    KV
	items []core.Transaction
}

// NewTransactionStore loads the persisted collection. Missing or
// unparsable data degrades to an empty collection, never an error.
func NewTransactionStore(ctx context.Context, kv KV) *TransactionStore {
	s := &TransactionStore{kv: kv}
	s.items = s.load(ctx)
	return s
}

func (s *TransactionStore) load(ctx context.Context) []core.Transaction {
	raw, found, err := s.kv.Get(ctx, TransactionsKey)
	if err != nil {
		slog.WarnContext(ctx, "Transactions load failed, starting empty", "error", err)
		return nil
	}
	if !found {
		return nil
	}
	var records []transactionRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		slog.WarnContext(ctx, "Transactions entry unparsable, starting empty", "error", err)
		return nil
	}
	items := make([]core.Transaction, 0, len(records))
	for _, r := range records {
		date, err := core.ParseISODate(r.Date)
		if err != nil {
			slog.WarnContext(ctx, "Skipping transaction with bad date", "id", r.ID, "date", r.Date)
			continue
		}
		items = append(items, core.Transaction{
			ID:          r.ID,
			Description: r.Description,
			Amount:      core.Money{Cents: r.AmountCents},
			Date:        date,
			Category:    r.Category,
		})
	}
	return items
}

// persist serializes the full collection, overwriting prior state.
// Storage failures are logged and swallowed: the in-memory state stays
// correct for the rest of the session.
func (s *TransactionStore) persist(ctx context.Context) {
	records := make([]transactionRecord, len(s.items))
	for i, t := range s.items {
		records[i] = transactionRecord{
			ID:          t.ID,
			Description: t.Description,
			AmountCents: t.Amount.Cents,
			Date:        t.Date.ISO(),
			Category:    t.Category,
		}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		slog.ErrorContext(ctx, "Transactions marshal failed", "error", err, "count", len(records))
		return
	}
	if err := s.kv.Put(ctx, TransactionsKey, string(raw)); err != nil {
		slog.WarnContext(ctx, "Transactions persist failed, keeping in-memory state", "error", err)
	}
}

// All returns a snapshot of the collection in insertion order.
func (s *TransactionStore) All() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.items...)
}

// Reload re-reads the persisted collection, replacing the in-memory one.
func (s *TransactionStore) Reload(ctx context.Context) []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = s.load(ctx)
	return append([]core.Transaction(nil), s.items...)
}

// Replace swaps in a whole collection and persists it.
func (s *TransactionStore) Replace(ctx context.Context, items []core.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]core.Transaction(nil), items...)
	s.persist(ctx)
}

// Create validates the fields, signs the amount by direction, assigns a
// fresh id and appends.
func (s *TransactionStore) Create(ctx context.Context, f Fields) (core.Transaction, error) {
	txn := core.Transaction{
		ID:          uuid.NewString(),
		Description: f.Description,
		Amount:      core.Signed(f.Magnitude, f.Direction),
		Date:        f.Date,
		Category:    f.Category,
	}
	if err := txn.Validate(); err != nil {
		return core.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, txn)
	s.persist(ctx)
	slog.InfoContext(ctx, "Transaction created",
		"id", txn.ID,
		"amount_cents", txn.Amount.Cents,
		"category", txn.Category,
		"date", txn.Date.ISO())
	return txn, nil
}

// Update replaces all fields except the id. An absent id is a silent
// no-op per the lookup-miss contract.
func (s *TransactionStore) Update(ctx context.Context, id string, f Fields) error {
	replacement := core.Transaction{
		ID:          id,
		Description: f.Description,
		Amount:      core.Signed(f.Magnitude, f.Direction),
		Date:        f.Date,
		Category:    f.Category,
	}
	if err := replacement.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.items {
		if t.ID == id {
			s.items[i] = replacement
			s.persist(ctx)
			slog.InfoContext(ctx, "Transaction updated", "id", id, "amount_cents", replacement.Amount.Cents)
			return nil
		}
	}
	slog.DebugContext(ctx, "Update for vanished id ignored", "id", id)
	return nil
}

// Get looks a transaction up by id.
func (s *TransactionStore) Get(id string) (core.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.items {
		if t.ID == id {
			return t, true
		}
	}
	return core.Transaction{}, false
}

// Delete removes the matching entry; absent ids are a no-op.
func (s *TransactionStore) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			slog.InfoContext(ctx, "Transaction deleted", "id", id)
			return
		}
	}
	slog.DebugContext(ctx, "Delete for vanished id ignored", "id", id)
}

// Clear empties the collection. Irreversible.
func (s *TransactionStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist(ctx)
	slog.InfoContext(ctx, "All transactions cleared")
}
