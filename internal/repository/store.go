package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akseleran/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// SlotStore persists the whole record list as one named slot: a single row
// of event_store whose payload column holds the serialized sequence. Every
// Save rewrites the full list; there is no row-per-record layout and no
// compare-and-swap on the slot.
type SlotStore struct {
	db       *dbpg.DB
	slot     string
	strategy retry.Strategy
}

func NewSlotStore(db *dbpg.DB, slot string) *SlotStore {
	return &SlotStore{
		db:   db,
		slot: slot,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Load reads and decodes the slot. An absent row is an empty store, not an
// error.
func (r *SlotStore) Load(ctx context.Context) ([]domain.EventRecord, error) {
	query := `SELECT payload FROM event_store WHERE slot=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, r.slot)
	if err != nil {
		return nil, fmt.Errorf("read slot: %w", err)
	}

	var payload []byte
	if err = row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	records, err := decodeRecords(payload)
	if err != nil {
		return nil, fmt.Errorf("decode slot %q: %w", r.slot, err)
	}

	return records, nil
}

// Save rewrites the slot with the full record list.
func (r *SlotStore) Save(ctx context.Context, records []domain.EventRecord) error {
	payload, err := encodeRecords(records)
	if err != nil {
		return fmt.Errorf("encode slot %q: %w", r.slot, err)
	}

	query := `INSERT INTO event_store (slot, payload, updated_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (slot) DO UPDATE
			  SET payload = EXCLUDED.payload, updated_at = now()`
	if _, err = r.db.ExecWithRetry(ctx, r.strategy, query, r.slot, payload); err != nil {
		return fmt.Errorf("write slot: %w", err)
	}

	return nil
}
