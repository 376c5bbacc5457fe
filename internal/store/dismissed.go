package store

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
)

// DismissedKey is the fixed namespace the banner widget persists under. The
// value is a JSON array of announcement id strings.
const DismissedKey = "onecx_announcement_banner_ignored_ids"

// DismissedStore tracks the announcement ids a user has hidden from the
// banner. The set only grows; it is never pruned automatically.
type DismissedStore struct {
	kv     KeyValueStore
	logger *zap.Logger
}

// NewDismissedStore wraps a key-value backend.
func NewDismissedStore(kv KeyValueStore, logger *zap.Logger) *DismissedStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DismissedStore{kv: kv, logger: logger}
}

// IDs returns the persisted set. Read or parse failures degrade to an empty
// set so the banner keeps working without client-local storage.
func (s *DismissedStore) IDs(ctx context.Context) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, id := range s.list(ctx) {
		ids[id] = struct{}{}
	}
	return ids
}

// Dismiss appends id to the persisted set. Already-dismissed ids are kept
// once. Any storage failure leaves the persisted set unchanged.
func (s *DismissedStore) Dismiss(ctx context.Context, id string) error {
	current := s.list(ctx)
	for _, existing := range current {
		if existing == id {
			return nil
		}
	}

	payload, err := json.Marshal(append(current, id))
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, DismissedKey, payload); err != nil {
		s.logger.Error("persist dismissed announcement id failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *DismissedStore) list(ctx context.Context) []string {
	raw, err := s.kv.Get(ctx, DismissedKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Error("read dismissed announcement ids failed", zap.Error(err))
		}
		return nil
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		s.logger.Error("parse dismissed announcement ids failed", zap.Error(err))
		return nil
	}
	return ids
}
