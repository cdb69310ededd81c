package checkers

import (
	"context"

	"github.com/careerpilot/backend/pkg/storage/jsonfile"
)

// StoreChecker verifies the JSON file store is readable.
type StoreChecker struct {
	store *jsonfile.Store
}

func NewStoreChecker(store *jsonfile.Store) *StoreChecker {
	return &StoreChecker{store: store}
}

func (c *StoreChecker) Name() string { return "store" }

func (c *StoreChecker) Check(ctx context.Context) error {
	_, err := c.store.Read()
	return err
}
