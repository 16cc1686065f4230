package store

import "context"

// StoreRepository scopes every lookup by ownerID so one account can
// never read another account's stores.
type StoreRepository interface {
	Create(ctx context.Context, s Store) (Store, error)
	GetByID(ctx context.Context, id string, ownerID string) (Store, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]Store, error)
	Update(ctx context.Context, ownerID string, req UpdateStoreRequest) error
	Delete(ctx context.Context, id string, ownerID string) error
}
