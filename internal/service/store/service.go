package store

import (
	"context"
	"fmt"

	"github.com/albapay/albapay-backend-go/internal/domain/store"
	"github.com/albapay/albapay-backend-go/internal/pkg/database"
	"github.com/albapay/albapay-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type StoreServiceImpl struct {
	db        *database.DB
	storeRepo store.StoreRepository
}

func NewStoreService(db *database.DB, storeRepo store.StoreRepository) store.StoreService {
	return &StoreServiceImpl{db: db, storeRepo: storeRepo}
}

func getClaimsFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

func (s *StoreServiceImpl) Create(ctx context.Context, req store.CreateStoreRequest) (store.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return store.StoreResponse{}, err
	}

	ownerID, err := getClaimsFromContext(ctx)
	if err != nil {
		return store.StoreResponse{}, err
	}

	created, err := s.storeRepo.Create(ctx, store.Store{
		OwnerID: ownerID,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return store.StoreResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *StoreServiceImpl) Get(ctx context.Context, id string) (store.StoreResponse, error) {
	ownerID, err := getClaimsFromContext(ctx)
	if err != nil {
		return store.StoreResponse{}, err
	}

	found, err := s.storeRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return store.StoreResponse{}, err
	}

	return mapToResponse(found), nil
}

func (s *StoreServiceImpl) List(ctx context.Context) ([]store.StoreResponse, error) {
	ownerID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	stores, err := s.storeRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]store.StoreResponse, 0, len(stores))
	for _, st := range stores {
		result = append(result, mapToResponse(st))
	}
	return result, nil
}

func (s *StoreServiceImpl) Update(ctx context.Context, req store.UpdateStoreRequest) (store.StoreResponse, error) {
	ownerID, err := getClaimsFromContext(ctx)
	if err != nil {
		return store.StoreResponse{}, err
	}

	// Update and read-back happen on one transaction so the response
	// reflects exactly the row that was written.
	var updated store.Store
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.storeRepo.Update(txCtx, ownerID, req); err != nil {
			return err
		}

		var err error
		updated, err = s.storeRepo.GetByID(txCtx, req.ID, ownerID)
		return err
	})
	if err != nil {
		return store.StoreResponse{}, err
	}

	return mapToResponse(updated), nil
}

func (s *StoreServiceImpl) Delete(ctx context.Context, id string) error {
	ownerID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.storeRepo.Delete(ctx, id, ownerID)
}

func mapToResponse(st store.Store) store.StoreResponse {
	return store.StoreResponse{
		ID:      st.ID,
		Name:    st.Name,
		Address: st.Address,
		Phone:   st.Phone,
	}
}
