package template

import (
	"context"
	"fmt"

	"github.com/albapay/albapay-backend-go/internal/domain/store"
	"github.com/albapay/albapay-backend-go/internal/domain/template"
	"github.com/albapay/albapay-backend-go/internal/pkg/database"
	"github.com/albapay/albapay-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type TemplateServiceImpl struct {
	db           *database.DB
	storeRepo    store.StoreRepository
	templateRepo template.TemplateRepository
}

func NewTemplateService(
	db *database.DB,
	storeRepo store.StoreRepository,
	templateRepo template.TemplateRepository,
) template.TemplateService {
	return &TemplateServiceImpl{
		db:           db,
		storeRepo:    storeRepo,
		templateRepo: templateRepo,
	}
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

func (s *TemplateServiceImpl) requireStore(ctx context.Context, storeID string) error {
	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	_, err = s.storeRepo.GetByID(ctx, storeID, userID)
	return err
}

func (s *TemplateServiceImpl) Create(ctx context.Context, req template.CreateTemplateRequest) (template.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return template.TemplateResponse{}, err
	}
	if err := s.requireStore(ctx, req.StoreID); err != nil {
		return template.TemplateResponse{}, err
	}

	created, err := s.templateRepo.Create(ctx, template.WeeklyTemplate{
		StoreID:      req.StoreID,
		Name:         req.Name,
		ScheduleData: req.ScheduleData,
	})
	if err != nil {
		return template.TemplateResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *TemplateServiceImpl) Get(ctx context.Context, storeID, id string) (template.TemplateResponse, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return template.TemplateResponse{}, err
	}

	found, err := s.templateRepo.GetByID(ctx, id, storeID)
	if err != nil {
		return template.TemplateResponse{}, err
	}

	return mapToResponse(found), nil
}

func (s *TemplateServiceImpl) List(ctx context.Context, storeID string) ([]template.TemplateResponse, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	templates, err := s.templateRepo.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	result := make([]template.TemplateResponse, 0, len(templates))
	for _, tpl := range templates {
		result = append(result, mapToResponse(tpl))
	}
	return result, nil
}

func (s *TemplateServiceImpl) Update(ctx context.Context, storeID string, req template.UpdateTemplateRequest) (template.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return template.TemplateResponse{}, err
	}
	if err := s.requireStore(ctx, storeID); err != nil {
		return template.TemplateResponse{}, err
	}

	var found template.WeeklyTemplate
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.templateRepo.Update(txCtx, storeID, req); err != nil {
			return err
		}

		var err error
		found, err = s.templateRepo.GetByID(txCtx, req.ID, storeID)
		return err
	})
	if err != nil {
		return template.TemplateResponse{}, err
	}
	return mapToResponse(found), nil
}

func (s *TemplateServiceImpl) Delete(ctx context.Context, storeID, id string) error {
	if err := s.requireStore(ctx, storeID); err != nil {
		return err
	}
	return s.templateRepo.Delete(ctx, id, storeID)
}

func mapToResponse(t template.WeeklyTemplate) template.TemplateResponse {
	return template.TemplateResponse{
		ID:           t.ID,
		StoreID:      t.StoreID,
		Name:         t.Name,
		ScheduleData: t.ScheduleData,
	}
}
