package material

import (
	"context"
	"time"

	"github.com/cosmo/backend/internal/domain/material"
	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RawMaterialService handles raw material operations
type RawMaterialService struct {
	materialRepo    material.RawMaterialRepository
	manualPriceRepo material.ManualPriceRepository
}

// NewRawMaterialService creates a new RawMaterialService
func NewRawMaterialService(materialRepo material.RawMaterialRepository, manualPriceRepo material.ManualPriceRepository) *RawMaterialService {
	return &RawMaterialService{
		materialRepo:    materialRepo,
		manualPriceRepo: manualPriceRepo,
	}
}

// Create creates a new raw material
func (s *RawMaterialService) Create(ctx context.Context, req CreateRawMaterialRequest) (*RawMaterialResponse, error) {
	m, err := material.NewRawMaterial(req.Name, req.Unit, req.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.materialRepo.Save(ctx, m); err != nil {
		return nil, err
	}
	return ToRawMaterialResponse(m), nil
}

// Update updates a raw material's basic information
func (s *RawMaterialService) Update(ctx context.Context, id uuid.UUID, req UpdateRawMaterialRequest) (*RawMaterialResponse, error) {
	m, err := s.materialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := m.Update(req.Name, req.Unit, req.Notes); err != nil {
		return nil, err
	}
	if err := s.materialRepo.Save(ctx, m); err != nil {
		return nil, err
	}
	return ToRawMaterialResponse(m), nil
}

// GetByID retrieves a raw material by ID
func (s *RawMaterialService) GetByID(ctx context.Context, id uuid.UUID) (*RawMaterialResponse, error) {
	m, err := s.materialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToRawMaterialResponse(m), nil
}

// List retrieves raw materials with search and pagination
func (s *RawMaterialService) List(ctx context.Context, filter RawMaterialListFilter) (*shared.Paginated[*RawMaterialResponse], error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	materials, err := s.materialRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.materialRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	items := make([]*RawMaterialResponse, 0, len(materials))
	for i := range materials {
		items = append(items, ToRawMaterialResponse(&materials[i]))
	}
	result := shared.NewPaginated(items, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Activate marks a raw material as active
func (s *RawMaterialService) Activate(ctx context.Context, id uuid.UUID) error {
	m, err := s.materialRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	m.Activate()
	return s.materialRepo.Save(ctx, m)
}

// Deactivate marks a raw material as inactive
func (s *RawMaterialService) Deactivate(ctx context.Context, id uuid.UUID) error {
	m, err := s.materialRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	m.Deactivate()
	return s.materialRepo.Save(ctx, m)
}

// AddManualPrice adds a manual price row to a raw material's history
func (s *RawMaterialService) AddManualPrice(ctx context.Context, rawMaterialID uuid.UUID, req AddManualPriceRequest) (*ManualPriceResponse, error) {
	if _, err := s.materialRepo.FindByID(ctx, rawMaterialID); err != nil {
		return nil, err
	}

	validFrom, err := time.Parse(dateLayout, req.ValidFrom)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "Valid-from date must be in YYYY-MM-DD format")
	}
	var validTo *time.Time
	if req.ValidTo != nil {
		to, err := time.Parse(dateLayout, *req.ValidTo)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_DATE", "Valid-to date must be in YYYY-MM-DD format")
		}
		validTo = &to
	}

	p, err := material.NewManualPrice(rawMaterialID, req.PricePerGram, req.Currency, validFrom, validTo)
	if err != nil {
		return nil, err
	}
	if err := s.manualPriceRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return ToManualPriceResponse(p), nil
}

// ListManualPrices returns the manual price history of a raw material
func (s *RawMaterialService) ListManualPrices(ctx context.Context, rawMaterialID uuid.UUID) ([]*ManualPriceResponse, error) {
	if _, err := s.materialRepo.FindByID(ctx, rawMaterialID); err != nil {
		return nil, err
	}

	prices, err := s.manualPriceRepo.FindByRawMaterial(ctx, rawMaterialID)
	if err != nil {
		return nil, err
	}
	items := make([]*ManualPriceResponse, 0, len(prices))
	for i := range prices {
		items = append(items, ToManualPriceResponse(&prices[i]))
	}
	return items, nil
}
