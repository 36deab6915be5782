package batch

import (
	"context"

	"github.com/cosmo/backend/internal/domain/batch"
	"github.com/cosmo/backend/internal/domain/catalog"
	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TemplateService handles batch template operations
type TemplateService struct {
	templateRepo batch.TemplateRepository
	productRepo  catalog.Repository
}

// NewTemplateService creates a new TemplateService
func NewTemplateService(templateRepo batch.TemplateRepository, productRepo catalog.Repository) *TemplateService {
	return &TemplateService{
		templateRepo: templateRepo,
		productRepo:  productRepo,
	}
}

// Create creates a batch template after checking every referenced product exists
func (s *TemplateService) Create(ctx context.Context, req CreateTemplateRequest) (*TemplateResponse, error) {
	if err := s.checkProductsExist(ctx, req.Items); err != nil {
		return nil, err
	}

	items := make([]batch.TemplateItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, batch.TemplateItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	tpl, err := batch.NewBatchTemplate(req.Name, req.Description, items)
	if err != nil {
		return nil, err
	}
	if err := s.templateRepo.Save(ctx, tpl); err != nil {
		return nil, err
	}
	return ToTemplateResponse(tpl), nil
}

// GetByID retrieves a template with its items
func (s *TemplateService) GetByID(ctx context.Context, id uuid.UUID) (*TemplateResponse, error) {
	tpl, err := s.templateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToTemplateResponse(tpl), nil
}

// List retrieves templates with pagination
func (s *TemplateService) List(ctx context.Context, page, pageSize int) (*shared.Paginated[*TemplateResponse], error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	templates, err := s.templateRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.templateRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*TemplateResponse, 0, len(templates))
	for i := range templates {
		items = append(items, ToTemplateResponse(&templates[i]))
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

func (s *TemplateService) checkProductsExist(ctx context.Context, items []CreateTemplateItemRequest) error {
	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(products) != len(ids) {
		return shared.NewDomainError("PRODUCT_NOT_FOUND", "Template references a product that does not exist")
	}
	return nil
}
