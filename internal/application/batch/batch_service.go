package batch

import (
	"context"
	"errors"
	"time"

	"github.com/cosmo/backend/internal/domain/batch"
	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BatchService handles batch lifecycle operations
type BatchService struct {
	batchRepo      batch.Repository
	templateRepo   batch.TemplateRepository
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
}

// NewBatchService creates a new BatchService
func NewBatchService(
	batchRepo batch.Repository,
	templateRepo batch.TemplateRepository,
	txScope TransactionScope,
	eventPublisher shared.EventPublisher,
) *BatchService {
	return &BatchService{
		batchRepo:      batchRepo,
		templateRepo:   templateRepo,
		txScope:        txScope,
		eventPublisher: eventPublisher,
	}
}

// Create instantiates a new PLANNED batch from a template
func (s *BatchService) Create(ctx context.Context, req CreateBatchRequest) (*BatchResponse, error) {
	if _, err := s.templateRepo.FindByID(ctx, req.TemplateID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("TEMPLATE_NOT_FOUND", "Batch template not found")
		}
		return nil, err
	}

	b, err := batch.NewBatch(req.TemplateID)
	if err != nil {
		return nil, err
	}

	if err := s.batchRepo.Save(ctx, b); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, b)
	return ToBatchResponse(b), nil
}

// Open transitions a batch to OPEN and pins its pricing date. The status
// change and the date pin are written atomically. Re-opening an already OPEN
// batch re-pins the date to today.
func (s *BatchService) Open(ctx context.Context, batchID uuid.UUID) (*BatchResponse, error) {
	var opened *batch.Batch
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		b, err := repos.BatchRepo().FindByID(ctx, batchID)
		if err != nil {
			return err
		}
		b.Open(time.Now())
		if err := repos.BatchRepo().Save(ctx, b); err != nil {
			return err
		}
		opened = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, opened)
	return ToBatchResponse(opened), nil
}

// GetByID retrieves a batch by ID
func (s *BatchService) GetByID(ctx context.Context, batchID uuid.UUID) (*BatchResponse, error) {
	b, err := s.batchRepo.FindByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	return ToBatchResponse(b), nil
}

// List retrieves batches with pagination
func (s *BatchService) List(ctx context.Context, filter BatchListFilter) (*shared.Paginated[*BatchResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	batches, err := s.batchRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.batchRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	items := make([]*BatchResponse, 0, len(batches))
	for i := range batches {
		items = append(items, ToBatchResponse(&batches[i]))
	}
	result := shared.NewPaginated(items, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// publishEvents publishes all pending domain events of the batch
func (s *BatchService) publishEvents(ctx context.Context, b *batch.Batch) {
	if s.eventPublisher == nil {
		return
	}
	events := b.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	// Publish events (errors are logged by the event bus, not propagated)
	_ = s.eventPublisher.Publish(ctx, events...)
	b.ClearDomainEvents()
}
