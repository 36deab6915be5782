package supplier

import (
	"context"
	"errors"

	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/cosmo/backend/internal/domain/supplier"
	"github.com/google/uuid"
)

// SupplierService handles supplier operations
type SupplierService struct {
	supplierRepo supplier.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo supplier.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	sup, err := supplier.NewSupplier(req.Name, req.ContactEmail, req.ContactPhone, req.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, sup); err != nil {
		return nil, err
	}
	return ToSupplierResponse(sup), nil
}

// Update updates a supplier's basic information
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	sup, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := sup.Update(req.Name, req.ContactEmail, req.ContactPhone, req.Notes); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, sup); err != nil {
		return nil, err
	}
	return ToSupplierResponse(sup), nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	sup, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToSupplierResponse(sup), nil
}

// List retrieves suppliers with name search and pagination
func (s *SupplierService) List(ctx context.Context, filter SupplierListFilter) (*shared.Paginated[*SupplierResponse], error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	suppliers, err := s.supplierRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.supplierRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	items := make([]*SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		items = append(items, ToSupplierResponse(&suppliers[i]))
	}
	result := shared.NewPaginated(items, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Activate marks a supplier as active
func (s *SupplierService) Activate(ctx context.Context, id uuid.UUID) error {
	sup, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	sup.Activate()
	return s.supplierRepo.Save(ctx, sup)
}

// Deactivate marks a supplier as inactive
func (s *SupplierService) Deactivate(ctx context.Context, id uuid.UUID) error {
	sup, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	sup.Deactivate()
	return s.supplierRepo.Save(ctx, sup)
}

// OfferService handles supplier offer, offer price and default offer operations
type OfferService struct {
	offerRepo        supplier.OfferRepository
	offerPriceRepo   supplier.OfferPriceRepository
	defaultOfferRepo supplier.DefaultOfferRepository
	supplierRepo     supplier.SupplierRepository
}

// NewOfferService creates a new OfferService
func NewOfferService(
	offerRepo supplier.OfferRepository,
	offerPriceRepo supplier.OfferPriceRepository,
	defaultOfferRepo supplier.DefaultOfferRepository,
	supplierRepo supplier.SupplierRepository,
) *OfferService {
	return &OfferService{
		offerRepo:        offerRepo,
		offerPriceRepo:   offerPriceRepo,
		defaultOfferRepo: defaultOfferRepo,
		supplierRepo:     supplierRepo,
	}
}

// Create creates a new offer for an existing supplier
func (s *OfferService) Create(ctx context.Context, req CreateOfferRequest) (*OfferResponse, error) {
	if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("SUPPLIER_NOT_FOUND", "Supplier not found")
		}
		return nil, err
	}

	o, err := supplier.NewOffer(req.SupplierID, req.RawMaterialID, req.PackageSize, req.PackageUnit, req.SKU, req.Link)
	if err != nil {
		return nil, err
	}
	if err := s.offerRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	return ToOfferResponse(o), nil
}

// Update updates an offer's package details
func (s *OfferService) Update(ctx context.Context, id uuid.UUID, req UpdateOfferRequest) (*OfferResponse, error) {
	o, err := s.offerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := o.Update(req.PackageSize, req.PackageUnit, req.SKU, req.Link); err != nil {
		return nil, err
	}
	if err := s.offerRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	return ToOfferResponse(o), nil
}

// GetByID retrieves an offer by ID
func (s *OfferService) GetByID(ctx context.Context, id uuid.UUID) (*OfferResponse, error) {
	o, err := s.offerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOfferResponse(o), nil
}

// ListByRawMaterial returns all offers for a raw material
func (s *OfferService) ListByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) ([]*OfferResponse, error) {
	offers, err := s.offerRepo.FindByRawMaterial(ctx, rawMaterialID)
	if err != nil {
		return nil, err
	}
	return toOfferResponses(offers), nil
}

// ListBySupplier returns all offers of a supplier
func (s *OfferService) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*OfferResponse, error) {
	offers, err := s.offerRepo.FindBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	return toOfferResponses(offers), nil
}

// Activate marks an offer as active
func (s *OfferService) Activate(ctx context.Context, id uuid.UUID) error {
	o, err := s.offerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	o.Activate()
	return s.offerRepo.Save(ctx, o)
}

// Deactivate marks an offer as inactive
func (s *OfferService) Deactivate(ctx context.Context, id uuid.UUID) error {
	o, err := s.offerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	o.Deactivate()
	return s.offerRepo.Save(ctx, o)
}

// AddPrice adds a price row to an offer's history
func (s *OfferService) AddPrice(ctx context.Context, offerID uuid.UUID, req AddOfferPriceRequest) (*OfferPriceResponse, error) {
	if _, err := s.offerRepo.FindByID(ctx, offerID); err != nil {
		return nil, err
	}

	validFrom, validTo, err := parseValidity(req.ValidFrom, req.ValidTo)
	if err != nil {
		return nil, err
	}

	p, err := supplier.NewOfferPrice(offerID, req.PricePerPackage, req.Currency, validFrom, validTo)
	if err != nil {
		return nil, err
	}
	if err := s.offerPriceRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return ToOfferPriceResponse(p), nil
}

// ListPrices returns the price history of an offer
func (s *OfferService) ListPrices(ctx context.Context, offerID uuid.UUID) ([]*OfferPriceResponse, error) {
	if _, err := s.offerRepo.FindByID(ctx, offerID); err != nil {
		return nil, err
	}

	prices, err := s.offerPriceRepo.FindByOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	items := make([]*OfferPriceResponse, 0, len(prices))
	for i := range prices {
		items = append(items, ToOfferPriceResponse(&prices[i]))
	}
	return items, nil
}

// SetDefaultOffer assigns the default offer of a raw material. The offer must
// sell that raw material.
func (s *OfferService) SetDefaultOffer(ctx context.Context, rawMaterialID uuid.UUID, req SetDefaultOfferRequest) (*DefaultOfferResponse, error) {
	o, err := s.offerRepo.FindByID(ctx, req.OfferID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("OFFER_NOT_FOUND", "Offer not found")
		}
		return nil, err
	}
	if o.RawMaterialID != rawMaterialID {
		return nil, shared.ErrInvalidSelection
	}

	if err := s.defaultOfferRepo.Set(ctx, rawMaterialID, req.OfferID); err != nil {
		return nil, err
	}
	return &DefaultOfferResponse{RawMaterialID: rawMaterialID, OfferID: req.OfferID}, nil
}

// GetDefaultOffer returns the default offer mapping of a raw material
func (s *OfferService) GetDefaultOffer(ctx context.Context, rawMaterialID uuid.UUID) (*DefaultOfferResponse, error) {
	def, err := s.defaultOfferRepo.FindByRawMaterial(ctx, rawMaterialID)
	if err != nil {
		return nil, err
	}
	return &DefaultOfferResponse{RawMaterialID: def.RawMaterialID, OfferID: def.OfferID}, nil
}

// ClearDefaultOffer removes the default offer mapping of a raw material.
// Clearing an absent mapping is not an error.
func (s *OfferService) ClearDefaultOffer(ctx context.Context, rawMaterialID uuid.UUID) error {
	return s.defaultOfferRepo.Clear(ctx, rawMaterialID)
}

func toOfferResponses(offers []supplier.Offer) []*OfferResponse {
	items := make([]*OfferResponse, 0, len(offers))
	for i := range offers {
		items = append(items, ToOfferResponse(&offers[i]))
	}
	return items
}
