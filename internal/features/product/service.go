package product

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go-dashboard/pkg/apperr"

	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var skuPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

type CreateProductInput struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	SKU         string    `json:"sku" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Price       float64   `json:"price" validate:"gte=0"`
	CostPrice   float64   `json:"costPrice" validate:"gte=0"`
	Stock       int       `json:"stock" validate:"gte=0"`
	MinStock    int       `json:"minStock" validate:"gte=0"`
	MaxStock    int       `json:"maxStock" validate:"gte=0"`
	Unit        string    `json:"unit" validate:"required"`
	Barcode     string    `json:"barcode"`
	Image       string    `json:"image"`
	Status      string    `json:"status"`
	Supplier    *Supplier `json:"supplier"`
	Location    *Location `json:"location"`
	Tags        []string  `json:"tags"`
	IsActive    *bool     `json:"isActive"`
}

// UpdateProductInput patches individual fields; nil pointers keep the stored
// value.
type UpdateProductInput struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	SKU         *string   `json:"sku"`
	Category    *string   `json:"category"`
	Price       *float64  `json:"price"`
	CostPrice   *float64  `json:"costPrice"`
	Stock       *int      `json:"stock"`
	MinStock    *int      `json:"minStock"`
	MaxStock    *int      `json:"maxStock"`
	Unit        *string   `json:"unit"`
	Barcode     *string   `json:"barcode"`
	Image       *string   `json:"image"`
	Status      *string   `json:"status"`
	Supplier    *Supplier `json:"supplier"`
	Location    *Location `json:"location"`
	Tags        []string  `json:"tags"`
	IsActive    *bool     `json:"isActive"`
}

// BatchInput drives one bulk operation over a set of product ids.
type BatchInput struct {
	Operation  string                 `json:"operation" validate:"required"`
	ProductIDs []string               `json:"productIds" validate:"required,min=1"`
	UpdateData map[string]interface{} `json:"updateData"`
}

type BatchResult struct {
	Operation string `json:"operation"`
	Affected  int64  `json:"affected"`
}

// SearchHit is the slim shape returned by autocomplete and SKU lookup.
type SearchHit struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	SKU        string  `json:"sku"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	ExactMatch bool    `json:"exactMatch,omitempty"`
}

type ProductService interface {
	List(ctx context.Context, filter Filter) ([]Product, int64, error)
	Get(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, input CreateProductInput, actorID string) (*Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput, actorID string) (*Product, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, searchType string, limit int64) ([]SearchHit, error)
	Batch(ctx context.Context, input BatchInput, actorID string) (*BatchResult, error)
}

type ProductServiceImpl struct {
	ProductRepo ProductRepository
	validate    *validator.Validate
}

func NewProductService(productRepo ProductRepository) ProductService {
	return &ProductServiceImpl{
		ProductRepo: productRepo,
		validate:    validator.New(),
	}
}

func (s *ProductServiceImpl) List(ctx context.Context, filter Filter) ([]Product, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}
	return s.ProductRepo.List(ctx, filter)
}

func (s *ProductServiceImpl) Get(ctx context.Context, id string) (*Product, error) {
	p, err := s.ProductRepo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.New(apperr.NotFound, "product not found")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductServiceImpl) Create(ctx context.Context, input CreateProductInput, actorID string) (*Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.New(apperr.InvalidArgument, "invalid product payload: %v", err)
	}
	if input.MinStock > input.MaxStock {
		return nil, apperr.New(apperr.InvalidArgument, "minimum stock cannot exceed maximum stock")
	}

	sku := strings.ToUpper(strings.TrimSpace(input.SKU))
	if !skuPattern.MatchString(sku) {
		return nil, apperr.New(apperr.InvalidArgument, "sku must contain only letters, numbers, and hyphens")
	}
	if err := s.checkSKUFree(ctx, sku, ""); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = StatusActive
	}
	if !isValidStatus(status) {
		return nil, apperr.New(apperr.InvalidArgument, "unknown product status %q", status)
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	p := &Product{
		ID:          primitive.NewObjectID(),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		SKU:         sku,
		Category:    input.Category,
		Price:       input.Price,
		CostPrice:   input.CostPrice,
		Stock:       input.Stock,
		MinStock:    input.MinStock,
		MaxStock:    input.MaxStock,
		Unit:        input.Unit,
		Barcode:     strings.TrimSpace(input.Barcode),
		Image:       input.Image,
		Status:      status,
		Supplier:    input.Supplier,
		Location:    input.Location,
		Tags:        tags,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   actorID,
		UpdatedBy:   actorID,
	}
	if err := s.ProductRepo.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductServiceImpl) Update(ctx context.Context, id string, input UpdateProductInput, actorID string) (*Product, error) {
	current, err := s.ProductRepo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.New(apperr.NotFound, "product not found")
	}
	if err != nil {
		return nil, err
	}

	updated := *current

	if input.Name != nil {
		updated.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		updated.Description = strings.TrimSpace(*input.Description)
	}
	if input.SKU != nil {
		sku := strings.ToUpper(strings.TrimSpace(*input.SKU))
		if !skuPattern.MatchString(sku) {
			return nil, apperr.New(apperr.InvalidArgument, "sku must contain only letters, numbers, and hyphens")
		}
		if err := s.checkSKUFree(ctx, sku, id); err != nil {
			return nil, err
		}
		updated.SKU = sku
	}
	if input.Category != nil {
		updated.Category = *input.Category
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperr.New(apperr.InvalidArgument, "price must be non-negative")
		}
		updated.Price = *input.Price
	}
	if input.CostPrice != nil {
		if *input.CostPrice < 0 {
			return nil, apperr.New(apperr.InvalidArgument, "cost price must be non-negative")
		}
		updated.CostPrice = *input.CostPrice
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, apperr.New(apperr.InvalidArgument, "stock must be non-negative")
		}
		updated.Stock = *input.Stock
	}
	if input.MinStock != nil {
		updated.MinStock = *input.MinStock
	}
	if input.MaxStock != nil {
		updated.MaxStock = *input.MaxStock
	}
	if updated.MinStock > updated.MaxStock {
		return nil, apperr.New(apperr.InvalidArgument, "minimum stock cannot exceed maximum stock")
	}
	if input.Unit != nil {
		updated.Unit = *input.Unit
	}
	if input.Barcode != nil {
		updated.Barcode = strings.TrimSpace(*input.Barcode)
	}
	if input.Image != nil {
		updated.Image = *input.Image
	}
	if input.Status != nil {
		if !isValidStatus(*input.Status) {
			return nil, apperr.New(apperr.InvalidArgument, "unknown product status %q", *input.Status)
		}
		updated.Status = *input.Status
	}
	if input.Supplier != nil {
		updated.Supplier = input.Supplier
	}
	if input.Location != nil {
		updated.Location = input.Location
	}
	if input.Tags != nil {
		updated.Tags = input.Tags
	}
	if input.IsActive != nil {
		updated.IsActive = *input.IsActive
	}

	updated.UpdatedAt = time.Now()
	updated.UpdatedBy = actorID
	if err := s.ProductRepo.Update(ctx, id, &updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "product not found")
		}
		return nil, err
	}
	return &updated, nil
}

func (s *ProductServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.ProductRepo.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.New(apperr.NotFound, "product not found")
	}
	return err
}

// Search backs the autocomplete box and barcode scanner. A general query
// matches name, sku and barcode; sku_lookup additionally flags exact matches.
func (s *ProductServiceImpl) Search(ctx context.Context, query string, searchType string, limit int64) ([]SearchHit, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return []SearchHit{}, nil
	}

	products, _, err := s.ProductRepo.List(ctx, Filter{
		Search: query,
		Page:   1,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	hits := make([]SearchHit, 0, len(products))
	for i := range products {
		p := &products[i]
		hit := SearchHit{
			ID:       p.ID.Hex(),
			Name:     p.Name,
			SKU:      p.SKU,
			Category: p.Category,
			Price:    p.Price,
			Stock:    p.Stock,
		}
		if searchType == "sku_lookup" {
			hit.ExactMatch = strings.EqualFold(p.SKU, query)
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

func (s *ProductServiceImpl) Batch(ctx context.Context, input BatchInput, actorID string) (*BatchResult, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.New(apperr.InvalidArgument, "invalid batch payload: %v", err)
	}

	switch input.Operation {
	case "bulk_update_status":
		status, _ := input.UpdateData["status"].(string)
		if status == "" {
			return nil, apperr.New(apperr.InvalidArgument, "status is required for bulk status update")
		}
		if !isValidStatus(status) {
			return nil, apperr.New(apperr.InvalidArgument, "unknown product status %q", status)
		}
		n, err := s.ProductRepo.UpdateMany(ctx, input.ProductIDs, map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
			"updated_by": actorID,
		})
		if err != nil {
			return nil, err
		}
		return &BatchResult{Operation: input.Operation, Affected: n}, nil

	case "bulk_update_category":
		category, _ := input.UpdateData["category"].(string)
		if category == "" {
			return nil, apperr.New(apperr.InvalidArgument, "category is required for bulk category update")
		}
		n, err := s.ProductRepo.UpdateMany(ctx, input.ProductIDs, map[string]interface{}{
			"category":   category,
			"updated_at": time.Now(),
			"updated_by": actorID,
		})
		if err != nil {
			return nil, err
		}
		return &BatchResult{Operation: input.Operation, Affected: n}, nil

	case "bulk_delete":
		var n int64
		for _, id := range input.ProductIDs {
			err := s.ProductRepo.Delete(ctx, id)
			if errors.Is(err, mongo.ErrNoDocuments) {
				continue
			}
			if err != nil {
				return nil, err
			}
			n++
		}
		return &BatchResult{Operation: input.Operation, Affected: n}, nil

	default:
		return nil, apperr.New(apperr.InvalidArgument, "unknown batch operation %q", input.Operation)
	}
}

func (s *ProductServiceImpl) checkSKUFree(ctx context.Context, sku, selfID string) error {
	existing, err := s.ProductRepo.FindBySKU(ctx, sku)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil
	case err != nil:
		return err
	case existing.ID.Hex() == selfID:
		return nil
	default:
		return apperr.New(apperr.Conflict, "sku already exists")
	}
}

func isValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusInactive, StatusOutOfStock:
		return true
	}
	return false
}
