package service

import (
	"context"

	"marketplace-service/internal/models"
	"marketplace-service/internal/store"
	"marketplace-service/internal/util"

	"go.uber.org/zap"
)

// CatalogService handles the seller-facing product operations and buyer
// browsing/search. Update and delete are not scoped to the owning seller;
// any seller may act on any product id.
type CatalogService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store *store.Store) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// AddProductInput carries the seller-supplied product fields.
type AddProductInput struct {
	Name            string
	Model           string
	Category        string
	OriginalPrice   float64
	DiscountedPrice float64
	Description     string
	Quantity        int
}

// AddProduct stores a new product owned by the given seller.
func (s *CatalogService) AddProduct(ctx context.Context, ownerUsername string, in AddProductInput) models.Product {
	_, span := util.StartSpan(ctx, "CatalogService.AddProduct")
	defer span.End()

	p := s.store.AddProduct(models.Product{
		Name:            in.Name,
		Model:           in.Model,
		Category:        in.Category,
		OriginalPrice:   in.OriginalPrice,
		DiscountedPrice: in.DiscountedPrice,
		Description:     in.Description,
		Owner:           ownerUsername,
		Quantity:        in.Quantity,
	})

	util.ProductsAddedTotal.Inc()
	s.logger.Info("Product added",
		zap.Int("product_id", p.ID),
		zap.String("owner", ownerUsername))
	return p
}

// UpdateProductInput carries the fields an update rewrites.
type UpdateProductInput struct {
	Name            string
	Model           string
	Category        string
	DiscountedPrice float64
	Quantity        int
}

// UpdateProduct overwrites the mutable fields of an existing product.
func (s *CatalogService) UpdateProduct(ctx context.Context, id int, in UpdateProductInput) (models.Product, error) {
	_, span := util.StartSpan(ctx, "CatalogService.UpdateProduct")
	defer span.End()

	p, err := s.store.UpdateProduct(id, in.Name, in.Model, in.Category, in.DiscountedPrice, in.Quantity)
	if err != nil {
		return models.Product{}, err
	}

	s.logger.Info("Product updated", zap.Int("product_id", id))
	return p, nil
}

// DeleteProduct removes a product from the catalog.
func (s *CatalogService) DeleteProduct(ctx context.Context, id int) error {
	_, span := util.StartSpan(ctx, "CatalogService.DeleteProduct")
	defer span.End()

	if err := s.store.DeleteProduct(id); err != nil {
		return err
	}

	util.ProductsDeletedTotal.Inc()
	s.logger.Info("Product deleted", zap.Int("product_id", id))
	return nil
}

// ListProducts returns the full catalog in insertion order.
func (s *CatalogService) ListProducts(ctx context.Context) []models.Product {
	_, span := util.StartSpan(ctx, "CatalogService.ListProducts")
	defer span.End()

	return s.store.Products()
}

// Search applies one of the fixed search strategies over the catalog.
func (s *CatalogService) Search(ctx context.Context, mode SearchMode, q SearchQuery) ([]models.Product, error) {
	_, span := util.StartSpan(ctx, "CatalogService.Search")
	defer span.End()

	matches, err := filterProducts(s.store.Products(), mode, q)
	if err != nil {
		return nil, err
	}

	util.SearchesTotal.WithLabelValues(string(mode)).Inc()
	return matches, nil
}
