package service

import (
	"context"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/dto"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/model"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	ListPizzas(ctx context.Context) ([]dto.ProductResponse, error)
	ListDrinks(ctx context.Context) ([]dto.ProductResponse, error)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	SetAvailable(ctx context.Context, id uuid.UUID, available bool) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)

	CreateVariant(ctx context.Context, req dto.CreateVariantRequest) (*dto.VariantResponse, error)
	ListVariants(ctx context.Context) ([]dto.VariantResponse, error)
	ListVariantsByProduct(ctx context.Context, productID uuid.UUID) ([]dto.VariantResponse, error)
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

// defaultVariants are seeded for every new product. The modifiers are
// multiplicative against the base price.
var defaultVariants = []struct {
	name     string
	modifier decimal.Decimal
}{
	{"small", decimal.NewFromInt(1)},
	{"medium", decimal.NewFromFloat(1.5)},
	{"large", decimal.NewFromInt(2)},
}

// Create inserts the product and its three size variants in one transaction.
func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ProductType: req.ProductType,
		Available:   true,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(ctx, tx, &product); err != nil {
			return err
		}
		for _, v := range defaultVariants {
			variant := model.ProductVariant{
				ProductID:     product.ID,
				VariantName:   v.name,
				PriceModifier: v.modifier,
			}
			if err := s.repo.CreateVariantTx(ctx, tx, &variant); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return productToResponse(&product), nil
}

func (s *productService) ListPizzas(ctx context.Context) ([]dto.ProductResponse, error) {
	return s.listByType(ctx, model.ProductTypePizza)
}

func (s *productService) ListDrinks(ctx context.Context) ([]dto.ProductResponse, error) {
	return s.listByType(ctx, model.ProductTypeDrink)
}

func (s *productService) listByType(ctx context.Context, productType string) ([]dto.ProductResponse, error) {
	products, err := s.repo.ListByType(ctx, productType)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductResponse, len(products))
	for i := range products {
		resp[i] = *productToResponse(&products[i])
	}
	return resp, nil
}

func (s *productService) FindOne(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return productToResponse(product), nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return productToResponse(product), nil
}

func (s *productService) SetAvailable(ctx context.Context, id uuid.UUID, available bool) (*dto.ProductResponse, error) {
	if err := s.repo.SetAvailable(ctx, id, available); err != nil {
		return nil, err
	}
	return s.FindOne(ctx, id)
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return productToResponse(product), nil
}

// CreateVariant adds a custom variant on top of the seeded size set.
// A duplicate (product, name) pair surfaces as a conflict.
func (s *productService) CreateVariant(ctx context.Context, req dto.CreateVariantRequest) (*dto.VariantResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	variant := model.ProductVariant{
		ProductID:     productID,
		VariantName:   req.VariantName,
		PriceModifier: req.PriceModifier,
	}
	if err := s.repo.CreateVariant(ctx, &variant); err != nil {
		return nil, err
	}
	return variantToResponse(&variant), nil
}

func (s *productService) ListVariants(ctx context.Context) ([]dto.VariantResponse, error) {
	variants, err := s.repo.ListVariants(ctx)
	if err != nil {
		return nil, err
	}
	return variantsToResponse(variants), nil
}

func (s *productService) ListVariantsByProduct(ctx context.Context, productID uuid.UUID) ([]dto.VariantResponse, error) {
	variants, err := s.repo.ListVariantsByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return variantsToResponse(variants), nil
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		ProductType: p.ProductType,
		Available:   p.Available,
	}
}

func variantToResponse(v *model.ProductVariant) *dto.VariantResponse {
	return &dto.VariantResponse{
		ID:            v.ID.String(),
		ProductID:     v.ProductID.String(),
		VariantName:   v.VariantName,
		PriceModifier: v.PriceModifier,
	}
}

func variantsToResponse(variants []model.ProductVariant) []dto.VariantResponse {
	resp := make([]dto.VariantResponse, len(variants))
	for i := range variants {
		resp[i] = *variantToResponse(&variants[i])
	}
	return resp
}
