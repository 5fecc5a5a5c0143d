package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/JhonCorredor/IndigoSalesSystem/src/product/application/request"
	"github.com/JhonCorredor/IndigoSalesSystem/src/product/application/response"
	"github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/entity"
	"github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/port"
)

// CreateProductUseCase caso de uso para crear productos
type CreateProductUseCase struct {
	products port.ProductRepository
}

// NewCreateProductUseCase crea una nueva instancia del caso de uso
func NewCreateProductUseCase(products port.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{products: products}
}

// Execute crea y persiste un nuevo producto
func (uc *CreateProductUseCase) Execute(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	product, err := entity.NewProduct(req.Name, req.Price, req.Stock, req.ImageURL)
	if err != nil {
		return nil, err
	}

	if err := uc.products.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("error saving product: %w", err)
	}

	log.Printf("✅ Producto creado: ID=%s, Nombre=%s", product.ID, product.Name)
	return response.FromEntity(product), nil
}
