package usecase

import (
	"context"
	"fmt"

	"github.com/JhonCorredor/IndigoSalesSystem/src/product/application/request"
	"github.com/JhonCorredor/IndigoSalesSystem/src/product/application/response"
	"github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/port"

	"github.com/google/uuid"
)

// UpdateProductUseCase caso de uso para actualizar los detalles de un producto.
// El stock no se modifica aquí: usar los casos de uso de stock
type UpdateProductUseCase struct {
	products port.ProductRepository
}

// NewUpdateProductUseCase crea una nueva instancia del caso de uso
func NewUpdateProductUseCase(products port.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{products: products}
}

// Execute actualiza nombre, precio e imagen del producto
func (uc *UpdateProductUseCase) Execute(ctx context.Context, id uuid.UUID, req *request.ProductRequest) (*response.ProductResponse, error) {
	product, err := uc.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.UpdateDetails(req.Name, req.Price, req.ImageURL); err != nil {
		return nil, err
	}

	if err := uc.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("error updating product: %w", err)
	}

	return response.FromEntity(product), nil
}
