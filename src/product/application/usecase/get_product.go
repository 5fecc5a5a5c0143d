package usecase

import (
	"context"

	"github.com/JhonCorredor/IndigoSalesSystem/src/product/application/response"
	"github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/port"

	"github.com/google/uuid"
)

// GetProductUseCase caso de uso para consultar un producto por ID
type GetProductUseCase struct {
	products port.ProductRepository
}

// NewGetProductUseCase crea una nueva instancia del caso de uso
func NewGetProductUseCase(products port.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{products: products}
}

// Execute busca el producto; retorna entity.ErrProductNotFound si no existe
func (uc *GetProductUseCase) Execute(ctx context.Context, id uuid.UUID) (*response.ProductResponse, error) {
	product, err := uc.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return response.FromEntity(product), nil
}
