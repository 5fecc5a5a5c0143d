package usecase

import (
	"context"
	"fmt"

	"github.com/JhonCorredor/IndigoSalesSystem/src/product/application/response"
	"github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/port"
	"github.com/JhonCorredor/IndigoSalesSystem/src/shared/domain/criteria"
)

// ListProductsUseCase caso de uso para listar productos con criterios
type ListProductsUseCase struct {
	products port.ProductRepository
}

// NewListProductsUseCase crea una nueva instancia del caso de uso
func NewListProductsUseCase(products port.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{products: products}
}

// Execute busca productos según los criterios recibidos
func (uc *ListProductsUseCase) Execute(ctx context.Context, crit criteria.Criteria) (*response.ProductListResponse, error) {
	products, total, err := uc.products.SearchByCriteria(ctx, crit)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}

	data := make([]response.ProductResponse, 0, len(products))
	for _, p := range products {
		data = append(data, *response.FromEntity(p))
	}

	return &response.ProductListResponse{
		TotalRecords: total,
		Data:         data,
	}, nil
}
