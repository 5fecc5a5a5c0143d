package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/JhonCorredor/IndigoSalesSystem/src/product/application/response"
	"github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/port"

	"github.com/google/uuid"
)

// AddStockUseCase caso de uso para agregar stock a un producto
type AddStockUseCase struct {
	products port.ProductRepository
}

// NewAddStockUseCase crea una nueva instancia del caso de uso
func NewAddStockUseCase(products port.ProductRepository) *AddStockUseCase {
	return &AddStockUseCase{products: products}
}

// Execute agrega la cantidad al stock del producto y persiste el cambio
func (uc *AddStockUseCase) Execute(ctx context.Context, id uuid.UUID, quantity int) (*response.ProductResponse, error) {
	product, err := uc.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.AddStock(quantity); err != nil {
		return nil, err
	}

	if err := uc.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("error updating product stock: %w", err)
	}

	log.Printf("📦 Stock agregado: Producto=%s, Cantidad=%d, Stock=%d", product.Name, quantity, product.Stock)
	return response.FromEntity(product), nil
}
