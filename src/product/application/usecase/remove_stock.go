package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/JhonCorredor/IndigoSalesSystem/src/product/application/response"
	"github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/port"

	"github.com/google/uuid"
)

// RemoveStockUseCase caso de uso para descontar stock de un producto
// fuera del flujo de venta (ajustes, mermas)
type RemoveStockUseCase struct {
	products port.ProductRepository
}

// NewRemoveStockUseCase crea una nueva instancia del caso de uso
func NewRemoveStockUseCase(products port.ProductRepository) *RemoveStockUseCase {
	return &RemoveStockUseCase{products: products}
}

// Execute descuenta la cantidad del stock del producto y persiste el cambio
func (uc *RemoveStockUseCase) Execute(ctx context.Context, id uuid.UUID, quantity int) (*response.ProductResponse, error) {
	product, err := uc.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.RemoveStock(quantity); err != nil {
		return nil, err
	}

	if err := uc.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("error updating product stock: %w", err)
	}

	log.Printf("📦 Stock descontado: Producto=%s, Cantidad=%d, Stock=%d", product.Name, quantity, product.Stock)
	return response.FromEntity(product), nil
}
