package service

import (
	"context"
	"errors"
	"fmt"

	productEntity "github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/entity"
	productPort "github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/port"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/domain/entity"

	"github.com/google/uuid"
)

// ResolvedLine es una línea de canasta resuelta contra el catálogo,
// lista para descontar stock
type ResolvedLine struct {
	Product  *productEntity.Product
	Quantity int
}

// StockValidator valida la disponibilidad de stock de una canasta completa.
// Un producto inexistente aborta de inmediato; los faltantes de stock se
// acumulan todos antes de fallar, para reportarlos juntos
type StockValidator struct {
	products productPort.ProductRepository
}

// NewStockValidator crea un nuevo validador
func NewStockValidator(products productPort.ProductRepository) *StockValidator {
	return &StockValidator{products: products}
}

// Validate resuelve cada línea en orden de entrada.
// Las líneas duplicadas comparten la misma instancia cargada del producto y
// cada una se compara contra el stock original (sin acumulado): el descuento
// posterior es quien rechaza el sobregiro combinado
func (v *StockValidator) Validate(ctx context.Context, lines []entity.BasketLine) ([]ResolvedLine, error) {
	loaded := make(map[uuid.UUID]*productEntity.Product)
	resolved := make([]ResolvedLine, 0, len(lines))
	var shortfalls []entity.Shortfall

	for _, line := range lines {
		product, ok := loaded[line.ProductID]
		if !ok {
			var err error
			product, err = v.products.FindByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, productEntity.ErrProductNotFound) {
					// Error referencial, no de negocio: se aborta sin evaluar
					// las líneas restantes
					return nil, &entity.ProductNotFoundError{ProductID: line.ProductID}
				}
				return nil, fmt.Errorf("error loading product %s: %w", line.ProductID, err)
			}
			loaded[line.ProductID] = product
		}

		if product.Stock < line.Quantity {
			shortfalls = append(shortfalls, entity.Shortfall{
				ProductName: product.Name,
				Available:   product.Stock,
				Requested:   line.Quantity,
			})
			continue
		}

		resolved = append(resolved, ResolvedLine{Product: product, Quantity: line.Quantity})
	}

	if len(shortfalls) > 0 {
		return nil, &entity.InsufficientStockError{Shortfalls: shortfalls}
	}

	return resolved, nil
}
