package port

import (
	"context"
	"time"

	productEntity "github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/entity"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/domain/entity"
	"github.com/JhonCorredor/IndigoSalesSystem/src/shared/domain/criteria"
)

// SaleRepository define el contrato para persistir ventas
type SaleRepository interface {
	// RegisterSale persiste la venta, sus items y los nuevos niveles de stock
	// de los productos como una sola unidad atómica: o todo queda durable o
	// nada. Los fallos de infraestructura se reportan envolviendo
	// errs.ErrTransient; un conflicto de lock optimista se reporta como
	// errs.ErrVersionConflict
	RegisterSale(ctx context.Context, sale *entity.Sale, products []*productEntity.Product) error

	// FindByDateRange retorna las ventas con sus items en el rango [from, to)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Sale, error)

	// SearchByCriteria busca ventas (sin items) con filtros, orden y
	// paginación. Retorna también el conteo de items por venta y el total
	// de registros sin paginar
	SearchByCriteria(ctx context.Context, crit criteria.Criteria) ([]*SaleSummary, int, error)
}

// SaleSummary es la proyección de una venta para listados
type SaleSummary struct {
	Sale       entity.Sale
	ItemsCount int
}
