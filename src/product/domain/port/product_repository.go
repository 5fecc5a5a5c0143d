package port

import (
	"context"

	"github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/entity"
	"github.com/JhonCorredor/IndigoSalesSystem/src/shared/domain/criteria"

	"github.com/google/uuid"
)

// ProductRepository define el contrato para persistir productos
type ProductRepository interface {
	// Save persiste un producto nuevo
	Save(ctx context.Context, product *entity.Product) error

	// FindByID busca un producto por su ID
	// Retorna entity.ErrProductNotFound si no existe
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Update persiste los cambios de un producto existente con lock optimista
	// sobre Version; incrementa Version si la escritura tiene éxito
	Update(ctx context.Context, product *entity.Product) error

	// SearchByCriteria busca productos con filtros, orden y paginación
	// Retorna los productos y el total sin paginar
	SearchByCriteria(ctx context.Context, crit criteria.Criteria) ([]*entity.Product, int, error)
}
