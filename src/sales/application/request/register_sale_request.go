package request

import (
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/domain/entity"

	"github.com/google/uuid"
)

// RegisterSaleItemRequest representa una línea solicitada de la venta
type RegisterSaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

// RegisterSaleRequest representa el request para registrar una venta
type RegisterSaleRequest struct {
	Items []RegisterSaleItemRequest `json:"items" binding:"required"`
}

// ToBasket convierte el request en líneas de canasta del dominio,
// preservando el orden de entrada
func (r *RegisterSaleRequest) ToBasket() []entity.BasketLine {
	basket := make([]entity.BasketLine, 0, len(r.Items))
	for _, item := range r.Items {
		basket = append(basket, entity.BasketLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return basket
}
