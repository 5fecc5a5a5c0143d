package response

import "github.com/google/uuid"

// RegisterSaleResponse representa la respuesta del registro de venta
type RegisterSaleResponse struct {
	Message string    `json:"message"`
	SaleID  uuid.UUID `json:"sale_id"`
}
