package response

import (
	"time"

	"github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductResponse representa un producto en las respuestas de la API
type ProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	ImageURL  *string         `json:"image_url"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// FromEntity mapea la entidad de dominio a la respuesta
func FromEntity(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ProductListResponse representa el listado paginado de productos
type ProductListResponse struct {
	TotalRecords int               `json:"total_records"`
	Data         []ProductResponse `json:"data"`
}
