package request

import "github.com/shopspring/decimal"

// ProductRequest representa el request para crear o actualizar un producto
type ProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	ImageURL *string         `json:"image_url"`
}

// StockAdjustmentRequest representa el request para agregar o quitar stock
type StockAdjustmentRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
