package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (Aggregate Root)
// El stock solo se modifica a través de AddStock/RemoveStock
type Product struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	ImageURL  *string         `json:"image_url"`
	Version   int             `json:"-"` // Lock optimista, incrementado en cada persistencia
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewProduct crea un nuevo producto con validaciones básicas
func NewProduct(name string, price decimal.Decimal, stock int, imageURL *string) (*Product, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if price.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	now := time.Now()
	return &Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     price,
		Stock:     stock,
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// UpdateDetails actualiza nombre, precio e imagen (Update del CRUD)
// El stock no se toca aquí: solo AddStock/RemoveStock lo modifican
func (p *Product) UpdateDetails(name string, price decimal.Decimal, imageURL *string) error {
	if name == "" {
		return ErrNameRequired
	}
	if price.LessThan(decimal.Zero) {
		return ErrInvalidPrice
	}

	p.Name = name
	p.Price = price
	p.ImageURL = imageURL
	p.UpdatedAt = time.Now()
	return nil
}

// RemoveStock descuenta stock del producto
// Mutación en memoria: el caller es responsable de persistir
func (p *Product) RemoveStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if p.Stock < quantity {
		return fmt.Errorf("stock insuficiente para el producto %s: %w", p.Name, ErrInsufficientStock)
	}

	p.Stock -= quantity
	p.UpdatedAt = time.Now()
	return nil
}

// AddStock agrega stock al producto
func (p *Product) AddStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	p.Stock += quantity
	p.UpdatedAt = time.Now()
	return nil
}

// SetImageURL asigna la URL de la imagen subida
func (p *Product) SetImageURL(url string) {
	p.ImageURL = &url
	p.UpdatedAt = time.Now()
}
