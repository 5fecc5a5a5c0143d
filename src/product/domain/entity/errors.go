package entity

import "errors"

var (
	ErrNameRequired      = errors.New("name is required")
	ErrInvalidPrice      = errors.New("price must be greater than or equal to 0")
	ErrInvalidStock      = errors.New("stock must be greater than or equal to 0")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrProductNotFound   = errors.New("product not found")
)
