package usecase

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/JhonCorredor/IndigoSalesSystem/src/product/application/response"
	"github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/port"

	"github.com/google/uuid"
)

// UploadProductImageUseCase caso de uso para subir la imagen de un producto
type UploadProductImageUseCase struct {
	products port.ProductRepository
	storage  port.ImageStorage
}

// NewUploadProductImageUseCase crea una nueva instancia del caso de uso
func NewUploadProductImageUseCase(products port.ProductRepository, storage port.ImageStorage) *UploadProductImageUseCase {
	return &UploadProductImageUseCase{products: products, storage: storage}
}

// Execute guarda la imagen con un nombre único y actualiza la URL del producto
func (uc *UploadProductImageUseCase) Execute(ctx context.Context, id uuid.UUID, fileName string, content io.Reader) (*response.ProductResponse, error) {
	product, err := uc.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Nombre único conservando la extensión original
	uniqueName := uuid.New().String() + filepath.Ext(fileName)

	url, err := uc.storage.UploadImage(ctx, uniqueName, content)
	if err != nil {
		return nil, fmt.Errorf("error uploading image: %w", err)
	}

	product.SetImageURL(url)
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("error updating product image: %w", err)
	}

	log.Printf("🖼️  Imagen subida: Producto=%s, URL=%s", product.ID, url)
	return response.FromEntity(product), nil
}
