package port

import (
	"context"
	"io"
)

// ImageStorage define el contrato para almacenar imágenes de productos
type ImageStorage interface {
	// UploadImage guarda el contenido y retorna la URL pública de la imagen
	UploadImage(ctx context.Context, fileName string, content io.Reader) (string, error)
}
