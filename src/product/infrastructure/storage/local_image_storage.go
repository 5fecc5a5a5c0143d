package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/port"
)

// LocalImageStorage implementa ImageStorage guardando los archivos en disco
// local y sirviéndolos bajo una URL base
type LocalImageStorage struct {
	basePath string
	baseURL  string
}

// NewLocalImageStorage crea el almacenamiento local, asegurando el directorio
func NewLocalImageStorage(basePath, baseURL string) (port.ImageStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("error creating image directory: %w", err)
	}
	return &LocalImageStorage{basePath: basePath, baseURL: baseURL}, nil
}

// UploadImage guarda el contenido en disco y retorna la URL pública
func (s *LocalImageStorage) UploadImage(_ context.Context, fileName string, content io.Reader) (string, error) {
	// filepath.Base evita que el nombre escape del directorio base
	fileName = filepath.Base(fileName)
	path := filepath.Join(s.basePath, fileName)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating image file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return "", fmt.Errorf("error writing image file: %w", err)
	}

	return s.baseURL + "/" + fileName, nil
}
