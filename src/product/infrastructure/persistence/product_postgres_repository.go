package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/entity"
	"github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/port"
	domainCriteria "github.com/JhonCorredor/IndigoSalesSystem/src/shared/domain/criteria"
	"github.com/JhonCorredor/IndigoSalesSystem/src/shared/domain/errs"
	sqlCriteria "github.com/JhonCorredor/IndigoSalesSystem/src/shared/infrastructure/criteria"
	sharedPersistence "github.com/JhonCorredor/IndigoSalesSystem/src/shared/infrastructure/persistence"

	"github.com/google/uuid"
)

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db        *sql.DB
	converter *sqlCriteria.SQLCriteriaConverter
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sql.DB) port.ProductRepository {
	return &ProductPostgresRepository{
		db:        db,
		converter: sqlCriteria.NewSQLCriteriaConverter(),
	}
}

// Save persiste un producto nuevo
func (r *ProductPostgresRepository) Save(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (
			id, name, price, stock, image_url, version, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Price,
		product.Stock,
		product.ImageURL,
		product.Version,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		return sharedPersistence.ClassifyError(fmt.Errorf("error saving product: %w", err))
	}

	return nil
}

// FindByID busca un producto por su ID
func (r *ProductPostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `
		SELECT id, name, price, stock, image_url, version, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	product := &entity.Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Stock,
		&product.ImageURL,
		&product.Version,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, sharedPersistence.ClassifyError(fmt.Errorf("error finding product: %w", err))
	}

	return product, nil
}

// Update persiste los cambios del producto con lock optimista sobre version
func (r *ProductPostgresRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, stock = $4, image_url = $5,
			version = version + 1, updated_at = $6
		WHERE id = $1 AND version = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Price,
		product.Stock,
		product.ImageURL,
		product.UpdatedAt,
		product.Version,
	)
	if err != nil {
		return sharedPersistence.ClassifyError(fmt.Errorf("error updating product: %w", err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return sharedPersistence.ClassifyError(fmt.Errorf("error updating product: %w", err))
	}
	if rows == 0 {
		return fmt.Errorf("product %s version %d: %w", product.ID, product.Version, errs.ErrVersionConflict)
	}

	product.Version++
	return nil
}

// SearchByCriteria busca productos con filtros, orden y paginación
func (r *ProductPostgresRepository) SearchByCriteria(ctx context.Context, crit domainCriteria.Criteria) ([]*entity.Product, int, error) {
	baseQuery := `
		SELECT id, name, price, stock, image_url, version, created_at, updated_at
		FROM products
	`
	query, params := r.converter.ToSelectSQL(baseQuery, crit)

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, 0, sharedPersistence.ClassifyError(fmt.Errorf("error searching products: %w", err))
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product := &entity.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.Stock,
			&product.ImageURL,
			&product.Version,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, sharedPersistence.ClassifyError(fmt.Errorf("error reading products: %w", err))
	}

	countQuery, countParams := r.converter.ToCountSQL("SELECT COUNT(*) FROM products", crit)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countParams...).Scan(&total); err != nil {
		return nil, 0, sharedPersistence.ClassifyError(fmt.Errorf("error counting products: %w", err))
	}

	return products, total, nil
}
