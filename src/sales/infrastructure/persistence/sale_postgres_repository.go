package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	productEntity "github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/entity"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/domain/entity"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/domain/port"
	domainCriteria "github.com/JhonCorredor/IndigoSalesSystem/src/shared/domain/criteria"
	"github.com/JhonCorredor/IndigoSalesSystem/src/shared/domain/errs"
	sqlCriteria "github.com/JhonCorredor/IndigoSalesSystem/src/shared/infrastructure/criteria"
	sharedPersistence "github.com/JhonCorredor/IndigoSalesSystem/src/shared/infrastructure/persistence"
)

// SalePostgresRepository implementa SaleRepository usando PostgreSQL
type SalePostgresRepository struct {
	db        *sql.DB
	converter *sqlCriteria.SQLCriteriaConverter
}

// NewSalePostgresRepository crea una nueva instancia del repositorio
func NewSalePostgresRepository(db *sql.DB) port.SaleRepository {
	return &SalePostgresRepository{
		db:        db,
		converter: sqlCriteria.NewSQLCriteriaConverter(),
	}
}

// RegisterSale persiste la venta, sus items y los nuevos niveles de stock en
// una sola transacción. El stock se escribe con lock optimista: si la versión
// del producto cambió desde la lectura, toda la transacción se aborta con
// errs.ErrVersionConflict para que el caller reintente desde la validación
func (r *SalePostgresRepository) RegisterSale(ctx context.Context, sale *entity.Sale, products []*productEntity.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return sharedPersistence.ClassifyError(fmt.Errorf("error starting transaction: %w", err))
	}
	defer tx.Rollback()

	// 1. Escribir los nuevos niveles de stock (compare-and-swap sobre version)
	queryStock := `
		UPDATE products
		SET stock = $2, version = version + 1, updated_at = $3
		WHERE id = $1 AND version = $4
	`

	for _, product := range products {
		result, err := tx.ExecContext(ctx, queryStock,
			product.ID,
			product.Stock,
			product.UpdatedAt,
			product.Version,
		)
		if err != nil {
			return sharedPersistence.ClassifyError(fmt.Errorf("error updating stock for product %s: %w", product.ID, err))
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return sharedPersistence.ClassifyError(fmt.Errorf("error updating stock for product %s: %w", product.ID, err))
		}
		if rows == 0 {
			return fmt.Errorf("product %s: %w", product.ID, errs.ErrVersionConflict)
		}
	}

	// 2. Insertar la venta (aggregate root)
	querySale := `
		INSERT INTO sales (id, date, total)
		VALUES ($1, $2, $3)
	`

	if _, err := tx.ExecContext(ctx, querySale, sale.ID, sale.Date, sale.Total); err != nil {
		return sharedPersistence.ClassifyError(fmt.Errorf("error saving sale: %w", err))
	}

	// 3. Insertar los items (entities del aggregate) con el precio capturado
	queryItem := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, item := range sale.Items {
		_, err := tx.ExecContext(ctx, queryItem,
			item.ID,
			item.SaleID,
			item.ProductID,
			item.Quantity,
			item.UnitPrice,
		)
		if err != nil {
			return sharedPersistence.ClassifyError(fmt.Errorf("error saving sale item: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return sharedPersistence.ClassifyError(fmt.Errorf("error committing transaction: %w", err))
	}

	return nil
}

// FindByDateRange retorna las ventas con sus items en el rango [from, to)
func (r *SalePostgresRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	querySales := `
		SELECT id, date, total
		FROM sales
		WHERE date >= $1 AND date < $2
		ORDER BY date
	`

	rows, err := r.db.QueryContext(ctx, querySales, from, to)
	if err != nil {
		return nil, sharedPersistence.ClassifyError(fmt.Errorf("error finding sales: %w", err))
	}
	defer rows.Close()

	var sales []*entity.Sale
	byID := make(map[string]*entity.Sale)
	for rows.Next() {
		sale := &entity.Sale{}
		if err := rows.Scan(&sale.ID, &sale.Date, &sale.Total); err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		sales = append(sales, sale)
		byID[sale.ID.String()] = sale
	}
	if err := rows.Err(); err != nil {
		return nil, sharedPersistence.ClassifyError(fmt.Errorf("error reading sales: %w", err))
	}

	if len(sales) == 0 {
		return sales, nil
	}

	// 2. Cargar los items de todas las ventas del rango en una sola consulta
	queryItems := `
		SELECT i.id, i.sale_id, i.product_id, i.quantity, i.unit_price
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		WHERE s.date >= $1 AND s.date < $2
		ORDER BY s.date
	`

	itemRows, err := r.db.QueryContext(ctx, queryItems, from, to)
	if err != nil {
		return nil, sharedPersistence.ClassifyError(fmt.Errorf("error finding sale items: %w", err))
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item entity.SaleItem
		if err := itemRows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("error scanning sale item: %w", err)
		}
		if sale, ok := byID[item.SaleID.String()]; ok {
			sale.Items = append(sale.Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, sharedPersistence.ClassifyError(fmt.Errorf("error reading sale items: %w", err))
	}

	return sales, nil
}

// SearchByCriteria busca ventas con filtros, orden y paginación
func (r *SalePostgresRepository) SearchByCriteria(ctx context.Context, crit domainCriteria.Criteria) ([]*port.SaleSummary, int, error) {
	baseQuery := `
		SELECT s.id, s.date, s.total,
			(SELECT COUNT(*) FROM sale_items i WHERE i.sale_id = s.id) AS items_count
		FROM sales s
	`
	query, params := r.converter.ToSelectSQL(baseQuery, crit)

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, 0, sharedPersistence.ClassifyError(fmt.Errorf("error searching sales: %w", err))
	}
	defer rows.Close()

	var summaries []*port.SaleSummary
	for rows.Next() {
		summary := &port.SaleSummary{}
		if err := rows.Scan(&summary.Sale.ID, &summary.Sale.Date, &summary.Sale.Total, &summary.ItemsCount); err != nil {
			return nil, 0, fmt.Errorf("error scanning sale: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, sharedPersistence.ClassifyError(fmt.Errorf("error reading sales: %w", err))
	}

	countQuery, countParams := r.converter.ToCountSQL("SELECT COUNT(*) FROM sales s", crit)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countParams...).Scan(&total); err != nil {
		return nil, 0, sharedPersistence.ClassifyError(fmt.Errorf("error counting sales: %w", err))
	}

	return summaries, total, nil
}
