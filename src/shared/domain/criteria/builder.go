package criteria

import (
	"net/url"
	"strconv"
	"strings"
)

// Claves reservadas de query params que no se interpretan como filtros
const (
	paramOrderBy  = "order_by"
	paramOrderDir = "order_dir"
	paramLimit    = "limit"
	paramOffset   = "offset"
	paramPage     = "page"
	paramPageSize = "page_size"
)

// CriteriaBuilder construye un Criteria de forma incremental
type CriteriaBuilder struct {
	filters Filters
	order   Order
	limit   *int
	offset  *int
}

// NewCriteriaBuilder crea un builder vacío
func NewCriteriaBuilder() *CriteriaBuilder {
	return &CriteriaBuilder{filters: NewFilters()}
}

// WithFilter agrega un filtro
func (b *CriteriaBuilder) WithFilter(field string, operator Operator, value interface{}) *CriteriaBuilder {
	b.filters.Add(NewFilter(field, operator, value))
	return b
}

// WithOrder define el ordenamiento
func (b *CriteriaBuilder) WithOrder(field string, orderType OrderType) *CriteriaBuilder {
	b.order = NewOrder(field, orderType)
	return b
}

// WithPagination define límite y offset
func (b *CriteriaBuilder) WithPagination(limit, offset int) *CriteriaBuilder {
	b.limit = &limit
	b.offset = &offset
	return b
}

// FromURLValues construye filtros, orden y paginación desde query params.
// Las claves reservadas (order_by, order_dir, limit, offset, page, page_size)
// controlan orden y paginación; el resto se interpreta como filtros de igualdad.
func (b *CriteriaBuilder) FromURLValues(values url.Values) *CriteriaBuilder {
	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}

		switch key {
		case paramOrderBy, paramOrderDir, paramLimit, paramOffset, paramPage, paramPageSize:
			continue
		default:
			b.filters.Add(NewFilter(key, OpEqual, vals[0]))
		}
	}

	if orderBy := values.Get(paramOrderBy); orderBy != "" {
		dir := DESC
		if strings.EqualFold(values.Get(paramOrderDir), string(ASC)) {
			dir = ASC
		}
		b.order = NewOrder(orderBy, dir)
	}

	// page/page_size tiene prioridad sobre limit/offset
	if page, pageSize, ok := parsePage(values); ok {
		limit := pageSize
		offset := (page - 1) * pageSize
		b.limit = &limit
		b.offset = &offset
	} else if limit, err := strconv.Atoi(values.Get(paramLimit)); err == nil && limit > 0 {
		offset := 0
		if parsed, err := strconv.Atoi(values.Get(paramOffset)); err == nil && parsed >= 0 {
			offset = parsed
		}
		b.limit = &limit
		b.offset = &offset
	}

	return b
}

func parsePage(values url.Values) (page, pageSize int, ok bool) {
	page, err := strconv.Atoi(values.Get(paramPage))
	if err != nil || page < 1 {
		return 0, 0, false
	}

	pageSize, err = strconv.Atoi(values.Get(paramPageSize))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	return page, pageSize, true
}

// Build construye el Criteria final
func (b *CriteriaBuilder) Build() Criteria {
	return NewCriteria(b.filters, b.order, b.limit, b.offset)
}
