package criteria

// Operator representa un operador de comparación soportado en los filtros
type Operator string

const (
	OpEqual              Operator = "="
	OpNotEqual           Operator = "!="
	OpGreaterThan        Operator = ">"
	OpGreaterThanOrEqual Operator = ">="
	OpLessThan           Operator = "<"
	OpLessThanOrEqual    Operator = "<="
	OpLike               Operator = "LIKE"
	OpIn                 Operator = "IN"
	OpIsNull             Operator = "NULL"
	OpIsNotNull          Operator = "NOT NULL"
	OpArrayContains      Operator = "ARRAY_CONTAINS"
)

// OrderType representa la dirección del ordenamiento
type OrderType string

const (
	ASC  OrderType = "ASC"
	DESC OrderType = "DESC"
)

// Filter representa una condición individual sobre un campo
type Filter struct {
	Field    string
	Operator Operator
	Value    interface{}
}

// NewFilter crea un nuevo filtro
func NewFilter(field string, operator Operator, value interface{}) Filter {
	return Filter{Field: field, Operator: operator, Value: value}
}

// Filters representa una colección de filtros combinados con AND
type Filters struct {
	Items []Filter
}

// NewFilters crea una colección de filtros
func NewFilters(items ...Filter) Filters {
	return Filters{Items: items}
}

// Add agrega un filtro a la colección
func (f *Filters) Add(filter Filter) {
	f.Items = append(f.Items, filter)
}

// IsEmpty indica si la colección no tiene filtros
func (f Filters) IsEmpty() bool {
	return len(f.Items) == 0
}

// Order representa el ordenamiento de una consulta
type Order struct {
	Field     string
	OrderType OrderType
}

// NewOrder crea un nuevo ordenamiento
func NewOrder(field string, orderType OrderType) Order {
	return Order{Field: field, OrderType: orderType}
}

// IsEmpty indica si no se especificó ordenamiento
func (o Order) IsEmpty() bool {
	return o.Field == ""
}

// Criteria combina filtros, ordenamiento y paginación para una consulta
type Criteria struct {
	Filters Filters
	Order   Order
	Limit   *int
	Offset  *int
}

// NewCriteria crea un criteria completo
func NewCriteria(filters Filters, order Order, limit, offset *int) Criteria {
	return Criteria{
		Filters: filters,
		Order:   order,
		Limit:   limit,
		Offset:  offset,
	}
}
