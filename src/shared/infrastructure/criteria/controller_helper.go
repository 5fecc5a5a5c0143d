package criteria

import (
	"net/url"

	domainCriteria "github.com/JhonCorredor/IndigoSalesSystem/src/shared/domain/criteria"

	"github.com/gin-gonic/gin"
)

// ControllerHelper proporciona funciones base para trabajar con criterios en controllers
type ControllerHelper struct{}

// NewControllerHelper crea una nueva instancia del helper
func NewControllerHelper() *ControllerHelper {
	return &ControllerHelper{}
}

// BuildCriteriaFromQuery construye criterios base desde query parameters de Gin
func (h *ControllerHelper) BuildCriteriaFromQuery(c *gin.Context) *domainCriteria.CriteriaBuilder {
	return domainCriteria.NewCriteriaBuilder().FromURLValues(c.Request.URL.Query())
}

// BuildCriteriaFromURLValues construye criterios base desde url.Values
func (h *ControllerHelper) BuildCriteriaFromURLValues(values url.Values) *domainCriteria.CriteriaBuilder {
	return domainCriteria.NewCriteriaBuilder().FromURLValues(values)
}

// ValidateAndSanitizeCriteria valida y sanitiza criterios antes de usarlos:
// descarta filtros sobre campos no permitidos y normaliza el ordenamiento
func (h *ControllerHelper) ValidateAndSanitizeCriteria(criteria domainCriteria.Criteria, allowedFields []string) domainCriteria.Criteria {
	if len(allowedFields) == 0 {
		return criteria
	}

	allowedMap := make(map[string]bool)
	for _, field := range allowedFields {
		allowedMap[field] = true
	}

	validFilters := domainCriteria.NewFilters()
	for _, filter := range criteria.Filters.Items {
		if allowedMap[filter.Field] {
			validFilters.Add(filter)
		}
	}

	// Un orden sobre un campo no permitido cae al primer campo permitido,
	// que por convención es el orden por defecto de cada listado
	validOrder := criteria.Order
	if validOrder.Field != "" && !allowedMap[validOrder.Field] {
		validOrder = domainCriteria.NewOrder(allowedFields[0], domainCriteria.DESC)
	}

	return domainCriteria.NewCriteria(validFilters, validOrder, criteria.Limit, criteria.Offset)
}
