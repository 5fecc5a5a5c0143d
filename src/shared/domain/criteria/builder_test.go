package criteria_test

import (
	"net/url"
	"testing"

	"github.com/JhonCorredor/IndigoSalesSystem/src/shared/domain/criteria"

	"github.com/stretchr/testify/require"
)

func TestCriteriaBuilder(t *testing.T) {
	t.Run("ExplicitFiltersAndPagination", func(t *testing.T) {
		c := criteria.NewCriteriaBuilder().
			WithFilter("name", criteria.OpLike, "laptop").
			WithOrder("price", criteria.ASC).
			WithPagination(20, 40).
			Build()

		require.Len(t, c.Filters.Items, 1)
		require.Equal(t, "name", c.Filters.Items[0].Field)
		require.Equal(t, criteria.OpLike, c.Filters.Items[0].Operator)
		require.Equal(t, "price", c.Order.Field)
		require.Equal(t, criteria.ASC, c.Order.OrderType)
		require.Equal(t, 20, *c.Limit)
		require.Equal(t, 40, *c.Offset)
	})

	t.Run("FromURLValuesBuildsEqualityFilters", func(t *testing.T) {
		values := url.Values{}
		values.Set("name", "Laptop")
		values.Set("stock", "10")
		values.Set("order_by", "price")

		c := criteria.NewCriteriaBuilder().FromURLValues(values).Build()

		require.Len(t, c.Filters.Items, 2)
		for _, f := range c.Filters.Items {
			require.Equal(t, criteria.OpEqual, f.Operator)
		}
		// Sin order_dir explícito, el orden es descendente
		require.Equal(t, "price", c.Order.Field)
		require.Equal(t, criteria.DESC, c.Order.OrderType)
	})

	t.Run("ReservedKeysAreNotFilters", func(t *testing.T) {
		values := url.Values{}
		values.Set("order_by", "name")
		values.Set("order_dir", "asc")
		values.Set("limit", "5")
		values.Set("offset", "10")
		values.Set("page", "1")
		values.Set("page_size", "20")

		c := criteria.NewCriteriaBuilder().FromURLValues(values).Build()
		require.True(t, c.Filters.IsEmpty())
		require.Equal(t, criteria.ASC, c.Order.OrderType)
	})

	t.Run("OrderDirIgnoresCase", func(t *testing.T) {
		for _, dir := range []string{"asc", "ASC", "Asc"} {
			values := url.Values{}
			values.Set("order_by", "name")
			values.Set("order_dir", dir)

			c := criteria.NewCriteriaBuilder().FromURLValues(values).Build()
			require.Equal(t, criteria.ASC, c.Order.OrderType, "order_dir=%s", dir)
		}

		for _, dir := range []string{"desc", "DESC", ""} {
			values := url.Values{}
			values.Set("order_by", "name")
			values.Set("order_dir", dir)

			c := criteria.NewCriteriaBuilder().FromURLValues(values).Build()
			require.Equal(t, criteria.DESC, c.Order.OrderType, "order_dir=%s", dir)
		}
	})

	t.Run("PageTakesPrecedenceOverLimit", func(t *testing.T) {
		values := url.Values{}
		values.Set("page", "3")
		values.Set("page_size", "15")
		values.Set("limit", "5")
		values.Set("offset", "99")

		c := criteria.NewCriteriaBuilder().FromURLValues(values).Build()
		require.Equal(t, 15, *c.Limit)
		require.Equal(t, 30, *c.Offset)
	})

	t.Run("PageWithoutSizeDefaultsToTen", func(t *testing.T) {
		values := url.Values{}
		values.Set("page", "2")

		c := criteria.NewCriteriaBuilder().FromURLValues(values).Build()
		require.Equal(t, 10, *c.Limit)
		require.Equal(t, 10, *c.Offset)
	})

	t.Run("LimitOffsetFallback", func(t *testing.T) {
		values := url.Values{}
		values.Set("limit", "25")
		values.Set("offset", "50")

		c := criteria.NewCriteriaBuilder().FromURLValues(values).Build()
		require.Equal(t, 25, *c.Limit)
		require.Equal(t, 50, *c.Offset)
	})

	t.Run("EmptyValuesYieldEmptyCriteria", func(t *testing.T) {
		values := url.Values{}
		values.Set("name", "")

		c := criteria.NewCriteriaBuilder().FromURLValues(values).Build()
		require.True(t, c.Filters.IsEmpty())
		require.True(t, c.Order.IsEmpty())
		require.Nil(t, c.Limit)
		require.Nil(t, c.Offset)
	})
}
