package agent_test

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopdesk/internal/agent"
	"shopdesk/internal/catalog"
	"shopdesk/internal/domain"
)

func product(id, name, category, price string, stock int) domain.Product {
	return domain.Product{
		ID:            id,
		Name:          name,
		Category:      category,
		Price:         decimal.RequireFromString(price),
		Description:   "A fine product with a long enough description to need truncating somewhere past fifty characters.",
		StockQuantity: stock,
	}
}

func newTestAgent(products ...domain.Product) (*agent.Agent, *catalog.Catalog) {
	cat := catalog.New(products)
	counter := 0
	log := logrus.New()
	log.SetOutput(io.Discard)
	a := agent.New(cat, agent.Options{
		CustomerName: "Test User",
		NewID: func(prefix string) string {
			counter++
			return fmt.Sprintf("%s-%d", prefix, counter)
		},
		Now: func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) },
		Log: log,
	})
	return a, cat
}

func TestCheckAvailability(t *testing.T) {
	t.Run("in stock reports quantity and price without mutating stock", func(t *testing.T) {
		a, cat := newTestAgent(product("p1", "Chai", "Beverages", "18", 10))

		s, reply := a.Handle(agent.Session{}, "Do you have Chai in stock?")

		assert.Equal(t, domain.RoleAssistant, reply.Role)
		assert.Contains(t, reply.Content, "10")
		assert.Contains(t, reply.Content, "$18")
		assert.Empty(t, s.Cart)

		p, ok := cat.Get("p1")
		require.True(t, ok)
		assert.Equal(t, 10, p.StockQuantity)
	})

	t.Run("out of stock offers alternatives", func(t *testing.T) {
		a, _ := newTestAgent(product("p1", "Chai", "Beverages", "18", 0))
		_, reply := a.Handle(agent.Session{}, "Do you have Chai in stock?")
		assert.Contains(t, reply.Content, "out of stock")
	})

	t.Run("unresolved name yields suggestions capped at 3 in catalog order", func(t *testing.T) {
		a, _ := newTestAgent(
			product("p1", "Berry Syrup", "Condiments", "10", 5),
			product("p2", "Maple Syrup", "Condiments", "12", 5),
			product("p3", "Corn Syrup", "Condiments", "8", 5),
			product("p4", "Golden Syrup", "Condiments", "9", 5),
		)
		_, reply := a.Handle(agent.Session{}, "do you have any syrup")
		assert.Contains(t, reply.Content, "Did you mean")
		assert.Contains(t, reply.Content, "Berry Syrup ($10), Maple Syrup ($12), Corn Syrup ($8)")
		assert.NotContains(t, reply.Content, "Golden Syrup")
	})

	t.Run("nothing close asks for clarification", func(t *testing.T) {
		a, _ := newTestAgent(product("p1", "Chai", "Beverages", "18", 10))
		_, reply := a.Handle(agent.Session{}, "do you have flux capacitors?")
		assert.Contains(t, reply.Content, "specify the product name")
	})
}

func TestPlaceOrder(t *testing.T) {
	t.Run("decrements stock and adds cart line", func(t *testing.T) {
		a, cat := newTestAgent(product("p1", "Chai", "Beverages", "18", 10))

		s, reply := a.Handle(agent.Session{}, "order 3 chai")

		require.Len(t, s.Cart, 1)
		assert.Equal(t, "p1", s.Cart[0].Product.ID)
		assert.Equal(t, 3, s.Cart[0].Quantity)
		assert.Contains(t, reply.Content, "3 units")

		p, _ := cat.Get("p1")
		assert.Equal(t, 7, p.StockQuantity)
		assert.True(t, s.CartTotal().Equal(decimal.RequireFromString("54")))
	})

	t.Run("quantity defaults to 1", func(t *testing.T) {
		a, cat := newTestAgent(product("p1", "Chai", "Beverages", "18", 10))
		s, reply := a.Handle(agent.Session{}, "order chai")
		require.Len(t, s.Cart, 1)
		assert.Equal(t, 1, s.Cart[0].Quantity)
		assert.Contains(t, reply.Content, "1 unit of Chai")
		p, _ := cat.Get("p1")
		assert.Equal(t, 9, p.StockQuantity)
	})

	t.Run("takes the first integer anywhere in the utterance", func(t *testing.T) {
		a, _ := newTestAgent(product("p1", "Chai", "Beverages", "18", 100))
		s, _ := a.Handle(agent.Session{}, "for table 2 please order chai")
		require.Len(t, s.Cart, 1)
		assert.Equal(t, 2, s.Cart[0].Quantity)
	})

	t.Run("re-adding merges quantities into one line", func(t *testing.T) {
		a, cat := newTestAgent(product("p1", "Chai", "Beverages", "18", 10))
		s, _ := a.Handle(agent.Session{}, "order 2 chai")
		s, reply := a.Handle(s, "order 3 chai")

		require.Len(t, s.Cart, 1)
		assert.Equal(t, 5, s.Cart[0].Quantity)
		assert.Contains(t, reply.Content, "1 item")
		p, _ := cat.Get("p1")
		assert.Equal(t, 5, p.StockQuantity)
	})

	t.Run("insufficient stock leaves stock and cart unchanged", func(t *testing.T) {
		a, cat := newTestAgent(product("p1", "Chai", "Beverages", "18", 10))

		s, reply := a.Handle(agent.Session{}, "order 20 chai")

		assert.Empty(t, s.Cart)
		assert.Contains(t, reply.Content, "only have 10 units of Chai")
		p, _ := cat.Get("p1")
		assert.Equal(t, 10, p.StockQuantity)
	})

	t.Run("unresolved product asks for clarification", func(t *testing.T) {
		a, _ := newTestAgent(product("p1", "Chai", "Beverages", "18", 10))
		s, reply := a.Handle(agent.Session{}, "order 2 flux capacitors")
		assert.Empty(t, s.Cart)
		assert.Contains(t, reply.Content, "which product you'd like to order")
	})
}

func TestCheckout(t *testing.T) {
	t.Run("creates order from cart and clears it", func(t *testing.T) {
		a, _ := newTestAgent(product("p1", "Chai", "Beverages", "18", 10))
		s, _ := a.Handle(agent.Session{}, "order 3 chai")
		preTotal := s.CartTotal()

		s, reply := a.Handle(s, "checkout")

		require.NotNil(t, s.CurrentOrder)
		assert.Empty(t, s.Cart)
		assert.Equal(t, domain.OrderProcessing, s.CurrentOrder.Status)
		assert.Equal(t, "Test User", s.CurrentOrder.CustomerName)
		assert.True(t, s.CurrentOrder.Total.Equal(preTotal))
		require.Len(t, s.CurrentOrder.Lines, 1)
		assert.Equal(t, 3, s.CurrentOrder.Lines[0].Quantity)
		assert.Contains(t, reply.Content, s.CurrentOrder.ID)
		assert.Contains(t, reply.Content, "54.00")
	})

	t.Run("empty cart creates no order", func(t *testing.T) {
		a, _ := newTestAgent(product("p1", "Chai", "Beverages", "18", 10))
		s, reply := a.Handle(agent.Session{}, "checkout")
		assert.Nil(t, s.CurrentOrder)
		assert.Contains(t, reply.Content, "Your cart is empty")
	})
}

func TestViewCart(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		a, _ := newTestAgent(product("p1", "Chai", "Beverages", "18", 10))
		_, reply := a.Handle(agent.Session{}, "what's in my cart")
		assert.Contains(t, reply.Content, "currently empty")
	})

	t.Run("lists every line with totals", func(t *testing.T) {
		a, _ := newTestAgent(
			product("p1", "Chai", "Beverages", "18", 10),
			product("p2", "Tofu", "Produce", "23.25", 10),
		)
		s, _ := a.Handle(agent.Session{}, "order 3 chai")
		s, _ = a.Handle(s, "order 2 tofu")

		_, reply := a.Handle(s, "what's in my cart")

		assert.Contains(t, reply.Content, "3x Chai ($54.00)")
		assert.Contains(t, reply.Content, "2x Tofu ($46.50)")
		assert.Contains(t, reply.Content, "Total: $100.50")
	})
}

func TestRecommend(t *testing.T) {
	t.Run("filters by category keyword and skips out of stock", func(t *testing.T) {
		a, _ := newTestAgent(
			product("p1", "Chai", "Beverages", "18", 10),
			product("p2", "Chang", "Beverages", "19", 0),
			product("p3", "Tofu", "Produce", "23.25", 10),
			product("p4", "Guarana", "Beverages", "4.5", 20),
		)
		_, reply := a.Handle(agent.Session{}, "Can you recommend some beverages?")
		assert.Contains(t, reply.Content, "Chai ($18)")
		assert.Contains(t, reply.Content, "Guarana ($4.5)")
		assert.NotContains(t, reply.Content, "Chang")
		assert.NotContains(t, reply.Content, "Tofu")
	})

	t.Run("no category keyword recommends across the catalog", func(t *testing.T) {
		a, _ := newTestAgent(
			product("p1", "Chai", "Beverages", "18", 10),
			product("p2", "Tofu", "Produce", "23.25", 10),
		)
		_, reply := a.Handle(agent.Session{}, "any suggestions?")
		assert.Contains(t, reply.Content, "Chai")
		assert.Contains(t, reply.Content, "Tofu")
	})
}

func TestUnknownIntent(t *testing.T) {
	a, _ := newTestAgent(product("p1", "Chai", "Beverages", "18", 10))
	s, reply := a.Handle(agent.Session{}, "hello there")
	assert.Empty(t, s.Cart)
	assert.Contains(t, reply.Content, "product availability")
}

func TestRepliesAreFresh(t *testing.T) {
	a, _ := newTestAgent(product("p1", "Chai", "Beverages", "18", 10))
	_, first := a.Handle(agent.Session{}, "hello")
	_, second := a.Handle(agent.Session{}, "hello")
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.Timestamp.IsZero())
}

func TestHandleDoesNotMutateInputSession(t *testing.T) {
	a, _ := newTestAgent(product("p1", "Chai", "Beverages", "18", 100))
	s, _ := a.Handle(agent.Session{}, "order 2 chai")
	before := s.Cart[0].Quantity

	// Deriving a new session from s must leave s intact.
	updated, _ := a.Handle(s, "order 3 chai")

	assert.Equal(t, before, s.Cart[0].Quantity)
	assert.Equal(t, 5, updated.Cart[0].Quantity)
}
