package agent

import (
	"github.com/shopspring/decimal"

	"shopdesk/internal/domain"
)

// Session holds the cart and current order for one ongoing interaction.
// It is a value: handlers receive it, derive an updated copy and return
// it, so callers never observe a half-applied transition. State lives for
// the duration of one session and is lost on reset.
type Session struct {
	Cart         []domain.CartLine
	CurrentOrder *domain.Order
}

// CartTotal is the sum of quantity times unit price over all lines.
func (s Session) CartTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.Cart {
		total = total.Add(line.Total())
	}
	return total
}

// withLine returns a session whose cart includes quantity units of the
// product. An existing line for the same product absorbs the quantity;
// otherwise a new line is appended. The receiver's cart slice is left
// untouched.
func (s Session) withLine(p domain.Product, quantity int) Session {
	cart := make([]domain.CartLine, len(s.Cart))
	copy(cart, s.Cart)
	for i := range cart {
		if cart[i].Product.ID == p.ID {
			cart[i].Quantity += quantity
			s.Cart = cart
			return s
		}
	}
	s.Cart = append(cart, domain.CartLine{Product: p, Quantity: quantity})
	return s
}

// withOrder returns a session with the cart cleared and the given order
// set as the current one.
func (s Session) withOrder(order domain.Order) Session {
	s.Cart = nil
	s.CurrentOrder = &order
	return s
}
