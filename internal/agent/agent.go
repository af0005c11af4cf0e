package agent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"shopdesk/internal/catalog"
	"shopdesk/internal/domain"
)

const suggestionLimit = 3

// Agent is the shopping assistant: it classifies one utterance, applies
// the matching handler to the session and produces a reply. Handling is
// synchronous and single-threaded; one utterance is fully processed
// before the next is accepted.
type Agent struct {
	catalog  *catalog.Catalog
	customer string
	newID    func(prefix string) string
	now      func() time.Time
	log      *logrus.Logger
}

// Options customizes an Agent. The zero value gives uuid-based ids,
// wall-clock timestamps and the standard logger; tests inject a counter
// and a fixed clock to keep replies deterministic.
type Options struct {
	CustomerName string
	NewID        func(prefix string) string
	Now          func() time.Time
	Log          *logrus.Logger
}

// New creates an agent over the given catalog.
func New(cat *catalog.Catalog, opts Options) *Agent {
	a := &Agent{
		catalog:  cat,
		customer: opts.CustomerName,
		newID:    opts.NewID,
		now:      opts.Now,
		log:      opts.Log,
	}
	if a.customer == "" {
		a.customer = "Current User"
	}
	if a.newID == nil {
		a.newID = func(prefix string) string { return prefix + "-" + uuid.NewString() }
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.log == nil {
		a.log = logrus.StandardLogger()
	}
	return a
}

// UserMessage wraps raw input as a transcript entry.
func (a *Agent) UserMessage(content string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        a.newID("user"),
		Role:      domain.RoleUser,
		Content:   content,
		Timestamp: a.now(),
	}
}

// Handle classifies the utterance and applies the matching intent
// handler. It returns the updated session and the assistant's reply; it
// never fails, unrecognized or unsatisfiable requests degrade to a
// conversational message.
func (a *Agent) Handle(s Session, utterance string) (Session, domain.ChatMessage) {
	intent := Classify(utterance)
	a.log.WithFields(logrus.Fields{"intent": intent, "cart_lines": len(s.Cart)}).Debug("utterance classified")
	lower := strings.ToLower(utterance)
	switch intent {
	case IntentCheckAvailability:
		return s, a.checkAvailability(lower)
	case IntentPlaceOrder:
		return a.placeOrder(s, lower)
	case IntentCheckout:
		return a.checkout(s)
	case IntentViewCart:
		return s, a.viewCart(s)
	case IntentOrderStatus:
		return s, a.orderStatus(s)
	case IntentRecommend:
		return s, a.recommend(lower)
	default:
		return s, a.reply("I can help you with checking product availability, placing orders, and managing your shopping cart. What would you like to do today?")
	}
}

func (a *Agent) checkAvailability(lower string) domain.ChatMessage {
	p, ok := a.catalog.FindByPhrase(lower)
	if ok {
		if p.StockQuantity > 0 {
			return a.reply(fmt.Sprintf(
				"Yes, we have %s in stock! There are currently %d units available at $%s each. Would you like to add this to your cart?",
				p.Name, p.StockQuantity, p.Price))
		}
		return a.reply(fmt.Sprintf(
			"I'm sorry, %s is currently out of stock. Would you like me to suggest similar products?", p.Name))
	}
	suggestions := a.catalog.Suggest(lower, suggestionLimit)
	if len(suggestions) > 0 {
		parts := make([]string, len(suggestions))
		for i, p := range suggestions {
			parts[i] = fmt.Sprintf("%s ($%s)", p.Name, p.Price)
		}
		return a.reply(fmt.Sprintf(
			"I'm not sure which product you're looking for. Did you mean one of these? %s",
			strings.Join(parts, ", ")))
	}
	return a.reply("I'm not sure which product you're asking about. Could you please specify the product name?")
}

func (a *Agent) placeOrder(s Session, lower string) (Session, domain.ChatMessage) {
	p, ok := a.catalog.FindByPhrase(lower)
	if !ok {
		return s, a.reply("I'm not sure which product you'd like to order. Could you please specify the product name?")
	}
	quantity := parseQuantity(lower)
	if err := a.catalog.Reserve(p.ID, quantity); err != nil {
		current, _ := a.catalog.Get(p.ID)
		return s, a.reply(fmt.Sprintf(
			"I'm sorry, we only have %d units of %s in stock. Would you like to order this amount instead?",
			current.StockQuantity, p.Name))
	}
	s = s.withLine(p, quantity)
	return s, a.reply(fmt.Sprintf(
		"I've added %d %s of %s to your cart. Your cart now has %d %s. Would you like to add anything else or proceed to checkout?",
		quantity, plural(quantity, "unit", "units"), p.Name,
		len(s.Cart), plural(len(s.Cart), "item", "items")))
}

func (a *Agent) checkout(s Session) (Session, domain.ChatMessage) {
	if len(s.Cart) == 0 {
		return s, a.reply("Your cart is empty. Would you like to browse our products?")
	}
	total := s.CartTotal()
	lines := make([]domain.OrderLine, len(s.Cart))
	for i, line := range s.Cart {
		lines[i] = domain.OrderLine{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
		}
	}
	order := domain.Order{
		ID:           a.newID("ORD"),
		CustomerName: a.customer,
		Lines:        lines,
		Total:        total,
		Status:       domain.OrderProcessing,
		CreatedAt:    a.now(),
	}
	s = s.withOrder(order)
	return s, a.reply(fmt.Sprintf(
		"Thank you for your order! Your order #%s has been placed successfully. The total is $%s. Your order is now being processed and will be shipped soon.",
		order.ID, total.StringFixed(2)))
}

func (a *Agent) viewCart(s Session) domain.ChatMessage {
	if len(s.Cart) == 0 {
		return a.reply("Your cart is currently empty. Would you like to browse our products?")
	}
	parts := make([]string, len(s.Cart))
	for i, line := range s.Cart {
		parts[i] = fmt.Sprintf("%dx %s ($%s)", line.Quantity, line.Product.Name, line.Total().StringFixed(2))
	}
	return a.reply(fmt.Sprintf(
		"Your cart contains: %s. Total: $%s. Would you like to checkout or continue shopping?",
		strings.Join(parts, ", "), s.CartTotal().StringFixed(2)))
}

func (a *Agent) orderStatus(s Session) domain.ChatMessage {
	if s.CurrentOrder == nil {
		return a.reply("You don't have any recent orders. Would you like to place a new order?")
	}
	o := s.CurrentOrder
	return a.reply(fmt.Sprintf(
		"Your order #%s is currently %s. It contains %d products with a total of $%s.",
		o.ID, o.Status, len(o.Lines), o.Total.StringFixed(2)))
}

func (a *Agent) recommend(lower string) domain.ChatMessage {
	category := ""
	switch {
	case strings.Contains(lower, "beverage"):
		category = "Beverages"
	case strings.Contains(lower, "condiment"):
		category = "Condiments"
	case strings.Contains(lower, "produce"):
		category = "Produce"
	}
	products := a.catalog.InStockByCategory(category, suggestionLimit)
	parts := make([]string, len(products))
	for i, p := range products {
		parts[i] = fmt.Sprintf("%s ($%s) - %s...", p.Name, p.Price, truncate(p.Description, 50))
	}
	return a.reply(fmt.Sprintf(
		"Here are some recommendations for you:\n\n%s\n\nWould you like more information about any of these products?",
		strings.Join(parts, "\n\n")))
}

func (a *Agent) reply(content string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        a.newID("assistant"),
		Role:      domain.RoleAssistant,
		Content:   content,
		Timestamp: a.now(),
	}
}

var quantityRe = regexp.MustCompile(`\d+`)

// parseQuantity takes the first integer literal found anywhere in the
// utterance, defaulting to 1. The literal need not be adjacent to the
// product name, so "order 2 of the batch of 10" yields 2. A naive
// heuristic, kept as-is.
func parseQuantity(lower string) int {
	m := quantityRe.FindString(lower)
	if m == "" {
		return 1
	}
	n, err := strconv.Atoi(m)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
