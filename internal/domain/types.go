package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Language codes supported by the localized product names.
const (
	LangEN = "en"
	LangES = "es"
	LangFR = "fr"
	LangDE = "de"
	LangIT = "it"
)

// Product is one catalog entry. Everything except StockQuantity is
// immutable once loaded; stock is decremented when orders are placed.
type Product struct {
	ID               string
	Name             string
	AlternativeNames map[string]string
	Category         string
	Price            decimal.Decimal
	Description      string
	Supplier         string
	StockQuantity    int
	VectorScore      *float64
}

// LocalizedName returns the product name for the given language code,
// falling back to the default name.
func (p Product) LocalizedName(lang string) string {
	if n, ok := p.AlternativeNames[lang]; ok && n != "" {
		return n
	}
	return p.Name
}

// CartLine is one product/quantity pairing held before checkout.
// A cart never holds two lines for the same product.
type CartLine struct {
	Product  Product
	Quantity int
}

// Total is the line total (quantity times unit price).
func (l CartLine) Total() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderStatus is the lifecycle state of a placed order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderLine is a snapshot of one cart line at checkout time.
type OrderLine struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Order is created atomically from the cart at checkout. Only Status may
// change afterwards, and not by this application.
type Order struct {
	ID           string
	CustomerName string
	Lines        []OrderLine
	Total        decimal.Decimal
	Status       OrderStatus
	CreatedAt    time.Time
}

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ChatMessage is one entry in the append-only agent transcript.
// Messages are never edited after creation.
type ChatMessage struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
}

// TicketPriority and TicketStatus classify helpdesk tickets.
type TicketPriority string

const (
	PriorityHigh   TicketPriority = "high"
	PriorityMedium TicketPriority = "medium"
	PriorityLow    TicketPriority = "low"
)

type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
)

// ConversationMessage is one entry in a ticket's conversation history.
type ConversationMessage struct {
	ID          string
	Sender      string
	SenderName  string
	Content     string
	Timestamp   time.Time
	MessageType string
}

// HelpdeskTicket is a support case with an AI-generated summary.
type HelpdeskTicket struct {
	ID            string
	Title         string
	Summary       string
	CustomerName  string
	Priority      TicketPriority
	Status        TicketStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
	OrderID       string
	NeedsSales    bool
	SalesAssigned string
	Conversation  []ConversationMessage
	Tags          []string
}

// Salesperson is an employee who can be assigned to a ticket.
type Salesperson struct {
	EmployeeID string
	Name       string
	Email      string
	Department string
	Phone      string
	Territory  string
	Active     bool
}
