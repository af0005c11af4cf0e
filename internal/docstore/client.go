package docstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"shopdesk/internal/domain"
)

// Client is a minimal REST client to the document store's query API.
// Searches go through server-side embedding tasks; the store both ranks
// by vector similarity and returns the full documents.
type Client struct {
	url        string
	database   string
	apiKey     string
	similarity float64
	client     *http.Client
}

type Config struct {
	URL        string
	Database   string
	APIKeyEnv  string
	Similarity float64
	Timeout    time.Duration
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	similarity := cfg.Similarity
	if similarity == 0 {
		similarity = 0.6
	}
	apiKey := ""
	if cfg.APIKeyEnv != "" {
		apiKey = os.Getenv(cfg.APIKeyEnv)
	}
	return &Client{
		url:        cfg.URL,
		database:   cfg.Database,
		apiKey:     apiKey,
		similarity: similarity,
		client:     &http.Client{Timeout: timeout},
	}
}

// QueryProducts runs a vector search over the Products collection using
// the store's product-embedding task and maps raw documents to products.
func (c *Client) QueryProducts(text string) ([]domain.Product, error) {
	query := `from "Products" where vector.search(embedding.text(Name, ai.task('generateembeddingsforproducts')), $query, $similarity)`
	var resp queryResponse[rawProduct]
	if err := c.runQuery(query, text, &resp); err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	products := make([]domain.Product, 0, len(resp.Results))
	for _, doc := range resp.Results {
		products = append(products, doc.toDomain())
	}
	return products, nil
}

// QueryTickets runs a vector search over ticket summary embeddings.
func (c *Client) QueryTickets(text string) ([]domain.HelpdeskTicket, error) {
	query := `from "HelpdeskTickets" where vector.search(embedding.text(summary, ai.task('generateembeddingsforsummaries')), $query, $similarity)`
	var resp queryResponse[rawTicket]
	if err := c.runQuery(query, text, &resp); err != nil {
		return nil, errors.Wrap(err, "query tickets")
	}
	tickets := make([]domain.HelpdeskTicket, 0, len(resp.Results))
	for _, doc := range resp.Results {
		tickets = append(tickets, doc.toDomain())
	}
	return tickets, nil
}

// LoadTicket fetches a single ticket document by id.
func (c *Client) LoadTicket(id string) (*domain.HelpdeskTicket, error) {
	var doc rawTicket
	found, err := c.loadDoc("HelpdeskTickets/"+id, &doc)
	if err != nil {
		return nil, errors.Wrap(err, "load ticket")
	}
	if !found {
		return nil, nil
	}
	t := doc.toDomain()
	return &t, nil
}

// LoadEmployee fetches an employee document and maps it to a sales
// contact.
func (c *Client) LoadEmployee(id string) (*domain.Salesperson, error) {
	var doc rawEmployee
	found, err := c.loadDoc(id, &doc)
	if err != nil {
		return nil, errors.Wrap(err, "load employee")
	}
	if !found {
		return nil, nil
	}
	s := doc.toDomain()
	return &s, nil
}

type queryResponse[T any] struct {
	Results []T `json:"Results"`
}

func (c *Client) runQuery(query, text string, out any) error {
	body := map[string]any{
		"Query": query,
		"QueryParameters": map[string]any{
			"query":      text,
			"similarity": c.similarity,
		},
	}
	return c.postJSON(fmt.Sprintf("%s/databases/%s/queries", c.url, c.database), body, out)
}

func (c *Client) loadDoc(id string, out any) (bool, error) {
	u := fmt.Sprintf("%s/databases/%s/docs?id=%s", c.url, c.database, url.QueryEscape(id))
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	c.setHeaders(req)
	resp, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, errors.Errorf("docstore returned status %d", resp.StatusCode)
	}
	var envelope queryResponse[json.RawMessage]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return false, err
	}
	if len(envelope.Results) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(envelope.Results[0], out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Client) postJSON(u string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, u, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("docstore returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) setHeaders(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

type metadata struct {
	ID string `json:"@id"`
}

type rawProduct struct {
	Metadata         metadata          `json:"@metadata"`
	Name             string            `json:"Name"`
	AlternativeNames map[string]string `json:"AlternativeNames"`
	Category         string            `json:"Category"`
	PricePerUnit     decimal.Decimal   `json:"PricePerUnit"`
	Description      string            `json:"Description"`
	Supplier         string            `json:"Supplier"`
	UnitsInStock     int               `json:"UnitsInStock"`
}

func (r rawProduct) toDomain() domain.Product {
	id := r.Metadata.ID
	if id == "" {
		id = "unknown"
	}
	return domain.Product{
		ID:               id,
		Name:             r.Name,
		AlternativeNames: r.AlternativeNames,
		Category:         r.Category,
		Price:            r.PricePerUnit,
		Description:      r.Description,
		Supplier:         r.Supplier,
		StockQuantity:    r.UnitsInStock,
	}
}

type rawConversationMessage struct {
	ID          string `json:"id"`
	Sender      string `json:"sender"`
	SenderName  string `json:"sender_name"`
	Content     string `json:"content"`
	Timestamp   string `json:"timestamp"`
	MessageType string `json:"message_type"`
}

type rawTicket struct {
	Metadata      metadata                 `json:"@metadata"`
	Title         string                   `json:"title"`
	Summary       string                   `json:"summary"`
	CustomerName  string                   `json:"customer_name"`
	Priority      string                   `json:"priority"`
	Status        string                   `json:"status"`
	CreatedAt     string                   `json:"created_at"`
	UpdatedAt     string                   `json:"updated_at"`
	OrderID       string                   `json:"order_id"`
	NeedsSales    bool                     `json:"needs_sales"`
	SalesAssigned string                   `json:"sales_assigned"`
	Conversation  []rawConversationMessage `json:"conversation_history"`
	Tags          []string                 `json:"tags"`
}

func (r rawTicket) toDomain() domain.HelpdeskTicket {
	conversation := make([]domain.ConversationMessage, 0, len(r.Conversation))
	for _, m := range r.Conversation {
		conversation = append(conversation, domain.ConversationMessage{
			ID:          m.ID,
			Sender:      m.Sender,
			SenderName:  m.SenderName,
			Content:     m.Content,
			Timestamp:   parseTime(m.Timestamp),
			MessageType: m.MessageType,
		})
	}
	return domain.HelpdeskTicket{
		ID:            r.Metadata.ID,
		Title:         r.Title,
		Summary:       r.Summary,
		CustomerName:  r.CustomerName,
		Priority:      domain.TicketPriority(r.Priority),
		Status:        domain.TicketStatus(r.Status),
		CreatedAt:     parseTime(r.CreatedAt),
		UpdatedAt:     parseTime(r.UpdatedAt),
		OrderID:       r.OrderID,
		NeedsSales:    r.NeedsSales,
		SalesAssigned: r.SalesAssigned,
		Conversation:  conversation,
		Tags:          r.Tags,
	}
}

type rawEmployee struct {
	Metadata    metadata `json:"@metadata"`
	FirstName   string   `json:"FirstName"`
	LastName    string   `json:"LastName"`
	Title       string   `json:"Title"`
	HomePhone   string   `json:"HomePhone"`
	Territories []string `json:"Territories"`
}

func (r rawEmployee) toDomain() domain.Salesperson {
	territory := ""
	if len(r.Territories) > 0 {
		territory = r.Territories[0]
	}
	return domain.Salesperson{
		EmployeeID: r.Metadata.ID,
		Name:       r.FirstName + " " + r.LastName,
		Email:      strings.ToLower(r.FirstName + "." + r.LastName + "@northwind.com"),
		Department: "Sales, " + r.Title,
		Phone:      r.HomePhone,
		Territory:  territory,
		Active:     true,
	}
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
