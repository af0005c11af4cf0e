package domain

// ProductSearcher answers free-text product queries against the document
// store's vector-search index.
type ProductSearcher interface {
	QueryProducts(text string) ([]Product, error)
}

// TicketSearcher answers free-text queries over ticket summary embeddings
// and loads individual documents.
type TicketSearcher interface {
	QueryTickets(text string) ([]HelpdeskTicket, error)
	LoadTicket(id string) (*HelpdeskTicket, error)
	LoadEmployee(id string) (*Salesperson, error)
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}
