// Package helpdesk implements ticket search, filtering and detail lookup
// for the support desk view.
package helpdesk

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"shopdesk/internal/domain"
)

// FilterOptions narrows a result set client-side. The zero value keeps
// everything.
type FilterOptions struct {
	Priority  domain.TicketPriority
	Status    domain.TicketStatus
	SalesOnly bool
}

type Service struct {
	store               domain.TicketSearcher
	fallback            []domain.HelpdeskTicket
	summarizer          domain.Summarizer
	maxSummarySentences int
	log                 *logrus.Logger
}

func New(store domain.TicketSearcher, fallback []domain.HelpdeskTicket, summarizer domain.Summarizer, maxSummarySentences int, log *logrus.Logger) *Service {
	if maxSummarySentences <= 0 {
		maxSummarySentences = 2
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		store:               store,
		fallback:            fallback,
		summarizer:          summarizer,
		maxSummarySentences: maxSummarySentences,
		log:                 log,
	}
}

// Search runs a summary-embedding search over tickets, falling back to a
// substring filter of the static dataset when the store returns nothing.
// Tickets that arrive without a summary get one generated locally from
// their conversation history.
func (s *Service) Search(query string) ([]domain.HelpdeskTicket, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, nil
	}
	var tickets []domain.HelpdeskTicket
	if s.store != nil {
		results, err := s.store.QueryTickets(trimmed)
		if err != nil {
			return nil, errors.Wrap(err, "ticket search")
		}
		tickets = results
	}
	if len(tickets) == 0 {
		tickets = s.filterFallback(trimmed)
	}
	for i := range tickets {
		s.ensureSummary(&tickets[i])
	}
	return tickets, nil
}

// Filter applies priority, status and sales-needed filters in order.
func Filter(tickets []domain.HelpdeskTicket, opts FilterOptions) []domain.HelpdeskTicket {
	out := make([]domain.HelpdeskTicket, 0, len(tickets))
	for _, t := range tickets {
		if opts.SalesOnly && !t.NeedsSales {
			continue
		}
		if opts.Priority != "" && t.Priority != opts.Priority {
			continue
		}
		if opts.Status != "" && t.Status != opts.Status {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SalesCount reports how many tickets are flagged for sales support.
func SalesCount(tickets []domain.HelpdeskTicket) int {
	n := 0
	for _, t := range tickets {
		if t.NeedsSales {
			n++
		}
	}
	return n
}

// TicketDetails loads the full ticket, preferring the document store and
// falling back to the static dataset.
func (s *Service) TicketDetails(id string) (*domain.HelpdeskTicket, error) {
	if s.store != nil {
		ticket, err := s.store.LoadTicket(id)
		if err != nil {
			return nil, errors.Wrap(err, "ticket details")
		}
		if ticket != nil {
			s.ensureSummary(ticket)
			return ticket, nil
		}
	}
	for _, t := range s.fallback {
		if t.ID == id {
			s.ensureSummary(&t)
			return &t, nil
		}
	}
	return nil, nil
}

// SalesContact resolves the assigned salesperson for a ticket.
func (s *Service) SalesContact(employeeID string) (*domain.Salesperson, error) {
	if s.store == nil || employeeID == "" {
		return nil, nil
	}
	contact, err := s.store.LoadEmployee(employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "sales contact")
	}
	return contact, nil
}

func (s *Service) ensureSummary(t *domain.HelpdeskTicket) {
	if t.Summary != "" || s.summarizer == nil || len(t.Conversation) == 0 {
		return
	}
	var b strings.Builder
	for _, m := range t.Conversation {
		b.WriteString(m.Content)
		b.WriteString(" ")
	}
	summary, err := s.summarizer.Summarize(b.String(), s.maxSummarySentences)
	if err != nil {
		s.log.WithError(err).WithField("ticket", t.ID).Warn("summary fallback failed")
		return
	}
	t.Summary = summary
}

func (s *Service) filterFallback(query string) []domain.HelpdeskTicket {
	terms := strings.Fields(strings.ToLower(query))
	var out []domain.HelpdeskTicket
	for _, t := range s.fallback {
		haystack := strings.ToLower(t.Title + " " + t.Summary + " " + t.CustomerName + " " + strings.Join(t.Tags, " "))
		for _, term := range terms {
			if strings.Contains(haystack, term) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
