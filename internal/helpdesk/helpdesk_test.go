package helpdesk_test

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopdesk/internal/domain"
	"shopdesk/internal/helpdesk"
	"shopdesk/internal/summarizer"
)

type fakeTicketStore struct {
	tickets  []domain.HelpdeskTicket
	ticket   *domain.HelpdeskTicket
	employee *domain.Salesperson
	err      error
}

func (f *fakeTicketStore) QueryTickets(string) ([]domain.HelpdeskTicket, error) {
	return f.tickets, f.err
}
func (f *fakeTicketStore) LoadTicket(string) (*domain.HelpdeskTicket, error) {
	return f.ticket, f.err
}
func (f *fakeTicketStore) LoadEmployee(string) (*domain.Salesperson, error) {
	return f.employee, f.err
}

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func fallbackTickets() []domain.HelpdeskTicket {
	return []domain.HelpdeskTicket{
		{ID: "t1", Title: "Damaged packaging", Summary: "Crushed box on arrival.", Priority: domain.PriorityMedium, Status: domain.TicketOpen, NeedsSales: false},
		{ID: "t2", Title: "Bulk pricing question", Summary: "Volume discount request.", Priority: domain.PriorityHigh, Status: domain.TicketInProgress, NeedsSales: true},
		{ID: "t3", Title: "Shipping delay", Summary: "Parcel stuck at carrier.", Priority: domain.PriorityLow, Status: domain.TicketResolved, NeedsSales: false},
	}
}

func TestSearch(t *testing.T) {
	t.Run("store results win over fallback", func(t *testing.T) {
		store := &fakeTicketStore{tickets: []domain.HelpdeskTicket{{ID: "remote", Summary: "From the store."}}}
		svc := helpdesk.New(store, fallbackTickets(), nil, 2, quietLog())

		got, err := svc.Search("anything")

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "remote", got[0].ID)
	})

	t.Run("store error is surfaced", func(t *testing.T) {
		store := &fakeTicketStore{err: errors.New("boom")}
		svc := helpdesk.New(store, fallbackTickets(), nil, 2, quietLog())
		_, err := svc.Search("anything")
		assert.Error(t, err)
	})

	t.Run("empty store results fall back to substring filter", func(t *testing.T) {
		svc := helpdesk.New(&fakeTicketStore{}, fallbackTickets(), nil, 2, quietLog())
		got, err := svc.Search("pricing")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "t2", got[0].ID)
	})

	t.Run("missing summaries are generated from the conversation", func(t *testing.T) {
		tickets := []domain.HelpdeskTicket{{
			ID: "t9",
			Conversation: []domain.ConversationMessage{
				{Content: "My parcel never arrived. The tracking number stopped updating last week."},
			},
		}}
		store := &fakeTicketStore{tickets: tickets}
		svc := helpdesk.New(store, nil, summarizer.NewFrequencySummarizer(), 2, quietLog())

		got, err := svc.Search("parcel")

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.NotEmpty(t, got[0].Summary)
	})

	t.Run("blank query returns nothing", func(t *testing.T) {
		svc := helpdesk.New(&fakeTicketStore{}, fallbackTickets(), nil, 2, quietLog())
		got, err := svc.Search("   ")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestFilter(t *testing.T) {
	tickets := fallbackTickets()

	t.Run("zero options keep everything", func(t *testing.T) {
		assert.Len(t, helpdesk.Filter(tickets, helpdesk.FilterOptions{}), 3)
	})

	t.Run("sales only", func(t *testing.T) {
		got := helpdesk.Filter(tickets, helpdesk.FilterOptions{SalesOnly: true})
		require.Len(t, got, 1)
		assert.Equal(t, "t2", got[0].ID)
	})

	t.Run("priority and status combine", func(t *testing.T) {
		got := helpdesk.Filter(tickets, helpdesk.FilterOptions{
			Priority: domain.PriorityHigh,
			Status:   domain.TicketInProgress,
		})
		require.Len(t, got, 1)
		assert.Equal(t, "t2", got[0].ID)

		assert.Empty(t, helpdesk.Filter(tickets, helpdesk.FilterOptions{
			Priority: domain.PriorityHigh,
			Status:   domain.TicketResolved,
		}))
	})
}

func TestSalesCount(t *testing.T) {
	assert.Equal(t, 1, helpdesk.SalesCount(fallbackTickets()))
	assert.Equal(t, 0, helpdesk.SalesCount(nil))
}

func TestTicketDetails(t *testing.T) {
	t.Run("prefers the store", func(t *testing.T) {
		remote := &domain.HelpdeskTicket{ID: "t1", Title: "From store", Summary: "s"}
		svc := helpdesk.New(&fakeTicketStore{ticket: remote}, fallbackTickets(), nil, 2, quietLog())
		got, err := svc.TicketDetails("t1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "From store", got.Title)
	})

	t.Run("falls back to static dataset", func(t *testing.T) {
		svc := helpdesk.New(&fakeTicketStore{}, fallbackTickets(), nil, 2, quietLog())
		got, err := svc.TicketDetails("t2")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Bulk pricing question", got.Title)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := helpdesk.New(&fakeTicketStore{}, fallbackTickets(), nil, 2, quietLog())
		got, err := svc.TicketDetails("nope")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestSalesContact(t *testing.T) {
	contact := &domain.Salesperson{EmployeeID: "employees/5-A", Name: "Steven Buchanan"}
	svc := helpdesk.New(&fakeTicketStore{employee: contact}, nil, nil, 2, quietLog())

	got, err := svc.SalesContact("employees/5-A")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Steven Buchanan", got.Name)

	got, err = svc.SalesContact("")
	require.NoError(t, err)
	assert.Nil(t, got)
}
