package service

import (
	"context"
	"time"

	"seva-console/internal/dto/request"
	"seva-console/internal/dto/response"
	"seva-console/internal/pkg/clock"
	"seva-console/internal/pkg/ptr"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultDashboardDays = 7
	dashboardFetchLimit  = 500
	dateLayout           = "2006-01-02"
)

type DashboardService interface {
	Summary(ctx context.Context, days int) (*response.DashboardSummary, error)
}

type dashboardServiceImpl struct {
	bookSeva    BookSevaService
	callingSeva CallingSevaService
	expenses    ExpenseService
	clock       clock.Clock
}

func NewDashboardService(
	bookSeva BookSevaService,
	callingSeva CallingSevaService,
	expenses ExpenseService,
	clk clock.Clock,
) DashboardService {
	return &dashboardServiceImpl{
		bookSeva:    bookSeva,
		callingSeva: callingSeva,
		expenses:    expenses,
		clock:       clk,
	}
}

// Summary covers the last days calendar days, today included. Calling seva
// totals span every record; its trend bars use the creation date.
func (d *dashboardServiceImpl) Summary(ctx context.Context, days int) (*response.DashboardSummary, error) {
	if days <= 0 {
		days = DefaultDashboardDays
	}
	today := d.clock.Now().UTC()
	from := today.AddDate(0, 0, -(days - 1))
	window := request.DateRange{
		FromDate: ptr.To(from.Format(dateLayout)),
		ToDate:   ptr.To(today.Format(dateLayout)),
	}
	page := request.Page{Skip: ptr.To(0), Limit: ptr.To(dashboardFetchLimit)}

	var (
		books    []response.BookSeva
		calls    []response.CallingSeva
		expenses []response.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		books, err = d.bookSeva.GetAll(gctx, request.BookSevaListParams{Page: page, DateRange: window})
		return err
	})
	g.Go(func() error {
		var err error
		calls, err = d.callingSeva.GetAll(gctx, request.CallingSevaListParams{Page: page})
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = d.expenses.GetAll(gctx, request.ExpenseListParams{Page: page, DateRange: window})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summarize(from, days, books, calls, expenses), nil
}

func summarize(
	from time.Time,
	days int,
	books []response.BookSeva,
	calls []response.CallingSeva,
	expenses []response.Expense,
) *response.DashboardSummary {
	out := &response.DashboardSummary{
		FromDate: from.Format(dateLayout),
		ToDate:   from.AddDate(0, 0, days-1).Format(dateLayout),
		CallingSeva: response.CallingSevaTotals{
			ByStatus: make(map[string]int),
		},
		Expenses: response.ExpenseTotals{
			ByCategory: make(map[response.ExpenseCategory]float64),
		},
		Trend: make([]response.DayCount, days),
	}

	index := make(map[string]int, days)
	for i := range days {
		date := from.AddDate(0, 0, i).Format(dateLayout)
		out.Trend[i].Date = date
		index[date] = i
	}

	for _, b := range books {
		out.BookSeva.Entries++
		out.BookSeva.Books += b.Quantity
		if i, ok := index[b.Date]; ok {
			out.Trend[i].BookSeva++
		}
	}

	for _, c := range calls {
		out.CallingSeva.Entries++
		out.CallingSeva.ByStatus[c.Status]++
		if i, ok := index[dayOf(c.CreatedAt)]; ok {
			out.Trend[i].CallingSeva++
		}
	}

	for _, e := range expenses {
		out.Expenses.Entries++
		out.Expenses.Amount += e.Total
		out.Expenses.ByCategory[e.Category] += e.Total
		if i, ok := index[e.Date]; ok {
			out.Trend[i].Expenses++
		}
	}

	return out
}

// dayOf accepts RFC 3339 timestamps and bare dates.
func dayOf(ts string) string {
	if len(ts) < len(dateLayout) {
		return ""
	}
	return ts[:len(dateLayout)]
}
