package memstore

import (
	"seva-console/internal/dto/request"
	"seva-console/internal/dto/response"
	"seva-console/internal/pkg/clock"
	"seva-console/internal/pkg/ptr"

	"github.com/google/uuid"
)

const DefaultLimit = 100

// Store holds every record collection the stub serves.
type Store struct {
	BookSeva    *Table[response.BookSeva]
	CallingSeva *Table[response.CallingSeva]
	Expenses    *Table[response.Expense]
	Users       *UserStore
	constants   response.Constants
	clock       clock.Clock
	newID       func() string
}

func NewStore(users *UserStore, clk clock.Clock) *Store {
	return &Store{
		BookSeva:    NewTable[response.BookSeva](),
		CallingSeva: NewTable[response.CallingSeva](),
		Expenses:    NewTable[response.Expense](),
		Users:       users,
		constants:   defaultConstants(),
		clock:       clk,
		newID:       func() string { return uuid.NewString() },
	}
}

func (s *Store) Constants() response.Constants {
	return s.constants
}

func (s *Store) CreateBookSeva(req request.CreateBookSevaRequest) response.BookSeva {
	rec := req.ToRecord(s.newID(), s.clock.Now())
	s.BookSeva.Insert(rec.ID, rec)
	return rec
}

func (s *Store) CreateCallingSeva(req request.CreateCallingSevaRequest) response.CallingSeva {
	rec := req.ToRecord(s.newID(), s.clock.Now())
	s.CallingSeva.Insert(rec.ID, rec)
	return rec
}

func (s *Store) CreateExpense(req request.CreateExpenseRequest) response.Expense {
	rec := req.ToRecord(s.newID(), s.clock.Now())
	s.Expenses.Insert(rec.ID, rec)
	return rec
}

func (s *Store) ListBookSeva(p request.BookSevaListParams) []response.BookSeva {
	skip, limit := window(p.Page)
	return s.BookSeva.List(func(b response.BookSeva) bool {
		return inRange(b.Date, p.DateRange)
	}, skip, limit)
}

func (s *Store) ListCallingSeva(p request.CallingSevaListParams) []response.CallingSeva {
	skip, limit := window(p.Page)
	return s.CallingSeva.List(func(c response.CallingSeva) bool {
		return p.Status == nil || c.Status == *p.Status
	}, skip, limit)
}

func (s *Store) ListExpenses(p request.ExpenseListParams) []response.Expense {
	skip, limit := window(p.Page)
	return s.Expenses.List(func(e response.Expense) bool {
		return inRange(e.Date, p.DateRange)
	}, skip, limit)
}

func window(p request.Page) (skip, limit int) {
	skip = ptr.Deref(p.Skip)
	limit = DefaultLimit
	if p.Limit != nil {
		limit = *p.Limit
	}
	return skip, limit
}

// inRange compares YYYY-MM-DD strings, which order lexically.
func inRange(date string, r request.DateRange) bool {
	if r.FromDate != nil && date < *r.FromDate {
		return false
	}
	if r.ToDate != nil && date > *r.ToDate {
		return false
	}
	return true
}

func defaultConstants() response.Constants {
	return response.Constants{
		CoordinatorName: []string{"Anil Sharma", "Meera Patel"},
		DriverName:      []string{"Suresh Kumar", "Kiran Rao"},
		Status:          []string{"pending", "called", "not_reachable", "interested", "completed"},
		AssignedBhagat:  []string{"Ravi", "Priya", "Gopal"},
	}
}
