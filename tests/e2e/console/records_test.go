//go:build e2e

package console_test

import (
	"encoding/json"
	"testing"
	"time"

	reqdto "seva-console/internal/dto/request"
	resdto "seva-console/internal/dto/response"
	"seva-console/tests/common/builder"
	"seva-console/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type recordsSuite struct {
	e2e.SharedSuite
}

func TestRecordsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(recordsSuite))
}

func (s *recordsSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.Login()
}

func (s *recordsSuite) runJSON(out any, stdin string, args ...string) {
	code := s.Console.Run(s.T(), stdin, append([]string{"--json"}, args...)...)
	s.Require().Equal(0, code, s.Console.Stderr.String())
	if out != nil {
		s.Require().NoError(json.Unmarshal(s.Console.Stdout.Bytes(), out), s.Console.Stdout.String())
	}
}

func mustJSON(s *recordsSuite, v any) string {
	data, err := json.Marshal(v)
	s.Require().NoError(err)
	return string(data)
}

func (s *recordsSuite) TestBookSevaLifecycle() {
	req := builder.NewBookSevaBuilder().With(func(r *reqdto.CreateBookSevaRequest) {
		r.Place = "Lifecycle Hall"
	}).BuildDTO()

	var created resdto.BookSeva
	s.runJSON(&created, "", "book-seva", "create", "--data", mustJSON(s, req))
	s.Require().NotEmpty(created.ID)
	s.Equal("Lifecycle Hall", created.Place)
	s.NotEmpty(created.CreatedAt)
	s.Contains(s.Console.Stderr.String(), "✓ Book Seva created successfully")

	var listed []resdto.BookSeva
	s.runJSON(&listed, "", "book-seva", "list", "--from", req.Date, "--to", req.Date)
	s.Contains(listed, created)

	var updated resdto.BookSeva
	s.runJSON(&updated, "", "book-seva", "update", created.ID, "--data", `{"quantity":7}`)
	s.Equal(7, updated.Quantity)
	s.Equal(created.Place, updated.Place)
	s.Contains(s.Console.Stderr.String(), "✓ Book Seva updated successfully")

	var fetched resdto.BookSeva
	s.runJSON(&fetched, "", "book-seva", "get", created.ID)
	s.Equal(updated, fetched)

	s.runJSON(nil, "", "book-seva", "delete", created.ID)
	s.Contains(s.Console.Stderr.String(), "✓ Book Seva deleted successfully")

	code := s.Console.Run(s.T(), "", "book-seva", "get", created.ID)
	s.Equal(1, code)
	s.Contains(s.Console.Stderr.String(), "✗ Book seva not found")
}

func (s *recordsSuite) TestCallingSevaFromStdinAndStatusFilter() {
	req := builder.NewCallingSevaBuilder().With(func(r *reqdto.CreateCallingSevaRequest) {
		r.Status = "callback-requested"
	}).BuildDTO()

	var created resdto.CallingSeva
	s.runJSON(&created, mustJSON(s, req), "calling-seva", "create", "--file", "-")
	s.Require().NotEmpty(created.ID)

	var listed []resdto.CallingSeva
	s.runJSON(&listed, "", "calling-seva", "list", "--status", "callback-requested")
	s.Require().Len(listed, 1)
	s.Equal(created.ID, listed[0].ID)

	s.runJSON(&listed, "", "calling-seva", "list", "--status", "no-such-status")
	s.Empty(listed)
}

func (s *recordsSuite) TestValidationErrors() {
	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{
			name:  "mobile number with letters",
			args:  []string{"calling-seva", "create", "--data", `{"name":"A","address":"B","mobile_no":"98765abcde","status":"pending"}`},
			field: "mobile_no",
		},
		{
			name:  "expense category outside the allowed set",
			args:  []string{"expenses", "create", "--data", `{"item_name":"Ink","price":2,"quantity":1,"category":"travel","date":"2024-01-15"}`},
			field: "category",
		},
		{
			name:  "page limit below one",
			args:  []string{"expenses", "list", "--limit", "0"},
			field: "limit",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			code := s.Console.Run(s.T(), "", tt.args...)

			s.Equal(1, code)
			s.Contains(s.Console.Stderr.String(), "✗ Validation failed")
			s.Contains(s.Console.Stderr.String(), "  "+tt.field+": ")
			s.Empty(s.Console.Stdout.String())
		})
	}
}

func (s *recordsSuite) TestExpenseTotalsAndDashboard() {
	today := time.Now().UTC().Format("2006-01-02")

	var before resdto.DashboardSummary
	s.runJSON(&before, "", "dashboard", "--days", "3")

	req := builder.NewExpenseBuilder().With(func(r *reqdto.CreateExpenseRequest) {
		r.Price = 12.5
		r.Quantity = 4
		r.Date = today
	}).BuildDTO()
	var created resdto.Expense
	s.runJSON(&created, "", "expenses", "create", "--data", mustJSON(s, req))
	s.InDelta(50.0, created.Total, 0.001)

	var updated resdto.Expense
	s.runJSON(&updated, "", "expenses", "update", created.ID, "--data", `{"quantity":2}`)
	s.InDelta(25.0, updated.Total, 0.001)

	var after resdto.DashboardSummary
	s.runJSON(&after, "", "dashboard", "--days", "3")
	s.Equal(today, after.ToDate)
	s.Len(after.Trend, 3)
	s.Equal(before.Expenses.Entries+1, after.Expenses.Entries)
	s.InDelta(before.Expenses.Amount+25.0, after.Expenses.Amount, 0.001)
	s.Equal(before.Trend[2].Expenses+1, after.Trend[2].Expenses)
}

func (s *recordsSuite) TestConstants() {
	var constants resdto.Constants
	s.runJSON(&constants, "", "constants")
	s.NotEmpty(constants)
}
