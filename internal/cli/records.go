package cli

import (
	"strconv"

	"seva-console/internal/dto/request"
	"seva-console/internal/dto/response"
	"seva-console/internal/pkg/ptr"

	"github.com/spf13/cobra"
)

func bookSevaCommand(a *app) *cobra.Command {
	return resourceCommand[response.BookSeva, request.CreateBookSevaRequest, request.UpdateBookSevaRequest, request.BookSevaListParams]{
		use:     "book-seva",
		short:   "Book distribution records",
		svc:     a.svcs.BookSeva,
		headers: []string{"ID", "DATE", "PLACE", "VOLUNTEER", "BOOK", "TYPE", "QTY", "COORDINATOR", "DRIVER"},
		row: func(b response.BookSeva) []string {
			return []string{b.ID, b.Date, b.Place, b.VolunteerName, b.BookName, b.BookType,
				strconv.Itoa(b.Quantity), b.CoordinatorName, b.DriverName}
		},
		listFlags: func(cmd *cobra.Command) func() request.BookSevaListParams {
			page := pageFlags(cmd)
			dates := dateRangeFlags(cmd)
			return func() request.BookSevaListParams {
				return request.BookSevaListParams{Page: page(), DateRange: dates()}
			}
		},
	}.build(a)
}

func callingSevaCommand(a *app) *cobra.Command {
	return resourceCommand[response.CallingSeva, request.CreateCallingSevaRequest, request.UpdateCallingSevaRequest, request.CallingSevaListParams]{
		use:     "calling-seva",
		short:   "Outreach call records",
		svc:     a.svcs.CallingSeva,
		headers: []string{"ID", "NAME", "MOBILE", "STATUS", "ASSIGNED", "ADDRESS", "REMARKS"},
		row: func(c response.CallingSeva) []string {
			return []string{c.ID, c.Name, c.MobileNo, c.Status, c.AssignedBhagat, c.Address, c.Remarks}
		},
		listFlags: func(cmd *cobra.Command) func() request.CallingSevaListParams {
			page := pageFlags(cmd)
			status := cmd.Flags().String("status", "", "only records with this status")
			return func() request.CallingSevaListParams {
				p := request.CallingSevaListParams{Page: page()}
				if cmd.Flags().Changed("status") {
					p.Status = ptr.To(*status)
				}
				return p
			}
		},
	}.build(a)
}

func expenseCommand(a *app) *cobra.Command {
	return resourceCommand[response.Expense, request.CreateExpenseRequest, request.UpdateExpenseRequest, request.ExpenseListParams]{
		use:     "expenses",
		short:   "Expense records",
		svc:     a.svcs.Expenses,
		headers: []string{"ID", "DATE", "ITEM", "PRICE", "QTY", "TOTAL", "CATEGORY"},
		row: func(e response.Expense) []string {
			return []string{e.ID, e.Date, e.ItemName, formatAmount(e.Price), strconv.Itoa(e.Quantity),
				formatAmount(e.Total), string(e.Category)}
		},
		listFlags: func(cmd *cobra.Command) func() request.ExpenseListParams {
			page := pageFlags(cmd)
			dates := dateRangeFlags(cmd)
			return func() request.ExpenseListParams {
				return request.ExpenseListParams{Page: page(), DateRange: dates()}
			}
		},
	}.build(a)
}

// pageFlags leaves Skip/Limit nil unless the flag was given.
func pageFlags(cmd *cobra.Command) func() request.Page {
	fs := cmd.Flags()
	skip := fs.Int("skip", 0, "number of records to skip")
	limit := fs.Int("limit", 0, "maximum number of records")
	return func() request.Page {
		var p request.Page
		if fs.Changed("skip") {
			p.Skip = ptr.To(*skip)
		}
		if fs.Changed("limit") {
			p.Limit = ptr.To(*limit)
		}
		return p
	}
}

func dateRangeFlags(cmd *cobra.Command) func() request.DateRange {
	fs := cmd.Flags()
	from := fs.String("from", "", "first date, YYYY-MM-DD")
	to := fs.String("to", "", "last date, YYYY-MM-DD")
	return func() request.DateRange {
		return request.DateRange{
			FromDate: ptr.NonEmpty(*from),
			ToDate:   ptr.NonEmpty(*to),
		}
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
