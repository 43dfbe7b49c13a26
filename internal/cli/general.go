package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"seva-console/internal/dto/response"
	"seva-console/internal/service"

	"github.com/spf13/cobra"
)

const maxBarWidth = 40

func (a *app) constantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "List the option values used by the entry forms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.svcs.General.Constants(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.render().JSON(c)
			}
			return a.render().Record(
				[]string{"COORDINATORS", "DRIVERS", "STATUSES", "ASSIGNED BHAGATS"},
				[]string{
					strings.Join(c.CoordinatorName, ", "),
					strings.Join(c.DriverName, ", "),
					strings.Join(c.Status, ", "),
					strings.Join(c.AssignedBhagat, ", "),
				},
			)
		},
	}
}

func (a *app) dashboardCommand() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals and daily activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := a.svcs.Dashboard.Summary(cmd.Context(), days)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.render().JSON(summary)
			}
			return a.printDashboard(summary)
		},
	}
	cmd.Flags().IntVar(&days, "days", service.DefaultDashboardDays, "number of days to cover, today included")
	return cmd
}

func (a *app) printDashboard(s *response.DashboardSummary) error {
	r := a.render()
	r.Line("Activity %s to %s", s.FromDate, s.ToDate)
	r.Line("")

	statuses := make([]string, 0, len(s.CallingSeva.ByStatus))
	for status, n := range s.CallingSeva.ByStatus {
		statuses = append(statuses, fmt.Sprintf("%s %d", status, n))
	}
	sort.Strings(statuses)

	if err := r.Table(
		[]string{"AREA", "ENTRIES", "DETAIL"},
		[][]string{
			{"Book Seva", strconv.Itoa(s.BookSeva.Entries), fmt.Sprintf("%d books", s.BookSeva.Books)},
			{"Calling Seva", strconv.Itoa(s.CallingSeva.Entries), strings.Join(statuses, ", ")},
			{"Expenses", strconv.Itoa(s.Expenses.Entries), fmt.Sprintf("%.2f total (seva %.2f, naamdaan %.2f)",
				s.Expenses.Amount,
				s.Expenses.ByCategory[response.ExpenseCategorySeva],
				s.Expenses.ByCategory[response.ExpenseCategoryNaamdaan])},
		},
	); err != nil {
		return err
	}
	r.Line("")

	peak := 0
	for _, d := range s.Trend {
		peak = max(peak, d.BookSeva+d.CallingSeva+d.Expenses)
	}
	rows := make([][]string, len(s.Trend))
	for i, d := range s.Trend {
		total := d.BookSeva + d.CallingSeva + d.Expenses
		rows[i] = []string{d.Date, strconv.Itoa(total), bar(total, peak)}
	}
	return r.Table([]string{"DATE", "COUNT", ""}, rows)
}

func bar(n, peak int) string {
	if n == 0 {
		return ""
	}
	if peak <= maxBarWidth {
		return strings.Repeat("#", n)
	}
	return strings.Repeat("#", max(1, n*maxBarWidth/peak))
}
