// Package cli is the sevactl console: cobra commands over the service layer.
package cli

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"seva-console/internal/client/apierr"
	"seva-console/internal/service"

	"github.com/spf13/cobra"
)

type Services struct {
	Auth        service.AuthService
	BookSeva    service.BookSevaService
	CallingSeva service.CallingSevaService
	Expenses    service.ExpenseService
	General     service.GeneralService
	Dashboard   service.DashboardService
}

func NewServices(
	auth service.AuthService,
	bookSeva service.BookSevaService,
	callingSeva service.CallingSevaService,
	expenses service.ExpenseService,
	general service.GeneralService,
	dashboard service.DashboardService,
) Services {
	return Services{
		Auth:        auth,
		BookSeva:    bookSeva,
		CallingSeva: callingSeva,
		Expenses:    expenses,
		General:     general,
		Dashboard:   dashboard,
	}
}

type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

type app struct {
	svcs      Services
	navigator *Navigator
	streams   Streams
	jsonOut   bool
}

func (a *app) render() renderer {
	return renderer{out: a.streams.Out, json: a.jsonOut}
}

func NewRootCommand(svcs Services, navigator *Navigator, streams Streams) *cobra.Command {
	a := &app{svcs: svcs, navigator: navigator, streams: streams}

	root := &cobra.Command{
		Use:           "sevactl",
		Short:         "Manage book seva, calling seva and expense records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			navigator.Enter(cmd.Name())
		},
	}
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print results as JSON")

	root.AddCommand(
		a.loginCommand(),
		a.verifyCommand(),
		a.logoutCommand(),
		a.meCommand(),
		a.constantsCommand(),
		a.dashboardCommand(),
		bookSevaCommand(a),
		callingSevaCommand(a),
		expenseCommand(a),
	)
	return root
}

// Execute runs root and returns the process exit code. Notifiable API
// failures were already reported by the notifier unless the call was
// abandoned; anything else is printed here.
func Execute(ctx context.Context, root *cobra.Command, errOut io.Writer) int {
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	apiErr, ok := apierr.As(err)
	if !ok {
		_, _ = fmt.Fprintln(errOut, "Error:", err)
		return 1
	}
	if !apiErr.Notifiable() || ctx.Err() != nil {
		_, _ = fmt.Fprintln(errOut, "✗", apiErr.Message)
	}
	if apiErr.Kind == apierr.KindValidation {
		for _, field := range slices.Sorted(maps.Keys(apiErr.Details)) {
			_, _ = fmt.Fprintf(errOut, "  %s: %s\n", field, apiErr.Details[field])
		}
	}
	return 1
}
