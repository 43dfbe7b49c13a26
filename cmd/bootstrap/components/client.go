package components

import (
	"log/slog"
	"strings"

	"seva-console/internal/cli"
	"seva-console/internal/client/coalesce"
	"seva-console/internal/client/loading"
	"seva-console/internal/client/notify"
	"seva-console/internal/client/tokenstore"
	"seva-console/internal/client/transport"
	"seva-console/internal/pkg/clock"
	"seva-console/internal/pkg/config"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("client",
	fx.Provide(
		clock.NewRealClock,
		tokenstore.NewFromConfig,
		loading.NewRegistry,
		coalesce.New,
		NewNotifier,
		func(streams cli.Streams) *cli.Navigator {
			return cli.NewNavigator(streams.Err)
		},
		func(n *cli.Navigator) transport.Navigator { return n },
		fx.Annotate(
			transport.NewClient,
			fx.As(new(transport.Requester)),
		),
	),
)

// NewNotifier sends notifications through the logger when logs are JSON,
// and prints ✓/✗ lines otherwise.
func NewNotifier(cfg config.Config, streams cli.Streams, logger *slog.Logger) notify.Notifier {
	if strings.EqualFold(cfg.Log.Format, "json") {
		return notify.NewSlogNotifier(logger)
	}
	return notify.NewWriterNotifier(streams.Err)
}
