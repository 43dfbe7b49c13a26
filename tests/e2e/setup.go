//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"seva-console/cmd/bootstrap"
	"seva-console/cmd/bootstrap/components"
	"seva-console/internal/cli"
	"seva-console/internal/client/tokenstore"
	"seva-console/internal/pkg/clock"
	"seva-console/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Stub API: the real fx graph of cmd/stubapi behind an httptest server
// ------------------------------------------------------------
func startStub(t *testing.T) (*httptest.Server, config.StubConfig) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var router *gin.Engine
	var cfg config.StubConfig

	app := fx.New(
		fx.Provide(config.NewTestStubConfig),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.StubLoggerModule,
		bootstrap.JWTModule,
		components.StoreModule,
		components.HandlerModule,
		fx.Populate(&router, &cfg),
		fx.NopLogger,
	)
	require.NoError(t, app.Err(), "failed to build stub app")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start stub app")

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	})
	return server, cfg
}

// ------------------------------------------------------------
// Console: the real fx graph of cmd/sevactl pointed at the stub
// ------------------------------------------------------------
func consoleConfig(baseURL, tokenFile string) config.Config {
	cfg := config.NewTestConfig()
	cfg.API.BaseURL = baseURL
	cfg.Session.TokenFile = tokenFile
	return cfg
}

type Console struct {
	cfg    config.Config
	Stdout *bytes.Buffer
	Stderr *bytes.Buffer
}

// Run builds a fresh command tree, as a new sevactl process would, and
// executes args. Only the token file survives between runs.
func (c *Console) Run(t *testing.T, stdin string, args ...string) int {
	t.Helper()
	c.Stdout.Reset()
	c.Stderr.Reset()

	streams := cli.Streams{In: strings.NewReader(stdin), Out: c.Stdout, Err: c.Stderr}

	var root *cobra.Command
	app := fx.New(
		fx.NopLogger,
		fx.Supply(streams, c.cfg),
		bootstrap.ConfigParts,
		bootstrap.ConsoleLoggerModule,
		components.ClientModule,
		components.ServiceModule,
		components.CLIModule,
		fx.Populate(&root),
	)
	require.NoError(t, app.Err(), "failed to build console app")

	root.SetArgs(args)
	return cli.Execute(t.Context(), root, streams.Err)
}

// Tokens opens the same token file the console uses.
func (c *Console) Tokens() *tokenstore.Store {
	return tokenstore.NewFromConfig(c.cfg.Session, clock.NewRealClock(), nil)
}

// ------------------------------------------------------------
// Shared suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Server     *httptest.Server
	StubConfig config.StubConfig
	Console    *Console
}

func (s *SharedSuite) SetupSuite() {
	s.Server, s.StubConfig = startStub(s.T())
}

// SetupTest gives every test a signed-out console with its own token file.
func (s *SharedSuite) SetupTest() {
	tokenFile := filepath.Join(s.T().TempDir(), "token")
	s.Console = &Console{
		cfg:    consoleConfig(s.Server.URL, tokenFile),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	}
}

// Login signs the console in with the seeded stub account.
func (s *SharedSuite) Login() {
	s.Require().Equal(0, s.Console.Run(s.T(), "", "login",
		"--email", s.StubConfig.UserEmail, "--password", s.StubConfig.UserPassword), s.Console.Stderr.String())
	s.Require().Equal(0, s.Console.Run(s.T(), "", "verify",
		"--email", s.StubConfig.UserEmail, "--code", s.StubConfig.OTPCode), s.Console.Stderr.String())
}
