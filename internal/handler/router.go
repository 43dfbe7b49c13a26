package handler

import (
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"seva-console/internal/handler/api"
	_ "seva-console/internal/handler/docs"
	"seva-console/internal/handler/middleware"
	"seva-console/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	BookSeva    *api.BookSevaHandler
	CallingSeva *api.CallingSevaHandler
	Expense     *api.ExpenseHandler
	General     *api.GeneralHandler
}

func NewHandlers(
	auth *api.AuthHandler,
	bookSeva *api.BookSevaHandler,
	callingSeva *api.CallingSevaHandler,
	expense *api.ExpenseHandler,
	general *api.GeneralHandler,
) Handlers {
	return Handlers{
		Auth:        auth,
		BookSeva:    bookSeva,
		CallingSeva: callingSeva,
		Expense:     expense,
		General:     general,
	}
}

func NewRouter(engine *gin.Engine, cfg config.StubConfig, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	registerFieldNames()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.StubConfig, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.NewRequestLogger(logger).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := engine.Group("/auth")
	{
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/login-init", Handler: h.Auth.LoginInit},
			{Method: http.MethodPost, Path: "/verify-otp", Handler: h.Auth.VerifyOTP},
		})

		authRequired := auth.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
		})
	}

	protected := engine.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		addRoutes(protected.Group("/book-seva"), recordRoutes(
			h.BookSeva.List, h.BookSeva.Create, h.BookSeva.Get, h.BookSeva.Update, h.BookSeva.Delete))
		addRoutes(protected.Group("/calling-seva"), recordRoutes(
			h.CallingSeva.List, h.CallingSeva.Create, h.CallingSeva.Get, h.CallingSeva.Update, h.CallingSeva.Delete))
		addRoutes(protected.Group("/expenses"), recordRoutes(
			h.Expense.List, h.Expense.Create, h.Expense.Get, h.Expense.Update, h.Expense.Delete))
		addRoutes(protected.Group("/general"), []route{
			{Method: http.MethodGet, Path: "/constants", Handler: h.General.Constants},
		})
	}
}

func recordRoutes(list, create, get, update, del gin.HandlerFunc) []route {
	return []route{
		{Method: http.MethodGet, Path: "", Handler: list},
		{Method: http.MethodPost, Path: "", Handler: create},
		{Method: http.MethodGet, Path: "/:id", Handler: get},
		{Method: http.MethodPut, Path: "/:id", Handler: update},
		{Method: http.MethodDelete, Path: "/:id", Handler: del},
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// registerFieldNames makes validation errors use wire names (json, then form).
func registerFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, key := range []string{"json", "form"} {
			name := strings.Split(f.Tag.Get(key), ",")[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
