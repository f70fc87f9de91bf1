package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/userd-api/userd/internal/platform/httpx"
	"github.com/userd-api/userd/internal/users"
)

// UserCounter reports how many records the store currently holds.
type UserCounter interface {
	Count(ctx context.Context) int
}

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger       *slog.Logger
	Config       *Config
	UsersHandler *users.Handler
	UserCount    UserCounter
}

// healthTimestampLayout matches the record timestamp wire format.
const healthTimestampLayout = "2006-01-02T15:04:05.999999"

type healthResponse struct {
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
	TotalUsers int    `json:"total_users"`
}

// NewRouter constructs the chi.Router with userd defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Error(w, http.StatusNotFound, "Endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		total := 0
		if params.UserCount != nil {
			total = params.UserCount.Count(req.Context())
		}
		httpx.JSON(w, http.StatusOK, healthResponse{
			Status:     "healthy",
			Timestamp:  time.Now().Format(healthTimestampLayout),
			TotalUsers: total,
		})
	})

	if params.UsersHandler != nil {
		r.Route("/users", params.UsersHandler.MountRoutes)
	}

	return r
}
