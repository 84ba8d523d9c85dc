package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	middleware2 "github.com/grossvaternick/skills-getting-started-with-github-copilot/pkg/middleware"

	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/handler"
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/web"
)

func SetupRouter(
	activityHandler *handler.ActivityHandler,
	healthHandler *handler.HealthHandler,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware2.LoggingMiddleware)
	r.Use(chimiddleware.Timeout(5 * time.Second))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Operational endpoints
	r.Head("/health", healthHandler.Health)
	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Activity endpoints
	r.Get("/activities", activityHandler.ListActivities)
	r.Post("/activities/{activityName}/signup", activityHandler.Signup)
	r.Post("/activities/{activityName}/unregister", activityHandler.Unregister)

	// Embedded signup frontend
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/static/index.html", http.StatusTemporaryRedirect)
	})

	return r
}
