package app

import (
	"context"
	"net/http"
	"time"

	"github.com/metinatakli/seat-reservation-engine/api"
)

const dependencyCheckTimeout = 2 * time.Second

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dependencyCheckTimeout)
	defer cancel()

	resp := api.HealthcheckResponse{
		Status: api.UP,
		SystemInfo: api.SystemInfo{
			Version:     version,
			Environment: app.config.Env,
		},
		Dependencies: map[string]string{},
	}

	// memory store and local lock deployments run without either client
	if app.db != nil {
		resp.Dependencies["postgres"] = app.checkDependency(ctx, r, "postgres", app.db.Ping)
	}
	if app.redis != nil {
		resp.Dependencies["redis"] = app.checkDependency(ctx, r, "redis", func(ctx context.Context) error {
			return app.redis.Ping(ctx).Err()
		})
	}

	status := http.StatusOK
	for _, s := range resp.Dependencies {
		if s != string(api.UP) {
			resp.Status = api.DOWN
			status = http.StatusServiceUnavailable
		}
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) checkDependency(ctx context.Context, r *http.Request, name string, ping func(context.Context) error) string {
	if err := ping(ctx); err != nil {
		app.contextGetLogger(r).Warn("dependency unreachable", "dependency", name, "error", err)
		return string(api.DOWN)
	}

	return string(api.UP)
}
