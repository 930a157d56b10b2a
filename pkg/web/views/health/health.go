package health

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reagentlab/tracker/pkg/middleware/db"
	"github.com/reagentlab/tracker/pkg/middleware/redis"
	"github.com/reagentlab/tracker/pkg/repo"
)

type check struct {
	name     string
	optional bool // reported, never fails readiness
	probe    func(ctx context.Context) string
}

type Handle struct {
	checks []check
}

// NewHealthHandle probes the datastore and redis, plus the document store when one is configured.
func NewHealthHandle(objects repo.ObjectStore) *Handle {
	h := &Handle{checks: []check{
		{name: "database", probe: database},
		{name: "redis", probe: cache},
	}}
	if objects != nil {
		h.checks = append(h.checks, check{name: "storage", optional: true, probe: func(ctx context.Context) string {
			if err := objects.Ping(ctx); err != nil {
				return "unhealthy"
			}
			return "ok"
		}})
	}
	return h
}

func (h *Handle) Install(g *gin.RouterGroup) {
	g.GET("/health", h.Live)
	g.GET("/health/live", h.Live)
	g.GET("/health/ready", h.Ready)
}

// Live only tells the process is serving.
func (h *Handle) Live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handle) Ready(ctx *gin.Context) {
	checks := gin.H{}
	ready := true
	for _, c := range h.checks {
		state := c.probe(ctx)
		checks[c.name] = state
		if state != "ok" && !c.optional {
			ready = false
		}
	}

	status, msg := http.StatusOK, "ready"
	if !ready {
		status, msg = http.StatusServiceUnavailable, "not_ready"
	}
	ctx.JSON(status, gin.H{"status": msg, "checks": checks})
}

func database(ctx context.Context) string {
	ds := db.DB()
	if ds == nil {
		return "not_initialized"
	}
	sqlDB, err := ds.DBIns().DB()
	if err != nil || sqlDB.PingContext(ctx) != nil {
		return "unhealthy"
	}
	return "ok"
}

func cache(ctx context.Context) string {
	rc := redis.GetClient()
	if rc == nil {
		return "not_initialized"
	}
	if err := rc.Ping(ctx).Err(); err != nil {
		return "unhealthy"
	}
	return "ok"
}
