package web

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/reagentlab/tracker/docs" // swagger docs

	"github.com/reagentlab/tracker/internal/config"
	"github.com/reagentlab/tracker/pkg/core/notify/events"
	"github.com/reagentlab/tracker/pkg/middleware/auth"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/middleware/metrics"
	"github.com/reagentlab/tracker/pkg/repo/storage"
	"github.com/reagentlab/tracker/pkg/web/views/account"
	"github.com/reagentlab/tracker/pkg/web/views/hazard"
	"github.com/reagentlab/tracker/pkg/web/views/health"
	"github.com/reagentlab/tracker/pkg/web/views/history"
	"github.com/reagentlab/tracker/pkg/web/views/login"
	"github.com/reagentlab/tracker/pkg/web/views/notify"
	"github.com/reagentlab/tracker/pkg/web/views/personal"
	"github.com/reagentlab/tracker/pkg/web/views/project"
	"github.com/reagentlab/tracker/pkg/web/views/reagent"
	"github.com/reagentlab/tracker/pkg/web/views/reference"
	"github.com/reagentlab/tracker/pkg/web/views/request"
)

// NewRouter installs middleware and routes on g. The returned func releases the websocket hub.
func NewRouter(ctx context.Context, g *gin.Engine) context.CancelFunc {
	installMiddleware(g)
	return installURL(ctx, g)
}

func installMiddleware(g *gin.Engine) {
	g.ContextWithFallback = true
	server := config.Global().Server
	g.Use(cors.Default())
	g.Use(otelgin.Middleware(fmt.Sprintf("%s-%s", server.Platform, server.Service)))
	g.Use(metrics.Middleware())
	g.Use(logger.LogWithWriter())
}

func installURL(ctx context.Context, g *gin.Engine) context.CancelFunc {
	g.GET("/metrics", metrics.Handler())

	objects := storage.New(ctx)

	api := g.Group("/api")
	health.NewHealthHandle(objects).Install(api)
	if config.Global().Server.Swagger {
		api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	}

	if config.Global().Auth.AuthSource == config.AuthOAuth2 {
		login.NewLogin().Install(api)
	}

	center := events.NewEvents()
	nHandle := notify.NewNotifyHandle(ctx, center)

	v1 := api.Group("/v1", auth.AuthWeb())
	{
		account.NewAccountHandle().Install(v1)
		reference.NewReferenceHandle().Install(v1)
		hazard.NewHazardHandle().Install(v1)
		reagent.NewReagentHandle().Install(v1)
		project.NewProjectHandle().Install(v1)
		personal.NewPersonalHandle(objects).Install(v1)
		request.NewRequestHandle(center).Install(v1)
		history.NewHistoryHandle().Install(v1)
	}

	// websocket clients pass the token as access_token query parameter
	g.GET("/ws/notify", auth.AuthWeb(), nHandle.Connect)

	return func() {
		if err := nHandle.Close(); err != nil {
			logger.Warnf(ctx, "close notify hub err: %+v", err)
		}
	}
}
