package notify

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/reagentlab/tracker/pkg/core/notify"
	"github.com/reagentlab/tracker/pkg/core/notify/hub"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
)

// Handle serves the websocket request notifications are pushed on.
type Handle struct {
	hub *hub.Hub
}

// NewNotifyHandle subscribes a hub to center. Without a running subscription connected clients
// simply receive nothing.
func NewNotifyHandle(ctx context.Context, center notify.MsgCenter) *Handle {
	h := &Handle{hub: hub.New()}
	if err := h.hub.Subscribe(ctx, center); err != nil {
		logger.Errorf(ctx, "subscribe notify hub err: %+v", err)
	}
	return h
}

func (h *Handle) Connect(ctx *gin.Context) {
	h.hub.Connect(ctx)
}

func (h *Handle) Close() error {
	return h.hub.Close()
}
