package hub

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/alphadose/haxmap"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/olahol/melody"

	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/core/notify"
	"github.com/reagentlab/tracker/pkg/middleware/auth"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/model"
)

const maxMessageSize = 4096

type sessions struct {
	mu   sync.Mutex
	list map[*melody.Session]struct{}
}

// Hub pushes notify messages to the websocket sessions of their recipients.
type Hub struct {
	ws     *melody.Melody
	online *haxmap.Map[string, *sessions]
}

func New() *Hub {
	ws := melody.New()
	ws.Config.MaxMessageSize = maxMessageSize
	h := &Hub{
		ws:     ws,
		online: haxmap.New[string, *sessions](),
	}
	h.install()
	return h
}

// Subscribe feeds the hub from the message center.
func (h *Hub) Subscribe(ctx context.Context, center notify.MsgCenter) error {
	return center.Registry(ctx, notify.ReagentRequest, h.OnMsg)
}

// Connect upgrades an authenticated request.
func (h *Hub) Connect(ctx *gin.Context) {
	user := auth.GetCurrentUser(ctx)
	if user == nil {
		return
	}
	if err := h.ws.HandleRequestWithKeys(ctx.Writer, ctx.Request, map[string]any{
		auth.USERKEY: user,
	}); err != nil {
		logger.Errorf(ctx, "notify HandleRequestWithKeys err: %+v", err)
	}
}

func (h *Hub) OnMsg(ctx context.Context, payload string) error {
	msg := &notify.SendMsg{}
	if err := json.Unmarshal([]byte(payload), msg); err != nil {
		return code.ParamErr.WithErr(err)
	}
	data := []byte(payload)
	for _, userUUID := range msg.Recipients {
		h.send(ctx, userUUID, data)
	}
	return nil
}

// Online reports the number of sessions open for a user.
func (h *Hub) Online(userUUID string) int {
	set, ok := h.online.Get(userUUID)
	if !ok {
		return 0
	}
	set.mu.Lock()
	defer set.mu.Unlock()
	return len(set.list)
}

func (h *Hub) Close() error {
	return h.ws.Close()
}

func (h *Hub) send(ctx context.Context, userUUID string, data []byte) {
	set, ok := h.online.Get(userUUID)
	if !ok {
		return
	}
	set.mu.Lock()
	targets := make([]*melody.Session, 0, len(set.list))
	for s := range set.list {
		targets = append(targets, s)
	}
	set.mu.Unlock()

	for _, s := range targets {
		if err := s.Write(data); err != nil {
			logger.Warnf(ctx, "notify write user: %s err: %+v", userUUID, err)
		}
	}
}

func (h *Hub) add(userUUID string, s *melody.Session) {
	set, _ := h.online.GetOrSet(userUUID, &sessions{list: map[*melody.Session]struct{}{}})
	set.mu.Lock()
	set.list[s] = struct{}{}
	set.mu.Unlock()
}

func (h *Hub) remove(userUUID string, s *melody.Session) {
	set, ok := h.online.Get(userUUID)
	if !ok {
		return
	}
	set.mu.Lock()
	delete(set.list, s)
	set.mu.Unlock()
}

func sessionUser(s *melody.Session) *model.UserData {
	v, ok := s.Get(auth.USERKEY)
	if !ok {
		return nil
	}
	u, _ := v.(*model.UserData)
	return u
}

func (h *Hub) install() {
	h.ws.HandleConnect(func(s *melody.Session) {
		if u := sessionUser(s); u != nil {
			h.add(u.UUID, s)
		}
	})

	h.ws.HandleDisconnect(func(s *melody.Session) {
		if u := sessionUser(s); u != nil {
			h.remove(u.UUID, s)
		}
	})

	h.ws.HandleError(func(s *melody.Session, err error) {
		if errors.Is(err, melody.ErrMessageBufferFull) {
			return
		}
		var closeErr *websocket.CloseError
		if errors.As(err, &closeErr) && closeErr.Code == websocket.CloseGoingAway {
			return
		}
		logger.Errorf(context.Background(), "notify ws error keys: %+v, err: %+v", s.Keys, err)
	})

	// clients only listen
	h.ws.HandleMessage(func(_ *melody.Session, _ []byte) {})
}
