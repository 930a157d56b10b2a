package hub

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/reagentlab/tracker/pkg/core/notify"
	"github.com/reagentlab/tracker/pkg/middleware/auth"
	"github.com/reagentlab/tracker/pkg/model"
)

func TestHubDeliversToRecipientOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := New()
	defer h.Close()

	r := gin.New()
	r.GET("/ws", func(ctx *gin.Context) {
		ctx.Set(auth.USERKEY, &model.UserData{ID: 1, UUID: ctx.Query("u")})
		h.Connect(ctx)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	dial := func(user string) *websocket.Conn {
		url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?u=" + user
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			t.Fatalf("dial: %v", err)
		}
		return conn
	}
	owner := dial("owner")
	defer owner.Close()
	other := dial("other")
	defer other.Close()

	deadline := time.Now().Add(3 * time.Second)
	for h.Online("owner") == 0 || h.Online("other") == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("sessions never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	payload, _ := json.Marshal(&notify.SendMsg{
		Channel:    notify.ReagentRequest,
		Event:      notify.RequestCreated,
		Recipients: []string{"owner"},
	})
	if err := h.OnMsg(context.Background(), string(payload)); err != nil {
		t.Fatalf("OnMsg: %v", err)
	}

	_ = owner.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, data, err := owner.ReadMessage()
	if err != nil {
		t.Fatalf("owner read: %v", err)
	}
	msg := &notify.SendMsg{}
	if err := json.Unmarshal(data, msg); err != nil || msg.Event != notify.RequestCreated {
		t.Fatalf("unexpected message %s err %v", data, err)
	}

	_ = other.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := other.ReadMessage(); err == nil {
		t.Fatalf("message leaked to a non recipient")
	}
}
