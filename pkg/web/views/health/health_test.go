package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	r "github.com/redis/go-redis/v9"

	"github.com/reagentlab/tracker/internal/testutil"
	"github.com/reagentlab/tracker/pkg/middleware/redis"
)

type downStore struct{}

func (downStore) PutObject(context.Context, string, []byte, string) (string, error) {
	return "", errors.New("down")
}

func (downStore) Ping(context.Context) error { return errors.New("down") }

type readyResp struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func ready(t *testing.T, h *Handle) (int, *readyResp) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	g := gin.New()
	h.Install(g.Group("/api"))
	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health/ready", nil))
	resp := &readyResp{}
	if err := json.Unmarshal(w.Body.Bytes(), resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return w.Code, resp
}

func TestReady(t *testing.T) {
	testutil.NewDB(t)
	mr := miniredis.RunT(t)
	client := r.NewClient(&r.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	redis.SetClient(client)

	status, resp := ready(t, NewHealthHandle(downStore{}))
	if status != http.StatusOK || resp.Checks["storage"] != "unhealthy" || resp.Checks["database"] != "ok" {
		t.Fatalf("optional storage must not fail readiness: %d %+v", status, resp)
	}

	mr.Close()
	status, resp = ready(t, NewHealthHandle(nil))
	if status != http.StatusServiceUnavailable || resp.Checks["redis"] != "unhealthy" {
		t.Fatalf("expected redis failure, got %d %+v", status, resp)
	}
	if _, ok := resp.Checks["storage"]; ok {
		t.Fatal("storage is only probed when configured")
	}
}
