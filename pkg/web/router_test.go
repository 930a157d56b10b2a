package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	r "github.com/redis/go-redis/v9"

	"github.com/reagentlab/tracker/internal/config"
	"github.com/reagentlab/tracker/internal/testutil"
	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/middleware/redis"
	"github.com/reagentlab/tracker/pkg/utils"
)

const secret = "router-test-secret"

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	client := r.NewClient(&r.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	redis.SetClient(client)
	config.Global().Auth.AuthSource = config.AuthJWT
	config.Global().Auth.JWTSecret = secret

	ctx, cancel := context.WithCancel(context.Background())
	g := gin.New()
	release := NewRouter(ctx, g)
	t.Cleanup(func() {
		release()
		cancel()
	})
	return g
}

func do(g *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestAnonymousRequestsAreRejected(t *testing.T) {
	testutil.NewDB(t)
	g := newEngine(t)

	paths := []string{
		"/api/v1/users", "/api/v1/users/me", "/api/v1/laboratories", "/api/v1/producers",
		"/api/v1/hazard-statements", "/api/v1/reagents", "/api/v1/projects",
		"/api/v1/personal-reagents", "/api/v1/personal-reagents/me", "/api/v1/reagent-requests",
		"/api/v1/reagent-requests/notifications", "/ws/notify",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := do(g, http.MethodGet, path, "", "")
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
			}
			resp := &common.Resp{}
			if err := json.Unmarshal(w.Body.Bytes(), resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Code != code.UnLogin {
				t.Fatalf("expected UnLogin, got %d", resp.Code)
			}
		})
	}

	if w := do(g, http.MethodGet, "/api/v1/users", "not-a-jwt", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad token, got %d", w.Code)
	}
}

func TestAuthenticatedRoutes(t *testing.T) {
	gdb := testutil.NewDB(t)
	g := newEngine(t)
	worker := testutil.CreateUser(t, gdb, "worker", false, common.LabWorker)
	token, err := utils.SignJWT(utils.NewClaims(worker.UUID.String(), "test", time.Hour), []byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	w := do(g, http.MethodGet, "/api/v1/users/me", token, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), worker.UUID.String()) {
		t.Fatalf("unexpected me response %d: %s", w.Code, w.Body.String())
	}

	w = do(g, http.MethodPost, "/api/v1/laboratories", token, `{"name":"Lab A"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("lab workers cannot create laboratories, got %d", w.Code)
	}

	w = do(g, http.MethodPost, "/api/v1/producers", token, `{"name":"Sigma"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = do(g, http.MethodGet, "/api/v1/personal-reagents/not-a-uuid", token, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed uuid, got %d", w.Code)
	}

	w = do(g, http.MethodPost, "/api/v1/personal-reagents", token, `{"room":"1"}`)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "receipt_purchase_date") {
		t.Fatalf("expected field errors, got %d: %s", w.Code, w.Body.String())
	}

	w = do(g, http.MethodGet, "/api/v1/history/user/"+worker.UUID.String(), token, "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestPublicRoutes(t *testing.T) {
	testutil.NewDB(t)
	g := newEngine(t)

	for _, path := range []string{"/api/health", "/api/health/live", "/api/health/ready", "/metrics"} {
		if w := do(g, http.MethodGet, path, "", ""); w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
}
