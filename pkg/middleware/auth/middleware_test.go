package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reagentlab/tracker/internal/testutil"
	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/middleware/auth"
	"github.com/reagentlab/tracker/pkg/utils"
)

func TestAuthWebJWT(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := testutil.NewDB(t)
	worker := testutil.CreateUser(t, gdb, "worker", false, common.LabWorker)
	inactive := testutil.CreateUser(t, gdb, "gone", false, common.LabWorker)
	gdb.Model(inactive).Update("is_active", false)

	secret := []byte("test-secret")

	r := gin.New()
	r.Use(auth.AuthWebWithSecret(secret))
	r.GET("/me", func(ctx *gin.Context) {
		u := auth.GetCurrentUser(ctx)
		if u == nil {
			ctx.Status(http.StatusTeapot)
			return
		}
		ctx.String(http.StatusOK, u.Username)
	})

	sign := func(userUUID string, ttl time.Duration) string {
		tok, err := utils.SignJWT(utils.NewClaims(userUUID, "test", ttl), secret)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return tok
	}

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"garbage", "Bearer nope", http.StatusUnauthorized},
		{"expired", "Bearer " + sign(worker.UUID.String(), -time.Minute), http.StatusUnauthorized},
		{"inactive", "Bearer " + sign(inactive.UUID.String(), time.Hour), http.StatusUnauthorized},
		{"valid", "Bearer " + sign(worker.UUID.String(), time.Hour), http.StatusOK},
		{"bare token", sign(worker.UUID.String(), time.Hour), http.StatusOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != c.want {
				t.Fatalf("expected %d, got %d body=%s", c.want, w.Code, w.Body.String())
			}
			if c.want == http.StatusOK && w.Body.String() != "worker" {
				t.Fatalf("unexpected user %q", w.Body.String())
			}
		})
	}
}
