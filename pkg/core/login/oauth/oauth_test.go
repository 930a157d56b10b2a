package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/alicebob/miniredis/v2"
	r "github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"

	"github.com/reagentlab/tracker/internal/testutil"
	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/core/login"
	repoAccount "github.com/reagentlab/tracker/pkg/repo/account"
)

// provider fakes the token and userinfo endpoints of an identity provider.
func provider(t *testing.T, username string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, req *http.Request) {
		_ = req.ParseForm()
		access := "access-" + req.Form.Get("code")
		if req.Form.Get("grant_type") == "refresh_token" {
			if req.Form.Get("refresh_token") != "refresh-1" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
				return
			}
			access = "access-refreshed"
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  access,
			"token_type":    "Bearer",
			"refresh_token": "refresh-1",
			"expires_in":    3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"sub": "1", "preferred_username": username})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newLogin(t *testing.T, username string) *oauthLogin {
	t.Helper()
	srv := provider(t, username)
	mr := miniredis.RunT(t)
	client := r.NewClient(&r.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return &oauthLogin{
		client: client,
		oauthConfig: &oauth2.Config{
			ClientID:     "tracker",
			ClientSecret: "secret",
			RedirectURL:  "http://api.test/api/auth/callback",
			Endpoint: oauth2.Endpoint{
				AuthURL:   srv.URL + "/authorize",
				TokenURL:  srv.URL + "/token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		accountStore: repoAccount.New(),
		userInfoURL:  srv.URL + "/userinfo",
		frontendURL:  "http://app.test",
	}
}

func stateOf(t *testing.T, resp *login.Resp) string {
	t.Helper()
	u, err := url.Parse(resp.RedirectURL)
	if err != nil {
		t.Fatalf("parse redirect: %v", err)
	}
	state := u.Query().Get("state")
	if state == "" {
		t.Fatalf("redirect %s carries no state", resp.RedirectURL)
	}
	return state
}

func TestCallbackConsumesState(t *testing.T) {
	gdb := testutil.NewDB(t)
	u := testutil.CreateUser(t, gdb, "alice", false, common.LabWorker)
	l := newLogin(t, "alice")
	ctx := context.Background()

	resp, err := l.Login(ctx, &login.LoginReq{FrontendCallbackURL: "http://app.test/done"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	state := stateOf(t, resp)

	if _, err := l.Callback(ctx, &login.CallbackReq{Code: "c1", State: "forged"}); code.Of(err) != code.LoginStateErr {
		t.Fatalf("expected LoginStateErr for unknown state, got %v", err)
	}

	got, err := l.Callback(ctx, &login.CallbackReq{Code: "c1", State: state})
	if err != nil {
		t.Fatalf("callback: %v", err)
	}
	if got.Token != "access-c1" || got.RefreshToken != "refresh-1" {
		t.Fatalf("unexpected tokens %+v", got)
	}
	if got.User == nil || got.User.UUID != u.UUID {
		t.Fatalf("expected local user %s, got %+v", u.UUID, got.User)
	}
	if got.FrontendCallbackURL != "http://app.test/done" {
		t.Fatalf("unexpected frontend url %s", got.FrontendCallbackURL)
	}
	if got.ExpiresIn <= 0 {
		t.Fatalf("expected positive expiry, got %d", got.ExpiresIn)
	}

	if _, err := l.Callback(ctx, &login.CallbackReq{Code: "c1", State: state}); code.Of(err) != code.LoginStateErr {
		t.Fatalf("state must be single use, got %v", err)
	}
}

func TestCallbackRequiresLocalAccount(t *testing.T) {
	gdb := testutil.NewDB(t)
	testutil.CreateUser(t, gdb, "alice", false, common.LabWorker)
	l := newLogin(t, "mallory")
	ctx := context.Background()

	resp, err := l.Login(ctx, &login.LoginReq{})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := l.Callback(ctx, &login.CallbackReq{Code: "c2", State: stateOf(t, resp)}); code.Of(err) != code.InvalidToken {
		t.Fatalf("expected InvalidToken for unknown identity, got %v", err)
	}
}

func TestRefresh(t *testing.T) {
	testutil.NewDB(t)
	l := newLogin(t, "alice")
	ctx := context.Background()

	got, err := l.Refresh(ctx, &login.RefreshTokenReq{RefreshToken: "refresh-1"})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got.AccessToken != "access-refreshed" || got.TokenType != "Bearer" {
		t.Fatalf("unexpected refresh response %+v", got)
	}
	if _, err := l.Refresh(ctx, &login.RefreshTokenReq{RefreshToken: "stale"}); code.Of(err) != code.RefreshTokenErr {
		t.Fatalf("expected RefreshTokenErr, got %v", err)
	}
}
