package auth

import (
	"context"
	"sync"

	"golang.org/x/oauth2"

	"github.com/reagentlab/tracker/internal/config"
	"github.com/reagentlab/tracker/pkg/model"
)

var (
	oauthConfig *oauth2.Config
	oauthOnce   sync.Once
	USERKEY     = "AUTH_USER_KEY"
)

type userCtxKey struct{}

func GetOAuthConfig() *oauth2.Config {
	oauthOnce.Do(func() {
		authConf := config.Global().OAuth2
		oauthConfig = &oauth2.Config{
			ClientID:     authConf.ClientID,
			ClientSecret: authConf.ClientSecret,
			Scopes:       authConf.Scopes,
			RedirectURL:  authConf.RedirectURL,
			Endpoint: oauth2.Endpoint{
				TokenURL: authConf.TokenURL,
				AuthURL:  authConf.AuthURL,
			},
		}
	})
	return oauthConfig
}

// GetCurrentUser returns the caller attached by the auth middleware or by WithUser. It works on
// the gin context and on any context derived from it, transaction contexts included.
func GetCurrentUser(ctx context.Context) *model.UserData {
	if ctx == nil {
		return nil
	}
	if ud, ok := ctx.Value(userCtxKey{}).(*model.UserData); ok && ud != nil {
		return ud
	}
	if ud, ok := ctx.Value(USERKEY).(*model.UserData); ok && ud != nil {
		return ud
	}
	return nil
}

// WithUser attaches a caller to a plain context, used by background work and tests.
func WithUser(ctx context.Context, user *model.UserData) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

func ToUserData(u *model.User) *model.UserData {
	if u == nil {
		return nil
	}
	return &model.UserData{
		ID:       u.ID,
		UUID:     u.UUID.String(),
		Username: u.Username,
		IsStaff:  u.IsStaff,
		Roles:    u.RoleSet(),
	}
}
