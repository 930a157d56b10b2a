package oauth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	r "github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"

	"github.com/reagentlab/tracker/internal/config"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/core/account"
	"github.com/reagentlab/tracker/pkg/core/login"
	"github.com/reagentlab/tracker/pkg/middleware/auth"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/middleware/redis"
	"github.com/reagentlab/tracker/pkg/repo"
	repoAccount "github.com/reagentlab/tracker/pkg/repo/account"
	"github.com/reagentlab/tracker/pkg/utils"
)

const stateTTL = 5 * time.Minute

type oauthState struct {
	Timestamp           int64  `json:"timestamp"`
	FrontendCallbackURL string `json:"frontend_callback_url,omitempty"`
}

type oauthLogin struct {
	client       *r.Client
	oauthConfig  *oauth2.Config
	accountStore repo.Account
	userInfoURL  string
	frontendURL  string
}

func New() login.Service {
	conf := config.Global().OAuth2
	return &oauthLogin{
		client:       redis.GetClient(),
		oauthConfig:  auth.GetOAuthConfig(),
		accountStore: repoAccount.New(),
		userInfoURL:  conf.UserInfoURL,
		frontendURL:  conf.FrontendURL,
	}
}

func stateKey(state string) string {
	return fmt.Sprintf("oauth_state:%s", state)
}

func (o *oauthLogin) Login(ctx context.Context, req *login.LoginReq) (*login.Resp, error) {
	stateJSON, err := json.Marshal(oauthState{
		Timestamp:           time.Now().UnixNano(),
		FrontendCallbackURL: req.FrontendCallbackURL,
	})
	if err != nil {
		return nil, code.LoginSetStateErr.WithErr(err)
	}
	state := base64.URLEncoding.EncodeToString(stateJSON)
	if err := o.client.Set(ctx, stateKey(state), "valid", stateTTL).Err(); err != nil {
		logger.Errorf(ctx, "save oauth state err: %+v", err)
		return nil, code.LoginSetStateErr
	}
	return &login.Resp{RedirectURL: o.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)}, nil
}

// Callback consumes the state once, exchanges the code and only succeeds for identities that map
// onto an active local account.
func (o *oauthLogin) Callback(ctx context.Context, req *login.CallbackReq) (*login.CallbackResp, error) {
	if err := o.client.GetDel(ctx, stateKey(req.State)).Err(); err != nil {
		return nil, code.LoginStateErr
	}
	stateJSON, err := base64.URLEncoding.DecodeString(req.State)
	if err != nil {
		return nil, code.LoginStateErr
	}
	state := &oauthState{}
	if err := json.Unmarshal(stateJSON, state); err != nil {
		return nil, code.LoginStateErr
	}

	token, err := o.oauthConfig.Exchange(ctx, req.Code, oauth2.AccessTypeOffline)
	if err != nil {
		logger.Errorf(ctx, "exchange oauth code err: %+v", err)
		return nil, code.ExchangeTokenErr
	}
	info, err := o.userInfo(ctx, token)
	if err != nil {
		return nil, err
	}
	user, err := o.accountStore.GetUserByUsername(ctx, utils.Or(info.PreferredUsername, info.Name))
	if err != nil || !user.IsActive {
		logger.Warnf(ctx, "oauth user %s has no active local account err: %v", info.PreferredUsername, err)
		return nil, code.InvalidToken
	}

	return &login.CallbackResp{
		User:                account.ToResp(user),
		Token:               token.AccessToken,
		RefreshToken:        token.RefreshToken,
		ExpiresIn:           expiresIn(token),
		FrontendCallbackURL: utils.Or(state.FrontendCallbackURL, o.frontendURL+"/login/callback"),
	}, nil
}

func (o *oauthLogin) userInfo(ctx context.Context, token *oauth2.Token) (*auth.UserInfo, error) {
	resp, err := o.oauthConfig.Client(ctx, token).Get(o.userInfoURL)
	if err != nil {
		logger.Errorf(ctx, "get oauth user info err: %+v", err)
		return nil, code.InvalidToken
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, code.InvalidToken
	}
	info := &auth.UserInfo{}
	if err := json.NewDecoder(resp.Body).Decode(info); err != nil {
		return nil, code.InvalidToken
	}
	if info.PreferredUsername == "" && info.Name == "" {
		return nil, code.InvalidToken
	}
	return info, nil
}

func (o *oauthLogin) Refresh(ctx context.Context, req *login.RefreshTokenReq) (*login.RefreshTokenResp, error) {
	expired := &oauth2.Token{
		RefreshToken: req.RefreshToken,
		Expiry:       time.Now().Add(-time.Hour),
	}
	token, err := o.oauthConfig.TokenSource(ctx, expired).Token()
	if err != nil {
		logger.Errorf(ctx, "refresh oauth token err: %+v", err)
		return nil, code.RefreshTokenErr
	}
	return &login.RefreshTokenResp{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    expiresIn(token),
		TokenType:    token.TokenType,
	}, nil
}

func expiresIn(token *oauth2.Token) int64 {
	if token.Expiry.IsZero() {
		return 0
	}
	return token.Expiry.Unix() - time.Now().Unix()
}
