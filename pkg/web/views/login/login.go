package login

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/reagentlab/tracker/internal/config"
	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	ls "github.com/reagentlab/tracker/pkg/core/login"
	"github.com/reagentlab/tracker/pkg/core/login/oauth"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
)

const refreshCookieAge = 30 * 24 * 60 * 60

type Login struct {
	lService ls.Service
}

func NewLogin() *Login {
	return &Login{lService: oauth.New()}
}

// Install mounts the browser login flow, only meaningful with an OAuth2 auth source.
func (l *Login) Install(g *gin.RouterGroup) {
	authGroup := g.Group("/auth")
	authGroup.GET("/login", l.Login)
	authGroup.GET("/callback", l.Callback)
	authGroup.POST("/refresh", l.Refresh)
}

func (l *Login) Login(ctx *gin.Context) {
	req := &ls.LoginReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		logger.Warnf(ctx, "login param err: %v", err)
	}
	resp, err := l.lService.Login(ctx, req)
	if err != nil {
		common.ReplyErr(ctx, err)
		return
	}
	ctx.Redirect(http.StatusFound, resp.RedirectURL)
}

func (l *Login) Refresh(ctx *gin.Context) {
	req := &ls.RefreshTokenReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		common.ReplyErr(ctx, code.RefreshTokenParamErr)
		return
	}
	resp, err := l.lService.Refresh(ctx, req)
	common.Reply(ctx, err, resp)
}

func (l *Login) Callback(ctx *gin.Context) {
	req := &ls.CallbackReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		logger.Warnf(ctx, "callback param err: %+v", err)
		failRedirect(ctx, "parameter error")
		return
	}
	resp, err := l.lService.Callback(ctx, req)
	if err != nil {
		logger.Errorf(ctx, "callback err: %+v", err)
		failRedirect(ctx, "login failed")
		return
	}

	isSecure := ctx.Request.TLS != nil || ctx.GetHeader("X-Forwarded-Proto") == "https"
	ctx.SetCookie("access_token", resp.Token, int(resp.ExpiresIn), "/", "", isSecure, true)
	ctx.SetCookie("refresh_token", resp.RefreshToken, refreshCookieAge, "/", "", isSecure, true)
	if userJSON, err := json.Marshal(resp.User); err == nil {
		ctx.SetCookie("user_info", base64.URLEncoding.EncodeToString(userJSON), int(resp.ExpiresIn), "/", "", isSecure, false)
	}

	params := url.Values{}
	params.Set("status", "success")
	ctx.Redirect(http.StatusFound, fmt.Sprintf("%s?%s", resp.FrontendCallbackURL, params.Encode()))
}

func failRedirect(ctx *gin.Context, reason string) {
	ctx.Redirect(http.StatusFound, fmt.Sprintf("%s/login/callback?error=%s",
		config.Global().OAuth2.FrontendURL, url.QueryEscape(reason)))
}
