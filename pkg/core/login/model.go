package login

import (
	"github.com/reagentlab/tracker/pkg/core/account"
)

type LoginReq struct {
	FrontendCallbackURL string `form:"frontend_callback_url"`
}

type Resp struct {
	RedirectURL string `json:"redirect_url"`
}

type CallbackReq struct {
	Code  string `form:"code" binding:"required"`
	State string `form:"state" binding:"required"`
}

type CallbackResp struct {
	User                *account.UserResp
	Token               string
	RefreshToken        string
	ExpiresIn           int64
	FrontendCallbackURL string
}

type RefreshTokenReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RefreshTokenResp struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}
