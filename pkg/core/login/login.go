package login

import (
	"context"
)

// Service runs the OAuth2 authorization code flow for browser clients when the api trusts an
// external identity provider.
type Service interface {
	Login(ctx context.Context, req *LoginReq) (*Resp, error)
	Callback(ctx context.Context, req *CallbackReq) (*CallbackResp, error)
	Refresh(ctx context.Context, req *RefreshTokenReq) (*RefreshTokenResp, error)
}
