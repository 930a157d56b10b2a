package auth

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"github.com/reagentlab/tracker/internal/config"
	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
	"github.com/reagentlab/tracker/pkg/repo/account"
	"github.com/reagentlab/tracker/pkg/utils"
)

type AuthType string

const (
	AuthTypeBearer AuthType = "Bearer"
)

type AuthFunc func(ctx *gin.Context, token string) *model.UserData

// UserInfo is the subset of the OpenID userinfo document used to find the local account.
type UserInfo struct {
	Sub               string `json:"sub"`
	PreferredUsername string `json:"preferred_username"`
	Name              string `json:"name"`
}

func ValidateToken(ctx context.Context, tokenType string, token string) (*UserInfo, error) {
	oauthToken := &oauth2.Token{
		AccessToken: token,
		TokenType:   tokenType,
	}
	client := GetOAuthConfig().Client(ctx, oauthToken)
	resp, err := client.Get(config.Global().OAuth2.UserInfoURL)
	if err != nil {
		logger.Errorf(ctx, "Failed to get user info: %v", err)
		return nil, code.InvalidToken
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, code.InvalidToken
	}
	result := &UserInfo{}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, code.InvalidToken
	}
	if result.PreferredUsername == "" && result.Name == "" {
		return nil, code.InvalidToken
	}
	return result, nil
}

func AuthWeb() gin.HandlerFunc {
	if config.Global().Auth.AuthSource == config.AuthOAuth2 {
		return Auth(map[AuthType]AuthFunc{
			AuthTypeBearer: getOAuth2User(account.New()),
		})
	}
	return AuthWebWithSecret([]byte(config.Global().Auth.JWTSecret))
}

// AuthWebWithSecret authenticates HS256 bearer tokens signed with secret.
func AuthWebWithSecret(secret []byte) gin.HandlerFunc {
	return Auth(map[AuthType]AuthFunc{
		AuthTypeBearer: getJWTUser(account.New(), secret),
	})
}

func Auth(authFuncMap map[AuthType]AuthFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		cookie, _ := ctx.Cookie("access_token")
		queryToken := ctx.Query("access_token")
		authHeader := utils.Or(ctx.GetHeader("Authorization"), cookie, queryToken)
		if authHeader == "" {
			common.ReplyErr(ctx, code.UnLogin)
			return
		}
		// browsers cannot set headers on websocket upgrades, bare tokens count as bearer
		if !strings.Contains(authHeader, " ") {
			authHeader = string(AuthTypeBearer) + " " + authHeader
		}
		tokens := strings.SplitN(authHeader, " ", 2)
		if len(tokens) != 2 || tokens[1] == "" {
			common.ReplyErr(ctx, code.LoginFormatErr)
			return
		}
		var userInfo *model.UserData
		if f, ok := authFuncMap[AuthType(tokens[0])]; ok {
			userInfo = f(ctx, tokens[1])
		}
		if userInfo == nil {
			common.ReplyErr(ctx, code.InvalidToken)
			return
		}
		ctx.Set(USERKEY, userInfo)
		ctx.Next()
	}
}

func getJWTUser(client repo.Account, secret []byte) AuthFunc {
	return func(ctx *gin.Context, token string) *model.UserData {
		claims := &utils.Claims{}
		if err := utils.ParseJWT(token, secret, claims); err != nil {
			logger.Warnf(ctx, "parse jwt token err: %v", err)
			return nil
		}
		userUUID, err := uuid.FromString(claims.UserUUID)
		if err != nil {
			logger.Warnf(ctx, "jwt user uuid err: %v", err)
			return nil
		}
		user, err := client.GetUserByUUID(ctx, userUUID)
		if err != nil || !user.IsActive {
			logger.Warnf(ctx, "jwt user %s not usable err: %v", claims.UserUUID, err)
			return nil
		}
		return ToUserData(user)
	}
}

func getOAuth2User(client repo.Account) AuthFunc {
	return func(ctx *gin.Context, token string) *model.UserData {
		info, err := ValidateToken(ctx, string(AuthTypeBearer), token)
		if err != nil {
			logger.Errorf(ctx, "Token validation failed: %v", err)
			return nil
		}
		user, err := client.GetUserByUsername(ctx, utils.Or(info.PreferredUsername, info.Name))
		if err != nil || !user.IsActive {
			logger.Warnf(ctx, "oauth2 user %s has no active local account err: %v", info.PreferredUsername, err)
			return nil
		}
		return ToUserData(user)
	}
}
