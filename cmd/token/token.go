package token

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/reagentlab/tracker/internal/config"
	"github.com/reagentlab/tracker/pkg/middleware/db"
	"github.com/reagentlab/tracker/pkg/repo/account"
	"github.com/reagentlab/tracker/pkg/utils"
)

// New mints an HS256 access token for an existing active user.
func New() *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:          "token <username>",
		Short:        "Mint an access token for a user",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			conf := config.Global()
			if conf.Auth.JWTSecret == "" {
				return fmt.Errorf("JWT_SECRET is not set")
			}
			db.InitPostgres(cmd.Context(), &db.Config{
				Host: conf.Database.Host, Port: conf.Database.Port,
				User: conf.Database.User, PW: conf.Database.Password,
				DBName: conf.Database.Name, SSLMode: conf.Database.SSLMode,
				LogConf: db.LogConf{Level: conf.Log.LogLevel},
			})
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := account.New().GetUserByUsername(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("load user %s: %w", args[0], err)
			}
			if !user.IsActive {
				return fmt.Errorf("user %s is inactive", args[0])
			}
			return mint(cmd, user.UUID.String(), ttl)
		},
		PostRunE: func(cmd *cobra.Command, _ []string) error {
			db.ClosePostgres(cmd.Context())
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime, JWT_TTL_HOUR when unset")
	return cmd
}

func mint(cmd *cobra.Command, userUUID string, ttl time.Duration) error {
	auth := config.Global().Auth
	if ttl <= 0 {
		ttl = time.Duration(auth.JWTTTLHour) * time.Hour
	}
	token, err := utils.SignJWT(utils.NewClaims(userUUID, auth.JWTIssuer, ttl), []byte(auth.JWTSecret))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}
