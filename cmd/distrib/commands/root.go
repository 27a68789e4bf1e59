// Package commands wires the cobra command tree of the distrib CLI.
// Each command collects and format-checks input, calls one domain
// service and renders the returned rows; business rules live in
// internal/service.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abid327/distrib/internal/auth"
	"github.com/abid327/distrib/internal/config"
	"github.com/abid327/distrib/internal/service"
	"github.com/abid327/distrib/internal/session"
	"github.com/abid327/distrib/internal/storage/sqlite"
	"github.com/abid327/distrib/pkg/logging"
)

// appContext carries the wired services for the lifetime of one command.
type appContext struct {
	cfg           config.Config
	store         *sqlite.Store
	clients       *service.ClientService
	pricing       *service.PricingService
	distributions *service.DistributionService
	payments      *service.PaymentService
	auth          *auth.PasswordAuthenticator
	tokens        *auth.JWTManager
	session       *session.Manager
}

var (
	home   string
	appCtx *appContext

	// currentUser is set from the session token for commands that
	// require a login.
	currentUser *auth.Claims
)

// skipAuthAnnotation marks commands usable without a session.
const skipAuthAnnotation = "skip-auth"

func Execute() error {
	root := &cobra.Command{
		Use:           "distrib",
		Short:         "Distribution-business ledger: clients, daily prices, deliveries, payments",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".distrib")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := config.Load(home)
			if err != nil {
				return err
			}
			logging.Setup(cfg.LogLevel)

			store, err := sqlite.New(cfg.DBPath)
			if err != nil {
				return err
			}

			appCtx = &appContext{
				cfg:           cfg,
				store:         store,
				clients:       service.NewClientService(store),
				pricing:       service.NewPricingService(store),
				distributions: service.NewDistributionService(store),
				payments:      service.NewPaymentService(store),
				auth:          auth.NewPasswordAuthenticator(store),
				tokens:        auth.NewJWTManager(cfg.SessionSecret, cfg.SessionTTL),
				session:       session.NewManager(home),
			}

			if cmd.Annotations[skipAuthAnnotation] == "true" {
				return nil
			}
			return loadSession()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx != nil {
				return appCtx.store.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.distrib)")

	root.AddCommand(
		loginCmd(), logoutCmd(), passwdCmd(),
		clientCmd(),
		priceCmd(),
		distributeCmd(), distributionsCmd(),
		payCmd(), paymentsCmd(), pendingCmd(),
		reportCmd(),
	)
	return root.Execute()
}

// loadSession validates the stored token and sets currentUser.
func loadSession() error {
	token, err := appCtx.session.Load()
	if err != nil {
		if os.IsNotExist(err) {
			return auth.ErrMissingToken
		}
		return fmt.Errorf("failed to read session: %w", err)
	}

	claims, err := appCtx.tokens.Validate(token)
	if err != nil {
		return err
	}

	currentUser = claims
	return nil
}
