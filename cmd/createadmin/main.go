// Command createadmin provisions an administrator account. Admins cannot sign
// up through the API, so this is the only way to create one.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"kampuskart/config"
	"kampuskart/internal/infra/auth"
	logs "kampuskart/internal/infra/log"
	"kampuskart/internal/infra/persistence"
	"kampuskart/internal/infra/storage"
	"kampuskart/internal/usecase"
	"kampuskart/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const startTimeout = 30 * time.Second

type options struct {
	email     string
	password  string
	firstName string
	lastName  string
	configDir string
}

func main() {
	opts := parseFlags()

	if err := run(opts); err != nil {
		slog.Error("createadmin failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.email, "email", "", "admin email (required)")
	flag.StringVar(&opts.password, "password", "", "admin password, at least 6 characters (required)")
	flag.StringVar(&opts.firstName, "first-name", "Admin", "admin first name")
	flag.StringVar(&opts.lastName, "last-name", "User", "admin last name")
	flag.StringVar(&opts.configDir, "config", "", "directory holding config.yaml")
	flag.Parse()

	if opts.email == "" || opts.password == "" {
		flag.Usage()
		os.Exit(2)
	}

	return opts
}

func run(opts options) error {
	if opts.configDir != "" {
		if err := os.Setenv(config.EnvPrefix+"CONFIG_DIR", opts.configDir); err != nil {
			return errors.Wrap(err, "set config dir")
		}
	}

	var authUC usecase.AuthUsecase
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			persistence.New,
			storage.New,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			impl.NewImageService,
			impl.NewAuthService,
		),
		fx.Populate(&authUC),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build application")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "start application")
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			slog.Warn("stop application", slog.Any("error", err))
		}
	}()

	user, created, err := authUC.ProvisionAdmin(ctx, &usecase.ProvisionAdminInput{
		FirstName: opts.firstName,
		LastName:  opts.lastName,
		Email:     opts.email,
		Password:  opts.password,
	})
	if err != nil {
		return errors.Wrap(err, "provision admin")
	}

	action := "promoted"
	if created {
		action = "created"
	}
	fmt.Printf("admin %s %s (%s)\n", user.Email, action, user.ID)

	return nil
}
