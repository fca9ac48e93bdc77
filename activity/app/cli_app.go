package app

import (
	"context"
	"errors"

	"github.com/activitylog/api/activity/domain"
	"go.uber.org/fx"
)

// RunWithService starts the service layer without the HTTP server, hands it
// to fn and stops it again. Used by one-shot commands.
func RunWithService(ctx context.Context, configName string, configDirPath string, fn func(ctx context.Context, svc domain.Service) error) (err error) {
	serviceModule, err := ServiceModule(configName, configDirPath)
	if err != nil {
		return err
	}

	var svc domain.Service
	app := fx.New(serviceModule, fx.NopLogger, fx.Populate(&svc))
	if err := app.Err(); err != nil {
		return err
	}
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, app.Stop(context.WithoutCancel(ctx)))
	}()

	return fn(ctx, svc)
}
