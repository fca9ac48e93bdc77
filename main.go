package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/activitylog/api/activity/app"
	"github.com/activitylog/api/activity/client"
	"github.com/activitylog/api/activity/domain"
	"github.com/activitylog/api/activity/service"
	"github.com/activitylog/api/config"
	"github.com/activitylog/api/pkg/logger"
	"github.com/activitylog/api/pkg/util"
	"github.com/spf13/cobra"
)

//	@title			Activity Logs API
//	@version		1.0
//	@description	Records user activity events and serves filtered, paginated queries over them.
//	@BasePath		/

var (
	configName string
	configDir  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "activitylog",
		Short:        "Activity log microservice",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configName, "config-name", "activity_config.toml", "config file name")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory searched for the config file")

	rootCmd.AddCommand(newServeCmd(), newCleanupCmd(), newSeedCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			restApp, err := app.NewRestApp(configName, configDir)
			if err != nil {
				return err
			}
			if err := restApp.Err(); err != nil {
				return err
			}

			startCtx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			if err := restApp.Start(startCtx); err != nil {
				return err
			}

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			return restApp.Stop(stopCtx)
		},
	}
}

func newCleanupCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete activities older than --days",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunWithService(cmd.Context(), configName, configDir, func(ctx context.Context, svc domain.Service) error {
				deleted, err := svc.DeleteActivitiesOlderThan(ctx, days)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d activity logs older than %d days\n", deleted, days)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 90, "retention window in days")
	return cmd
}

func newSeedCmd() *cobra.Command {
	var (
		count      int
		maxAgeDays int
		url        string
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert random demo activities",
		Long:  "Insert random demo activities into the configured store, or post them to a running service when --url is set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
			activities := service.GenerateSeedActivities(rng, time.Now().UTC(), count, maxAgeDays)

			if url != "" {
				// no store is opened here, so the logger is set up directly
				cfg, err := config.InitActivityConfig(configName, configDir)
				if err != nil {
					return err
				}
				logger.InitLogger(cfg.Logging)
				return seedOverHTTP(cmd.Context(), client.NewActivityClient(url, nil), activities)
			}
			return app.RunWithService(cmd.Context(), configName, configDir, func(ctx context.Context, svc domain.Service) error {
				created := 0
				for _, activity := range activities {
					if err := svc.CreateActivity(ctx, activity); err != nil {
						logger.Logger(ctx).Error().Err(err).Msg("create seed activity failed")
						continue
					}
					created++
				}
				logger.Logger(ctx).Info().Msgf("created %d of %d seed activities", created, len(activities))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&count, "count", 20, "number of activities")
	cmd.Flags().IntVar(&maxAgeDays, "max-age-days", 14, "timestamps are spread over this many past days")
	cmd.Flags().StringVar(&url, "url", "", "base url of a running service, e.g. http://localhost:3000")
	return cmd
}

func seedOverHTTP(ctx context.Context, c *client.ActivityClient, activities []*domain.Activity) error {
	created := 0
	for _, activity := range activities {
		_, err := c.LogActivity(ctx, client.Entry{
			Action:    string(activity.Action),
			UserID:    activity.UserID,
			Status:    activity.Status,
			Details:   activity.Details,
			Timestamp: util.Ptr(activity.Timestamp),
		})
		if err != nil {
			continue
		}
		created++
	}
	logger.Logger(ctx).Info().Msgf("posted %d of %d seed activities", created, len(activities))
	return nil
}
