package bootstrap

import (
	"context"
	"log/slog"

	"campsite-reservation/internal/pkg/config"
	"campsite-reservation/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartWindowScheduler),
)

// StartWindowScheduler fills the availability window once at startup and then
// on the configured cron schedule, so the rolling horizon keeps advancing
// while the process runs.
func StartWindowScheduler(lc fx.Lifecycle, cfg config.Config, maintainer *usecase.WindowMaintainer, logger *slog.Logger) error {
	c := cron.New()

	_, err := c.AddFunc(cfg.Window.RefreshSchedule, func() {
		if err := maintainer.RefreshWindow(context.Background()); err != nil {
			logger.Error("Scheduled window refresh failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := maintainer.RefreshWindow(ctx); err != nil {
				return err
			}
			c.Start()
			logger.Info("Window refresh scheduled", "schedule", cfg.Window.RefreshSchedule)
			return nil
		},
		OnStop: func(_ context.Context) error {
			<-c.Stop().Done()
			return nil
		},
	})

	return nil
}
