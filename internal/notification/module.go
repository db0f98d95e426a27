package notification

import (
	"context"

	"github.com/lumelec/backoffice/internal/config"
	"github.com/lumelec/backoffice/internal/logger"
	"github.com/lumelec/backoffice/internal/notification/handler"
	"github.com/lumelec/backoffice/internal/notification/publisher"
	"github.com/lumelec/backoffice/internal/pubsub"
	"github.com/lumelec/backoffice/internal/pubsub/memory"
	pubsubRouter "github.com/lumelec/backoffice/internal/pubsub/router"
	"github.com/lumelec/backoffice/internal/types"
	"go.uber.org/fx"
)

// Module provides the event publisher and, when enabled, the router that
// turns events into notifications
var Module = fx.Options(
	fx.Provide(
		providePubSub,
		publisher.NewPublisher,
		handler.NewLogNotifier,
		handler.NewHandler,
		pubsubRouter.NewRouter,
	),
	fx.Invoke(registerRouter),
)

func providePubSub(cfg *config.Configuration, logger *logger.Logger) pubsub.PubSub {
	switch cfg.Notification.PubSub {
	case types.MemoryPubSub, "":
		return memory.NewPubSub(logger)
	}
	panic("unsupported pubsub type: " + string(cfg.Notification.PubSub))
}

func registerRouter(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	router *pubsubRouter.Router,
	h handler.Handler,
	pub publisher.EventPublisher,
	logger *logger.Logger,
) {
	if !cfg.Notification.Enabled {
		logger.Info("notifications disabled")
		return
	}

	h.RegisterHandler(router)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(context.Background()); err != nil {
					logger.Errorw("notification router stopped", "error", err)
				}
			}()
			select {
			case <-router.Running():
			case <-ctx.Done():
				return ctx.Err()
			}
			logger.Infow("notification router started", "topic", cfg.Notification.Topic)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := router.Close(); err != nil {
				logger.Errorw("failed to close notification router", "error", err)
			}
			return pub.Close()
		},
	})
}
