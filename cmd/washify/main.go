package main

import (
	"context"
	"log/slog"
	"os"

	"washify/config"
	"washify/internal/delivery"
	"washify/internal/delivery/http"
	"washify/internal/delivery/http/middleware"
	"washify/internal/delivery/http/router/handler"
	"washify/internal/domain/service"
	"washify/internal/infra/export"
	logs "washify/internal/infra/log"
	"washify/internal/infra/sessionstore"
	"washify/internal/infra/washbackend"
	"washify/internal/usecase"
	"washify/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectGateway(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			restoreSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		washbackend.NewTokenHolder,
		newTokenCarrier,
		washbackend.NewClient,
		sessionstore.New,
		export.NewArchiveWriter,
	)
}

// newTokenCarrier exposes the token holder under its domain port so the
// auth service stays free of infra imports.
func newTokenCarrier(tokens *washbackend.TokenHolder) service.TokenCarrier {
	return tokens
}

func injectGateway() fx.Option {
	return fx.Options(
		fx.Provide(
			washbackend.NewAuthGateway,
			washbackend.NewOrderGateway,
			washbackend.NewUserGateway,
			washbackend.NewBranchGateway,
			washbackend.NewServiceGateway,
			washbackend.NewShipperGateway,
			washbackend.NewPromotionGateway,
			washbackend.NewNotificationGateway,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewOrderList,
			impl.NewUserList,
			impl.NewBranchList,
			impl.NewServiceList,
			impl.NewShipperList,
			impl.NewPromotionList,
			impl.NewDashboardService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestScopeMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewDashboardHandler,
			handler.NewOrderHandler,
			handler.NewUserHandler,
			handler.NewBranchHandler,
			handler.NewServiceHandler,
			handler.NewShipperHandler,
			handler.NewPromotionHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// restoreSession replays the persisted session before any request is
// served, so a restart does not log the operator out.
func restoreSession(ctx context.Context, auth usecase.AuthUsecase, logger *slog.Logger) {
	if err := auth.Initialize(ctx); err != nil {
		logger.Warn("Session restore failed", slog.Any("error", err))
	}
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
