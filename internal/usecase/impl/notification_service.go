package impl

import (
	"context"
	"log/slog"

	"washify/internal/domain/entity"
	"washify/internal/domain/repository"
	"washify/internal/usecase"

	"go.uber.org/fx"
)

// NotificationServiceParams defines the parameters required for the notification service.
type NotificationServiceParams struct {
	fx.In

	Gateway repository.NotificationGateway
	Logger  *slog.Logger
}

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	gateway repository.NotificationGateway
	logger  *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		gateway: params.Gateway,
		logger:  params.Logger,
	}
}

func (srv *notificationService) UnreadCount(ctx context.Context) int {
	return srv.gateway.UnreadCount(ctx).Data
}

func (srv *notificationService) List(ctx context.Context, page, size int) entity.Envelope[entity.Page[entity.Notification]] {
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 20
	}

	return srv.gateway.List(ctx, page, size)
}

func (srv *notificationService) MarkRead(ctx context.Context, id int64) error {
	return srv.gateway.MarkRead(ctx, id)
}

func (srv *notificationService) MarkAllRead(ctx context.Context) error {
	return srv.gateway.MarkAllRead(ctx)
}
