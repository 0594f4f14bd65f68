package usecase

import (
	"context"

	"washify/internal/domain/entity"
)

// DashboardUsecase aggregates the landing-page overview numbers from
// several backend collections at once. Each source degrades
// independently: a failed read contributes zeros, never an error.
type DashboardUsecase interface {
	Stats(ctx context.Context) entity.DashboardStats
}

// NotificationUsecase is the feed behind the bell icon.
type NotificationUsecase interface {
	UnreadCount(ctx context.Context) int
	List(ctx context.Context, page, size int) entity.Envelope[entity.Page[entity.Notification]]
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) error
}
