package washbackend

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"washify/internal/domain/entity"
	domainerrors "washify/internal/domain/errors"
	"washify/internal/domain/repository"
)

type notificationGateway struct {
	client *Client
	logger *slog.Logger
}

// NewNotificationGateway creates the notification gateway.
func NewNotificationGateway(params GatewayParams) repository.NotificationGateway {
	return &notificationGateway{
		client: params.Client,
		logger: params.Logger,
	}
}

// UnreadCount is also the cheapest connectivity probe the dashboard
// has, so its failure envelope carries a zero count rather than an
// error the caller would have to special-case.
func (g *notificationGateway) UnreadCount(ctx context.Context) entity.Envelope[int] {
	body, err := g.client.Get(ctx, "/api/notifications/unread/count", nil)
	if err != nil {
		g.logger.Warn("unread count read failed", slog.Any("error", err))

		return entity.Fail(0, domainerrors.ErrGatewayRead.Message())
	}

	// The count arrives either bare or wrapped: 5, {"count": 5} or
	// {"data": {"count": 5}}.
	var count int
	if err := decodePayload(body, &count); err == nil {
		return entity.Ok(count)
	}

	var wrapped struct {
		Count int `json:"count"`
	}
	if err := decodePayload(body, &wrapped); err != nil {
		g.logger.Warn("unread count decode failed", slog.Any("error", err))

		return entity.Fail(0, domainerrors.ErrGatewayRead.Message())
	}

	return entity.Ok(wrapped.Count)
}

func (g *notificationGateway) List(ctx context.Context, page, size int) entity.Envelope[entity.Page[entity.Notification]] {
	query := url.Values{
		"page": []string{strconv.Itoa(page)},
		"size": []string{strconv.Itoa(size)},
	}

	body, err := g.client.Get(ctx, "/api/notifications", query)
	if err != nil {
		g.logger.Warn("notification list read failed", slog.Any("error", err))

		return entity.Fail(emptyPage(page, size), domainerrors.ErrGatewayRead.Message())
	}

	var result entity.Page[entity.Notification]
	if err := decodePayload(body, &result); err != nil {
		g.logger.Warn("notification list decode failed", slog.Any("error", err))

		return entity.Fail(emptyPage(page, size), domainerrors.ErrGatewayRead.Message())
	}
	if result.Content == nil {
		result.Content = []entity.Notification{}
	}

	return entity.Ok(result)
}

func (g *notificationGateway) MarkRead(ctx context.Context, id int64) error {
	return writeOnly(g.client.Patch(ctx, fmt.Sprintf("/api/notifications/%d/read", id), nil))
}

func (g *notificationGateway) MarkAllRead(ctx context.Context) error {
	return writeOnly(g.client.Patch(ctx, "/api/notifications/read-all", nil))
}

func emptyPage(page, size int) entity.Page[entity.Notification] {
	return entity.Page[entity.Notification]{
		Content: []entity.Notification{},
		Number:  page,
		Size:    size,
		First:   page == 0,
		Last:    true,
	}
}
