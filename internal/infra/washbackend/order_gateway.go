package washbackend

import (
	"context"
	"fmt"
	"log/slog"

	"washify/internal/domain/entity"
	"washify/internal/domain/repository"

	"go.uber.org/fx"
)

// GatewayParams defines the parameters shared by every entity gateway.
type GatewayParams struct {
	fx.In

	Client *Client
	Logger *slog.Logger
}

type orderGateway struct {
	client *Client
}

// NewOrderGateway creates the order gateway.
func NewOrderGateway(params GatewayParams) repository.OrderGateway {
	return &orderGateway{client: params.Client}
}

func (g *orderGateway) List(ctx context.Context) entity.Envelope[[]entity.Order] {
	return fetchList[entity.Order](ctx, g.client, "/api/orders", "order")
}

func (g *orderGateway) GetByID(ctx context.Context, id int64) entity.Envelope[entity.Order] {
	return fetchOne[entity.Order](ctx, g.client, fmt.Sprintf("/api/orders/%d", id), "order")
}

func (g *orderGateway) UpdateStatus(ctx context.Context, id int64, status string) (entity.Order, error) {
	payload := map[string]string{"status": status}

	return writeOne[entity.Order](g.client.Patch(ctx, fmt.Sprintf("/api/orders/%d/status", id), payload))
}
