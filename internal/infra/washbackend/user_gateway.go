package washbackend

import (
	"context"
	"fmt"

	"washify/internal/domain/entity"
	"washify/internal/domain/repository"
)

type userGateway struct {
	client *Client
}

// NewUserGateway creates the user gateway.
func NewUserGateway(params GatewayParams) repository.UserGateway {
	return &userGateway{client: params.Client}
}

func (g *userGateway) List(ctx context.Context) entity.Envelope[[]entity.User] {
	return fetchList[entity.User](ctx, g.client, "/api/users", "user")
}

func (g *userGateway) GetByID(ctx context.Context, id int64) entity.Envelope[entity.User] {
	return fetchOne[entity.User](ctx, g.client, fmt.Sprintf("/api/users/%d", id), "user")
}

func (g *userGateway) Activate(ctx context.Context, id int64) error {
	return writeOnly(g.client.Patch(ctx, fmt.Sprintf("/api/users/%d/activate", id), nil))
}

func (g *userGateway) Deactivate(ctx context.Context, id int64) error {
	return writeOnly(g.client.Patch(ctx, fmt.Sprintf("/api/users/%d/deactivate", id), nil))
}

func (g *userGateway) Remove(ctx context.Context, id int64) error {
	return writeOnly(g.client.Delete(ctx, fmt.Sprintf("/api/users/%d", id)))
}
