package washbackend

import (
	"context"
	"fmt"

	"washify/internal/domain/entity"
	"washify/internal/domain/repository"
)

type shipperGateway struct {
	client *Client
}

// NewShipperGateway creates the shipper gateway.
func NewShipperGateway(params GatewayParams) repository.ShipperGateway {
	return &shipperGateway{client: params.Client}
}

func (g *shipperGateway) List(ctx context.Context) entity.Envelope[[]entity.Shipper] {
	return fetchList[entity.Shipper](ctx, g.client, "/api/shippers", "shipper")
}

func (g *shipperGateway) ListActive(ctx context.Context) entity.Envelope[[]entity.Shipper] {
	return fetchList[entity.Shipper](ctx, g.client, "/api/shippers/active", "shipper")
}

func (g *shipperGateway) GetByID(ctx context.Context, id int64) entity.Envelope[entity.Shipper] {
	return fetchOne[entity.Shipper](ctx, g.client, fmt.Sprintf("/api/shippers/%d", id), "shipper")
}

func (g *shipperGateway) Statistics(ctx context.Context, id int64) entity.Envelope[entity.ShipperStatistics] {
	return fetchOne[entity.ShipperStatistics](ctx, g.client, fmt.Sprintf("/api/shippers/%d/statistics", id), "shipper statistics")
}

func (g *shipperGateway) Create(ctx context.Context, in repository.ShipperInput) (entity.Shipper, error) {
	return writeOne[entity.Shipper](g.client.Post(ctx, "/api/shippers", in))
}

func (g *shipperGateway) Update(ctx context.Context, id int64, in repository.ShipperInput) (entity.Shipper, error) {
	return writeOne[entity.Shipper](g.client.Put(ctx, fmt.Sprintf("/api/shippers/%d", id), in))
}

func (g *shipperGateway) Activate(ctx context.Context, id int64) error {
	return writeOnly(g.client.Patch(ctx, fmt.Sprintf("/api/shippers/%d/activate", id), nil))
}

func (g *shipperGateway) Deactivate(ctx context.Context, id int64) error {
	return writeOnly(g.client.Patch(ctx, fmt.Sprintf("/api/shippers/%d/deactivate", id), nil))
}

func (g *shipperGateway) Remove(ctx context.Context, id int64) error {
	return writeOnly(g.client.Delete(ctx, fmt.Sprintf("/api/shippers/%d", id)))
}
