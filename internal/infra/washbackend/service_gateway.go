package washbackend

import (
	"context"
	"fmt"

	"washify/internal/domain/entity"
	"washify/internal/domain/repository"
)

type serviceGateway struct {
	client *Client
}

// NewServiceGateway creates the laundry service gateway.
func NewServiceGateway(params GatewayParams) repository.ServiceGateway {
	return &serviceGateway{client: params.Client}
}

func (g *serviceGateway) List(ctx context.Context) entity.Envelope[[]entity.LaundryService] {
	return fetchList[entity.LaundryService](ctx, g.client, "/api/services", "service")
}

func (g *serviceGateway) ListActive(ctx context.Context) entity.Envelope[[]entity.LaundryService] {
	return fetchList[entity.LaundryService](ctx, g.client, "/api/services/active", "service")
}

func (g *serviceGateway) GetByID(ctx context.Context, id int64) entity.Envelope[entity.LaundryService] {
	return fetchOne[entity.LaundryService](ctx, g.client, fmt.Sprintf("/api/services/%d", id), "service")
}

func (g *serviceGateway) Create(ctx context.Context, in repository.ServiceInput) (entity.LaundryService, error) {
	return writeOne[entity.LaundryService](g.client.Post(ctx, "/api/services", in))
}

func (g *serviceGateway) Update(ctx context.Context, id int64, in repository.ServiceInput) (entity.LaundryService, error) {
	return writeOne[entity.LaundryService](g.client.Put(ctx, fmt.Sprintf("/api/services/%d", id), in))
}

func (g *serviceGateway) Remove(ctx context.Context, id int64) error {
	return writeOnly(g.client.Delete(ctx, fmt.Sprintf("/api/services/%d", id)))
}
