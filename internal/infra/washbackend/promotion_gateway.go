package washbackend

import (
	"context"
	"fmt"

	"washify/internal/domain/entity"
	"washify/internal/domain/repository"
)

type promotionGateway struct {
	client *Client
}

// NewPromotionGateway creates the promotion gateway.
func NewPromotionGateway(params GatewayParams) repository.PromotionGateway {
	return &promotionGateway{client: params.Client}
}

func (g *promotionGateway) List(ctx context.Context) entity.Envelope[[]entity.Promotion] {
	return fetchList[entity.Promotion](ctx, g.client, "/api/promotions", "promotion")
}

func (g *promotionGateway) ListActive(ctx context.Context) entity.Envelope[[]entity.Promotion] {
	return fetchList[entity.Promotion](ctx, g.client, "/api/promotions/active", "promotion")
}

func (g *promotionGateway) GetByID(ctx context.Context, id int64) entity.Envelope[entity.Promotion] {
	return fetchOne[entity.Promotion](ctx, g.client, fmt.Sprintf("/api/promotions/%d", id), "promotion")
}

func (g *promotionGateway) Create(ctx context.Context, in repository.PromotionInput) (entity.Promotion, error) {
	return writeOne[entity.Promotion](g.client.Post(ctx, "/api/promotions", in))
}

func (g *promotionGateway) Update(ctx context.Context, id int64, in repository.PromotionInput) (entity.Promotion, error) {
	return writeOne[entity.Promotion](g.client.Put(ctx, fmt.Sprintf("/api/promotions/%d", id), in))
}

func (g *promotionGateway) Remove(ctx context.Context, id int64) error {
	return writeOnly(g.client.Delete(ctx, fmt.Sprintf("/api/promotions/%d", id)))
}
