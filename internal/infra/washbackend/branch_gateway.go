package washbackend

import (
	"context"
	"fmt"

	"washify/internal/domain/entity"
	"washify/internal/domain/repository"
)

type branchGateway struct {
	client *Client
}

// NewBranchGateway creates the branch gateway.
func NewBranchGateway(params GatewayParams) repository.BranchGateway {
	return &branchGateway{client: params.Client}
}

func (g *branchGateway) List(ctx context.Context) entity.Envelope[[]entity.Branch] {
	return fetchList[entity.Branch](ctx, g.client, "/api/branches", "branch")
}

func (g *branchGateway) ListActive(ctx context.Context) entity.Envelope[[]entity.Branch] {
	return fetchList[entity.Branch](ctx, g.client, "/api/branches/active", "branch")
}

func (g *branchGateway) GetByID(ctx context.Context, id int64) entity.Envelope[entity.Branch] {
	return fetchOne[entity.Branch](ctx, g.client, fmt.Sprintf("/api/branches/%d", id), "branch")
}

func (g *branchGateway) Create(ctx context.Context, in repository.BranchInput) (entity.Branch, error) {
	return writeOne[entity.Branch](g.client.Post(ctx, "/api/branches", in))
}

func (g *branchGateway) Update(ctx context.Context, id int64, in repository.BranchInput) (entity.Branch, error) {
	return writeOne[entity.Branch](g.client.Put(ctx, fmt.Sprintf("/api/branches/%d", id), in))
}

func (g *branchGateway) Remove(ctx context.Context, id int64) error {
	return writeOnly(g.client.Delete(ctx, fmt.Sprintf("/api/branches/%d", id)))
}
