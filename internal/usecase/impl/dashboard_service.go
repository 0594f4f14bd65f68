package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	deliverycontext "washify/internal/delivery/context"
	"washify/internal/domain/entity"
	"washify/internal/domain/repository"
	"washify/internal/usecase"

	"go.uber.org/fx"
)

// DashboardServiceParams defines the parameters required for the dashboard service.
type DashboardServiceParams struct {
	fx.In

	Orders   repository.OrderGateway
	Users    repository.UserGateway
	Branches repository.BranchGateway
	Services repository.ServiceGateway
	Shippers repository.ShipperGateway
	Logger   *slog.Logger
}

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	orders   repository.OrderGateway
	users    repository.UserGateway
	branches repository.BranchGateway
	services repository.ServiceGateway
	shippers repository.ShipperGateway
	logger   *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		orders:   params.Orders,
		users:    params.Users,
		branches: params.Branches,
		services: params.Services,
		shippers: params.Shippers,
		logger:   params.Logger,
	}
}

// Stats fetches every collection in parallel and aggregates the
// overview numbers. Each source degrades independently: a failed read
// leaves its counters at zero instead of failing the whole overview.
func (srv *dashboardService) Stats(ctx context.Context) entity.DashboardStats {
	var (
		stats entity.DashboardStats
		mu    sync.Mutex
		wg    sync.WaitGroup
	)

	run := func(fn func(*entity.DashboardStats)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var partial entity.DashboardStats
			fn(&partial)

			mu.Lock()
			defer mu.Unlock()
			merge(&stats, partial)
		}()
	}

	run(func(s *entity.DashboardStats) { srv.orderStats(ctx, s) })
	run(func(s *entity.DashboardStats) { srv.userStats(ctx, s) })
	run(func(s *entity.DashboardStats) { srv.branchStats(ctx, s) })
	run(func(s *entity.DashboardStats) { srv.serviceStats(ctx, s) })
	run(func(s *entity.DashboardStats) { srv.shipperStats(ctx, s) })

	wg.Wait()

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("dashboard stats aggregated",
		slog.Int("total_orders", stats.TotalOrders),
		slog.Int64("total_revenue", stats.TotalRevenue))

	return stats
}

func (srv *dashboardService) orderStats(ctx context.Context, s *entity.DashboardStats) {
	envelope := srv.orders.List(ctx)
	if !envelope.Success {
		return
	}

	today := time.Now().Format("2006-01-02")
	for _, order := range envelope.Data {
		s.TotalOrders++
		if strings.HasPrefix(order.OrderDate, today) {
			s.TodayOrders++
		}
		switch {
		case order.Status == entity.OrderStatusCompleted:
			s.CompletedOrders++
			s.TotalRevenue += order.TotalAmount
		case slices.Contains(entity.PendingOrderStatuses, order.Status):
			s.PendingOrders++
		}
	}
}

func (srv *dashboardService) userStats(ctx context.Context, s *entity.DashboardStats) {
	envelope := srv.users.List(ctx)
	if !envelope.Success {
		return
	}

	for _, user := range envelope.Data {
		s.TotalUsers++
		if user.IsActive {
			s.ActiveUsers++
		}
	}
}

func (srv *dashboardService) branchStats(ctx context.Context, s *entity.DashboardStats) {
	envelope := srv.branches.List(ctx)
	if !envelope.Success {
		return
	}

	for _, branch := range envelope.Data {
		s.TotalBranches++
		if branch.IsActive {
			s.ActiveBranches++
		}
	}
}

func (srv *dashboardService) serviceStats(ctx context.Context, s *entity.DashboardStats) {
	envelope := srv.services.List(ctx)
	if !envelope.Success {
		return
	}

	for _, service := range envelope.Data {
		s.TotalServices++
		if service.IsActive {
			s.ActiveServices++
		}
	}
}

func (srv *dashboardService) shipperStats(ctx context.Context, s *entity.DashboardStats) {
	envelope := srv.shippers.List(ctx)
	if !envelope.Success {
		return
	}

	for _, shipper := range envelope.Data {
		if shipper.IsActive {
			s.ActiveShippers++
		}
	}
}

// merge folds a partial result into the aggregate. Each source touches
// a disjoint set of counters, so plain addition is safe.
func merge(total *entity.DashboardStats, part entity.DashboardStats) {
	total.TotalOrders += part.TotalOrders
	total.TotalRevenue += part.TotalRevenue
	total.ActiveShippers += part.ActiveShippers
	total.PendingOrders += part.PendingOrders
	total.CompletedOrders += part.CompletedOrders
	total.TodayOrders += part.TodayOrders
	total.TotalUsers += part.TotalUsers
	total.ActiveUsers += part.ActiveUsers
	total.TotalBranches += part.TotalBranches
	total.ActiveBranches += part.ActiveBranches
	total.TotalServices += part.TotalServices
	total.ActiveServices += part.ActiveServices
}
