package impl

import (
	"context"
	"log/slog"
	"time"

	"washify/internal/domain/entity"
	"washify/internal/domain/repository"
	"washify/internal/usecase"

	"go.uber.org/fx"
)

// One descriptor per entity type. The label maps drive CSV/HTML/PDF
// column headers, so their wording and order are part of the export
// contract.

func activeStatus(isActive bool) string {
	if isActive {
		return "active"
	}

	return "inactive"
}

// OrderListParams defines the parameters required for the order list.
type OrderListParams struct {
	fx.In

	Gateway repository.OrderGateway
	Logger  *slog.Logger
}

// NewOrderList builds the list controller behind the orders view.
// Orders carry a multi-state workflow status instead of an active
// flag, so they support neither toggling nor soft deletion.
func NewOrderList(params OrderListParams) usecase.ListUsecase[entity.Order] {
	return NewListController(Descriptor[entity.Order]{
		Name: "order",
		List: params.Gateway.List,
		ID:   func(o entity.Order) int64 { return o.ID },
		SearchText: func(o entity.Order) []string {
			return []string{o.OrderCode, o.UserName, o.BranchName}
		},
		Status:    func(o entity.Order) string { return o.Status },
		DateField: func(o entity.Order) string { return o.OrderDate },
		ExportRow: func(o entity.Order) *entity.ExportRow {
			return entity.NewExportRow().
				Set("ID", o.ID).
				Set("Mã Đơn Hàng", o.OrderCode).
				Set("Khách Hàng", o.UserName).
				Set("Chi Nhánh", o.BranchName).
				Set("Ngày Đặt", FormatDateTime(o.OrderDate)).
				Set("Trạng Thái", OrderStatusText(o.Status)).
				Set("Tổng Tiền", FormatVND(o.TotalAmount)).
				Set("Ghi Chú", o.Notes)
		},
	}, params.Logger)
}

// UserListParams defines the parameters required for the user list.
type UserListParams struct {
	fx.In

	Gateway repository.UserGateway
	Logger  *slog.Logger
}

// NewUserList builds the list controller behind the customers view.
func NewUserList(params UserListParams) usecase.ListUsecase[entity.User] {
	gw := params.Gateway

	return NewListController(Descriptor[entity.User]{
		Name: "user",
		List: gw.List,
		ID:   func(u entity.User) int64 { return u.ID },
		SearchText: func(u entity.User) []string {
			return []string{u.Username, u.FullName, u.Email, u.Phone}
		},
		Status:    func(u entity.User) string { return activeStatus(u.IsActive) },
		DateField: func(u entity.User) string { return u.CreatedAt },
		Toggle: func(u entity.User) entity.User {
			u.IsActive = !u.IsActive

			return u
		},
		ConfirmToggle: func(ctx context.Context, u entity.User) error {
			if u.IsActive {
				return gw.Activate(ctx, u.ID)
			}

			return gw.Deactivate(ctx, u.ID)
		},
		ConfirmDelete: gw.Remove,
		ExportRow: func(u entity.User) *entity.ExportRow {
			return entity.NewExportRow().
				Set("ID", u.ID).
				Set("Tên Đăng Nhập", u.Username).
				Set("Họ Tên", u.FullName).
				Set("Email", u.Email).
				Set("Số Điện Thoại", u.Phone).
				Set("Chi Nhánh", u.BranchName).
				Set("Trạng Thái", UserStatusText(u.IsActive)).
				Set("Ngày Tạo", FormatDate(u.CreatedAt))
		},
	}, params.Logger)
}

// BranchListParams defines the parameters required for the branch list.
type BranchListParams struct {
	fx.In

	Gateway repository.BranchGateway
	Logger  *slog.Logger
}

// NewBranchList builds the list controller behind the branches view.
func NewBranchList(params BranchListParams) usecase.ListUsecase[entity.Branch] {
	gw := params.Gateway

	return NewListController(Descriptor[entity.Branch]{
		Name: "branch",
		List: gw.List,
		ID:   func(b entity.Branch) int64 { return b.ID },
		SearchText: func(b entity.Branch) []string {
			return []string{b.Name, b.Address, b.Phone, b.ManagerName}
		},
		Status:    func(b entity.Branch) string { return activeStatus(b.IsActive) },
		DateField: func(b entity.Branch) string { return b.CreatedAt },
		Toggle: func(b entity.Branch) entity.Branch {
			b.IsActive = !b.IsActive

			return b
		},
		ConfirmToggle: func(ctx context.Context, b entity.Branch) error {
			_, err := gw.Update(ctx, b.ID, repository.BranchInput{
				Name:        b.Name,
				Address:     b.Address,
				Phone:       b.Phone,
				ManagerName: b.ManagerName,
				IsActive:    &b.IsActive,
			})

			return err
		},
		ConfirmDelete: gw.Remove,
		ExportRow: func(b entity.Branch) *entity.ExportRow {
			return entity.NewExportRow().
				Set("ID", b.ID).
				Set("Tên Chi Nhánh", b.Name).
				Set("Địa Chỉ", b.Address).
				Set("Số Điện Thoại", b.Phone).
				Set("Người Quản Lý", b.ManagerName).
				Set("Trạng Thái", BranchStatusText(b.IsActive)).
				Set("Ngày Tạo", FormatDate(b.CreatedAt)).
				Set("Ngày Xóa", FormatDate(b.DeletedAt))
		},
	}, params.Logger)
}

// ServiceListParams defines the parameters required for the service list.
type ServiceListParams struct {
	fx.In

	Gateway repository.ServiceGateway
	Logger  *slog.Logger
}

// NewServiceList builds the list controller behind the services view.
func NewServiceList(params ServiceListParams) usecase.ListUsecase[entity.LaundryService] {
	gw := params.Gateway

	return NewListController(Descriptor[entity.LaundryService]{
		Name: "service",
		List: gw.List,
		ID:   func(s entity.LaundryService) int64 { return s.ID },
		SearchText: func(s entity.LaundryService) []string {
			return []string{s.Name, s.Description}
		},
		Status:    func(s entity.LaundryService) string { return activeStatus(s.IsActive) },
		DateField: func(s entity.LaundryService) string { return s.CreatedAt },
		Toggle: func(s entity.LaundryService) entity.LaundryService {
			s.IsActive = !s.IsActive

			return s
		},
		ConfirmToggle: func(ctx context.Context, s entity.LaundryService) error {
			_, err := gw.Update(ctx, s.ID, repository.ServiceInput{
				Name:          s.Name,
				Description:   s.Description,
				Price:         s.Price,
				EstimatedTime: s.EstimatedTime,
				IsActive:      &s.IsActive,
			})

			return err
		},
		ConfirmDelete: gw.Remove,
		ExportRow: func(s entity.LaundryService) *entity.ExportRow {
			return entity.NewExportRow().
				Set("ID", s.ID).
				Set("Tên Dịch Vụ", s.Name).
				Set("Mô Tả", s.Description).
				Set("Giá", FormatVND(s.Price)).
				Set("Thời Gian Ước Tính", s.EstimatedTime).
				Set("Trạng Thái", ServiceStatusText(s.IsActive)).
				Set("Ngày Tạo", FormatDate(s.CreatedAt))
		},
	}, params.Logger)
}

// ShipperListParams defines the parameters required for the shipper list.
type ShipperListParams struct {
	fx.In

	Gateway repository.ShipperGateway
	Logger  *slog.Logger
}

// NewShipperList builds the list controller behind the shippers view.
func NewShipperList(params ShipperListParams) usecase.ListUsecase[entity.Shipper] {
	gw := params.Gateway

	return NewListController(Descriptor[entity.Shipper]{
		Name: "shipper",
		List: gw.List,
		ID:   func(s entity.Shipper) int64 { return s.ID },
		SearchText: func(s entity.Shipper) []string {
			return []string{s.Name, s.Phone, s.VehicleNumber}
		},
		Status:    func(s entity.Shipper) string { return activeStatus(s.IsActive) },
		DateField: func(s entity.Shipper) string { return s.CreatedAt },
		Toggle: func(s entity.Shipper) entity.Shipper {
			s.IsActive = !s.IsActive

			return s
		},
		ConfirmToggle: func(ctx context.Context, s entity.Shipper) error {
			if s.IsActive {
				return gw.Activate(ctx, s.ID)
			}

			return gw.Deactivate(ctx, s.ID)
		},
		ConfirmDelete: gw.Remove,
		ExportRow: func(s entity.Shipper) *entity.ExportRow {
			return entity.NewExportRow().
				Set("ID", s.ID).
				Set("Họ Tên", s.Name).
				Set("Số Điện Thoại", s.Phone).
				Set("Biển Số Xe", s.VehicleNumber).
				Set("Trạng Thái", ShipperStatusText(s.IsActive)).
				Set("Ngày Gia Nhập", FormatDate(s.CreatedAt)).
				Set("Cập Nhật Cuối", FormatDate(s.UpdatedAt)).
				Set("Ngày Xóa", FormatDate(s.DeletedAt))
		},
	}, params.Logger)
}

// PromotionListParams defines the parameters required for the promotion list.
type PromotionListParams struct {
	fx.In

	Gateway repository.PromotionGateway
	Logger  *slog.Logger
}

// NewPromotionList builds the list controller behind the promotions
// view. Promotions classify into a four-state status driven by their
// date window on top of the active flag.
func NewPromotionList(params PromotionListParams) usecase.ListUsecase[entity.Promotion] {
	gw := params.Gateway

	return NewListController(Descriptor[entity.Promotion]{
		Name: "promotion",
		List: gw.List,
		ID:   func(p entity.Promotion) int64 { return p.ID },
		SearchText: func(p entity.Promotion) []string {
			return []string{p.Code, p.Description}
		},
		Status:    promotionStatus,
		DateField: func(p entity.Promotion) string { return p.StartDate },
		Toggle: func(p entity.Promotion) entity.Promotion {
			p.IsActive = !p.IsActive

			return p
		},
		ConfirmToggle: func(ctx context.Context, p entity.Promotion) error {
			_, err := gw.Update(ctx, p.ID, repository.PromotionInput{
				Code:          p.Code,
				Description:   p.Description,
				DiscountType:  p.DiscountType,
				DiscountValue: p.DiscountValue,
				StartDate:     p.StartDate,
				EndDate:       p.EndDate,
				IsActive:      &p.IsActive,
			})

			return err
		},
		ConfirmDelete: gw.Remove,
		ExportRow: func(p entity.Promotion) *entity.ExportRow {
			return entity.NewExportRow().
				Set("ID", p.ID).
				Set("Mã Khuyến Mãi", p.Code).
				Set("Mô Tả", p.Description).
				Set("Loại Giảm Giá", DiscountTypeText(p.DiscountType)).
				Set("Giá Trị", FormatDiscountValue(p)).
				Set("Ngày Bắt Đầu", FormatDate(p.StartDate)).
				Set("Ngày Kết Thúc", FormatDate(p.EndDate)).
				Set("Trạng Thái", PromotionStatusText(p, time.Now())).
				Set("Ngày Xóa", FormatDate(p.DeletedAt))
		},
	}, params.Logger)
}

// promotionStatus classifies a promotion for the status filter:
// expired and pending take precedence over the active flag.
func promotionStatus(p entity.Promotion) string {
	now := time.Now()
	if end, ok := entity.ParseTimestamp(p.EndDate); ok && now.After(end) {
		return "expired"
	}
	if start, ok := entity.ParseTimestamp(p.StartDate); ok && now.Before(start) {
		return "pending"
	}

	return activeStatus(p.IsActive)
}
