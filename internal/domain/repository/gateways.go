// Package repository defines the outbound ports of the dashboard: the
// per-entity gateways over the external Washify backend and the durable
// session storage. Implementations live under internal/infra.
package repository

import (
	"context"

	"washify/internal/domain/entity"
)

// Read operations on a gateway never return a transport error: failures
// are folded into a failed Envelope carrying a safe fallback (empty
// slice or zero value), so list views degrade to an empty state instead
// of crashing. Write operations DO return errors, because their callers
// must distinguish "nothing to show" from "the mutation did not happen".

// OrderGateway exposes the backend's order collection.
type OrderGateway interface {
	List(ctx context.Context) entity.Envelope[[]entity.Order]
	GetByID(ctx context.Context, id int64) entity.Envelope[entity.Order]
	UpdateStatus(ctx context.Context, id int64, status string) (entity.Order, error)
}

// UserGateway exposes the backend's user collection.
type UserGateway interface {
	List(ctx context.Context) entity.Envelope[[]entity.User]
	GetByID(ctx context.Context, id int64) entity.Envelope[entity.User]
	Activate(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error
	Remove(ctx context.Context, id int64) error
}

// BranchInput is the payload for creating or updating a branch.
type BranchInput struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone,omitempty"`
	ManagerName string `json:"managerName,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// BranchGateway exposes the backend's branch collection.
type BranchGateway interface {
	List(ctx context.Context) entity.Envelope[[]entity.Branch]
	ListActive(ctx context.Context) entity.Envelope[[]entity.Branch]
	GetByID(ctx context.Context, id int64) entity.Envelope[entity.Branch]
	Create(ctx context.Context, in BranchInput) (entity.Branch, error)
	Update(ctx context.Context, id int64, in BranchInput) (entity.Branch, error)
	Remove(ctx context.Context, id int64) error
}

// ServiceInput is the payload for creating or updating a laundry service.
type ServiceInput struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Price         int64  `json:"price"`
	EstimatedTime int    `json:"estimatedTime,omitempty"`
	IsActive      *bool  `json:"isActive,omitempty"`
}

// ServiceGateway exposes the backend's laundry service catalog.
type ServiceGateway interface {
	List(ctx context.Context) entity.Envelope[[]entity.LaundryService]
	ListActive(ctx context.Context) entity.Envelope[[]entity.LaundryService]
	GetByID(ctx context.Context, id int64) entity.Envelope[entity.LaundryService]
	Create(ctx context.Context, in ServiceInput) (entity.LaundryService, error)
	Update(ctx context.Context, id int64, in ServiceInput) (entity.LaundryService, error)
	Remove(ctx context.Context, id int64) error
}

// ShipperInput is the payload for creating or updating a shipper.
type ShipperInput struct {
	FullName      string `json:"fullName"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email,omitempty"`
	VehicleType   string `json:"vehicleType,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty"`
	Address       string `json:"address,omitempty"`
	IsActive      *bool  `json:"isActive,omitempty"`
}

// ShipperGateway exposes the backend's shipper collection.
type ShipperGateway interface {
	List(ctx context.Context) entity.Envelope[[]entity.Shipper]
	ListActive(ctx context.Context) entity.Envelope[[]entity.Shipper]
	GetByID(ctx context.Context, id int64) entity.Envelope[entity.Shipper]
	Statistics(ctx context.Context, id int64) entity.Envelope[entity.ShipperStatistics]
	Create(ctx context.Context, in ShipperInput) (entity.Shipper, error)
	Update(ctx context.Context, id int64, in ShipperInput) (entity.Shipper, error)
	Activate(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error
	Remove(ctx context.Context, id int64) error
}

// PromotionInput is the payload for creating or updating a promotion.
type PromotionInput struct {
	Code          string  `json:"code"`
	Description   string  `json:"description,omitempty"`
	DiscountType  string  `json:"discountType"`
	DiscountValue float64 `json:"discountValue"`
	StartDate     string  `json:"startDate,omitempty"`
	EndDate       string  `json:"endDate,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

// PromotionGateway exposes the backend's promotion collection.
type PromotionGateway interface {
	List(ctx context.Context) entity.Envelope[[]entity.Promotion]
	ListActive(ctx context.Context) entity.Envelope[[]entity.Promotion]
	GetByID(ctx context.Context, id int64) entity.Envelope[entity.Promotion]
	Create(ctx context.Context, in PromotionInput) (entity.Promotion, error)
	Update(ctx context.Context, id int64, in PromotionInput) (entity.Promotion, error)
	Remove(ctx context.Context, id int64) error
}

// NotificationGateway exposes the backend's notification feed. The
// unread count doubles as the cheapest connectivity probe.
type NotificationGateway interface {
	UnreadCount(ctx context.Context) entity.Envelope[int]
	List(ctx context.Context, page, size int) entity.Envelope[entity.Page[entity.Notification]]
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) error
}

// AuthGateway performs the login call and normalizes whichever response
// shape the backend answers with into one Session.
type AuthGateway interface {
	Login(ctx context.Context, creds entity.Credentials) (entity.Session, error)
}
