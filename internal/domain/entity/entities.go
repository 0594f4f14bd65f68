// Package entity contains the core business objects of the project,
// each mirroring a record owned by the external Washify backend. The
// dashboard never constructs an authoritative copy of these records;
// it only reflects the backend's view, possibly with optimistic local
// edits that are discarded on the next fetch.
package entity

// Order is a laundry order as reported by the backend. Every field is
// optional on the wire; the backend may omit any of them.
type Order struct {
	ID             int64       `json:"id,omitempty"`
	OrderCode      string      `json:"orderCode,omitempty"`
	UserID         int64       `json:"userId,omitempty"`
	UserName       string      `json:"userName,omitempty"`
	BranchID       int64       `json:"branchId,omitempty"`
	BranchName     string      `json:"branchName,omitempty"`
	OrderDate      string      `json:"orderDate,omitempty"`
	Status         string      `json:"status,omitempty"`
	TotalAmount    int64       `json:"totalAmount,omitempty"`
	Notes          string      `json:"notes,omitempty"`
	Items          []OrderItem `json:"items,omitempty"`
	Payment        *Payment    `json:"payment,omitempty"`
	Shipment       *Shipment   `json:"shipment,omitempty"`
	PromotionCodes []string    `json:"promotionCodes,omitempty"`
}

// OrderItem is one service line inside an order.
type OrderItem struct {
	ID          int64  `json:"id,omitempty"`
	ServiceID   int64  `json:"serviceId,omitempty"`
	ServiceName string `json:"serviceName,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
	Price       int64  `json:"price,omitempty"`
	Subtotal    int64  `json:"subtotal,omitempty"`
}

// Payment describes the payment attached to an order.
type Payment struct {
	ID            int64  `json:"id,omitempty"`
	OrderID       int64  `json:"orderId,omitempty"`
	OrderCode     string `json:"orderCode,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
	PaymentDate   string `json:"paymentDate,omitempty"`
	Amount        int64  `json:"amount,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
}

// Shipment describes the delivery leg of an order.
type Shipment struct {
	ID             int64  `json:"id,omitempty"`
	OrderID        int64  `json:"orderId,omitempty"`
	UserID         int64  `json:"userId,omitempty"`
	UserName       string `json:"userName,omitempty"`
	ShipperID      int64  `json:"shipperId,omitempty"`
	ShipperName    string `json:"shipperName,omitempty"`
	ShipperPhone   string `json:"shipperPhone,omitempty"`
	Address        string `json:"address,omitempty"`
	DeliveryStatus string `json:"deliveryStatus,omitempty"`
	DeliveryDate   string `json:"deliveryDate,omitempty"`
}

// User is a customer or staff account.
type User struct {
	ID         int64    `json:"id,omitempty"`
	Username   string   `json:"username,omitempty"`
	FullName   string   `json:"fullName,omitempty"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Address    string   `json:"address,omitempty"`
	IsActive   bool     `json:"isActive"`
	Roles      []string `json:"roles,omitempty"`
	BranchID   int64    `json:"branchId,omitempty"`
	BranchName string   `json:"branchName,omitempty"`
	CreatedAt  string   `json:"createdAt,omitempty"`
	UpdatedAt  string   `json:"updatedAt,omitempty"`
	DeletedAt  string   `json:"deletedAt,omitempty"`
}

// Branch is a physical laundry location.
type Branch struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	ManagerName string `json:"managerName,omitempty"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt,omitempty"`
	DeletedAt   string `json:"deletedAt,omitempty"`
}

// LaundryService is a sellable washing service (wash, dry, iron, ...).
type LaundryService struct {
	ID            int64  `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	Description   string `json:"description,omitempty"`
	Price         int64  `json:"price,omitempty"`
	EstimatedTime int    `json:"estimatedTime,omitempty"`
	IsActive      bool   `json:"isActive"`
	CreatedAt     string `json:"createdAt,omitempty"`
	DeletedAt     string `json:"deletedAt,omitempty"`
}

// Shipper is a delivery driver.
type Shipper struct {
	ID            int64  `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	Phone         string `json:"phone,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty"`
	IsActive      bool   `json:"isActive"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
	DeletedAt     string `json:"deletedAt,omitempty"`
}

// ShipperStatistics aggregates a shipper's delivery record.
type ShipperStatistics struct {
	ShipperID          int64  `json:"shipperId,omitempty"`
	ShipperName        string `json:"shipperName,omitempty"`
	TotalShipments     int    `json:"totalShipments,omitempty"`
	CompletedShipments int    `json:"completedShipments,omitempty"`
	ActiveShipments    int    `json:"activeShipments,omitempty"`
	Active             bool   `json:"active,omitempty"`
}

// Promotion is a discount campaign. DiscountType is "PERCENTAGE" or
// "FIXED"; when the backend omits it the magnitude of DiscountValue is
// the only hint left (see usecase/impl promotion formatting).
type Promotion struct {
	ID            int64   `json:"id,omitempty"`
	Code          string  `json:"code,omitempty"`
	Description   string  `json:"description,omitempty"`
	DiscountType  string  `json:"discountType,omitempty"`
	DiscountValue float64 `json:"discountValue,omitempty"`
	StartDate     string  `json:"startDate,omitempty"`
	EndDate       string  `json:"endDate,omitempty"`
	IsActive      bool    `json:"isActive"`
	CreatedAt     string  `json:"createdAt,omitempty"`
	DeletedAt     string  `json:"deletedAt,omitempty"`
}

// Notification is an event message pushed to a dashboard user.
type Notification struct {
	ID        int64  `json:"id,omitempty"`
	UserID    int64  `json:"userId,omitempty"`
	Username  string `json:"username,omitempty"`
	Title     string `json:"title,omitempty"`
	Message   string `json:"message,omitempty"`
	Type      string `json:"type,omitempty"`
	RelatedID int64  `json:"relatedId,omitempty"`
	IsRead    bool   `json:"isRead"`
	ReadAt    string `json:"readAt,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Page is the backend's pagination wrapper for paged collections.
type Page[T any] struct {
	TotalElements int  `json:"totalElements"`
	TotalPages    int  `json:"totalPages"`
	Size          int  `json:"size"`
	Content       []T  `json:"content"`
	Number        int  `json:"number"`
	First         bool `json:"first"`
	Last          bool `json:"last"`
}

// DashboardStats is the aggregated overview shown on the landing page.
type DashboardStats struct {
	TotalOrders     int   `json:"totalOrders"`
	TotalRevenue    int64 `json:"totalRevenue"`
	ActiveShippers  int   `json:"activeShippers"`
	PendingOrders   int   `json:"pendingOrders"`
	CompletedOrders int   `json:"completedOrders"`
	TodayOrders     int   `json:"todayOrders"`
	TotalUsers      int   `json:"totalUsers"`
	ActiveUsers     int   `json:"activeUsers"`
	TotalBranches   int   `json:"totalBranches"`
	ActiveBranches  int   `json:"activeBranches"`
	TotalServices   int   `json:"totalServices"`
	ActiveServices  int   `json:"activeServices"`
}

// Order statuses used by the backend. PendingOrderStatuses lists every
// status counted as "still in flight" on the dashboard.
const (
	OrderStatusPending    = "PENDING"
	OrderStatusConfirmed  = "CONFIRMED"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusReady      = "READY"
	OrderStatusDelivering = "DELIVERING"
	OrderStatusCompleted  = "COMPLETED"
	OrderStatusCancelled  = "CANCELLED"
)

// PendingOrderStatuses are the statuses counted as open work.
var PendingOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusReady,
	OrderStatusDelivering,
}

// Discount types carried by Promotion.DiscountType.
const (
	DiscountTypePercentage = "PERCENTAGE"
	DiscountTypeFixed      = "FIXED"
)
