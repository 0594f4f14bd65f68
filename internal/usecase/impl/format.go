package impl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"washify/internal/domain/entity"
)

// Display formatting for the Vietnamese market. Amounts are whole VND
// (no minor units), dates render as dd/mm/yyyy.

// FormatVND renders a whole-dong amount with dot thousand grouping and
// the currency sign, e.g. 1234567 -> "1.234.567 ₫".
func FormatVND(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := b.String() + " ₫"
	if negative {
		return "-" + out
	}

	return out
}

// FormatDate renders a backend timestamp as dd/mm/yyyy; unparseable
// input comes back unchanged, empty input as the empty string.
func FormatDate(s string) string {
	t, ok := entity.ParseTimestamp(s)
	if !ok {
		return s
	}

	return t.Format("02/01/2006")
}

// FormatDateTime renders a backend timestamp as hh:mm dd/mm/yyyy.
func FormatDateTime(s string) string {
	t, ok := entity.ParseTimestamp(s)
	if !ok {
		return s
	}

	return t.Format("15:04 02/01/2006")
}

// orderStatusText maps backend order statuses to display text.
var orderStatusText = map[string]string{
	entity.OrderStatusPending:    "Chờ xử lý",
	entity.OrderStatusConfirmed:  "Đã xác nhận",
	entity.OrderStatusProcessing: "Đang xử lý",
	entity.OrderStatusReady:      "Sẵn sàng",
	entity.OrderStatusDelivering: "Đang giao",
	entity.OrderStatusCompleted:  "Hoàn thành",
	entity.OrderStatusCancelled:  "Đã hủy",
}

// OrderStatusText returns the display text for an order status, the
// raw status for an unknown one.
func OrderStatusText(status string) string {
	if text, ok := orderStatusText[status]; ok {
		return text
	}

	return status
}

// Per-entity active/inactive wordings.

func UserStatusText(isActive bool) string {
	if isActive {
		return "Hoạt động"
	}

	return "Bị khóa"
}

func BranchStatusText(isActive bool) string {
	if isActive {
		return "Đang hoạt động"
	}

	return "Tạm đóng cửa"
}

func ServiceStatusText(isActive bool) string {
	if isActive {
		return "Đang hoạt động"
	}

	return "Tạm dừng"
}

func ShipperStatusText(isActive bool) string {
	if isActive {
		return "Đang hoạt động"
	}

	return "Tạm nghỉ"
}

// PromotionStatusText classifies a promotion against its lifecycle:
// deleted, paused, upcoming, expired or running.
func PromotionStatusText(p entity.Promotion, now time.Time) string {
	if p.DeletedAt != "" {
		return "Đã xóa"
	}
	if !p.IsActive {
		return "Tạm dừng"
	}
	if start, ok := entity.ParseTimestamp(p.StartDate); ok && now.Before(start) {
		return "Sắp diễn ra"
	}
	if end, ok := entity.ParseTimestamp(p.EndDate); ok && now.After(end) {
		return "Đã hết hạn"
	}

	return "Đang diễn ra"
}

// DiscountTypeText renders the discount kind for export.
func DiscountTypeText(discountType string) string {
	if discountType == entity.DiscountTypePercentage {
		return "Phần trăm"
	}

	return "Cố định"
}

// FormatDiscountValue renders a promotion's discount. The explicit
// type tag wins; only when it is absent does the magnitude heuristic
// apply (values up to 100 read as percentages). The heuristic
// misclassifies tiny fixed discounts, which is why the tag has
// priority.
func FormatDiscountValue(p entity.Promotion) string {
	if p.DiscountValue == 0 {
		return "0"
	}

	var percentage bool
	switch p.DiscountType {
	case entity.DiscountTypePercentage:
		percentage = true
	case entity.DiscountTypeFixed:
		percentage = false
	default:
		percentage = p.DiscountValue <= 100
	}

	if percentage {
		return trimFloat(p.DiscountValue) + "%"
	}

	return FormatVND(int64(p.DiscountValue))
}

func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}

	return fmt.Sprintf("%g", v)
}
