package impl

import (
	"testing"
	"time"

	"washify/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{amount: 0, want: "0 ₫"},
		{amount: 500, want: "500 ₫"},
		{amount: 1500, want: "1.500 ₫"},
		{amount: 1234567, want: "1.234.567 ₫"},
		{amount: -25000, want: "-25.000 ₫"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatVND(tt.amount))
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "09/03/2025", FormatDate("2025-03-09T14:05:06"))
	assert.Equal(t, "09/03/2025", FormatDate("2025-03-09"))
	assert.Equal(t, "", FormatDate(""))
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"), "unparseable input passes through")
}

func TestOrderStatusText(t *testing.T) {
	assert.Equal(t, "Chờ xử lý", OrderStatusText(entity.OrderStatusPending))
	assert.Equal(t, "Hoàn thành", OrderStatusText(entity.OrderStatusCompleted))
	assert.Equal(t, "SOMETHING_NEW", OrderStatusText("SOMETHING_NEW"), "unknown statuses pass through raw")
}

func TestPromotionStatusText(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		p    entity.Promotion
		want string
	}{
		{
			name: "deleted wins over everything",
			p:    entity.Promotion{DeletedAt: "2025-06-01T00:00:00", IsActive: true},
			want: "Đã xóa",
		},
		{
			name: "paused",
			p:    entity.Promotion{IsActive: false},
			want: "Tạm dừng",
		},
		{
			name: "upcoming",
			p:    entity.Promotion{IsActive: true, StartDate: "2025-07-01"},
			want: "Sắp diễn ra",
		},
		{
			name: "expired",
			p:    entity.Promotion{IsActive: true, StartDate: "2025-01-01", EndDate: "2025-05-31"},
			want: "Đã hết hạn",
		},
		{
			name: "running",
			p:    entity.Promotion{IsActive: true, StartDate: "2025-06-01", EndDate: "2025-06-30"},
			want: "Đang diễn ra",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PromotionStatusText(tt.p, now))
		})
	}
}

func TestFormatDiscountValue(t *testing.T) {
	tests := []struct {
		name string
		p    entity.Promotion
		want string
	}{
		{
			name: "explicit percentage tag",
			p:    entity.Promotion{DiscountType: entity.DiscountTypePercentage, DiscountValue: 15},
			want: "15%",
		},
		{
			name: "explicit fixed tag beats the magnitude heuristic",
			p:    entity.Promotion{DiscountType: entity.DiscountTypeFixed, DiscountValue: 50},
			want: "50 ₫",
		},
		{
			name: "untagged small value reads as percentage",
			p:    entity.Promotion{DiscountValue: 20},
			want: "20%",
		},
		{
			name: "untagged large value reads as amount",
			p:    entity.Promotion{DiscountValue: 50000},
			want: "50.000 ₫",
		},
		{
			name: "zero",
			p:    entity.Promotion{DiscountValue: 0},
			want: "0",
		},
		{
			name: "fractional percentage",
			p:    entity.Promotion{DiscountType: entity.DiscountTypePercentage, DiscountValue: 12.5},
			want: "12.5%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDiscountValue(tt.p))
		})
	}
}
