// internal/domain/report/types.go
package report

import "time"

// Report is the immutable result of one aggregation run. It is computed on
// demand and never persisted; callers serialize or render it as they see fit.
type Report struct {
	Period        Period    `json:"period"`
	PeriodLabel   string    `json:"period_label"`
	Range         DateRange `json:"range"`
	PreviousRange DateRange `json:"previous_range"`
	GeneratedAt   time.Time `json:"generated_at"`

	Revenue    RevenueStats    `json:"revenue"`
	Orders     OrderStats      `json:"orders"`
	Products   ProductStats    `json:"products"`
	Users      UserStats       `json:"users"`
	Coupons    CouponStats     `json:"coupons"`
	Reviews    ReviewStats     `json:"reviews"`
	Newsletter NewsletterStats `json:"newsletter"`
	Carts      CartStats       `json:"carts"`
}

// RevenueStats covers totals and breakdowns for non-cancelled in-period
// orders. Gross always equals Total + Discounts + LoyaltyDiscounts.
type RevenueStats struct {
	Total            int64 `json:"total"`
	Previous         int64 `json:"previous"`
	Change           int   `json:"change"` // percent vs previous period
	Gross            int64 `json:"gross"`
	Discounts        int64 `json:"discounts"`
	LoyaltyDiscounts int64 `json:"loyalty_discounts"`

	ByPaymentMethod []PaymentMethodRevenue `json:"by_payment_method"`
	ByDay           []DailyRevenue         `json:"by_day"`
}

// PaymentMethodRevenue is the revenue share of one payment method
type PaymentMethodRevenue struct {
	Method string `json:"method"`
	Amount int64  `json:"amount"`
	Orders int    `json:"orders"`
}

// DailyRevenue is the revenue of one calendar day, keyed by ISO date
type DailyRevenue struct {
	Date   string `json:"date"`
	Amount int64  `json:"amount"`
	Orders int    `json:"orders"`
}

// OrderStats covers order counts, value statistics and time distributions
type OrderStats struct {
	Total    int `json:"total"` // cancelled excluded
	Previous int `json:"previous"`
	Change   int `json:"change"`

	// ByStatus comes from a store-side GROUP BY over the full period and
	// therefore includes cancelled orders, unlike the in-memory folds.
	ByStatus map[string]int `json:"by_status"`

	AverageValue int64 `json:"average_value"`
	MedianValue  int64 `json:"median_value"`
	MinValue     int64 `json:"min_value"`
	MaxValue     int64 `json:"max_value"`

	Cancelled      int   `json:"cancelled"`
	CancelledValue int64 `json:"cancelled_value"`
	CompletedRate  int   `json:"completed_rate"` // completed / total, percent

	ByHour      []HourBucket      `json:"by_hour"`        // all 24 slots present
	ByDayOfWeek []DayOfWeekBucket `json:"by_day_of_week"` // Sunday-first
}

// HourBucket is the order count of one hour-of-day slot (0-23)
type HourBucket struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// DayOfWeekBucket is the order count of one weekday, labelled in Hungarian
type DayOfWeekBucket struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// ProductStats covers sales per product and category plus stock health
type ProductStats struct {
	TopSellers   []ProductSales  `json:"top_sellers"`   // top 10 by quantity
	WorstSellers []ProductSales  `json:"worst_sellers"` // bottom 10, zero qty excluded
	Categories   []CategorySales `json:"categories"`

	LowStock        []LowStockProduct `json:"low_stock"` // stock <= 5, max 20
	OutOfStockCount int               `json:"out_of_stock_count"`

	// AverageUnitPrice is the mean of per-product revenue/quantity, an
	// average of averages that weights every product equally.
	AverageUnitPrice int64 `json:"average_unit_price"`

	StockChanges []ProductStockChange `json:"stock_changes"`
}

// ProductSales is the in-period sales of one product. Items whose product
// was deleted are bucketed under ID 0 with category "Egyéb".
type ProductSales struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
	Revenue   int64  `json:"revenue"`
}

// CategorySales is the aggregated sales of one category
type CategorySales struct {
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
	Revenue  int64  `json:"revenue"`
	Percent  int    `json:"percent"` // share of total category revenue
}

// LowStockProduct is a product at or below the low stock threshold
type LowStockProduct struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
}

// ProductStockChange reconstructs the stock movement of one product over the
// period from its inventory log. StartStock is derived as
// CurrentStock - TotalChange, not observed.
type ProductStockChange struct {
	ProductID         uint   `json:"product_id"`
	Name              string `json:"name"`
	CurrentStock      int    `json:"current_stock"`
	StartStock        int    `json:"start_stock"`
	TotalChange       int    `json:"total_change"`
	OrdersSold        int    `json:"orders_sold"`
	Restocked         int    `json:"restocked"`
	ManualAdjustments int    `json:"manual_adjustments"`

	Variants []VariantStockChange `json:"variants,omitempty"`
}

// VariantStockChange mirrors the product-level classification for a single
// variant. Manual adjustments are not tracked separately per variant.
type VariantStockChange struct {
	VariantID    uint   `json:"variant_id"`
	Label        string `json:"label"`
	CurrentStock int    `json:"current_stock"`
	StartStock   int    `json:"start_stock"`
	TotalChange  int    `json:"total_change"`
	OrdersSold   int    `json:"orders_sold"`
	Restocked    int    `json:"restocked"`
}

// UserStats covers registration and activity metrics
type UserStats struct {
	Total    int64 `json:"total"`
	New      int64 `json:"new"`
	Previous int64 `json:"previous"`
	Change   int   `json:"change"`
	Active   int   `json:"active"` // distinct buyers among in-period orders

	// Returning is not computed; the field is part of the report shape but
	// always 0 until a real definition of a returning user is agreed on.
	Returning int `json:"returning"`

	TopSpenders []TopSpender `json:"top_spenders"`
}

// TopSpender is one of the ten highest spending users of the period
type TopSpender struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Total  int64  `json:"total"`
	Orders int    `json:"orders"`
}

// CouponStats derives coupon usage from orders carrying a coupon code
type CouponStats struct {
	OrdersWithCoupon int   `json:"orders_with_coupon"`
	TotalDiscount    int64 `json:"total_discount"`
	// ConversionRate is coupon orders / total orders, a loose proxy rather
	// than a true funnel metric.
	ConversionRate int           `json:"conversion_rate"`
	TopCoupons     []CouponUsage `json:"top_coupons"`
}

// CouponUsage is the per-code usage count and discount total
type CouponUsage struct {
	Code     string `json:"code"`
	Uses     int    `json:"uses"`
	Discount int64  `json:"discount"`
}

// ReviewStats covers in-period reviews grouped by moderation status
type ReviewStats struct {
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`

	// AverageRating is computed over approved in-period reviews only
	AverageRating float64        `json:"average_rating"`
	Histogram     []RatingBucket `json:"histogram"` // ratings 1-5, zero-filled
}

// RatingBucket is the count of one rating value
type RatingBucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// NewsletterStats covers subscriber movement
type NewsletterStats struct {
	ActiveSubscribers int64 `json:"active_subscribers"` // not period-scoped
	New               int64 `json:"new"`
	// Unsubscribed is not computed; unsubscription events are not recorded,
	// so the field stays 0.
	Unsubscribed int64 `json:"unsubscribed"`
}

// CartStats approximates abandoned carts: any cart touched in-period that
// still holds items counts, whether or not it later converted to an order.
type CartStats struct {
	AbandonedCount int     `json:"abandoned_count"`
	AbandonedValue int64   `json:"abandoned_value"`
	AverageValue   int64   `json:"average_value"`
	AverageItems   float64 `json:"average_items"`
}
