// internal/domain/report/service.go
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/your-org/webshop-backend/internal/domain/cart"
	"github.com/your-org/webshop-backend/internal/domain/inventory"
	"github.com/your-org/webshop-backend/internal/domain/newsletter"
	"github.com/your-org/webshop-backend/internal/domain/order"
	"github.com/your-org/webshop-backend/internal/domain/product"
	"github.com/your-org/webshop-backend/internal/domain/user"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	lowStockThreshold = 5
	lowStockLimit     = 20
)

// Service computes admin reports. It only ever reads; a report is a snapshot
// assembled from several aggregate queries and in-memory folds.
type Service struct {
	db    *gorm.DB
	clock Clock
}

// NewService creates a new report service. A nil clock falls back to the
// system clock.
func NewService(db *gorm.DB, clock Clock) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{db: db, clock: clock}
}

// Generate builds the full report for a period. The reference date anchors
// the window; nil means "now". Any query failure aborts the whole report,
// there is no partial result.
func (s *Service) Generate(ctx context.Context, period Period, reference *time.Time) (*Report, error) {
	ref := s.clock.Now()
	if reference != nil {
		ref = *reference
	}

	rng := ResolveRange(period, ref)
	prev := ResolvePreviousRange(rng)

	// Independent top-level queries run as one fan-out; the later sections
	// need the order list in memory and follow after the fan-in.
	var (
		orders         []order.Order
		prevRevenue    int64
		prevOrderCount int64
		statusCounts   map[string]int
		cancelled      cancelledAggregate
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Preload("Items").Preload("Items.Product").
			Where("created_at BETWEEN ? AND ? AND status <> ?", rng.Start, rng.End, order.StatusCancelled).
			Find(&orders).Error
		if err != nil {
			return fmt.Errorf("failed to load period orders: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := s.db.WithContext(gctx).Model(&order.Order{}).
			Where("created_at BETWEEN ? AND ? AND status <> ?", prev.Start, prev.End, order.StatusCancelled).
			Select("COALESCE(SUM(total_price), 0)").
			Scan(&prevRevenue).Error
		if err != nil {
			return fmt.Errorf("failed to aggregate previous revenue: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := s.db.WithContext(gctx).Model(&order.Order{}).
			Where("created_at BETWEEN ? AND ? AND status <> ?", prev.Start, prev.End, order.StatusCancelled).
			Count(&prevOrderCount).Error
		if err != nil {
			return fmt.Errorf("failed to count previous orders: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		statusCounts, err = s.orderStatusCounts(gctx, rng)
		return err
	})

	g.Go(func() error {
		err := s.db.WithContext(gctx).Model(&order.Order{}).
			Where("created_at BETWEEN ? AND ? AND status = ?", rng.Start, rng.End, order.StatusCancelled).
			Select("COUNT(*) AS count, COALESCE(SUM(total_price), 0) AS value").
			Scan(&cancelled).Error
		if err != nil {
			return fmt.Errorf("failed to aggregate cancelled orders: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{
		Period:        period,
		PeriodLabel:   period.Label(),
		Range:         rng,
		PreviousRange: prev,
		GeneratedAt:   s.clock.Now(),
	}

	rep.Revenue = buildRevenueStats(orders, prevRevenue)
	rep.Orders = buildOrderStats(orders, statusCounts, int(prevOrderCount), cancelled.Count, cancelled.Value)
	rep.Coupons = buildCouponStats(orders)

	// Remaining sections are independent of each other; fan them out too.
	g, gctx = errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.userSection(gctx, orders, rng, prev)
		if err != nil {
			return err
		}
		rep.Users = stats
		return nil
	})

	g.Go(func() error {
		var reviews []product.Review
		err := s.db.WithContext(gctx).
			Where("created_at BETWEEN ? AND ?", rng.Start, rng.End).
			Find(&reviews).Error
		if err != nil {
			return fmt.Errorf("failed to load period reviews: %w", err)
		}
		rep.Reviews = buildReviewStats(reviews)
		return nil
	})

	g.Go(func() error {
		stats, err := s.newsletterSection(gctx, rng)
		if err != nil {
			return err
		}
		rep.Newsletter = stats
		return nil
	})

	g.Go(func() error {
		var carts []cart.Cart
		err := s.db.WithContext(gctx).
			Preload("Items").Preload("Items.Product").
			Where("updated_at BETWEEN ? AND ?", rng.Start, rng.End).
			Find(&carts).Error
		if err != nil {
			return fmt.Errorf("failed to load period carts: %w", err)
		}
		rep.Carts = buildCartStats(carts)
		return nil
	})

	g.Go(func() error {
		stats, err := s.productSection(gctx, orders, rng)
		if err != nil {
			return err
		}
		rep.Products = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rep, nil
}

type cancelledAggregate struct {
	Count int   `gorm:"column:count"`
	Value int64 `gorm:"column:value"`
}

// orderStatusCounts runs a store-side GROUP BY over the full period. Unlike
// the in-memory folds this intentionally includes cancelled orders, so every
// status that occurred in the window shows up in the breakdown.
func (s *Service) orderStatusCounts(ctx context.Context, rng DateRange) (map[string]int, error) {
	var rows []struct {
		Status string `gorm:"column:status"`
		Count  int    `gorm:"column:count"`
	}
	err := s.db.WithContext(ctx).Model(&order.Order{}).
		Where("created_at BETWEEN ? AND ?", rng.Start, rng.End).
		Select("status, COUNT(*) AS count").
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group orders by status: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (s *Service) userSection(ctx context.Context, orders []order.Order, rng, prev DateRange) (UserStats, error) {
	var totalUsers, newUsers, previousNew int64

	if err := s.db.WithContext(ctx).Model(&user.User{}).Count(&totalUsers).Error; err != nil {
		return UserStats{}, fmt.Errorf("failed to count users: %w", err)
	}
	err := s.db.WithContext(ctx).Model(&user.User{}).
		Where("created_at BETWEEN ? AND ?", rng.Start, rng.End).
		Count(&newUsers).Error
	if err != nil {
		return UserStats{}, fmt.Errorf("failed to count new users: %w", err)
	}
	err = s.db.WithContext(ctx).Model(&user.User{}).
		Where("created_at BETWEEN ? AND ?", prev.Start, prev.End).
		Count(&previousNew).Error
	if err != nil {
		return UserStats{}, fmt.Errorf("failed to count previous new users: %w", err)
	}

	// Resolve display names for the candidate top spenders only
	lookup := make(map[uint]user.User)
	if ids := activeUserIDs(orders); len(ids) > 0 {
		var users []user.User
		if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
			return UserStats{}, fmt.Errorf("failed to load top spender users: %w", err)
		}
		for _, u := range users {
			lookup[u.ID] = u
		}
	}

	return buildUserStats(orders, totalUsers, newUsers, previousNew, lookup), nil
}

func (s *Service) newsletterSection(ctx context.Context, rng DateRange) (NewsletterStats, error) {
	stats := NewsletterStats{}

	err := s.db.WithContext(ctx).Model(&newsletter.Subscriber{}).
		Where("is_active = ?", true).
		Count(&stats.ActiveSubscribers).Error
	if err != nil {
		return stats, fmt.Errorf("failed to count active subscribers: %w", err)
	}

	err = s.db.WithContext(ctx).Model(&newsletter.Subscriber{}).
		Where("created_at BETWEEN ? AND ?", rng.Start, rng.End).
		Count(&stats.New).Error
	if err != nil {
		return stats, fmt.Errorf("failed to count new subscribers: %w", err)
	}

	// Unsubscribed stays 0: unsubscription events carry no timestamp of
	// their own, so a period-scoped count cannot be derived.
	return stats, nil
}

func (s *Service) productSection(ctx context.Context, orders []order.Order, rng DateRange) (ProductStats, error) {
	sales := buildProductSales(orders)

	stats := ProductStats{
		TopSellers:       topSellers(sales),
		WorstSellers:     worstSellers(sales),
		Categories:       buildCategorySales(sales),
		AverageUnitPrice: averageUnitPrice(sales),
	}

	var (
		logs     []inventory.InventoryLog
		products []product.Product
		lowStock []product.Product
		outCount int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Preload("Product").Preload("Variant").
			Where("created_at BETWEEN ? AND ?", rng.Start, rng.End).
			Order("created_at ASC").
			Find(&logs).Error
		if err != nil {
			return fmt.Errorf("failed to load inventory logs: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Preload("Variants").
			Where("is_archived = ?", false).
			Find(&products).Error
		if err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Where("is_archived = ? AND stock <= ?", false, lowStockThreshold).
			Order("stock ASC").
			Limit(lowStockLimit).
			Find(&lowStock).Error
		if err != nil {
			return fmt.Errorf("failed to load low stock products: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := s.db.WithContext(gctx).Model(&product.Product{}).
			Where("is_archived = ? AND stock = 0", false).
			Count(&outCount).Error
		if err != nil {
			return fmt.Errorf("failed to count out-of-stock products: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return ProductStats{}, err
	}

	stats.StockChanges = buildStockChanges(logs, products)
	stats.OutOfStockCount = int(outCount)
	stats.LowStock = make([]LowStockProduct, 0, len(lowStock))
	for _, p := range lowStock {
		stats.LowStock = append(stats.LowStock, LowStockProduct{
			ProductID: p.ID,
			Name:      p.Name,
			Stock:     p.Stock,
		})
	}
	return stats, nil
}
