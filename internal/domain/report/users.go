// internal/domain/report/users.go
package report

import (
	"sort"

	"github.com/your-org/webshop-backend/internal/domain/order"
	"github.com/your-org/webshop-backend/internal/domain/user"
)

// activeUserIDs collects the distinct registered buyers among the in-period
// non-cancelled orders. Guest orders carry no user ID and are excluded.
func activeUserIDs(orders []order.Order) []uint {
	seen := make(map[uint]struct{})
	ids := make([]uint, 0)
	for _, o := range orders {
		if o.UserID == nil {
			continue
		}
		if _, ok := seen[*o.UserID]; ok {
			continue
		}
		seen[*o.UserID] = struct{}{}
		ids = append(ids, *o.UserID)
	}
	return ids
}

// buildTopSpenders groups in-period order totals by user, sorts by summed
// spend descending and keeps ten. Display names are resolved from the lookup
// map; users that no longer exist fall back to "N/A".
func buildTopSpenders(orders []order.Order, lookup map[uint]user.User) []TopSpender {
	acc := make(map[uint]*TopSpender)
	for _, o := range orders {
		if o.UserID == nil {
			continue
		}
		s, ok := acc[*o.UserID]
		if !ok {
			s = &TopSpender{UserID: *o.UserID}
			acc[*o.UserID] = s
		}
		s.Total += o.TotalPrice
		s.Orders++
	}

	spenders := make([]TopSpender, 0, len(acc))
	for _, s := range acc {
		spenders = append(spenders, *s)
	}
	sort.Slice(spenders, func(i, j int) bool {
		if spenders[i].Total != spenders[j].Total {
			return spenders[i].Total > spenders[j].Total
		}
		return spenders[i].UserID < spenders[j].UserID
	})
	if len(spenders) > 10 {
		spenders = spenders[:10]
	}

	for i := range spenders {
		if u, ok := lookup[spenders[i].UserID]; ok {
			spenders[i].Name = u.DisplayName()
			spenders[i].Email = u.Email
		} else {
			spenders[i].Name = "N/A"
			spenders[i].Email = "N/A"
		}
	}
	return spenders
}

// buildUserStats assembles the user section. Returning users stay 0: the
// data needed to tell a second-time buyer apart is not collected.
func buildUserStats(orders []order.Order, totalUsers, newUsers, previousNew int64, lookup map[uint]user.User) UserStats {
	return UserStats{
		Total:       totalUsers,
		New:         newUsers,
		Previous:    previousNew,
		Change:      PercentChange(newUsers, previousNew),
		Active:      len(activeUserIDs(orders)),
		Returning:   0,
		TopSpenders: buildTopSpenders(orders, lookup),
	}
}
