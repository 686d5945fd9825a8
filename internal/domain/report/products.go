// internal/domain/report/products.go
package report

import (
	"sort"

	"github.com/your-org/webshop-backend/internal/domain/inventory"
	"github.com/your-org/webshop-backend/internal/domain/order"
	"github.com/your-org/webshop-backend/internal/domain/product"
)

// Fallback labels for rows whose joined entity no longer exists. The exact
// strings are part of the public contract.
const (
	fallbackCategory = "Egyéb"
	fallbackName     = "Ismeretlen"
)

// buildProductSales folds order items into per-product sales figures. Items
// whose product was deleted keep their snapshotted name and are bucketed
// under product ID 0 with the fallback category.
func buildProductSales(orders []order.Order) []ProductSales {
	acc := make(map[uint]*ProductSales)

	for _, o := range orders {
		for _, item := range o.Items {
			var id uint
			category := fallbackCategory
			name := item.Name
			if item.ProductID != nil {
				id = *item.ProductID
				if item.Product != nil {
					category = item.Product.Category
					if item.Product.Name != "" {
						name = item.Product.Name
					}
				}
			}
			if name == "" {
				name = fallbackName
			}

			sales, ok := acc[id]
			if !ok {
				sales = &ProductSales{ProductID: id, Name: name, Category: category}
				acc[id] = sales
			}
			sales.Quantity += item.Quantity
			sales.Revenue += item.Price * int64(item.Quantity)
		}
	}

	list := make([]ProductSales, 0, len(acc))
	for _, sales := range acc {
		list = append(list, *sales)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Quantity != list[j].Quantity {
			return list[i].Quantity > list[j].Quantity
		}
		return list[i].ProductID < list[j].ProductID
	})
	return list
}

// topSellers returns the first 10 products by quantity descending
func topSellers(sales []ProductSales) []ProductSales {
	n := len(sales)
	if n > 10 {
		n = 10
	}
	top := make([]ProductSales, n)
	copy(top, sales[:n])
	return top
}

// worstSellers returns up to 10 products by quantity ascending. Products
// that sold nothing never qualify; only a product with at least one sold
// unit can be a worst seller.
func worstSellers(sales []ProductSales) []ProductSales {
	worst := make([]ProductSales, 0, 10)
	for i := len(sales) - 1; i >= 0 && len(worst) < 10; i-- {
		if sales[i].Quantity == 0 {
			continue
		}
		worst = append(worst, sales[i])
	}
	return worst
}

// buildCategorySales aggregates sales per category and attaches each
// category's rounded share of the total category revenue.
func buildCategorySales(sales []ProductSales) []CategorySales {
	acc := make(map[string]*CategorySales)
	var totalRevenue int64

	for _, s := range sales {
		c, ok := acc[s.Category]
		if !ok {
			c = &CategorySales{Category: s.Category}
			acc[s.Category] = c
		}
		c.Quantity += s.Quantity
		c.Revenue += s.Revenue
		totalRevenue += s.Revenue
	}

	list := make([]CategorySales, 0, len(acc))
	for _, c := range acc {
		c.Percent = sharePercent(c.Revenue, totalRevenue)
		list = append(list, *c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Revenue > list[j].Revenue })
	return list
}

// averageUnitPrice is the mean of per-product revenue/quantity. This is an
// average of averages that weights every distinct product equally regardless
// of volume; the formula is preserved on purpose.
func averageUnitPrice(sales []ProductSales) int64 {
	if len(sales) == 0 {
		return 0
	}
	var sum int64
	counted := 0
	for _, s := range sales {
		if s.Quantity == 0 {
			continue
		}
		sum += s.Revenue / int64(s.Quantity)
		counted++
	}
	if counted == 0 {
		return 0
	}
	return sum / int64(counted)
}

// buildStockChanges reconstructs per-product (and per-variant) stock movement
// over the period from the inventory log. Every non-archived product seeds a
// zero-initialized accumulator; log entries are folded in and classified by
// reason; start stock is derived arithmetically as current - totalChange.
// Only products whose stock actually moved are emitted, ordered by absolute
// change descending.
func buildStockChanges(logs []inventory.InventoryLog, products []product.Product) []ProductStockChange {
	type variantAcc struct {
		change *VariantStockChange
	}
	type productAcc struct {
		change   *ProductStockChange
		variants map[uint]*VariantStockChange
		order    []uint // variant emit order
	}

	acc := make(map[uint]*productAcc, len(products))
	productOrder := make([]uint, 0, len(products))

	for i := range products {
		p := &products[i]
		pa := &productAcc{
			change: &ProductStockChange{
				ProductID:    p.ID,
				Name:         p.Name,
				CurrentStock: p.Stock,
			},
			variants: make(map[uint]*VariantStockChange, len(p.Variants)),
		}
		for j := range p.Variants {
			v := &p.Variants[j]
			pa.variants[v.ID] = &VariantStockChange{
				VariantID:    v.ID,
				Label:        v.Label(),
				CurrentStock: v.Stock,
			}
			pa.order = append(pa.order, v.ID)
		}
		acc[p.ID] = pa
		productOrder = append(productOrder, p.ID)
	}

	for i := range logs {
		l := &logs[i]
		pa, ok := acc[l.ProductID]
		if !ok {
			// archived or deleted products are not part of the snapshot
			continue
		}
		pc := pa.change
		pc.TotalChange += l.Change

		switch {
		case l.IsOutflow():
			pc.OrdersSold += -l.Change
		case l.IsRestock():
			pc.Restocked += l.Change
		case l.Reason == inventory.ReasonManualAdjustment:
			pc.ManualAdjustments += l.Change
		}

		if l.VariantID != nil {
			if vc, ok := pa.variants[*l.VariantID]; ok {
				vc.TotalChange += l.Change
				switch {
				case l.IsOutflow():
					vc.OrdersSold += -l.Change
				case l.IsRestock():
					vc.Restocked += l.Change
				}
			}
		}
	}

	changes := make([]ProductStockChange, 0)
	for _, id := range productOrder {
		pa := acc[id]
		pc := pa.change
		if pc.TotalChange == 0 {
			continue
		}
		pc.StartStock = pc.CurrentStock - pc.TotalChange
		for _, vid := range pa.order {
			vc := pa.variants[vid]
			if vc.TotalChange == 0 {
				continue
			}
			vc.StartStock = vc.CurrentStock - vc.TotalChange
			pc.Variants = append(pc.Variants, *vc)
		}
		sort.Slice(pc.Variants, func(i, j int) bool {
			return abs(pc.Variants[i].TotalChange) > abs(pc.Variants[j].TotalChange)
		})
		changes = append(changes, *pc)
	}

	sort.Slice(changes, func(i, j int) bool {
		return abs(changes[i].TotalChange) > abs(changes[j].TotalChange)
	})
	return changes
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
