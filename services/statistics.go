package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/FahimDeveloper/restaurant-management-server/models"
)

type itemKey struct {
	name     string
	category string
}

type itemGroup struct {
	key        itemKey
	count      int
	total      decimal.Decimal
	firstOrder time.Time
	record     models.MenuItem
}

// ComputeStatistics groups joined order lines twice: by category for the
// totals, and by (name, category) for the best seller. Best-seller ties go
// to the item whose first order is earliest, then to the smaller name.
func ComputeStatistics(lines []models.OrderLine) models.OrderStatistics {
	categories := map[string]*models.CategoryTotal{}
	categorySums := map[string]decimal.Decimal{}
	items := map[itemKey]*itemGroup{}

	for _, line := range lines {
		price := decimal.NewFromFloat(line.Item.Price)

		cat := line.Item.Category
		ct, ok := categories[cat]
		if !ok {
			ct = &models.CategoryTotal{Category: cat}
			categories[cat] = ct
		}
		ct.Count++
		categorySums[cat] = categorySums[cat].Add(price)

		key := itemKey{name: line.Item.Name, category: cat}
		g, ok := items[key]
		if !ok {
			g = &itemGroup{key: key, firstOrder: line.OrderDate, record: line.Item}
			items[key] = g
		}
		g.count++
		g.total = g.total.Add(price)
		if line.OrderDate.Before(g.firstOrder) {
			g.firstOrder = line.OrderDate
		}
	}

	stats := models.OrderStatistics{CategoryTotals: make([]models.CategoryTotal, 0, len(categories))}
	for cat, ct := range categories {
		ct.TotalPrice = roundPrice(categorySums[cat])
		stats.CategoryTotals = append(stats.CategoryTotals, *ct)
	}
	sort.Slice(stats.CategoryTotals, func(i, j int) bool {
		a, b := stats.CategoryTotals[i], stats.CategoryTotals[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Category < b.Category
	})

	var best *itemGroup
	for _, g := range items {
		if best == nil || ranksAbove(g, best) {
			best = g
		}
	}
	if best != nil {
		stats.BestSeller = &models.BestSeller{
			Name:       best.key.name,
			Category:   best.key.category,
			Count:      best.count,
			TotalPrice: roundPrice(best.total),
			Item:       best.record,
		}
	}
	return stats
}

func ranksAbove(a, b *itemGroup) bool {
	if a.count != b.count {
		return a.count > b.count
	}
	if !a.firstOrder.Equal(b.firstOrder) {
		return a.firstOrder.Before(b.firstOrder)
	}
	if a.key.name != b.key.name {
		return a.key.name < b.key.name
	}
	return a.key.category < b.key.category
}

func roundPrice(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
