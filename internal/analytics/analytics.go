package analytics

import (
	"sort"

	"github.com/lenteradev69/barbershits/internal/domain"
)

const defaultPopularLimit = 5

// TransactionSource feeds the aggregator. Every report recomputes from
// the full history so the numbers never drift from the records.
type TransactionSource interface {
	All() []domain.Transaction
}

type Aggregator struct {
	source TransactionSource
}

func New(source TransactionSource) *Aggregator {
	return &Aggregator{source: source}
}

// Summary totals the history, optionally restricted to an inclusive
// date range. An empty selection reports zeros, average included.
func (a *Aggregator) Summary(r *domain.DateRange) domain.TransactionSummary {
	var out domain.TransactionSummary
	for _, tx := range a.source.All() {
		if r != nil && !r.Contains(tx.Date) {
			continue
		}
		out.TotalRevenue += tx.Total
		out.TransactionCount++
		switch tx.PaymentMethod {
		case domain.PaymentCash:
			out.PaymentMethods.Cash++
		case domain.PaymentQris:
			out.PaymentMethods.Qris++
		}
		for _, item := range tx.Items {
			switch item.Type {
			case domain.ItemTypeService:
				out.ServiceCount += item.Quantity
			case domain.ItemTypeProduct:
				out.ProductCount += item.Quantity
			}
		}
	}
	if out.TransactionCount > 0 {
		out.AverageValue = float64(out.TotalRevenue) / float64(out.TransactionCount)
	}
	return out
}

// RevenueBuckets groups revenue for the dashboard charts. Daily
// buckets by weekday with Sunday first. Weekly floors the day of
// month over seven, so days 28 and later fall past the four buckets
// and are dropped. Monthly folds the calendar month onto six buckets.
func (a *Aggregator) RevenueBuckets() domain.RevenueBuckets {
	var out domain.RevenueBuckets
	for _, tx := range a.source.All() {
		out.Daily[int(tx.Date.Weekday())] += tx.Total

		week := tx.Date.Day() / 7
		if week < len(out.Weekly) {
			out.Weekly[week] += tx.Total
		}

		out.Monthly[(int(tx.Date.Month())-1)%len(out.Monthly)] += tx.Total
	}
	return out
}

// PopularServices ranks cart items by units sold, most first. Ties
// keep the order the names were first seen in the history. A
// non-positive limit uses the dashboard default of five.
func (a *Aggregator) PopularServices(limit int) []domain.ServiceRank {
	if limit <= 0 {
		limit = defaultPopularLimit
	}

	counts := make(map[string]int)
	var order []string
	for _, tx := range a.source.All() {
		for _, item := range tx.Items {
			if _, seen := counts[item.Name]; !seen {
				order = append(order, item.Name)
			}
			counts[item.Name] += item.Quantity
		}
	}

	ranks := make([]domain.ServiceRank, 0, len(order))
	for _, name := range order {
		ranks = append(ranks, domain.ServiceRank{Name: name, Count: counts[name]})
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Count > ranks[j].Count
	})

	if limit > len(ranks) {
		limit = len(ranks)
	}
	return ranks[:limit]
}

// CategoryRevenue sums revenue per category, highest first. Items
// recorded before categories were snapshotted onto cart lines fall
// back to the legacy name classifier.
func (a *Aggregator) CategoryRevenue() []domain.CategoryRevenue {
	totals := make(map[string]int64)
	for _, tx := range a.source.All() {
		for _, item := range tx.Items {
			category := item.Category
			if category == "" {
				category = LegacyCategoryForName(item.Name, item.Type)
			}
			totals[category] += item.Price * int64(item.Quantity)
		}
	}

	out := make([]domain.CategoryRevenue, 0, len(totals))
	for category, revenue := range totals {
		out = append(out, domain.CategoryRevenue{Category: category, Revenue: revenue})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Category < out[j].Category
	})
	return out
}
