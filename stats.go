package orderflow

import (
	"sort"

	"github.com/avikal/orderflow/date"
	"github.com/shopspring/decimal"
)

// This file is the aggregation engine: pure, read-only derivations of
// dashboard metrics from a snapshot. Nothing here mutates the ledger.

// MonthStat is the rollup of one calendar month.
type MonthStat struct {
	Month    date.Month
	Profit   decimal.Decimal
	Orders   int // row count in the month
	Quantity int
}

// Insights are the narrative statistics derived from the rollup.
type Insights struct {
	BestMonth         date.Month // month with the most orders, ties to the earliest
	BestMonthOrders   int
	BestMonthQuantity int
	BestMonthProfit   decimal.Decimal
	BestSeller        string // most frequently ordered item, ties to the first encountered
	BestSellerAvgSale decimal.Decimal
}

// Summary holds every dashboard metric for one snapshot.
type Summary struct {
	TotalOrders   int
	TotalQuantity int
	TotalSales    decimal.Decimal
	TotalProfit   decimal.Decimal
	Months        []MonthStat // ascending calendar order
	// Insights is nil when the snapshot has no data to rank.
	Insights *Insights
}

// Summarize computes totals, the monthly rollup and insights for a
// snapshot. Rollup totals always sum back to the grand totals, for any
// partition by month.
func Summarize(ledger *Ledger) *Summary {
	s := &Summary{
		TotalSales:  decimal.Zero,
		TotalProfit: decimal.Zero,
	}

	months := make(map[date.Month]*MonthStat)
	for _, o := range ledger.Records() {
		s.TotalOrders++
		s.TotalQuantity += o.Quantity
		s.TotalSales = s.TotalSales.Add(o.Sale)
		s.TotalProfit = s.TotalProfit.Add(o.Profit)

		key := date.MonthOf(o.Day)
		m, ok := months[key]
		if !ok {
			m = &MonthStat{Month: key, Profit: decimal.Zero}
			months[key] = m
		}
		m.Orders++
		m.Quantity += o.Quantity
		m.Profit = m.Profit.Add(o.Profit)
	}

	s.Months = make([]MonthStat, 0, len(months))
	for _, m := range months {
		s.Months = append(s.Months, *m)
	}
	sort.Slice(s.Months, func(i, j int) bool {
		return s.Months[i].Month.Before(s.Months[j].Month)
	})

	s.Insights = insights(ledger, s.Months)
	return s
}

// insights ranks the rollup. It reports nil, the explicit
// "insufficient data" state, when there is nothing to rank.
func insights(ledger *Ledger, months []MonthStat) *Insights {
	if len(months) == 0 {
		return nil
	}

	// Best month by order count; the ascending month order makes ties
	// resolve to the earliest month.
	best := months[0]
	for _, m := range months[1:] {
		if m.Orders > best.Orders {
			best = m
		}
	}

	// Most frequent item across the split item names. Ties resolve to
	// the item seen first in row order.
	counts := make(map[string]int)
	var firstSeen []string
	for _, o := range ledger.Records() {
		for _, item := range o.Items {
			if _, ok := counts[item]; !ok {
				firstSeen = append(firstSeen, item)
			}
			counts[item]++
		}
	}
	if len(firstSeen) == 0 {
		return nil
	}
	seller := firstSeen[0]
	for _, item := range firstSeen[1:] {
		if counts[item] > counts[seller] {
			seller = item
		}
	}

	// Mean sale price over the rows that contain the best seller.
	sum, n := decimal.Zero, 0
	for _, o := range ledger.Records() {
		for _, item := range o.Items {
			if item == seller {
				sum = sum.Add(o.Sale)
				n++
				break
			}
		}
	}
	avg := decimal.Zero
	if n > 0 {
		avg = sum.Div(decimal.NewFromInt(int64(n)))
	}

	return &Insights{
		BestMonth:         best.Month,
		BestMonthOrders:   best.Orders,
		BestMonthQuantity: best.Quantity,
		BestMonthProfit:   best.Profit,
		BestSeller:        seller,
		BestSellerAvgSale: avg,
	}
}
