// Package renderer turns ledger snapshots and summaries into markdown
// for terminal display.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/avikal/orderflow"
)

//go:embed *.md
var templates embed.FS

// dashboardView is the pre-formatted data handed to the dashboard
// templates.
type dashboardView struct {
	TotalOrders   int
	TotalQuantity int
	TotalSales    string
	TotalProfit   string
	Months        []monthRow
	Insights      *insightsView
}

type monthRow struct {
	Month    string
	Profit   string
	Orders   int
	Quantity int
}

type insightsView struct {
	BestMonth         string
	BestMonthOrders   int
	BestMonthQuantity int
	BestMonthProfit   string
	BestSeller        string
	BestSellerAvgSale string
}

// DashboardMarkdown renders the summary dashboard to a markdown string.
func DashboardMarkdown(s *orderflow.Summary) string {
	view := dashboardView{
		TotalOrders:   s.TotalOrders,
		TotalQuantity: s.TotalQuantity,
		TotalSales:    orderflow.FormatMoney(s.TotalSales),
		TotalProfit:   orderflow.FormatMoney(s.TotalProfit),
	}
	for _, m := range s.Months {
		view.Months = append(view.Months, monthRow{
			Month:    m.Month.String(),
			Profit:   orderflow.FormatMoney(m.Profit),
			Orders:   m.Orders,
			Quantity: m.Quantity,
		})
	}
	if in := s.Insights; in != nil {
		view.Insights = &insightsView{
			BestMonth:         in.BestMonth.String(),
			BestMonthOrders:   in.BestMonthOrders,
			BestMonthQuantity: in.BestMonthQuantity,
			BestMonthProfit:   orderflow.FormatMoney(in.BestMonthProfit),
			BestSeller:        in.BestSeller,
			BestSellerAvgSale: orderflow.FormatMoney(in.BestSellerAvgSale),
		}
	}

	partials := map[string]string{
		"dashboard_totals":   "dashboard_totals.md",
		"dashboard_rollup":   "dashboard_rollup.md",
		"dashboard_insights": "dashboard_insights.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, view)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
