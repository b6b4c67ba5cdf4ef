// internal/analytics/report.go
package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Валюта кампании. Исходные данные номинированы в рупиях.
const currencySign = "₹"

// RenderReport рендерит детерминированный текстовый отчет по кампании:
// сводные KPI, разбивку по нишам и площадкам, лучших и худших инфлюенсеров
// и эхо выбранных фильтров. Чистая функция форматирования: одинаковые
// входы дают побайтово одинаковый текст, поэтому в отчете нет временных
// меток и обращений к сети или файлам.
func RenderReport(m Metrics, top, bottom []InfluencerMetrics, sel Selection) string {
	var b strings.Builder

	b.WriteString("### Detailed Campaign Insights Report\n\n")
	b.WriteString("This report provides a plain-language summary of campaign performance, key influencers, and trends.\n\n")

	b.WriteString("#### Selection\n")
	fmt.Fprintf(&b, "- Categories: %s\n", strings.Join(sel.Categories, ", "))
	fmt.Fprintf(&b, "- Platforms: %s\n", strings.Join(sel.Platforms, ", "))
	fmt.Fprintf(&b, "- Date range: %s — %s\n\n", sel.From.Format("2006-01-02"), sel.To.Format("2006-01-02"))

	b.WriteString("#### Campaign Summary\n")
	if m.Empty() {
		b.WriteString("No data for selection: no tracking records match the chosen filters.\n\n")
	}
	fmt.Fprintf(&b, "- Total Revenue: %s\n", money(m.TotalRevenue))
	fmt.Fprintf(&b, "- Total Payouts: %s\n", money(m.TotalPayout))
	fmt.Fprintf(&b, "- ROI: %s\n", m.ROI.Format(3))
	fmt.Fprintf(&b, "- Organic Baseline Revenue: %s\n", money(m.OrganicBaseline))
	fmt.Fprintf(&b, "- Incremental Revenue: %s\n", money(m.IncrementalRevenue))
	fmt.Fprintf(&b, "- Incremental ROAS: %s\n\n", m.IncrementalROAS.Format(3))

	if !m.Empty() {
		writeGroupSection(&b, "Top Performing Categories", groupFromBreakdown(m.Influencers, func(im InfluencerMetrics) string { return im.Category }))
		writeGroupSection(&b, "Top Performing Platforms", groupFromBreakdown(m.Influencers, func(im InfluencerMetrics) string { return im.Platform }))

		b.WriteString("#### Influencer Leaderboard\n")
		b.WriteString("##### Top Performers\n")
		writeInfluencerList(&b, top)
		b.WriteString("\n##### Underperformers\n")
		writeInfluencerList(&b, bottom)
		b.WriteString("\n")
	}

	if n := m.Skipped.Total(); n > 0 {
		fmt.Fprintf(&b, "Note: %d malformed source rows were skipped during load and are not part of these figures.\n", n)
	}

	return b.String()
}

func writeGroupSection(b *strings.Builder, title string, groups []GroupMetrics) {
	fmt.Fprintf(b, "#### %s\n", title)
	for _, g := range TopGroupsByROI(groups, 3) {
		fmt.Fprintf(b, "- %s: ROI %s, revenue %s, payout %s\n", g.Key, g.ROI.Format(3), money(g.Revenue), money(g.Payout))
	}
	b.WriteString("\n")
}

func writeInfluencerList(b *strings.Builder, list []InfluencerMetrics) {
	if len(list) == 0 {
		b.WriteString("- none\n")
		return
	}
	for i, im := range list {
		fmt.Fprintf(b, "%d. %s (%s, %s): ROI %s, revenue %s, payout %s, incremental ROAS %s\n",
			i+1, im.Name, im.Category, im.Platform,
			im.ROI.Format(3), money(im.Revenue), money(im.Payout), im.IncrementalROAS.Format(3))
	}
}

// groupFromBreakdown сворачивает инфлюенсерскую разбивку по ключу.
// Выплаты в разбивке уже посчитаны по одному разу на инфлюенсера.
func groupFromBreakdown(breakdown []InfluencerMetrics, key func(InfluencerMetrics) string) []GroupMetrics {
	revenue := make(map[string]decimal.Decimal)
	payout := make(map[string]decimal.Decimal)
	orders := make(map[string]int)
	for _, im := range breakdown {
		k := key(im)
		revenue[k] = revenue[k].Add(im.Revenue)
		payout[k] = payout[k].Add(im.Payout)
		orders[k] += im.Orders
	}
	groups := make([]GroupMetrics, 0, len(revenue))
	for k, rev := range revenue {
		groups = append(groups, GroupMetrics{
			Key:     k,
			Orders:  orders[k],
			Revenue: rev,
			Payout:  payout[k],
			ROI:     SafeDiv(rev, payout[k]),
		})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}

// money форматирует денежную сумму с разделителями тысяч: ₹1,234.56.
func money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}
	out := currencySign + grouped.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
