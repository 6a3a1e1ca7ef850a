package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"eligibility_hub/internal/domain/entities"
)

// DisplayLineItem is the presentation-ready projection of one benefit
// record: what the console card shows for copays, coinsurance and the
// progress-style benefits (deductible, out-of-pocket).
type DisplayLineItem struct {
	Title          string   `json:"title"`
	Value          string   `json:"value"`
	Subtitle       string   `json:"subtitle,omitempty"`
	Footer         string   `json:"footer,omitempty"`
	Used           *float64 `json:"used,omitempty"`
	Total          *float64 `json:"total,omitempty"`
	Percent        *int     `json:"percent,omitempty"`
	AdditionalInfo []string `json:"additional_info,omitempty"`
}

type benefitKind int

const (
	kindCopay benefitKind = iota
	kindCoinsurance
	kindProgress
)

// ProjectBenefit maps a raw benefit record into a display line item.
// Records with unparseable numeric fields are projected with zero-valued
// figures rather than dropped; the raw messages still ride along in
// AdditionalInfo so nothing disappears without a trace.
func ProjectBenefit(r entities.BenefitRecord) DisplayLineItem {
	item := DisplayLineItem{
		Title:          r.BenefitType,
		AdditionalInfo: r.Messages,
	}

	switch classifyBenefit(r) {
	case kindCopay:
		// Copay values arrive already currency-formatted upstream.
		item.Value = r.CopayValue
		if len(r.Messages) >= 3 {
			item.Subtitle = r.Messages[2]
		}
		item.Footer = "Per Visit"

	case kindCoinsurance:
		item.Value = formatCoinsurance(r.CoinsurancePct)

	case kindProgress:
		remaining := parseAmount(r.Remaining)
		total := parseAmount(r.Total)
		used := total - remaining
		if used < 0 {
			used = 0
		}
		if total > 0 && used > total {
			used = total
		}
		item.Value = fmt.Sprintf("$%s Remaining", formatAmount(remaining))
		item.Footer = fmt.Sprintf("$%s Total", formatAmount(total))
		pct := progressPercent(used, total)
		item.Used = &used
		item.Total = &total
		item.Percent = &pct
	}

	return item
}

func classifyBenefit(r entities.BenefitRecord) benefitKind {
	if strings.TrimSpace(r.CopayValue) != "" {
		return kindCopay
	}
	if r.CoinsurancePct != nil {
		return kindCoinsurance
	}
	if strings.TrimSpace(r.Remaining) != "" || strings.TrimSpace(r.Total) != "" {
		return kindProgress
	}
	// Nothing kind-specific present; the type text is the last hint.
	switch {
	case strings.Contains(strings.ToLower(r.BenefitType), "coinsurance"):
		return kindCoinsurance
	case strings.Contains(strings.ToLower(r.BenefitType), "copay"):
		return kindCopay
	default:
		return kindProgress
	}
}

func formatCoinsurance(v any) string {
	switch pct := v.(type) {
	case nil:
		return "N/A"
	case string:
		s := strings.TrimSpace(pct)
		if s == "" {
			return "N/A"
		}
		if strings.Contains(s, "%") {
			return s
		}
		return s + "%"
	case float64:
		return formatAmount(pct) + "%"
	case int:
		return strconv.Itoa(pct) + "%"
	default:
		return "N/A"
	}
}

// progressPercent is the progress-bar figure, clamped to [0,100]. A zero or
// negative total reads as 0% to avoid the division.
func progressPercent(used, total float64) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(used / total * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
