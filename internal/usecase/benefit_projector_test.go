package usecase

import (
	"testing"

	"eligibility_hub/internal/domain/entities"
)

func TestProjectBenefit_Copay(t *testing.T) {
	r := entities.BenefitRecord{
		BenefitType:       "Office Visit",
		ServiceTypeCode:   "30",
		CoverageLevelCode: "EMP",
		CopayValue:        "$20",
		Messages:          []string{"m1", "m2", "In-network provider"},
	}

	item := ProjectBenefit(r)
	if item.Title != "Office Visit" || item.Value != "$20" {
		t.Fatalf("unexpected projection: %+v", item)
	}
	if item.Subtitle != "In-network provider" {
		t.Fatalf("expected third message as subtitle, got %q", item.Subtitle)
	}
	if item.Footer != "Per Visit" {
		t.Fatalf("expected Per Visit footer, got %q", item.Footer)
	}

	t.Run("fewer than three messages means no subtitle", func(t *testing.T) {
		r := entities.BenefitRecord{BenefitType: "Office Visit", CopayValue: "$10", Messages: []string{"only one"}}
		if item := ProjectBenefit(r); item.Subtitle != "" {
			t.Fatalf("expected empty subtitle, got %q", item.Subtitle)
		}
	})
}

func TestProjectBenefit_Coinsurance(t *testing.T) {
	cases := []struct {
		name string
		pct  any
		want string
	}{
		{name: "numeric", pct: float64(20), want: "20%"},
		{name: "string with percent passes through", pct: "30%", want: "30%"},
		{name: "numeric string", pct: "15", want: "15%"},
		{name: "nil renders N/A", pct: nil, want: "N/A"},
		{name: "blank string renders N/A", pct: "  ", want: "N/A"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := entities.BenefitRecord{BenefitType: "Coinsurance", CoinsurancePct: tc.pct}
			if item := ProjectBenefit(r); item.Value != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, item.Value)
			}
		})
	}
}

func TestProjectBenefit_Progress(t *testing.T) {
	t.Run("used and percent from remaining/total", func(t *testing.T) {
		r := entities.BenefitRecord{BenefitType: "Deductible", Remaining: "$250", Total: "$1,000"}

		item := ProjectBenefit(r)
		if item.Value != "$250 Remaining" {
			t.Fatalf("unexpected value: %q", item.Value)
		}
		if item.Used == nil || *item.Used != 750 {
			t.Fatalf("expected used 750, got %+v", item.Used)
		}
		if item.Percent == nil || *item.Percent != 75 {
			t.Fatalf("expected 75%%, got %+v", item.Percent)
		}
	})

	t.Run("negative remaining clamps to total", func(t *testing.T) {
		r := entities.BenefitRecord{BenefitType: "Out of Pocket", Remaining: "-50", Total: "100"}

		item := ProjectBenefit(r)
		if item.Used == nil || *item.Used != 100 {
			t.Fatalf("expected used clamped to 100, got %+v", item.Used)
		}
		if item.Percent == nil || *item.Percent != 100 {
			t.Fatalf("expected 100%%, got %+v", item.Percent)
		}
	})

	t.Run("zero total avoids division", func(t *testing.T) {
		r := entities.BenefitRecord{BenefitType: "Deductible", Remaining: "0", Total: "0"}

		item := ProjectBenefit(r)
		if item.Percent == nil || *item.Percent != 0 {
			t.Fatalf("expected 0%%, got %+v", item.Percent)
		}
	})

	t.Run("unparseable amounts default to zero, record kept", func(t *testing.T) {
		r := entities.BenefitRecord{
			BenefitType: "Deductible",
			Remaining:   "n/a",
			Total:       "contact payer",
			Messages:    []string{"call member services"},
		}

		item := ProjectBenefit(r)
		if item.Used == nil || *item.Used != 0 {
			t.Fatalf("expected used 0, got %+v", item.Used)
		}
		if len(item.AdditionalInfo) != 1 {
			t.Fatalf("expected raw messages preserved, got %+v", item.AdditionalInfo)
		}
	})
}
