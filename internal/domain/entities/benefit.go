package entities

// NetworkClass says which network view(s) a raw benefit record applies to,
// mirroring the three buckets the clearinghouse returns.

type NetworkClass string

const (
	NetworkInOnly  NetworkClass = "in_network_only"
	NetworkOutOnly NetworkClass = "out_of_network_only"
	NetworkBoth    NetworkClass = "both_networks"
)

// BenefitKey is the composite identity of a benefit line. Two records
// sharing a key are the same benefit appearing in more than one bucket.
type BenefitKey struct {
	ServiceTypeCode   string
	CoverageLevelCode string
}

// BenefitRecord is one line item of coverage from a 271 response, already
// decoded out of the EDI by the clearinghouse.
//
// Value fields are kind-specific: copay carries CopayValue (pre-formatted
// currency text upstream), coinsurance carries CoinsurancePct, the
// progress-style kinds (deductible, out-of-pocket) carry Remaining/Total as
// raw strings that may or may not parse as numbers.

type BenefitRecord struct {
	BenefitType       string       `json:"benefit_type"`
	ServiceTypeCode   string       `json:"service_type_code"`
	CoverageLevelCode string       `json:"coverage_level_code"`
	Network           NetworkClass `json:"network"`

	CopayValue     string `json:"copay_value,omitempty"`
	CoinsurancePct any    `json:"coinsurance_pct,omitempty"`
	Remaining      string `json:"remaining,omitempty"`
	Total          string `json:"total,omitempty"`

	Messages []string `json:"messages,omitempty"`
}

// Key returns the (service type, coverage level) identity used by dedup.
func (b BenefitRecord) Key() BenefitKey {
	return BenefitKey{ServiceTypeCode: b.ServiceTypeCode, CoverageLevelCode: b.CoverageLevelCode}
}
