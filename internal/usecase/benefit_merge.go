package usecase

import (
	"eligibility_hub/internal/domain/entities"
)

// MergeNetwork collapses a network-specific bucket and the shared bucket
// into one effective view. The only-bucket is concatenated ahead of the
// both-bucket, which fixes the tie-break: a record from the
// network-specific bucket wins over one from the shared bucket with the
// same (service type, coverage level) identity. Output keeps first-seen
// records in first-insertion order.
//
// Pure function of its inputs; safe to re-run on every render.
func MergeNetwork(only, both []entities.BenefitRecord) []entities.BenefitRecord {
	merged := make([]entities.BenefitRecord, 0, len(only)+len(both))
	seen := make(map[entities.BenefitKey]struct{}, len(only)+len(both))

	for _, bucket := range [][]entities.BenefitRecord{only, both} {
		for _, r := range bucket {
			k := r.Key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			merged = append(merged, r)
		}
	}
	return merged
}

// InNetworkView is the effective in-network benefit list of a submission.
func InNetworkView(b entities.BenefitBuckets) []entities.BenefitRecord {
	return MergeNetwork(b.InNetwork, b.BothNetworks)
}

// OutOfNetworkView is the effective out-of-network benefit list.
func OutOfNetworkView(b entities.BenefitBuckets) []entities.BenefitRecord {
	return MergeNetwork(b.OutOfNetwork, b.BothNetworks)
}

// ResolveSelection keeps the previously selected benefit across a network
// toggle when it still exists in the new merged view, otherwise falls back
// to the first record. The zero BenefitKey is returned for an empty view.
func ResolveSelection(merged []entities.BenefitRecord, previous entities.BenefitKey) entities.BenefitKey {
	if len(merged) == 0 {
		return entities.BenefitKey{}
	}
	if previous != (entities.BenefitKey{}) {
		for _, r := range merged {
			if r.Key() == previous {
				return previous
			}
		}
	}
	return merged[0].Key()
}
