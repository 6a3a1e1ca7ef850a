package usecase

import (
	"encoding/json"
	"strings"
	"time"

	"eligibility_hub/internal/domain/entities"
)

// DecodeSubmission turns one raw clearinghouse record (list item or detail
// body) into a Submission. Field names vary by endpoint, so every lookup
// goes through the ordered candidate-name helpers. Unknown shapes decode to
// a zero-value Submission (empty ID), which callers treat as not-found.
func DecodeSubmission(raw json.RawMessage) entities.Submission {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return entities.Submission{}
	}

	// Detail endpoints wrap the record one level down.
	if inner, ok := objectField(obj, "data", "submission"); ok {
		if _, hasID := stringField(inner, "id", "submission_id", "uuid"); hasID {
			obj = inner
		}
	}

	s := entities.Submission{}
	s.ID, _ = stringField(obj, "id", "submission_id", "uuid")

	if v, ok := stringField(obj, "queue_status", "queueStatus", "status"); ok {
		s.QueueStatus = entities.QueueStatus(normalizeQueueStatus(v))
	}
	if v, ok := stringField(obj, "eligibility_status", "eligibilityStatus", "eligibility"); ok {
		s.EligibilityStatus = entities.EligibilityStatus(strings.ToLower(v))
	}
	if v, ok := stringField(obj, "created_at", "createdAt", "created"); ok {
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			s.CreatedAt = t
		} else if t, err := time.Parse(time.RFC3339, v); err == nil {
			s.CreatedAt = t
		}
	}
	s.ServiceDate, _ = stringField(obj, "service_date", "date_of_service", "dos")
	s.PayerName, _ = stringField(obj, "payer_name", "payer")
	if s.PayerName == "" {
		if payer, ok := objectField(obj, "payer"); ok {
			s.PayerName, _ = stringField(payer, "name", "payer_name")
		}
	}
	s.ServiceTypes = stringSliceField(obj, "service_types", "service_type_codes")

	if sub, ok := objectField(obj, "subscriber", "member", "patient"); ok {
		s.Subscriber = entities.SubscriberRef{}
		s.Subscriber.MemberID, _ = stringField(sub, "member_id", "subscriber_id", "id")
		s.Subscriber.FirstName, _ = stringField(sub, "first_name", "firstName")
		s.Subscriber.LastName, _ = stringField(sub, "last_name", "lastName")
		s.Subscriber.DateOfBirth, _ = stringField(sub, "date_of_birth", "dob")
		s.Subscriber.RelationshipCode, _ = stringField(sub, "relationship_code", "relationship")
	}
	if prov, ok := objectField(obj, "provider"); ok {
		s.Provider.NPI, _ = stringField(prov, "npi", "provider_npi", "id")
		s.Provider.OrganizationName, _ = stringField(prov, "organization_name", "org_name", "name")
	}

	if benefits, ok := objectField(obj, "benefits", "benefit"); ok {
		s.Benefits = entities.BenefitBuckets{
			InNetwork:    decodeBenefitBucket(benefits, entities.NetworkInOnly, "in_network", "in_network_only", "inNetwork"),
			OutOfNetwork: decodeBenefitBucket(benefits, entities.NetworkOutOnly, "out_of_network", "out_of_network_only", "outOfNetwork"),
			BothNetworks: decodeBenefitBucket(benefits, entities.NetworkBoth, "both_networks", "both", "bothNetworks"),
		}
	}

	s.RawRequest, _ = rawField(obj, "270_edi_request", "edi_request", "raw_request")
	s.RawResponse, _ = rawField(obj, "271_edi_response", "edi_response", "raw_response")

	return s
}

func decodeBenefitBucket(m map[string]json.RawMessage, network entities.NetworkClass, names ...string) []entities.BenefitRecord {
	arr, ok := arrayField(m, names...)
	if !ok {
		return nil
	}
	out := make([]entities.BenefitRecord, 0, len(arr))
	for _, raw := range arr {
		r, ok := decodeBenefitRecord(raw, network)
		if !ok {
			continue
		}
		out = append(out, r)
	}
	return out
}

func decodeBenefitRecord(raw json.RawMessage, network entities.NetworkClass) (entities.BenefitRecord, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return entities.BenefitRecord{}, false
	}

	r := entities.BenefitRecord{Network: network}
	r.BenefitType, _ = stringField(obj, "benefit_type", "type", "name")
	r.ServiceTypeCode, _ = stringField(obj, "service_type_code", "service_type")
	r.CoverageLevelCode, _ = stringField(obj, "coverage_level_code", "coverage_level")
	r.CopayValue, _ = stringField(obj, "copay_value", "copay", "copay_amount")
	r.Remaining, _ = stringField(obj, "remaining", "amount_remaining", "remaining_amount")
	r.Total, _ = stringField(obj, "total", "amount_total", "total_amount", "limit")
	r.Messages = stringSliceField(obj, "messages", "notes")

	if pct, ok := rawField(obj, "coinsurance_pct", "coinsurance", "percent"); ok {
		var v any
		if err := json.Unmarshal(pct, &v); err == nil {
			r.CoinsurancePct = v
		}
	}

	return r, true
}

func normalizeQueueStatus(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "in_process" {
		return string(entities.QueueStatusProcessing)
	}
	return v
}
