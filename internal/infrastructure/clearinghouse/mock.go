package clearinghouse

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// mockState backs the gateway's mock mode with an in-memory queue that
// mimics the upstream async worker: each refresh advances a submission one
// step (pending -> processing -> completed) so the console's polling loop
// can be exercised end to end.

type mockState struct {
	mu   sync.Mutex
	subs map[string]*mockSubmission
	seq  int
}

type mockSubmission struct {
	id      string
	created time.Time
	request map[string]any
	fetches int
}

func newMockState() *mockState {
	return &mockState{subs: make(map[string]*mockSubmission)}
}

func (m *mockState) submit(payload json.RawMessage) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	req := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		_ = json.Unmarshal(payload, &req)
	}

	m.seq++
	id := "sub-" + uuid.NewString()
	m.subs[id] = &mockSubmission{id: id, created: time.Now().UTC(), request: req}

	log.Printf("[eligibility][gateway] mock submit success submission_id=%s", id)
	return json.Marshal(m.render(m.subs[id]))
}

func (m *mockState) get(id string) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub, ok := m.subs[id]
	if !ok {
		return nil, fmt.Errorf("clearinghouse: status=404 body={\"message\":\"submission not found\"}")
	}
	sub.fetches++
	return json.Marshal(map[string]any{"data": m.render(sub)})
}

func (m *mockState) list(page, pageSize int, _ map[string]string) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]*mockSubmission, 0, len(m.subs))
	for _, s := range m.subs {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].created.After(all[j].created) })

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	start := (page - 1) * pageSize
	if start > len(all) {
		start = len(all)
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}

	items := make([]map[string]any, 0, end-start)
	for _, s := range all[start:end] {
		items = append(items, m.render(s))
	}

	return json.Marshal(map[string]any{
		"data": map[string]any{"data": items},
		"meta": map[string]any{"pagination": map[string]any{
			"total":        len(all),
			"current_page": page,
			"per_page":     pageSize,
		}},
	})
}

func (m *mockState) retry(id string) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub, ok := m.subs[id]
	if !ok {
		return nil, fmt.Errorf("clearinghouse: status=404 body={\"message\":\"submission not found\"}")
	}
	sub.fetches = 0
	log.Printf("[eligibility][gateway] mock retry success submission_id=%s", id)
	return json.RawMessage(`{"message":"submission requeued"}`), nil
}

func (m *mockState) render(s *mockSubmission) map[string]any {
	out := map[string]any{
		"id":           s.id,
		"created_at":   s.created.Format(time.RFC3339Nano),
		"service_date": stringFrom(s.request, "service_date"),
		"payer_name":   stringFrom(s.request, "payer_name"),
	}
	if sub, ok := s.request["subscriber"]; ok {
		out["subscriber"] = sub
	}
	if prov, ok := s.request["provider"]; ok {
		out["provider"] = prov
	}

	switch {
	case s.fetches == 0:
		out["queue_status"] = "pending"
		out["eligibility_status"] = "unknown"
	case s.fetches == 1:
		out["queue_status"] = "processing"
		out["eligibility_status"] = "unknown"
	default:
		out["queue_status"] = "completed"
		out["eligibility_status"] = "eligible"
		out["benefits"] = map[string]any{
			"in_network": []map[string]any{
				{
					"benefit_type":        "Deductible",
					"service_type_code":   "30",
					"coverage_level_code": "IND",
					"remaining":           "250",
					"total":               "1000",
					"messages":            []string{"Calendar year", "Network providers only"},
				},
			},
			"both_networks": []map[string]any{
				{
					"benefit_type":        "Office Visit",
					"service_type_code":   "98",
					"coverage_level_code": "EMP",
					"copay_value":         "$20",
					"messages":            []string{"Primary care", "Referral not required", "Specialist $40"},
				},
			},
		}
		out["270_edi_request"] = map[string]any{"transaction": "270", "mock": true}
		out["271_edi_response"] = map[string]any{"transaction": "271", "mock": true}
	}
	return out
}

func stringFrom(m map[string]any, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
