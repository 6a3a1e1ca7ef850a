package usecase

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"
)

func TestNormalizeEnvelope_Shapes(t *testing.T) {
	t.Run("double-wrapped with pagination metadata", func(t *testing.T) {
		body := json.RawMessage(`{
			"data": {"data": [{"id":"a"},{"id":"b"}]},
			"meta": {"pagination": {"total": 42, "current_page": 3, "per_page": 2}}
		}`)

		env := NormalizeEnvelope(body, 1, 10)
		if len(env.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(env.Items))
		}
		if env.TotalCount != 42 || env.Page != 3 || env.PageSize != 2 {
			t.Fatalf("unexpected pagination: %+v", env)
		}
	})

	t.Run("single-wrapped array", func(t *testing.T) {
		body := json.RawMessage(`{"data": [{"id":"a"}]}`)

		env := NormalizeEnvelope(body, 2, 10)
		if len(env.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(env.Items))
		}
		// Short page: exact count.
		if env.TotalCount != 11 {
			t.Fatalf("expected total 11, got %d", env.TotalCount)
		}
	})

	t.Run("bare array", func(t *testing.T) {
		body := json.RawMessage(`[{"id":"a"},{"id":"b"},{"id":"c"}]`)

		env := NormalizeEnvelope(body, 1, 10)
		if len(env.Items) != 3 || env.TotalCount != 3 {
			t.Fatalf("unexpected envelope: %+v", env)
		}
	})

	t.Run("object without recognizable items", func(t *testing.T) {
		body := json.RawMessage(`{"message":"ok"}`)

		env := NormalizeEnvelope(body, 1, 10)
		if len(env.Items) != 0 || env.TotalCount != 0 {
			t.Fatalf("expected empty page, got %+v", env)
		}
	})

	t.Run("malformed body degrades to empty", func(t *testing.T) {
		env := NormalizeEnvelope(json.RawMessage(`{"data": `), 1, 10)
		if len(env.Items) != 0 || env.TotalCount != 0 {
			t.Fatalf("expected empty page, got %+v", env)
		}
	})

	t.Run("single-wrapped object is not an item list", func(t *testing.T) {
		body := json.RawMessage(`{"data": {"id":"a"}}`)

		env := NormalizeEnvelope(body, 1, 10)
		if len(env.Items) != 0 {
			t.Fatalf("expected empty page, got %+v", env)
		}
	})
}

func TestNormalizeEnvelope_Estimation(t *testing.T) {
	fullPage := func(n int) json.RawMessage {
		items := make([]map[string]string, n)
		for i := range items {
			items[i] = map[string]string{"id": fmt.Sprintf("s-%d", i)}
		}
		b, _ := json.Marshal(map[string]any{"data": items})
		return b
	}

	t.Run("full page estimates an extra page", func(t *testing.T) {
		env := NormalizeEnvelope(fullPage(10), 2, 10)
		if env.TotalCount != 20 {
			t.Fatalf("expected estimate 20, got %d", env.TotalCount)
		}
	})

	t.Run("short page is exact", func(t *testing.T) {
		env := NormalizeEnvelope(fullPage(4), 3, 10)
		if env.TotalCount != 24 {
			t.Fatalf("expected exact 24, got %d", env.TotalCount)
		}
	})

	t.Run("monotonic across successive full pages", func(t *testing.T) {
		prev := -1
		for page := 1; page <= 5; page++ {
			env := NormalizeEnvelope(fullPage(10), page, 10)
			if env.TotalCount < prev {
				t.Fatalf("estimate regressed at page %d: %d < %d", page, env.TotalCount, prev)
			}
			prev = env.TotalCount
		}
	})

	t.Run("never negative", func(t *testing.T) {
		env := NormalizeEnvelope(json.RawMessage(`{"data": []}`), 0, 0)
		if env.TotalCount < 0 {
			t.Fatalf("negative total: %d", env.TotalCount)
		}
	})
}

func TestNormalizeEnvelope_Idempotent(t *testing.T) {
	body := json.RawMessage(`{
		"data": {"data": [{"id":"a"},{"id":"b"}]},
		"meta": {"pagination": {"total": 7, "current_page": 1, "per_page": 2}}
	}`)

	first := NormalizeEnvelope(body, 1, 2)
	second := NormalizeEnvelope(body, 1, 2)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("normalizer not idempotent: %+v vs %+v", first, second)
	}
}
