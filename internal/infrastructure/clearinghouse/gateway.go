package clearinghouse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"eligibility_hub/internal/usecase/interfaces"
)

var ErrMissingBaseURL = errors.New("missing CLEARINGHOUSE_BASE_URL")
var ErrGatewayNotConfigured = errors.New("clearinghouse gateway not configured")

// Gateway talks to the external eligibility clearinghouse that runs the
// 270/271 exchange. It is a thin transport: bodies pass through as raw JSON
// and all shape tolerance lives in the use case layer.
//
// Mock mode (CLEARINGHOUSE_MOCK=1|true|yes|on|mock) serves synthesized
// submissions from memory so the whole service can run without upstream
// credentials: submit creates a pending record, the first refresh reports
// processing, the second completes it with a small benefit set, and retry
// re-queues a record.

type Gateway struct {
	client   *http.Client
	baseURL  string
	apiKey   string
	mockMode bool

	mock *mockState
}

var _ interfaces.IClearinghouseGateway = (*Gateway)(nil)

func NewGateway(baseURL, apiKey string) (*Gateway, error) {
	if isMockEnabled() {
		log.Printf("[eligibility][gateway] mock mode enabled")
		return &Gateway{mockMode: true, mock: newMockState()}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[eligibility][gateway] missing CLEARINGHOUSE_BASE_URL")
		return nil, ErrMissingBaseURL
	}

	log.Printf("[eligibility][gateway] clearinghouse client initialized base_url=%s", baseURL)
	return &Gateway{client: http.DefaultClient, baseURL: baseURL, apiKey: apiKey}, nil
}

func (g *Gateway) SubmitInquiry(ctx context.Context, requestPayload json.RawMessage) (json.RawMessage, error) {
	if g != nil && g.mockMode {
		return g.mock.submit(requestPayload)
	}
	log.Printf("[eligibility][gateway] submit start payload_len=%d", len(requestPayload))
	return g.do(ctx, http.MethodPost, "/eligibility", nil, requestPayload)
}

func (g *Gateway) GetSubmission(ctx context.Context, submissionID string) (json.RawMessage, error) {
	if g != nil && g.mockMode {
		return g.mock.get(submissionID)
	}
	log.Printf("[eligibility][gateway] detail start submission_id=%s", submissionID)
	return g.do(ctx, http.MethodGet, "/eligibility/"+url.PathEscape(submissionID), nil, nil)
}

func (g *Gateway) ListSubmissions(ctx context.Context, page, pageSize int, filters map[string]string) (json.RawMessage, error) {
	if g != nil && g.mockMode {
		return g.mock.list(page, pageSize, filters)
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	for k, v := range filters {
		if strings.TrimSpace(v) != "" {
			q.Set(k, v)
		}
	}
	log.Printf("[eligibility][gateway] list start page=%d page_size=%d filters=%d", page, pageSize, len(filters))
	return g.do(ctx, http.MethodGet, "/eligibility", q, nil)
}

func (g *Gateway) RetrySubmission(ctx context.Context, submissionID string) (json.RawMessage, error) {
	if g != nil && g.mockMode {
		return g.mock.retry(submissionID)
	}
	log.Printf("[eligibility][gateway] retry start submission_id=%s", submissionID)
	return g.do(ctx, http.MethodPost, "/eligibility/"+url.PathEscape(submissionID)+"/retry", nil, nil)
}

func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, body json.RawMessage) (json.RawMessage, error) {
	if g == nil || g.client == nil {
		return nil, ErrGatewayNotConfigured
	}

	u := g.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[eligibility][gateway] request failed method=%s path=%s err=%v", method, path, err)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[eligibility][gateway] upstream error method=%s path=%s status=%d", method, path, resp.StatusCode)
		return nil, fmt.Errorf("clearinghouse: status=%d body=%s", resp.StatusCode, truncate(raw, 512))
	}
	return raw, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

func isMockEnabled() bool {
	for _, key := range []string{"CLEARINGHOUSE_MOCK", "ELIGIBILITY_GATEWAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
