package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"eligibility_hub/internal/domain/entities"
	"eligibility_hub/internal/usecase/interfaces"
)

var (
	ErrSubmissionNotFound   = errors.New("submission not found")
	ErrInvalidSubmissionID  = errors.New("invalid submission id")
	ErrInvalidInquiry       = errors.New("invalid eligibility inquiry")
	ErrInvalidMemberID      = errors.New("invalid member id")
	ErrSubmissionCompleted  = errors.New("submission already completed")
	ErrRetryFailed          = errors.New("retry request failed")
	ErrGatewayUnavailable   = errors.New("clearinghouse unavailable")
	ErrMalformedGatewayBody = errors.New("malformed clearinghouse response")
)

// InquiryCommand is the validated submit input: who to check, by whom, for
// which date and service types.
type InquiryCommand struct {
	MemberID         string
	FirstName        string
	LastName         string
	DateOfBirth      string
	RelationshipCode string
	ProviderNPI      string
	OrganizationName string
	PayerName        string
	ServiceDate      string
	ServiceTypes     []string
}

// ListQuery captures one list fetch: page, size and the filter snapshot the
// result must be matched against.
type ListQuery struct {
	Page     int
	PageSize int
	Filters  map[string]string
}

// ListResult carries the normalized page plus the fetch sequence number.
// Fetches are not guaranteed to resolve in request order; a result whose
// sequence is older than the newest applied one is flagged Stale so callers
// can discard it instead of showing outdated rows.
type ListResult struct {
	Page           entities.ListPage
	HasPendingWork bool
	Seq            uint64
	Stale          bool
}

// ISubmissionUseCase owns the lifecycle of eligibility submissions for the
// console: submit, refresh, list, user-triggered retry, and the audit
// history of completed verifications.

type ISubmissionUseCase interface {
	Submit(ctx context.Context, sessionID string, cmd InquiryCommand) (entities.Submission, error)
	Get(ctx context.Context, sessionID, submissionID string) (entities.Submission, error)
	List(ctx context.Context, q ListQuery) (ListResult, error)
	Retry(ctx context.Context, sessionID, submissionID string) (entities.Submission, error)
	Dismiss(ctx context.Context, sessionID, submissionID string) error
	ClearSession(ctx context.Context, sessionID string) error
	History(ctx context.Context, memberID string) ([]entities.VerificationRecord, error)
	HistoryRecord(ctx context.Context, submissionID string) (entities.VerificationRecord, error)
}

type SubmissionUseCase struct {
	gateway interfaces.IClearinghouseGateway
	store   interfaces.ISessionStore
	history interfaces.IVerificationHistoryRepository

	// notify wakes the poll watcher after a submit/retry puts new pending
	// work into the session store.
	notify func()

	// listSeqs tracks fetch ordering per filter snapshot, so fetches for
	// different list views never mark each other stale.
	listSeqs sync.Map // string -> *listSeqState
}

type listSeqState struct {
	fetch   atomic.Uint64
	applied atomic.Uint64
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(gateway interfaces.IClearinghouseGateway, store interfaces.ISessionStore, history interfaces.IVerificationHistoryRepository) *SubmissionUseCase {
	return &SubmissionUseCase{gateway: gateway, store: store, history: history}
}

// SetNotify registers the poll-watcher wakeup. Wired after construction
// because the watcher and the use case reference each other.
func (u *SubmissionUseCase) SetNotify(fn func()) {
	u.notify = fn
}

func (u *SubmissionUseCase) Submit(ctx context.Context, sessionID string, cmd InquiryCommand) (entities.Submission, error) {
	if strings.TrimSpace(cmd.MemberID) == "" || strings.TrimSpace(cmd.ProviderNPI) == "" || strings.TrimSpace(cmd.ServiceDate) == "" {
		return entities.Submission{}, ErrInvalidInquiry
	}

	payload, err := json.Marshal(map[string]any{
		"subscriber": map[string]any{
			"member_id":         strings.TrimSpace(cmd.MemberID),
			"first_name":        cmd.FirstName,
			"last_name":         cmd.LastName,
			"date_of_birth":     cmd.DateOfBirth,
			"relationship_code": cmd.RelationshipCode,
		},
		"provider": map[string]any{
			"npi":               strings.TrimSpace(cmd.ProviderNPI),
			"organization_name": cmd.OrganizationName,
		},
		"payer_name":    cmd.PayerName,
		"service_date":  strings.TrimSpace(cmd.ServiceDate),
		"service_types": cmd.ServiceTypes,
	})
	if err != nil {
		return entities.Submission{}, err
	}

	log.Printf("[eligibility][usecase] submit start session=%s member_id=%s", sessionID, cmd.MemberID)
	raw, err := u.gateway.SubmitInquiry(ctx, payload)
	if err != nil {
		log.Printf("[eligibility][usecase] submit gateway failed session=%s err=%v", sessionID, err)
		return entities.Submission{}, classifyGatewayError(err)
	}

	s := DecodeSubmission(raw)
	if s.ID == "" {
		log.Printf("[eligibility][usecase] submit returned no submission id session=%s", sessionID)
		return entities.Submission{}, ErrMalformedGatewayBody
	}
	if s.QueueStatus == "" {
		s.QueueStatus = entities.QueueStatusPending
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	if s.Subscriber.MemberID == "" {
		s.Subscriber = entities.SubscriberRef{
			MemberID:         strings.TrimSpace(cmd.MemberID),
			FirstName:        cmd.FirstName,
			LastName:         cmd.LastName,
			DateOfBirth:      cmd.DateOfBirth,
			RelationshipCode: cmd.RelationshipCode,
		}
	}
	if s.Provider.NPI == "" {
		s.Provider = entities.ProviderRef{NPI: strings.TrimSpace(cmd.ProviderNPI), OrganizationName: cmd.OrganizationName}
	}
	if s.ServiceDate == "" {
		s.ServiceDate = strings.TrimSpace(cmd.ServiceDate)
	}
	if len(s.RawRequest) == 0 {
		s.RawRequest = payload
	}

	if err := u.store.Put(ctx, sessionID, s); err != nil {
		log.Printf("[eligibility][usecase] submit store put failed session=%s submission_id=%s err=%v", sessionID, s.ID, err)
		return entities.Submission{}, err
	}
	u.wake()
	log.Printf("[eligibility][usecase] submit success session=%s submission_id=%s status=%s", sessionID, s.ID, s.QueueStatus)
	return s, nil
}

// Get refreshes one submission from the clearinghouse and replaces the
// session copy wholesale. Any upstream-reported status is accepted as
// authoritative, downgrades included. The first refresh that observes a
// terminal status appends the verification to the audit history.
func (u *SubmissionUseCase) Get(ctx context.Context, sessionID, submissionID string) (entities.Submission, error) {
	submissionID = strings.TrimSpace(submissionID)
	if submissionID == "" {
		return entities.Submission{}, ErrInvalidSubmissionID
	}

	raw, err := u.gateway.GetSubmission(ctx, submissionID)
	if err != nil {
		log.Printf("[eligibility][usecase] refresh gateway failed submission_id=%s err=%v", submissionID, err)
		return entities.Submission{}, classifyGatewayError(err)
	}

	s := DecodeSubmission(raw)
	if s.ID == "" {
		return entities.Submission{}, ErrSubmissionNotFound
	}

	prior, err := u.store.Get(ctx, sessionID, submissionID)
	if err != nil {
		log.Printf("[eligibility][usecase] refresh store get failed session=%s submission_id=%s err=%v", sessionID, submissionID, err)
	}
	if err := u.store.Put(ctx, sessionID, s); err != nil {
		log.Printf("[eligibility][usecase] refresh store put failed session=%s submission_id=%s err=%v", sessionID, submissionID, err)
		return entities.Submission{}, err
	}

	if s.QueueStatus.Terminal() && !prior.QueueStatus.Terminal() {
		u.recordVerification(ctx, s)
	}

	return s, nil
}

// List fetches one page through the envelope normalizer. The filter snapshot
// travels with the result, and out-of-order responses are flagged stale.
func (u *SubmissionUseCase) List(ctx context.Context, q ListQuery) (ListResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}

	seqState := u.listSeq(q.Filters)
	seq := seqState.fetch.Add(1)
	raw, err := u.gateway.ListSubmissions(ctx, q.Page, q.PageSize, q.Filters)
	if err != nil {
		log.Printf("[eligibility][usecase] list gateway failed page=%d err=%v", q.Page, err)
		return ListResult{}, classifyGatewayError(err)
	}

	env := NormalizeEnvelope(raw, q.Page, q.PageSize)
	items := make([]entities.Submission, 0, len(env.Items))
	for _, itemRaw := range env.Items {
		s := DecodeSubmission(itemRaw)
		if s.ID == "" {
			continue
		}
		items = append(items, s)
	}

	page := entities.ListPage{
		Items:      items,
		TotalCount: env.TotalCount,
		Page:       env.Page,
		PageSize:   env.PageSize,
		Filters:    q.Filters,
	}

	result := ListResult{Page: page, HasPendingWork: page.HasPendingWork(), Seq: seq}
	for {
		applied := seqState.applied.Load()
		if seq <= applied {
			result.Stale = true
			log.Printf("[eligibility][usecase] list stale response discarded seq=%d applied=%d", seq, applied)
			return result, nil
		}
		if seqState.applied.CompareAndSwap(applied, seq) {
			return result, nil
		}
	}
}

// listSeq resolves the sequence state for one filter snapshot.
func (u *SubmissionUseCase) listSeq(filters map[string]string) *listSeqState {
	key := filterKey(filters)
	if v, ok := u.listSeqs.Load(key); ok {
		return v.(*listSeqState)
	}
	v, _ := u.listSeqs.LoadOrStore(key, &listSeqState{})
	return v.(*listSeqState)
}

func filterKey(filters map[string]string) string {
	if len(filters) == 0 {
		return ""
	}
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(filters[k])
		b.WriteByte('&')
	}
	return b.String()
}

// Retry re-queues a non-completed submission. On gateway failure the session
// copy is left untouched so the user can retry again; on success the cached
// eligibility outcome is cleared, the record returns to pending, and an
// immediate refresh reflects the authoritative upstream state.
func (u *SubmissionUseCase) Retry(ctx context.Context, sessionID, submissionID string) (entities.Submission, error) {
	submissionID = strings.TrimSpace(submissionID)
	if submissionID == "" {
		return entities.Submission{}, ErrInvalidSubmissionID
	}

	prior, err := u.store.Get(ctx, sessionID, submissionID)
	if err != nil {
		log.Printf("[eligibility][usecase] retry store get failed session=%s submission_id=%s err=%v", sessionID, submissionID, err)
	}
	if prior.ID == "" {
		prior, err = u.Get(ctx, sessionID, submissionID)
		if err != nil {
			return entities.Submission{}, err
		}
	}
	if prior.QueueStatus == entities.QueueStatusCompleted {
		return entities.Submission{}, ErrSubmissionCompleted
	}

	log.Printf("[eligibility][usecase] retry start session=%s submission_id=%s status=%s", sessionID, submissionID, prior.QueueStatus)
	if _, err := u.gateway.RetrySubmission(ctx, submissionID); err != nil {
		log.Printf("[eligibility][usecase] retry gateway failed submission_id=%s err=%v", submissionID, err)
		if classified := classifyGatewayError(err); errors.Is(classified, ErrSubmissionNotFound) {
			return entities.Submission{}, classified
		}
		return entities.Submission{}, ErrRetryFailed
	}

	pending := prior
	pending.QueueStatus = entities.QueueStatusPending
	pending.EligibilityStatus = entities.EligibilityStatusUnknown
	pending.RawResponse = nil
	if err := u.store.Put(ctx, sessionID, pending); err != nil {
		log.Printf("[eligibility][usecase] retry store put failed session=%s submission_id=%s err=%v", sessionID, submissionID, err)
	}
	u.wake()

	refreshed, err := u.Get(ctx, sessionID, submissionID)
	if err != nil {
		log.Printf("[eligibility][usecase] retry post-refresh failed submission_id=%s err=%v", submissionID, err)
		return pending, nil
	}
	log.Printf("[eligibility][usecase] retry success submission_id=%s status=%s", submissionID, refreshed.QueueStatus)
	return refreshed, nil
}

// Dismiss drops one submission from the session so it stops being tracked
// and polled. The upstream record is untouched; only the session copy goes.
func (u *SubmissionUseCase) Dismiss(ctx context.Context, sessionID, submissionID string) error {
	submissionID = strings.TrimSpace(submissionID)
	if submissionID == "" {
		return ErrInvalidSubmissionID
	}
	if err := u.store.Delete(ctx, sessionID, submissionID); err != nil {
		log.Printf("[eligibility][usecase] dismiss failed session=%s submission_id=%s err=%v", sessionID, submissionID, err)
		return err
	}
	log.Printf("[eligibility][usecase] dismiss success session=%s submission_id=%s", sessionID, submissionID)
	return nil
}

// ClearSession forgets every submission the session was tracking, the same
// way navigating away from the console discards its transient state.
func (u *SubmissionUseCase) ClearSession(ctx context.Context, sessionID string) error {
	if err := u.store.ClearSession(ctx, sessionID); err != nil {
		log.Printf("[eligibility][usecase] session clear failed session=%s err=%v", sessionID, err)
		return err
	}
	log.Printf("[eligibility][usecase] session cleared session=%s", sessionID)
	return nil
}

func (u *SubmissionUseCase) History(ctx context.Context, memberID string) ([]entities.VerificationRecord, error) {
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return nil, ErrInvalidMemberID
	}
	if u.history == nil {
		return nil, errors.New("verification history repository not configured")
	}
	return u.history.ListByMemberID(ctx, memberID)
}

// HistoryRecord fetches one audit row by submission id.
func (u *SubmissionUseCase) HistoryRecord(ctx context.Context, submissionID string) (entities.VerificationRecord, error) {
	submissionID = strings.TrimSpace(submissionID)
	if submissionID == "" {
		return entities.VerificationRecord{}, ErrInvalidSubmissionID
	}
	if u.history == nil {
		return entities.VerificationRecord{}, errors.New("verification history repository not configured")
	}
	rec, err := u.history.GetByID(ctx, submissionID)
	if err != nil {
		return entities.VerificationRecord{}, err
	}
	if rec.ID == "" {
		return entities.VerificationRecord{}, ErrSubmissionNotFound
	}
	return rec, nil
}

// HasTrackedPendingWork is the poll condition over every tracked submission.
func (u *SubmissionUseCase) HasTrackedPendingWork(ctx context.Context) bool {
	tracked, err := u.store.ListTracked(ctx)
	if err != nil {
		log.Printf("[eligibility][usecase] tracked list failed err=%v", err)
		return false
	}
	subs := make([]entities.Submission, 0, len(tracked))
	for _, t := range tracked {
		subs = append(subs, t.Submission)
	}
	return ShouldPoll(subs)
}

// RefreshTracked re-fetches every tracked submission still in flight. One
// failed refresh never stops the sweep; the next poll tick fires regardless.
func (u *SubmissionUseCase) RefreshTracked(ctx context.Context) {
	tracked, err := u.store.ListTracked(ctx)
	if err != nil {
		log.Printf("[eligibility][usecase] tracked sweep failed err=%v", err)
		return
	}
	for _, t := range tracked {
		if !t.Submission.HasPendingWork() {
			continue
		}
		if _, err := u.Get(ctx, t.SessionID, t.Submission.ID); err != nil {
			log.Printf("[eligibility][usecase] tracked refresh failed session=%s submission_id=%s err=%v", t.SessionID, t.Submission.ID, err)
		}
	}
}

func (u *SubmissionUseCase) recordVerification(ctx context.Context, s entities.Submission) {
	if u.history == nil {
		return
	}
	rec := entities.VerificationRecord{
		ID:                s.ID,
		MemberID:          s.Subscriber.MemberID,
		PayerName:         s.PayerName,
		QueueStatus:       s.QueueStatus,
		EligibilityStatus: s.EffectiveEligibility(),
		ServiceDate:       s.ServiceDate,
		CheckedAt:         time.Now().UTC(),
	}
	// Audit is best effort: a history write must never fail the refresh.
	if _, err := u.history.Append(ctx, rec); err != nil {
		log.Printf("[eligibility][usecase] history append failed submission_id=%s err=%v", s.ID, err)
	}
}

func (u *SubmissionUseCase) wake() {
	if u.notify != nil {
		u.notify()
	}
}

const defaultPageSize = 20

func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "status=404") || strings.Contains(msg, "not found") {
		return ErrSubmissionNotFound
	}
	if strings.Contains(msg, "status=502") || strings.Contains(msg, "status=503") || strings.Contains(msg, "connection refused") || strings.Contains(msg, "timeout") {
		return ErrGatewayUnavailable
	}
	return err
}
