package service

import (
	"context"
	"quiz_backend/internal/config"
	"quiz_backend/internal/model"
	"quiz_backend/pkg/logger"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	MsgShortBan = "Too many requests from this IP, please try again after 15 minutes"
	MsgLongBan  = "Your IP address has been banned for 24 hours due to repeated excessive requests."
)

// BanStore holds one BanRecord per client address. Implementations must be
// safe for concurrent use; see repository.MemoryBanStore and
// repository.RedisBanStore.
type BanStore interface {
	Get(ctx context.Context, addr string) (*model.BanRecord, error)
	Set(ctx context.Context, addr string, rec model.BanRecord) error
	Delete(ctx context.Context, addr string) error
}

// Decision is the outcome of one ban/rate-limit check.
type Decision struct {
	Allowed bool
	State   model.BanState
	Message string
}

var allow = Decision{Allowed: true, State: model.BanClear}

// window is a fixed-window request counter; the count resets entirely at the
// window boundary rather than sliding.
type window struct {
	start time.Time
	count int
}

// BanService counts requests per client address in a fixed window and applies
// escalating bans: the first violation is a 15-minute ban, a violation by an
// address that already served a short ban becomes a 24-hour ban. Window
// counters are always in process memory; only the ban records go through the
// injected store.
type BanService struct {
	store       BanStore
	maxRequests int
	windowLen   time.Duration
	shortBan    time.Duration
	longBan     time.Duration

	mu      sync.Mutex
	windows map[string]*window

	now func() time.Time
}

func NewBanService(store BanStore, cfg *config.RateLimitConfig) *BanService {
	return &BanService{
		store:       store,
		maxRequests: cfg.MaxRequests,
		windowLen:   cfg.Window(),
		shortBan:    cfg.ShortBan(),
		longBan:     cfg.LongBan(),
		windows:     make(map[string]*window),
		now:         time.Now,
	}
}

// Check decides whether a request from addr may proceed. Exempt requests
// (illustration fetches) skip the window counter but are still rejected by an
// already-active ban. The counter check runs first, so requests pouring in
// during an active short ban keep producing violations and escalate.
func (s *BanService) Check(ctx context.Context, addr string, exempt bool) Decision {
	now := s.now()

	if !exempt && s.bump(addr, now) {
		return s.violation(ctx, addr, now)
	}

	rec, err := s.store.Get(ctx, addr)
	if err != nil {
		// Best effort: an unreachable store must not take the API down.
		logger.Log.Error("ban store read failed", zap.String("addr", addr), zap.Error(err))
		return allow
	}

	switch rec.StateAt(now) {
	case model.BanShort:
		return Decision{State: model.BanShort, Message: MsgShortBan}
	case model.BanLong:
		return Decision{State: model.BanLong, Message: MsgLongBan}
	}

	// An expired 24-hour ban is removed on the next check; an expired short
	// ban is left inert and simply overwritten by the next violation.
	if rec != nil && rec.BannedFor24Hours {
		if err := s.store.Delete(ctx, addr); err != nil {
			logger.Log.Error("ban store delete failed", zap.String("addr", addr), zap.Error(err))
		}
	}

	return allow
}

// bump counts the request against addr's current window and reports whether
// the threshold was exceeded.
func (s *BanService) bump(addr string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.windows[addr]
	if w == nil || now.Sub(w.start) >= s.windowLen {
		w = &window{start: now}
		s.windows[addr] = w
	}
	w.count++
	return w.count > s.maxRequests
}

// violation records the new ban for addr and returns the matching denial. A
// repeat offender (banCount already >= 1) escalates straight to the 24-hour
// ban with its count reset, so a later violation starts the cycle over.
func (s *BanService) violation(ctx context.Context, addr string, now time.Time) Decision {
	rec, err := s.store.Get(ctx, addr)
	if err != nil {
		logger.Log.Error("ban store read failed", zap.String("addr", addr), zap.Error(err))
	}
	if rec == nil {
		rec = &model.BanRecord{}
	}

	if rec.BanCount >= 1 {
		*rec = model.BanRecord{
			BanUntil:         now.Add(s.longBan),
			BannedFor24Hours: true,
		}
		if err := s.store.Set(ctx, addr, *rec); err != nil {
			logger.Log.Error("ban store write failed", zap.String("addr", addr), zap.Error(err))
		}
		logger.Log.Warn("client banned for 24 hours", zap.String("addr", addr))
		return Decision{State: model.BanLong, Message: MsgLongBan}
	}

	rec.BanUntil = now.Add(s.shortBan)
	rec.BanCount++
	rec.BannedFor24Hours = false
	if err := s.store.Set(ctx, addr, *rec); err != nil {
		logger.Log.Error("ban store write failed", zap.String("addr", addr), zap.Error(err))
	}
	logger.Log.Warn("client rate limited", zap.String("addr", addr), zap.Time("until", rec.BanUntil))
	return Decision{State: model.BanShort, Message: MsgShortBan}
}

// SweepStaleWindows drops counters whose window has long passed. Ban records
// are deliberately not swept; expired 24-hour bans are removed lazily by the
// next check from that address.
func (s *BanService) SweepStaleWindows() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for addr, w := range s.windows {
		if now.Sub(w.start) >= 2*s.windowLen {
			delete(s.windows, addr)
		}
	}
}
