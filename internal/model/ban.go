package model

import "time"

// BanState is the explicit per-address state; absence of a BanRecord means
// BanClear.
type BanState int

const (
	BanClear BanState = iota
	BanShort
	BanLong
)

func (s BanState) String() string {
	switch s {
	case BanShort:
		return "short"
	case BanLong:
		return "long"
	default:
		return "clear"
	}
}

// BanRecord tracks one client address's ban history. It lives only in the
// configured BanStore (process memory by default), so a restart clears it.
// JSON tags are the wire form used by the redis-backed store.
type BanRecord struct {
	BanUntil         time.Time `json:"banUntil"`
	BanCount         int       `json:"banCount"`
	BannedFor24Hours bool      `json:"bannedFor24Hours"`
}

// StateAt reports the active state at the given instant. An expired ban is
// BanClear here; whether the record is deleted or left inert on expiry is the
// ban service's call.
func (r *BanRecord) StateAt(now time.Time) BanState {
	if r == nil || !r.BanUntil.After(now) {
		return BanClear
	}
	if r.BannedFor24Hours {
		return BanLong
	}
	return BanShort
}
