package domain

import (
	"encoding/json"
	"time"
)

// DocumentSnapshot is the last known result of a named query.
type DocumentSnapshot struct {
	Key       string          `json:"key"`
	QueryName string          `json:"query_name"`
	Document  json.RawMessage `json:"document"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// Age reports how old the snapshot is relative to now.
func (s *DocumentSnapshot) Age(now time.Time) time.Duration {
	if s == nil {
		return 0
	}
	return now.Sub(s.FetchedAt)
}
