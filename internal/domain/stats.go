package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Common validation errors for stats types.
var (
	ErrNegativeAttempts = errors.New("attempts cannot be negative")
	ErrCorrectExceeds   = errors.New("correct count cannot exceed attempts")
	ErrInvalidSession   = errors.New("session correct count cannot exceed total")
)

// SessionHistoryLimit caps the persisted session history. The oldest entry
// is evicted when a new one pushes the list past the cap.
const SessionHistoryLimit = 20

// QuestionRecord is the per-question attempt history. A question with no
// record is equivalent to the zero value: never attempted, never seen.
type QuestionRecord struct {
	Attempts int    `json:"attempts"`
	Correct  int    `json:"correct"`
	LastSeen string `json:"lastSeen"` // RFC 3339; empty until first answer
}

// Validate checks the record's counting invariants.
func (r QuestionRecord) Validate() error {
	if r.Attempts < 0 {
		return ErrNegativeAttempts
	}
	if r.Correct < 0 || r.Correct > r.Attempts {
		return ErrCorrectExceeds
	}
	return nil
}

// Accuracy returns the fraction of correct answers, or 0 for an
// unattempted record.
func (r QuestionRecord) Accuracy() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Attempts)
}

// LastSeenTime parses the LastSeen timestamp. The second return value is
// false when the record has never been seen or the stored value does not
// parse (corrupt data degrades to "never seen").
func (r QuestionRecord) LastSeenTime() (time.Time, bool) {
	if r.LastSeen == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, r.LastSeen)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// QuestionStatsMap maps question identifiers to their attempt history.
// Identifiers have the form "<mode>:<poolIndex>" and are stable as long as
// the content pool ordering is stable.
type QuestionStatsMap map[string]QuestionRecord

// QuestionID builds the stable identifier for the pool item at index i in
// the given mode's content pool.
func QuestionID(mode Mode, i int) string {
	return fmt.Sprintf("%s:%d", mode, i)
}

// ModeStats is the coarse per-mode running total.
type ModeStats struct {
	TotalAttempted int `json:"totalAttempted"`
	TotalCorrect   int `json:"totalCorrect"`
}

// Validate checks the counting invariants.
func (m ModeStats) Validate() error {
	if m.TotalAttempted < 0 {
		return ErrNegativeAttempts
	}
	if m.TotalCorrect < 0 || m.TotalCorrect > m.TotalAttempted {
		return ErrCorrectExceeds
	}
	return nil
}

// Accuracy returns the rounded integer percentage of correct answers,
// or 0 when nothing has been attempted.
func (m ModeStats) Accuracy() int {
	if m.TotalAttempted == 0 {
		return 0
	}
	return int(math.Round(float64(m.TotalCorrect) / float64(m.TotalAttempted) * 100))
}

// SessionRecord is a snapshot of one completed (or abandoned) practice
// session.
type SessionRecord struct {
	Mode    Mode   `json:"mode"`
	Date    string `json:"date"` // RFC 3339
	Total   int    `json:"total"`
	Correct int    `json:"correct"`
}

// Validate checks the session's counting invariants.
func (s SessionRecord) Validate() error {
	if s.Total < 0 {
		return ErrNegativeAttempts
	}
	if s.Correct < 0 || s.Correct > s.Total {
		return ErrInvalidSession
	}
	return nil
}

// Progress is the aggregate stats blob: per-mode running totals keyed by
// mode name plus the bounded session history, most recent first. Modes is
// a map rather than a fixed struct so adding a drill mode does not touch
// this type.
type Progress struct {
	Modes    map[Mode]ModeStats `json:"modes"`
	Sessions []SessionRecord    `json:"sessions"`
}

// NewProgress returns an empty Progress with zeroed totals for every
// known mode.
func NewProgress() *Progress {
	modes := make(map[Mode]ModeStats, len(AllModes))
	for _, m := range AllModes {
		modes[m] = ModeStats{}
	}
	return &Progress{
		Modes:    modes,
		Sessions: []SessionRecord{},
	}
}

// ModeStats returns the running total for the given mode, zero-valued if
// the mode has never been recorded.
func (p *Progress) ModeStats(mode Mode) ModeStats {
	if p.Modes == nil {
		return ModeStats{}
	}
	return p.Modes[mode]
}

// RecordAnswer increments the attempt counter for the mode, and the
// correct counter when the answer was right.
func (p *Progress) RecordAnswer(mode Mode, correct bool) {
	if p.Modes == nil {
		p.Modes = make(map[Mode]ModeStats)
	}
	stats := p.Modes[mode]
	stats.TotalAttempted++
	if correct {
		stats.TotalCorrect++
	}
	p.Modes[mode] = stats
}

// AddSession prepends the session to the history and truncates to
// SessionHistoryLimit entries.
func (p *Progress) AddSession(session SessionRecord) {
	p.Sessions = append([]SessionRecord{session}, p.Sessions...)
	if len(p.Sessions) > SessionHistoryLimit {
		p.Sessions = p.Sessions[:SessionHistoryLimit]
	}
}
