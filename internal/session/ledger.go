package session

import "time"

// Entry is one completed interactive translation. Entries are immutable
// once appended.
type Entry struct {
	OriginalText   string    `json:"original"`
	TranslatedText string    `json:"translated"`
	SourceLabel    string    `json:"source"`
	TargetLabel    string    `json:"target"`
	Timestamp      time.Time `json:"timestamp"`
}

// Ledger is an append-only, session-scoped log of completed translations.
// It lives only for the duration of the session.
type Ledger struct {
	entries []Entry
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Append adds an entry to the end of the log.
func (l *Ledger) Append(entry Entry) {
	if l == nil {
		return
	}
	l.entries = append(l.entries, entry)
}

// NewestFirst returns the log in reverse insertion order. The underlying
// log order is not mutated.
func (l *Ledger) NewestFirst() []Entry {
	if l == nil || len(l.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(l.entries))
	for i, entry := range l.entries {
		out[len(l.entries)-1-i] = entry
	}
	return out
}

// Clear empties the log.
func (l *Ledger) Clear() {
	if l == nil {
		return
	}
	l.entries = nil
}

// Len reports the number of entries.
func (l *Ledger) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}
