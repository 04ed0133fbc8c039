// Package session holds the per-session mutable state of the interactive
// translator: the current language pair selection and the translation
// history ledger. State is owned by exactly one logical actor and is never
// shared across sessions or persisted.
package session

import (
	"horse.fit/polyglot/internal/language"
)

// DefaultTargetName is the target selection a fresh session starts with.
const DefaultTargetName = "urdu"

// State is the single-session selection state plus its history ledger.
type State struct {
	// Source and Target are display names. Source may be the reserved
	// automatic-detection label; Target never is.
	Source  string
	Target  string
	History *Ledger
}

// NewState initializes a session with automatic detection as the source and
// the fixed default target language.
func NewState() *State {
	return &State{
		Source:  language.AutoName,
		Target:  DefaultTargetName,
		History: NewLedger(),
	}
}

// SwapPair applies the language pair swap policy. The new source is always
// the old target (targets are concrete languages by construction). The new
// target is the old source only when the source is not the reserved
// automatic-detection label; otherwise the target keeps its previous value,
// because a target must never become the pseudo-language.
func SwapPair(source, target string) (newSource, newTarget string) {
	newSource = target
	newTarget = target
	if source != language.AutoName {
		newTarget = source
	}
	return newSource, newTarget
}

// Swap exchanges the session's language pair under the swap policy.
func (s *State) Swap() {
	if s == nil {
		return
	}
	s.Source, s.Target = SwapPair(s.Source, s.Target)
}
