package session

import (
	"testing"
	"time"

	"horse.fit/polyglot/internal/language"
)

func TestNewStateDefaults(t *testing.T) {
	t.Parallel()

	state := NewState()
	if state.Source != language.AutoName {
		t.Fatalf("unexpected default source: %q", state.Source)
	}
	if state.Target != DefaultTargetName {
		t.Fatalf("unexpected default target: %q", state.Target)
	}
	if state.History == nil || state.History.Len() != 0 {
		t.Fatalf("expected an empty ledger")
	}
}

func TestSwapPairConcreteSource(t *testing.T) {
	t.Parallel()

	source, target := SwapPair("english", "french")
	if source != "french" || target != "english" {
		t.Fatalf("unexpected swap result: (%q, %q)", source, target)
	}
}

func TestSwapPairAutoSourceKeepsTarget(t *testing.T) {
	t.Parallel()

	source, target := SwapPair(language.AutoName, "french")
	if source != "french" {
		t.Fatalf("new source must be the old target, got %q", source)
	}
	if target != "french" {
		t.Fatalf("target must keep its previous value, got %q", target)
	}
}

func TestStateSwapIsRepeatable(t *testing.T) {
	t.Parallel()

	state := NewState()
	state.Source = "english"
	state.Target = "french"

	state.Swap()
	if state.Source != "french" || state.Target != "english" {
		t.Fatalf("unexpected pair after swap: (%q, %q)", state.Source, state.Target)
	}
	state.Swap()
	if state.Source != "english" || state.Target != "french" {
		t.Fatalf("expected a second swap to restore the pair, got (%q, %q)", state.Source, state.Target)
	}
}

func TestLedgerNewestFirst(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, text := range []string{"first", "second", "third"} {
		ledger.Append(Entry{
			OriginalText: text,
			Timestamp:    base.Add(time.Duration(i) * time.Minute),
		})
	}

	newest := ledger.NewestFirst()
	if len(newest) != 3 {
		t.Fatalf("unexpected entry count: %d", len(newest))
	}
	for i, want := range []string{"third", "second", "first"} {
		if newest[i].OriginalText != want {
			t.Fatalf("position %d: got %q want %q", i, newest[i].OriginalText, want)
		}
	}

	// The view must not disturb insertion order.
	again := ledger.NewestFirst()
	if again[0].OriginalText != "third" {
		t.Fatalf("second read disturbed order: %q", again[0].OriginalText)
	}
}

func TestLedgerClear(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ledger.Append(Entry{OriginalText: "hello"})
	ledger.Clear()

	if ledger.Len() != 0 {
		t.Fatalf("expected empty ledger, got %d entries", ledger.Len())
	}
	if got := ledger.NewestFirst(); got != nil {
		t.Fatalf("expected nil view after clear, got %v", got)
	}
}
