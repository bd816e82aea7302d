package meeting

import (
	"strings"
	"testing"
)

func TestFallback(t *testing.T) {
	reasons := []string{ReasonNotFound, ReasonTooSmall, ReasonNoSpeech, "Transcription error: boom", ""}

	for _, reason := range reasons {
		t.Run(reason, func(t *testing.T) {
			b := Fallback(reason)

			for _, s := range b.Sections() {
				if strings.TrimSpace(s.Text) == "" {
					t.Errorf("field %s is empty", s.Field)
				}
			}
			if !strings.Contains(b.AbstractSummary, reason) {
				t.Errorf("AbstractSummary %q does not carry reason %q", b.AbstractSummary, reason)
			}
			if !b.IsFallback() || b.Provenance.Reason != reason {
				t.Errorf("Provenance = %+v", b.Provenance)
			}
		})
	}
}

func TestFallbackDeterministic(t *testing.T) {
	a, b := Fallback(ReasonNoSpeech), Fallback(ReasonNoSpeech)
	if a.AbstractSummary != b.AbstractSummary || a.KeyPoints != b.KeyPoints ||
		a.ActionItems != b.ActionItems || a.Sentiment != b.Sentiment {
		t.Errorf("Fallback() differs between calls: %+v vs %+v", a, b)
	}
	if a.Sentiment != "Neutral" || a.ActionItems != "No action items detected" {
		t.Errorf("unexpected placeholder fields: %+v", a)
	}
}

func TestSectionsOrder(t *testing.T) {
	b := Bundle{AbstractSummary: "s", KeyPoints: "k", ActionItems: "a", Sentiment: "m"}
	want := []string{"s", "k", "a", "m"}

	got := b.Sections()
	if len(got) != len(want) {
		t.Fatalf("Sections() len = %d", len(got))
	}
	for i, s := range got {
		if s.Text != want[i] {
			t.Errorf("Sections()[%d] = %q, want %q", i, s.Text, want[i])
		}
	}
}
