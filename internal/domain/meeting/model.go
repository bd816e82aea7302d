package meeting

import "time"

const (
	SourceTranscript = "transcript"
	SourceFallback   = "fallback"
)

// Fallback reasons reported by the analysis pipeline.
const (
	ReasonNotFound = "Audio file not found"
	ReasonTooSmall = "Audio file too small"
	ReasonNoSpeech = "No speech detected in recording"
)

const (
	fallbackKeyPoints   = "1. Meeting audio recorded\n2. Transcription unavailable\n3. Audio playback available"
	fallbackActionItems = "No action items detected"
	fallbackSentiment   = "Neutral"
)

// Bundle is the analysis of one recording. All four text fields are always set.
type Bundle struct {
	AbstractSummary string     `json:"abstract_summary" yaml:"abstract_summary"`
	KeyPoints       string     `json:"key_points" yaml:"key_points"`
	ActionItems     string     `json:"action_items" yaml:"action_items"`
	Sentiment       string     `json:"sentiment" yaml:"sentiment"`
	Provenance      Provenance `json:"provenance" yaml:"provenance"`
}

// Provenance records how a Bundle was produced.
type Provenance struct {
	Source          string    `json:"source" yaml:"source"`
	Reason          string    `json:"reason,omitempty" yaml:"reason,omitempty"`
	RunID           string    `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	AudioPath       string    `json:"audio_path,omitempty" yaml:"audio_path,omitempty"`
	TranscriptChars int       `json:"transcript_chars,omitempty" yaml:"transcript_chars,omitempty"`
	FailedFields    []string  `json:"failed_fields,omitempty" yaml:"failed_fields,omitempty"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
}

// Fallback returns the placeholder bundle used when no transcript can be analyzed.
func Fallback(reason string) Bundle {
	return Bundle{
		AbstractSummary: "Meeting was recorded. " + reason,
		KeyPoints:       fallbackKeyPoints,
		ActionItems:     fallbackActionItems,
		Sentiment:       fallbackSentiment,
		Provenance: Provenance{
			Source: SourceFallback,
			Reason: reason,
		},
	}
}

// IsFallback reports whether b came from Fallback.
func (b Bundle) IsFallback() bool {
	return b.Provenance.Source == SourceFallback
}

// Field names, in the order they are reported.
const (
	FieldAbstractSummary = "abstract_summary"
	FieldKeyPoints       = "key_points"
	FieldActionItems     = "action_items"
	FieldSentiment       = "sentiment"
)

// Section is one titled text field of a Bundle.
type Section struct {
	Field string
	Title string
	Text  string
}

// Sections lists the four text fields with display titles.
func (b Bundle) Sections() []Section {
	return []Section{
		{FieldAbstractSummary, "Summary", b.AbstractSummary},
		{FieldKeyPoints, "Key Points", b.KeyPoints},
		{FieldActionItems, "Action Items", b.ActionItems},
		{FieldSentiment, "Sentiment", b.Sentiment},
	}
}
