package models

import "strings"

// Transcript is the concatenated caption text for a single video.
type Transcript struct {
	VideoID   string `json:"video_id"`
	Language  string `json:"language"`
	Text      string `json:"text"`
	WordCount int    `json:"word_count"`
	CharCount int    `json:"char_count"`
}

// NewTranscript fills in the length statistics from the text.
func NewTranscript(videoID, language, text string) *Transcript {
	return &Transcript{
		VideoID:   videoID,
		Language:  language,
		Text:      text,
		WordCount: len(strings.Fields(text)),
		CharCount: len([]rune(text)),
	}
}

type SummaryLength string

const (
	LengthShort  SummaryLength = "short"
	LengthMedium SummaryLength = "medium"
	LengthLong   SummaryLength = "long"
)

// WordTarget maps a length preference to an approximate word count for
// the prompt.
func (l SummaryLength) WordTarget() int {
	switch l {
	case LengthShort:
		return 100
	case LengthLong:
		return 600
	default:
		return 300
	}
}

// ParseLength normalizes a user-supplied length preference, falling back
// to medium for anything unrecognized.
func ParseLength(s string) SummaryLength {
	switch SummaryLength(strings.ToLower(strings.TrimSpace(s))) {
	case LengthShort:
		return LengthShort
	case LengthLong:
		return LengthLong
	default:
		return LengthMedium
	}
}

// SummaryOptions is the per-request summary configuration supplied by
// the user.
type SummaryOptions struct {
	Language string        `json:"language"`
	Length   SummaryLength `json:"length"`
}

type Summary struct {
	Text      string        `json:"text"`
	Language  string        `json:"language"`
	Length    SummaryLength `json:"length"`
	Model     string        `json:"model"`
	Truncated bool          `json:"truncated"`
	WordCount int           `json:"word_count"`
}

// Brief is the result of one pipeline run. Summary may be nil when
// summarization failed after the transcript was already fetched.
type Brief struct {
	VideoID    string      `json:"video_id"`
	Transcript *Transcript `json:"transcript"`
	Summary    *Summary    `json:"summary,omitempty"`
}
