package models

import "testing"

func TestNewTranscriptCounts(t *testing.T) {
	transcript := NewTranscript("dQw4w9WgXcQ", "en", "Hello world. This is a test.")

	if transcript.WordCount != 6 {
		t.Errorf("expected word count 6, got %d", transcript.WordCount)
	}
	if transcript.CharCount != 28 {
		t.Errorf("expected char count 28, got %d", transcript.CharCount)
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		input    string
		expected SummaryLength
	}{
		{"short", LengthShort},
		{"medium", LengthMedium},
		{"long", LengthLong},
		{"LONG", LengthLong},
		{" short ", LengthShort},
		{"", LengthMedium},
		{"gigantic", LengthMedium},
	}

	for _, tt := range tests {
		if got := ParseLength(tt.input); got != tt.expected {
			t.Errorf("ParseLength(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestWordTarget(t *testing.T) {
	tests := []struct {
		length   SummaryLength
		expected int
	}{
		{LengthShort, 100},
		{LengthMedium, 300},
		{LengthLong, 600},
	}

	for _, tt := range tests {
		if got := tt.length.WordTarget(); got != tt.expected {
			t.Errorf("%v.WordTarget() = %d, want %d", tt.length, got, tt.expected)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "en"},
		{"ES", "es"},
		{" fr ", "fr"},
		{"", "en"},
		{"klingon", "en"},
	}

	for _, tt := range tests {
		if got := ParseLanguage(tt.input); got != tt.expected {
			t.Errorf("ParseLanguage(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestLanguageName(t *testing.T) {
	if got := LanguageName("es"); got != "Spanish" {
		t.Errorf("LanguageName(es) = %q, want Spanish", got)
	}
	if got := LanguageName("unknown"); got != "English" {
		t.Errorf("LanguageName(unknown) = %q, want English", got)
	}
}

func TestNewBriefResponse(t *testing.T) {
	transcript := NewTranscript("dQw4w9WgXcQ", "en", "Hello world.")
	brief := &Brief{
		VideoID:    "dQw4w9WgXcQ",
		Transcript: transcript,
		Summary:    &Summary{Text: "A summary."},
	}

	resp := NewBriefResponse(brief)
	if resp.Stats == nil || resp.Stats.WordCount != 2 {
		t.Errorf("unexpected stats: %+v", resp.Stats)
	}
	if resp.Summary.Text != "A summary." {
		t.Errorf("unexpected summary: %+v", resp.Summary)
	}

	// Without a transcript there are no stats.
	resp = NewBriefResponse(&Brief{VideoID: "dQw4w9WgXcQ"})
	if resp.Stats != nil {
		t.Errorf("expected nil stats, got %+v", resp.Stats)
	}
}
