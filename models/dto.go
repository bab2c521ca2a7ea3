package models

// Stats reports the basic transcript statistics shown in the UI.
type Stats struct {
	WordCount int `json:"word_count"`
	CharCount int `json:"char_count"`
}

// BriefResponse represents the API response for a summarize request.
// Error and ErrorKind are set on partial results, when the transcript
// was fetched but summarization failed.
type BriefResponse struct {
	VideoID    string      `json:"video_id"`
	Summary    *Summary    `json:"summary,omitempty"`
	Transcript *Transcript `json:"transcript,omitempty"`
	Stats      *Stats      `json:"stats,omitempty"`
	Error      string      `json:"error,omitempty"`
	ErrorKind  string      `json:"error_kind,omitempty"`
}

// NewBriefResponse creates a response from a pipeline result.
func NewBriefResponse(b *Brief) *BriefResponse {
	resp := &BriefResponse{
		VideoID:    b.VideoID,
		Summary:    b.Summary,
		Transcript: b.Transcript,
	}
	if b.Transcript != nil {
		resp.Stats = &Stats{
			WordCount: b.Transcript.WordCount,
			CharCount: b.Transcript.CharCount,
		}
	}
	return resp
}
