package transcript

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"ytbrief/errors"
	"ytbrief/models"
)

// Service fetches the caption transcript for a video and flattens it
// into a single document.
type Service interface {
	Fetch(ctx context.Context, videoID string, languages []string) (*models.Transcript, error)
}

type service struct {
	provider Provider
	logger   *logrus.Logger
}

func NewService(provider Provider) Service {
	return &service{
		provider: provider,
		logger:   logrus.StandardLogger(),
	}
}

func (s *service) Fetch(ctx context.Context, videoID string, languages []string) (*models.Transcript, error) {
	const op = "TranscriptService.Fetch"
	logger := s.logger.WithFields(logrus.Fields{
		"operation": op,
		"video_id":  videoID,
	})

	result, err := s.provider.Transcript(ctx, videoID, languages)
	if err != nil {
		logger.WithError(err).Warn("Transcript fetch failed")
		return nil, errors.TranscriptUnavailable(op, err, unavailableMessage(err))
	}

	text := joinSegments(result.Segments)
	if text == "" {
		logger.Warn("Transcript provider returned no text")
		return nil, errors.TranscriptUnavailable(op, nil, "No transcript is available for this video")
	}

	language := result.Language
	if language == "" && len(languages) > 0 {
		language = languages[0]
	}

	transcript := models.NewTranscript(videoID, language, text)
	logger.WithFields(logrus.Fields{
		"language":   transcript.Language,
		"word_count": transcript.WordCount,
	}).Info("Transcript fetched")

	return transcript, nil
}

// joinSegments concatenates segment texts in order, discarding timing.
func joinSegments(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		if text := strings.TrimSpace(segment.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

func unavailableMessage(err error) string {
	if providerErr, ok := err.(*ProviderError); ok {
		switch providerErr.StatusCode {
		case http.StatusNotFound:
			return "No transcript is available for this video"
		case http.StatusForbidden:
			return "This video is private or restricted"
		case http.StatusGone:
			return "This video has been deleted"
		default:
			return "Transcript could not be fetched: " + providerErr.Message
		}
	}
	return "Transcript could not be fetched: " + err.Error()
}
