package video

import (
	"context"

	"github.com/sirupsen/logrus"

	"ytbrief/models"
	"ytbrief/services/summary"
	"ytbrief/services/transcript"
	"ytbrief/validation"
)

// Service runs the normalize, fetch, summarize pipeline for one
// user-triggered action. Each invocation is independent; nothing is
// retained between requests.
type Service interface {
	// Brief runs the full pipeline. When summarization fails after the
	// transcript was fetched, the returned Brief still carries the
	// transcript alongside the error.
	Brief(ctx context.Context, rawURL string, opts models.SummaryOptions, apiKey string) (*models.Brief, error)

	// Transcript fetches the transcript only.
	Transcript(ctx context.Context, rawURL string) (*models.Transcript, error)
}

type Config struct {
	// Languages is the preferred transcript language list, in order.
	Languages []string
}

type service struct {
	transcripts transcript.Service
	summaries   summary.Service
	validator   *validation.Validator
	config      Config
	logger      *logrus.Logger
}

func NewService(
	transcripts transcript.Service,
	summaries summary.Service,
	validator *validation.Validator,
	config Config,
) Service {
	return &service{
		transcripts: transcripts,
		summaries:   summaries,
		validator:   validator,
		config:      config,
		logger:      logrus.StandardLogger(),
	}
}

func (s *service) Brief(ctx context.Context, rawURL string, opts models.SummaryOptions, apiKey string) (*models.Brief, error) {
	const op = "VideoService.Brief"
	logger := s.logger.WithFields(logrus.Fields{
		"operation": op,
		"url":       rawURL,
	})

	videoID, err := s.validator.ExtractVideoID(rawURL)
	if err != nil {
		logger.WithError(err).Info("URL validation failed")
		return nil, err
	}

	fetched, err := s.transcripts.Fetch(ctx, videoID, s.config.Languages)
	if err != nil {
		return nil, err
	}

	brief := &models.Brief{
		VideoID:    videoID,
		Transcript: fetched,
	}

	generated, err := s.summaries.Summarize(ctx, fetched, opts, apiKey)
	if err != nil {
		// Partial result: the transcript is still usable.
		logger.WithError(err).Warn("Summarization failed after transcript fetch")
		return brief, err
	}

	brief.Summary = generated
	logger.WithField("video_id", videoID).Info("Brief completed")
	return brief, nil
}

func (s *service) Transcript(ctx context.Context, rawURL string) (*models.Transcript, error) {
	const op = "VideoService.Transcript"

	videoID, err := s.validator.ExtractVideoID(rawURL)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"operation": op,
			"url":       rawURL,
		}).WithError(err).Info("URL validation failed")
		return nil, err
	}

	return s.transcripts.Fetch(ctx, videoID, s.config.Languages)
}
