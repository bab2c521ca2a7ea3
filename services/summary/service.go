package summary

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"ytbrief/errors"
	"ytbrief/models"
)

//go:embed prompts/system.md
var systemPrompt string

// Service turns a transcript into a summary with one completion call.
type Service interface {
	Summarize(ctx context.Context, transcript *models.Transcript, opts models.SummaryOptions, apiKey string) (*models.Summary, error)
}

// CompletionRequest is a single prompt sent to the completion provider.
type CompletionRequest struct {
	System    string
	User      string
	APIKey    string
	MaxTokens int
}

// Completer is the boundary to the external completion API. Tests swap
// in deterministic implementations.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type Config struct {
	Model         string
	MaxTokens     int
	Temperature   float64
	MaxInputChars int
}

type service struct {
	completer Completer
	config    Config
	logger    *logrus.Logger
}

func NewService(completer Completer, config Config) Service {
	return &service{
		completer: completer,
		config:    config,
		logger:    logrus.StandardLogger(),
	}
}

func (s *service) Summarize(ctx context.Context, transcript *models.Transcript, opts models.SummaryOptions, apiKey string) (*models.Summary, error) {
	const op = "SummaryService.Summarize"

	if apiKey == "" {
		return nil, errors.SummarizationFailed(op, errors.KindAuth, nil,
			"An API key is required. Set ANTHROPIC_API_KEY or enter one in the form.")
	}
	if transcript == nil || strings.TrimSpace(transcript.Text) == "" {
		return nil, errors.InvalidInput(op, nil, "Transcript text is empty")
	}

	logger := s.logger.WithFields(logrus.Fields{
		"operation": op,
		"video_id":  transcript.VideoID,
		"language":  opts.Language,
		"length":    opts.Length,
	})

	// Keep the earliest portion when the transcript exceeds the input
	// limit. Truncated is surfaced on the result so the tradeoff is
	// visible to the user instead of silently dropping the ending.
	text, truncated := truncate(transcript.Text, s.config.MaxInputChars)
	if truncated {
		logger.WithField("max_chars", s.config.MaxInputChars).Info("Transcript truncated for summarization")
	}

	wordTarget := opts.Length.WordTarget()
	req := CompletionRequest{
		System:    systemPrompt,
		User:      buildUserPrompt(text, opts.Language, wordTarget),
		APIKey:    apiKey,
		MaxTokens: maxTokensFor(wordTarget, s.config.MaxTokens),
	}

	completion, err := s.completer.Complete(ctx, req)
	if err != nil {
		kind := classify(err)
		logger.WithError(err).WithField("kind", kind).Error("Completion request failed")
		return nil, errors.SummarizationFailed(op, kind, err, failureMessage(kind))
	}

	completion = strings.TrimSpace(completion)
	if completion == "" {
		logger.Error("Completion API returned an empty response")
		return nil, errors.SummarizationFailed(op, errors.KindEmptyResponse, nil,
			"The summarization service returned an empty response. Please try again.")
	}

	logger.WithField("summary_words", len(strings.Fields(completion))).Info("Summary generated")

	return &models.Summary{
		Text:      completion,
		Language:  opts.Language,
		Length:    opts.Length,
		Model:     s.config.Model,
		Truncated: truncated,
		WordCount: len(strings.Fields(completion)),
	}, nil
}

func buildUserPrompt(text, language string, wordTarget int) string {
	return fmt.Sprintf(
		"Please summarize this YouTube video transcript in %s, in about %d words:\n\n%s",
		models.LanguageName(language), wordTarget, text,
	)
}

// truncate keeps the earliest maxChars bytes of text, backing up to a
// rune boundary so the prompt never carries a broken character.
func truncate(text string, maxChars int) (string, bool) {
	if maxChars <= 0 || len(text) <= maxChars {
		return text, false
	}
	for maxChars > 0 && !utf8.RuneStart(text[maxChars]) {
		maxChars--
	}
	return text[:maxChars], true
}

// maxTokensFor sizes the completion budget from the word target,
// bounded by the configured cap.
func maxTokensFor(wordTarget, limit int) int {
	tokens := wordTarget * 2
	if limit > 0 && tokens > limit {
		return limit
	}
	return tokens
}

// classify narrows a provider error into the failure taxonomy. The
// completion library surfaces transport problems as wrapped strings, so
// this matches on the markers the API puts in them.
func classify(err error) errors.Kind {
	if err == nil {
		return errors.KindNetwork
	}
	message := strings.ToLower(err.Error())
	switch {
	case strings.Contains(message, "401"),
		strings.Contains(message, "unauthorized"),
		strings.Contains(message, "authentication"),
		strings.Contains(message, "invalid x-api-key"),
		strings.Contains(message, "api key"):
		return errors.KindAuth
	case strings.Contains(message, "429"),
		strings.Contains(message, "rate limit"),
		strings.Contains(message, "quota"),
		strings.Contains(message, "overloaded"):
		return errors.KindRateLimit
	default:
		return errors.KindNetwork
	}
}

func failureMessage(kind errors.Kind) string {
	switch kind {
	case errors.KindAuth:
		return "Summarization failed: check your API key."
	case errors.KindRateLimit:
		return "Summarization failed: rate limit or quota exceeded. Try again later."
	default:
		return "Summarization failed: the service is unavailable. Try again later."
	}
}
