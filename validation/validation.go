package validation

import (
	"net/url"
	"regexp"
	"strings"

	"ytbrief/errors"
)

// videoIDPattern matches the fixed-format token YouTube uses to address
// a video.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ExtractVideoID locates the video identifier in any of the accepted
// YouTube URL shapes: watch?v=, youtu.be/, /embed/, /shorts/, /live/
// and /v/. Every shape carrying the same identifier yields the same
// result. Failures are reported as values; no input panics and nothing
// here touches the network.
func (v *Validator) ExtractVideoID(rawURL string) (string, error) {
	const op = "Validator.ExtractVideoID"

	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", errors.InvalidURL(op, nil, "URL is required")
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.InvalidURL(op, err, "Invalid URL format")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return "", errors.InvalidURL(op, nil, "URL must use HTTP or HTTPS")
	}

	host := strings.TrimPrefix(parsedURL.Hostname(), "www.")

	var id string
	switch {
	case host == "youtu.be":
		id = firstPathSegment(parsedURL.Path)
	case host == "youtube.com" || strings.HasSuffix(host, ".youtube.com"):
		id = extractFromYouTubeURL(parsedURL)
	default:
		return "", errors.InvalidURL(op, nil, "Only YouTube URLs are supported")
	}

	if !videoIDPattern.MatchString(id) {
		return "", errors.InvalidURL(op, nil, "URL does not contain a valid YouTube video ID")
	}

	return id, nil
}

// ValidateURL reports whether the input carries a recognizable video
// identifier without returning it.
func (v *Validator) ValidateURL(rawURL string) error {
	_, err := v.ExtractVideoID(rawURL)
	return err
}

func extractFromYouTubeURL(u *url.URL) string {
	if id := u.Query().Get("v"); id != "" {
		return id
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 {
		return ""
	}

	switch segments[0] {
	case "embed", "shorts", "live", "v":
		return segments[1]
	}
	return ""
}

func firstPathSegment(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}
