package handlers

import (
	"fmt"
	"net/http"
	"regexp"

	"ytbrief/errors"
	"ytbrief/utils"
)

var exportIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Export serves the text the client already holds as a downloadable
// plain-text file. Nothing is stored server-side; the browser posts the
// rendered summary or transcript back for attachment headers.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	const op = "Handler.Export"

	if r.Method != http.MethodPost {
		utils.RespondWithJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	kind := r.FormValue("kind")
	if kind != "summary" && kind != "transcript" {
		utils.RespondWithError(w, errors.InvalidInput(op, nil, "Kind must be summary or transcript"))
		return
	}

	videoID := r.FormValue("video_id")
	if !exportIDPattern.MatchString(videoID) {
		utils.RespondWithError(w, errors.InvalidInput(op, nil, "A valid video ID is required"))
		return
	}

	text := r.FormValue("text")
	if text == "" {
		utils.RespondWithError(w, errors.InvalidInput(op, nil, "Text is required"))
		return
	}

	if kind == "transcript" {
		text = utils.FormatText(text)
	}

	filename := fmt.Sprintf("youtube_%s_%s.txt", kind, videoID)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}
