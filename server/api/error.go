package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/adrianliechti/tryon/pkg/imaging"
	"github.com/adrianliechti/tryon/pkg/provider/pixelcut"
	"github.com/adrianliechti/tryon/pkg/tryon"
)

// writeFailure is the single boundary between pipeline errors and transport
// responses. Structured client-triggered failures pass through with their
// message; everything else becomes a 500 with the error text preserved and
// the full error logged server-side.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var missingErr *tryon.MissingUploadError
	var invalidTypeErr *tryon.InvalidContentTypeError
	var unreadableErr *tryon.UnreadableImageError

	var transportErr *pixelcut.TransportError
	var responseErr *pixelcut.ResponseError

	switch {
	case errors.As(err, &missingErr):
		writeError(w, http.StatusBadRequest, missingErr.Error())

	case errors.As(err, &invalidTypeErr):
		writeError(w, http.StatusBadRequest, invalidTypeErr.Error())

	case errors.As(err, &unreadableErr):
		writeError(w, http.StatusBadRequest, unreadableErr.Error())

	case errors.As(err, &transportErr):
		slog.ErrorContext(r.Context(), "upstream communication failed", "error", transportErr.Err)
		writeError(w, http.StatusServiceUnavailable, "Failed to communicate with external VTON service. Please try again later. ("+transportErr.Err.Error()+")")

	case errors.As(err, &responseErr):
		slog.ErrorContext(r.Context(), "upstream returned error status", "status", responseErr.StatusCode)
		writeError(w, http.StatusInternalServerError, "External VTON service request failed.")

	case errors.Is(err, pixelcut.ErrMalformedResponse):
		slog.ErrorContext(r.Context(), "upstream returned invalid json", "error", err)
		writeError(w, http.StatusBadGateway, "External service returned unparseable response.")

	case errors.Is(err, pixelcut.ErrMissingResultURL):
		slog.ErrorContext(r.Context(), "upstream response missing image url")
		writeError(w, http.StatusInternalServerError, "External VTON service did not return an image URL.")

	case errors.Is(err, imaging.ErrInvalidImage):
		slog.ErrorContext(r.Context(), "upstream returned invalid image")
		writeError(w, http.StatusBadGateway, "External service returned an invalid or corrupted image.")

	default:
		slog.ErrorContext(r.Context(), "unexpected error", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected internal error occurred: "+err.Error())
	}
}
