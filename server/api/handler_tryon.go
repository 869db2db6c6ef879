package api

import (
	"io"
	"net/http"

	"github.com/adrianliechti/tryon/pkg/provider"
	"github.com/adrianliechti/tryon/pkg/tryon"
)

func (h *Handler) handleTryOn(w http.ResponseWriter, r *http.Request) {
	person, err := h.readUpload(r, tryon.FieldPersonImage)

	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	garment, err := h.readUpload(r, tryon.FieldGarmentImage)

	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	s := tryon.New(h.Generator())

	result, err := s.TryOn(r.Context(), *person, *garment)

	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+result.Filename)

	w.Write(result.Content)
}

func (h *Handler) readUpload(r *http.Request, field string) (*provider.File, error) {
	file, header, err := r.FormFile(field)

	if err != nil {
		return nil, &tryon.MissingUploadError{Field: field}
	}

	defer file.Close()

	data, err := io.ReadAll(file)

	if err != nil {
		return nil, err
	}

	return &provider.File{
		Name: header.Filename,

		Content:     data,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}
