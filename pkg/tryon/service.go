package tryon

import (
	"context"
	"encoding/hex"
	"log/slog"
	"slices"

	"github.com/adrianliechti/tryon/pkg/imaging"
	"github.com/adrianliechti/tryon/pkg/provider"

	"github.com/google/uuid"
)

// Generator is the external service that composites the garment onto the
// person image. Submit returns the URL of the generated result; Fetch
// downloads it.
type Generator interface {
	Submit(ctx context.Context, person, garment provider.File) (string, error)
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type Service struct {
	generator Generator
}

func New(generator Generator) *Service {
	return &Service{
		generator: generator,
	}
}

// Result is the generated image, re-encoded and ready to stream.
type Result struct {
	Content     []byte
	ContentType string

	Filename string
}

// TryOn runs the full pipeline: validate both uploads, submit them, fetch
// the generated image and normalize it for the response. Uploads stay in
// memory only for the duration of the call.
func (s *Service) TryOn(ctx context.Context, person, garment provider.File) (*Result, error) {
	for _, upload := range []struct {
		field string
		file  provider.File
	}{
		{FieldPersonImage, person},
		{FieldGarmentImage, garment},
	} {
		if !slices.Contains(allowedContentTypes, upload.file.ContentType) {
			slog.WarnContext(ctx, "invalid upload content type", "field", upload.field, "content_type", upload.file.ContentType)
			return nil, &InvalidContentTypeError{Field: upload.field}
		}
	}

	if err := imaging.Validate(person.Content); err != nil {
		return nil, &UnreadableImageError{Field: FieldPersonImage}
	}

	if err := imaging.Validate(garment.Content); err != nil {
		return nil, &UnreadableImageError{Field: FieldGarmentImage}
	}

	url, err := s.generator.Submit(ctx, person, garment)

	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "downloading result image", "url", url)

	data, err := s.generator.Fetch(ctx, url)

	if err != nil {
		return nil, err
	}

	content, format, err := imaging.Normalize(data)

	if err != nil {
		return nil, err
	}

	id := uuid.New()

	result := &Result{
		Content:     content,
		ContentType: imaging.MediaType(format),

		Filename: "tryon_" + hex.EncodeToString(id[:]) + "." + format,
	}

	slog.InfoContext(ctx, "generated try-on image", "filename", result.Filename)

	return result, nil
}
