package tryon

// InvalidContentTypeError reports an upload whose declared content type is
// not JPEG or PNG.
type InvalidContentTypeError struct {
	Field string
}

func (e *InvalidContentTypeError) Error() string {
	return Label(e.Field) + " must be JPEG or PNG."
}

// UnreadableImageError reports an upload whose bytes do not parse as a
// raster image.
type UnreadableImageError struct {
	Field string
}

func (e *UnreadableImageError) Error() string {
	return Label(e.Field) + " is not a readable image."
}

// MissingUploadError reports an absent required upload field.
type MissingUploadError struct {
	Field string
}

func (e *MissingUploadError) Error() string {
	return Label(e.Field) + " is required."
}
