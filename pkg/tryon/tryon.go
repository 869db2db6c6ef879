package tryon

import (
	"strings"
)

const (
	FieldPersonImage  = "person_image"
	FieldGarmentImage = "garment_image"
)

var allowedContentTypes = []string{
	"image/jpeg",
	"image/png",
}

// Label turns a form field name into its human-readable form
// ("person_image" → "Person image") for client-facing messages.
func Label(field string) string {
	label := strings.ReplaceAll(field, "_", " ")

	if label == "" {
		return label
	}

	return strings.ToUpper(label[:1]) + label[1:]
}
