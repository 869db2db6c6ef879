package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"

	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var ErrInvalidImage = errors.New("invalid or unrecognized image data")

// Validate checks that data parses as a raster image. Only the header is
// decoded; dimensions and resolution are not constrained.
func Validate(data []byte) error {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return ErrInvalidImage
	}

	return nil
}

// Normalize decodes data and re-encodes it into a canonical output format.
// PNG and JPEG inputs keep their format; every other decodable format is
// coerced to PNG. The returned format token is "png" or "jpeg".
func Normalize(data []byte) ([]byte, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))

	if err != nil {
		return nil, "", ErrInvalidImage
	}

	if format != "png" && format != "jpeg" {
		format = "png"
	}

	var buf bytes.Buffer

	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, img, nil)
	default:
		err = png.Encode(&buf, img)
	}

	if err != nil {
		return nil, "", err
	}

	return buf.Bytes(), format, nil
}

func MediaType(format string) string {
	if format == "jpg" {
		format = "jpeg"
	}

	return "image/" + format
}
