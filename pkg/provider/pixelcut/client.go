package pixelcut

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/adrianliechti/tryon/pkg/provider"
)

// resultKeys is the ordered list of response fields that may carry the
// generated image URL; the first present-and-non-empty value wins.
var resultKeys = []string{"image_url", "url", "result_url"}

type Client struct {
	client *http.Client

	url string
	key string
}

func New(url, key string, options ...Option) (*Client, error) {
	if url == "" {
		return nil, fmt.Errorf("pixelcut: endpoint url required")
	}

	if key == "" {
		return nil, fmt.Errorf("pixelcut: api key required")
	}

	c := &Client{
		client: &http.Client{
			Timeout: 60 * time.Second,
		},

		url: url,
		key: key,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

// Submit uploads both images and returns the URL of the generated result.
func (c *Client) Submit(ctx context.Context, person, garment provider.File) (string, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	for _, file := range []struct {
		field string
		provider.File
	}{
		{"person_image", person},
		{"garment_image", garment},
	} {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, file.field, file.Name))
		header.Set("Content-Type", file.ContentType)

		f, err := w.CreatePart(header)

		if err != nil {
			return "", err
		}

		if _, err := f.Write(file.Content); err != nil {
			return "", err
		}
	}

	w.Close()

	req, err := http.NewRequestWithContext(ctx, "POST", c.url, &b)

	if err != nil {
		return "", &TransportError{Err: err}
	}

	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-API-KEY", c.key)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)

	if err != nil {
		return "", &TransportError{Err: err}
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &ResponseError{StatusCode: resp.StatusCode}
	}

	var result map[string]any

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	for _, key := range resultKeys {
		if val, ok := result[key].(string); ok && val != "" {
			return val, nil
		}
	}

	return "", ErrMissingResultURL
}

// Fetch downloads the generated image. The url comes from the upstream
// response body, so even building the request can fail.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)

	if err != nil {
		return nil, &TransportError{Err: err}
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, &TransportError{Err: err}
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &ResponseError{StatusCode: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}
