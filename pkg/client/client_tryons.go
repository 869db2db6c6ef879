package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/adrianliechti/tryon/pkg/provider"
)

type TryonService struct {
	Options []RequestOption
}

func NewTryonService(opts ...RequestOption) TryonService {
	return TryonService{
		Options: opts,
	}
}

type TryonRequest struct {
	Person  provider.File
	Garment provider.File
}

func (r *TryonService) New(ctx context.Context, input TryonRequest, opts ...RequestOption) (*provider.File, error) {
	c := newRequestConfig(append(r.Options, opts...)...)
	url := strings.TrimRight(c.URL, "/") + "/vton/"

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	for _, upload := range []struct {
		field string
		provider.File
	}{
		{"person_image", input.Person},
		{"garment_image", input.Garment},
	} {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+upload.field+`"; filename="`+upload.Name+`"`)
		header.Set("Content-Type", upload.ContentType)

		part, err := w.CreatePart(header)

		if err != nil {
			return nil, err
		}

		if _, err := part.Write(upload.Content); err != nil {
			return nil, err
		}
	}

	w.Close()

	req, err := http.NewRequestWithContext(ctx, "POST", url, &b)

	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return &provider.File{
		Name: resultFilename(resp),

		Content:     data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

func resultFilename(resp *http.Response) string {
	_, params, _ := mime.ParseMediaType(resp.Header.Get("Content-Disposition"))
	return params["filename"]
}

func convertError(resp *http.Response) error {
	var payload struct {
		Detail string `json:"detail"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Detail != "" {
		return errors.New(payload.Detail)
	}

	return errors.New(resp.Status)
}
