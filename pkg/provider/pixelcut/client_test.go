package pixelcut_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/tryon/pkg/provider"
	"github.com/adrianliechti/tryon/pkg/provider/pixelcut"

	"github.com/stretchr/testify/require"
)

func testFiles() (provider.File, provider.File) {
	person := provider.File{
		Name:        "person.jpg",
		Content:     []byte("person-bytes"),
		ContentType: "image/jpeg",
	}

	garment := provider.File{
		Name:        "garment.png",
		Content:     []byte("garment-bytes"),
		ContentType: "image/png",
	}

	return person, garment
}

func TestSubmit(t *testing.T) {
	person, garment := testFiles()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "test-key", r.Header.Get("X-API-KEY"))
		require.Equal(t, "application/json", r.Header.Get("Accept"))

		require.NoError(t, r.ParseMultipartForm(1<<20))

		for field, content := range map[string]string{
			"person_image":  "person-bytes",
			"garment_image": "garment-bytes",
		} {
			file, header, err := r.FormFile(field)
			require.NoError(t, err)

			data, err := io.ReadAll(file)
			require.NoError(t, err)
			require.Equal(t, content, string(data))
			require.NotEmpty(t, header.Header.Get("Content-Type"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"image_url": "https://cdn.example.com/result.png"}`))
	}))

	defer server.Close()

	client, err := pixelcut.New(server.URL, "test-key")
	require.NoError(t, err)

	url, err := client.Submit(context.Background(), person, garment)
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/result.png", url)
}

func TestSubmitResultKeyOrder(t *testing.T) {
	person, garment := testFiles()

	tests := []struct {
		name string
		body string
		url  string
	}{
		{
			name: "image_url wins",
			body: `{"image_url": "https://x/a.png", "url": "https://x/b.png"}`,
			url:  "https://x/a.png",
		},
		{
			name: "url fallback",
			body: `{"url": "https://x/b.png", "result_url": "https://x/c.png"}`,
			url:  "https://x/b.png",
		},
		{
			name: "result_url fallback",
			body: `{"result_url": "https://x/c.png"}`,
			url:  "https://x/c.png",
		},
		{
			name: "empty values skipped",
			body: `{"image_url": "", "url": "https://x/b.png"}`,
			url:  "https://x/b.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))

			defer server.Close()

			client, err := pixelcut.New(server.URL, "test-key")
			require.NoError(t, err)

			url, err := client.Submit(context.Background(), person, garment)
			require.NoError(t, err)
			require.Equal(t, tt.url, url)
		})
	}
}

func TestSubmitMalformedResponse(t *testing.T) {
	person, garment := testFiles()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))

	defer server.Close()

	client, err := pixelcut.New(server.URL, "test-key")
	require.NoError(t, err)

	_, err = client.Submit(context.Background(), person, garment)
	require.ErrorIs(t, err, pixelcut.ErrMalformedResponse)
}

func TestSubmitMissingResultURL(t *testing.T) {
	person, garment := testFiles()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "done", "image_url": ""}`))
	}))

	defer server.Close()

	client, err := pixelcut.New(server.URL, "test-key")
	require.NoError(t, err)

	_, err = client.Submit(context.Background(), person, garment)
	require.ErrorIs(t, err, pixelcut.ErrMissingResultURL)
}

func TestSubmitUpstreamStatus(t *testing.T) {
	person, garment := testFiles()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	defer server.Close()

	client, err := pixelcut.New(server.URL, "test-key")
	require.NoError(t, err)

	_, err = client.Submit(context.Background(), person, garment)

	var respErr *pixelcut.ResponseError
	require.ErrorAs(t, err, &respErr)
	require.Equal(t, http.StatusBadGateway, respErr.StatusCode)
}

func TestSubmitTransportError(t *testing.T) {
	person, garment := testFiles()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := pixelcut.New(server.URL, "test-key")
	require.NoError(t, err)

	_, err = client.Submit(context.Background(), person, garment)

	var transportErr *pixelcut.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "GET", r.Method)
		w.Write([]byte("image-bytes"))
	}))

	defer server.Close()

	client, err := pixelcut.New("https://api.example.com/tryon", "test-key")
	require.NoError(t, err)

	data, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, []byte("image-bytes"), data)
}

func TestFetchMalformedURL(t *testing.T) {
	client, err := pixelcut.New("https://api.example.com/tryon", "test-key")
	require.NoError(t, err)

	// url taken from an upstream response body, control characters included
	_, err = client.Fetch(context.Background(), "https://x/\x01result.png")

	var transportErr *pixelcut.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestFetchUpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	defer server.Close()

	client, err := pixelcut.New("https://api.example.com/tryon", "test-key")
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), server.URL)

	var respErr *pixelcut.ResponseError
	require.ErrorAs(t, err, &respErr)
	require.Equal(t, http.StatusNotFound, respErr.StatusCode)
}

func TestNewValidation(t *testing.T) {
	_, err := pixelcut.New("", "key")
	require.Error(t, err)

	_, err = pixelcut.New("https://api.example.com/tryon", "")
	require.Error(t, err)
}
