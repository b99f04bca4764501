package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFetch(t *testing.T) {
	body := pngBytes(t, 4, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)
	data, err := f.Fetch(context.Background(), srv.URL+"/img.png")
	require.NoError(t, err)
	assert.Equal(t, body, data)
}

func TestFetch_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)
	_, err := f.Fetch(context.Background(), srv.URL+"/missing.png")
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetch_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	f := NewFetcher(time.Second)
	_, err := f.Fetch(context.Background(), url)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestProbe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(pngBytes(t, 1200, 1800))
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)
	dims, err := f.Probe(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, Dimensions{WidthPx: 1200, HeightPx: 1800}, dims)
}

func TestProbe_NotAnImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not an image</html>"))
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)
	_, err := f.Probe(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestProbeAll_AggregatesByIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/small.png":
			w.Write(pngBytes(t, 10, 20))
		case "/large.png":
			w.Write(pngBytes(t, 300, 400))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)
	results := f.ProbeAll(context.Background(), []string{
		srv.URL + "/large.png",
		srv.URL + "/missing.png",
		srv.URL + "/small.png",
	})

	require.Len(t, results, 3)
	require.NoError(t, results[0].Err)
	assert.Equal(t, 300, results[0].Dimensions.WidthPx)
	assert.ErrorIs(t, results[1].Err, ErrFetchFailed)
	require.NoError(t, results[2].Err)
	assert.Equal(t, 20, results[2].Dimensions.HeightPx)
}
