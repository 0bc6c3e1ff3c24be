package ocr

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"
)

func newVisionTestDetector(t *testing.T, handler http.HandlerFunc) *VisionDetector {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	service, err := vision.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	return NewVisionDetectorWithService(service)
}

func TestVisionDetector_DetectText(t *testing.T) {
	image := []byte("fake-image-bytes")

	t.Run("returns first annotation", func(t *testing.T) {
		d := newVisionTestDetector(t, func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)

			var req vision.BatchAnnotateImagesRequest
			require.NoError(t, jsoniter.Unmarshal(body, &req))
			require.Len(t, req.Requests, 1)
			assert.Equal(t, base64.StdEncoding.EncodeToString(image), req.Requests[0].Image.Content)
			assert.Equal(t, "TEXT_DETECTION", req.Requests[0].Features[0].Type)

			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"responses":[{"textAnnotations":[
				{"description":"스타벅스\n합계 9,000"},
				{"description":"스타벅스"}
			]}]}`)
		})

		text, err := d.DetectText(context.Background(), image)
		require.NoError(t, err)
		assert.Equal(t, "스타벅스\n합계 9,000", text)
	})

	t.Run("no annotations yields empty text", func(t *testing.T) {
		d := newVisionTestDetector(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"responses":[{}]}`)
		})

		text, err := d.DetectText(context.Background(), image)
		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("per-image error", func(t *testing.T) {
		d := newVisionTestDetector(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"responses":[{"error":{"code":3,"message":"Bad image data."}}]}`)
		})

		_, err := d.DetectText(context.Background(), image)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Bad image data.")
	})

	t.Run("http failure", func(t *testing.T) {
		d := newVisionTestDetector(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, `{"error":{"code":403,"message":"API key not valid"}}`)
		})

		_, err := d.DetectText(context.Background(), image)
		require.Error(t, err)
	})
}
