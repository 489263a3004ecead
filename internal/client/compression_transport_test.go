package client

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

func compressedServer(t *testing.T, encoding string, payload []byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept-Encoding"); got != acceptEncoding {
			t.Errorf("Expected Accept-Encoding %q, got %q", acceptEncoding, got)
		}

		w.Header().Set("Content-Encoding", encoding)
		var enc io.WriteCloser
		switch encoding {
		case "gzip":
			enc = gzip.NewWriter(w)
		case "br":
			enc = brotli.NewWriter(w)
		case "zstd":
			zw, err := zstd.NewWriter(w)
			if err != nil {
				t.Errorf("zstd writer: %v", err)
				return
			}
			enc = zw
		}
		_, _ = enc.Write(payload)
		_ = enc.Close()
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCompressionTransport_Decodes(t *testing.T) {
	payload := []byte(`{"resposta":{"items":{"item":[{"id":1,"titol":"Capítol 1"}]}}}`)

	for _, encoding := range []string{"gzip", "br", "zstd"} {
		t.Run(encoding, func(t *testing.T) {
			server := compressedServer(t, encoding, payload)
			httpClient := &http.Client{Transport: newCompressionTransport(nil)}

			resp, err := httpClient.Get(server.URL)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("Failed to read body: %v", err)
			}
			if !bytes.Equal(body, payload) {
				t.Errorf("Expected %q, got %q", payload, body)
			}
			if resp.Header.Get("Content-Encoding") != "" {
				t.Errorf("Expected Content-Encoding to be removed, got %q", resp.Header.Get("Content-Encoding"))
			}
			if resp.ContentLength != -1 {
				t.Errorf("Expected unknown content length, got %d", resp.ContentLength)
			}
		})
	}
}

func TestCompressionTransport_CallerEncodingUntouched(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept-Encoding"); got != "identity" {
			t.Errorf("Expected caller Accept-Encoding to be kept, got %q", got)
		}
		_, _ = w.Write([]byte("raw"))
	}))
	defer server.Close()

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	req.Header.Set("Accept-Encoding", "identity")

	resp, err := (&http.Client{Transport: newCompressionTransport(nil)}).Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "raw" {
		t.Errorf("Expected raw body, got %q", body)
	}
}

func TestCompressionTransport_UnknownEncoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "compress")
		_, _ = w.Write([]byte("opaque"))
	}))
	defer server.Close()

	resp, err := (&http.Client{Transport: newCompressionTransport(nil)}).Get(server.URL)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "opaque" || resp.Header.Get("Content-Encoding") != "compress" {
		t.Errorf("Expected response untouched, got %q / %q", body, resp.Header.Get("Content-Encoding"))
	}
}

func TestCompressionTransport_InvalidGzip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		_, _ = w.Write([]byte("definitely not gzip"))
	}))
	defer server.Close()

	if _, err := (&http.Client{Transport: newCompressionTransport(nil)}).Get(server.URL); err == nil {
		t.Fatal("Expected error for invalid gzip body")
	}
}

func TestContentEncoding(t *testing.T) {
	tests := map[string]string{
		"":         "",
		"gzip":     "gzip",
		" GZIP ":   "gzip",
		"gzip, br": "br",
		"br,zstd":  "zstd",
		"identity": "identity",
	}
	for header, want := range tests {
		if got := contentEncoding(header); got != want {
			t.Errorf("contentEncoding(%q) = %q, want %q", header, got, want)
		}
	}
}
