package aleph

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("aleph.example.org")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.Host != "aleph.example.org" {
		t.Fatalf("host = %q", u.Host)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("   "); err == nil {
		t.Fatal("parseBaseURL accepted empty input")
	}
}

func TestClient_FetchesEndpointsWithAuth(t *testing.T) {
	t.Parallel()

	var gotAuth, gotAccept string
	resultsBody := loadFixture(t, "results.json")
	metadataBody := loadFixture(t, "metadata.json")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case statusPath:
			_, _ = w.Write(resultsBody)
		case metadataPath:
			_, _ = w.Write(metadataBody)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "secret-key")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	status, err := c.FetchStatus(ctx)
	if err != nil {
		t.Fatalf("FetchStatus returned error: %v", err)
	}
	if status.Total != 1 || len(status.Results) != 1 {
		t.Fatalf("FetchStatus payload = %+v, want one result", status)
	}
	if gotAuth != "ApiKey secret-key" {
		t.Fatalf("Authorization = %q, want ApiKey header", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q", gotAccept)
	}

	meta, err := c.FetchMetadata(ctx)
	if err != nil {
		t.Fatalf("FetchMetadata returned error: %v", err)
	}
	if meta.App.Title != "OCCRP Aleph" {
		t.Fatalf("metadata = %+v", meta)
	}
}

func TestClient_NoAuthHeaderWithoutKey(t *testing.T) {
	t.Parallel()

	var sawAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"results": [], "total": 0}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchStatus(context.Background()); err != nil {
		t.Fatalf("FetchStatus returned error: %v", err)
	}
	if sawAuth {
		t.Fatal("Authorization header sent for keyless profile")
	}
}

func TestClient_ErrorKinds(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case statusPath:
			http.Error(w, "denied", http.StatusForbidden)
		case metadataPath:
			_, _ = w.Write([]byte(`{"status": ["not", "a", "string"]}`))
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchStatus(context.Background())
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("FetchStatus error = %v (%T), want *FetchError", err, err)
	}
	if fetchErr.StatusCode != http.StatusForbidden {
		t.Fatalf("status code = %d, want 403", fetchErr.StatusCode)
	}

	_, err = c.FetchMetadata(context.Background())
	var malformed *MalformedSnapshotError
	if !errors.As(err, &malformed) {
		t.Fatalf("FetchMetadata error = %v (%T), want *MalformedSnapshotError", err, err)
	}
}
