package notmodified

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func alwaysFresh(http.Header) bool { return true }
func neverFresh(http.Header) bool  { return false }

func TestWriterRewritesFreshResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	w := NewWriter(rr, alwaysFresh)

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("ETag", `"foo"`)
	w.Header().Set("Last-Modified", "Sat, 01 Jan 2000 00:00:00 GMT")
	w.Write([]byte("Hello world"))

	if !w.NotModified() || w.StatusCode() != http.StatusNotModified {
		t.Fatalf("Status code is %d", w.StatusCode())
	}
	if rr.Code != http.StatusNotModified {
		t.Fatalf("Recorded status code is %d", rr.Code)
	}
	if body := rr.Body.String(); body != "" {
		t.Fatalf("Body is %s", body)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "" {
		t.Fatalf("Content-Type is %s", ct)
	}
	// Last-Modified is dropped in favor of the entity tag
	if lm := rr.Header().Get("Last-Modified"); lm != "" {
		t.Fatalf("Last-Modified is %s", lm)
	}
	if etag := rr.Header().Get("ETag"); etag != `"foo"` {
		t.Fatalf("ETag is %s", etag)
	}
}

func TestWriterPassesStaleResponseThrough(t *testing.T) {
	rr := httptest.NewRecorder()
	w := NewWriter(rr, neverFresh)

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("Hello world"))

	if w.NotModified() {
		t.Fatal("Response should not be rewritten")
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("Recorded status code is %d", rr.Code)
	}
	if body := rr.Body.String(); body != "Hello world" {
		t.Fatalf("Body is %s", body)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/plain" {
		t.Fatalf("Content-Type is %s", ct)
	}
}

func TestWriterIgnoresIneligibleStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusFound, http.StatusInternalServerError} {
		rr := httptest.NewRecorder()
		w := NewWriter(rr, alwaysFresh)

		w.WriteHeader(status)

		if w.NotModified() {
			t.Fatalf("Status %d should not be rewritten", status)
		}
		if rr.Code != status {
			t.Fatalf("Recorded status code is %d", rr.Code)
		}
	}
}

func TestWriterKeepsLastModifiedWithoutEtag(t *testing.T) {
	rr := httptest.NewRecorder()
	w := NewWriter(rr, alwaysFresh)

	w.Header().Set("Last-Modified", "Sat, 01 Jan 2000 00:00:00 GMT")
	w.WriteHeader(http.StatusOK)

	if lm := rr.Header().Get("Last-Modified"); lm == "" {
		t.Fatal("Last-Modified should be kept when there is no entity tag")
	}
}
