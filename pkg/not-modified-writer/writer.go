// Package notmodified provides an http.ResponseWriter wrapper that
// rewrites a response to 304 (Not Modified) when the committed response
// headers show that the client's cached representation is still fresh.
package notmodified

import "net/http"

// FreshFunc decides, from the response headers as committed by the inner
// handler, whether the client's cached representation is still fresh.
type FreshFunc func(http.Header) bool

// Writer is a wrapper around http.ResponseWriter that defers the
// freshness decision to the moment the inner handler commits its status
// code, since the validators (ETag, Last-Modified) are response headers.
type Writer struct {
	rw          http.ResponseWriter
	fresh       FreshFunc
	wroteHeader bool
	notModified bool
	status      int
}

// NewWriter returns a new Writer sending the response to w.
func NewWriter(w http.ResponseWriter, fresh FreshFunc) *Writer {
	return &Writer{rw: w, fresh: fresh}
}

// Implementation of http.ResponseWriter
func (t *Writer) Header() http.Header {
	return t.rw.Header()
}

// Implementation of http.ResponseWriter. Successful responses that are
// still fresh for the client are committed as 304 instead, with the
// representation headers removed.
func (t *Writer) WriteHeader(statusCode int) {
	if t.wroteHeader {
		return
	}
	t.wroteHeader = true
	t.status = statusCode
	if eligible(statusCode) && t.fresh(t.rw.Header()) {
		t.notModified = true
		t.status = http.StatusNotModified
		stripEntityHeaders(t.rw.Header())
	}
	t.rw.WriteHeader(t.status)
}

// Implementation of http.ResponseWriter. The body of a response rewritten
// to 304 is discarded.
func (t *Writer) Write(b []byte) (int, error) {
	if !t.wroteHeader {
		t.WriteHeader(http.StatusOK)
	}
	if t.notModified {
		return len(b), nil
	}
	return t.rw.Write(b)
}

// StatusCode returns the status code sent to the client.
func (t *Writer) StatusCode() int {
	return t.status
}

// NotModified reports whether the response was rewritten to 304.
func (t *Writer) NotModified() bool {
	return t.notModified
}

// eligible reports whether the status code represents a response whose
// freshness can be evaluated: successful responses and 304 itself.
func eligible(statusCode int) bool {
	return (statusCode >= 200 && statusCode < 300) || statusCode == http.StatusNotModified
}

// stripEntityHeaders removes representation metadata not allowed on a
// 304. Last-Modified is kept only when no entity tag is present, since it
// may still guide cache updates.
func stripEntityHeaders(h http.Header) {
	h.Del("Content-Type")
	h.Del("Content-Length")
	if h.Get("ETag") != "" {
		h.Del("Last-Modified")
	}
}
