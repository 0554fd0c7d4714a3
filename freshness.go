// Package freshness provides HTTP middleware that evaluates conditional
// requests (If-None-Match, If-Modified-Since) against the validators of
// the response produced by the wrapped handler, and rewrites the response
// to 304 (Not Modified) when the client's cached representation is still
// fresh.
package freshness

import (
	"net/http"

	notmodified "github.com/ericselin/freshness/pkg/not-modified-writer"
	"github.com/ericselin/freshness/rfc9110"

	"github.com/rs/zerolog"
)

type Config struct {
	// Logger to use. A console logger is used if nil.
	Logger *zerolog.Logger
}

type Freshness struct {
	log zerolog.Logger
}

// New initializes a freshness middleware instance.
func New(config Config) *Freshness {
	// use console logger if not specified in config
	var logger zerolog.Logger
	if config.Logger == nil {
		logger = zerolog.New(zerolog.NewConsoleWriter())
	} else {
		logger = *config.Logger
	}
	return &Freshness{log: logger}
}

// Middleware wraps next so that successful responses to conditional GET
// and HEAD requests are rewritten to 304 (Not Modified) when the client's
// cached representation is still fresh. Other methods and unconditional
// requests pass through untouched.
func (f *Freshness) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}
		reqHeader := requestConditionals(r.Header)
		if !conditional(reqHeader) {
			next.ServeHTTP(w, r)
			return
		}

		// the validators are response headers, so the decision is made
		// when the inner handler commits its response
		nmw := notmodified.NewWriter(w, func(h http.Header) bool {
			return rfc9110.Fresh(reqHeader, responseValidators(h))
		})
		next.ServeHTTP(nmw, r)

		decision := "stale"
		if nmw.NotModified() {
			decision = "fresh"
		}
		decisions.WithLabelValues(decision).Inc()
		f.log.Debug().
			Str("method", r.Method).
			Str("url", r.URL.String()).
			Int("status", nmw.StatusCode()).
			Str("decision", decision).
			Msg("Evaluated conditional request")
	})
}
