package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type ContextKey string

// Logging middleware ---------------------------------------------------------

type Logger struct {
	handler http.Handler
}

func (l *Logger) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	t := time.Now()
	l.handler.ServeHTTP(w, r)
	log.Info().
		Str("method", r.Method).
		Stringer("url", r.URL).
		Int64("response_time", time.Since(t).Nanoseconds()).
		Msg("request served")
}
func withLogging(h http.Handler) *Logger {
	return &Logger{h}
}

// Header middleware: security headers plus a fresh CSP nonce per request ------

type AddHeader struct {
	handler    http.Handler
	assetsHost string
}

func (a *AddHeader) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	nonce := newNonce()

	w.Header().Set("Content-Security-Policy",
		fmt.Sprintf("default-src 'self'; style-src 'self'; img-src 'self' data:; script-src 'self' 'nonce-%s' %s", nonce, a.assetsHost))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Referrer-Policy", "same-origin")

	r = r.Clone(context.WithValue(r.Context(), ContextKey("nonce"), nonce))

	a.handler.ServeHTTP(w, r)
}
func withAddHeader(h http.Handler, assetsHost string) *AddHeader {
	return &AddHeader{h, assetsHost}
}

func newNonce() string {
	raw := make([]byte, 16)
	rand.Read(raw)
	return base64.StdEncoding.EncodeToString(raw)
}

// Context middleware: embeds the app logger into the request context ----------

type AddContext struct {
	handler http.Handler
	deps    *Dependencies
}

func (ac *AddContext) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r = r.Clone(ac.deps.logger.WithContext(r.Context()))
	ac.handler.ServeHTTP(w, r)
}
func withAddContext(h http.Handler, deps *Dependencies) *AddContext {
	return &AddContext{h, deps}
}
