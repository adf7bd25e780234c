package http

import (
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
)

var sentryHandler = sentryhttp.New(sentryhttp.Options{
	Repanic: true,
	Timeout: 2 * time.Second,
})

// sentryReporter binds a Sentry hub to the request context so that errors handled by
// errutil.HandleHTTP carry the request. Panics are reported and passed on to the recoverer.
func sentryReporter(next http.Handler) http.Handler {
	return sentryHandler.Handle(next)
}
