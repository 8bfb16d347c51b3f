package mid

import (
	"context"
	"net/http"
	"time"

	"github.com/ardanlabs/ledger/business/sys/metrics"
	"github.com/ardanlabs/ledger/business/web/errs"
	"github.com/ardanlabs/ledger/foundation/web"
)

// Metrics updates program counters.
func Metrics(m *metrics.Metrics) web.Middleware {

	// This is the actual middleware function to be executed.
	mw := func(handler web.Handler) web.Handler {

		// Create the handler that will be attached in the middleware chain.
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			// If the context is missing this value, request the service
			// to be shutdown gracefully.
			v, err := web.GetValues(ctx)
			if err != nil {
				return web.NewShutdownError("web value missing from context")
			}

			// Call the next handler.
			err = handler(ctx, w, r)

			// Errors are rendered further up the chain so a failed request
			// has no status code yet.
			status := v.StatusCode
			switch {
			case errs.IsTrusted(err):
				status = errs.GetTrusted(err).Status
			case status == 0:
				status = http.StatusInternalServerError
			}
			took := time.Since(v.Now)

			m.AddRequest(r.Method, status, took)
			if err != nil {
				m.AddError()
			}

			// Return the error so it can be handled further up the chain.
			return err
		}

		return h
	}

	return mw
}
