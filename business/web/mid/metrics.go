package mid

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/ainlabs/explorer/foundation/metrics"
	"github.com/ainlabs/explorer/foundation/web"
)

// Metrics updates the prometheus collectors with request counts, latencies
// and error totals.
func Metrics(m *metrics.Metrics) web.Middleware {

	mw := func(handler web.Handler) web.Handler {

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			err := handler(ctx, w, r)

			status := http.StatusOK
			if v, verr := web.GetValues(ctx); verr == nil {
				if v.StatusCode != 0 {
					status = v.StatusCode
				}

				m.Durations.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(v.Now).Seconds())
			}

			m.Requests.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(status)).Inc()

			if err != nil {
				m.Errors.Inc()
			}

			return err
		}

		return h
	}

	return mw
}
