package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/mmynk/leuth/internal/metrics"
)

// MetricsInterceptor counts RPCs by procedure and result code and observes
// their latency.
func MetricsInterceptor(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			m.RPCRequests.WithLabelValues(procedure, codeLabel(err)).Inc()
			m.RPCDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())

			return resp, err
		}
	}
}
