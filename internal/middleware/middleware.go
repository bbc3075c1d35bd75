// Package middleware holds resty hooks shared by every backend request.
package middleware

import (
	"context"
	"errors"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-Id"

// RequestID stamps a request with a fresh id unless the caller already set one.
func RequestID(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(RequestIDHeader) == "" {
		r.SetHeader(RequestIDHeader, uuid.NewString())
	}
	return nil
}

// Use installs request ids and request logging on c.
func Use(c *resty.Client, log *zap.SugaredLogger) *resty.Client {
	return c.
		OnBeforeRequest(RequestID).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			log.Debugw("backend response",
				"method", resp.Request.Method,
				"url", resp.Request.URL,
				"status", resp.StatusCode(),
				"elapsed", resp.Time(),
				"request_id", resp.Request.Header.Get(RequestIDHeader),
			)
			return nil
		}).
		OnError(func(r *resty.Request, err error) {
			if errors.Is(err, context.Canceled) {
				log.Debugw("backend request cancelled", "url", r.URL, "request_id", r.Header.Get(RequestIDHeader))
				return
			}
			log.Warnw("backend request failed",
				"method", r.Method,
				"url", r.URL,
				"request_id", r.Header.Get(RequestIDHeader),
				"error", err,
			)
		})
}
