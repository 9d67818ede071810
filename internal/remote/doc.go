// Package remote provides an HTTP client for binomci-server.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors carrying the HTTP
// method, full URL and the server's message. 400 and 404 responses wrap
// domain.ErrInvalidArgument and domain.ErrNotFound so callers can match them
// with errors.Is.
package remote
