// Package server exposes the interval estimators over HTTP.
//
// HTTP API
//
//	POST /estimate
//	    Body: EstimateRequest. Returns a ProportionEstimate for one method
//	    (default "wald").
//
//	POST /compare
//	    Body: CompareRequest. Runs every method, stores and returns the Report.
//
//	GET /reports/{id}
//	    Return a stored Report.
//
// Behaviour
//
//   - Responses are JSON. Non-2xx statuses carry an ErrorResponse.
//   - Malformed input is 400, unknown reports are 404.
//   - An access log records method, path, status, bytes and duration.
package server
