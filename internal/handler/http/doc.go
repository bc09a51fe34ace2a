// Package http implements the REST transport of the account server.
//
// It wires the chi router, the request middleware (trace id, access log,
// panic recovery, body limits, timeouts, compression and authentication)
// and the handlers under /api/v1/users. Handlers translate HTTP input into
// service calls and service errors into the JSON response envelope; they
// hold no business rules.
package http
