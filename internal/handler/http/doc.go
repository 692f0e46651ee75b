// Package http implements the HTTP transport of the detector service.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, panic recovery, response compression and per-request
// timeouts are applied here before requests reach the service layer.
package http
