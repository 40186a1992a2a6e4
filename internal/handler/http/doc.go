// Package http is the HTTP transport for the sync API.
//
// It wires the per-entity syncdata3/syncdata4 routes, the seller auth
// endpoints, and the setting/report side channels, plus the middleware stack
// (tracing, access logging, gzip, JWT auth) that runs before any request
// reaches the service layer.
package http
