// Package http provides the Gin handlers for the namespace service:
// health, service discovery, registry statistics and tool execution.
package http
