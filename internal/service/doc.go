// Package service provides the provider registry: tool-based services
// register here and the API layer dispatches execution requests through
// it by tool ID.
package service
