package handler

import (
	"context"
	"net/http"
)

// Context defines the contract for request contexts in the framework.
// Applications declare their own context type with every request-scoped
// extension as a field and satisfy this interface; see router.Context for
// the minimal implementation.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}
