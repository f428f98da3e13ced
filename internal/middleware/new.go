package middleware

import (
	"github.com/blc10/research-assistant/pkg/log"
)

// Middleware bundles the cross-cutting Gin handlers.
type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
