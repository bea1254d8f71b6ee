// FILE: logplus/compat/compat.go

// Package compat exposes a logplus.Handler through the logger
// interfaces of gnet and fasthttp, so servers built on those libraries
// route their internal logging through the async engine.
package compat

import (
	"github.com/panjf2000/gnet/v2/pkg/logging"
	"github.com/valyala/fasthttp"
)

// Interface conformance.
var (
	_ logging.Logger  = (*GnetAdapter)(nil)
	_ fasthttp.Logger = (*FastHTTPAdapter)(nil)
)
