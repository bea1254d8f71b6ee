// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/gallonchoi/logplus"
	"github.com/gallonchoi/logplus/compat"
)

func main() {
	h := logplus.NewHandler()
	err := h.ApplyOverride(
		"directory=/var/log/fasthttp",
		"level=0",
		"buffer_threshold=200",
	)
	if err != nil {
		panic(err)
	}
	if err := h.Init(); err != nil {
		panic(err)
	}
	defer h.Shutdown()

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		h,
		compat.WithDefaultLevel(logplus.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		Name:         "logplus-example",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

// customLevelDetector treats timeout chatter as warnings and keeps the
// built-in detection for everything else.
func customLevelDetector(msg string) int64 {
	if strings.Contains(strings.ToLower(msg), "timeout") {
		return logplus.LevelWarn
	}
	return compat.DetectLogLevel(msg)
}
