// FILE: example/gnet/main.go
package main

import (
	"github.com/panjf2000/gnet/v2"

	"github.com/gallonchoi/logplus"
	"github.com/gallonchoi/logplus/compat"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	h := logplus.NewHandler()
	err := h.ApplyOverride(
		"directory=/var/log/gnet",
		"level=debug",
		"enable_console=false",
	)
	if err != nil {
		panic(err)
	}
	if err := h.Init(); err != nil {
		panic(err)
	}
	defer h.Shutdown()

	gnetAdapter := compat.NewGnetAdapter(h)

	// Configure gnet server with the logger
	err = gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
