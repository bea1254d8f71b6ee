// FILE: cmd/simple/main.go
package main

import (
	"fmt"
	"time"

	"github.com/gallonchoi/logplus"
)

func main() {
	h, err := logplus.NewBuilder().
		Directory("./logs").
		Name("simple").
		LevelString("debug").
		FlushInterval(500 * time.Millisecond).
		Build()
	if err != nil {
		panic(err)
	}

	if err := h.Init(); err != nil {
		panic(err)
	}

	h.Debug("starting up")
	h.Info("hello from the async engine")
	h.Warnf("disk usage at %d%%", 81)
	h.Error("something broke:", fmt.Errorf("example failure"))

	if err := h.Shutdown(); err != nil {
		panic(err)
	}

	stats := h.Stats()
	fmt.Printf("records written: %d, write failures: %d\n",
		stats.RecordsWritten, stats.WriteFailures)
}
