// FILE: cmd/stress/main.go
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gallonchoi/logplus"
)

const (
	numWorkers    = 10
	logsPerWorker = 100000
)

const configFile = "stress_config.toml"

// Example stress_config.toml content, written next to the binary if
// the file does not already exist.
var tomlContent = `# stress test configuration
[log]
  level = -4 # debug
  directory = "./logs"
  name = "stress"
  extension = "log"
  enable_console = false
  enable_file = true
  flush_interval_ms = 50
  buffer_threshold = 500
`

func main() {
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
			panic(err)
		}
	}

	cfg, err := logplus.NewConfigFromFile(configFile)
	if err != nil {
		panic(err)
	}

	h := logplus.NewHandler()
	if err := h.ApplyConfig(cfg); err != nil {
		panic(err)
	}
	if err := h.Init(); err != nil {
		panic(err)
	}

	start := time.Now()

	var wg sync.WaitGroup
	for worker := 0; worker < numWorkers; worker++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < logsPerWorker; i++ {
				_ = h.Info("worker", id, "record", i)
			}
		}(worker)
	}
	wg.Wait()

	produced := time.Since(start)

	if err := h.Shutdown(); err != nil {
		panic(err)
	}
	drained := time.Since(start)

	stats := h.Stats()
	fmt.Printf("produced %d records in %v, drained in %v\n",
		numWorkers*logsPerWorker, produced, drained)
	fmt.Printf("records written: %d, write failures: %d\n",
		stats.RecordsWritten, stats.WriteFailures)
}
