// Command queueview runs the read-only devtools inspector against an empty
// registry, useful for checking that a config file loads before wiring a real
// host process's registry.Registry into inspector.Run.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Ccheng2729111/fiberqueue/inspector"
	"github.com/Ccheng2729111/fiberqueue/registry"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to queueview.toml (optional)")
	flag.Parse()

	cfg, err := inspector.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "queueview: %v\n", err)
		return 1
	}

	opts := inspector.Options{Registry: registry.New(), Config: cfg}
	if err := inspector.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "queueview: %v\n", err)
		return 1
	}
	return 0
}
