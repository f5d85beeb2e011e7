// Command routeplanner finds shortest 4-connected routes on occupancy
// boards with A* search.
//
//	routeplanner search --board city.board --start 0,0 --goal 4,5
//	routeplanner batch --config routeplanner.yaml --metrics-out routes.prom
//	routeplanner config init routeplanner.yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
