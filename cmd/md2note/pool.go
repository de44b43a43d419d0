package main

import "runtime"

// MaxWorkers bounds --workers and MD2NOTE_WORKERS.
const MaxWorkers = 32

// resolveWorkers determines the batch worker count.
// Priority: flag > env > GOMAXPROCS (adjusted by automaxprocs for containers).
// Conversion is CPU-bound and cheap, so one worker per available CPU.
func resolveWorkers(flagWorkers, envWorkers, files int) int {
	n := flagWorkers
	if n <= 0 {
		n = envWorkers
	}
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	if n > MaxWorkers {
		n = MaxWorkers
	}
	if files > 0 && n > files {
		n = files
	}
	if n < 1 {
		return 1
	}
	return n
}
