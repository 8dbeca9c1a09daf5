package util

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// SetupInterruptHandler removes the given unfinished files when the process
// is interrupted. The returned func stops watching for signals.
func SetupInterruptHandler(paths ...string) (stop func()) {
	sig := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sig:
		case <-done:
			return
		}

		fmt.Println("\nInterrupt received. Cleaning up...")
		RemoveParts(paths...)
		fmt.Println("\nExiting due to interrupt.")

		os.Exit(1)
	}()

	return func() {
		signal.Stop(sig)
		close(done)
	}
}

func RemoveParts(paths ...string) {
	for _, p := range paths {
		if err := os.Remove(p); err == nil {
			fmt.Printf("Removed %s\n", p)
		} else if !os.IsNotExist(err) {
			fmt.Printf("Error cleaning up %s: %v\n", p, err)
		}
	}
}
