package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/colorlens/colorlens/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("colorlens %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("colorlens - dominant color recognition API")
			fmt.Println()
			fmt.Println("Usage: colorlens [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  COLORLENS_ADDR=:8080            Listen address")
			fmt.Println("  COLORLENS_LOG_LEVEL=info        Log level (trace, debug, info, warn, error)")
			fmt.Println("  COLORLENS_MAX_UPLOAD_BYTES=...  Upload size limit in bytes (default 10 MiB)")
			fmt.Println("  COLORLENS_MAX_PIXELS=0          Downsample uploads to this many pixels (0 = off)")
			fmt.Println("  COLORLENS_SMOOTH_RADIUS=0       Pre-cluster Gaussian blur radius (0 = off)")
			fmt.Println()
			fmt.Println("POST an image to /api/color-recognition to extract its dominant colors.")
			return
		}
	}

	srv, err := server.New(server.ConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Run()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errc:
		if err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
			os.Exit(1)
		}
	}
}
