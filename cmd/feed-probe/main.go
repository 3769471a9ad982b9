package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/pulse/internal/probe"
	"github.com/okian/pulse/pkg/logger"
)

// Default configuration constants.
const (
	defaultPolls    = 5
	defaultInterval = 5 * time.Second
	defaultTimeout  = 10 * time.Second
	defaultRunLimit = 10 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:9080", "Base URL of the service")
		polls    = flag.Int("polls", defaultPolls, "Number of poll rounds")
		interval = flag.Duration("interval", defaultInterval, "Delay between poll rounds")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunLimit)
	defer cancel()

	config := &probe.Config{
		BaseURL:  *baseURL,
		Polls:    *polls,
		Interval: *interval,
		Timeout:  *timeout,
		Verbose:  *verbose,
	}

	if _, err := probe.Run(ctx, config); err != nil {
		os.Stderr.WriteString("probe failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
