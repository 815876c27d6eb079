package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/octofit/tracker/internal/probe"
	"github.com/octofit/tracker/pkg/logger"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultRunTimeout = 2 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8000", "Base URL of the tracker API")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		format  = flag.String("log-format", "text", "Log format: text or json")
		verbose = flag.Bool("verbose", false, "Log every request")
	)
	flag.Parse()

	if err := logger.InitWith(os.Stdout, *format); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	_, err := probe.Run(ctx, &probe.Config{
		BaseURL: *baseURL,
		Timeout: *timeout,
		Verbose: *verbose,
		Logger:  logger.Named("probe"),
	})
	if err != nil {
		logger.Get().Error(ctx, "probe failed", logger.Error(err))
		cancel()
		os.Exit(1)
	}
}
