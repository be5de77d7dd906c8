package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"linkguard/internal/bulkload"
	"linkguard/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads links from the named files, or from stdin when none are given.
func run(ctx context.Context, files []string) error {
	cfg, err := config.LoadLoader()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var links []string
	if len(files) == 0 {
		links, err = bulkload.ReadLinks(os.Stdin)
		if err != nil {
			return err
		}
	}
	for _, name := range files {
		fileLinks, err := readFile(name)
		if err != nil {
			return err
		}
		links = append(links, fileLinks...)
	}

	if len(links) == 0 {
		return fmt.Errorf("no links to load")
	}

	_, err = bulkload.New(cfg, os.Stdout).Run(ctx, links)
	return err
}

func readFile(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	return bulkload.ReadLinks(f)
}
