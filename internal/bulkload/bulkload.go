// Package bulkload feeds link lists into a running server through the bulk
// ingestion endpoint.
package bulkload

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"linkguard/internal/config"
	"linkguard/internal/domain"
)

const bulkPath = "/api/v1/urls/bulk"

type bulkRequest struct {
	Links []string `json:"links"`
}

// Totals sums the server's answers over every chunk.
type Totals struct {
	Chunks          int
	Inserted        int
	SkippedExisting int
	FailedBatches   int
	Invalid         []string
}

type Loader struct {
	client    *http.Client
	endpoint  string
	chunkSize int
	workers   int
	out       io.Writer
}

func New(cfg *config.LoaderConfig, out io.Writer) *Loader {
	workers := max(cfg.Workers, 1)
	return &Loader{
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        workers * 2,
				MaxIdleConnsPerHost: workers * 2,
				IdleConnTimeout:     90 * time.Second,
				ForceAttemptHTTP2:   true,
			},
		},
		endpoint:  strings.TrimSuffix(cfg.BaseURL, "/") + bulkPath,
		chunkSize: max(cfg.ChunkSize, 1),
		workers:   workers,
		out:       out,
	}
}

// Run posts links in chunks, at most workers at a time. The first failing
// chunk cancels the chunks that have not started yet.
func (l *Loader) Run(ctx context.Context, links []string) (*Totals, error) {
	numChunks := (len(links) + l.chunkSize - 1) / l.chunkSize
	fmt.Fprintf(l.out, "Loading %d links (chunk size: %d, workers: %d)...\n", len(links), l.chunkSize, l.workers)

	results := make([]*domain.BulkResponse, numChunks)
	var progress atomic.Int64
	var outMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)

	for i := range numChunks {
		start := i * l.chunkSize
		chunk := links[start:min(start+l.chunkSize, len(links))]

		g.Go(func() error {
			resp, err := l.post(gctx, chunk)
			if err != nil {
				return fmt.Errorf("chunk at %d: %w", start, err)
			}
			results[i] = resp

			done := progress.Add(int64(len(chunk)))
			outMu.Lock()
			fmt.Fprintf(l.out, "\rProgress: %d/%d", done, len(links))
			outMu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	totals := &Totals{Chunks: numChunks, Invalid: []string{}}
	for _, r := range results {
		totals.Inserted += r.InsertedCount
		totals.SkippedExisting += r.SkippedExisting
		totals.FailedBatches += r.FailedBatches
		totals.Invalid = append(totals.Invalid, r.InvalidInputs...)
	}

	fmt.Fprintf(l.out, "\nDone: %d inserted, %d already stored, %d invalid, %d failed batches\n",
		totals.Inserted, totals.SkippedExisting, len(totals.Invalid), totals.FailedBatches)
	return totals, nil
}

func (l *Loader) post(ctx context.Context, links []string) (*domain.BulkResponse, error) {
	body, err := json.Marshal(bulkRequest{Links: links})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result domain.BulkResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// ReadLinks reads one or more links per line; lines may also hold comma
// separated links. Blank entries are dropped.
func ReadLinks(r io.Reader) ([]string, error) {
	var links []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		links = append(links, domain.SplitLinks(sc.Text())...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read links: %w", err)
	}
	return links, nil
}
