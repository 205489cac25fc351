package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ppiankov/capsule/internal/logging"
	"github.com/ppiankov/capsule/internal/model"
	"github.com/ppiankov/capsule/internal/resolve"
)

// Resolver defines what the batch processor needs from the resolver
type Resolver interface {
	ResolveQuery(ctx context.Context, q resolve.Query) (model.ResolvedValue, error)
}

// Request is one raw resolution request
type Request struct {
	Index    int    `json:"-"`
	Line     int    `json:"line,omitempty"` // Source line when read from a file
	Category string `json:"category"`
	Location string `json:"location"`
	Date     string `json:"date"`
}

func (r Request) String() string {
	return r.Category + "|" + r.Location + "|" + r.Date
}

// ResolveJob resolves a single request
type ResolveJob struct {
	Request  Request
	Resolver Resolver
}

// Execute executes the resolve job. A panicking source fails only this request.
func (j *ResolveJob) Execute(ctx context.Context) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = &ResolveResult{Request: j.Request, Error: fmt.Errorf("resolve %s: panic: %v", j.Request, r)}
		}
	}()

	q, err := resolve.ParseQuery(j.Request.Category, j.Request.Location, j.Request.Date)
	if err != nil {
		return &ResolveResult{Request: j.Request, Error: err}
	}
	value, err := j.Resolver.ResolveQuery(ctx, q)
	if err != nil {
		return &ResolveResult{Request: j.Request, Error: err}
	}
	return &ResolveResult{Request: j.Request, Value: value}
}

// ResolveResult represents the result of a resolve job
type ResolveResult struct {
	Request Request
	Value   model.ResolvedValue
	Error   error
}

// GetError returns the error from the resolve result
func (r *ResolveResult) GetError() error {
	return r.Error
}

// BatchProcessor resolves many requests concurrently
type BatchProcessor struct {
	resolver    Resolver
	concurrency int
	logger      logging.Logger
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(resolver Resolver, concurrency int, logger logging.Logger) *BatchProcessor {
	if logger == nil {
		logger = logging.Discard()
	}
	return &BatchProcessor{
		resolver:    resolver,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Process resolves requests concurrently. Results come back in request order.
func (b *BatchProcessor) Process(ctx context.Context, requests []Request) []*ResolveResult {
	if len(requests) == 0 {
		return []*ResolveResult{}
	}

	pool := NewPoolWithContext(ctx, b.concurrency)
	pool.Start()

	for i, req := range requests {
		req.Index = i
		if !pool.Submit(&ResolveJob{Request: req, Resolver: b.resolver}) {
			break
		}
	}

	results := pool.Wait()

	out := make([]*ResolveResult, 0, len(results))
	failed := 0
	for _, result := range results {
		rr := result.(*ResolveResult)
		if rr.Error != nil {
			failed++
		}
		out = append(out, rr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Request.Index < out[j].Request.Index })

	b.logger.WithFields(logging.Fields{
		"requests": len(requests),
		"resolved": len(out),
		"failed":   failed,
	}).Debug("batch complete")
	return out
}

// ProcessFile reads requests from a file and processes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*ResolveResult, error) {
	requests, err := ReadRequestsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read requests: %w", err)
	}

	return b.Process(ctx, requests), nil
}

// ParseRequestLine parses "category|location|date"
func ParseRequestLine(line string) (Request, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 3 {
		return Request{}, fmt.Errorf("%w: expected category|location|date, got %q", model.ErrInvalidInput, line)
	}
	return Request{
		Category: strings.TrimSpace(parts[0]),
		Location: strings.TrimSpace(parts[1]),
		Date:     strings.TrimSpace(parts[2]),
	}, nil
}

// ReadRequestsFromFile reads requests from a file (one category|location|date per line)
func ReadRequestsFromFile(filePath string) ([]Request, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var requests []Request
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		req, err := ParseRequestLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		req.Line = lineNo

		// Deduplicate requests
		if key := strings.ToLower(req.String()); !seen[key] {
			seen[key] = true
			requests = append(requests, req)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return requests, nil
}
