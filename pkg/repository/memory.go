package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
)

// Memory implements ReportStore with in-memory storage for tests
type Memory struct {
	mu      sync.RWMutex
	reports map[string]string
}

// NewMemory creates a new memory report store
func NewMemory() *Memory {
	return &Memory{
		reports: make(map[string]string),
	}
}

// WriteReport stores one report in memory
func (x *Memory) WriteReport(ctx context.Context, name string, content string) error {
	if name == "" {
		return goerr.New("report name is empty")
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	x.reports[name] = content
	return nil
}

// GetReport returns the stored content of one report
func (x *Memory) GetReport(name string) (string, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	content, ok := x.reports[name]
	return content, ok
}

// ReportNames returns the names of all stored reports, sorted
func (x *Memory) ReportNames() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()

	names := make([]string, 0, len(x.reports))
	for name := range x.reports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
