package model

import (
	"sort"

	"github.com/secmon-lab/quill/pkg/domain/types"
)

// Bucket holds the issues sharing one severity label, in sorted order
// once Sort has been applied.
type Bucket struct {
	Severity types.Severity
	Issues   []*Issue
}

// Sort orders the bucket by (file path, line, key). The comparator is a
// strict total order, so applying Sort repeatedly yields the same order.
func (x *Bucket) Sort() {
	sort.SliceStable(x.Issues, func(i, j int) bool {
		return x.Issues[i].Less(x.Issues[j])
	})
}

// Chunks splits the bucket into contiguous slices of at most size
// issues. Concatenating the chunks in order reproduces the bucket
// exactly; every chunk except possibly the last is full. An empty
// bucket yields no chunks.
func (x *Bucket) Chunks(size int) [][]*Issue {
	if size <= 0 || len(x.Issues) == 0 {
		return nil
	}

	chunks := make([][]*Issue, 0, (len(x.Issues)+size-1)/size)
	for start := 0; start < len(x.Issues); start += size {
		end := start + size
		if end > len(x.Issues) {
			end = len(x.Issues)
		}
		chunks = append(chunks, x.Issues[start:end])
	}
	return chunks
}

// Report is the severity-grouped view of one fetched issue set. Buckets
// keep the configured severity order; severities outside the configured
// list get ad-hoc buckets appended in first-seen order.
type Report struct {
	Buckets []*Bucket
}

// NewReport groups issues into one bucket per severity and sorts each
// bucket. Every configured severity gets a bucket even when empty, and
// every issue lands in exactly one bucket: unrecognized severity values
// are collected into additional buckets rather than dropped.
func NewReport(severities []types.Severity, issues []*Issue) *Report {
	index := make(map[types.Severity]*Bucket, len(severities))
	buckets := make([]*Bucket, 0, len(severities))
	for _, sev := range severities {
		b := &Bucket{Severity: sev}
		index[sev] = b
		buckets = append(buckets, b)
	}

	for _, issue := range issues {
		b, ok := index[issue.Severity]
		if !ok {
			b = &Bucket{Severity: issue.Severity}
			index[issue.Severity] = b
			buckets = append(buckets, b)
		}
		b.Issues = append(b.Issues, issue)
	}

	for _, b := range buckets {
		b.Sort()
	}

	return &Report{Buckets: buckets}
}

// TotalIssues returns the sum of all bucket sizes
func (x *Report) TotalIssues() int {
	var total int
	for _, b := range x.Buckets {
		total += len(b.Issues)
	}
	return total
}
