package vfs

import "sync"

// Batch operations fan out one goroutine per target. Each unit performs
// its own lock-acquire/operate/release cycle; there is no batch-wide
// lock, so units interleave with each other and with concurrent callers
// in unspecified order. The returned report follows input order and
// records only which items succeeded or failed.

// BatchResult reports the outcome of one unit of a batch request.
type BatchResult struct {
	Path string
	Err  error
}

// WriteItem is one target of a batch write.
type WriteItem struct {
	Path    string
	Content []byte
}

// CreateBatch creates one empty file per path concurrently.
func (n *Namespace) CreateBatch(paths []string) []BatchResult {
	results := make([]BatchResult, len(paths))
	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			results[i] = BatchResult{Path: p, Err: n.Create(p)}
		}(i, p)
	}
	wg.Wait()
	return results
}

// WriteBatch writes every item concurrently.
func (n *Namespace) WriteBatch(items []WriteItem) []BatchResult {
	results := make([]BatchResult, len(items))
	var wg sync.WaitGroup
	for i, it := range items {
		wg.Add(1)
		go func(i int, it WriteItem) {
			defer wg.Done()
			results[i] = BatchResult{Path: it.Path, Err: n.Write(it.Path, it.Content)}
		}(i, it)
	}
	wg.Wait()
	return results
}

// DeleteBatch deletes one entry per path concurrently. Directories with
// contents are refused per-unit, same as Delete.
func (n *Namespace) DeleteBatch(paths []string) []BatchResult {
	results := make([]BatchResult, len(paths))
	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			results[i] = BatchResult{Path: p, Err: n.Delete(p)}
		}(i, p)
	}
	wg.Wait()
	return results
}
