package renderer

import (
	"runtime"
	"sync"
)

// WorkerPool distributes render rows across a fixed set of goroutines.
// Each row is owned by exactly one worker at a time, so workers write to
// disjoint regions of the output image and no locking is needed.
type WorkerPool struct {
	workers int
}

// NewWorkerPool creates a pool with the given worker count; zero or negative
// uses one worker per CPU
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &WorkerPool{workers: workers}
}

// Workers returns the number of concurrent workers
func (wp *WorkerPool) Workers() int {
	return wp.workers
}

// Run executes work(row) for every row in [0, rows) across the pool and
// blocks until all rows are done
func (wp *WorkerPool) Run(rows int, work func(row int)) {
	rowCh := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < wp.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rowCh {
				work(row)
			}
		}()
	}

	for row := 0; row < rows; row++ {
		rowCh <- row
	}
	close(rowCh)
	wg.Wait()
}
