package renderer

import (
	"context"
	"runtime"
	"sync"
)

// rowTask asks a worker to render one image row
type rowTask struct {
	Row int
}

// rowResult contains the result from rendering a row
type rowResult struct {
	Row   int
	Stats RenderStats
}

// workerPool manages parallel row rendering
type workerPool struct {
	taskQueue   chan rowTask
	resultQueue chan rowResult
	numWorkers  int
	wg          sync.WaitGroup
}

// newWorkerPool creates a worker pool sized for every row of the image.
// numWorkers <= 0 uses one worker per CPU.
func newWorkerPool(rows, numWorkers int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &workerPool{
		taskQueue:   make(chan rowTask, rows),
		resultQueue: make(chan rowResult, rows),
		numWorkers:  numWorkers,
	}
}

// start runs render for every submitted task until the queue is closed or ctx
// is done
func (wp *workerPool) start(ctx context.Context, render func(row int) RenderStats) {
	for iter := 0; iter < wp.numWorkers; iter++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for task := range wp.taskQueue {
				if ctx.Err() != nil {
					continue
				}
				wp.resultQueue <- rowResult{Row: task.Row, Stats: render(task.Row)}
			}
		}()
	}
}

// submit queues a row. It never blocks: the queue holds every row.
func (wp *workerPool) submit(task rowTask) {
	wp.taskQueue <- task
}

// stop waits for workers to drain the queue and closes the results
func (wp *workerPool) stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}
