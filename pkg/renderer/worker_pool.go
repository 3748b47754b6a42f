package renderer

import (
	"runtime"
	"sync"
	"time"
)

// RowTask represents one image row for the worker pool
type RowTask struct {
	Row int
}

// RowResult reports a finished row
type RowResult struct {
	WorkerID int
	Row      int
	Duration time.Duration
}

// WorkerPool renders rows of a shared image in parallel. Each row is
// written by exactly one worker, so the image needs no locking.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders rows taken from the pool's task queue
type Worker struct {
	ID          int
	camera      *Camera
	storage     ObjectStorage
	image       *Image
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// numWorkers <= 0 uses one worker per CPU.
func NewWorkerPool(camera *Camera, storage ObjectStorage, image *Image, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rows := image.Height()
	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, rows),   // Buffer for every row
		resultQueue: make(chan RowResult, rows), // Buffer for every result
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			camera:      camera,
			storage:     storage,
			image:       image,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue and waits for workers to drain it
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask queues a row
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		start := time.Now()
		w.camera.renderRow(w.storage, w.image, task.Row)
		w.resultQueue <- RowResult{WorkerID: w.ID, Row: task.Row, Duration: time.Since(start)}
	}
}

// CaptureImageParallel renders the image with a pool of workers. The result
// is identical to CaptureImage for the same camera.
func (c *Camera) CaptureImageParallel(storage ObjectStorage, workers int) (*Image, RenderStats) {
	start := time.Now()
	img := NewImage(c.sensorWidth, c.sensorHeight)

	pool := NewWorkerPool(c, storage, img, workers)
	logger.Infof("rendering %dx%d with %d workers", c.sensorWidth, c.sensorHeight, pool.GetNumWorkers())
	pool.Start()
	for y := 0; y < img.Height(); y++ {
		pool.SubmitTask(RowTask{Row: y})
	}
	pool.Stop()

	workerStats := make([]WorkerStat, pool.GetNumWorkers())
	for i := range workerStats {
		workerStats[i].ID = i
	}
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		workerStats[result.WorkerID].Rows++
		workerStats[result.WorkerID].RenderTime += result.Duration
	}

	stats := c.newStats(img, time.Since(start))
	stats.Workers = workerStats
	logger.Debugf("parallel capture finished in %v", stats.RenderTime)
	return img, stats
}
