package workers

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-sheet-sync/internal/adapter"
	"github.com/MKhiriev/go-sheet-sync/internal/config"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/utils"
	"github.com/MKhiriev/go-sheet-sync/models"
)

type retryEntry struct {
	task  models.UploadTask
	timer *time.Timer
}

// UploadQueue transfers attachments to the object store one at a time.
//
// A task moves queued → in-flight → completed, or on a read or transfer
// failure through retrying back to queued until its retry budget is spent,
// after which it is abandoned. A completed upload patches the owning record
// and schedules its reconciliation after ReconcileDelay.
//
// Tasks live in memory only; whatever is pending when the process stops is
// lost.
type UploadQueue struct {
	mu       sync.Mutex
	pending  []models.UploadTask
	inFlight *models.UploadTask
	retrying map[string]*retryEntry
	closed   bool
	wake     chan struct{}
	running  atomic.Bool

	// reconciles scheduled after successful uploads
	followUps sync.WaitGroup

	capacity       int
	maxRetries     int
	retryBaseDelay time.Duration
	interTaskDelay time.Duration
	reconcileDelay time.Duration

	files      adapter.FileSource
	objects    adapter.ObjectStore
	patcher    FieldPatcher
	reconciler RecordReconciler
	ids        *utils.UUIDGenerator

	logger *logger.Logger
}

// NewUploadQueue builds an idle queue; Run starts its consumer.
func NewUploadQueue(
	cfg config.Workers,
	files adapter.FileSource,
	objects adapter.ObjectStore,
	patcher FieldPatcher,
	reconciler RecordReconciler,
	log *logger.Logger,
) *UploadQueue {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = models.DefaultMaxUploadRetries
	}

	return &UploadQueue{
		retrying:       make(map[string]*retryEntry),
		wake:           make(chan struct{}, 1),
		capacity:       cfg.QueueCapacity,
		maxRetries:     maxRetries,
		retryBaseDelay: cfg.RetryBaseDelay,
		interTaskDelay: cfg.InterTaskDelay,
		reconcileDelay: cfg.ReconcileDelay,
		files:          files,
		objects:        objects,
		patcher:        patcher,
		reconciler:     reconciler,
		ids:            utils.NewUUIDGenerator(),
		logger:         log,
	}
}

// Enqueue appends task to the tail of the queue. A missing ID and retry
// budget are filled in.
func (q *UploadQueue) Enqueue(task models.UploadTask) error {
	if task.ID == "" {
		task.ID = q.ids.Generate()
	}
	if task.MaxRetries <= 0 {
		task.MaxRetries = q.maxRetries
	}
	if task.EnqueuedAt.IsZero() {
		task.EnqueuedAt = time.Now()
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	if q.capacity > 0 && len(q.pending) >= q.capacity {
		return fmt.Errorf("%w: %d tasks pending", ErrQueueFull, len(q.pending))
	}

	q.pending = append(q.pending, task)
	q.signal()

	q.logger.Debug().
		Str("func", "UploadQueue.Enqueue").
		Str("task_id", task.ID).
		Str("entity", task.Entity).
		Int64("record_id", task.RecordID).
		Str("file", task.FileName).
		Msg("upload task queued")

	return nil
}

// Run consumes the queue until ctx is done. It may be called once; the
// queue rejects new tasks afterwards.
func (q *UploadQueue) Run(ctx context.Context) error {
	if !q.running.CompareAndSwap(false, true) {
		return ErrQueueRunning
	}
	ctx = q.logger.WithContext(ctx)
	defer q.close()

	q.logger.Info().Str("func", "UploadQueue.Run").Msg("upload queue started")

	for {
		task, ok := q.next()
		if !ok {
			select {
			case <-ctx.Done():
				return nil
			case <-q.wake:
				continue
			}
		}

		q.process(ctx, task)
		q.finish()

		if !sleep(ctx, q.interTaskDelay) {
			return nil
		}
	}
}

// Status returns a snapshot of the queue.
func (q *UploadQueue) Status() models.UploadQueueStatus {
	q.mu.Lock()
	defer q.mu.Unlock()

	status := models.UploadQueueStatus{
		Depth:    len(q.pending),
		InFlight: q.inFlight != nil,
		Retrying: len(q.retrying),
		Pending:  make([]models.UploadTaskSummary, 0, len(q.pending)+len(q.retrying)+1),
	}

	if q.inFlight != nil {
		status.Pending = append(status.Pending, summary(*q.inFlight, models.UploadInFlight))
	}
	for _, task := range q.pending {
		status.Pending = append(status.Pending, summary(task, models.UploadQueued))
	}

	retrying := make([]models.UploadTask, 0, len(q.retrying))
	for _, e := range q.retrying {
		retrying = append(retrying, e.task)
	}
	sort.Slice(retrying, func(i, j int) bool { return retrying[i].EnqueuedAt.Before(retrying[j].EnqueuedAt) })
	for _, task := range retrying {
		status.Pending = append(status.Pending, summary(task, models.UploadRetrying))
	}

	return status
}

func (q *UploadQueue) process(ctx context.Context, task models.UploadTask) {
	log := logger.FromContext(ctx)

	location, err := q.transfer(ctx, task)
	if err != nil {
		if ctx.Err() != nil {
			log.Warn().Err(err).Str("func", "UploadQueue.process").Str("task_id", task.ID).Msg("upload interrupted by shutdown")
			return
		}
		q.retry(ctx, task, err)
		return
	}

	log.Info().
		Str("func", "UploadQueue.process").
		Str("task_id", task.ID).
		Str("entity", task.Entity).
		Int64("record_id", task.RecordID).
		Str("location", location).
		Msg("file uploaded")

	if err = q.patcher.PatchField(ctx, task.Entity, task.RecordID, task.Field, location); err != nil {
		log.Err(err).
			Str("func", "UploadQueue.process").
			Str("task_id", task.ID).
			Str("entity", task.Entity).
			Int64("record_id", task.RecordID).
			Str("field", task.Field).
			Msg("failed to store uploaded file location")
		return
	}

	q.followUps.Add(1)
	go func() {
		defer q.followUps.Done()
		if !sleep(ctx, q.reconcileDelay) {
			return
		}
		if _, err := q.reconciler.ReconcileRecord(ctx, task.Entity, task.RecordID); err != nil {
			log.Err(err).
				Str("func", "UploadQueue.process").
				Str("entity", task.Entity).
				Int64("record_id", task.RecordID).
				Msg("reconcile after upload failed")
		}
	}()
}

func (q *UploadQueue) transfer(ctx context.Context, task models.UploadTask) (string, error) {
	data, err := q.files.ReadBytes(task.SourcePath)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", task.SourcePath, err)
	}

	mimeType := task.MimeType
	if mimeType == "" {
		mimeType = adapter.DetectMimeType(task.FileName, data)
	}

	return q.objects.Transfer(ctx, data, task.FileName, mimeType, task.Folder)
}

// retry schedules the task again after retryDelay or abandons it once its
// budget is spent.
func (q *UploadQueue) retry(ctx context.Context, task models.UploadTask, cause error) {
	log := logger.FromContext(ctx)

	if task.RetryCount >= task.MaxRetries {
		log.Err(cause).
			Str("func", "UploadQueue.retry").
			Str("task_id", task.ID).
			Str("entity", task.Entity).
			Int64("record_id", task.RecordID).
			Int("attempts", task.RetryCount+1).
			Msg("upload abandoned")
		return
	}

	task.RetryCount++
	delay := retryDelay(q.retryBaseDelay, task.RetryCount)

	log.Warn().
		Err(cause).
		Str("func", "UploadQueue.retry").
		Str("task_id", task.ID).
		Int("retry", task.RetryCount).
		Dur("delay", delay).
		Msg("upload failed, retrying")

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	entry := &retryEntry{task: task}
	entry.timer = time.AfterFunc(delay, func() { q.requeue(task.ID) })
	q.retrying[task.ID] = entry
}

// requeue moves a retrying task back to the tail. Retries bypass the
// capacity limit since the task was already accepted once.
func (q *UploadQueue) requeue(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry, ok := q.retrying[id]
	if !ok || q.closed {
		return
	}
	delete(q.retrying, id)
	q.pending = append(q.pending, entry.task)
	q.signal()
}

func (q *UploadQueue) next() (models.UploadTask, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return models.UploadTask{}, false
	}
	task := q.pending[0]
	q.pending = q.pending[1:]
	q.inFlight = &task
	return task, true
}

func (q *UploadQueue) finish() {
	q.mu.Lock()
	q.inFlight = nil
	q.mu.Unlock()
}

func (q *UploadQueue) close() {
	q.mu.Lock()
	q.closed = true
	for id, e := range q.retrying {
		e.timer.Stop()
		delete(q.retrying, id)
	}
	dropped := len(q.pending)
	q.pending = nil
	q.mu.Unlock()

	q.followUps.Wait()

	q.logger.Info().
		Str("func", "UploadQueue.Run").
		Int("dropped", dropped).
		Msg("upload queue stopped")
}

// signal wakes the consumer; q.mu must be held.
func (q *UploadQueue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// retryDelay grows linearly with the retry counter.
func retryDelay(base time.Duration, retryCount int) time.Duration {
	return base * time.Duration(retryCount)
}

func summary(task models.UploadTask, state models.UploadState) models.UploadTaskSummary {
	return models.UploadTaskSummary{ID: task.ID, Name: task.FileName, RetryCount: task.RetryCount, State: state}
}

// sleep waits d and reports whether ctx is still alive.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
