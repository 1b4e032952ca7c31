package workers

import "errors"

var (
	ErrQueueFull    = errors.New("upload queue is full")
	ErrQueueClosed  = errors.New("upload queue is closed")
	ErrQueueRunning = errors.New("upload queue is already running")
)
