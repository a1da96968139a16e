// Package ui provides the client's single UI goroutine. Component state is
// only read and written from tasks running on a Loop.
package ui

import (
	"context"
	"sync"

	"github.com/osse101/cardtable/internal/logger"
)

// Loop runs posted tasks one at a time in FIFO order
type Loop struct {
	tasks    chan func()
	quit     chan struct{}
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewLoop creates a loop; queueSize <= 0 selects DefaultQueueSize
func NewLoop(queueSize int) *Loop {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Loop{
		tasks: make(chan func(), queueSize),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Start starts the loop goroutine
func (l *Loop) Start() {
	l.wg.Add(1)
	go l.run()
}

func (l *Loop) run() {
	defer l.wg.Done()
	defer close(l.done)
	for {
		select {
		case task := <-l.tasks:
			l.exec(task)
		case <-l.quit:
			return
		}
	}
}

func (l *Loop) exec(task func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(context.Background()).Error(LogMsgTaskPanicked, "panic", r)
		}
	}()
	task()
}

// Post queues a task. It blocks while the queue is full and returns false
// once the loop is stopped.
func (l *Loop) Post(task func()) bool {
	select {
	case <-l.quit:
		return false
	default:
	}
	select {
	case l.tasks <- task:
		return true
	case <-l.quit:
		return false
	}
}

// Do posts a task and waits for it to finish. It must not be called from a
// task on the same loop.
func (l *Loop) Do(task func()) bool {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		task()
	}) {
		return false
	}

	select {
	case <-finished:
		return true
	case <-l.done:
		select {
		case <-finished:
			return true
		default:
			return false
		}
	}
}

// Stop stops the loop and waits for the running task. Queued tasks are dropped.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.quit)
	})
	l.wg.Wait()
}
