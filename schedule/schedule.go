// Package schedule runs named jobs at a fixed interval until its context ends.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrInvalidInterval = errors.New("schedule: job interval must be greater than 0")
	ErrNoTasks         = errors.New("schedule: job must have at least one task")
	ErrTimeout         = errors.New("schedule: task timed out")
	ErrPanic           = errors.New("schedule: task panicked")
)

// Task is one unit of work. The context is cancelled when the job timeout
// expires or the scheduler stops.
type Task func(ctx context.Context) error

type Job struct {
	name     string
	tasks    []Task
	interval time.Duration
	timeout  time.Duration

	runs     atomic.Uint64
	failures atomic.Uint64
}

func NewJob(name string) *Job {
	return &Job{
		name:  name,
		tasks: make([]Task, 0),
	}
}

func (job *Job) WithTasks(tasks ...Task) *Job {
	job.tasks = tasks
	return job
}

func (job *Job) AddTask(task Task) {
	job.tasks = append(job.tasks, task)
}

func (job *Job) WithInterval(interval time.Duration) *Job {
	job.interval = interval
	return job
}

// WithTimeout bounds every task of the job. Zero means no bound.
func (job *Job) WithTimeout(timeout time.Duration) *Job {
	job.timeout = timeout
	return job
}

func (job *Job) Name() string {
	return job.name
}

// Runs reports how many times the job has executed.
func (job *Job) Runs() uint64 {
	return job.runs.Load()
}

// Failures reports how many task executions returned an error, timed out or panicked.
func (job *Job) Failures() uint64 {
	return job.failures.Load()
}

type Scheduler struct {
	jobs   []*Job
	mu     sync.RWMutex
	logger *slog.Logger
}

func NewScheduler(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		jobs:   make([]*Job, 0),
		logger: logger.With("component", "schedule"),
	}
}

func (scheduler *Scheduler) AddJob(job *Job) error {
	if job.interval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, job.name)
	}
	if len(job.tasks) == 0 {
		return fmt.Errorf("%w: %s", ErrNoTasks, job.name)
	}

	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	scheduler.jobs = append(scheduler.jobs, job)
	return nil
}

// Run executes every job added so far on its own interval. A job never
// overlaps itself; ticks that fire while it is still running are dropped.
// Run blocks until ctx is done and all running jobs have returned.
func (scheduler *Scheduler) Run(ctx context.Context) error {
	scheduler.mu.RLock()
	jobs := make([]*Job, len(scheduler.jobs))
	copy(jobs, scheduler.jobs)
	scheduler.mu.RUnlock()

	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			scheduler.loop(ctx, job)
		}()
	}

	<-ctx.Done()
	wg.Wait()

	return ctx.Err()
}

func (scheduler *Scheduler) loop(ctx context.Context, job *Job) {
	ticker := time.NewTicker(job.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			scheduler.executeJob(ctx, job)
		case <-ctx.Done():
			return
		}
	}
}

func (scheduler *Scheduler) executeJob(ctx context.Context, job *Job) {
	job.runs.Add(1)

	for i, task := range job.tasks {
		if err := executeTask(ctx, task, job.timeout); err != nil {
			job.failures.Add(1)
			scheduler.logger.Error("task failed", "job", job.name, "task", i, "error", err)
		}
	}
}

func executeTask(ctx context.Context, task Task, timeout time.Duration) error {
	if timeout <= 0 {
		return doExecuteTask(ctx, task)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- doExecuteTask(ctx, task)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w after %v", ErrTimeout, timeout)
	}
}

func doExecuteTask(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	return task(ctx)
}
