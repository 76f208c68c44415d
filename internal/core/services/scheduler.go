package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/openlegis/lexfeed/internal/core/domain"
	"github.com/openlegis/lexfeed/internal/core/ports/driven"
	"github.com/openlegis/lexfeed/internal/core/ports/driving"
)

// Scheduler manages background task execution.
// It is a pure core service with no external control API.
type Scheduler struct {
	config domain.SchedulerConfig
	store  driven.SchedulerStore
	ingest driving.IngestOrchestrator

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewScheduler creates a scheduler with configuration.
func NewScheduler(
	config domain.SchedulerConfig,
	store driven.SchedulerStore,
	ingest driving.IngestOrchestrator,
) *Scheduler {
	return &Scheduler{
		config: config,
		store:  store,
		ingest: ingest,
	}
}

// Start begins the scheduler loop. This method blocks until Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil // Already running
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.mu.Unlock()

	// Initialise tasks in store
	if err := s.initialiseTasks(ctx); err != nil {
		log.Printf("scheduler: failed to initialise tasks: %v", err)
	}

	// Run the main scheduler loop
	return s.run(ctx)
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	// Wait for running tasks to complete
	s.wg.Wait()

	return nil
}

// initialiseTasks ensures the built-in tasks exist in the store.
func (s *Scheduler) initialiseTasks(ctx context.Context) error {
	if s.config.Enabled {
		return s.ensureTask(ctx, domain.TaskIDIngest, "Staging Ingest")
	}
	return nil
}

// ensureTask creates or updates a task in the store.
func (s *Scheduler) ensureTask(ctx context.Context, id, name string) error {
	task, err := s.store.GetTask(ctx, id)
	if err != nil {
		return err
	}

	if task == nil {
		// Create new task
		task = &domain.ScheduledTask{
			ID:       id,
			Name:     name,
			Interval: s.config.Interval,
			Enabled:  s.config.Enabled,
			NextRun:  time.Now().Add(s.config.Interval),
		}
	} else {
		// Update interval if changed
		if task.Interval != s.config.Interval {
			task.Interval = s.config.Interval
			// Recalculate next run from now
			task.NextRun = time.Now().Add(s.config.Interval)
		}
		task.Enabled = s.config.Enabled
	}

	return s.store.SaveTask(ctx, task)
}

// run is the main scheduler loop.
func (s *Scheduler) run(ctx context.Context) error {
	// Check for due tasks immediately on startup
	s.checkAndRunDueTasks(ctx)

	// Use a 1-minute ticker to check for due tasks
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.checkAndRunDueTasks(ctx)
		}
	}
}

// checkAndRunDueTasks finds and executes tasks that are due.
func (s *Scheduler) checkAndRunDueTasks(ctx context.Context) {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		log.Printf("scheduler: failed to list tasks: %v", err)
		return
	}

	now := time.Now()
	for i := range tasks {
		task := &tasks[i]
		if !task.Enabled {
			continue
		}
		if task.NextRun.IsZero() || task.NextRun.Before(now) || task.NextRun.Equal(now) {
			s.runTask(ctx, task)
		}
	}
}

// runTask executes a single task.
func (s *Scheduler) runTask(ctx context.Context, task *domain.ScheduledTask) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		result := &domain.TaskResult{
			TaskID:    task.ID,
			StartedAt: time.Now(),
		}

		var err error
		switch task.ID {
		case domain.TaskIDIngest:
			result.ItemsProcessed, err = s.runIngest(ctx)
		default:
			log.Printf("scheduler: unknown task ID: %s", task.ID)
			return
		}

		result.EndedAt = time.Now()
		if err != nil {
			result.Success = false
			result.Error = err.Error()
			task.LastError = err.Error()
		} else {
			result.Success = true
			task.LastError = ""
			task.LastSuccess = result.EndedAt
		}

		// Update task state
		task.LastRun = result.StartedAt
		task.NextRun = result.EndedAt.Add(task.Interval)

		if saveErr := s.store.SaveTask(ctx, task); saveErr != nil {
			log.Printf("scheduler: failed to save task %s: %v", task.ID, saveErr)
		}

		// Record result for history
		if recordErr := s.store.RecordResult(ctx, result); recordErr != nil {
			log.Printf("scheduler: failed to record result for %s: %v", task.ID, recordErr)
		}

		// Prune old history (keep last 100 results per task)
		if pruneErr := s.store.PruneHistory(ctx, 100); pruneErr != nil {
			log.Printf("scheduler: failed to prune history: %v", pruneErr)
		}
	}()
}

// runIngest drains the staging area once.
func (s *Scheduler) runIngest(ctx context.Context) (int, error) {
	if s.ingest == nil {
		return 0, nil
	}

	summary, err := s.ingest.Run(ctx)
	if errors.Is(err, domain.ErrIngestInProgress) {
		// An overlapping manual run is not a scheduler failure; the next
		// tick will pick up whatever it left behind.
		return 0, nil
	}
	if summary == nil {
		return 0, err
	}
	return summary.Archived + summary.Quarantined, err
}
