package action

import (
	"context"
	"sync"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// DefaultQueueSize is the per-player queue capacity used when none is configured
const DefaultQueueSize = 100

// ProcessorFunc is the function signature for processing one action
type ProcessorFunc func(ctx context.Context, req usecase.ActionRequest) (*usecase.ActionResult, error)

// Sequencer processes actions one at a time per player, in submission order.
// Each player gets a queue and a worker goroutine on first use.
type Sequencer struct {
	logger    coreport.Logger
	processor ProcessorFunc
	queueSize int

	// Player-based queues for strict ordering
	playerQueues   sync.Map // map[uuid.UUID]chan *queuedAction
	queueWaitGroup sync.WaitGroup

	// mu guards closed; senders hold it for reading while enqueueing
	mu     sync.RWMutex
	closed bool
}

// queuedAction represents a queued action request
type queuedAction struct {
	ctx        context.Context
	req        usecase.ActionRequest
	resultChan chan *actionResult
}

// actionResult represents the result of a processed action
type actionResult struct {
	result *usecase.ActionResult
	err    error
}

// NewSequencer creates a new sequencer
func NewSequencer(logger coreport.Logger, queueSize int, processor ProcessorFunc) *Sequencer {
	if processor == nil {
		panic("Action processor function cannot be nil")
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	return &Sequencer{
		logger:    logger,
		processor: processor,
		queueSize: queueSize,
	}
}

// Execute queues the action behind earlier actions of the same player and
// waits for its result
func (s *Sequencer) Execute(ctx context.Context, req usecase.ActionRequest) (*usecase.ActionResult, error) {
	s.logger.Debug("Enqueuing action for sequential processing", map[string]any{
		"player_id": req.PlayerID.String(),
		"operation": string(req.Operation),
	})

	resultChan := make(chan *actionResult, 1)
	queued := &queuedAction{
		ctx:        ctx,
		req:        req,
		resultChan: resultChan,
	}

	if err := s.enqueue(ctx, req.PlayerID, queued); err != nil {
		return nil, err
	}

	// Wait for result
	select {
	case result := <-resultChan:
		return result.result, result.err
	case <-ctx.Done():
		s.logger.Warn("Context canceled while waiting for action result", map[string]any{
			"player_id": req.PlayerID.String(),
			"operation": string(req.Operation),
			"error":     ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}
}

func (s *Sequencer) enqueue(ctx context.Context, playerID uuid.UUID, queued *queuedAction) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return errs.ErrSessionClosed
	}

	// Get or create queue for this player
	queueIface, loaded := s.playerQueues.LoadOrStore(playerID, make(chan *queuedAction, s.queueSize))
	queue, ok := queueIface.(chan *queuedAction)
	if !ok {
		s.logger.Error("Failed to type assert queue channel", nil)
		return errs.ErrInternal
	}

	// Start worker if this is a new queue
	if !loaded {
		s.logger.Info("Starting new action queue worker for player", map[string]any{
			"player_id": playerID.String(),
		})
		s.queueWaitGroup.Add(1)
		go s.processPlayerActions(playerID, queue)
	}

	select {
	case queue <- queued:
		return nil
	case <-ctx.Done():
		s.logger.Warn("Context canceled while enqueueing action", map[string]any{
			"player_id": playerID.String(),
			"error":     ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// processPlayerActions handles the worker goroutine for a player's queue
func (s *Sequencer) processPlayerActions(playerID uuid.UUID, queue chan *queuedAction) {
	defer s.queueWaitGroup.Done()

	for queued := range queue {
		var result *usecase.ActionResult
		err := queued.ctx.Err()
		// A caller that gave up while queued gets no side effects
		if err == nil {
			result, err = s.processor(queued.ctx, queued.req)
		}

		queued.resultChan <- &actionResult{
			result: result,
			err:    err,
		}
		close(queued.resultChan)
	}

	s.logger.Info("Action queue worker stopped", map[string]any{
		"player_id": playerID.String(),
	})
}

// Shutdown rejects new actions, lets the queued ones finish and stops all workers
func (s *Sequencer) Shutdown() {
	s.logger.Info("Shutting down action sequencer", nil)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.playerQueues.Range(func(_, queueIface any) bool {
		if queue, ok := queueIface.(chan *queuedAction); ok {
			close(queue)
		}
		return true
	})
	s.mu.Unlock()

	// Wait for all workers to finish
	s.queueWaitGroup.Wait()
	s.logger.Info("Action sequencer shut down successfully", nil)
}
