package client

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

// State is the session controller's lifecycle position.
type State int

const (
	StateLoading State = iota
	StateActive
	StateSubmitting
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateActive:
		return "active"
	case StateSubmitting:
		return "submitting"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TickerFactory produces the countdown tick source. The returned stop
// function must be safe to call more than once.
type TickerFactory func() (<-chan time.Time, func())

func defaultTicker() (<-chan time.Time, func()) {
	t := time.NewTicker(time.Second)
	var once sync.Once
	return t.C, func() { once.Do(t.Stop) }
}

// Option configures a Controller.
type Option func(*Controller)

// WithTicker swaps the 1 Hz wall clock for a caller-driven tick source.
func WithTicker(factory TickerFactory) Option {
	return func(c *Controller) { c.newTicker = factory }
}

// WithRetryBackoff sets the delay before the single submission retry.
func WithRetryBackoff(d time.Duration) Option {
	return func(c *Controller) { c.retryBackoff = d }
}

// Controller drives one timed test attempt. Exactly one submission
// leaves a controller, whether the candidate submits or the clock
// runs out first.
type Controller struct {
	api          API
	testID       uint
	newTicker    TickerFactory
	retryBackoff time.Duration

	mu         sync.Mutex
	state      State
	test       *domain.Test
	remaining  int
	answers    domain.AnswerSet
	pending    domain.AnswerSet
	err        error
	stopTicker func()

	done     chan struct{}
	doneOnce sync.Once
}

// NewController creates a controller for one attempt at one test.
func NewController(api API, testID uint, opts ...Option) *Controller {
	c := &Controller{
		api:          api,
		testID:       testID,
		newTicker:    defaultTicker,
		retryBackoff: 2 * time.Second,
		state:        StateLoading,
		answers:      domain.AnswerSet{},
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start fetches the test and begins the countdown. A fetch failure is
// terminal; the caller creates a fresh controller to try again.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateLoading {
		c.mu.Unlock()
		return fmt.Errorf("session already started (state %s)", c.state)
	}
	c.mu.Unlock()

	test, err := c.api.FetchTest(ctx, c.testID)
	if err != nil {
		c.fail(fmt.Errorf("failed to load test: %w", err))
		return c.Err()
	}

	ticks, stop := c.newTicker()

	c.mu.Lock()
	c.test = test
	c.remaining = test.DurationSeconds()
	c.state = StateActive
	c.stopTicker = stop
	c.mu.Unlock()

	go c.countdown(ctx, ticks)
	return nil
}

func (c *Controller) countdown(ctx context.Context, ticks <-chan time.Time) {
	for {
		select {
		case <-c.done:
			return
		case <-ctx.Done():
			c.Close()
			return
		case _, ok := <-ticks:
			if !ok {
				return
			}
			if c.tick(ctx) {
				return
			}
		}
	}
}

// tick advances the countdown one second. Returns true once the
// session has left the active state.
func (c *Controller) tick(ctx context.Context) bool {
	c.mu.Lock()
	if c.state != StateActive {
		c.mu.Unlock()
		return true
	}
	c.remaining--
	expired := c.remaining <= 0
	c.mu.Unlock()

	if expired {
		c.submit(ctx)
		return true
	}
	return false
}

// Answer records the candidate's answer for one question.
func (c *Controller) Answer(questionID uint, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateActive {
		return domain.ErrSessionClosed
	}
	c.answers[strconv.FormatUint(uint64(questionID), 10)] = value
	return nil
}

// Submit sends the attempt now instead of waiting for the clock. It
// blocks until the submission settles.
func (c *Controller) Submit(ctx context.Context) error {
	c.submit(ctx)
	return c.Err()
}

// submit is the single path both triggers funnel into. The state flip
// under the lock makes it at-most-once; the ticker is stopped before
// any network traffic so no further ticks race the submission.
func (c *Controller) submit(ctx context.Context) {
	c.mu.Lock()
	if c.state != StateActive {
		c.mu.Unlock()
		return
	}
	c.state = StateSubmitting
	stop := c.stopTicker
	answers := domain.AnswerSet{}
	for k, v := range c.answers {
		answers[k] = v
	}
	c.mu.Unlock()

	if stop != nil {
		stop()
	}

	err := c.api.SubmitAnswers(ctx, c.testID, answers)
	if err != nil && ctx.Err() == nil {
		select {
		case <-time.After(c.retryBackoff):
		case <-ctx.Done():
		}
		err = c.api.SubmitAnswers(ctx, c.testID, answers)
	}

	c.mu.Lock()
	if err != nil {
		// The attempt is preserved for the caller to recover.
		c.pending = answers
		c.state = StateFailed
		c.err = fmt.Errorf("failed to submit test: %w", err)
	} else {
		c.state = StateDone
	}
	c.mu.Unlock()
	c.closeDone()
}

// Close abandons the session from any state. Safe to call repeatedly.
func (c *Controller) Close() {
	c.mu.Lock()
	stop := c.stopTicker
	terminal := c.state == StateDone || c.state == StateFailed
	if !terminal {
		c.state = StateFailed
		c.err = domain.ErrSessionClosed
	}
	c.mu.Unlock()

	if stop != nil {
		stop()
	}
	c.closeDone()
}

// Done is closed once the session reaches a terminal state.
func (c *Controller) Done() <-chan struct{} { return c.done }

// State reports the current lifecycle position.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Remaining reports the countdown in whole seconds.
func (c *Controller) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Err reports the terminal error, if any.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// PendingAnswers returns the answer set of a submission that failed
// both attempts, so the caller can persist or retry it. Nil unless the
// session failed after the answers were sealed.
func (c *Controller) PendingAnswers() domain.AnswerSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

func (c *Controller) fail(err error) {
	c.mu.Lock()
	c.state = StateFailed
	c.err = err
	c.mu.Unlock()
	c.closeDone()
}

func (c *Controller) closeDone() {
	c.doneOnce.Do(func() { close(c.done) })
}
