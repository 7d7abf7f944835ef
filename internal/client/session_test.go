package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

type fakeAPI struct {
	mu          sync.Mutex
	fetchFunc   func(ctx context.Context, testID uint) (*domain.Test, error)
	submitFunc  func(ctx context.Context, testID uint, answers domain.AnswerSet) error
	submitCalls int
	lastAnswers domain.AnswerSet
}

func (f *fakeAPI) FetchTest(ctx context.Context, testID uint) (*domain.Test, error) {
	if f.fetchFunc != nil {
		return f.fetchFunc(ctx, testID)
	}
	return &domain.Test{ID: testID, Title: "Aptitude Assessment", DurationMinutes: 1}, nil
}

func (f *fakeAPI) SubmitAnswers(ctx context.Context, testID uint, answers domain.AnswerSet) error {
	f.mu.Lock()
	f.submitCalls++
	f.lastAnswers = answers
	fn := f.submitFunc
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, testID, answers)
	}
	return nil
}

func (f *fakeAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitCalls
}

func (f *fakeAPI) answers() domain.AnswerSet {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastAnswers
}

type manualClock struct {
	ticks   chan time.Time
	mu      sync.Mutex
	stopped bool
}

func newManualClock(buffer int) *manualClock {
	return &manualClock{ticks: make(chan time.Time, buffer)}
}

func (m *manualClock) factory() (<-chan time.Time, func()) {
	return m.ticks, func() {
		m.mu.Lock()
		m.stopped = true
		m.mu.Unlock()
	}
}

func (m *manualClock) tick(n int) {
	for i := 0; i < n; i++ {
		m.ticks <- time.Now()
	}
}

func (m *manualClock) isStopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

func waitDone(t *testing.T, c *Controller) {
	t.Helper()
	select {
	case <-c.Done():
	case <-time.After(5 * time.Second):
		t.Fatalf("session never reached a terminal state (state %s)", c.State())
	}
}

func waitRemaining(t *testing.T, c *Controller, want int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if c.Remaining() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("remaining never reached %d (stuck at %d)", want, c.Remaining())
}

func TestController_AutoSubmitsWhenClockRunsOut(t *testing.T) {
	api := &fakeAPI{}
	clock := newManualClock(70)
	c := NewController(api, 1, WithTicker(clock.factory), WithRetryBackoff(time.Millisecond))

	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := c.Answer(10, "4"); err != nil {
		t.Fatalf("answer failed: %v", err)
	}

	clock.tick(60)
	waitDone(t, c)

	if got := api.calls(); got != 1 {
		t.Errorf("expected exactly one submission, got %d", got)
	}
	if !clock.isStopped() {
		t.Error("ticker was not stopped")
	}
	if c.State() != StateDone {
		t.Errorf("expected done state, got %s", c.State())
	}
	if c.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", c.Remaining())
	}
	if clock.isStopped() && api.answers()["10"] != "4" {
		t.Errorf("recorded answer not submitted: %+v", api.answers())
	}
}

func TestController_ManualSubmitIsAtMostOnce(t *testing.T) {
	api := &fakeAPI{}
	clock := newManualClock(70)
	c := NewController(api, 1, WithTicker(clock.factory), WithRetryBackoff(time.Millisecond))

	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := c.Answer(10, float64(2)); err != nil {
		t.Fatalf("answer failed: %v", err)
	}

	clock.tick(37)
	waitRemaining(t, c, 23)

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("manual submit failed: %v", err)
	}
	if got := api.calls(); got != 1 {
		t.Fatalf("expected exactly one submission, got %d", got)
	}
	if !clock.isStopped() {
		t.Error("ticker should stop before the submission is sent")
	}

	// The rest of the hour elapsing must not produce a second
	// submission.
	clock.tick(30)
	waitDone(t, c)
	if got := api.calls(); got != 1 {
		t.Errorf("late ticks caused a second submission (%d calls)", got)
	}
	if c.State() != StateDone {
		t.Errorf("expected done state, got %s", c.State())
	}
}

func TestController_FetchFailureIsTerminal(t *testing.T) {
	api := &fakeAPI{
		fetchFunc: func(ctx context.Context, testID uint) (*domain.Test, error) {
			return nil, domain.ErrTestNotFound
		},
	}
	c := NewController(api, 99, WithTicker(newManualClock(1).factory))

	err := c.Start(context.Background())
	if err == nil {
		t.Fatal("expected start to fail")
	}
	if !errors.Is(err, domain.ErrTestNotFound) {
		t.Errorf("expected test-not-found, got %v", err)
	}
	waitDone(t, c)
	if c.State() != StateFailed {
		t.Errorf("expected failed state, got %s", c.State())
	}
	if api.calls() != 0 {
		t.Error("nothing should be submitted after a failed load")
	}
}

func TestController_RetriesSubmissionOnce(t *testing.T) {
	api := &fakeAPI{}
	api.submitFunc = func(ctx context.Context, testID uint, answers domain.AnswerSet) error {
		if api.calls() == 1 {
			return errors.New("connection reset")
		}
		return nil
	}
	clock := newManualClock(70)
	c := NewController(api, 1, WithTicker(clock.factory), WithRetryBackoff(time.Millisecond))

	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("submit should recover on retry: %v", err)
	}
	if got := api.calls(); got != 2 {
		t.Errorf("expected one retry (2 calls), got %d", got)
	}
	if c.State() != StateDone {
		t.Errorf("expected done state, got %s", c.State())
	}
}

func TestController_PendingAnswersSurviveDoubleFailure(t *testing.T) {
	api := &fakeAPI{
		submitFunc: func(ctx context.Context, testID uint, answers domain.AnswerSet) error {
			return errors.New("connection reset")
		},
	}
	clock := newManualClock(70)
	c := NewController(api, 1, WithTicker(clock.factory), WithRetryBackoff(time.Millisecond))

	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := c.Answer(10, "4"); err != nil {
		t.Fatalf("answer failed: %v", err)
	}
	if err := c.Answer(11, 12.5); err != nil {
		t.Fatalf("answer failed: %v", err)
	}

	err := c.Submit(context.Background())
	if err == nil {
		t.Fatal("expected submission to fail")
	}
	if got := api.calls(); got != 2 {
		t.Errorf("expected 2 attempts, got %d", got)
	}
	if c.State() != StateFailed {
		t.Errorf("expected failed state, got %s", c.State())
	}

	pending := c.PendingAnswers()
	if pending == nil {
		t.Fatal("pending answers lost after a failed submission")
	}
	if pending["10"] != "4" || pending["11"] != 12.5 {
		t.Errorf("pending answers incomplete: %+v", pending)
	}
}

func TestController_CloseAbandonsSession(t *testing.T) {
	api := &fakeAPI{}
	clock := newManualClock(70)
	c := NewController(api, 1, WithTicker(clock.factory))

	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	c.Close()
	c.Close()

	if !clock.isStopped() {
		t.Error("close must stop the ticker")
	}
	if !errors.Is(c.Err(), domain.ErrSessionClosed) {
		t.Errorf("expected session-closed error, got %v", c.Err())
	}
	if err := c.Answer(10, "4"); !errors.Is(err, domain.ErrSessionClosed) {
		t.Errorf("answering a closed session should fail, got %v", err)
	}
	if api.calls() != 0 {
		t.Error("closing must not submit")
	}
}

func TestController_AnswerBeforeStart(t *testing.T) {
	c := NewController(&fakeAPI{}, 1)
	if err := c.Answer(10, "4"); !errors.Is(err, domain.ErrSessionClosed) {
		t.Errorf("expected session-closed before start, got %v", err)
	}
}
