package submittable

import (
	"context"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"github.com/altora/backoffice/pkg/eventbus"
)

// DefaultTimeout bounds a single submission. A callback that never settles
// would otherwise leave the widget loading forever.
const DefaultTimeout = 30 * time.Second

// KeyEnter is the key name that triggers submission from inside an input.
const KeyEnter = "Enter"

// SubmitFunc performs the actual commit for one input. The context carries
// the submission timeout.
type SubmitFunc func(ctx context.Context, input Element) (Response, error)

type Config struct {
	Scope    Scope
	Submit   SubmitFunc
	Events   eventbus.EventBus
	Notifier Notifier
	Timeout  time.Duration
	Logger   *logrus.Logger
}

// Widget tracks dirtiness for every input in its scope and mediates one
// asynchronous submission at a time. The loading flag is widget-wide: while
// any input's submission is in flight no other input of this instance may
// start one. Independent instances do not share state.
type Widget struct {
	scope    Scope
	submit   SubmitFunc
	events   eventbus.EventBus
	notifier Notifier
	timeout  time.Duration
	logger   *logrus.Logger

	mu      sync.Mutex
	loading bool
	states  map[Element]*inputState
	wg      sync.WaitGroup
}

// inputState exists from the first interaction with an input until Detach.
type inputState struct {
	baseline Value
	invalid  bool
}

func New(cfg Config) (*Widget, error) {
	if cfg.Scope == nil {
		return nil, errors.New("submittable: scope is required")
	}
	if cfg.Submit == nil {
		return nil, errors.New("submittable: submit callback is required")
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Widget{
		scope:    cfg.Scope,
		submit:   cfg.Submit,
		events:   cfg.Events,
		notifier: notifier,
		timeout:  timeout,
		logger:   cfg.Logger,
		states:   map[Element]*inputState{},
	}, nil
}

// HandleFocus forces the companion button visible; active styling still
// follows dirtiness, so a pristine input shows an inactive button.
func (w *Widget) HandleFocus(input Element) {
	w.mu.Lock()
	defer w.mu.Unlock()
	st := w.state(input)
	btn := w.scope.ButtonFor(input)
	btn.RemoveClass(ClassHidden)
	w.setActive(btn, w.dirty(input, st))
}

// HandleInput recomputes dirtiness after an edit. Visibility is no longer
// forced: it tracks dirtiness exactly.
func (w *Widget) HandleInput(input Element) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.refresh(input)
}

// HandleBlur behaves like HandleInput.
func (w *Widget) HandleBlur(input Element) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.refresh(input)
}

// HandleClick begins a submission for the input's scope. The returned value
// is always true: the click never propagates further, even when the guard
// turns it into a no-op.
func (w *Widget) HandleClick(input Element) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.maybeBegin(input)
	return true
}

// HandleKeydown treats Enter inside a managed input as a click on the
// companion button. Returns true when the event was consumed (the host must
// suppress default form submission and propagation).
func (w *Widget) HandleKeydown(input Element, key string) bool {
	if key != KeyEnter {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.maybeBegin(input)
	return true
}

// Detach drops the per-input state when its DOM node is removed.
func (w *Widget) Detach(input Element) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.states, input)
}

// Loading reports whether a submission is in flight.
func (w *Widget) Loading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loading
}

// Wait blocks until all in-flight submissions settle.
func (w *Widget) Wait() {
	w.wg.Wait()
}

// state returns the input's state, creating it on first interaction with the
// baseline captured from the live value.
func (w *Widget) state(input Element) *inputState {
	st, ok := w.states[input]
	if !ok {
		st = &inputState{baseline: input.Value()}
		w.states[input] = st
	}
	return st
}

// readValue reads the live value. Reading clears a pending invalid marker.
func (w *Widget) readValue(input Element, st *inputState) Value {
	if st.invalid {
		st.invalid = false
		input.RemoveClass(ClassInvalid)
	}
	return input.Value()
}

func (w *Widget) dirty(input Element, st *inputState) bool {
	return !st.baseline.Equal(w.readValue(input, st))
}

func (w *Widget) refresh(input Element) {
	st := w.state(input)
	btn := w.scope.ButtonFor(input)
	dirty := w.dirty(input, st)
	if dirty {
		btn.RemoveClass(ClassHidden)
	} else {
		btn.AddClass(ClassHidden)
	}
	w.setActive(btn, dirty)
}

func (w *Widget) setActive(btn Element, active bool) {
	if active {
		btn.AddClass(ClassActive)
	} else {
		btn.RemoveClass(ClassActive)
	}
}

// maybeBegin starts a submission unless one is loading or the input is
// pristine. Both rejections are silent no-ops. Caller holds w.mu.
func (w *Widget) maybeBegin(input Element) {
	if w.loading {
		return
	}
	st := w.state(input)
	if !w.dirty(input, st) {
		return
	}
	w.loading = true
	btn := w.scope.ButtonFor(input)
	input.SetDisabled(true)
	btn.SetDisabled(true)
	btn.SetIcon(IconSpinner)
	w.wg.Add(1)
	go w.run(input, st, btn)
}

func (w *Widget) run(input Element, st *inputState, btn Element) {
	defer w.wg.Done()
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()
	resp, err := w.submit(ctx, input)

	// Settle UI state under the lock, then release it before emitting
	// events or notifications: the bus delivers synchronously and a
	// subscriber may call back into the widget.
	w.mu.Lock()
	if err != nil {
		w.finishFailure(input, st, btn)
	} else {
		w.finishSuccess(input, st, btn)
	}
	// Back to idle: re-enable, restore the icon, release the guard.
	input.SetDisabled(false)
	btn.SetDisabled(false)
	btn.SetIcon(IconCheck)
	w.loading = false
	w.mu.Unlock()

	if err != nil {
		w.emitFailure(input, err)
	} else {
		w.emitSuccess(input, resp)
	}
}

func (w *Widget) finishSuccess(input Element, st *inputState, btn Element) {
	st.baseline = input.Value()
	btn.AddClass(ClassHidden)
	btn.RemoveClass(ClassActive)
}

// finishFailure converts the error into UI state. The baseline is left
// untouched, so the input stays dirty and the user can retry.
func (w *Widget) finishFailure(input Element, st *inputState, btn Element) {
	st.invalid = true
	input.AddClass(ClassInvalid)
	btn.AddClass(ClassHidden)
}

func (w *Widget) emitSuccess(input Element, resp Response) {
	if resp.Message == "" {
		return
	}
	w.notifier.Success(resp.Message)
	if w.events != nil {
		w.events.Publish(&SubmittedEvent{Input: input})
	}
}

func (w *Widget) emitFailure(input Element, err error) {
	if w.events != nil {
		w.events.Publish(&SubmitErrorEvent{Input: input, Err: err})
	}
	var submitErr *SubmitError
	if errors.As(err, &submitErr) {
		for _, fe := range submitErr.FieldErrors {
			w.notifier.Error(fe.Message)
		}
	}
	if w.logger != nil {
		w.logger.WithError(err).Warn("submittable: submission failed")
	}
}
