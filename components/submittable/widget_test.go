package submittable

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/altora/backoffice/pkg/eventbus"
)

type fakeElement struct {
	mu       sync.Mutex
	value    Value
	classes  map[string]bool
	disabled bool
	icon     Icon
}

func newFakeElement(v Value) *fakeElement {
	return &fakeElement{value: v, classes: map[string]bool{}, icon: IconCheck}
}

func (e *fakeElement) Value() Value {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value
}

func (e *fakeElement) SetValue(v Value) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value = v
}

func (e *fakeElement) AddClass(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.classes[name] = true
}

func (e *fakeElement) RemoveClass(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.classes, name)
}

func (e *fakeElement) HasClass(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.classes[name]
}

func (e *fakeElement) SetDisabled(disabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.disabled = disabled
}

func (e *fakeElement) Disabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.disabled
}

func (e *fakeElement) SetIcon(icon Icon) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.icon = icon
}

func (e *fakeElement) Icon() Icon {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.icon
}

type fakeScope struct {
	buttons map[Element]Element
}

func (s *fakeScope) ButtonFor(input Element) Element {
	return s.buttons[input]
}

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, message)
}

func (n *recordingNotifier) Successes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.successes...)
}

func (n *recordingNotifier) Failures() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.failures...)
}

type fixture struct {
	widget   *Widget
	input    *fakeElement
	button   *fakeElement
	notifier *recordingNotifier
	bus      eventbus.EventBus
}

func newFixture(t *testing.T, submit SubmitFunc) *fixture {
	t.Helper()
	input := newFakeElement(StringValue("mr"))
	button := newFakeElement(StringValue(""))
	button.AddClass(ClassHidden)
	scope := &fakeScope{buttons: map[Element]Element{input: button}}
	notifier := &recordingNotifier{}
	bus := eventbus.NewEventPublisher(logrus.New())
	w, err := New(Config{
		Scope:    scope,
		Submit:   submit,
		Events:   bus,
		Notifier: notifier,
	})
	require.NoError(t, err)
	return &fixture{widget: w, input: input, button: button, notifier: notifier, bus: bus}
}

func noopSubmit(ctx context.Context, input Element) (Response, error) {
	return Response{}, nil
}

func TestNew_RequiresScopeAndSubmit(t *testing.T) {
	_, err := New(Config{Submit: noopSubmit})
	require.Error(t, err)
	_, err = New(Config{Scope: &fakeScope{}})
	require.Error(t, err)
}

func TestPristineInput_ButtonHiddenAndInactive(t *testing.T) {
	f := newFixture(t, noopSubmit)
	f.widget.HandleInput(f.input)
	require.True(t, f.button.HasClass(ClassHidden))
	require.False(t, f.button.HasClass(ClassActive))
}

func TestDirtyInput_ButtonVisibleAndActive(t *testing.T) {
	f := newFixture(t, noopSubmit)
	f.widget.HandleFocus(f.input)
	f.input.SetValue(StringValue("mrs"))
	f.widget.HandleInput(f.input)
	require.False(t, f.button.HasClass(ClassHidden))
	require.True(t, f.button.HasClass(ClassActive))
}

func TestFocus_ForcesButtonVisibleButInactive(t *testing.T) {
	f := newFixture(t, noopSubmit)
	f.widget.HandleFocus(f.input)
	require.False(t, f.button.HasClass(ClassHidden), "focus forces visibility even without edits")
	require.False(t, f.button.HasClass(ClassActive))
}

func TestBlur_HidesButtonWhenValueReverted(t *testing.T) {
	f := newFixture(t, noopSubmit)
	f.widget.HandleFocus(f.input)
	f.input.SetValue(StringValue("mrs"))
	f.widget.HandleInput(f.input)
	f.input.SetValue(StringValue("mr"))
	f.widget.HandleBlur(f.input)
	require.True(t, f.button.HasClass(ClassHidden))
	require.False(t, f.button.HasClass(ClassActive))
}

func TestRapidClicks_SubmitOnce(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	submit := func(ctx context.Context, input Element) (Response, error) {
		calls.Add(1)
		started <- struct{}{}
		<-release
		return Response{}, nil
	}
	f := newFixture(t, submit)
	f.widget.HandleFocus(f.input)
	f.input.SetValue(StringValue("mrs"))
	f.widget.HandleInput(f.input)

	require.True(t, f.widget.HandleClick(f.input))
	<-started
	require.True(t, f.widget.Loading())
	require.True(t, f.input.Disabled())
	require.True(t, f.button.Disabled())
	require.Equal(t, IconSpinner, f.button.Icon())

	// Further clicks and Enter presses are swallowed while loading.
	require.True(t, f.widget.HandleClick(f.input))
	require.True(t, f.widget.HandleKeydown(f.input, KeyEnter))

	close(release)
	f.widget.Wait()
	require.Equal(t, int32(1), calls.Load())
	require.False(t, f.widget.Loading())
	require.False(t, f.input.Disabled())
	require.Equal(t, IconCheck, f.button.Icon())
}

func TestSuccess_UpdatesBaselineAndNotifiesOnce(t *testing.T) {
	var received atomic.Int32
	submit := func(ctx context.Context, input Element) (Response, error) {
		return Response{Message: "Saved"}, nil
	}
	f := newFixture(t, submit)
	f.bus.Subscribe(func(e *SubmittedEvent) {
		received.Add(1)
	})

	f.widget.HandleFocus(f.input)
	f.input.SetValue(StringValue("mrs"))
	f.widget.HandleInput(f.input)
	f.widget.HandleClick(f.input)
	f.widget.Wait()

	require.Equal(t, []string{"Saved"}, f.notifier.Successes())
	require.Equal(t, int32(1), received.Load())
	require.True(t, f.button.HasClass(ClassHidden))

	// Baseline moved to the submitted value, so the input is clean again.
	f.widget.HandleInput(f.input)
	require.True(t, f.button.HasClass(ClassHidden))
	require.False(t, f.button.HasClass(ClassActive))
}

func TestSuccessWithoutMessage_NoNotificationNoEvent(t *testing.T) {
	var received atomic.Int32
	f := newFixture(t, noopSubmit)
	f.bus.Subscribe(func(e *SubmittedEvent) {
		received.Add(1)
	})

	f.widget.HandleFocus(f.input)
	f.input.SetValue(StringValue("mrs"))
	f.widget.HandleClick(f.input)
	f.widget.Wait()

	require.Empty(t, f.notifier.Successes())
	require.Equal(t, int32(0), received.Load())
}

func TestFailure_OrderedNotificationsAndInvalidMarker(t *testing.T) {
	var errEvents atomic.Int32
	submit := func(ctx context.Context, input Element) (Response, error) {
		return Response{}, &SubmitError{FieldErrors: []FieldError{
			{Field: "name", Message: "Name is required"},
			{Field: "code", Message: "Code is already taken"},
		}}
	}
	f := newFixture(t, submit)
	f.bus.Subscribe(func(e *SubmitErrorEvent) {
		errEvents.Add(1)
	})

	f.widget.HandleFocus(f.input)
	f.input.SetValue(StringValue("mrs"))
	f.widget.HandleClick(f.input)
	f.widget.Wait()

	require.Equal(t, []string{"Name is required", "Code is already taken"}, f.notifier.Failures())
	require.Equal(t, int32(1), errEvents.Load())
	require.True(t, f.input.HasClass(ClassInvalid))
	require.True(t, f.button.HasClass(ClassHidden))

	// Baseline was not restored: the input is still dirty, and the next read
	// clears the invalid marker.
	f.widget.HandleInput(f.input)
	require.False(t, f.input.HasClass(ClassInvalid))
	require.False(t, f.button.HasClass(ClassHidden))
	require.True(t, f.button.HasClass(ClassActive))
}

func TestFailureWithoutFieldErrors_EventOnlyNoNotification(t *testing.T) {
	var errEvents atomic.Int32
	submit := func(ctx context.Context, input Element) (Response, error) {
		return Response{}, context.DeadlineExceeded
	}
	f := newFixture(t, submit)
	f.bus.Subscribe(func(e *SubmitErrorEvent) {
		errEvents.Add(1)
	})

	f.widget.HandleFocus(f.input)
	f.input.SetValue(StringValue("mrs"))
	f.widget.HandleClick(f.input)
	f.widget.Wait()

	require.Empty(t, f.notifier.Failures())
	require.Equal(t, int32(1), errEvents.Load())
	require.True(t, f.input.HasClass(ClassInvalid))
}

func TestFailure_AllowsManualRetry(t *testing.T) {
	var calls atomic.Int32
	submit := func(ctx context.Context, input Element) (Response, error) {
		if calls.Add(1) == 1 {
			return Response{}, &SubmitError{}
		}
		return Response{}, nil
	}
	f := newFixture(t, submit)
	f.widget.HandleFocus(f.input)
	f.input.SetValue(StringValue("mrs"))
	f.widget.HandleClick(f.input)
	f.widget.Wait()
	f.widget.HandleClick(f.input)
	f.widget.Wait()
	require.Equal(t, int32(2), calls.Load())
}

func TestEnterOnCleanInput_NoSubmission(t *testing.T) {
	var calls atomic.Int32
	submit := func(ctx context.Context, input Element) (Response, error) {
		calls.Add(1)
		return Response{}, nil
	}
	f := newFixture(t, submit)
	f.widget.HandleFocus(f.input)
	require.True(t, f.widget.HandleKeydown(f.input, KeyEnter))
	f.widget.Wait()
	require.Equal(t, int32(0), calls.Load())
}

func TestKeydown_IgnoresOtherKeys(t *testing.T) {
	f := newFixture(t, noopSubmit)
	f.input.SetValue(StringValue("mrs"))
	require.False(t, f.widget.HandleKeydown(f.input, "a"))
	require.False(t, f.widget.Loading())
}

func TestNumericBaseline_NoFalsePositiveDirtiness(t *testing.T) {
	input := newFakeElement(NumberValue(5))
	button := newFakeElement(StringValue(""))
	button.AddClass(ClassHidden)
	scope := &fakeScope{buttons: map[Element]Element{input: button}}
	w, err := New(Config{Scope: scope, Submit: noopSubmit})
	require.NoError(t, err)

	w.HandleFocus(input)
	input.SetValue(StringValue("5"))
	w.HandleInput(input)
	require.True(t, button.HasClass(ClassHidden), "\"5\" vs 5 must not count as an edit")
	require.False(t, button.HasClass(ClassActive))
}

func TestTimeout_ReturnsWidgetToIdle(t *testing.T) {
	submit := func(ctx context.Context, input Element) (Response, error) {
		<-ctx.Done()
		return Response{}, ctx.Err()
	}
	input := newFakeElement(StringValue("mr"))
	button := newFakeElement(StringValue(""))
	scope := &fakeScope{buttons: map[Element]Element{input: button}}
	w, err := New(Config{
		Scope:   scope,
		Submit:  submit,
		Timeout: 10 * time.Millisecond,
	})
	require.NoError(t, err)

	w.HandleFocus(input)
	input.SetValue(StringValue("mrs"))
	w.HandleClick(input)
	w.Wait()

	require.False(t, w.Loading(), "a hung submission must not wedge the widget")
	require.False(t, input.Disabled())
	require.True(t, input.HasClass(ClassInvalid))
}

func TestDetach_DropsBaseline(t *testing.T) {
	f := newFixture(t, noopSubmit)
	f.widget.HandleFocus(f.input)
	f.input.SetValue(StringValue("mrs"))
	f.widget.Detach(f.input)

	// A fresh interaction recaptures the baseline from the live value.
	f.widget.HandleInput(f.input)
	require.True(t, f.button.HasClass(ClassHidden))
}

func TestSubscriber_CanReadWidgetStateDuringDelivery(t *testing.T) {
	submit := func(ctx context.Context, input Element) (Response, error) {
		return Response{Message: "Saved"}, nil
	}
	f := newFixture(t, submit)
	observed := make(chan bool, 1)
	f.bus.Subscribe(func(e *SubmittedEvent) {
		observed <- f.widget.Loading()
	})

	f.widget.HandleFocus(f.input)
	f.input.SetValue(StringValue("mrs"))
	f.widget.HandleClick(f.input)
	f.widget.Wait()

	select {
	case loading := <-observed:
		require.False(t, loading, "delivery happens after the widget settled back to idle")
	case <-time.After(time.Second):
		t.Fatal("subscriber reading widget state never returned")
	}
}

func TestErrorSubscriber_CanCallBackIntoWidget(t *testing.T) {
	submit := func(ctx context.Context, input Element) (Response, error) {
		return Response{}, &SubmitError{FieldErrors: []FieldError{
			{Field: "name", Message: "Name is required"},
		}}
	}
	f := newFixture(t, submit)
	done := make(chan struct{})
	f.bus.Subscribe(func(e *SubmitErrorEvent) {
		f.widget.HandleInput(e.Input)
		close(done)
	})

	f.widget.HandleFocus(f.input)
	f.input.SetValue(StringValue("mrs"))
	f.widget.HandleClick(f.input)
	f.widget.Wait()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("subscriber driving a handler never returned")
	}
	require.Equal(t, []string{"Name is required"}, f.notifier.Failures())
}
