// Package checkout implements the modal checkout dialog as a state machine
// over a snapshot of the cart taken when the dialog opens.
package checkout

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/pos-service/internal/domain/model"
	"github.com/guttosm/pos-service/internal/pricing"
	"github.com/guttosm/pos-service/internal/scheduler"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidTransition is returned when an action is not allowed in the current state.
	ErrInvalidTransition = errors.New("invalid checkout transition")
	// ErrCloseDisabled is returned when closing while a payment is processing.
	ErrCloseDisabled = errors.New("close is disabled while processing")
)

// DefaultProcessingDelay is the simulated payment time.
const DefaultProcessingDelay = 1500 * time.Millisecond

// Dialog texts.
const (
	EmptyCartText       = "Your cart is empty."
	EmptyCartWarning    = "You did not select any product to buy"
	PaymentCompleteText = "Payment complete"
)

// State is a checkout dialog state.
type State int

const (
	// StateIdle shows the summary; confirm and close are available.
	StateIdle State = iota
	// StateProcessing runs the simulated payment; inputs are disabled.
	StateProcessing
	// StateComplete is reached once payment finishes.
	StateComplete
	// StateEmptyCartWarning is shown when confirming an empty cart.
	StateEmptyCartWarning
	// StateTerminated means the dialog was dismissed.
	StateTerminated
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProcessing:
		return "processing"
	case StateComplete:
		return "complete"
	case StateEmptyCartWarning:
		return "empty_cart_warning"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// CartReader is the read side of the cart consulted by a checkout.
type CartReader interface {
	Lines() []model.CartLine
	IsEmpty() bool
	Subtotal() decimal.Decimal
}

// Listener observes state transitions of the checkout identified by id.
type Listener func(id string, from, to State)

// Item is one line of the checkout listing.
type Item struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// Snapshot is the cart content and totals captured when the checkout opened.
type Snapshot struct {
	Items    []Item
	Summary  pricing.Summary
	OpenedAt time.Time
}

// View is a consistent read of a checkout. Every state-dependent field is
// derived from the same state.
type View struct {
	ID             string
	State          State
	Snapshot       Snapshot
	ItemsText      []string
	Message        string
	ConfirmEnabled bool
	CloseEnabled   bool
}

// Flow is one open checkout dialog. It is safe for concurrent use; the
// processing delay completes on a scheduler goroutine.
type Flow struct {
	mu        sync.Mutex
	id        string
	cart      CartReader
	snapshot  Snapshot
	state     State
	sched     scheduler.Scheduler
	delay     time.Duration
	formatter pricing.Formatter
	listeners []Listener
	task      scheduler.Task
	now       func() time.Time
}

// Option configures a Flow.
type Option func(*Flow)

// WithScheduler sets the scheduler driving the processing delay.
func WithScheduler(s scheduler.Scheduler) Option {
	return func(f *Flow) {
		if s != nil {
			f.sched = s
		}
	}
}

// WithProcessingDelay sets the simulated payment time.
func WithProcessingDelay(d time.Duration) Option {
	return func(f *Flow) {
		if d > 0 {
			f.delay = d
		}
	}
}

// WithListener registers a transition listener.
func WithListener(l Listener) Option {
	return func(f *Flow) {
		if l != nil {
			f.listeners = append(f.listeners, l)
		}
	}
}

// WithFormatter sets the money formatter used by ItemsText.
func WithFormatter(formatter pricing.Formatter) Option {
	return func(f *Flow) {
		f.formatter = formatter
	}
}

// WithClock overrides time.Now for the snapshot timestamp.
func WithClock(now func() time.Time) Option {
	return func(f *Flow) {
		if now != nil {
			f.now = now
		}
	}
}

// Open snapshots cart and its totals under policy and returns a flow in StateIdle.
func Open(cart CartReader, policy pricing.TaxPolicy, opts ...Option) *Flow {
	f := &Flow{
		id:        uuid.NewString(),
		cart:      cart,
		state:     StateIdle,
		sched:     scheduler.Real(),
		delay:     DefaultProcessingDelay,
		formatter: pricing.NewFormatter(pricing.DefaultCurrencySymbol),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}

	lines := cart.Lines()
	items := make([]Item, len(lines))
	for i, l := range lines {
		items[i] = Item{
			Name:      l.Product.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.Product.Price,
			Total:     l.Total(),
		}
	}
	f.snapshot = Snapshot{
		Items:    items,
		Summary:  policy.Summarize(cart.Subtotal()),
		OpenedAt: f.now(),
	}
	return f
}

// ID returns the checkout identifier.
func (f *Flow) ID() string {
	return f.id
}

// State returns the current state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Snapshot returns the content captured at open.
func (f *Flow) Snapshot() Snapshot {
	s := f.snapshot
	s.Items = append([]Item(nil), f.snapshot.Items...)
	return s
}

// Active reports whether the dialog is still open.
func (f *Flow) Active() bool {
	return f.State() != StateTerminated
}

// ConfirmEnabled reports whether Confirm is currently accepted.
func (f *Flow) ConfirmEnabled() bool {
	return f.State() == StateIdle
}

// CloseEnabled reports whether Close is currently accepted.
func (f *Flow) CloseEnabled() bool {
	return closeEnabled(f.State())
}

// View reads the state once and derives the dialog from it, so a completion
// firing concurrently cannot mix two states in one view.
func (f *Flow) View() View {
	state := f.State()
	return View{
		ID:             f.id,
		State:          state,
		Snapshot:       f.Snapshot(),
		ItemsText:      f.ItemsText(),
		Message:        messageFor(state),
		ConfirmEnabled: state == StateIdle,
		CloseEnabled:   closeEnabled(state),
	}
}

func closeEnabled(s State) bool {
	return s == StateIdle || s == StateComplete
}

// Confirm starts payment. An empty cart, checked live rather than from the
// snapshot, moves to StateEmptyCartWarning instead.
func (f *Flow) Confirm() (State, error) {
	f.mu.Lock()
	if f.state != StateIdle {
		s := f.state
		f.mu.Unlock()
		return s, fmt.Errorf("%w: confirm in %s", ErrInvalidTransition, s)
	}
	if f.cart.IsEmpty() {
		from := f.transition(StateEmptyCartWarning)
		f.mu.Unlock()
		f.emit(from, StateEmptyCartWarning)
		return StateEmptyCartWarning, nil
	}
	from := f.transition(StateProcessing)
	f.task = f.sched.AfterFunc(f.delay, f.complete)
	f.mu.Unlock()

	f.emit(from, StateProcessing)
	return StateProcessing, nil
}

// Acknowledge dismisses the empty-cart warning and returns to StateIdle.
func (f *Flow) Acknowledge() (State, error) {
	f.mu.Lock()
	if f.state != StateEmptyCartWarning {
		s := f.state
		f.mu.Unlock()
		return s, fmt.Errorf("%w: acknowledge in %s", ErrInvalidTransition, s)
	}
	from := f.transition(StateIdle)
	f.mu.Unlock()

	f.emit(from, StateIdle)
	return StateIdle, nil
}

// Close dismisses the dialog from StateIdle or StateComplete.
func (f *Flow) Close() (State, error) {
	f.mu.Lock()
	switch f.state {
	case StateIdle, StateComplete:
	case StateProcessing:
		f.mu.Unlock()
		return StateProcessing, ErrCloseDisabled
	default:
		s := f.state
		f.mu.Unlock()
		return s, fmt.Errorf("%w: close in %s", ErrInvalidTransition, s)
	}
	from := f.transition(StateTerminated)
	f.mu.Unlock()

	f.emit(from, StateTerminated)
	return StateTerminated, nil
}

// Message returns the dialog message for the current state, if any.
func (f *Flow) Message() string {
	return messageFor(f.State())
}

func messageFor(s State) string {
	switch s {
	case StateEmptyCartWarning:
		return EmptyCartWarning
	case StateComplete:
		return PaymentCompleteText
	default:
		return ""
	}
}

// ItemsText renders the snapshot listing, one "Name xQty = Total" entry per line.
func (f *Flow) ItemsText() []string {
	if len(f.snapshot.Items) == 0 {
		return []string{EmptyCartText}
	}
	out := make([]string, len(f.snapshot.Items))
	for i, it := range f.snapshot.Items {
		out[i] = fmt.Sprintf("%s x%d = %s", it.Name, it.Quantity, f.formatter.Format(it.Total))
	}
	return out
}

func (f *Flow) complete() {
	f.mu.Lock()
	if f.state != StateProcessing {
		f.mu.Unlock()
		return
	}
	if f.task != nil {
		f.task.Stop()
		f.task = nil
	}
	from := f.transition(StateComplete)
	f.mu.Unlock()

	f.emit(from, StateComplete)
}

// transition must be called with f.mu held.
func (f *Flow) transition(to State) State {
	from := f.state
	f.state = to
	return from
}

func (f *Flow) emit(from, to State) {
	for _, l := range f.listeners {
		l(f.id, from, to)
	}
}
