// Package service contains the register session and the services around it:
// cashier auth and the audit trail.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/pos-service/internal/cartview"
	"github.com/guttosm/pos-service/internal/checkout"
	"github.com/guttosm/pos-service/internal/domain/model"
	"github.com/guttosm/pos-service/internal/metrics"
	"github.com/guttosm/pos-service/internal/pricing"
	"github.com/guttosm/pos-service/internal/scheduler"
)

var (
	// ErrProductNotFound is returned when a name is not in the catalog.
	ErrProductNotFound = errors.New("product not found")
	// ErrCheckoutOpen is returned for cart changes or a second checkout while one is open.
	ErrCheckoutOpen = errors.New("checkout is open")
	// ErrNoCheckout is returned for checkout actions when no checkout is open.
	ErrNoCheckout = errors.New("no checkout open")

	// ErrRowOutOfRange is returned when a row index does not address a cart line.
	ErrRowOutOfRange = cartview.ErrRowOutOfRange
	// ErrUnknownColumn is returned for columns outside the cart table.
	ErrUnknownColumn = cartview.ErrUnknownColumn
	// ErrInvalidTransition is returned when a checkout action is not allowed in its state.
	ErrInvalidTransition = checkout.ErrInvalidTransition
	// ErrCloseDisabled is returned when closing a checkout that is processing.
	ErrCloseDisabled = checkout.ErrCloseDisabled
)

// PointOfSale is the register terminal as seen by the transport layer.
type PointOfSale interface {
	Catalog() []model.Product
	Formatter() pricing.Formatter

	AddProduct(ctx context.Context, name string) (CartUpdate, error)
	RemoveProduct(ctx context.Context, name string) (CartUpdate, error)
	DecrementProduct(ctx context.Context, name string) (CartUpdate, error)
	EditCell(ctx context.Context, row int, column cartview.Column, input string) (CartUpdate, error)
	ClearCart(ctx context.Context) (CartUpdate, error)
	Cart() CartView

	OpenCheckout(ctx context.Context) (CheckoutView, error)
	Checkout() (CheckoutView, error)
	ConfirmCheckout(ctx context.Context) (CheckoutView, error)
	AcknowledgeCheckout(ctx context.Context) (CheckoutView, error)
	CloseCheckout(ctx context.Context) (CheckoutView, error)
}

// FlashState is the highlighted row and its animation phase in [0, 1].
type FlashState struct {
	Row   int
	Phase float64
}

// CartView is a consistent read of the cart table and its totals.
type CartView struct {
	Lines   []model.CartLine
	Rows    [][]cartview.CellValue
	Summary pricing.Summary
	Flash   *FlashState
}

// CartUpdate is the result of a cart mutation.
type CartUpdate struct {
	Cart          CartView
	Mutation      cartview.Mutation
	Notifications []cartview.Notification
}

// CheckoutView is a read of the open checkout dialog.
type CheckoutView struct {
	ID             string
	State          checkout.State
	Items          []checkout.Item
	ItemsText      []string
	Summary        pricing.Summary
	Message        string
	ConfirmEnabled bool
	CloseEnabled   bool
	OpenedAt       time.Time
}

// Option configures a Register.
type Option func(*Register)

// WithTaxPolicy sets the tax policy applied to every summary.
func WithTaxPolicy(p pricing.TaxPolicy) Option {
	return func(r *Register) {
		r.policy = p
	}
}

// WithCurrencySymbol sets the symbol used for formatted amounts.
func WithCurrencySymbol(symbol string) Option {
	return func(r *Register) {
		r.formatter = pricing.NewFormatter(symbol)
	}
}

// WithScheduler sets the scheduler driving checkout processing and row highlights.
func WithScheduler(s scheduler.Scheduler) Option {
	return func(r *Register) {
		if s != nil {
			r.sched = s
		}
	}
}

// WithProcessingDelay sets the simulated payment time.
func WithProcessingDelay(d time.Duration) Option {
	return func(r *Register) {
		r.processingDelay = d
	}
}

// WithFlashDuration sets how long an added row stays highlighted.
func WithFlashDuration(d time.Duration) Option {
	return func(r *Register) {
		r.flashDuration = d
	}
}

// WithAuditSink enables the audit trail.
func WithAuditSink(sink AuditSink) Option {
	return func(r *Register) {
		r.sink = sink
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Register) {
		if now != nil {
			r.now = now
		}
	}
}

// Register is the session context of one terminal: it owns the cart, its
// table projection and the current checkout. Every operation is serialised
// on one mutex, so callers observe the same ordering a single event loop would.
type Register struct {
	mu              sync.Mutex
	catalog         *model.Catalog
	cart            *model.Cart
	table           *cartview.Table
	recorder        *cartview.Recorder
	flash           *cartview.Flash
	policy          pricing.TaxPolicy
	formatter       pricing.Formatter
	sched           scheduler.Scheduler
	processingDelay time.Duration
	flashDuration   time.Duration
	sink            AuditSink
	now             func() time.Time
	flow            *checkout.Flow

	// processingStarted is written by checkout listeners, which may run on a timer goroutine.
	timingMu          sync.Mutex
	processingStarted map[string]time.Time
}

// NewRegister creates a register selling from catalog with an empty cart.
func NewRegister(catalog *model.Catalog, opts ...Option) *Register {
	r := &Register{
		catalog:           catalog,
		cart:              model.NewCart(),
		recorder:          &cartview.Recorder{},
		policy:            pricing.DefaultTaxPolicy(),
		formatter:         pricing.NewFormatter(pricing.DefaultCurrencySymbol),
		sched:             scheduler.Real(),
		processingDelay:   checkout.DefaultProcessingDelay,
		flashDuration:     cartview.DefaultFlashDuration,
		now:               time.Now,
		processingStarted: make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.flash = cartview.NewFlash(r.sched, r.flashDuration, r.now)
	r.table = cartview.NewTable(r.cart, r.recorder, r.flash)
	metrics.UpdateCartMetrics(0, 0)
	return r
}

// Catalog returns the products on sale.
func (r *Register) Catalog() []model.Product {
	return r.catalog.Products()
}

// Formatter returns the money formatter of the register.
func (r *Register) Formatter() pricing.Formatter {
	return r.formatter
}

// AddProduct adds one unit of the named catalog product and highlights its row.
func (r *Register) AddProduct(ctx context.Context, name string) (CartUpdate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.editableProduct(name)
	if err != nil {
		return r.failMutation(ctx, model.ActionAddProduct, name, err)
	}
	change := r.table.AddProduct(p)
	r.flash.Trigger(change.Row)
	return r.finishMutation(ctx, model.ActionAddProduct, cartview.Mutation{}, map[string]interface{}{
		"product": name,
		"change":  change.Kind.String(),
	}), nil
}

// RemoveProduct deletes the line of the named product. Absent lines are a no-op.
func (r *Register) RemoveProduct(ctx context.Context, name string) (CartUpdate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.editableProduct(name); err != nil {
		return r.failMutation(ctx, model.ActionRemoveProduct, name, err)
	}
	change := r.table.Remove(name)
	return r.finishMutation(ctx, model.ActionRemoveProduct, cartview.Mutation{}, map[string]interface{}{
		"product": name,
		"change":  change.Kind.String(),
	}), nil
}

// DecrementProduct removes one unit of the named product, dropping the line at zero.
func (r *Register) DecrementProduct(ctx context.Context, name string) (CartUpdate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.editableProduct(name); err != nil {
		return r.failMutation(ctx, model.ActionDecrementProduct, name, err)
	}
	change := r.table.Decrement(name)
	return r.finishMutation(ctx, model.ActionDecrementProduct, cartview.Mutation{}, map[string]interface{}{
		"product": name,
		"change":  change.Kind.String(),
	}), nil
}

// EditCell applies a table cell edit. Unparseable quantities leave the cart unchanged
// and are reported as a MutationNone, not an error.
func (r *Register) EditCell(ctx context.Context, row int, column cartview.Column, input string) (CartUpdate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subject := fmt.Sprintf("row %d column %s", row, column.Title())
	if err := r.ensureCartEditable(); err != nil {
		return r.failMutation(ctx, model.ActionEditCell, subject, err)
	}
	m, err := r.table.SetValueAt(row, column, input)
	if err != nil {
		return r.failMutation(ctx, model.ActionEditCell, subject, err)
	}
	return r.finishMutation(ctx, model.ActionEditCell, m, map[string]interface{}{
		"row":      row,
		"column":   column.Title(),
		"input":    input,
		"mutation": m.Kind.String(),
	}), nil
}

// ClearCart removes every line.
func (r *Register) ClearCart(ctx context.Context) (CartUpdate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureCartEditable(); err != nil {
		return r.failMutation(ctx, model.ActionClearCart, "cart", err)
	}
	lines := r.cart.Len()
	r.table.Clear()
	return r.finishMutation(ctx, model.ActionClearCart, cartview.Mutation{}, map[string]interface{}{
		"lines": lines,
	}), nil
}

// Cart returns the current table, totals and highlight.
func (r *Register) Cart() CartView {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cartViewLocked()
}

// OpenCheckout snapshots the cart into a new checkout dialog.
func (r *Register) OpenCheckout(ctx context.Context) (CheckoutView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.flow != nil && r.flow.Active() {
		r.recordCheckoutError(ctx, model.ActionOpenCheckout, ErrCheckoutOpen)
		return CheckoutView{}, ErrCheckoutOpen
	}

	r.flow = checkout.Open(r.cart, r.policy,
		checkout.WithScheduler(r.sched),
		checkout.WithProcessingDelay(r.processingDelay),
		checkout.WithFormatter(r.formatter),
		checkout.WithClock(r.now),
		checkout.WithListener(r.onTransition),
	)
	view := r.checkoutViewLocked()

	log.Info().
		Str("checkout_id", view.ID).
		Int("items", len(view.Items)).
		Str("total", view.Summary.Total.StringFixed(2)).
		Msg("Checkout opened")
	r.audit(ctx, &model.AuditEntry{
		Level:   "info",
		Message: "Checkout opened",
		Action:  model.ActionOpenCheckout,
		Fields: map[string]interface{}{
			"checkout_id": view.ID,
			"items":       len(view.Items),
			"subtotal":    view.Summary.Subtotal.String(),
			"total":       view.Summary.Total.String(),
		},
	})
	return view, nil
}

// Checkout returns the current or last checkout.
func (r *Register) Checkout() (CheckoutView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.flow == nil {
		return CheckoutView{}, ErrNoCheckout
	}
	return r.checkoutViewLocked(), nil
}

// ConfirmCheckout starts payment, or raises the empty-cart warning.
func (r *Register) ConfirmCheckout(ctx context.Context) (CheckoutView, error) {
	return r.checkoutAction(ctx, model.ActionConfirmCheckout, (*checkout.Flow).Confirm)
}

// AcknowledgeCheckout dismisses the empty-cart warning.
func (r *Register) AcknowledgeCheckout(ctx context.Context) (CheckoutView, error) {
	return r.checkoutAction(ctx, model.ActionAcknowledge, (*checkout.Flow).Acknowledge)
}

// CloseCheckout dismisses the checkout dialog.
func (r *Register) CloseCheckout(ctx context.Context) (CheckoutView, error) {
	return r.checkoutAction(ctx, model.ActionCloseCheckout, (*checkout.Flow).Close)
}

func (r *Register) checkoutAction(ctx context.Context, action string, fn func(*checkout.Flow) (checkout.State, error)) (CheckoutView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.flow == nil || !r.flow.Active() {
		r.recordCheckoutError(ctx, action, ErrNoCheckout)
		return CheckoutView{}, ErrNoCheckout
	}
	state, err := fn(r.flow)
	if err != nil {
		r.recordCheckoutError(ctx, action, err)
		return r.checkoutViewLocked(), err
	}

	view := r.checkoutViewLocked()
	r.audit(ctx, &model.AuditEntry{
		Level:   "info",
		Message: "Checkout " + state.String(),
		Action:  action,
		Fields: map[string]interface{}{
			"checkout_id": view.ID,
			"state":       state.String(),
		},
	})
	return view, nil
}

// onTransition observes checkout state changes. It may run on a scheduler goroutine
// and therefore never takes r.mu.
func (r *Register) onTransition(id string, from, to checkout.State) {
	metrics.RecordCheckoutTransition(from.String(), to.String())
	log.Info().
		Str("checkout_id", id).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("Checkout state changed")

	switch to {
	case checkout.StateProcessing:
		r.timingMu.Lock()
		r.processingStarted[id] = r.now()
		r.timingMu.Unlock()
	case checkout.StateComplete:
		r.timingMu.Lock()
		started, ok := r.processingStarted[id]
		delete(r.processingStarted, id)
		r.timingMu.Unlock()
		if ok {
			metrics.RecordCheckoutProcessing(r.now().Sub(started))
		}
		r.audit(context.Background(), &model.AuditEntry{
			Level:   "info",
			Message: checkout.PaymentCompleteText,
			Action:  model.ActionPaymentComplete,
			Fields:  map[string]interface{}{"checkout_id": id},
		})
	}
}

// editableProduct must be called with r.mu held.
func (r *Register) editableProduct(name string) (model.Product, error) {
	if err := r.ensureCartEditable(); err != nil {
		return model.Product{}, err
	}
	p, ok := r.catalog.Find(name)
	if !ok {
		return model.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, name)
	}
	return p, nil
}

// ensureCartEditable must be called with r.mu held.
func (r *Register) ensureCartEditable() error {
	if r.flow != nil && r.flow.Active() {
		return ErrCheckoutOpen
	}
	return nil
}

// finishMutation must be called with r.mu held.
func (r *Register) finishMutation(ctx context.Context, action string, m cartview.Mutation, fields map[string]interface{}) CartUpdate {
	notifications := r.recorder.Drain()
	view := r.cartViewLocked()

	subtotal, _ := view.Summary.Subtotal.Float64()
	metrics.UpdateCartMetrics(len(view.Lines), subtotal)
	metrics.RecordCartOperation(action, "success")

	fields["notifications"] = len(notifications)
	log.Debug().
		Str("action", action).
		Int("lines", len(view.Lines)).
		Str("subtotal", view.Summary.Subtotal.String()).
		Msg("Cart updated")
	r.audit(ctx, &model.AuditEntry{
		Level:   "info",
		Message: "Cart updated",
		Action:  action,
		Fields:  fields,
	})

	return CartUpdate{Cart: view, Mutation: m, Notifications: notifications}
}

// failMutation must be called with r.mu held.
func (r *Register) failMutation(ctx context.Context, action, subject string, err error) (CartUpdate, error) {
	r.recorder.Drain()
	metrics.RecordCartOperation(action, "error")
	log.Debug().Err(err).Str("action", action).Str("subject", subject).Msg("Cart operation rejected")
	r.audit(ctx, &model.AuditEntry{
		Level:   "warn",
		Message: "Cart operation rejected",
		Action:  action,
		Error:   err.Error(),
		Fields:  map[string]interface{}{"subject": subject},
	})
	return CartUpdate{}, err
}

func (r *Register) recordCheckoutError(ctx context.Context, action string, err error) {
	log.Debug().Err(err).Str("action", action).Msg("Checkout action rejected")
	r.audit(ctx, &model.AuditEntry{
		Level:   "warn",
		Message: "Checkout action rejected",
		Action:  action,
		Error:   err.Error(),
	})
}

// cartViewLocked must be called with r.mu held.
func (r *Register) cartViewLocked() CartView {
	view := CartView{
		Lines:   r.cart.Lines(),
		Rows:    r.table.Rows(),
		Summary: r.policy.Summarize(r.cart.Subtotal()),
	}
	if row, phase, ok := r.flash.State(); ok {
		view.Flash = &FlashState{Row: row, Phase: phase}
	}
	return view
}

// checkoutViewLocked must be called with r.mu held and r.flow set.
func (r *Register) checkoutViewLocked() CheckoutView {
	v := r.flow.View()
	return CheckoutView{
		ID:             v.ID,
		State:          v.State,
		Items:          v.Snapshot.Items,
		ItemsText:      v.ItemsText,
		Summary:        v.Snapshot.Summary,
		Message:        v.Message,
		ConfirmEnabled: v.ConfirmEnabled,
		CloseEnabled:   v.CloseEnabled,
		OpenedAt:       v.Snapshot.OpenedAt,
	}
}

func (r *Register) audit(ctx context.Context, entry *model.AuditEntry) {
	if r.sink == nil {
		return
	}
	actor := ActorFrom(ctx)
	entry.Timestamp = r.now()
	entry.RequestID = actor.RequestID
	entry.Cashier = actor.Cashier
	r.sink.Log(entry)
}

var _ PointOfSale = (*Register)(nil)
