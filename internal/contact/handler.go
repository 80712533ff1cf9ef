package contact

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/muurk/contactform/internal/logging"
)

// DefaultHideDelay is how long a success message stays visible
const DefaultHideDelay = 5 * time.Second

// AfterFunc schedules f after d and returns a function that cancels it.
// It matches time.AfterFunc so tests can substitute a manual clock.
type AfterFunc func(d time.Duration, f func()) (stop func() bool)

func timeAfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Option configures a Handler
type Option func(*Handler)

// WithHideDelay sets how long a success message stays visible.
// Zero or negative keeps it visible until the next submission.
func WithHideDelay(d time.Duration) Option {
	return func(h *Handler) { h.hideDelay = d }
}

// WithAfterFunc replaces the timer used for hiding the status region
func WithAfterFunc(fn AfterFunc) Option {
	return func(h *Handler) { h.afterFunc = fn }
}

// WithIDGenerator replaces the generator for log correlation ids
func WithIDGenerator(fn func() string) Option {
	return func(h *Handler) { h.newID = fn }
}

// Handler runs the submit flow: read, validate, send, present.
// It keeps no state between submissions other than the pending hide timer.
type Handler struct {
	form      FormGateway
	transport TransportClient
	hideDelay time.Duration
	afterFunc AfterFunc
	newID     func() string

	inFlight atomic.Bool

	// hideMu guards the pending hide timer; hideGen invalidates timers that
	// already fired but have not hidden the region yet.
	hideMu   sync.Mutex
	hideGen  uint64
	stopHide func() bool
}

// NewHandler creates a handler for the given form and transport
func NewHandler(form FormGateway, transport TransportClient, opts ...Option) *Handler {
	h := &Handler{
		form:      form,
		transport: transport,
		hideDelay: DefaultHideDelay,
		afterFunc: timeAfterFunc,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Attach builds a handler and registers it as the submit listener of src.
// It returns ErrNoForm when src is nil.
func Attach(src SubmitSource, form FormGateway, transport TransportClient, opts ...Option) (*Handler, error) {
	if src == nil {
		return nil, ErrNoForm
	}
	h := NewHandler(form, transport, opts...)
	src.OnSubmit(func(ctx context.Context) {
		h.HandleSubmit(ctx)
	})
	return h, nil
}

// HandleSubmit processes one submit event. Every failure ends in a status
// message on the form; nothing is returned as an error. The Outcome tells
// the caller which branch was taken.
//
// A call made while another submission is in flight returns OutcomeBusy
// without touching the form.
func (h *Handler) HandleSubmit(ctx context.Context) Outcome {
	if !h.inFlight.CompareAndSwap(false, true) {
		return OutcomeBusy
	}
	defer h.inFlight.Store(false)

	h.cancelPendingHide()

	sub := h.form.ReadFields()
	if err := ValidateSubmission(sub); err != nil {
		h.form.Present(GetShortErrorMessage(err), KindError)
		return OutcomeInvalid
	}

	return h.send(ctx, h.newID(), sub)
}

// send performs the transport call inside the busy state
func (h *Handler) send(ctx context.Context, id string, sub Submission) (outcome Outcome) {
	h.form.SetBusy(true)
	defer h.form.SetBusy(false)

	// A panicking transport is treated like any other failed call
	defer func() {
		if r := recover(); r != nil {
			logging.LogTransportError(id, fmt.Errorf("transport panic: %v", r))
			h.form.Present(MsgConnectionError, KindError)
			outcome = OutcomeConnectionError
		}
	}()

	logging.LogSubmission(id, "transport_started")

	reply, err := h.transport.Send(ctx, sub)
	if err == nil && reply == nil {
		err = NewParseError("empty reply", nil)
	}
	if err != nil {
		logging.LogTransportError(id, err)
		h.form.Present(MsgConnectionError, KindError)
		return OutcomeConnectionError
	}

	if reply.Succeeded() {
		logging.LogTransportReply(id, reply.StatusCode, reply.Result.Message)
		h.form.Present(reply.Result.Message, KindSuccess)
		h.form.ClearFields()
		h.scheduleHide()
		return OutcomeSent
	}

	message := reply.Result.Message
	if message == "" {
		message = MsgSendFailed
	}
	rejected := NewLogicalError(reply.StatusCode, message)
	logging.LogTransportRejected(id, reply.StatusCode, rejected)
	h.form.Present(rejected.Message, KindError)
	return OutcomeRejected
}

// scheduleHide arms the timer that hides the status region after hideDelay
func (h *Handler) scheduleHide() {
	if h.hideDelay <= 0 {
		return
	}

	h.hideMu.Lock()
	defer h.hideMu.Unlock()

	gen := h.hideGen
	h.stopHide = h.afterFunc(h.hideDelay, func() {
		h.hideMu.Lock()
		defer h.hideMu.Unlock()
		if gen != h.hideGen {
			return
		}
		h.stopHide = nil
		h.form.HideStatus()
	})
}

// cancelPendingHide stops a hide timer left over from a previous submission
// so it cannot hide the status of this one.
func (h *Handler) cancelPendingHide() {
	h.hideMu.Lock()
	defer h.hideMu.Unlock()

	h.hideGen++
	if h.stopHide != nil {
		h.stopHide()
		h.stopHide = nil
	}
}

// Busy reports whether a submission is currently in flight
func (h *Handler) Busy() bool {
	return h.inFlight.Load()
}
