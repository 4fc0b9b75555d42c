// Package observable provides the base type for data-bound model objects
// with validated, change-notifying properties. Concrete model types embed
// *Model, declare their validated properties, and route every property
// setter through the Set mutation primitive.
//
// A Model and its registry are confined to the goroutine that mutates them;
// the package performs no internal locking.
package observable

import (
	"context"
	"log/slog"

	"github.com/looplab/fsm"

	"github.com/formbind-dev/formbind-sdk/domain/entities"
	dErrors "github.com/formbind-dev/formbind-sdk/domain/errors"
	sdklog "github.com/formbind-dev/formbind-sdk/log"
	"github.com/formbind-dev/formbind-sdk/registry"
)

// LastErrorProperty is the property name carried by change notifications
// fired when the model's last-error value changes.
const LastErrorProperty = "LastError"

// Construction lifecycle states.
const (
	stateUninitialized = "uninitialized"
	stateRegistering   = "registering"
	stateReady         = "ready"
)

const (
	eventDeclare = "declare"
	eventVerify  = "verify"
)

// RegisterFunc populates a model's registry during construction. Each
// concrete type supplies one, calling Register once per declared property.
type RegisterFunc func(r *registry.Registry) error

// Option configures a Model during construction.
type Option func(*Model)

// WithLogger attaches a logger; registration and notification delivery are
// logged at Debug. The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Model is the observable validated object base. Build via New; the zero
// value is not usable.
type Model struct {
	reg       *registry.Registry
	lifecycle *fsm.FSM
	subs      []subscription
	nextToken int
	lastError string
	logger    *slog.Logger
}

// New constructs a Model: the registration function runs against a fresh
// registry bound to the declaration table, then completeness is verified and
// the registry is sealed. Any registration or completeness failure aborts
// construction; the model is never returned in a partially built state.
//
// A nil register function registers nothing, which only verifies clean when
// the declaration table is empty.
func New(decls *entities.Declarations, register RegisterFunc, opts ...Option) (*Model, error) {
	if decls == nil {
		return nil, &dErrors.InvalidArgumentError{Argument: "decls", Reason: "must not be nil"}
	}

	m := &Model{
		reg:    registry.New(decls),
		logger: sdklog.Discard(),
		lifecycle: fsm.NewFSM(
			stateUninitialized,
			fsm.Events{
				{Name: eventDeclare, Src: []string{stateUninitialized}, Dst: stateRegistering},
				{Name: eventVerify, Src: []string{stateRegistering}, Dst: stateReady},
			},
			fsm.Callbacks{},
		),
	}
	for _, opt := range opts {
		opt(m)
	}

	ctx := context.Background()
	if err := m.lifecycle.Event(ctx, eventDeclare); err != nil {
		return nil, err
	}
	if register != nil {
		if err := register(m.reg); err != nil {
			return nil, err
		}
	}
	if err := m.reg.Verify(); err != nil {
		return nil, err
	}
	m.reg.Seal()
	if err := m.lifecycle.Event(ctx, eventVerify); err != nil {
		return nil, err
	}

	m.logger.Debug("model constructed", "properties", m.reg.Properties())
	return m, nil
}

// MustNew is New, panicking on error. Construction failures are programmer
// errors, so panicking at startup is an acceptable way to surface them.
func MustNew(decls *entities.Declarations, register RegisterFunc, opts ...Option) *Model {
	m, err := New(decls, register, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Ready reports whether construction completed. Models obtained from New
// are always ready; this exists for diagnostics on embedded zero values.
func (m *Model) Ready() bool {
	return m.lifecycle != nil && m.lifecycle.Is(stateReady)
}

// ErrorFor evaluates the validation rule for a property and returns its
// failure message, or "" when the property is valid or has no rule. The
// predicate runs freshly on every call. As a side effect the model's
// last-error value is updated, which may itself fire a change notification
// for LastErrorProperty.
func (m *Model) ErrorFor(property string) string {
	rule, ok := m.reg.Lookup(property)
	if !ok {
		return ""
	}
	if passes(rule.Validate) {
		m.setLastError("")
		return ""
	}
	m.setLastError(rule.Message)
	return rule.Message
}

// ErrorsFor evaluates every registered property, in sorted name order, and
// returns the failure messages of the ones that are currently invalid.
func (m *Model) ErrorsFor() map[string]string {
	failures := make(map[string]string)
	for _, name := range m.reg.Properties() {
		if msg := m.ErrorFor(name); msg != "" {
			failures[name] = msg
		}
	}
	return failures
}

// Valid reports whether every registered property is currently valid.
func (m *Model) Valid() bool {
	return len(m.ErrorsFor()) == 0
}

// LastError returns the message produced by the most recent validity query,
// or "" when that query found the property valid.
func (m *Model) LastError() string {
	return m.lastError
}

func (m *Model) setLastError(msg string) {
	Set(m, &m.lastError, msg, LastErrorProperty)
}

// passes runs a validator defensively: a nil or panicking predicate counts
// as failing, never as an error to the caller.
func passes(v entities.Validator) (ok bool) {
	if v == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return v()
}
