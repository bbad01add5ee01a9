// Package manager owns the in-memory vendor list and sequences every call
// into a VendorService. Each successful mutation is followed by a full
// refetch, so Records always reflects what the backend confirmed.
package manager

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/juju/loggo"

	"github.com/mesh-intelligence/vendors/pkg/types"
)

var logger = loggo.GetLogger("vendors.manager")

// ErrBusy is returned when a mutation is requested while another one is
// still in flight.
var ErrBusy = errors.New("another operation is in progress")

// OperationError reports a failed mutation.
type OperationError struct {
	Op      string // "add", "update" or "delete".
	Key     string
	Message string
	Err     error // cause, when known.
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Op, e.Key, e.Message)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Manager is the single owner of the vendor cache. Mutations are
// single-flight: a second Add, Update or Delete started while one is
// running returns ErrBusy and changes nothing. Refresh is not guarded.
type Manager struct {
	svc types.VendorService

	mu    sync.Mutex
	state State

	mutating atomic.Bool
	observer func(State)
	newID    func() string
}

// Option configures a Manager.
type Option func(*Manager)

// WithObserver registers fn to receive a snapshot after every state change.
// fn is called without the Manager's lock held.
func WithObserver(fn func(State)) Option {
	return func(m *Manager) {
		m.observer = fn
	}
}

// WithIDGenerator replaces the generator of alert IDs.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) {
		m.newID = fn
	}
}

// New creates a Manager over svc and performs the first refresh before
// returning. A failed first load is reported through FetchError.
func New(ctx context.Context, svc types.VendorService, opts ...Option) *Manager {
	m := &Manager{
		svc:   svc,
		newID: generateUUID,
		state: State{FirstLoadInProgress: true},
	}
	for _, opt := range opts {
		opt(m)
	}
	_ = m.Refresh(ctx)
	return m
}

// State returns a copy of the current state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

// Records returns a copy of the cached vendor list.
func (m *Manager) Records() []types.Vendor {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.state.Records)
}

// Busy reports whether a fetch or mutation is in flight.
func (m *Manager) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Busy
}

// FirstLoadInProgress reports whether the initial refresh is still running.
func (m *Manager) FirstLoadInProgress() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.FirstLoadInProgress
}

// FetchError returns the last refresh failure, or "".
func (m *Manager) FetchError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.FetchError
}

// Alert returns the current alert, or nil.
func (m *Manager) Alert() *Alert {
	return m.State().Alert
}

// Add stores v through the backend. It returns nil on success.
func (m *Manager) Add(ctx context.Context, v types.Vendor) error {
	return m.mutate(ctx, "add", v.CompanyName, func(ctx context.Context) error {
		return m.svc.Add(ctx, v).Err()
	}, func() string {
		return fmt.Sprintf("Vendor %q added successfully", v.CompanyName)
	})
}

// Update replaces the vendor keyed by originalName with v. It returns nil
// on success.
func (m *Manager) Update(ctx context.Context, originalName string, v types.Vendor) error {
	return m.mutate(ctx, "update", originalName, func(ctx context.Context) error {
		return m.svc.Update(ctx, originalName, v).Err()
	}, func() string {
		return fmt.Sprintf("Vendor %q updated successfully", v.CompanyName)
	})
}

// Delete removes the vendor keyed by name. It returns nil on success.
func (m *Manager) Delete(ctx context.Context, name string) error {
	return m.mutate(ctx, "delete", name, func(ctx context.Context) error {
		return m.svc.Delete(ctx, name).Err()
	}, func() string {
		return fmt.Sprintf("Vendor %q deleted successfully", name)
	})
}

// mutate runs one backend mutation; call returns the backend's failure.
func (m *Manager) mutate(ctx context.Context, op, key string, call func(context.Context) error, success func() string) error {
	if !m.mutating.CompareAndSwap(false, true) {
		logger.Debugf("%s %q rejected: %v", op, key, ErrBusy)
		return ErrBusy
	}
	defer m.mutating.Store(false)

	if strings.TrimSpace(key) == "" {
		opErr := &OperationError{Op: op, Key: key, Message: types.ErrInvalidName.Error(), Err: types.ErrInvalidName}
		m.update(func(s *State) {
			s.Alert = m.alert(AlertError, failureMessage(op, opErr.Message))
		})
		return opErr
	}

	m.update(func(s *State) {
		s.Busy = true
		s.Alert = nil
	})

	if err := m.invoke(ctx, call); err != nil {
		msg := err.Error()
		logger.Warningf("%s %q failed: %s", op, key, msg)
		m.update(func(s *State) {
			s.Alert = m.alert(AlertError, failureMessage(op, msg))
			s.Busy = false
		})
		return &OperationError{Op: op, Key: key, Message: msg, Err: causeOf(msg)}
	}

	logger.Infof("%s %q succeeded", op, key)
	m.update(func(s *State) {
		s.Alert = m.alert(AlertSuccess, success())
	})
	_ = m.Refresh(ctx)
	return nil
}

// invoke calls into the backend, converting a panic into an error so
// nothing escapes the operation boundary.
func (m *Manager) invoke(ctx context.Context, call func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected backend failure: %v", r)
		}
	}()
	return call(ctx)
}

// Refresh refetches the full list. On success the cache is replaced; on
// failure FetchError is set and the previous records are kept. Busy and
// FirstLoadInProgress are cleared either way.
func (m *Manager) Refresh(ctx context.Context) error {
	m.update(func(s *State) {
		s.Busy = true
		s.FetchError = ""
	})

	var res types.Result[[]types.Vendor]
	if err := m.invoke(ctx, func(ctx context.Context) error {
		res = m.svc.FetchAll(ctx)
		return res.Err()
	}); err != nil {
		res = types.Fail[[]types.Vendor](err)
	}

	m.update(func(s *State) {
		if res.Success {
			s.Records = slices.Clone(res.Data)
		} else {
			s.FetchError = res.Error
		}
		s.Busy = false
		s.FirstLoadInProgress = false
	})

	if !res.Success {
		logger.Warningf("refresh failed: %s", res.Error)
		return fmt.Errorf("refresh: %w", res.Err())
	}
	logger.Debugf("refreshed %d vendors", len(res.Data))
	return nil
}

// DismissAlert clears the current alert.
func (m *Manager) DismissAlert() {
	m.update(func(s *State) {
		s.Alert = nil
	})
}

// update applies fn under the lock and notifies the observer.
func (m *Manager) update(fn func(*State)) {
	m.mu.Lock()
	fn(&m.state)
	snap := m.state.clone()
	m.mu.Unlock()

	if m.observer != nil {
		m.observer(snap)
	}
}

func (m *Manager) alert(kind AlertKind, msg string) *Alert {
	return &Alert{ID: m.newID(), Kind: kind, Message: msg}
}

func failureMessage(op, msg string) string {
	return fmt.Sprintf("Failed to %s vendor: %s", op, msg)
}

// causeOf recovers the sentinel behind a backend message so callers can
// use errors.Is across the Result boundary.
func causeOf(msg string) error {
	if strings.Contains(msg, types.ErrNotFound.Error()) {
		return types.ErrNotFound
	}
	return nil
}

// generateUUID generates a UUID v7 for alert IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
