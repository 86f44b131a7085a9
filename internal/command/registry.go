package command

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/resumeai/resumeai-desktop/internal/model"
)

// Handler is a single named entry point invoked by the frontend. Args carry
// the host-serialized arguments exactly as received; the returned value is
// handed back to the caller verbatim.
type Handler func(args json.RawMessage) (any, error)

// Registry constants
const (
	// HistoryLimit caps how many invocations are retained for display
	HistoryLimit = 50

	// DetailMaxLength truncates result summaries in the history panel
	DetailMaxLength = 80

	// InvocationIDPrefix namespaces invocation IDs
	InvocationIDPrefix = "inv-"
)

// Registry routes named command invocations to their handlers, mirroring the
// invoke channel of the GUI host runtime.
type Registry struct {
	handlers      map[string]Handler
	handlersMutex sync.RWMutex

	history      []*model.Invocation
	historyMutex sync.RWMutex

	onInvoked func(*model.Invocation) // callback for UI updates
}

// NewRegistry creates an empty command registry
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// SetInvokedCallback sets the callback fired after every completed invocation
func (r *Registry) SetInvokedCallback(callback func(*model.Invocation)) {
	r.onInvoked = callback
}

// Register binds a handler to a command name. Registering an existing name
// replaces the previous handler.
func (r *Registry) Register(name string, handler Handler) {
	r.handlersMutex.Lock()
	defer r.handlersMutex.Unlock()
	r.handlers[name] = handler
}

// Commands returns the registered command names
func (r *Registry) Commands() []string {
	r.handlersMutex.RLock()
	defer r.handlersMutex.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}

// Invoke routes a named command to its handler. Any handler error is
// collapsed into a flat "operation failed" error for the frontend; the
// original text survives only inside the message.
func (r *Registry) Invoke(name string, args json.RawMessage) (any, error) {
	r.handlersMutex.RLock()
	handler, exists := r.handlers[name]
	r.handlersMutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("unknown command: %s", name)
	}

	inv := &model.Invocation{
		ID:        generateInvocationID(),
		Command:   name,
		StartedAt: time.Now(),
	}

	result, err := handler(args)
	inv.FinishedAt = time.Now()

	if err != nil {
		inv.Detail = err.Error()
		r.record(inv)
		return nil, fmt.Errorf("operation failed: %v", err)
	}

	inv.OK = true
	inv.Detail = summarize(result)
	r.record(inv)
	return result, nil
}

// Recent returns up to n invocations, newest first
func (r *Registry) Recent(n int) []*model.Invocation {
	r.historyMutex.RLock()
	defer r.historyMutex.RUnlock()

	if n > len(r.history) {
		n = len(r.history)
	}

	recent := make([]*model.Invocation, 0, n)
	for i := len(r.history) - 1; i >= len(r.history)-n; i-- {
		recent = append(recent, r.history[i])
	}
	return recent
}

// record appends an invocation to the bounded history and notifies the UI
func (r *Registry) record(inv *model.Invocation) {
	r.historyMutex.Lock()
	r.history = append(r.history, inv)
	if len(r.history) > HistoryLimit {
		r.history = r.history[len(r.history)-HistoryLimit:]
	}
	r.historyMutex.Unlock()

	if r.onInvoked != nil {
		r.onInvoked(inv)
	}
}

// summarize renders a handler result as a short display string
func summarize(result any) string {
	if result == nil {
		return ""
	}

	var detail string
	switch v := result.(type) {
	case string:
		detail = v
	case bool:
		detail = fmt.Sprintf("%t", v)
	default:
		detail = fmt.Sprintf("%v", v)
	}

	if len(detail) > DetailMaxLength {
		detail = detail[:DetailMaxLength]
	}
	return detail
}

// generateInvocationID generates a unique time-ordered invocation ID
func generateInvocationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp-based ID
		return fmt.Sprintf("%s%d", InvocationIDPrefix, time.Now().UnixNano())
	}
	return InvocationIDPrefix + id.String()
}
