package hooks

import (
	"context"
	"fmt"
	"sync"

	"lilac/models"
)

// FieldFilter receives the full checkout field schema and returns a possibly
// reduced or reordered schema.
type FieldFilter func(ctx context.Context, schema models.FieldSchema) models.FieldSchema

// ValuePrimer receives a single field's proposed display value and returns a
// possibly overridden value.
type ValuePrimer func(ctx context.Context, fieldKey, candidate string) string

// PreValidator runs before order-field validation and mutates the incoming
// submission in place.
type PreValidator func(ctx context.Context, submission models.Submission)

type namedFieldFilter struct {
	name string
	fn   FieldFilter
}

type namedValuePrimer struct {
	name string
	fn   ValuePrimer
}

type namedPreValidator struct {
	name string
	fn   PreValidator
}

// Engine is the extension-point dispatch table the commerce engine exposes.
// Callbacks are registered under unique names and applied in registration
// order. Registration happens once at bootstrap; application is per-request.
type Engine struct {
	mu            sync.RWMutex
	names         map[string]struct{}
	fieldFilters  []namedFieldFilter
	valuePrimers  []namedValuePrimer
	preValidators []namedPreValidator
}

// NewEngine creates an empty dispatch table.
func NewEngine() *Engine {
	return &Engine{names: make(map[string]struct{})}
}

func (e *Engine) claim(name string) error {
	if name == "" {
		return fmt.Errorf("hook name must not be empty")
	}
	if _, exists := e.names[name]; exists {
		return fmt.Errorf("hook %q is already registered", name)
	}
	e.names[name] = struct{}{}
	return nil
}

// RegisterFieldFilter registers a named field filter. Duplicate names are rejected.
func (e *Engine) RegisterFieldFilter(name string, fn FieldFilter) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.claim(name); err != nil {
		return err
	}
	e.fieldFilters = append(e.fieldFilters, namedFieldFilter{name: name, fn: fn})
	return nil
}

// RegisterValuePrimer registers a named value primer. Duplicate names are rejected.
func (e *Engine) RegisterValuePrimer(name string, fn ValuePrimer) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.claim(name); err != nil {
		return err
	}
	e.valuePrimers = append(e.valuePrimers, namedValuePrimer{name: name, fn: fn})
	return nil
}

// RegisterPreValidator registers a named pre-validation callback. Duplicate
// names are rejected.
func (e *Engine) RegisterPreValidator(name string, fn PreValidator) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.claim(name); err != nil {
		return err
	}
	e.preValidators = append(e.preValidators, namedPreValidator{name: name, fn: fn})
	return nil
}

// Registered reports whether a hook with the given name exists.
func (e *Engine) Registered(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.names[name]
	return ok
}

// ApplyFieldFilters runs every field filter over the schema in registration order.
func (e *Engine) ApplyFieldFilters(ctx context.Context, schema models.FieldSchema) models.FieldSchema {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, f := range e.fieldFilters {
		schema = f.fn(ctx, schema)
	}
	return schema
}

// PrimeValue runs every value primer over the candidate value in registration order.
func (e *Engine) PrimeValue(ctx context.Context, fieldKey, candidate string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, p := range e.valuePrimers {
		candidate = p.fn(ctx, fieldKey, candidate)
	}
	return candidate
}

// RunPreValidators runs every pre-validation callback over the submission in
// registration order.
func (e *Engine) RunPreValidators(ctx context.Context, submission models.Submission) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, v := range e.preValidators {
		v.fn(ctx, submission)
	}
}
