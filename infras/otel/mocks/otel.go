// Package mocks provides an otel.Otel that records scopes in memory instead of exporting
// spans.
package mocks

import (
	"context"
	"sync"

	"dueday/infras/otel"
)

// Recorder implements otel.Otel. Every scope it opens is kept so tests can inspect the
// attributes and errors a call produced.
type Recorder struct {
	mu     sync.Mutex
	scopes []*Scope
}

func NewOtel() *Recorder {
	return &Recorder{}
}

func (r *Recorder) NewScope(ctx context.Context, _, name string) (context.Context, otel.Scope) {
	scope := &Scope{Name: name, attributes: map[string]any{}}

	r.mu.Lock()
	r.scopes = append(r.scopes, scope)
	r.mu.Unlock()

	return ctx, scope
}

func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Scopes returns the scopes opened under name, in opening order.
func (r *Recorder) Scopes(name string) []*Scope {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found []*Scope

	for _, scope := range r.scopes {
		if scope.Name == name {
			found = append(found, scope)
		}
	}

	return found
}

type Scope struct {
	Name string

	mu         sync.Mutex
	attributes map[string]any
	errors     []error
	events     []string
	ended      bool
}

func (s *Scope) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ended = true
}

func (s *Scope) TraceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errors = append(s.errors, err)
}

func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, name)
}

func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

func (s *Scope) Attribute(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.attributes[key]

	return value, ok
}

func (s *Scope) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]error(nil), s.errors...)
}

func (s *Scope) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ended
}
