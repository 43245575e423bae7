package domain

import (
	"context"
	"time"
)

// Span times one named step of a request.
type Span struct {
	Name    string `json:"name"`
	Elapsed *int64 `json:"elapsedMs"`
	startTs time.Time
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
}

const ContextProfileKey = "performanceProfile"

// Profile is simply a list of spans
type Profile struct {
	Spans   []*Span `json:"spans"`
	TotalMs *int64  `json:"totalMs"`
	startTs time.Time
}

func NewProfile() (newProfile *Profile, endNewProfile func()) {
	newProfile = &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}
	return newProfile, newProfile.End
}

func (p *Profile) End() {
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	if p.TotalMs == nil {
		t := time.Since(p.startTs).Milliseconds()
		p.TotalMs = &t
	}
}

// StartNewSpan ends the last span and begins a new one.
// not thread safe
func (p *Profile) StartNewSpan(name string) (newSpan *Span, endSpan func()) {
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	newSpan = &Span{
		Name:    name,
		startTs: time.Now(),
	}
	p.Spans = append(p.Spans, newSpan)
	return newSpan, newSpan.End
}

func WithProfile(ctx context.Context, p *Profile) context.Context {
	return context.WithValue(ctx, ContextProfileKey, p)
}

// ProfileFromContext returns a throwaway profile when ctx carries none,
// so callers can always record spans.
func ProfileFromContext(ctx context.Context) *Profile {
	if p, ok := ctx.Value(ContextProfileKey).(*Profile); ok && p != nil {
		return p
	}
	p, _ := NewProfile()
	return p
}
