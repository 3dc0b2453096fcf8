package usecase

import (
	"context"
	"fmt"
	"log"
)

// Workflow drives a Session synchronously: every DetailRequest the session
// emits is resolved before the call returns.
type Workflow struct {
	session  *Session
	saved    *SavedList
	loader   *Loader
	resolver *Resolver
	logger   *log.Logger
}

// NewWorkflow creates a new Workflow instance.
func NewWorkflow(loader *Loader, resolver *Resolver, saved *SavedList, logger *log.Logger) *Workflow {
	return &Workflow{
		session:  NewSession(saved, logger),
		saved:    saved,
		loader:   loader,
		resolver: resolver,
		logger:   logger,
	}
}

// Start hydrates the saved list and loads the candidates. A failed load is
// not an error here: it leaves the session in StateError. Only store
// failures and cancellation of ctx are returned.
func (w *Workflow) Start(ctx context.Context) error {
	if err := w.saved.Hydrate(ctx); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	w.session.BeginLoad()
	candidates, err := w.loader.Load(ctx)
	req := w.session.Loaded(candidates, err)
	if err := ctx.Err(); err != nil {
		return err
	}
	return w.settle(ctx, req)
}

// Accept saves the current candidate and moves to the next one.
func (w *Workflow) Accept(ctx context.Context) error {
	req, err := w.session.Accept(ctx)
	if err != nil {
		return err
	}
	return w.settle(ctx, req)
}

// Reject moves to the next candidate.
func (w *Workflow) Reject(ctx context.Context) error {
	return w.settle(ctx, w.session.Reject())
}

// Session exposes the underlying state machine.
func (w *Workflow) Session() *Session {
	return w.session
}

// settle resolves requests until the session stops asking for details.
// Once ctx is done it stops without applying the pending result, leaving
// the current candidate shown as a summary.
func (w *Workflow) settle(ctx context.Context, req *DetailRequest) error {
	for req != nil {
		c := w.session.Candidates()[req.Index]
		detail := w.resolver.Resolve(ctx, c)
		if err := ctx.Err(); err != nil {
			return err
		}
		req = w.session.ApplyDetail(*req, detail)
	}
	return nil
}
