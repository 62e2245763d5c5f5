package trade

import (
	"context"
	"errors"

	"github.com/NoahPeres/ti4engine/internal/platform/errors/i18n"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/NoahPeres/ti4engine/internal/platform/errors"
)

// Result is the uniform shape every API entry point returns. Rule violations
// and recoverable failures land here as a failed result; they never surface
// as errors.
type Result struct {
	Success bool
	// Deal is the affected snapshot, when one exists.
	Deal *Transaction
	// Deals carries query results.
	Deals []Transaction
	// ValidationErrors carries the per-rule report from a failed proposal.
	ValidationErrors []string
	// Warnings carries non-blocking observations from proposal validation.
	Warnings []string
	// Effects reports immediate note effects fired by an accepted deal.
	Effects []EffectOutcome
	// ErrorCode and ErrorMessage describe the failure for failed results.
	ErrorCode    string
	ErrorMessage string
}

// API is the façade the game-loop driver calls. Expected failures come back
// as failed Results; the error return is non-nil only when compensation
// itself failed and ledger consistency can no longer be assumed.
type API struct {
	manager *Manager
	tracer  trace.Tracer
	locale  string
}

// NewAPI creates the deal façade.
func NewAPI(manager *Manager) *API {
	return &API{
		manager: manager,
		tracer:  otel.Tracer("ti4engine/trade"),
		locale:  apperrors.DefaultLocale,
	}
}

// Propose submits a candidate deal for validation and storage.
func (a *API) Propose(ctx context.Context, proposer, target string, offer, request Offer) (Result, error) {
	ctx, span := a.tracer.Start(ctx, "deal.propose",
		trace.WithAttributes(
			attribute.String("deal.proposer", proposer),
			attribute.String("deal.target", target),
		))
	defer span.End()

	tx, validation, err := a.manager.Propose(ctx, proposer, target, offer, request)
	if err != nil {
		return a.failure(span, err)
	}
	if !validation.IsValid() {
		return Result{
			ValidationErrors: validation.Errors(),
			Warnings:         validation.Warnings(),
			ErrorCode:        string(apperrors.CodeDealValidationFailed),
			ErrorMessage:     a.message(apperrors.CodeDealValidationFailed, nil),
		}, nil
	}

	span.SetAttributes(attribute.String("deal.id", tx.ID))
	return Result{Success: true, Deal: &tx, Warnings: validation.Warnings()}, nil
}

// Accept executes a pending deal. The error return is non-nil only for a
// failed rollback.
func (a *API) Accept(ctx context.Context, id string) (Result, error) {
	ctx, span := a.tracer.Start(ctx, "deal.accept",
		trace.WithAttributes(attribute.String("deal.id", id)))
	defer span.End()

	tx, outcomes, err := a.manager.Accept(ctx, id)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeDealRollbackFailed) {
			span.RecordError(err)
			return Result{}, err
		}
		result, _ := a.failure(span, err)
		// A non-empty snapshot means the exchange was persisted and only the
		// effect phase failed; the caller must not retry the accept.
		if tx.ID != "" {
			result.Deal = &tx
			result.Effects = outcomes
		}
		return result, nil
	}
	return Result{Success: true, Deal: &tx, Effects: outcomes}, nil
}

// Reject declines a pending deal.
func (a *API) Reject(ctx context.Context, id string) (Result, error) {
	ctx, span := a.tracer.Start(ctx, "deal.reject",
		trace.WithAttributes(attribute.String("deal.id", id)))
	defer span.End()

	tx, err := a.manager.Reject(ctx, id)
	if err != nil {
		return a.failure(span, err)
	}
	return Result{Success: true, Deal: &tx}, nil
}

// Cancel withdraws a pending deal on behalf of its proposer.
func (a *API) Cancel(ctx context.Context, id, requester string) (Result, error) {
	ctx, span := a.tracer.Start(ctx, "deal.cancel",
		trace.WithAttributes(attribute.String("deal.id", id)))
	defer span.End()

	tx, err := a.manager.Cancel(ctx, id, requester)
	if err != nil {
		return a.failure(span, err)
	}
	return Result{Success: true, Deal: &tx}, nil
}

// GetStatus returns the current snapshot of a deal.
func (a *API) GetStatus(ctx context.Context, id string) (Result, error) {
	ctx, span := a.tracer.Start(ctx, "deal.get_status",
		trace.WithAttributes(attribute.String("deal.id", id)))
	defer span.End()

	tx, err := a.manager.Get(ctx, id)
	if err != nil {
		return a.failure(span, err)
	}
	return Result{Success: true, Deal: &tx}, nil
}

// GetPending returns pending deals in first-in-first-out order, optionally
// filtered to those naming the player.
func (a *API) GetPending(ctx context.Context, player string) (Result, error) {
	ctx, span := a.tracer.Start(ctx, "deal.get_pending")
	defer span.End()

	deals, err := a.manager.Pending(ctx, player)
	if err != nil {
		return a.failure(span, err)
	}
	return Result{Success: true, Deals: deals}, nil
}

// GetHistory returns the player's concluded deals in proposal order.
func (a *API) GetHistory(ctx context.Context, player string) (Result, error) {
	ctx, span := a.tracer.Start(ctx, "deal.get_history",
		trace.WithAttributes(attribute.String("deal.player", player)))
	defer span.End()

	deals, err := a.manager.History(ctx, player)
	if err != nil {
		return a.failure(span, err)
	}
	return Result{Success: true, Deals: deals}, nil
}

// HandleElimination cancels every pending deal naming the eliminated player.
func (a *API) HandleElimination(ctx context.Context, player string) (Result, error) {
	ctx, span := a.tracer.Start(ctx, "deal.handle_elimination",
		trace.WithAttributes(attribute.String("deal.player", player)))
	defer span.End()

	cancelled, err := a.manager.HandleElimination(ctx, player)
	if err != nil {
		return a.failure(span, err)
	}
	return Result{Success: true, Deals: cancelled}, nil
}

// failure converts an expected internal error into a failed Result.
func (a *API) failure(span trace.Span, err error) (Result, error) {
	span.RecordError(err)
	code := apperrors.GetCode(err)

	message := err.Error()
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		message = a.message(code, appErr.Metadata)
	}
	return Result{
		ErrorCode:    string(code),
		ErrorMessage: message,
	}, nil
}

// message renders the user-facing catalog message for a code.
func (a *API) message(code apperrors.Code, metadata map[string]string) string {
	catalog := i18n.GetCatalog(a.locale)
	return catalog.Format(string(code), metadata)
}
