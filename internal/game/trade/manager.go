package trade

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/NoahPeres/ti4engine/internal/game/audit"
	apperrors "github.com/NoahPeres/ti4engine/internal/platform/errors"
)

// ErrCancelNotProposer indicates a cancel attempt by anyone but the proposer.
var ErrCancelNotProposer = apperrors.New(apperrors.CodeDealCancelNotProposer, "only the proposer can cancel a pending deal")

// Manager orchestrates the deal lifecycle: propose, accept with
// compensation, reject, cancel, queries, and elimination cleanup.
//
// The engine is driven serially by the game loop, so the manager performs
// no locking of its own; the store guards its internals for callers that
// share one across goroutines anyway.
type Manager struct {
	store     TransactionStore
	validator *Validator
	resources ResourceMover
	effects   *EffectActivator
	audit     *audit.Emitter
	clock     func() time.Time
	sequence  uint64
}

// NewManager creates a deal manager. The audit emitter may be nil.
func NewManager(store TransactionStore, validator *Validator, resources ResourceMover, effects *EffectActivator, emitter *audit.Emitter) *Manager {
	return &Manager{
		store:     store,
		validator: validator,
		resources: resources,
		effects:   effects,
		audit:     emitter,
		clock:     time.Now,
	}
}

// Propose validates a candidate deal and stores it as pending.
//
// A rule violation is the normal return path: the ValidationResult carries
// the accumulated errors and nothing is stored. The error return is reserved
// for malformed input and storage failures.
func (m *Manager) Propose(ctx context.Context, proposer, target string, offer, request Offer) (Transaction, ValidationResult, error) {
	tx, err := NewTransaction(NewTransactionInput{
		Proposer: proposer,
		Target:   target,
		Offer:    offer,
		Request:  request,
	}, m.clock)
	if err != nil {
		return Transaction{}, ValidationResult{}, err
	}

	result, err := m.validator.Validate(tx)
	if err != nil {
		return Transaction{}, ValidationResult{}, err
	}
	if !result.IsValid() {
		m.emit(ctx, "deal.propose.invalid", audit.SeverityWarn, "", apperrors.CodeDealValidationFailed, map[string]string{
			"Proposer": tx.Proposer,
			"Target":   tx.Target,
		})
		return Transaction{}, result, nil
	}

	id, err := m.nextID(ctx)
	if err != nil {
		return Transaction{}, ValidationResult{}, err
	}
	tx.ID = id

	if err := m.store.Put(ctx, tx); err != nil {
		return Transaction{}, ValidationResult{}, err
	}

	m.emit(ctx, "deal.propose", audit.SeverityInfo, tx.ID, "", map[string]string{
		"Proposer": tx.Proposer,
		"Target":   tx.Target,
	})
	return tx, result, nil
}

// Accept executes a pending deal atomically.
//
// Every non-zero component of both offers is applied in a fixed order, each
// completed transfer recorded on a compensation log. If a transfer fails the
// log is unwound in reverse; the deal stays pending and the returned error
// carries CodeDealExecutionFailed. If unwinding itself fails the returned
// error carries CodeDealRollbackFailed, the one failure the engine treats
// as fatal because ledger integrity is no longer assured.
func (m *Manager) Accept(ctx context.Context, id string) (Transaction, []EffectOutcome, error) {
	tx, err := m.store.Get(ctx, id)
	if err != nil {
		return Transaction{}, nil, err
	}
	if tx.Status != StatusPending {
		return Transaction{}, nil, statusDisallowsOperation(tx.Status, "accept")
	}

	log := &CompensationLog{}
	if execErr := m.execute(tx, log); execErr != nil {
		if unwindErr := log.Unwind(m.resources); unwindErr != nil {
			rollbackErr := apperrors.WrapWithMetadata(apperrors.CodeDealRollbackFailed,
				"deal execution failed and compensation could not restore the ledger",
				map[string]string{"OriginalError": execErr.Error()},
				unwindErr)
			m.emit(ctx, "deal.accept.rollback_failed", audit.SeverityError, tx.ID, apperrors.CodeDealRollbackFailed, nil)
			return Transaction{}, nil, rollbackErr
		}
		m.emit(ctx, "deal.accept.failed", audit.SeverityWarn, tx.ID, apperrors.GetCode(execErr), nil)
		return Transaction{}, nil, apperrors.Wrap(apperrors.CodeDealExecutionFailed,
			"deal execution failed; all transfers were reversed", execErr)
	}

	updated, err := TransitionStatus(tx, StatusAccepted, m.clock)
	if err != nil {
		return Transaction{}, nil, err
	}
	if err := m.store.Put(ctx, updated); err != nil {
		return Transaction{}, nil, apperrors.Wrap(apperrors.CodeUnknown, "persist accepted deal", err)
	}

	outcomes, err := m.activateEffects(updated)
	if err != nil {
		return updated, outcomes, err
	}

	attributes := map[string]string{"Proposer": updated.Proposer, "Target": updated.Target}
	for _, outcome := range outcomes {
		attributes["Effect:"+outcome.Note.Label()] = outcome.Reason
	}
	m.emit(ctx, "deal.accept", audit.SeverityInfo, updated.ID, "", attributes)
	return updated, outcomes, nil
}

// Reject declines a pending deal. No resources move.
func (m *Manager) Reject(ctx context.Context, id string) (Transaction, error) {
	updated, err := m.transitionPending(ctx, id, StatusRejected, "reject", "")
	if err != nil {
		return Transaction{}, err
	}
	m.emit(ctx, "deal.reject", audit.SeverityInfo, updated.ID, "", nil)
	return updated, nil
}

// Cancel withdraws a pending deal. Only the original proposer may cancel.
func (m *Manager) Cancel(ctx context.Context, id, requester string) (Transaction, error) {
	// Stored proposer ids are trimmed at construction; match that here.
	requester = strings.TrimSpace(requester)
	updated, err := m.transitionPending(ctx, id, StatusCancelled, "cancel", requester)
	if err != nil {
		return Transaction{}, err
	}
	m.emit(ctx, "deal.cancel", audit.SeverityInfo, updated.ID, "", map[string]string{"Requester": requester})
	return updated, nil
}

// Get returns the current snapshot of a deal.
func (m *Manager) Get(ctx context.Context, id string) (Transaction, error) {
	return m.store.Get(ctx, id)
}

// Pending returns pending deals in proposal order. An empty player returns
// every pending deal; otherwise only deals naming the player as either party.
func (m *Manager) Pending(ctx context.Context, player string) ([]Transaction, error) {
	return m.list(ctx, func(tx Transaction) bool {
		if tx.Status != StatusPending {
			return false
		}
		return player == "" || tx.Names(player)
	})
}

// History returns the player's concluded deals in proposal order.
func (m *Manager) History(ctx context.Context, player string) ([]Transaction, error) {
	return m.list(ctx, func(tx Transaction) bool {
		return tx.Status != StatusPending && tx.Names(player)
	})
}

// HandleElimination cancels every pending deal naming the eliminated player.
// Nothing has moved for a pending deal, so no resource calls are made;
// concluded deals stay in history untouched.
func (m *Manager) HandleElimination(ctx context.Context, player string) ([]Transaction, error) {
	pending, err := m.Pending(ctx, player)
	if err != nil {
		return nil, err
	}

	cancelled := make([]Transaction, 0, len(pending))
	for _, tx := range pending {
		updated, err := TransitionStatus(tx, StatusCancelled, m.clock)
		if err != nil {
			return cancelled, err
		}
		if err := m.store.Put(ctx, updated); err != nil {
			return cancelled, err
		}
		cancelled = append(cancelled, updated)
	}

	m.emit(ctx, "deal.eliminate", audit.SeverityInfo, "", "", map[string]string{
		"Player":    player,
		"Cancelled": fmt.Sprintf("%d", len(cancelled)),
	})
	return cancelled, nil
}

// execute applies every non-zero component of both offers in a fixed order,
// recording each completed transfer on the compensation log.
func (m *Manager) execute(tx Transaction, log *CompensationLog) error {
	for _, step := range executionPlan(tx) {
		if err := m.applyStep(step); err != nil {
			return err
		}
		log.Record(step)
	}
	return nil
}

// executionPlan lists the transfers a deal requires: trade goods both ways,
// then commodities, then relic fragments, then notes.
func executionPlan(tx Transaction) []Step {
	var plan []Step
	appendAmount := func(kind StepKind, from, to string, amount int) {
		if amount > 0 {
			plan = append(plan, Step{Kind: kind, From: from, To: to, Amount: amount})
		}
	}

	appendAmount(StepTradeGoods, tx.Proposer, tx.Target, tx.Offer.TradeGoods)
	appendAmount(StepTradeGoods, tx.Target, tx.Proposer, tx.Request.TradeGoods)
	appendAmount(StepCommodities, tx.Proposer, tx.Target, tx.Offer.Commodities)
	appendAmount(StepCommodities, tx.Target, tx.Proposer, tx.Request.Commodities)
	appendAmount(StepRelicFragments, tx.Proposer, tx.Target, tx.Offer.RelicFragments)
	appendAmount(StepRelicFragments, tx.Target, tx.Proposer, tx.Request.RelicFragments)
	if tx.Offer.Note != nil {
		plan = append(plan, Step{Kind: StepNote, From: tx.Proposer, To: tx.Target, Note: tx.Offer.Note})
	}
	if tx.Request.Note != nil {
		plan = append(plan, Step{Kind: StepNote, From: tx.Target, To: tx.Proposer, Note: tx.Request.Note})
	}
	return plan
}

func (m *Manager) applyStep(step Step) error {
	switch step.Kind {
	case StepTradeGoods:
		return m.resources.TransferTradeGoods(step.From, step.To, step.Amount)
	case StepCommodities:
		return m.resources.TransferCommodities(step.From, step.To, step.Amount)
	case StepRelicFragments:
		return m.resources.TransferRelicFragments(step.From, step.To, step.Amount)
	case StepNote:
		return m.resources.TransferNote(step.From, step.To, *step.Note)
	default:
		return apperrors.New(apperrors.CodeUnknown, fmt.Sprintf("unknown step kind %q", step.Kind))
	}
}

// activateEffects fires immediate effects for every note that changed hands.
func (m *Manager) activateEffects(tx Transaction) ([]EffectOutcome, error) {
	var outcomes []EffectOutcome
	if tx.Offer.Note != nil {
		outcome, err := m.effects.Activate(*tx.Offer.Note, tx.Target)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}
	if tx.Request.Note != nil {
		outcome, err := m.effects.Activate(*tx.Request.Note, tx.Proposer)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// transitionPending moves a pending deal to a terminal status-only state.
func (m *Manager) transitionPending(ctx context.Context, id string, target Status, operation, requester string) (Transaction, error) {
	tx, err := m.store.Get(ctx, id)
	if err != nil {
		return Transaction{}, err
	}
	if tx.Status != StatusPending {
		return Transaction{}, statusDisallowsOperation(tx.Status, operation)
	}
	if operation == "cancel" && requester != tx.Proposer {
		return Transaction{}, apperrors.WithMetadata(apperrors.CodeDealCancelNotProposer,
			"only the proposer can cancel a pending deal",
			map[string]string{"Requester": requester, "Proposer": tx.Proposer})
	}

	updated, err := TransitionStatus(tx, target, m.clock)
	if err != nil {
		return Transaction{}, err
	}
	if err := m.store.Put(ctx, updated); err != nil {
		return Transaction{}, err
	}
	return updated, nil
}

func (m *Manager) list(ctx context.Context, keep func(Transaction) bool) ([]Transaction, error) {
	all, err := m.store.List(ctx)
	if err != nil {
		return nil, err
	}

	var matched []Transaction
	for _, tx := range all {
		if keep(tx) {
			matched = append(matched, tx)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return matched, nil
}

// nextID assigns monotonically increasing deal IDs, resuming the sequence
// from stored deals when the engine reopens a persisted session.
func (m *Manager) nextID(ctx context.Context) (string, error) {
	if m.sequence == 0 {
		existing, err := m.store.List(ctx)
		if err != nil {
			return "", err
		}
		for _, tx := range existing {
			var n uint64
			if _, err := fmt.Sscanf(strings.TrimSpace(tx.ID), "deal-%d", &n); err == nil && n > m.sequence {
				m.sequence = n
			}
		}
	}
	m.sequence++
	return fmt.Sprintf("deal-%06d", m.sequence), nil
}

func (m *Manager) emit(ctx context.Context, name string, severity audit.Severity, dealID string, code apperrors.Code, attributes map[string]string) {
	// Audit failures never block the deal flow.
	_ = m.audit.Emit(ctx, audit.Event{
		EventName:  name,
		Severity:   severity,
		DealID:     dealID,
		Code:       string(code),
		Attributes: attributes,
	})
}

func statusDisallowsOperation(status Status, operation string) error {
	label := StatusLabel(status)
	return apperrors.WithMetadata(apperrors.CodeDealStatusDisallowsOp,
		fmt.Sprintf("deal status %s does not allow %s", label, operation),
		map[string]string{"Status": label, "Operation": operation})
}
