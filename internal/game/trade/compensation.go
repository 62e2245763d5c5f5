package trade

import (
	"fmt"

	"github.com/NoahPeres/ti4engine/internal/game/notes"
	apperrors "github.com/NoahPeres/ti4engine/internal/platform/errors"
)

// StepKind identifies the asset a completed transfer step moved.
type StepKind string

const (
	StepTradeGoods     StepKind = "trade_goods"
	StepCommodities    StepKind = "commodities"
	StepRelicFragments StepKind = "relic_fragments"
	StepNote           StepKind = "note"
)

// Step is one already-applied transfer, recorded so it can be reversed.
// Steps are plain data rather than closures so the compensation log stays
// inspectable in tests and debugging sessions.
type Step struct {
	Kind   StepKind
	From   string
	To     string
	Amount int
	Note   *notes.Note
}

// CompensationLog is the ordered list of applied steps for one execution.
type CompensationLog struct {
	steps []Step
}

// Record appends a completed step to the log.
func (l *CompensationLog) Record(step Step) {
	l.steps = append(l.steps, step)
}

// Steps returns a copy of the recorded steps in application order.
func (l *CompensationLog) Steps() []Step {
	return append([]Step(nil), l.steps...)
}

// Unwind reverses the recorded steps in reverse order.
//
// Trade goods, relic fragments, and notes reverse exactly. A commodity step
// is reversed with a trade-goods transfer because the forward step already
// converted the commodities; the giver gets value back as trade goods, not
// as commodities. Unwind stops at the first inverse that fails and reports
// which step it was.
func (l *CompensationLog) Unwind(resources ResourceMover) error {
	for i := len(l.steps) - 1; i >= 0; i-- {
		step := l.steps[i]
		var err error
		switch step.Kind {
		case StepTradeGoods, StepCommodities:
			err = resources.TransferTradeGoods(step.To, step.From, step.Amount)
		case StepRelicFragments:
			err = resources.TransferRelicFragments(step.To, step.From, step.Amount)
		case StepNote:
			err = resources.TransferNote(step.To, step.From, *step.Note)
		default:
			err = apperrors.New(apperrors.CodeUnknown, fmt.Sprintf("unknown compensation step kind %q", step.Kind))
		}
		if err != nil {
			return apperrors.WrapWithMetadata(apperrors.CodeDealRollbackFailed,
				fmt.Sprintf("compensation step %d (%s %s -> %s) could not be reversed", i, step.Kind, step.From, step.To),
				map[string]string{
					"Step": fmt.Sprintf("%d", i),
					"Kind": string(step.Kind),
				},
				err)
		}
	}
	return nil
}
