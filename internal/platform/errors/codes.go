// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Offer errors
	CodeOfferNegativeAmount Code = "OFFER_NEGATIVE_AMOUNT"
	CodeOfferTooManyNotes   Code = "OFFER_TOO_MANY_NOTES"
	CodeOfferMissing        Code = "OFFER_MISSING"

	// Deal proposal/validation errors
	CodeDealSamePlayer              Code = "DEAL_SAME_PLAYER"
	CodeDealEmptyPlayerID           Code = "DEAL_EMPTY_PLAYER_ID"
	CodeDealPlayersNotNeighbors     Code = "DEAL_PLAYERS_NOT_NEIGHBORS"
	CodeDealInsufficientTradeGoods  Code = "DEAL_INSUFFICIENT_TRADE_GOODS"
	CodeDealInsufficientCommodities Code = "DEAL_INSUFFICIENT_COMMODITIES"
	CodeDealInsufficientFragments   Code = "DEAL_INSUFFICIENT_RELIC_FRAGMENTS"
	CodeDealNoteNotOwned            Code = "DEAL_NOTE_NOT_OWNED"
	CodeDealValidationFailed        Code = "DEAL_VALIDATION_FAILED"

	// Deal lifecycle errors
	CodeDealInvalidStatusTransition Code = "DEAL_INVALID_STATUS_TRANSITION"
	CodeDealStatusDisallowsOp       Code = "DEAL_STATUS_DISALLOWS_OPERATION"
	CodeDealCancelNotProposer       Code = "DEAL_CANCEL_NOT_PROPOSER"
	CodeDealExecutionFailed         Code = "DEAL_EXECUTION_FAILED"
	CodeDealRollbackFailed          Code = "DEAL_ROLLBACK_FAILED"

	// Transfer errors
	CodeTransferSamePlayer    Code = "TRANSFER_SAME_PLAYER"
	CodeTransferInvalidAmount Code = "TRANSFER_INVALID_AMOUNT"

	// Ledger errors
	CodeLedgerUnknownPlayer           Code = "LEDGER_UNKNOWN_PLAYER"
	CodeLedgerInvalidAmount           Code = "LEDGER_INVALID_AMOUNT"
	CodeLedgerInsufficientTradeGoods  Code = "LEDGER_INSUFFICIENT_TRADE_GOODS"
	CodeLedgerInsufficientCommodities Code = "LEDGER_INSUFFICIENT_COMMODITIES"
	CodeLedgerInsufficientFragments   Code = "LEDGER_INSUFFICIENT_RELIC_FRAGMENTS"
	CodeLedgerCommoditiesExceedCap    Code = "LEDGER_COMMODITIES_EXCEED_CAP"

	// Promissory note errors
	CodeNoteUnknownKind Code = "NOTE_UNKNOWN_KIND"
	CodeNoteNotInHand   Code = "NOTE_NOT_IN_HAND"
	CodeNoteDuplicate   Code = "NOTE_DUPLICATE_IN_HAND"

	// Victory/score errors
	CodeScoreUnknownPlayer Code = "SCORE_UNKNOWN_PLAYER"
	CodeScoreAtMax         Code = "SCORE_AT_MAX"
	CodeScoreInvalidMax    Code = "SCORE_INVALID_MAX"

	// Board errors
	CodeBoardUnknownPlayer Code = "BOARD_UNKNOWN_PLAYER"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeOfferNegativeAmount,
		CodeOfferTooManyNotes,
		CodeOfferMissing,
		CodeDealSamePlayer,
		CodeDealEmptyPlayerID,
		CodeDealValidationFailed,
		CodeTransferInvalidAmount,
		CodeLedgerInvalidAmount,
		CodeNoteUnknownKind,
		CodeScoreInvalidMax,
		CodeBoardUnknownPlayer,
		CodeLedgerUnknownPlayer,
		CodeScoreUnknownPlayer:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeDealPlayersNotNeighbors,
		CodeDealInsufficientTradeGoods,
		CodeDealInsufficientCommodities,
		CodeDealInsufficientFragments,
		CodeDealNoteNotOwned,
		CodeDealInvalidStatusTransition,
		CodeDealStatusDisallowsOp,
		CodeTransferSamePlayer,
		CodeLedgerInsufficientTradeGoods,
		CodeLedgerInsufficientCommodities,
		CodeLedgerInsufficientFragments,
		CodeLedgerCommoditiesExceedCap,
		CodeNoteNotInHand,
		CodeNoteDuplicate,
		CodeScoreAtMax:
		return codes.FailedPrecondition

	// PermissionDenied - caller is not allowed to drive this transition
	case CodeDealCancelNotProposer:
		return codes.PermissionDenied

	// Aborted - execution failed mid-flight but state was compensated
	case CodeDealExecutionFailed:
		return codes.Aborted

	// DataLoss - compensation itself failed, ledger consistency is not assured
	case CodeDealRollbackFailed:
		return codes.DataLoss

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
