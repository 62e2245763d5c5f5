package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeOfferNegativeAmount = "OFFER_NEGATIVE_AMOUNT"
	CodeOfferTooManyNotes   = "OFFER_TOO_MANY_NOTES"
	CodeOfferMissing        = "OFFER_MISSING"

	CodeDealSamePlayer              = "DEAL_SAME_PLAYER"
	CodeDealEmptyPlayerID           = "DEAL_EMPTY_PLAYER_ID"
	CodeDealPlayersNotNeighbors     = "DEAL_PLAYERS_NOT_NEIGHBORS"
	CodeDealInsufficientTradeGoods  = "DEAL_INSUFFICIENT_TRADE_GOODS"
	CodeDealInsufficientCommodities = "DEAL_INSUFFICIENT_COMMODITIES"
	CodeDealInsufficientFragments   = "DEAL_INSUFFICIENT_RELIC_FRAGMENTS"
	CodeDealNoteNotOwned            = "DEAL_NOTE_NOT_OWNED"
	CodeDealValidationFailed        = "DEAL_VALIDATION_FAILED"

	CodeDealInvalidStatusTransition = "DEAL_INVALID_STATUS_TRANSITION"
	CodeDealStatusDisallowsOp       = "DEAL_STATUS_DISALLOWS_OPERATION"
	CodeDealCancelNotProposer       = "DEAL_CANCEL_NOT_PROPOSER"
	CodeDealExecutionFailed         = "DEAL_EXECUTION_FAILED"
	CodeDealRollbackFailed          = "DEAL_ROLLBACK_FAILED"

	CodeTransferSamePlayer    = "TRANSFER_SAME_PLAYER"
	CodeTransferInvalidAmount = "TRANSFER_INVALID_AMOUNT"

	CodeLedgerUnknownPlayer           = "LEDGER_UNKNOWN_PLAYER"
	CodeLedgerInvalidAmount           = "LEDGER_INVALID_AMOUNT"
	CodeLedgerInsufficientTradeGoods  = "LEDGER_INSUFFICIENT_TRADE_GOODS"
	CodeLedgerInsufficientCommodities = "LEDGER_INSUFFICIENT_COMMODITIES"
	CodeLedgerInsufficientFragments   = "LEDGER_INSUFFICIENT_RELIC_FRAGMENTS"
	CodeLedgerCommoditiesExceedCap    = "LEDGER_COMMODITIES_EXCEED_CAP"

	CodeNoteUnknownKind = "NOTE_UNKNOWN_KIND"
	CodeNoteNotInHand   = "NOTE_NOT_IN_HAND"
	CodeNoteDuplicate   = "NOTE_DUPLICATE_IN_HAND"

	CodeScoreUnknownPlayer = "SCORE_UNKNOWN_PLAYER"
	CodeScoreAtMax         = "SCORE_AT_MAX"
	CodeScoreInvalidMax    = "SCORE_INVALID_MAX"

	CodeBoardUnknownPlayer = "BOARD_UNKNOWN_PLAYER"

	CodeNotFound = "NOT_FOUND"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Offer errors
		CodeOfferNegativeAmount: "Offer amounts cannot be negative",
		CodeOfferTooManyNotes:   "An offer can include at most one promissory note",
		CodeOfferMissing:        "An offer is required",

		// Deal proposal/validation errors
		CodeDealSamePlayer:              "A deal needs two different players",
		CodeDealEmptyPlayerID:           "Both players must be named in a deal",
		CodeDealPlayersNotNeighbors:     "{{.Proposer}} and {{.Target}} are not neighbors",
		CodeDealInsufficientTradeGoods:  "{{.Player}} does not have {{.Amount}} trade goods",
		CodeDealInsufficientCommodities: "{{.Player}} does not have {{.Amount}} commodities",
		CodeDealInsufficientFragments:   "{{.Player}} does not have {{.Amount}} relic fragments",
		CodeDealNoteNotOwned:            "{{.Player}} does not hold the {{.Note}} note",
		CodeDealValidationFailed:        "The proposed deal violates the trade rules",

		// Deal lifecycle errors
		CodeDealInvalidStatusTransition: "Cannot move a deal from {{.FromStatus}} to {{.ToStatus}}",
		CodeDealStatusDisallowsOp:       "Deal status {{.Status}} does not allow {{.Operation}}",
		CodeDealCancelNotProposer:       "Only the proposer can cancel a pending deal",
		CodeDealExecutionFailed:         "The deal could not be completed; all transfers were reversed",
		CodeDealRollbackFailed:          "The deal failed and its transfers could not be reversed",

		// Transfer errors
		CodeTransferSamePlayer:    "Cannot transfer assets from a player to themselves",
		CodeTransferInvalidAmount: "Transfer amounts must be greater than zero",

		// Ledger errors
		CodeLedgerUnknownPlayer:           "Unknown player in ledger",
		CodeLedgerInvalidAmount:           "Ledger amounts must be greater than zero",
		CodeLedgerInsufficientTradeGoods:  "Not enough trade goods",
		CodeLedgerInsufficientCommodities: "Not enough commodities",
		CodeLedgerInsufficientFragments:   "Not enough relic fragments",
		CodeLedgerCommoditiesExceedCap:    "Commodities would exceed the player's capacity",

		// Promissory note errors
		CodeNoteUnknownKind: "Unknown promissory note kind",
		CodeNoteNotInHand:   "The note is not in the player's hand",
		CodeNoteDuplicate:   "The note is already in the player's hand",

		// Victory/score errors
		CodeScoreUnknownPlayer: "Unknown player on the victory track",
		CodeScoreAtMax:         "{{.Player}} is already at the maximum score",
		CodeScoreInvalidMax:    "The maximum score must be greater than zero",

		// Board errors
		CodeBoardUnknownPlayer: "Unknown player on the board",

		// Storage errors
		CodeNotFound: "The requested record was not found",
	},
}
