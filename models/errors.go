package models

import "errors"

var (
	ErrQuestionTooLong  = errors.New("question length exceeds maximum allowed")
	ErrInvalidOutcomes  = errors.New("invalid number of outcomes")
	ErrOutcomeTooLong   = errors.New("outcome label too long")
	ErrBlankOutcome     = errors.New("outcome label cannot be blank")
	ErrDuplicateOutcome = errors.New("duplicate outcome label")
	ErrEndTimeInPast    = errors.New("market end time must be in the future")
	ErrMarketTooShort   = errors.New("market duration too short")
	ErrMarketTooLong    = errors.New("market duration too long")

	ErrMarketNotActive       = errors.New("market is not active")
	ErrMarketEnded           = errors.New("market has already ended")
	ErrMarketNotEnded        = errors.New("market has not yet ended")
	ErrMarketNotResolved     = errors.New("market is not resolved")
	ErrMarketAlreadyResolved = errors.New("market is already resolved")
	ErrNoBetsPlaced          = errors.New("no bets placed on market")

	ErrInvalidOutcomeIndex   = errors.New("invalid outcome index")
	ErrOutcomeMismatch       = errors.New("position is bound to a different outcome")
	ErrBetTooSmall           = errors.New("bet amount below minimum")
	ErrVelocityLimitExceeded = errors.New("bet exceeds velocity limit")

	ErrNotWinner      = errors.New("position did not back the winning outcome")
	ErrAlreadyClaimed = errors.New("winnings already claimed")
	ErrNothingToClaim = errors.New("nothing to claim")

	ErrMathOverflow = errors.New("arithmetic overflow")

	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrWalletExists        = errors.New("wallet already exists for account")
	ErrInvalidAmount       = errors.New("amount must be positive")

	ErrInvalidMarketID  = errors.New("invalid market ID")
	ErrInvalidAccountID = errors.New("invalid account ID")
	ErrInvalidQuestion  = errors.New("invalid market question")
	ErrInvalidPhase     = errors.New("invalid market phase")
	ErrPoolMismatch     = errors.New("outcome pools do not sum to total pool")

	ErrInvalidCommissionRates  = errors.New("invalid commission rates")
	ErrInvalidBetLimits        = errors.New("invalid bet amount limits")
	ErrInvalidVelocityParams   = errors.New("invalid velocity limit parameters")
	ErrInvalidScoreWeights     = errors.New("score weights must sum to 100")
	ErrInvalidMarketDuration   = errors.New("invalid market duration bounds")
	ErrInvalidOutcomeBounds    = errors.New("invalid outcome count bounds")
	ErrDatabaseNotConfigured   = errors.New("database credentials not configured")
	ErrFeeAccountNotConfigured = errors.New("platform fee account not configured")

	ErrRecordNotFound = errors.New("record not found")
	ErrUnauthorized   = errors.New("unauthorized")
)
