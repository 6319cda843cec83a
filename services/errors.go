package services

import "errors"

var (
	ErrInsufficientFunds = errors.New("INSUFFICIENT_FUNDS")
	ErrInvalidSelection  = errors.New("INVALID_SELECTION")
	ErrInvalidAmount     = errors.New("INVALID_AMOUNT")
	ErrRoundClosed       = errors.New("ROUND_CLOSED")
	ErrAccountNotFound   = errors.New("ACCOUNT_NOT_FOUND")
	ErrNotPending        = errors.New("ALREADY_PROCESSED")
	ErrDuplicateResult   = errors.New("RESULT_ALREADY_PUBLISHED")
	ErrMarketNotFound    = errors.New("MARKET_NOT_FOUND")
	ErrOnCooldown        = errors.New("WITHDRAWAL_COOLDOWN")
)
