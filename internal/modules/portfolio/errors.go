package portfolio

import "errors"

// Sentinel errors for ledger validation failures. All are deterministic for
// a given input; storage failures are wrapped separately and are the only
// transient class.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnknownSymbol      = errors.New("unknown symbol")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrPortfolioNotFound  = errors.New("portfolio not found")
	ErrHoldingNotFound    = errors.New("stock not found in portfolio")
	ErrInsufficientShares = errors.New("not enough shares")
)
