package domain

import "errors"

// Errors returned by the platform state machine. Callers are expected to
// match these with errors.Is to decide whether a retry makes sense.
var (
	ErrNotInitialized     = errors.New("platform is not initialized")
	ErrAlreadyInitialized = errors.New("platform already initialized")
	ErrUnauthorized       = errors.New("caller is not authorized")
	ErrArgumentMismatch   = errors.New("operators and flags length mismatch")
	ErrDuplicateCampaign  = errors.New("campaign id already registered")
	ErrEmptyAssetList     = errors.New("campaign asset list is empty")
	ErrZeroAssetAmount    = errors.New("asset entry amount must be positive")
	ErrInsufficientFee    = errors.New("insufficient funds to cover airdrop fee")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrNotStarted         = errors.New("campaign has not started yet")
	ErrIndexOutOfRange    = errors.New("asset index out of range")
	ErrDepleted           = errors.New("asset entry already depleted")
)
