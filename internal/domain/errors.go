package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Boon/equipment errors
	ErrMsgBoonNotFound   = "boon not found"
	ErrMsgInvalidSlot    = "invalid equipment slot"
	ErrMsgSlotMismatch   = "boon does not fit that slot"

	// Quote supply errors
	ErrMsgNoQuotes          = "no quotes available"
	ErrMsgScriptureNotFound = "scripture not found"

	// Backup errors
	ErrMsgInvalidBackup = "invalid backup payload"

	// Generation errors
	ErrMsgOnCooldown        = "generation on cooldown"
	ErrMsgDailyCapReached   = "daily generation cap reached"
	ErrMsgGenerationFailed  = "generation failed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrBoonNotFound      = errors.New(ErrMsgBoonNotFound)
	ErrInvalidSlot       = errors.New(ErrMsgInvalidSlot)
	ErrSlotMismatch      = errors.New(ErrMsgSlotMismatch)
	ErrNoQuotes          = errors.New(ErrMsgNoQuotes)
	ErrScriptureNotFound = errors.New(ErrMsgScriptureNotFound)
	ErrInvalidBackup     = errors.New(ErrMsgInvalidBackup)
	ErrOnCooldown        = errors.New(ErrMsgOnCooldown)
	ErrDailyCapReached   = errors.New(ErrMsgDailyCapReached)
	ErrGenerationFailed  = errors.New(ErrMsgGenerationFailed)
	ErrInvalidInput      = errors.New(ErrMsgInvalidInput)
)
