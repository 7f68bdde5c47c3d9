package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every failure returned by the engine wraps exactly one of
// these, so callers branch with errors.Is. None of them are retried
// internally.
var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateEntry   = errors.New("duplicate entry")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrZeroClaim        = errors.New("nothing to claim")
	ErrTransferFailure  = errors.New("value transfer failed")
	ErrInvalidState     = errors.New("operation not allowed in current campaign state")
)

var (
	ErrCampaignNotFound = fmt.Errorf("%w: campaign", ErrNotFound)
	ErrProviderNotFound = fmt.Errorf("%w: provider", ErrNotFound)
	ErrCampaignExists   = fmt.Errorf("%w: campaign already exists", ErrDuplicateEntry)
	ErrProviderExists   = fmt.Errorf("%w: provider already registered", ErrDuplicateEntry)
	ErrAlreadyVoted     = fmt.Errorf("%w: already voted in this round", ErrDuplicateEntry)
	ErrVotingClosed     = fmt.Errorf("%w: voting closed", ErrInvalidState)
	ErrCampaignEnded    = fmt.Errorf("%w: campaign ended", ErrInvalidState)
	ErrNotEligible      = fmt.Errorf("%w: no qualifying credential", ErrUnauthorized)
)
