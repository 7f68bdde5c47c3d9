package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Address identifies an actor: campaign owners, providers, voters,
// administrators and the ledger's own treasury.
type Address = common.Address

// ZeroAddress is never a valid actor.
var ZeroAddress Address

// ParseAddress validates a hex encoded address.
func ParseAddress(s string) (Address, error) {
	if !common.IsHexAddress(s) {
		return ZeroAddress, fmt.Errorf("%w: malformed address %q", ErrInvalidParameter, s)
	}
	addr := common.HexToAddress(s)
	if addr == ZeroAddress {
		return ZeroAddress, fmt.Errorf("%w: zero address", ErrInvalidParameter)
	}
	return addr, nil
}
