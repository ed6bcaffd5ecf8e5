// Package keys normalizes player identity keys.
package keys

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var ErrInvalidWallet = errors.New("invalid wallet address")

// NormalizeWallet validates a hex wallet address and returns its EIP-55
// checksum form, so the same wallet always maps to the same key regardless
// of the casing the client sent.
func NormalizeWallet(addr string) (string, error) {
	s := strings.TrimSpace(addr)
	if !common.IsHexAddress(s) {
		return "", ErrInvalidWallet
	}
	return common.HexToAddress(s).Hex(), nil
}
