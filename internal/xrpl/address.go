package xrpl

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"
)

// Ledger addresses use base58 with their own alphabet ordering
var ledgerAlphabet = base58.NewAlphabet("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")

const (
	accountIDVersion = 0x00
	accountIDLength  = 20
	checksumLength   = 4
)

// ValidateAddress checks that s is a classic address: version byte, 20-byte account ID and
// a double-SHA256 checksum.
func ValidateAddress(s string) error {
	if len(s) < 25 || len(s) > 35 || s[0] != 'r' {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	decoded, err := base58.DecodeAlphabet(s, ledgerAlphabet)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	if len(decoded) != 1+accountIDLength+checksumLength || decoded[0] != accountIDVersion {
		return fmt.Errorf("%w: %q has wrong length or version", ErrInvalidAddress, s)
	}

	payload := decoded[:1+accountIDLength]
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	if !bytes.Equal(second[:checksumLength], decoded[1+accountIDLength:]) {
		return fmt.Errorf("%w: %q checksum mismatch", ErrInvalidAddress, s)
	}

	return nil
}

// IsValidAddress is the boolean form of ValidateAddress
func IsValidAddress(s string) bool {
	return ValidateAddress(s) == nil
}
