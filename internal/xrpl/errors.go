package xrpl

import (
	"encoding/json"
	"errors"
)

var (
	// ErrInvalidTransaction is returned when an envelope cannot be decoded or lacks a type
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrInvalidAddress is returned for strings that are not classic ledger addresses
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidAmount is returned when an amount field has an unsupported shape
	ErrInvalidAmount = errors.New("invalid amount")
)

// ignoreTypeErrors drops *json.UnmarshalTypeError. encoding/json keeps decoding after a
// type mismatch, so the target holds every field except the mismatched one.
func ignoreTypeErrors(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return nil
	}
	return err
}
