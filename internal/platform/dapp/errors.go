package dapp

import "errors"

var (
	ErrDappNotFound     = errors.New("dapp not found")
	ErrInvalidName      = errors.New("invalid dapp name")
	ErrInvalidNetwork   = errors.New("invalid network")
	ErrInvalidSourceTag = errors.New("source tag must be positive")
)
