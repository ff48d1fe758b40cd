package dapp

import (
	"strings"
	"time"
)

// Dapp is an application that stamps its transactions with a known source tag
type Dapp struct {
	Network   string
	SourceTag uint32
	Name      string
	URL       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields required to register a dapp
func (d *Dapp) Validate() error {
	if strings.TrimSpace(d.Network) == "" {
		return ErrInvalidNetwork
	}
	if strings.TrimSpace(d.Name) == "" {
		return ErrInvalidName
	}
	if d.SourceTag == 0 {
		return ErrInvalidSourceTag
	}
	return nil
}
