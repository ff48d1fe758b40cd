package txview

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kislikjeka/xrplview/internal/xrpl"
)

const (
	alice = "rAliceXXXXXXXXXXXXXXXXXXXXXXXXXXX"
	bob   = "rBobXXXXXXXXXXXXXXXXXXXXXXXXXXXXX"
	carol = "rCarolXXXXXXXXXXXXXXXXXXXXXXXXXXX"
)

func mustParse(t *testing.T, data string) *xrpl.Transaction {
	t.Helper()
	tx, err := xrpl.ParseTransaction([]byte(data))
	require.NoError(t, err)
	return tx
}

type staticDapps map[uint32]string

func (d staticDapps) Lookup(tag uint32) (string, bool) {
	name, ok := d[tag]
	return name, ok
}

func newTestProcessor() *Processor {
	return NewProcessor("XRP", staticDapps{101102979: "Xaman"})
}
