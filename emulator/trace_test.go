package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
)

func TestTrace(t *testing.T) {
	em := New()

	em.Trace([]byte("plain"), []byte("detail"), 0)
	em.Trace([]byte("hex"), []byte{0xDE, 0xAD}, 1)
	em.TraceNum([]byte("count"), -12)

	traces := em.Traces()
	require.Len(t, traces, 3)
	assert.Equal(t, Trace{Message: "plain", Detail: "detail"}, traces[0])
	assert.Equal(t, Trace{Message: "hex", Detail: "dead"}, traces[1])
	assert.Equal(t, Trace{Message: "count", Detail: "-12"}, traces[2])
}

func TestTraceAccount(t *testing.T) {
	em := New()

	var zero types.AccountID
	require.Positive(t, em.TraceAccount([]byte("who"), zero[:]))

	traces := em.Traces()
	require.Len(t, traces, 1)
	assert.Equal(t, "rrrrrrrrrrrrrrrrrrrrrhoLvTp", traces[0].Detail)

	assert.Equal(t, int32(host.InvalidAccount), em.TraceAccount([]byte("who"), zero[:7]))
}

func TestTraceOpaqueFloat(t *testing.T) {
	em := New()
	f := mustFloat(t, em, 42)

	require.Positive(t, em.TraceOpaqueFloat([]byte("val"), f))
	traces := em.Traces()
	require.Len(t, traces, 1)
	assert.Equal(t, "42", traces[0].Detail)

	assert.Equal(t, int32(host.InvalidFloatInput), em.TraceOpaqueFloat([]byte("val"), f[:3]))
}

func TestTraceAmount(t *testing.T) {
	em := New()

	xrp := types.XRPAmount(1_000_000).Encode()
	require.Positive(t, em.TraceAmount([]byte("fee"), xrp[:]))

	var mptID types.MptID
	mpt := types.MPTAmount(55, true, mptID).Encode()
	require.Positive(t, em.TraceAmount([]byte("tokens"), mpt[:]))

	traces := em.Traces()
	require.Len(t, traces, 2)
	assert.Equal(t, "1000000 drops", traces[0].Detail)
	assert.Equal(t, "MPT 55 units", traces[1].Detail)

	assert.Equal(t, int32(host.InvalidParams), em.TraceAmount([]byte("bad"), xrp[:8]))
}
