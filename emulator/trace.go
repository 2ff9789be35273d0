package emulator

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
	"github.com/LeJamon/xrpl-wasm-stdlib/internal/addresscodec"
)

// Trace is one recorded guest trace line.
type Trace struct {
	Message string
	Detail  string
}

// Traces returns everything the guest has traced so far.
func (e *Emulator) Traces() []Trace {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Trace, len(e.traces))
	copy(out, e.traces)
	return out
}

func (e *Emulator) record(msg, detail string) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.traces = append(e.traces, Trace{Message: msg, Detail: detail})
	if detail != "" {
		e.logger.Printf("trace: %s %s", msg, detail)
	} else {
		e.logger.Printf("trace: %s", msg)
	}
	return int32(len(msg) + len(detail))
}

func (e *Emulator) Trace(msg, data []byte, asHex int32) int32 {
	detail := string(data)
	if asHex != 0 {
		detail = hex.EncodeToString(data)
	}
	return e.record(string(msg), detail)
}

func (e *Emulator) TraceNum(msg []byte, number int64) int32 {
	return e.record(string(msg), fmt.Sprintf("%d", number))
}

func (e *Emulator) TraceAccount(msg, account []byte) int32 {
	if len(account) != types.AccountIDSize {
		return int32(host.InvalidAccount)
	}
	var id [20]byte
	copy(id[:], account)
	return e.record(string(msg), addresscodec.EncodeClassicAddress(id))
}

func (e *Emulator) TraceOpaqueFloat(msg, f []byte) int32 {
	if len(f) != floatSize {
		return int32(host.InvalidFloatInput)
	}
	v := math.Float64frombits(binary.BigEndian.Uint64(f))
	return e.record(string(msg), fmt.Sprintf("%g", v))
}

func (e *Emulator) TraceAmount(msg, amount []byte) int32 {
	a, err := types.DecodeAmount(amount)
	if err != nil {
		return int32(host.InvalidParams)
	}
	var detail string
	switch a.Kind {
	case types.KindXRP:
		detail = fmt.Sprintf("%d drops", a.Drops)
	case types.KindIOU:
		detail = fmt.Sprintf("IOU %s/%s", hex.EncodeToString(a.Currency.Bytes()), hex.EncodeToString(a.Issuer[:]))
	case types.KindMPT:
		detail = fmt.Sprintf("MPT %d units", a.Units)
	}
	return e.record(string(msg), detail)
}
