package types

import "github.com/LeJamon/xrpl-wasm-stdlib/host"

// Serialized issue lengths. The host writes an issue without a value and
// the byte count alone identifies the kind.
const (
	XRPIssueSize = 20
	MPTIssueSize = 24
	IOUIssueSize = 40
)

// IssueKind discriminates the asset kinds an issue can describe.
type IssueKind uint8

const (
	IssueXRP IssueKind = iota
	IssueIOU
	IssueMPT
)

// Issue identifies an asset without a value, as read from fields such as
// Asset and Asset2 on AMM entries.
type Issue struct {
	Kind IssueKind

	// IOU
	Currency Currency
	Issuer   AccountID

	// MPT
	MptID MptID
}

// XRPIssue describes the native asset.
func XRPIssue() Issue {
	return Issue{Kind: IssueXRP}
}

// IOUIssue describes an issued currency.
func IOUIssue(currency Currency, issuer AccountID) Issue {
	return Issue{Kind: IssueIOU, Currency: currency, Issuer: issuer}
}

// MPTIssue describes a multi-purpose token issuance.
func MPTIssue(mptID MptID) Issue {
	return Issue{Kind: IssueMPT, MptID: mptID}
}

// IssueFromBytes classifies a serialized issue by its length alone:
// 20 bytes is XRP, 24 an MPT issuance ID, 40 a currency/issuer pair. Any
// other length is rejected with the length itself as the error code.
func IssueFromBytes(buf []byte) (Issue, error) {
	switch len(buf) {
	case XRPIssueSize:
		return XRPIssue(), nil
	case MPTIssueSize:
		var id MptID
		copy(id[:], buf)
		return MPTIssue(id), nil
	case IOUIssueSize:
		var currency Currency
		var issuer AccountID
		copy(currency[:], buf[0:20])
		copy(issuer[:], buf[20:40])
		return IOUIssue(currency, issuer), nil
	default:
		return Issue{}, host.ErrorFromCode(int32(len(buf)))
	}
}

// Bytes serializes the issue back to its wire form.
func (i Issue) Bytes() []byte {
	switch i.Kind {
	case IssueIOU:
		out := make([]byte, IOUIssueSize)
		copy(out[0:20], i.Currency[:])
		copy(out[20:40], i.Issuer[:])
		return out
	case IssueMPT:
		out := make([]byte, MPTIssueSize)
		copy(out, i.MptID[:])
		return out
	default:
		return make([]byte, XRPIssueSize)
	}
}
