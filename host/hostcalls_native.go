//go:build !wasm

package host

var backend Backend

// SetBackend installs the Backend that receives every host call on native
// builds. It returns the previously installed backend so tests can restore
// it. Calling any host function before a backend is installed panics: a
// smart escrow exercising host state without a host is a programming error,
// not a recoverable condition.
func SetBackend(b Backend) Backend {
	prev := backend
	backend = b
	return prev
}

func hostBackend() Backend {
	if backend == nil {
		panic("host: no backend installed; call host.SetBackend before using host functions")
	}
	return backend
}

func GetLedgerSqn() int32        { return hostBackend().GetLedgerSqn() }
func GetParentLedgerTime() int32 { return hostBackend().GetParentLedgerTime() }
func GetBaseFee() int32          { return hostBackend().GetBaseFee() }

func GetParentLedgerHash(out []byte) int32 { return hostBackend().GetParentLedgerHash(out) }
func AmendmentEnabled(amendment []byte) int32 {
	return hostBackend().AmendmentEnabled(amendment)
}

func CacheLedgerObj(keylet []byte, cacheNum int32) int32 {
	return hostBackend().CacheLedgerObj(keylet, cacheNum)
}

func GetTxField(field int32, out []byte) int32 {
	return hostBackend().GetTxField(field, out)
}

func GetCurrentLedgerObjField(field int32, out []byte) int32 {
	return hostBackend().GetCurrentLedgerObjField(field, out)
}

func GetLedgerObjField(slot, field int32, out []byte) int32 {
	return hostBackend().GetLedgerObjField(slot, field, out)
}

func GetTxNestedField(locator, out []byte) int32 {
	return hostBackend().GetTxNestedField(locator, out)
}

func GetCurrentLedgerObjNestedField(locator, out []byte) int32 {
	return hostBackend().GetCurrentLedgerObjNestedField(locator, out)
}

func GetLedgerObjNestedField(slot int32, locator, out []byte) int32 {
	return hostBackend().GetLedgerObjNestedField(slot, locator, out)
}

func GetTxArrayLen(field int32) int32 { return hostBackend().GetTxArrayLen(field) }

func GetCurrentLedgerObjArrayLen(field int32) int32 {
	return hostBackend().GetCurrentLedgerObjArrayLen(field)
}

func GetLedgerObjArrayLen(slot, field int32) int32 {
	return hostBackend().GetLedgerObjArrayLen(slot, field)
}

func GetTxNestedArrayLen(locator []byte) int32 {
	return hostBackend().GetTxNestedArrayLen(locator)
}

func GetCurrentLedgerObjNestedArrayLen(locator []byte) int32 {
	return hostBackend().GetCurrentLedgerObjNestedArrayLen(locator)
}

func GetLedgerObjNestedArrayLen(slot int32, locator []byte) int32 {
	return hostBackend().GetLedgerObjNestedArrayLen(slot, locator)
}

func UpdateData(data []byte) int32 { return hostBackend().UpdateData(data) }

func ComputeSha512Half(input, out []byte) int32 {
	return hostBackend().ComputeSha512Half(input, out)
}

func CheckSig(message, signature, pubkey []byte) int32 {
	return hostBackend().CheckSig(message, signature, pubkey)
}

func AccountKeylet(account, out []byte) int32 { return hostBackend().AccountKeylet(account, out) }

func AmmKeylet(issue1, issue2, out []byte) int32 {
	return hostBackend().AmmKeylet(issue1, issue2, out)
}

func CheckKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostBackend().CheckKeylet(account, sequence, out)
}

func CredentialKeylet(subject, issuer, credType, out []byte) int32 {
	return hostBackend().CredentialKeylet(subject, issuer, credType, out)
}

func DelegateKeylet(account, authorize, out []byte) int32 {
	return hostBackend().DelegateKeylet(account, authorize, out)
}

func DepositPreauthKeylet(account, authorize, out []byte) int32 {
	return hostBackend().DepositPreauthKeylet(account, authorize, out)
}

func DidKeylet(account, out []byte) int32 { return hostBackend().DidKeylet(account, out) }

func EscrowKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostBackend().EscrowKeylet(account, sequence, out)
}

func LineKeylet(account1, account2, currency, out []byte) int32 {
	return hostBackend().LineKeylet(account1, account2, currency, out)
}

func MptIssuanceKeylet(issuer []byte, sequence int32, out []byte) int32 {
	return hostBackend().MptIssuanceKeylet(issuer, sequence, out)
}

func MptokenKeylet(mptID, holder, out []byte) int32 {
	return hostBackend().MptokenKeylet(mptID, holder, out)
}

func NftOfferKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostBackend().NftOfferKeylet(account, sequence, out)
}

func OfferKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostBackend().OfferKeylet(account, sequence, out)
}

func OracleKeylet(account []byte, documentID int32, out []byte) int32 {
	return hostBackend().OracleKeylet(account, documentID, out)
}

func PaychanKeylet(account, destination []byte, sequence int32, out []byte) int32 {
	return hostBackend().PaychanKeylet(account, destination, sequence, out)
}

func PermissionedDomainKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostBackend().PermissionedDomainKeylet(account, sequence, out)
}

func SignersKeylet(account, out []byte) int32 { return hostBackend().SignersKeylet(account, out) }

func TicketKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostBackend().TicketKeylet(account, sequence, out)
}

func VaultKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostBackend().VaultKeylet(account, sequence, out)
}

func GetNFT(owner, nftID, out []byte) int32 { return hostBackend().GetNFT(owner, nftID, out) }

func GetNFTIssuer(nftID, out []byte) int32 { return hostBackend().GetNFTIssuer(nftID, out) }

func GetNFTTaxon(nftID, out []byte) int32 { return hostBackend().GetNFTTaxon(nftID, out) }

func GetNFTFlags(nftID []byte) int32 { return hostBackend().GetNFTFlags(nftID) }

func GetNFTTransferFee(nftID []byte) int32 { return hostBackend().GetNFTTransferFee(nftID) }

func GetNFTSerial(nftID, out []byte) int32 { return hostBackend().GetNFTSerial(nftID, out) }

func FloatFromInt(value int64, out []byte, roundingMode int32) int32 {
	return hostBackend().FloatFromInt(value, out, roundingMode)
}

func FloatFromUint(value, out []byte, roundingMode int32) int32 {
	return hostBackend().FloatFromUint(value, out, roundingMode)
}

func FloatSet(exponent int32, mantissa int64, out []byte, roundingMode int32) int32 {
	return hostBackend().FloatSet(exponent, mantissa, out, roundingMode)
}

func FloatCompare(a, b []byte) int32 { return hostBackend().FloatCompare(a, b) }

func FloatAdd(a, b, out []byte, roundingMode int32) int32 {
	return hostBackend().FloatAdd(a, b, out, roundingMode)
}

func FloatSubtract(a, b, out []byte, roundingMode int32) int32 {
	return hostBackend().FloatSubtract(a, b, out, roundingMode)
}

func FloatMultiply(a, b, out []byte, roundingMode int32) int32 {
	return hostBackend().FloatMultiply(a, b, out, roundingMode)
}

func FloatDivide(a, b, out []byte, roundingMode int32) int32 {
	return hostBackend().FloatDivide(a, b, out, roundingMode)
}

func FloatPow(a []byte, n int32, out []byte, roundingMode int32) int32 {
	return hostBackend().FloatPow(a, n, out, roundingMode)
}

func FloatRoot(a []byte, n int32, out []byte, roundingMode int32) int32 {
	return hostBackend().FloatRoot(a, n, out, roundingMode)
}

func FloatLog(a, out []byte, roundingMode int32) int32 {
	return hostBackend().FloatLog(a, out, roundingMode)
}

func rawTrace(msg, data []byte, asHex int32) int32 { return hostBackend().Trace(msg, data, asHex) }

func rawTraceNum(msg []byte, number int64) int32 { return hostBackend().TraceNum(msg, number) }

func rawTraceAccount(msg, account []byte) int32 { return hostBackend().TraceAccount(msg, account) }

func rawTraceOpaqueFloat(msg, f []byte) int32 { return hostBackend().TraceOpaqueFloat(msg, f) }

func rawTraceAmount(msg, amount []byte) int32 { return hostBackend().TraceAmount(msg, amount) }
