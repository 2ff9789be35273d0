//go:build wasm

package host

import "unsafe"

// Raw imports from the xrpld host. Every function lives in the "host_lib"
// module and follows the (ptr, len) convention for buffers.

//go:wasmimport host_lib get_ledger_sqn
func hostGetLedgerSqn() int32

//go:wasmimport host_lib get_parent_ledger_time
func hostGetParentLedgerTime() int32

//go:wasmimport host_lib get_parent_ledger_hash
func hostGetParentLedgerHash(outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_base_fee
func hostGetBaseFee() int32

//go:wasmimport host_lib amendment_enabled
func hostAmendmentEnabled(ptr unsafe.Pointer, size uint32) int32

//go:wasmimport host_lib cache_ledger_obj
func hostCacheLedgerObj(keyletPtr unsafe.Pointer, keyletLen uint32, cacheNum int32) int32

//go:wasmimport host_lib get_tx_field
func hostGetTxField(field int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_current_ledger_obj_field
func hostGetCurrentLedgerObjField(field int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_ledger_obj_field
func hostGetLedgerObjField(cacheNum int32, field int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_tx_nested_field
func hostGetTxNestedField(locPtr unsafe.Pointer, locLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_current_ledger_obj_nested_field
func hostGetCurrentLedgerObjNestedField(locPtr unsafe.Pointer, locLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_ledger_obj_nested_field
func hostGetLedgerObjNestedField(cacheNum int32, locPtr unsafe.Pointer, locLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_tx_array_len
func hostGetTxArrayLen(field int32) int32

//go:wasmimport host_lib get_current_ledger_obj_array_len
func hostGetCurrentLedgerObjArrayLen(field int32) int32

//go:wasmimport host_lib get_ledger_obj_array_len
func hostGetLedgerObjArrayLen(cacheNum int32, field int32) int32

//go:wasmimport host_lib get_tx_nested_array_len
func hostGetTxNestedArrayLen(locPtr unsafe.Pointer, locLen uint32) int32

//go:wasmimport host_lib get_current_ledger_obj_nested_array_len
func hostGetCurrentLedgerObjNestedArrayLen(locPtr unsafe.Pointer, locLen uint32) int32

//go:wasmimport host_lib get_ledger_obj_nested_array_len
func hostGetLedgerObjNestedArrayLen(cacheNum int32, locPtr unsafe.Pointer, locLen uint32) int32

//go:wasmimport host_lib update_data
func hostUpdateData(dataPtr unsafe.Pointer, dataLen uint32) int32

//go:wasmimport host_lib compute_sha512_half
func hostComputeSha512Half(inPtr unsafe.Pointer, inLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib check_sig
func hostCheckSig(msgPtr unsafe.Pointer, msgLen uint32, sigPtr unsafe.Pointer, sigLen uint32, keyPtr unsafe.Pointer, keyLen uint32) int32

//go:wasmimport host_lib account_keylet
func hostAccountKeylet(accPtr unsafe.Pointer, accLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib amm_keylet
func hostAmmKeylet(i1Ptr unsafe.Pointer, i1Len uint32, i2Ptr unsafe.Pointer, i2Len uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib check_keylet
func hostCheckKeylet(accPtr unsafe.Pointer, accLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib credential_keylet
func hostCredentialKeylet(subPtr unsafe.Pointer, subLen uint32, issPtr unsafe.Pointer, issLen uint32, typPtr unsafe.Pointer, typLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib delegate_keylet
func hostDelegateKeylet(accPtr unsafe.Pointer, accLen uint32, authPtr unsafe.Pointer, authLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib deposit_preauth_keylet
func hostDepositPreauthKeylet(accPtr unsafe.Pointer, accLen uint32, authPtr unsafe.Pointer, authLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib did_keylet
func hostDidKeylet(accPtr unsafe.Pointer, accLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib escrow_keylet
func hostEscrowKeylet(accPtr unsafe.Pointer, accLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib line_keylet
func hostLineKeylet(a1Ptr unsafe.Pointer, a1Len uint32, a2Ptr unsafe.Pointer, a2Len uint32, curPtr unsafe.Pointer, curLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib mpt_issuance_keylet
func hostMptIssuanceKeylet(issPtr unsafe.Pointer, issLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib mptoken_keylet
func hostMptokenKeylet(mptPtr unsafe.Pointer, mptLen uint32, holderPtr unsafe.Pointer, holderLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib nft_offer_keylet
func hostNftOfferKeylet(accPtr unsafe.Pointer, accLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib offer_keylet
func hostOfferKeylet(accPtr unsafe.Pointer, accLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib oracle_keylet
func hostOracleKeylet(accPtr unsafe.Pointer, accLen uint32, documentID int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib paychan_keylet
func hostPaychanKeylet(accPtr unsafe.Pointer, accLen uint32, dstPtr unsafe.Pointer, dstLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib permissioned_domain_keylet
func hostPermissionedDomainKeylet(accPtr unsafe.Pointer, accLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib signers_keylet
func hostSignersKeylet(accPtr unsafe.Pointer, accLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib ticket_keylet
func hostTicketKeylet(accPtr unsafe.Pointer, accLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib vault_keylet
func hostVaultKeylet(accPtr unsafe.Pointer, accLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_nft
func hostGetNFT(accPtr unsafe.Pointer, accLen uint32, idPtr unsafe.Pointer, idLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_nft_issuer
func hostGetNFTIssuer(idPtr unsafe.Pointer, idLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_nft_taxon
func hostGetNFTTaxon(idPtr unsafe.Pointer, idLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_nft_flags
func hostGetNFTFlags(idPtr unsafe.Pointer, idLen uint32) int32

//go:wasmimport host_lib get_nft_transfer_fee
func hostGetNFTTransferFee(idPtr unsafe.Pointer, idLen uint32) int32

//go:wasmimport host_lib get_nft_serial
func hostGetNFTSerial(idPtr unsafe.Pointer, idLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib float_from_int
func hostFloatFromInt(value int64, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_from_uint
func hostFloatFromUint(inPtr unsafe.Pointer, inLen uint32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_set
func hostFloatSet(exponent int32, mantissa int64, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_compare
func hostFloatCompare(aPtr unsafe.Pointer, aLen uint32, bPtr unsafe.Pointer, bLen uint32) int32

//go:wasmimport host_lib float_add
func hostFloatAdd(aPtr unsafe.Pointer, aLen uint32, bPtr unsafe.Pointer, bLen uint32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_subtract
func hostFloatSubtract(aPtr unsafe.Pointer, aLen uint32, bPtr unsafe.Pointer, bLen uint32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_multiply
func hostFloatMultiply(aPtr unsafe.Pointer, aLen uint32, bPtr unsafe.Pointer, bLen uint32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_divide
func hostFloatDivide(aPtr unsafe.Pointer, aLen uint32, bPtr unsafe.Pointer, bLen uint32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_pow
func hostFloatPow(aPtr unsafe.Pointer, aLen uint32, n int32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_root
func hostFloatRoot(aPtr unsafe.Pointer, aLen uint32, n int32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_log
func hostFloatLog(aPtr unsafe.Pointer, aLen uint32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib trace
func hostTrace(msgPtr unsafe.Pointer, msgLen uint32, dataPtr unsafe.Pointer, dataLen uint32, asHex int32) int32

//go:wasmimport host_lib trace_num
func hostTraceNum(msgPtr unsafe.Pointer, msgLen uint32, number int64) int32

//go:wasmimport host_lib trace_account
func hostTraceAccount(msgPtr unsafe.Pointer, msgLen uint32, accPtr unsafe.Pointer, accLen uint32) int32

//go:wasmimport host_lib trace_opaque_float
func hostTraceOpaqueFloat(msgPtr unsafe.Pointer, msgLen uint32, fPtr unsafe.Pointer, fLen uint32) int32

//go:wasmimport host_lib trace_amount
func hostTraceAmount(msgPtr unsafe.Pointer, msgLen uint32, amtPtr unsafe.Pointer, amtLen uint32) int32

// buf splits a slice into the (ptr, len) pair the host expects. A nil or
// empty slice becomes a null pointer with length zero.
func buf(b []byte) (unsafe.Pointer, uint32) {
	if len(b) == 0 {
		return nil, 0
	}
	return unsafe.Pointer(&b[0]), uint32(len(b))
}

func GetLedgerSqn() int32        { return hostGetLedgerSqn() }
func GetParentLedgerTime() int32 { return hostGetParentLedgerTime() }
func GetBaseFee() int32          { return hostGetBaseFee() }

func GetParentLedgerHash(out []byte) int32 {
	p, n := buf(out)
	return hostGetParentLedgerHash(p, n)
}

func AmendmentEnabled(amendment []byte) int32 {
	p, n := buf(amendment)
	return hostAmendmentEnabled(p, n)
}

func CacheLedgerObj(keylet []byte, cacheNum int32) int32 {
	p, n := buf(keylet)
	return hostCacheLedgerObj(p, n, cacheNum)
}

func GetTxField(field int32, out []byte) int32 {
	p, n := buf(out)
	return hostGetTxField(field, p, n)
}

func GetCurrentLedgerObjField(field int32, out []byte) int32 {
	p, n := buf(out)
	return hostGetCurrentLedgerObjField(field, p, n)
}

func GetLedgerObjField(slot, field int32, out []byte) int32 {
	p, n := buf(out)
	return hostGetLedgerObjField(slot, field, p, n)
}

func GetTxNestedField(locator, out []byte) int32 {
	lp, ln := buf(locator)
	op, on := buf(out)
	return hostGetTxNestedField(lp, ln, op, on)
}

func GetCurrentLedgerObjNestedField(locator, out []byte) int32 {
	lp, ln := buf(locator)
	op, on := buf(out)
	return hostGetCurrentLedgerObjNestedField(lp, ln, op, on)
}

func GetLedgerObjNestedField(slot int32, locator, out []byte) int32 {
	lp, ln := buf(locator)
	op, on := buf(out)
	return hostGetLedgerObjNestedField(slot, lp, ln, op, on)
}

func GetTxArrayLen(field int32) int32 { return hostGetTxArrayLen(field) }

func GetCurrentLedgerObjArrayLen(field int32) int32 {
	return hostGetCurrentLedgerObjArrayLen(field)
}

func GetLedgerObjArrayLen(slot, field int32) int32 {
	return hostGetLedgerObjArrayLen(slot, field)
}

func GetTxNestedArrayLen(locator []byte) int32 {
	p, n := buf(locator)
	return hostGetTxNestedArrayLen(p, n)
}

func GetCurrentLedgerObjNestedArrayLen(locator []byte) int32 {
	p, n := buf(locator)
	return hostGetCurrentLedgerObjNestedArrayLen(p, n)
}

func GetLedgerObjNestedArrayLen(slot int32, locator []byte) int32 {
	p, n := buf(locator)
	return hostGetLedgerObjNestedArrayLen(slot, p, n)
}

func UpdateData(data []byte) int32 {
	p, n := buf(data)
	return hostUpdateData(p, n)
}

func ComputeSha512Half(input, out []byte) int32 {
	ip, in := buf(input)
	op, on := buf(out)
	return hostComputeSha512Half(ip, in, op, on)
}

func CheckSig(message, signature, pubkey []byte) int32 {
	mp, mn := buf(message)
	sp, sn := buf(signature)
	kp, kn := buf(pubkey)
	return hostCheckSig(mp, mn, sp, sn, kp, kn)
}

func AccountKeylet(account, out []byte) int32 {
	ap, an := buf(account)
	op, on := buf(out)
	return hostAccountKeylet(ap, an, op, on)
}

func AmmKeylet(issue1, issue2, out []byte) int32 {
	p1, n1 := buf(issue1)
	p2, n2 := buf(issue2)
	op, on := buf(out)
	return hostAmmKeylet(p1, n1, p2, n2, op, on)
}

func CheckKeylet(account []byte, sequence int32, out []byte) int32 {
	ap, an := buf(account)
	op, on := buf(out)
	return hostCheckKeylet(ap, an, sequence, op, on)
}

func CredentialKeylet(subject, issuer, credType, out []byte) int32 {
	sp, sn := buf(subject)
	ip, in := buf(issuer)
	tp, tn := buf(credType)
	op, on := buf(out)
	return hostCredentialKeylet(sp, sn, ip, in, tp, tn, op, on)
}

func DelegateKeylet(account, authorize, out []byte) int32 {
	ap, an := buf(account)
	up, un := buf(authorize)
	op, on := buf(out)
	return hostDelegateKeylet(ap, an, up, un, op, on)
}

func DepositPreauthKeylet(account, authorize, out []byte) int32 {
	ap, an := buf(account)
	up, un := buf(authorize)
	op, on := buf(out)
	return hostDepositPreauthKeylet(ap, an, up, un, op, on)
}

func DidKeylet(account, out []byte) int32 {
	ap, an := buf(account)
	op, on := buf(out)
	return hostDidKeylet(ap, an, op, on)
}

func EscrowKeylet(account []byte, sequence int32, out []byte) int32 {
	ap, an := buf(account)
	op, on := buf(out)
	return hostEscrowKeylet(ap, an, sequence, op, on)
}

func LineKeylet(account1, account2, currency, out []byte) int32 {
	p1, n1 := buf(account1)
	p2, n2 := buf(account2)
	cp, cn := buf(currency)
	op, on := buf(out)
	return hostLineKeylet(p1, n1, p2, n2, cp, cn, op, on)
}

func MptIssuanceKeylet(issuer []byte, sequence int32, out []byte) int32 {
	ip, in := buf(issuer)
	op, on := buf(out)
	return hostMptIssuanceKeylet(ip, in, sequence, op, on)
}

func MptokenKeylet(mptID, holder, out []byte) int32 {
	mp, mn := buf(mptID)
	hp, hn := buf(holder)
	op, on := buf(out)
	return hostMptokenKeylet(mp, mn, hp, hn, op, on)
}

func NftOfferKeylet(account []byte, sequence int32, out []byte) int32 {
	ap, an := buf(account)
	op, on := buf(out)
	return hostNftOfferKeylet(ap, an, sequence, op, on)
}

func OfferKeylet(account []byte, sequence int32, out []byte) int32 {
	ap, an := buf(account)
	op, on := buf(out)
	return hostOfferKeylet(ap, an, sequence, op, on)
}

func OracleKeylet(account []byte, documentID int32, out []byte) int32 {
	ap, an := buf(account)
	op, on := buf(out)
	return hostOracleKeylet(ap, an, documentID, op, on)
}

func PaychanKeylet(account, destination []byte, sequence int32, out []byte) int32 {
	ap, an := buf(account)
	dp, dn := buf(destination)
	op, on := buf(out)
	return hostPaychanKeylet(ap, an, dp, dn, sequence, op, on)
}

func PermissionedDomainKeylet(account []byte, sequence int32, out []byte) int32 {
	ap, an := buf(account)
	op, on := buf(out)
	return hostPermissionedDomainKeylet(ap, an, sequence, op, on)
}

func SignersKeylet(account, out []byte) int32 {
	ap, an := buf(account)
	op, on := buf(out)
	return hostSignersKeylet(ap, an, op, on)
}

func TicketKeylet(account []byte, sequence int32, out []byte) int32 {
	ap, an := buf(account)
	op, on := buf(out)
	return hostTicketKeylet(ap, an, sequence, op, on)
}

func VaultKeylet(account []byte, sequence int32, out []byte) int32 {
	ap, an := buf(account)
	op, on := buf(out)
	return hostVaultKeylet(ap, an, sequence, op, on)
}

func GetNFT(owner, nftID, out []byte) int32 {
	ap, an := buf(owner)
	ip, in := buf(nftID)
	op, on := buf(out)
	return hostGetNFT(ap, an, ip, in, op, on)
}

func GetNFTIssuer(nftID, out []byte) int32 {
	ip, in := buf(nftID)
	op, on := buf(out)
	return hostGetNFTIssuer(ip, in, op, on)
}

func GetNFTTaxon(nftID, out []byte) int32 {
	ip, in := buf(nftID)
	op, on := buf(out)
	return hostGetNFTTaxon(ip, in, op, on)
}

func GetNFTFlags(nftID []byte) int32 {
	ip, in := buf(nftID)
	return hostGetNFTFlags(ip, in)
}

func GetNFTTransferFee(nftID []byte) int32 {
	ip, in := buf(nftID)
	return hostGetNFTTransferFee(ip, in)
}

func GetNFTSerial(nftID, out []byte) int32 {
	ip, in := buf(nftID)
	op, on := buf(out)
	return hostGetNFTSerial(ip, in, op, on)
}

func FloatFromInt(value int64, out []byte, roundingMode int32) int32 {
	op, on := buf(out)
	return hostFloatFromInt(value, op, on, roundingMode)
}

func FloatFromUint(value, out []byte, roundingMode int32) int32 {
	vp, vn := buf(value)
	op, on := buf(out)
	return hostFloatFromUint(vp, vn, op, on, roundingMode)
}

func FloatSet(exponent int32, mantissa int64, out []byte, roundingMode int32) int32 {
	op, on := buf(out)
	return hostFloatSet(exponent, mantissa, op, on, roundingMode)
}

func FloatCompare(a, b []byte) int32 {
	ap, an := buf(a)
	bp, bn := buf(b)
	return hostFloatCompare(ap, an, bp, bn)
}

func FloatAdd(a, b, out []byte, roundingMode int32) int32 {
	ap, an := buf(a)
	bp, bn := buf(b)
	op, on := buf(out)
	return hostFloatAdd(ap, an, bp, bn, op, on, roundingMode)
}

func FloatSubtract(a, b, out []byte, roundingMode int32) int32 {
	ap, an := buf(a)
	bp, bn := buf(b)
	op, on := buf(out)
	return hostFloatSubtract(ap, an, bp, bn, op, on, roundingMode)
}

func FloatMultiply(a, b, out []byte, roundingMode int32) int32 {
	ap, an := buf(a)
	bp, bn := buf(b)
	op, on := buf(out)
	return hostFloatMultiply(ap, an, bp, bn, op, on, roundingMode)
}

func FloatDivide(a, b, out []byte, roundingMode int32) int32 {
	ap, an := buf(a)
	bp, bn := buf(b)
	op, on := buf(out)
	return hostFloatDivide(ap, an, bp, bn, op, on, roundingMode)
}

func FloatPow(a []byte, n int32, out []byte, roundingMode int32) int32 {
	ap, an := buf(a)
	op, on := buf(out)
	return hostFloatPow(ap, an, n, op, on, roundingMode)
}

func FloatRoot(a []byte, n int32, out []byte, roundingMode int32) int32 {
	ap, an := buf(a)
	op, on := buf(out)
	return hostFloatRoot(ap, an, n, op, on, roundingMode)
}

func FloatLog(a, out []byte, roundingMode int32) int32 {
	ap, an := buf(a)
	op, on := buf(out)
	return hostFloatLog(ap, an, op, on, roundingMode)
}

func rawTrace(msg, data []byte, asHex int32) int32 {
	mp, mn := buf(msg)
	dp, dn := buf(data)
	return hostTrace(mp, mn, dp, dn, asHex)
}

func rawTraceNum(msg []byte, number int64) int32 {
	mp, mn := buf(msg)
	return hostTraceNum(mp, mn, number)
}

func rawTraceAccount(msg, account []byte) int32 {
	mp, mn := buf(msg)
	ap, an := buf(account)
	return hostTraceAccount(mp, mn, ap, an)
}

func rawTraceOpaqueFloat(msg, f []byte) int32 {
	mp, mn := buf(msg)
	fp, fn := buf(f)
	return hostTraceOpaqueFloat(mp, mn, fp, fn)
}

func rawTraceAmount(msg, amount []byte) int32 {
	mp, mn := buf(msg)
	ap, an := buf(amount)
	return hostTraceAmount(mp, mn, ap, an)
}
