package wasmhost

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// instantiateHostLib exports the host_lib import module escrow programs
// link against. Each export unpacks guest pointers and delegates to the
// backend.
func (r *Runner) instantiateHostLib(ctx context.Context, runtime wazero.Runtime) error {
	b := r.backend
	builder := runtime.NewHostModuleBuilder("host_lib")

	// Ledger headers.
	builder.NewFunctionBuilder().WithFunc(func(context.Context, api.Module) int32 {
		return b.GetLedgerSqn()
	}).Export("get_ledger_sqn")

	builder.NewFunctionBuilder().WithFunc(func(context.Context, api.Module) int32 {
		return b.GetParentLedgerTime()
	}).Export("get_parent_ledger_time")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, outPtr, outLen uint32) int32 {
		return callOut(m, outPtr, outLen, func(out []byte) int32 {
			return b.GetParentLedgerHash(out)
		})
	}).Export("get_parent_ledger_hash")

	builder.NewFunctionBuilder().WithFunc(func(context.Context, api.Module) int32 {
		return b.GetBaseFee()
	}).Export("get_base_fee")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, ptr, length uint32) int32 {
		return callIn(m, ptr, length, b.AmendmentEnabled)
	}).Export("amendment_enabled")

	// Field access.
	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, ptr, length uint32, cacheNum int32) int32 {
		return callIn(m, ptr, length, func(keylet []byte) int32 {
			return b.CacheLedgerObj(keylet, cacheNum)
		})
	}).Export("cache_ledger_obj")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, field int32, outPtr, outLen uint32) int32 {
		return callOut(m, outPtr, outLen, func(out []byte) int32 {
			return b.GetTxField(field, out)
		})
	}).Export("get_tx_field")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, field int32, outPtr, outLen uint32) int32 {
		return callOut(m, outPtr, outLen, func(out []byte) int32 {
			return b.GetCurrentLedgerObjField(field, out)
		})
	}).Export("get_current_ledger_obj_field")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, slot, field int32, outPtr, outLen uint32) int32 {
		return callOut(m, outPtr, outLen, func(out []byte) int32 {
			return b.GetLedgerObjField(slot, field, out)
		})
	}).Export("get_ledger_obj_field")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, locPtr, locLen, outPtr, outLen uint32) int32 {
		return callInOut(m, locPtr, locLen, outPtr, outLen, func(loc, out []byte) int32 {
			return b.GetTxNestedField(loc, out)
		})
	}).Export("get_tx_nested_field")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, locPtr, locLen, outPtr, outLen uint32) int32 {
		return callInOut(m, locPtr, locLen, outPtr, outLen, func(loc, out []byte) int32 {
			return b.GetCurrentLedgerObjNestedField(loc, out)
		})
	}).Export("get_current_ledger_obj_nested_field")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, slot int32, locPtr, locLen, outPtr, outLen uint32) int32 {
		return callInOut(m, locPtr, locLen, outPtr, outLen, func(loc, out []byte) int32 {
			return b.GetLedgerObjNestedField(slot, loc, out)
		})
	}).Export("get_ledger_obj_nested_field")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, _ api.Module, field int32) int32 {
		return b.GetTxArrayLen(field)
	}).Export("get_tx_array_len")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, _ api.Module, field int32) int32 {
		return b.GetCurrentLedgerObjArrayLen(field)
	}).Export("get_current_ledger_obj_array_len")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, _ api.Module, slot, field int32) int32 {
		return b.GetLedgerObjArrayLen(slot, field)
	}).Export("get_ledger_obj_array_len")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, locPtr, locLen uint32) int32 {
		return callIn(m, locPtr, locLen, b.GetTxNestedArrayLen)
	}).Export("get_tx_nested_array_len")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, locPtr, locLen uint32) int32 {
		return callIn(m, locPtr, locLen, b.GetCurrentLedgerObjNestedArrayLen)
	}).Export("get_current_ledger_obj_nested_array_len")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, slot int32, locPtr, locLen uint32) int32 {
		return callIn(m, locPtr, locLen, func(loc []byte) int32 {
			return b.GetLedgerObjNestedArrayLen(slot, loc)
		})
	}).Export("get_ledger_obj_nested_array_len")

	// State and crypto.
	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, ptr, length uint32) int32 {
		return callIn(m, ptr, length, b.UpdateData)
	}).Export("update_data")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, inPtr, inLen, outPtr, outLen uint32) int32 {
		return callInOut(m, inPtr, inLen, outPtr, outLen, b.ComputeSha512Half)
	}).Export("compute_sha512_half")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, msgPtr, msgLen, sigPtr, sigLen, keyPtr, keyLen uint32) int32 {
		msg, ok := read(m, msgPtr, msgLen)
		if !ok {
			return pointerOutOfBounds
		}
		sig, ok := read(m, sigPtr, sigLen)
		if !ok {
			return pointerOutOfBounds
		}
		key, ok := read(m, keyPtr, keyLen)
		if !ok {
			return pointerOutOfBounds
		}
		return b.CheckSig(msg, sig, key)
	}).Export("check_sig")

	// Keylets.
	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, acctPtr, acctLen, outPtr, outLen uint32) int32 {
		return callInOut(m, acctPtr, acctLen, outPtr, outLen, b.AccountKeylet)
	}).Export("account_keylet")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, i1Ptr, i1Len, i2Ptr, i2Len, outPtr, outLen uint32) int32 {
		return callIn2Out(m, i1Ptr, i1Len, i2Ptr, i2Len, outPtr, outLen, b.AmmKeylet)
	}).Export("amm_keylet")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, acctPtr, acctLen uint32, sequence int32, outPtr, outLen uint32) int32 {
		return callInOut(m, acctPtr, acctLen, outPtr, outLen, func(acct, out []byte) int32 {
			return b.CheckKeylet(acct, sequence, out)
		})
	}).Export("check_keylet")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, subjPtr, subjLen, issPtr, issLen, typePtr, typeLen, outPtr, outLen uint32) int32 {
		subject, ok := read(m, subjPtr, subjLen)
		if !ok {
			return pointerOutOfBounds
		}
		issuer, ok := read(m, issPtr, issLen)
		if !ok {
			return pointerOutOfBounds
		}
		credType, ok := read(m, typePtr, typeLen)
		if !ok {
			return pointerOutOfBounds
		}
		return callOut(m, outPtr, outLen, func(out []byte) int32 {
			return b.CredentialKeylet(subject, issuer, credType, out)
		})
	}).Export("credential_keylet")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, acctPtr, acctLen, authPtr, authLen, outPtr, outLen uint32) int32 {
		return callIn2Out(m, acctPtr, acctLen, authPtr, authLen, outPtr, outLen, b.DelegateKeylet)
	}).Export("delegate_keylet")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, acctPtr, acctLen, authPtr, authLen, outPtr, outLen uint32) int32 {
		return callIn2Out(m, acctPtr, acctLen, authPtr, authLen, outPtr, outLen, b.DepositPreauthKeylet)
	}).Export("deposit_preauth_keylet")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, acctPtr, acctLen, outPtr, outLen uint32) int32 {
		return callInOut(m, acctPtr, acctLen, outPtr, outLen, b.DidKeylet)
	}).Export("did_keylet")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, acctPtr, acctLen uint32, sequence int32, outPtr, outLen uint32) int32 {
		return callInOut(m, acctPtr, acctLen, outPtr, outLen, func(acct, out []byte) int32 {
			return b.EscrowKeylet(acct, sequence, out)
		})
	}).Export("escrow_keylet")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, a1Ptr, a1Len, a2Ptr, a2Len, curPtr, curLen, outPtr, outLen uint32) int32 {
		a1, ok := read(m, a1Ptr, a1Len)
		if !ok {
			return pointerOutOfBounds
		}
		a2, ok := read(m, a2Ptr, a2Len)
		if !ok {
			return pointerOutOfBounds
		}
		cur, ok := read(m, curPtr, curLen)
		if !ok {
			return pointerOutOfBounds
		}
		return callOut(m, outPtr, outLen, func(out []byte) int32 {
			return b.LineKeylet(a1, a2, cur, out)
		})
	}).Export("line_keylet")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, issPtr, issLen uint32, sequence int32, outPtr, outLen uint32) int32 {
		return callInOut(m, issPtr, issLen, outPtr, outLen, func(issuer, out []byte) int32 {
			return b.MptIssuanceKeylet(issuer, sequence, out)
		})
	}).Export("mpt_issuance_keylet")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, idPtr, idLen, holderPtr, holderLen, outPtr, outLen uint32) int32 {
		return callIn2Out(m, idPtr, idLen, holderPtr, holderLen, outPtr, outLen, b.MptokenKeylet)
	}).Export("mptoken_keylet")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, acctPtr, acctLen uint32, sequence int32, outPtr, outLen uint32) int32 {
		return callInOut(m, acctPtr, acctLen, outPtr, outLen, func(acct, out []byte) int32 {
			return b.NftOfferKeylet(acct, sequence, out)
		})
	}).Export("nft_offer_keylet")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, acctPtr, acctLen uint32, sequence int32, outPtr, outLen uint32) int32 {
		return callInOut(m, acctPtr, acctLen, outPtr, outLen, func(acct, out []byte) int32 {
			return b.OfferKeylet(acct, sequence, out)
		})
	}).Export("offer_keylet")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, acctPtr, acctLen uint32, documentID int32, outPtr, outLen uint32) int32 {
		return callInOut(m, acctPtr, acctLen, outPtr, outLen, func(acct, out []byte) int32 {
			return b.OracleKeylet(acct, documentID, out)
		})
	}).Export("oracle_keylet")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, acctPtr, acctLen, dstPtr, dstLen uint32, sequence int32, outPtr, outLen uint32) int32 {
		return callIn2Out(m, acctPtr, acctLen, dstPtr, dstLen, outPtr, outLen, func(acct, dst, out []byte) int32 {
			return b.PaychanKeylet(acct, dst, sequence, out)
		})
	}).Export("paychan_keylet")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, acctPtr, acctLen uint32, sequence int32, outPtr, outLen uint32) int32 {
		return callInOut(m, acctPtr, acctLen, outPtr, outLen, func(acct, out []byte) int32 {
			return b.PermissionedDomainKeylet(acct, sequence, out)
		})
	}).Export("permissioned_domain_keylet")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, acctPtr, acctLen, outPtr, outLen uint32) int32 {
		return callInOut(m, acctPtr, acctLen, outPtr, outLen, b.SignersKeylet)
	}).Export("signers_keylet")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, acctPtr, acctLen uint32, sequence int32, outPtr, outLen uint32) int32 {
		return callInOut(m, acctPtr, acctLen, outPtr, outLen, func(acct, out []byte) int32 {
			return b.TicketKeylet(acct, sequence, out)
		})
	}).Export("ticket_keylet")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, acctPtr, acctLen uint32, sequence int32, outPtr, outLen uint32) int32 {
		return callInOut(m, acctPtr, acctLen, outPtr, outLen, func(acct, out []byte) int32 {
			return b.VaultKeylet(acct, sequence, out)
		})
	}).Export("vault_keylet")

	// NFTs.
	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, acctPtr, acctLen, idPtr, idLen, outPtr, outLen uint32) int32 {
		return callIn2Out(m, acctPtr, acctLen, idPtr, idLen, outPtr, outLen, b.GetNFT)
	}).Export("get_nft")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, idPtr, idLen, outPtr, outLen uint32) int32 {
		return callInOut(m, idPtr, idLen, outPtr, outLen, b.GetNFTIssuer)
	}).Export("get_nft_issuer")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, idPtr, idLen, outPtr, outLen uint32) int32 {
		return callInOut(m, idPtr, idLen, outPtr, outLen, b.GetNFTTaxon)
	}).Export("get_nft_taxon")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, idPtr, idLen uint32) int32 {
		return callIn(m, idPtr, idLen, b.GetNFTFlags)
	}).Export("get_nft_flags")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, idPtr, idLen uint32) int32 {
		return callIn(m, idPtr, idLen, b.GetNFTTransferFee)
	}).Export("get_nft_transfer_fee")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, idPtr, idLen, outPtr, outLen uint32) int32 {
		return callInOut(m, idPtr, idLen, outPtr, outLen, b.GetNFTSerial)
	}).Export("get_nft_serial")

	// Opaque float arithmetic.
	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, value int64, outPtr, outLen uint32, roundingMode int32) int32 {
		return callOut(m, outPtr, outLen, func(out []byte) int32 {
			return b.FloatFromInt(value, out, roundingMode)
		})
	}).Export("float_from_int")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, inPtr, inLen, outPtr, outLen uint32, roundingMode int32) int32 {
		return callInOut(m, inPtr, inLen, outPtr, outLen, func(in, out []byte) int32 {
			return b.FloatFromUint(in, out, roundingMode)
		})
	}).Export("float_from_uint")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, exponent int32, mantissa int64, outPtr, outLen uint32, roundingMode int32) int32 {
		return callOut(m, outPtr, outLen, func(out []byte) int32 {
			return b.FloatSet(exponent, mantissa, out, roundingMode)
		})
	}).Export("float_set")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, aPtr, aLen, bPtr, bLen uint32) int32 {
		first, ok := read(m, aPtr, aLen)
		if !ok {
			return pointerOutOfBounds
		}
		second, ok := read(m, bPtr, bLen)
		if !ok {
			return pointerOutOfBounds
		}
		return b.FloatCompare(first, second)
	}).Export("float_compare")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, aPtr, aLen, bPtr, bLen, outPtr, outLen uint32, roundingMode int32) int32 {
		return callIn2Out(m, aPtr, aLen, bPtr, bLen, outPtr, outLen, func(first, second, out []byte) int32 {
			return b.FloatAdd(first, second, out, roundingMode)
		})
	}).Export("float_add")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, aPtr, aLen, bPtr, bLen, outPtr, outLen uint32, roundingMode int32) int32 {
		return callIn2Out(m, aPtr, aLen, bPtr, bLen, outPtr, outLen, func(first, second, out []byte) int32 {
			return b.FloatSubtract(first, second, out, roundingMode)
		})
	}).Export("float_subtract")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, aPtr, aLen, bPtr, bLen, outPtr, outLen uint32, roundingMode int32) int32 {
		return callIn2Out(m, aPtr, aLen, bPtr, bLen, outPtr, outLen, func(first, second, out []byte) int32 {
			return b.FloatMultiply(first, second, out, roundingMode)
		})
	}).Export("float_multiply")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, aPtr, aLen, bPtr, bLen, outPtr, outLen uint32, roundingMode int32) int32 {
		return callIn2Out(m, aPtr, aLen, bPtr, bLen, outPtr, outLen, func(first, second, out []byte) int32 {
			return b.FloatDivide(first, second, out, roundingMode)
		})
	}).Export("float_divide")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, aPtr, aLen uint32, n int32, outPtr, outLen uint32, roundingMode int32) int32 {
		return callInOut(m, aPtr, aLen, outPtr, outLen, func(in, out []byte) int32 {
			return b.FloatPow(in, n, out, roundingMode)
		})
	}).Export("float_pow")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, aPtr, aLen uint32, n int32, outPtr, outLen uint32, roundingMode int32) int32 {
		return callInOut(m, aPtr, aLen, outPtr, outLen, func(in, out []byte) int32 {
			return b.FloatRoot(in, n, out, roundingMode)
		})
	}).Export("float_root")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, aPtr, aLen, outPtr, outLen uint32, roundingMode int32) int32 {
		return callInOut(m, aPtr, aLen, outPtr, outLen, func(in, out []byte) int32 {
			return b.FloatLog(in, out, roundingMode)
		})
	}).Export("float_log")

	// Tracing.
	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, msgPtr, msgLen, dataPtr, dataLen uint32, asHex int32) int32 {
		msg, ok := read(m, msgPtr, msgLen)
		if !ok {
			return pointerOutOfBounds
		}
		data, ok := read(m, dataPtr, dataLen)
		if !ok {
			return pointerOutOfBounds
		}
		return b.Trace(msg, data, asHex)
	}).Export("trace")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, msgPtr, msgLen uint32, number int64) int32 {
		return callIn(m, msgPtr, msgLen, func(msg []byte) int32 {
			return b.TraceNum(msg, number)
		})
	}).Export("trace_num")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, msgPtr, msgLen, acctPtr, acctLen uint32) int32 {
		msg, ok := read(m, msgPtr, msgLen)
		if !ok {
			return pointerOutOfBounds
		}
		acct, ok := read(m, acctPtr, acctLen)
		if !ok {
			return pointerOutOfBounds
		}
		return b.TraceAccount(msg, acct)
	}).Export("trace_account")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, msgPtr, msgLen, fPtr, fLen uint32) int32 {
		msg, ok := read(m, msgPtr, msgLen)
		if !ok {
			return pointerOutOfBounds
		}
		f, ok := read(m, fPtr, fLen)
		if !ok {
			return pointerOutOfBounds
		}
		return b.TraceOpaqueFloat(msg, f)
	}).Export("trace_opaque_float")

	builder.NewFunctionBuilder().WithFunc(func(_ context.Context, m api.Module, msgPtr, msgLen, amtPtr, amtLen uint32) int32 {
		msg, ok := read(m, msgPtr, msgLen)
		if !ok {
			return pointerOutOfBounds
		}
		amt, ok := read(m, amtPtr, amtLen)
		if !ok {
			return pointerOutOfBounds
		}
		return b.TraceAmount(msg, amt)
	}).Export("trace_amount")

	_, err := builder.Instantiate(ctx)
	return err
}
