package types

import "encoding/binary"

// TransactionType is the numeric type code of an XRPL transaction. The
// host hands it to the guest as two little-endian bytes.
type TransactionType int16

const (
	TxInvalid                           TransactionType = -1
	TxPayment                           TransactionType = 0
	TxEscrowCreate                      TransactionType = 1
	TxEscrowFinish                      TransactionType = 2
	TxAccountSet                        TransactionType = 3
	TxEscrowCancel                      TransactionType = 4
	TxSetRegularKey                     TransactionType = 5
	TxNickNameSet                       TransactionType = 6
	TxOfferCreate                       TransactionType = 7
	TxOfferCancel                       TransactionType = 8
	TxContract                          TransactionType = 9
	TxTicketCreate                      TransactionType = 10
	TxTicketCancel                      TransactionType = 11
	TxSignerListSet                     TransactionType = 12
	TxPaymentChannelCreate              TransactionType = 13
	TxPaymentChannelFund                TransactionType = 14
	TxPaymentChannelClaim               TransactionType = 15
	TxCheckCreate                       TransactionType = 16
	TxCheckCash                         TransactionType = 17
	TxCheckCancel                       TransactionType = 18
	TxDepositPreauth                    TransactionType = 19
	TxTrustSet                          TransactionType = 20
	TxAccountDelete                     TransactionType = 21
	TxSetHook                           TransactionType = 22
	TxNFTokenMint                       TransactionType = 25
	TxNFTokenBurn                       TransactionType = 26
	TxNFTokenCreateOffer                TransactionType = 27
	TxNFTokenCancelOffer                TransactionType = 28
	TxNFTokenAcceptOffer                TransactionType = 29
	TxClawback                          TransactionType = 30
	TxAMMCreate                         TransactionType = 35
	TxAMMDeposit                        TransactionType = 36
	TxAMMWithdraw                       TransactionType = 37
	TxAMMVote                           TransactionType = 38
	TxAMMBid                            TransactionType = 39
	TxAMMDelete                         TransactionType = 40
	TxXChainCreateClaimID               TransactionType = 41
	TxXChainCommit                      TransactionType = 42
	TxXChainClaim                       TransactionType = 43
	TxXChainAccountCreateCommit         TransactionType = 44
	TxXChainAddClaimAttestation         TransactionType = 45
	TxXChainAddAccountCreateAttestation TransactionType = 46
	TxXChainModifyBridge                TransactionType = 47
	TxXChainCreateBridge                TransactionType = 48
	TxDIDSet                            TransactionType = 49
	TxDIDDelete                         TransactionType = 50
	TxOracleSet                         TransactionType = 51
	TxOracleDelete                      TransactionType = 52
	TxEnableAmendment                   TransactionType = 100
	TxSetFee                            TransactionType = 101
	TxUNLModify                         TransactionType = 102
)

var knownTxTypes = map[int16]struct{}{
	-1: {}, 0: {}, 1: {}, 2: {}, 3: {}, 4: {}, 5: {}, 6: {}, 7: {}, 8: {},
	9: {}, 10: {}, 11: {}, 12: {}, 13: {}, 14: {}, 15: {}, 16: {}, 17: {},
	18: {}, 19: {}, 20: {}, 21: {}, 22: {}, 25: {}, 26: {}, 27: {}, 28: {},
	29: {}, 30: {}, 35: {}, 36: {}, 37: {}, 38: {}, 39: {}, 40: {}, 41: {},
	42: {}, 43: {}, 44: {}, 45: {}, 46: {}, 47: {}, 48: {}, 49: {}, 50: {},
	51: {}, 52: {}, 100: {}, 101: {}, 102: {},
}

// TransactionTypeFromInt maps a raw code to a TransactionType; codes with
// no assigned meaning map to TxInvalid.
func TransactionTypeFromInt(v int16) TransactionType {
	if _, ok := knownTxTypes[v]; !ok {
		return TxInvalid
	}
	return TransactionType(v)
}

// TransactionTypeFromBytes decodes the two-byte little-endian wire form.
func TransactionTypeFromBytes(b [2]byte) TransactionType {
	return TransactionTypeFromInt(int16(binary.LittleEndian.Uint16(b[:])))
}

// Bytes encodes the type in its two-byte little-endian wire form.
func (t TransactionType) Bytes() [2]byte {
	var out [2]byte
	binary.LittleEndian.PutUint16(out[:], uint16(t))
	return out
}
