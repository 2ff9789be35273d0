package sfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldCodes(t *testing.T) {
	tests := []struct {
		name  string
		field SField
		code  int32
	}{
		{name: "LedgerEntryType", field: LedgerEntryType, code: 65537},
		{name: "Flags", field: Flags, code: 131074},
		{name: "Sequence", field: Sequence, code: 131076},
		{name: "PreviousTxnID", field: PreviousTxnID, code: 327685},
		{name: "Balance", field: Balance, code: 393218},
		{name: "Fee", field: Fee, code: 393224},
		{name: "Fulfillment", field: Fulfillment, code: 458768},
		{name: "Condition", field: Condition, code: 458769},
		{name: "MemoData", field: MemoData, code: 458765},
		{name: "Account", field: Account, code: 524289},
		{name: "Memo", field: Memo, code: 917514},
		{name: "Memos", field: Memos, code: 983049},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.field.Code())
		})
	}
}

func TestFieldType(t *testing.T) {
	tests := []struct {
		name  string
		field SField
		want  FieldType
	}{
		{name: "TransactionType is uint16", field: TransactionType, want: TypeUInt16},
		{name: "Sequence is uint32", field: Sequence, want: TypeUInt32},
		{name: "OwnerNode is uint64", field: OwnerNode, want: TypeUInt64},
		{name: "PreviousTxnID is hash256", field: PreviousTxnID, want: TypeHash256},
		{name: "Balance is amount", field: Balance, want: TypeAmount},
		{name: "Condition is blob", field: Condition, want: TypeBlob},
		{name: "Account is accountID", field: Account, want: TypeAccountID},
		{name: "Memo is object", field: Memo, want: TypeObject},
		{name: "Memos is array", field: Memos, want: TypeArray},
		{name: "Invalid has no type", field: Invalid, want: TypeUnknown},
		{name: "Generic has no type", field: Generic, want: TypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.field.FieldType())
		})
	}
}
