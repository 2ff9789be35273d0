package host

// Backend is the native stand-in for the functions the xrpld host exposes
// to a WASM guest. Each method mirrors one host function: it may write into
// the supplied output slice and returns the raw host result code (bytes
// written, a scalar value, or a negative Error code).
//
// Production escrow programs never touch this: on wasm builds the package
// routes every call straight to the imported host module. Unit tests and
// the in-process emulator install a Backend with SetBackend.
type Backend interface {
	// Ledger headers.
	GetLedgerSqn() int32
	GetParentLedgerTime() int32
	GetParentLedgerHash(out []byte) int32
	GetBaseFee() int32
	AmendmentEnabled(amendment []byte) int32

	// Field access.
	CacheLedgerObj(keylet []byte, cacheNum int32) int32
	GetTxField(field int32, out []byte) int32
	GetCurrentLedgerObjField(field int32, out []byte) int32
	GetLedgerObjField(slot, field int32, out []byte) int32
	GetTxNestedField(locator, out []byte) int32
	GetCurrentLedgerObjNestedField(locator, out []byte) int32
	GetLedgerObjNestedField(slot int32, locator, out []byte) int32
	GetTxArrayLen(field int32) int32
	GetCurrentLedgerObjArrayLen(field int32) int32
	GetLedgerObjArrayLen(slot, field int32) int32
	GetTxNestedArrayLen(locator []byte) int32
	GetCurrentLedgerObjNestedArrayLen(locator []byte) int32
	GetLedgerObjNestedArrayLen(slot int32, locator []byte) int32

	// State and crypto.
	UpdateData(data []byte) int32
	ComputeSha512Half(input, out []byte) int32
	CheckSig(message, signature, pubkey []byte) int32

	// Keylets.
	AccountKeylet(account, out []byte) int32
	AmmKeylet(issue1, issue2, out []byte) int32
	CheckKeylet(account []byte, sequence int32, out []byte) int32
	CredentialKeylet(subject, issuer, credType, out []byte) int32
	DelegateKeylet(account, authorize, out []byte) int32
	DepositPreauthKeylet(account, authorize, out []byte) int32
	DidKeylet(account, out []byte) int32
	EscrowKeylet(account []byte, sequence int32, out []byte) int32
	LineKeylet(account1, account2, currency, out []byte) int32
	MptIssuanceKeylet(issuer []byte, sequence int32, out []byte) int32
	MptokenKeylet(mptID, holder, out []byte) int32
	NftOfferKeylet(account []byte, sequence int32, out []byte) int32
	OfferKeylet(account []byte, sequence int32, out []byte) int32
	OracleKeylet(account []byte, documentID int32, out []byte) int32
	PaychanKeylet(account, destination []byte, sequence int32, out []byte) int32
	PermissionedDomainKeylet(account []byte, sequence int32, out []byte) int32
	SignersKeylet(account, out []byte) int32
	TicketKeylet(account []byte, sequence int32, out []byte) int32
	VaultKeylet(account []byte, sequence int32, out []byte) int32

	// NFTs.
	GetNFT(owner, nftID, out []byte) int32
	GetNFTIssuer(nftID, out []byte) int32
	GetNFTTaxon(nftID, out []byte) int32
	GetNFTFlags(nftID []byte) int32
	GetNFTTransferFee(nftID []byte) int32
	GetNFTSerial(nftID, out []byte) int32

	// Opaque float arithmetic.
	FloatFromInt(value int64, out []byte, roundingMode int32) int32
	FloatFromUint(value, out []byte, roundingMode int32) int32
	FloatSet(exponent int32, mantissa int64, out []byte, roundingMode int32) int32
	FloatCompare(a, b []byte) int32
	FloatAdd(a, b, out []byte, roundingMode int32) int32
	FloatSubtract(a, b, out []byte, roundingMode int32) int32
	FloatMultiply(a, b, out []byte, roundingMode int32) int32
	FloatDivide(a, b, out []byte, roundingMode int32) int32
	FloatPow(a []byte, n int32, out []byte, roundingMode int32) int32
	FloatRoot(a []byte, n int32, out []byte, roundingMode int32) int32
	FloatLog(a, out []byte, roundingMode int32) int32

	// Tracing.
	Trace(msg, data []byte, asHex int32) int32
	TraceNum(msg []byte, number int64) int32
	TraceAccount(msg, account []byte) int32
	TraceOpaqueFloat(msg, f []byte) int32
	TraceAmount(msg, amount []byte) int32
}

// Rounding modes accepted by the float host functions.
const (
	RoundToNearest   int32 = 0
	RoundTowardsZero int32 = 1
	RoundDownward    int32 = 2
	RoundUpward      int32 = 3
)

// Float comparison results returned by FloatCompare.
const (
	FloatLess    int32 = 0
	FloatEqual   int32 = 1
	FloatGreater int32 = 2
)
