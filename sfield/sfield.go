// Package sfield enumerates the serialized field codes understood by the
// xrpld host. The numeric values are fixed protocol ABI: the high 16 bits
// carry the field's serialized type, the low 16 bits the field index within
// that type. They must mirror the host's table exactly.
package sfield

// SField identifies one serialized field.
type SField int32

// Code returns the raw field code passed to host functions.
func (f SField) Code() int32 {
	return int32(f)
}

// FieldType returns the serialized-type discriminant in the high 16 bits.
func (f SField) FieldType() FieldType {
	if f <= 0 {
		return TypeUnknown
	}
	return FieldType(int32(f) >> 16)
}

// FieldType is the serialized type of a field.
type FieldType int32

const (
	TypeUnknown   FieldType = 0
	TypeUInt16    FieldType = 1
	TypeUInt32    FieldType = 2
	TypeUInt64    FieldType = 3
	TypeHash128   FieldType = 4
	TypeHash256   FieldType = 5
	TypeAmount    FieldType = 6
	TypeBlob      FieldType = 7
	TypeAccountID FieldType = 8
	TypeNumber    FieldType = 9
	TypeWasmCode  FieldType = 10
	TypeObject    FieldType = 14
	TypeArray     FieldType = 15
	TypeUInt8     FieldType = 16
	TypeHash160   FieldType = 17
	TypePathSet   FieldType = 18
	TypeVector256 FieldType = 19
	TypeHash192   FieldType = 21
	TypeIssue     FieldType = 24
	TypeXChain    FieldType = 25
	TypeCurrency  FieldType = 26
)

// Pseudo-fields used by the host for special lookups.
const (
	Invalid     SField = -1
	Generic     SField = 0
	Hash        SField = -1
	Index       SField = 0
	Transaction SField = 655425793
	LedgerEntry SField = 655491329
	Validation  SField = 655556865
	Metadata    SField = 655622401
)

// 16-bit unsigned integers.
const (
	LedgerEntryType      SField = 65537
	TransactionType      SField = 65538
	SignerWeight         SField = 65539
	TransferFee          SField = 65540
	TradingFee           SField = 65541
	DiscountedFee        SField = 65542
	Version              SField = 65552
	HookStateChangeCount SField = 65553
	HookEmitCount        SField = 65554
	HookExecutionIndex   SField = 65555
	HookApiVersion       SField = 65556
	LedgerFixType        SField = 65557
)

// 32-bit unsigned integers.
const (
	NetworkID             SField = 131073
	Flags                 SField = 131074
	SourceTag             SField = 131075
	Sequence              SField = 131076
	PreviousTxnLgrSeq     SField = 131077
	LedgerSequence        SField = 131078
	CloseTime             SField = 131079
	ParentCloseTime       SField = 131080
	SigningTime           SField = 131081
	Expiration            SField = 131082
	TransferRate          SField = 131083
	WalletSize            SField = 131084
	OwnerCount            SField = 131085
	DestinationTag        SField = 131086
	LastUpdateTime        SField = 131087
	HighQualityIn         SField = 131088
	HighQualityOut        SField = 131089
	LowQualityIn          SField = 131090
	LowQualityOut         SField = 131091
	QualityIn             SField = 131092
	QualityOut            SField = 131093
	StampEscrow           SField = 131094
	BondAmount            SField = 131095
	LoadFee               SField = 131096
	OfferSequence         SField = 131097
	FirstLedgerSequence   SField = 131098
	LastLedgerSequence    SField = 131099
	TransactionIndex      SField = 131100
	OperationLimit        SField = 131101
	ReferenceFeeUnits     SField = 131102
	ReserveBase           SField = 131103
	ReserveIncrement      SField = 131104
	SetFlag               SField = 131105
	ClearFlag             SField = 131106
	SignerQuorum          SField = 131107
	CancelAfter           SField = 131108
	FinishAfter           SField = 131109
	SignerListID          SField = 131110
	SettleDelay           SField = 131111
	TicketCount           SField = 131112
	TicketSequence        SField = 131113
	NFTokenTaxon          SField = 131114
	MintedNFTokens        SField = 131115
	BurnedNFTokens        SField = 131116
	HookStateCount        SField = 131117
	EmitGeneration        SField = 131118
	VoteWeight            SField = 131120
	FirstNFTokenSequence  SField = 131122
	OracleDocumentID      SField = 131123
	PermissionValue       SField = 131124
	MutableFlags          SField = 131125
	ExtensionComputeLimit SField = 131126
	ExtensionSizeLimit    SField = 131127
	GasPrice              SField = 131128
	ComputationAllowance  SField = 131129
	GasUsed               SField = 131130
)

// 64-bit unsigned integers.
const (
	IndexNext                SField = 196609
	IndexPrevious            SField = 196610
	BookNode                 SField = 196611
	OwnerNode                SField = 196612
	BaseFee                  SField = 196613
	ExchangeRate             SField = 196614
	LowNode                  SField = 196615
	HighNode                 SField = 196616
	DestinationNode          SField = 196617
	Cookie                   SField = 196618
	ServerVersion            SField = 196619
	NFTokenOfferNode         SField = 196620
	EmitBurden               SField = 196621
	HookOn                   SField = 196624
	HookInstructionCount     SField = 196625
	HookReturnCode           SField = 196626
	ReferenceCount           SField = 196627
	XChainClaimID            SField = 196628
	XChainAccountCreateCount SField = 196629
	XChainAccountClaimCount  SField = 196630
	AssetPrice               SField = 196631
	MaximumAmount            SField = 196632
	OutstandingAmount        SField = 196633
	MPTAmount                SField = 196634
	IssuerNode               SField = 196635
	SubjectNode              SField = 196636
	LockedAmount             SField = 196637
)

// 128-bit hashes.
const (
	EmailHash SField = 262145
)

// 256-bit hashes.
const (
	LedgerHash       SField = 327681
	ParentHash       SField = 327682
	TransactionHash  SField = 327683
	AccountHash      SField = 327684
	PreviousTxnID    SField = 327685
	LedgerIndex      SField = 327686
	WalletLocator    SField = 327687
	RootIndex        SField = 327688
	AccountTxnID     SField = 327689
	NFTokenID        SField = 327690
	EmitParentTxnID  SField = 327691
	EmitNonce        SField = 327692
	EmitHookHash     SField = 327693
	AMMID            SField = 327694
	BookDirectory    SField = 327696
	InvoiceID        SField = 327697
	Nickname         SField = 327698
	Amendment        SField = 327699
	Digest           SField = 327701
	Channel          SField = 327702
	ConsensusHash    SField = 327703
	CheckID          SField = 327704
	ValidatedHash    SField = 327705
	PreviousPageMin  SField = 327706
	NextPageMin      SField = 327707
	NFTokenBuyOffer  SField = 327708
	NFTokenSellOffer SField = 327709
	HookStateKey     SField = 327710
	HookHash         SField = 327711
	HookNamespace    SField = 327712
	HookSetTxnID     SField = 327713
	DomainID         SField = 327714
	VaultID          SField = 327715
	ParentBatchID    SField = 327716
)

// Amounts.
const (
	Amount                 SField = 393217
	Balance                SField = 393218
	LimitAmount            SField = 393219
	TakerPays              SField = 393220
	TakerGets              SField = 393221
	LowLimit               SField = 393222
	HighLimit              SField = 393223
	Fee                    SField = 393224
	SendMax                SField = 393225
	DeliverMin             SField = 393226
	Amount2                SField = 393227
	BidMin                 SField = 393228
	BidMax                 SField = 393229
	MinimumOffer           SField = 393232
	RippleEscrow           SField = 393233
	DeliveredAmount        SField = 393234
	NFTokenBrokerFee       SField = 393235
	BaseFeeDrops           SField = 393238
	ReserveBaseDrops       SField = 393239
	ReserveIncrementDrops  SField = 393240
	LPTokenOut             SField = 393241
	LPTokenIn              SField = 393242
	EPrice                 SField = 393243
	Price                  SField = 393244
	SignatureReward        SField = 393245
	MinAccountCreateAmount SField = 393246
	LPTokenBalance         SField = 393247
)

// Variable-length blobs.
const (
	PublicKey           SField = 458753
	MessageKey          SField = 458754
	SigningPubKey       SField = 458755
	TxnSignature        SField = 458756
	URI                 SField = 458757
	Signature           SField = 458758
	Domain              SField = 458759
	FundCode            SField = 458760
	RemoveCode          SField = 458761
	ExpireCode          SField = 458762
	CreateCode          SField = 458763
	MemoType            SField = 458764
	MemoData            SField = 458765
	MemoFormat          SField = 458766
	Fulfillment         SField = 458768
	Condition           SField = 458769
	MasterSignature     SField = 458770
	UNLModifyValidator  SField = 458771
	ValidatorToDisable  SField = 458772
	ValidatorToReEnable SField = 458773
	HookStateData       SField = 458774
	HookReturnString    SField = 458775
	HookParameterName   SField = 458776
	HookParameterValue  SField = 458777
	DIDDocument         SField = 458778
	Data                SField = 458779
	AssetClass          SField = 458780
	Provider            SField = 458781
	MPTokenMetadata     SField = 458782
	CredentialType      SField = 458783
	FinishFunction      SField = 458784
)

// Account identifiers.
const (
	Account                  SField = 524289
	Owner                    SField = 524290
	Destination              SField = 524291
	Issuer                   SField = 524292
	Authorize                SField = 524293
	Unauthorize              SField = 524294
	RegularKey               SField = 524296
	NFTokenMinter            SField = 524297
	EmitCallback             SField = 524298
	Holder                   SField = 524299
	Delegate                 SField = 524300
	HookAccount              SField = 524304
	OtherChainSource         SField = 524306
	OtherChainDestination    SField = 524307
	AttestationSignerAccount SField = 524308
	AttestationRewardAccount SField = 524309
	LockingChainDoor         SField = 524310
	IssuingChainDoor         SField = 524311
	Subject                  SField = 524312
)

// Numbers.
const (
	Number          SField = 589825
	AssetsAvailable SField = 589826
	AssetsMaximum   SField = 589827
	AssetsTotal     SField = 589828
	LossUnrealized  SField = 589829
)

// WASM return codes.
const (
	WasmReturnCode SField = 655361
)

// Inner objects.
const (
	TransactionMetaData                             SField = 917506
	CreatedNode                                     SField = 917507
	DeletedNode                                     SField = 917508
	ModifiedNode                                    SField = 917509
	PreviousFields                                  SField = 917510
	FinalFields                                     SField = 917511
	NewFields                                       SField = 917512
	TemplateEntry                                   SField = 917513
	Memo                                            SField = 917514
	SignerEntry                                     SField = 917515
	NFToken                                         SField = 917516
	EmitDetails                                     SField = 917517
	Hook                                            SField = 917518
	Permission                                      SField = 917519
	Signer                                          SField = 917520
	Majority                                        SField = 917522
	DisabledValidator                               SField = 917523
	EmittedTxn                                      SField = 917524
	HookExecution                                   SField = 917525
	HookDefinition                                  SField = 917526
	HookParameter                                   SField = 917527
	HookGrant                                       SField = 917528
	VoteEntry                                       SField = 917529
	AuctionSlot                                     SField = 917530
	AuthAccount                                     SField = 917531
	XChainClaimProofSig                             SField = 917532
	XChainCreateAccountProofSig                     SField = 917533
	XChainClaimAttestationCollectionElement         SField = 917534
	XChainCreateAccountAttestationCollectionElement SField = 917535
	PriceData                                       SField = 917536
	Credential                                      SField = 917537
	RawTransaction                                  SField = 917538
	BatchSigner                                     SField = 917539
	Book                                            SField = 917540
)

// Arrays.
const (
	Signers                         SField = 983043
	SignerEntries                   SField = 983044
	Template                        SField = 983045
	Necessary                       SField = 983046
	Sufficient                      SField = 983047
	AffectedNodes                   SField = 983048
	Memos                           SField = 983049
	NFTokens                        SField = 983050
	Hooks                           SField = 983051
	VoteSlots                       SField = 983052
	AdditionalBooks                 SField = 983053
	Majorities                      SField = 983056
	DisabledValidators              SField = 983057
	HookExecutions                  SField = 983058
	HookParameters                  SField = 983059
	HookGrants                      SField = 983060
	XChainClaimAttestations         SField = 983061
	XChainCreateAccountAttestations SField = 983062
	PriceDataSeries                 SField = 983064
	AuthAccounts                    SField = 983065
	AuthorizeCredentials            SField = 983066
	UnauthorizeCredentials          SField = 983067
	AcceptedCredentials             SField = 983068
	Permissions                     SField = 983069
	RawTransactions                 SField = 983070
	BatchSigners                    SField = 983071
)

// 8-bit unsigned integers.
const (
	CloseResolution     SField = 1048577
	Method              SField = 1048578
	TransactionResult   SField = 1048579
	Scale               SField = 1048580
	AssetScale          SField = 1048581
	TickSize            SField = 1048592
	UNLModifyDisabling  SField = 1048593
	HookResult          SField = 1048594
	WasLockingChainSend SField = 1048595
	WithdrawalPolicy    SField = 1048596
)

// 160-bit hashes.
const (
	TakerPaysCurrency SField = 1114113
	TakerPaysIssuer   SField = 1114114
	TakerGetsCurrency SField = 1114115
	TakerGetsIssuer   SField = 1114116
)

// Path sets.
const (
	Paths SField = 1179649
)

// 256-bit hash vectors.
const (
	Indexes       SField = 1245185
	Hashes        SField = 1245186
	Amendments    SField = 1245187
	NFTokenOffers SField = 1245188
	CredentialIDs SField = 1245189
)

// 192-bit hashes.
const (
	MPTokenIssuanceID SField = 1376257
	ShareMPTID        SField = 1376258
)

// Issues.
const (
	LockingChainIssue SField = 1572865
	IssuingChainIssue SField = 1572866
	Asset             SField = 1572867
	Asset2            SField = 1572868
)

// Cross-chain bridges.
const (
	XChainBridge SField = 1638401
)

// Currencies.
const (
	BaseAsset  SField = 1703937
	QuoteAsset SField = 1703938
)
