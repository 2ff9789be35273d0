// Package emulator is an in-process stand-in for the xrpld WASM host. It
// implements host.Backend over fixture state so escrow logic can run and
// be tested natively, without a rippled node or a WASM runtime.
package emulator

import (
	"encoding/binary"
	"log"
	"sync"

	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
	"github.com/LeJamon/xrpl-wasm-stdlib/internal/crypto"
	"github.com/LeJamon/xrpl-wasm-stdlib/sfield"
	lru "github.com/hashicorp/golang-lru/v2"
)

// dataField is the code of the guest-writable Data field UpdateData
// targets.
var dataField = sfield.Data.Code()

// slotCount bounds the ledger object slot table. Slot 0 is the allocation
// sentinel, so usable slots are 1..255.
const slotCount = 256

// entryCacheSize bounds the read-through cache in front of the entry map.
const entryCacheSize = 256

var _ host.Backend = (*Emulator)(nil)

// Emulator holds the ledger and transaction state one finish invocation
// sees. It implements host.Backend.
type Emulator struct {
	mu sync.Mutex

	ledgerSeq  uint32
	parentTime uint32
	parentHash types.Hash256
	baseFee    uint32
	amendments map[types.Hash256]bool

	tx            *Value
	currentEscrow *Value

	entries map[[32]byte]*Value
	cache   *lru.Cache[[32]byte, *Value]
	hits    uint64
	misses  uint64

	slots [slotCount]*Value

	nftURIs map[[52]byte][]byte

	traces []Trace
	logger *log.Logger
}

// New returns an empty emulator with an empty EscrowFinish transaction and
// an empty current escrow entry. Fixture state is attached with the Set*
// methods.
func New() *Emulator {
	cache, _ := lru.New[[32]byte, *Value](entryCacheSize)
	return &Emulator{
		ledgerSeq:     1,
		baseFee:       10,
		amendments:    map[types.Hash256]bool{},
		tx:            Object(),
		currentEscrow: Object(),
		entries:       map[[32]byte]*Value{},
		cache:         cache,
		nftURIs:       map[[52]byte][]byte{},
		logger:        log.Default(),
	}
}

// SetLedgerHeader installs the header of the ledger under construction.
func (e *Emulator) SetLedgerHeader(seq, parentTime uint32, parentHash types.Hash256, baseFee uint32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ledgerSeq = seq
	e.parentTime = parentTime
	e.parentHash = parentHash
	e.baseFee = baseFee
}

// EnableAmendment marks an amendment as active.
func (e *Emulator) EnableAmendment(id types.Hash256) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.amendments[id] = true
}

// SetTx installs the transaction under execution.
func (e *Emulator) SetTx(tx *Value) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tx = tx
}

// SetCurrentEscrow installs the escrow entry under execution.
func (e *Emulator) SetCurrentEscrow(entry *Value) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.currentEscrow = entry
}

// CurrentEscrowEntry returns the escrow entry under execution, including
// any Data updates the program made.
func (e *Emulator) CurrentEscrowEntry() *Value {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentEscrow
}

// SetEntry stores a ledger entry under its keylet.
func (e *Emulator) SetEntry(keylet [32]byte, entry *Value) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries[keylet] = entry
	e.cache.Remove(keylet)
}

// SetNFT registers an NFT and its URI under its owner.
func (e *Emulator) SetNFT(owner types.AccountID, nftID types.Hash256, uri []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nftURIs[nftKey(owner, nftID)] = append([]byte(nil), uri...)
}

// CacheStats reports entry cache hits and misses.
func (e *Emulator) CacheStats() (hits, misses uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hits, e.misses
}

func nftKey(owner types.AccountID, nftID types.Hash256) [52]byte {
	var k [52]byte
	copy(k[:20], owner[:])
	copy(k[20:], nftID[:])
	return k
}

// lookupEntry resolves a keylet through the read cache.
func (e *Emulator) lookupEntry(keylet [32]byte) (*Value, bool) {
	if entry, ok := e.cache.Get(keylet); ok {
		e.hits++
		return entry, true
	}
	entry, ok := e.entries[keylet]
	if !ok {
		e.misses++
		return nil, false
	}
	e.cache.Add(keylet, entry)
	e.hits++
	return entry, true
}

// Ledger headers.

func (e *Emulator) GetLedgerSqn() int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return int32(e.ledgerSeq)
}

func (e *Emulator) GetParentLedgerTime() int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return int32(e.parentTime)
}

func (e *Emulator) GetParentLedgerHash(out []byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(out) < types.Hash256Size {
		return int32(host.BufferTooSmall)
	}
	copy(out, e.parentHash[:])
	return types.Hash256Size
}

func (e *Emulator) GetBaseFee() int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return int32(e.baseFee)
}

func (e *Emulator) AmendmentEnabled(amendment []byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(amendment) != types.Hash256Size {
		return int32(host.InvalidParams)
	}
	var id types.Hash256
	copy(id[:], amendment)
	if e.amendments[id] {
		return 1
	}
	return 0
}

// Field access.

// readLeaf copies a leaf field into out, enforcing the buffer and shape
// rules the host applies.
func readLeaf(v *Value, out []byte) int32 {
	if !v.isLeaf() {
		return int32(host.NotLeafField)
	}
	if len(out) < len(v.leaf) {
		return int32(host.BufferTooSmall)
	}
	copy(out, v.leaf)
	return int32(len(v.leaf))
}

func readField(root *Value, field int32, out []byte) int32 {
	if root == nil {
		return int32(host.InternalError)
	}
	child, ok := root.get(field)
	if !ok {
		return int32(host.FieldNotFound)
	}
	return readLeaf(child, out)
}

func arrayLen(root *Value, field int32) int32 {
	if root == nil {
		return int32(host.InternalError)
	}
	child, ok := root.get(field)
	if !ok {
		return int32(host.FieldNotFound)
	}
	if !child.isArray() {
		return int32(host.NoArray)
	}
	return int32(len(child.array))
}

// resolveLocator walks the packed locator steps from root. On an object
// node a step is a field code, on an array node it is an index.
func resolveLocator(root *Value, locator []byte) (*Value, int32) {
	if len(locator) == 0 || len(locator)%4 != 0 || len(locator) > 64 {
		return nil, int32(host.LocatorMalformed)
	}
	node := root
	for off := 0; off < len(locator); off += 4 {
		step := int32(binary.LittleEndian.Uint32(locator[off:]))
		switch {
		case node.isObject():
			child, ok := node.get(step)
			if !ok {
				return nil, int32(host.FieldNotFound)
			}
			node = child
		case node.isArray():
			if step < 0 || int(step) >= len(node.array) {
				return nil, int32(host.IndexOutOfBounds)
			}
			node = node.array[step]
		default:
			return nil, int32(host.LocatorMalformed)
		}
	}
	return node, 0
}

func readNestedField(root *Value, locator, out []byte) int32 {
	if root == nil {
		return int32(host.InternalError)
	}
	node, code := resolveLocator(root, locator)
	if node == nil {
		return code
	}
	return readLeaf(node, out)
}

func nestedArrayLen(root *Value, locator []byte) int32 {
	if root == nil {
		return int32(host.InternalError)
	}
	node, code := resolveLocator(root, locator)
	if node == nil {
		return code
	}
	if !node.isArray() {
		return int32(host.NoArray)
	}
	return int32(len(node.array))
}

func (e *Emulator) GetTxField(field int32, out []byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return readField(e.tx, field, out)
}

func (e *Emulator) GetCurrentLedgerObjField(field int32, out []byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return readField(e.currentEscrow, field, out)
}

func (e *Emulator) GetLedgerObjField(slot, field int32, out []byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	entry, code := e.slotEntry(slot)
	if entry == nil {
		return code
	}
	return readField(entry, field, out)
}

func (e *Emulator) GetTxNestedField(locator, out []byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return readNestedField(e.tx, locator, out)
}

func (e *Emulator) GetCurrentLedgerObjNestedField(locator, out []byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return readNestedField(e.currentEscrow, locator, out)
}

func (e *Emulator) GetLedgerObjNestedField(slot int32, locator, out []byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	entry, code := e.slotEntry(slot)
	if entry == nil {
		return code
	}
	return readNestedField(entry, locator, out)
}

func (e *Emulator) GetTxArrayLen(field int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return arrayLen(e.tx, field)
}

func (e *Emulator) GetCurrentLedgerObjArrayLen(field int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return arrayLen(e.currentEscrow, field)
}

func (e *Emulator) GetLedgerObjArrayLen(slot, field int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	entry, code := e.slotEntry(slot)
	if entry == nil {
		return code
	}
	return arrayLen(entry, field)
}

func (e *Emulator) GetTxNestedArrayLen(locator []byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return nestedArrayLen(e.tx, locator)
}

func (e *Emulator) GetCurrentLedgerObjNestedArrayLen(locator []byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return nestedArrayLen(e.currentEscrow, locator)
}

func (e *Emulator) GetLedgerObjNestedArrayLen(slot int32, locator []byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	entry, code := e.slotEntry(slot)
	if entry == nil {
		return code
	}
	return nestedArrayLen(entry, locator)
}

// Slots.

func (e *Emulator) slotEntry(slot int32) (*Value, int32) {
	if slot <= 0 || slot >= slotCount {
		return nil, int32(host.SlotOutRange)
	}
	entry := e.slots[slot]
	if entry == nil {
		return nil, int32(host.EmptySlot)
	}
	return entry, 0
}

func (e *Emulator) CacheLedgerObj(keylet []byte, cacheNum int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(keylet) != types.Hash256Size {
		return int32(host.InvalidParams)
	}
	if cacheNum < 0 || cacheNum >= slotCount {
		return int32(host.SlotOutRange)
	}
	var key [32]byte
	copy(key[:], keylet)
	entry, ok := e.lookupEntry(key)
	if !ok {
		return int32(host.LedgerObjNotFound)
	}
	slot := cacheNum
	if slot == 0 {
		for i := int32(1); i < slotCount; i++ {
			if e.slots[i] == nil {
				slot = i
				break
			}
		}
		if slot == 0 {
			return int32(host.SlotsFull)
		}
	}
	e.slots[slot] = entry
	return slot
}

// State and crypto.

func (e *Emulator) UpdateData(data []byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(data) > types.ContractDataSize {
		return int32(host.DataFieldTooLarge)
	}
	if e.currentEscrow == nil {
		return int32(host.InternalError)
	}
	e.currentEscrow.SetBlob(dataField, data)
	return int32(len(data))
}

func (e *Emulator) ComputeSha512Half(input, out []byte) int32 {
	if len(out) < types.Hash256Size {
		return int32(host.BufferTooSmall)
	}
	h := crypto.Sha512Half(input)
	copy(out, h[:])
	return types.Hash256Size
}

// NFTs.

func (e *Emulator) GetNFT(owner, nftID, out []byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(owner) != types.AccountIDSize || len(nftID) != types.NFTokenIDSize {
		return int32(host.InvalidParams)
	}
	var acct types.AccountID
	var id types.Hash256
	copy(acct[:], owner)
	copy(id[:], nftID)
	uri, ok := e.nftURIs[nftKey(acct, id)]
	if !ok {
		return int32(host.LedgerObjNotFound)
	}
	if len(out) < len(uri) {
		return int32(host.BufferTooSmall)
	}
	copy(out, uri)
	return int32(len(uri))
}

func (e *Emulator) GetNFTIssuer(nftID, out []byte) int32 {
	if len(nftID) != types.NFTokenIDSize {
		return int32(host.InvalidParams)
	}
	if len(out) < types.AccountIDSize {
		return int32(host.BufferTooSmall)
	}
	copy(out, nftID[4:24])
	return types.AccountIDSize
}

func (e *Emulator) GetNFTTaxon(nftID, out []byte) int32 {
	if len(nftID) != types.NFTokenIDSize {
		return int32(host.InvalidParams)
	}
	if len(out) < 4 {
		return int32(host.BufferTooSmall)
	}
	// The taxon is stored scrambled with a Knuth multiplicative constant
	// keyed on the mint sequence.
	scrambled := binary.BigEndian.Uint32(nftID[24:28])
	serial := binary.BigEndian.Uint32(nftID[28:32])
	taxon := scrambled ^ (384160001*serial + 2459)
	binary.BigEndian.PutUint32(out, taxon)
	return 4
}

func (e *Emulator) GetNFTFlags(nftID []byte) int32 {
	if len(nftID) != types.NFTokenIDSize {
		return int32(host.InvalidParams)
	}
	return int32(binary.BigEndian.Uint16(nftID[0:2]))
}

func (e *Emulator) GetNFTTransferFee(nftID []byte) int32 {
	if len(nftID) != types.NFTokenIDSize {
		return int32(host.InvalidParams)
	}
	return int32(binary.BigEndian.Uint16(nftID[2:4]))
}

func (e *Emulator) GetNFTSerial(nftID, out []byte) int32 {
	if len(nftID) != types.NFTokenIDSize {
		return int32(host.InvalidParams)
	}
	if len(out) < 4 {
		return int32(host.BufferTooSmall)
	}
	copy(out, nftID[28:32])
	return 4
}
