package types

// Capacity limits for variable-length fields. Reads pass the relevant limit
// to the host so an oversized field is rejected rather than truncated.
const (
	DefaultBlobSize     = 1024
	DomainBlobSize      = 256
	ConditionBlobSize   = 128
	FulfillmentBlobSize = 256
	SignatureBlobSize   = 72
	URIBlobSize         = 256

	// ContractDataSize is the maximum size of the guest-writable Data
	// field on an escrow entry.
	ContractDataSize = 4096
)

// Blob holds variable-length field data together with the number of bytes
// the host actually wrote.
type Blob struct {
	buf  [DefaultBlobSize]byte
	size int
}

// NewBlob copies data into a fresh Blob. Data longer than DefaultBlobSize
// is truncated.
func NewBlob(data []byte) Blob {
	var b Blob
	b.size = copy(b.buf[:], data)
	return b
}

// blobFrom wraps bytes the host wrote into window, n of which are valid.
func blobFrom(window []byte, n int) Blob {
	var b Blob
	b.size = copy(b.buf[:], window[:n])
	return b
}

// Bytes returns the valid portion of the blob.
func (b *Blob) Bytes() []byte {
	return b.buf[:b.size]
}

// Len returns the number of valid bytes.
func (b *Blob) Len() int {
	return b.size
}

// IsEmpty reports whether the blob holds no bytes.
func (b *Blob) IsEmpty() bool {
	return b.size == 0
}

// ContractData is the guest-writable Data blob of the current escrow entry.
type ContractData struct {
	buf  [ContractDataSize]byte
	size int
}

// NewContractData copies data into a fresh ContractData. Data longer than
// ContractDataSize is truncated.
func NewContractData(data []byte) ContractData {
	var d ContractData
	d.size = copy(d.buf[:], data)
	return d
}

// Bytes returns the valid portion of the data.
func (d *ContractData) Bytes() []byte {
	return d.buf[:d.size]
}

// Len returns the number of valid bytes.
func (d *ContractData) Len() int {
	return d.size
}

// Window exposes the full backing buffer for host reads.
func (d *ContractData) Window() []byte {
	return d.buf[:]
}

// SetLen records how many bytes of the window a host read filled.
func (d *ContractData) SetLen(n int) {
	d.size = n
}
