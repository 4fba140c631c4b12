package codec

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"time"
)

// headerSize is CRC32(4) + Revision(8) + Timestamp(8) + BodySize(4).
const headerSize = 24

// Envelope wraps a stored document body with integrity and revision metadata.
type Envelope struct {
	CRC32     uint32 // CRC32 checksum for integrity
	Revision  uint64 // Revision counter, incremented on every write
	Timestamp uint64 // Unix timestamp in nanoseconds
	BodySize  uint32 // Size of the body in bytes
	Body      []byte // Document content
}

// NewEnvelope creates an envelope for a document body at the given revision,
// stamped with the current time. An empty body marks a tombstone.
func NewEnvelope(revision uint64, body []byte) *Envelope {
	if len(body) > int(^uint32(0)) {
		panic("document body too large")
	}
	return &Envelope{
		Revision:  revision,
		Timestamp: uint64(time.Now().UnixNano()),
		BodySize:  uint32(len(body)),
		Body:      body,
	}
}

// Tombstone reports whether the envelope marks a deleted document.
func (e *Envelope) Tombstone() bool {
	return e.BodySize == 0
}

// Size returns the total size of the envelope when encoded.
func (e *Envelope) Size() int {
	return headerSize + len(e.Body)
}

// Encode serializes the envelope, computing the CRC field.
func (e *Envelope) Encode() []byte {
	e.CRC32 = e.calculateCRC32()

	buf := make([]byte, e.Size())
	binary.LittleEndian.PutUint32(buf[0:], e.CRC32)
	binary.LittleEndian.PutUint64(buf[4:], e.Revision)
	binary.LittleEndian.PutUint64(buf[12:], e.Timestamp)
	binary.LittleEndian.PutUint32(buf[20:], e.BodySize)
	copy(buf[headerSize:], e.Body)

	return buf
}

// Decode deserializes an envelope from binary data. The body aliases the
// input buffer.
func Decode(data []byte) (*Envelope, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("data too short for envelope header: %d < %d", len(data), headerSize)
	}

	e := &Envelope{}
	e.CRC32 = binary.LittleEndian.Uint32(data[0:4])
	e.Revision = binary.LittleEndian.Uint64(data[4:12])
	e.Timestamp = binary.LittleEndian.Uint64(data[12:20])
	e.BodySize = binary.LittleEndian.Uint32(data[20:24])

	// Widen before adding: a corrupt BodySize near 2^32 must not wrap the sum.
	if uint64(len(data)) < uint64(headerSize)+uint64(e.BodySize) {
		return nil, fmt.Errorf("data too short for body size: %d < %d", len(data), uint64(headerSize)+uint64(e.BodySize))
	}
	e.Body = data[headerSize : headerSize+int(e.BodySize)]

	return e, nil
}

// Validate checks the integrity of the envelope using CRC32.
func (e *Envelope) Validate() error {
	if e.CRC32 != e.calculateCRC32() {
		return fmt.Errorf("CRC32 mismatch: %d != %d", e.CRC32, e.calculateCRC32())
	}
	return nil
}

// calculateCRC32 computes the checksum over all fields except the CRC field:
// Revision + Timestamp + BodySize + Body.
func (e *Envelope) calculateCRC32() uint32 {
	crc := crc32.NewIEEE()

	if err := binary.Write(crc, binary.LittleEndian, e.Revision); err != nil {
		return 0
	}
	if err := binary.Write(crc, binary.LittleEndian, e.Timestamp); err != nil {
		return 0
	}
	if err := binary.Write(crc, binary.LittleEndian, e.BodySize); err != nil {
		return 0
	}
	if _, err := crc.Write(e.Body); err != nil {
		return 0
	}

	return crc.Sum32()
}
