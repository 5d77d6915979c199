package types

import (
	"crypto/sha256"
	"encoding/binary"
)

// CommitPacket returns the packet commitment bytes. The commitment consists of:
// sha256_hash(timeout_timestamp + timeout_height.RevisionNumber + timeout_height.RevisionHeight + sha256_hash(data))
// which results in a fixed length preimage.
// NOTE: A fixed length preimage is ESSENTIAL to prevent relayers from being able
// to malleate the packet fields and create a commitment hash that matches the original packet.
func CommitPacket(data []byte, timeoutHeight TimeoutHeight, timeoutTimestamp uint64) []byte {
	buf := make([]byte, 8, 8+8+8+sha256.Size)
	binary.BigEndian.PutUint64(buf, timeoutTimestamp)

	buf = binary.BigEndian.AppendUint64(buf, timeoutHeight.CommitmentRevisionNumber())
	buf = binary.BigEndian.AppendUint64(buf, timeoutHeight.CommitmentRevisionHeight())

	dataHash := sha256.Sum256(data)
	buf = append(buf, dataHash[:]...)

	hash := sha256.Sum256(buf)
	return hash[:]
}

// CommitAcknowledgement returns the hash of commitment bytes
func CommitAcknowledgement(data []byte) []byte {
	hash := sha256.Sum256(data)
	return hash[:]
}
