package drawstats

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Fingerprint hashes the content of draws in the given order. Two sets with
// the same draws in the same order share a fingerprint; dates are ignored.
func Fingerprint(draws []Draw) uint64 {
	buf := make([]byte, 0, len(draws)*(NumbersPerDraw+2)*4)
	for _, d := range draws {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(d.Index))
		for _, n := range d.Numbers {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(n))
		}
		buf = binary.LittleEndian.AppendUint32(buf, uint32(d.Bonus))
	}
	return xxh3.Hash(buf)
}
