package gpu

import (
	"encoding/binary"
	"math"
)

// Host-side plumbing shared by the dispatch paths: uniform parameter
// encoding, float32 wire conversion, and the sort padding math.

// floatsToBytes renders a float32 column in the little-endian layout the
// device expects.
func floatsToBytes(values []float32) []byte {
	out := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

// bytesToFloats is the inverse of floatsToBytes.
func bytesToFloats(data []byte) []float32 {
	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return out
}

// countParams encodes the single-u32 Params block used by the reduction
// kernels, padded to the 16-byte uniform alignment.
func countParams(count int) []byte {
	params := make([]byte, 16)
	binary.LittleEndian.PutUint32(params[0:4], uint32(count))
	return params
}

// bitonicParams encodes one compare-exchange stage: (j, k, ascending, n).
func bitonicParams(j, k uint32, ascending bool, n uint32) []byte {
	params := make([]byte, 16)
	binary.LittleEndian.PutUint32(params[0:4], j)
	binary.LittleEndian.PutUint32(params[4:8], k)
	if ascending {
		binary.LittleEndian.PutUint32(params[8:12], 1)
	}
	binary.LittleEndian.PutUint32(params[12:16], n)
	return params
}

// filterParams encodes (count, op, threshold) for the predicate kernel.
func filterParams(count int, op uint32, threshold float32) []byte {
	params := make([]byte, 16)
	binary.LittleEndian.PutUint32(params[0:4], uint32(count))
	binary.LittleEndian.PutUint32(params[4:8], op)
	binary.LittleEndian.PutUint32(params[8:12], math.Float32bits(threshold))
	return params
}

// nextPowerOfTwo returns the smallest power of two >= n, with n >= 1.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// sortSentinel returns the padding value for a bitonic sort in the given
// direction. Padding must sort to the tail either way.
func sortSentinel(ascending bool) float32 {
	if ascending {
		return math.MaxFloat32
	}
	return -math.MaxFloat32
}

// compactByMask walks the mask in index order and keeps the source values
// whose mask entry is set. Sequential on purpose: index order is what
// preserves the original relative order of matches.
func compactByMask(values, mask []float32) []float32 {
	out := make([]float32, 0, len(values))
	for i, m := range mask {
		if m != 0 {
			out = append(out, values[i])
		}
	}
	return out
}

// workgroupCount returns how many workgroups cover n threads.
func workgroupCount(n int) uint32 {
	return uint32((n + workgroupSize - 1) / workgroupSize)
}
