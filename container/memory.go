package container

import (
	"sync/atomic"
	"unsafe"
)

// per-node link overhead on a 64-bit system, two pointers
const nodeOverhead = 16

var (
	usedMemory int64
	maxMemory  int64 // 0 means unlimited
)

// SetMaxMemory caps the tracked node memory. Zero disables the cap.
// Exceeding the cap is fatal: the offending allocation panics with
// ErrAllocationFailure rather than returning a recoverable error.
func SetMaxMemory(n int64) {
	atomic.StoreInt64(&maxMemory, n)
}

// UsedMemory returns the estimated bytes held by live nodes.
func UsedMemory() int64 {
	return atomic.LoadInt64(&usedMemory)
}

func trackAlloc(v any) {
	n := estimateMemoryUsage(v)
	if limit := atomic.LoadInt64(&maxMemory); limit > 0 {
		if atomic.LoadInt64(&usedMemory)+n > limit {
			panic(ErrAllocationFailure)
		}
	}
	atomic.AddInt64(&usedMemory, n)
}

func trackFree(v any) {
	atomic.AddInt64(&usedMemory, -estimateMemoryUsage(v))
}

// trackSwap re-accounts a node whose value is overwritten in place. The cap
// is checked against the size delta only, so shrinking overwrites always
// succeed.
func trackSwap(oldValue, newValue any) {
	delta := estimateMemoryUsage(newValue) - estimateMemoryUsage(oldValue)
	if delta > 0 {
		if limit := atomic.LoadInt64(&maxMemory); limit > 0 {
			if atomic.LoadInt64(&usedMemory)+delta > limit {
				panic(ErrAllocationFailure)
			}
		}
	}
	atomic.AddInt64(&usedMemory, delta)
}

func estimateMemoryUsage(v any) int64 {
	switch value := v.(type) {
	case int:
		return nodeOverhead + int64(unsafe.Sizeof(value))
	case int64:
		return nodeOverhead + int64(unsafe.Sizeof(value))
	case float64:
		return nodeOverhead + int64(unsafe.Sizeof(value))
	case string:
		// 16 bytes for string header on 64-bit system + actual string content
		return nodeOverhead + int64(16+len(value))
	case []int:
		// 24 bytes for slice header on 64-bit system + content
		return nodeOverhead + int64(24+len(value)*8)
	default:
		return nodeOverhead
	}
}
