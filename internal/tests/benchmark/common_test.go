package benchmark

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/keyval-go/internal/storage"
	"github.com/yndnr/keyval-go/internal/storage/memory"
)

// KeyCounts defines the store sizes for benchmarking.
var KeyCounts = []int{1000, 10000, 100000}

// valueSize is the length of generated values in bytes.
const valueSize = 64

func newValue() string {
	id := ulid.Make().String()
	v := make([]byte, valueSize)
	for i := range v {
		v[i] = id[i%len(id)]
	}
	return string(v)
}

// prefillStore fills a store with count keys named key-0..key-N.
func prefillStore(count int) *memory.Store {
	store := memory.New()
	for i := 0; i < count; i++ {
		store.Insert(fmt.Sprintf("key-%d", i), newValue())
	}
	return store
}

// prefillEngine returns an engine holding count keys.
func prefillEngine(count int) *storage.Engine {
	e := storage.Fresh()
	for i := 0; i < count; i++ {
		e.Insert(fmt.Sprintf("key-%d", i), newValue())
	}
	return e
}

// reportMemory reports heap usage after a GC.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)

	b.ReportMetric(float64(m.HeapAlloc)/(1024*1024), prefix+"_heap_MB")
}
