package parallel

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForRange(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	ForRange(n, func(start, end int) {
		atomic.AddInt64(&counter, int64(end-start))
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestForRangeCoversDisjointRanges(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}
	n := 103

	var mu sync.Mutex
	seen := make([]int, n)
	calls := 0

	ForRange(n, func(start, end int) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		for i := start; i < end; i++ {
			seen[i]++
		}
	}, cfg)

	for i, c := range seen {
		if c != 1 {
			t.Errorf("index %d visited %d times", i, c)
		}
	}
	assert.Equal(t, cfg.Splits(n), calls)
	assert.Greater(t, calls, 1)
}

func TestForRangeEmpty(t *testing.T) {
	called := false
	ForRange(0, func(_, _ int) { called = true }, DefaultConfig())
	assert.False(t, called)
}

func TestForRange_Sequential(t *testing.T) {
	cfg := Sequential()

	calls := 0
	ForRange(100, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 100, end)
	}, cfg)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, cfg.Splits(100))
}

func TestForRange_SmallChunk(t *testing.T) {
	// Test that small work units fall back to sequential.
	cfg := DefaultConfig()
	n := cfg.MinChunkSize - 1

	calls := 0
	ForRange(n, func(_, _ int) {
		calls++
	}, cfg)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, cfg.Splits(n))
}

func TestSplits(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 10}

	assert.Equal(t, 1, cfg.Splits(9))
	assert.Equal(t, 1, cfg.Splits(10))
	assert.Equal(t, 2, cfg.Splits(20))
	assert.Equal(t, 4, cfg.Splits(1000))

	cfg.Enabled = false
	assert.Equal(t, 1, cfg.Splits(1000))
}

func BenchmarkForRange(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	sum := func(start, end int) {
		var s int64
		for i := start; i < end; i++ {
			s += int64(i)
		}
		_ = s
	}

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ForRange(n, sum, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ForRange(n, sum, Sequential())
		}
	})
}
