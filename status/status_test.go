package status

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricMapCachesPointer(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	a := m.Get("x")
	b := m.Get("x")
	require.Same(t, a, b)
	assert.Equal(t, 1, m.Len())
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	for _, k := range []string{"c", "a", "d", "b"} {
		m.Get(k)
	}

	var keys []string
	m.Range(func(key string, _ *atomic.Int64) { keys = append(keys, key) })
	assert.Equal(t, []string{"a", "b", "c", "d"}, keys)
}

func TestMetricMapConcurrentRegister(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get("shared").Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(800), m.Get("shared").Load())
	assert.Equal(t, 1, m.Len())
}

func TestGaugeObserve(t *testing.T) {
	var g Gauge
	assert.Equal(t, 0.0, g.Last())
	assert.Equal(t, 0.0, g.Peak())

	g.Observe(2)
	g.Observe(1)
	assert.Equal(t, 1.0, g.Last())
	assert.Equal(t, 2.0, g.Peak())

	g.Observe(3.5)
	assert.Equal(t, 3.5, g.Peak())
}

func TestRegistryFieldsSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyTicks).Store(12)
	r.Ints.Get(KeyDebrisActive).Store(3)
	r.Gauges.Get(KeyStepMillis).Observe(0.25)

	fields := r.Fields()
	require.Len(t, fields, 4)
	assert.Equal(t, Field{Key: KeyDebrisActive, Value: "3"}, fields[0])
	assert.Equal(t, Field{Key: KeyTicks, Value: "12"}, fields[1])
	assert.Equal(t, Field{Key: KeyStepMillis, Value: "0.25"}, fields[2])
	assert.Equal(t, Field{Key: KeyStepMillis + PeakSuffix, Value: "0.25"}, fields[3])
}
