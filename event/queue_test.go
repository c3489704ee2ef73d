package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/microcosm/parameter"
)

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	assert.Nil(t, q.Consume())

	q.Push(GameEvent{Type: EventOrbiterHit, Tick: 1})
	q.Push(GameEvent{Type: EventOrbiterDestroyed, Tick: 1})
	q.Push(GameEvent{Type: EventAttractorStrike, Tick: 2})
	assert.Equal(t, 3, q.Len())

	events := q.Consume()
	require.Len(t, events, 3)
	assert.Equal(t, EventOrbiterHit, events[0].Type)
	assert.Equal(t, EventOrbiterDestroyed, events[1].Type)
	assert.Equal(t, EventAttractorStrike, events[2].Type)
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Consume())
}

func TestEventQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventDebrisSpawned, Tick: int64(i)})
	}

	assert.Equal(t, parameter.EventQueueSize, q.Len())
	assert.Equal(t, uint64(10), q.Dropped())

	events := q.Consume()
	require.Len(t, events, parameter.EventQueueSize)
	assert.Equal(t, int64(10), events[0].Tick)
	assert.Equal(t, int64(total-1), events[len(events)-1].Tick)
}

func TestEventQueueConcurrentProducerConsumer(t *testing.T) {
	q := NewEventQueue()
	const n = 1000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			q.Push(GameEvent{Type: EventOrbiterHit, Tick: int64(i)})
		}
	}()

	received := 0
	last := int64(-1)
	for received < n {
		for _, ev := range q.Consume() {
			require.Greater(t, ev.Tick, last)
			last = ev.Tick
			received++
		}
	}
	wg.Wait()
	assert.Equal(t, n, received)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "orbiter_destroyed", EventOrbiterDestroyed.String())
	assert.Equal(t, "unknown", EventType(99).String())
}
