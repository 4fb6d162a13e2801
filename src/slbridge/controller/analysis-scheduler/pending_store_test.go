package analysisscheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uber/slcore-bridge/src/slbridge/factory"
)

func TestPendingStore(t *testing.T) {
	var p pendingStore
	cancelled := map[string]int{}
	entry := func(name string) pendingAnalysis {
		return pendingAnalysis{id: factory.UUID(), cancelFunc: func() { cancelled[name]++ }}
	}

	first := entry("first")
	assert.False(t, p.set("a.cpp", first))
	second := entry("second")
	assert.True(t, p.set("a.cpp", second))
	assert.Equal(t, 1, cancelled["first"])
	assert.Equal(t, 1, p.len())

	p.finish("a.cpp", first.id)
	assert.Equal(t, 1, p.len(), "a superseded analysis does not remove its successor")

	assert.True(t, p.cancel(second.id))
	assert.Equal(t, 1, cancelled["second"])
	assert.False(t, p.cancel(second.id))
	assert.Equal(t, 0, p.len())
}

func TestPendingStoreCleanSession(t *testing.T) {
	var p pendingStore
	session := factory.UUID()
	cancelled := 0

	p.set("a.cpp", pendingAnalysis{id: factory.UUID(), session: session, cancelFunc: func() { cancelled++ }})
	p.set("b.cpp", pendingAnalysis{id: factory.UUID(), session: session, cancelFunc: func() { cancelled++ }})
	p.set("c.cpp", pendingAnalysis{id: factory.UUID(), session: factory.UUID(), cancelFunc: func() { cancelled++ }})

	assert.Equal(t, 2, p.cleanSession(session))
	assert.Equal(t, 2, cancelled)
	assert.Equal(t, 1, p.len())

	p.cancelAll()
	assert.Equal(t, 3, cancelled)
	assert.Equal(t, 0, p.len())
}
