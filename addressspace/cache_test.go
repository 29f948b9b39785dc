package addressspace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awcullen/opcua/ua"

	"github.com/amine-amaach/opcua-addressspace/model"
)

func TestNodeCacheMissThenHit(t *testing.T) {
	c := newNodeCache(time.Minute, 16)
	defer c.stop()

	id := ua.NodeIDNumeric{NamespaceIndex: 1, ID: 1}
	_, ok := c.get(id)
	assert.False(t, ok)

	node := &model.ObjectNode{Base: model.Base{NodeID: id}}
	c.put(id, node)

	got, ok := c.get(id)
	require.True(t, ok)
	assert.Same(t, node, got.(*model.ObjectNode))

	hits, misses := c.stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}

func TestNodeCacheExpiresAfterTTL(t *testing.T) {
	c := newNodeCache(5*time.Millisecond, 16)
	defer c.stop()

	id := ua.NodeIDNumeric{NamespaceIndex: 1, ID: 2}
	c.put(id, &model.ObjectNode{Base: model.Base{NodeID: id}})

	time.Sleep(30 * time.Millisecond)

	_, ok := c.get(id)
	assert.False(t, ok)
}
