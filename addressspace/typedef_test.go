package addressspace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awcullen/opcua/ua"

	"github.com/amine-amaach/opcua-addressspace/opcuaclient"
)

func TestReadTypeDefinitionFound(t *testing.T) {
	client := newMockClient()
	objID := ua.NodeIDNumeric{NamespaceIndex: 1, ID: 1}
	typeDef := ua.NodeIDNumeric{NamespaceIndex: 0, ID: 61}
	client.addObject(objID, "Obj", "Obj")
	client.addReference(objID, opcuaclient.HasTypeDefinition, ua.NewExpandedNodeID(typeDef), "FolderType", 8, ua.NilExpandedNodeID)

	id, found, err := readTypeDefinition(context.Background(), client, objID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, typeDef, id)
}

func TestReadTypeDefinitionAbsent(t *testing.T) {
	client := newMockClient()
	objID := ua.NodeIDNumeric{NamespaceIndex: 1, ID: 2}
	client.addObject(objID, "Obj", "Obj")

	id, found, err := readTypeDefinition(context.Background(), client, objID)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, id)
}

func TestReadTypeDefinitionNonGoodStatusDegrades(t *testing.T) {
	client := newMockClient()
	client.browseStatus = ua.StatusCode(0x80000000)
	objID := ua.NodeIDNumeric{NamespaceIndex: 1, ID: 3}

	id, found, err := readTypeDefinition(context.Background(), client, objID)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, id)
}

func TestReadTypeDefinitionIgnoresOtherReferenceTypes(t *testing.T) {
	client := newMockClient()
	objID := ua.NodeIDNumeric{NamespaceIndex: 1, ID: 4}
	other := ua.NodeIDNumeric{NamespaceIndex: 1, ID: 5}
	client.addObject(objID, "Obj", "Obj")
	client.addReference(objID, opcuaclient.HierarchicalReferences, ua.NewExpandedNodeID(other), "Other", 1, ua.NilExpandedNodeID)

	id, found, err := readTypeDefinition(context.Background(), client, objID)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, id)
}
