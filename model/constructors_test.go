package model

import (
	"testing"

	"github.com/awcullen/opcua/ua"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodeID() ua.NodeID { return ua.NodeIDNumeric{NamespaceIndex: 2, ID: 7} }

func TestNewObjectNodeDefaultConstructor(t *testing.T) {
	attrs := append(baseValues(1, "Obj", "Obj"), ua.DataValue{Value: uint8(5)})
	node, err := NewObjectNode(nodeID(), attrs, nil)
	require.NoError(t, err)
	obj, ok := node.(*ObjectNode)
	require.True(t, ok)
	assert.Equal(t, uint8(5), obj.EventNotifier)
	assert.Equal(t, NodeClassObject, obj.Class())
	assert.Equal(t, nodeID(), obj.ID())
}

func TestNewObjectNodeCustomConstructor(t *testing.T) {
	attrs := append(baseValues(1, "Obj", "Obj"), ua.DataValue{Value: uint8(5)})
	called := false
	ctor := func(base Base, eventNotifier uint8) (UaNode, error) {
		called = true
		return &ObjectNode{Base: base, EventNotifier: eventNotifier + 1}, nil
	}
	node, err := NewObjectNode(nodeID(), attrs, ctor)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, uint8(6), node.(*ObjectNode).EventNotifier)
}

func TestNewObjectNodeWrongClassRejected(t *testing.T) {
	attrs := append(baseValues(2, "Obj", "Obj"), ua.DataValue{Value: uint8(5)})
	_, err := NewObjectNode(nodeID(), attrs, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProtocolViolation)
}

func TestNewObjectNodeMissingEventNotifier(t *testing.T) {
	attrs := baseValues(1, "Obj", "Obj")
	_, err := NewObjectNode(nodeID(), attrs, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProtocolViolation)
}

func TestNewVariableNodeDefaultConstructor(t *testing.T) {
	attrs := append(baseValues(2, "Var", "Var"),
		ua.DataValue{Value: 3.14},
		ua.DataValue{Value: ua.NodeIDNumeric{NamespaceIndex: 0, ID: 11}},
		ua.DataValue{Value: int32(-1)},
		ua.DataValue{},
		ua.DataValue{Value: uint8(1)},
		ua.DataValue{Value: uint8(1)},
		ua.DataValue{Value: float64(100)},
		ua.DataValue{Value: false},
	)
	node, err := NewVariableNode(nodeID(), attrs, nil)
	require.NoError(t, err)
	v, ok := node.(*VariableNode)
	require.True(t, ok)
	assert.Equal(t, 3.14, v.Value.Value)
	assert.Equal(t, int32(-1), v.ValueRank)
	require.NotNil(t, v.MinimumSamplingInterval)
	assert.Equal(t, float64(100), *v.MinimumSamplingInterval)
}

func TestNewVariableNodeTooFewRemainingAttributes(t *testing.T) {
	attrs := append(baseValues(2, "Var", "Var"), ua.DataValue{Value: 3.14})
	_, err := NewVariableNode(nodeID(), attrs, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProtocolViolation)
}

func TestNewMethodNode(t *testing.T) {
	attrs := append(baseValues(4, "Meth", "Meth"), ua.DataValue{Value: true}, ua.DataValue{Value: false})
	node, err := NewMethodNode(nodeID(), attrs)
	require.NoError(t, err)
	assert.True(t, node.Executable)
	assert.False(t, node.UserExecutable)
}

func TestNewViewNode(t *testing.T) {
	attrs := append(baseValues(128, "View", "View"), ua.DataValue{Value: true}, ua.DataValue{Value: uint8(2)})
	node, err := NewViewNode(nodeID(), attrs)
	require.NoError(t, err)
	assert.True(t, node.ContainsNoLoops)
	assert.Equal(t, uint8(2), node.EventNotifier)
}

func TestNewObjectTypeNode(t *testing.T) {
	attrs := append(baseValues(8, "OT", "OT"), ua.DataValue{Value: true})
	node, err := NewObjectTypeNode(nodeID(), attrs)
	require.NoError(t, err)
	assert.True(t, node.IsAbstract)
}

func TestNewDataTypeNode(t *testing.T) {
	attrs := append(baseValues(64, "DT", "DT"), ua.DataValue{Value: false})
	node, err := NewDataTypeNode(nodeID(), attrs)
	require.NoError(t, err)
	assert.False(t, node.IsAbstract)
}

func TestNewVariableTypeNode(t *testing.T) {
	attrs := append(baseValues(16, "VT", "VT"),
		ua.DataValue{Value: 1.0},
		ua.DataValue{Value: ua.NodeIDNumeric{NamespaceIndex: 0, ID: 11}},
		ua.DataValue{Value: int32(-1)},
		ua.DataValue{},
		ua.DataValue{Value: true},
	)
	node, err := NewVariableTypeNode(nodeID(), attrs)
	require.NoError(t, err)
	assert.True(t, node.IsAbstract)
}

func TestNewReferenceTypeNode(t *testing.T) {
	attrs := append(baseValues(32, "RT", "RT"),
		ua.DataValue{Value: false},
		ua.DataValue{Value: true},
		ua.DataValue{Value: ua.LocalizedText{Text: "Inverse"}},
	)
	node, err := NewReferenceTypeNode(nodeID(), attrs)
	require.NoError(t, err)
	assert.True(t, node.Symmetric)
	assert.Equal(t, "Inverse", node.InverseName.Text)
}
