package model

import (
	"testing"

	"github.com/awcullen/opcua/ua"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseValues(class int32, browseName, displayName string) []ua.DataValue {
	return []ua.DataValue{
		{Value: ua.NodeIDNumeric{NamespaceIndex: 1, ID: 42}},
		{Value: class},
		{Value: ua.QualifiedName{Name: browseName}},
		{Value: ua.LocalizedText{Text: displayName}},
		{Value: ua.LocalizedText{}},
		{Value: uint32(0)},
		{Value: uint32(0)},
	}
}

func TestExtractBaseHappyPath(t *testing.T) {
	values := baseValues(1, "Foo", "Foo")
	class, browseName, displayName, description, writeMask, userWriteMask, err := extractBase(values)
	require.NoError(t, err)
	assert.Equal(t, NodeClassObject, class)
	assert.Equal(t, "Foo", browseName.Name)
	assert.Equal(t, "Foo", displayName.Text)
	assert.Equal(t, ua.LocalizedText{}, description)
	assert.Zero(t, writeMask)
	assert.Zero(t, userWriteMask)
}

func TestExtractBaseTooFewValues(t *testing.T) {
	_, _, _, _, _, _, err := extractBase(baseValues(1, "Foo", "Foo")[:3])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProtocolViolation)
}

func TestExtractBaseMissingNodeClass(t *testing.T) {
	values := baseValues(1, "Foo", "Foo")
	values[1] = ua.DataValue{}
	_, _, _, _, _, _, err := extractBase(values)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProtocolViolation)
}

func TestExtractBaseUnrecognizedNodeClass(t *testing.T) {
	values := baseValues(255, "Foo", "Foo")
	_, _, _, _, _, _, err := extractBase(values)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProtocolViolation)
}

func TestExtractBaseMissingBrowseName(t *testing.T) {
	values := baseValues(1, "Foo", "Foo")
	values[2] = ua.DataValue{}
	_, _, _, _, _, _, err := extractBase(values)
	require.Error(t, err)
}

func TestExtractBaseMissingDescriptionDegradesToZero(t *testing.T) {
	values := baseValues(1, "Foo", "Foo")
	values[4] = ua.DataValue{}
	_, _, _, description, _, _, err := extractBase(values)
	require.NoError(t, err)
	assert.Equal(t, ua.LocalizedText{}, description)
}

func TestAsHelpers(t *testing.T) {
	assert.Equal(t, uint8(3), asUint8(ua.DataValue{Value: uint8(3)}))
	assert.Equal(t, uint8(0), asUint8(ua.DataValue{}))
	assert.True(t, asBool(ua.DataValue{Value: true}))
	assert.Equal(t, int32(-1), asInt32(ua.DataValue{Value: int32(-1)}))
	assert.Equal(t, uint32(7), asUint32(ua.DataValue{Value: uint32(7)}))

	nodeID := ua.NodeIDNumeric{NamespaceIndex: 0, ID: 58}
	assert.Equal(t, nodeID, asNodeID(ua.DataValue{Value: nodeID}))

	lt := ua.LocalizedText{Text: "hi"}
	assert.Equal(t, lt, asLocalizedText(ua.DataValue{Value: lt}))

	dims := []uint32{1, 2, 3}
	assert.Equal(t, dims, asArrayDimensions(ua.DataValue{Value: dims}))

	assert.Nil(t, asMinimumSamplingInterval(ua.DataValue{}))
	v := asMinimumSamplingInterval(ua.DataValue{Value: float64(100)})
	require.NotNil(t, v)
	assert.Equal(t, float64(100), *v)
}
