package model

import (
	"fmt"

	"github.com/awcullen/opcua/ua"
)

// extractBase parses the seven base attribute values (in BaseAttributes
// order) into node class and the remaining base fields. NodeClass,
// BrowseName and DisplayName are asserted non-null per §4.7; Description
// degrades to the zero LocalizedText when absent.
func extractBase(values []ua.DataValue) (class NodeClass, browseName ua.QualifiedName, displayName, description ua.LocalizedText, writeMask, userWriteMask uint32, err error) {
	if len(values) < len(BaseAttributes) {
		err = fmt.Errorf("%w: expected %d base attribute values, got %d", ErrProtocolViolation, len(BaseAttributes), len(values))
		return
	}

	rawClass, ok := values[1].Value.(int32)
	if !ok {
		err = fmt.Errorf("%w: NodeClass attribute missing or not an int32", ErrProtocolViolation)
		return
	}
	class, ok = FromInt32(rawClass)
	if !ok {
		err = fmt.Errorf("%w: unrecognized NodeClass value %d", ErrProtocolViolation, rawClass)
		return
	}

	browseName, ok = values[2].Value.(ua.QualifiedName)
	if !ok {
		err = fmt.Errorf("%w: BrowseName attribute missing or wrong type", ErrProtocolViolation)
		return
	}

	displayName, ok = values[3].Value.(ua.LocalizedText)
	if !ok {
		err = fmt.Errorf("%w: DisplayName attribute missing or wrong type", ErrProtocolViolation)
		return
	}

	description, _ = values[4].Value.(ua.LocalizedText)
	writeMask, _ = values[5].Value.(uint32)
	userWriteMask, _ = values[6].Value.(uint32)
	return
}

func asUint8(dv ua.DataValue) uint8 {
	v, _ := dv.Value.(uint8)
	return v
}

func asBool(dv ua.DataValue) bool {
	v, _ := dv.Value.(bool)
	return v
}

func asInt32(dv ua.DataValue) int32 {
	v, _ := dv.Value.(int32)
	return v
}

func asUint32(dv ua.DataValue) uint32 {
	v, _ := dv.Value.(uint32)
	return v
}

func asNodeID(dv ua.DataValue) ua.NodeID {
	v, _ := dv.Value.(ua.NodeID)
	return v
}

func asLocalizedText(dv ua.DataValue) ua.LocalizedText {
	v, _ := dv.Value.(ua.LocalizedText)
	return v
}

func asArrayDimensions(dv ua.DataValue) []uint32 {
	v, _ := dv.Value.([]uint32)
	return v
}

func asMinimumSamplingInterval(dv ua.DataValue) *float64 {
	v, ok := dv.Value.(float64)
	if !ok {
		return nil
	}
	return &v
}
