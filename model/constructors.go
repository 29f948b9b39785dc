package model

import (
	"fmt"

	"github.com/awcullen/opcua/ua"
)

// ObjectNodeConstructor builds an Object-class node, given its base
// attributes and the Object-specific EventNotifier. Registries
// (opcuaclient.ObjectTypeManager) supply one of these per type
// definition; DefaultObjectConstructor is used when none is registered.
type ObjectNodeConstructor func(base Base, eventNotifier uint8) (UaNode, error)

// VariableNodeConstructor builds a Variable-class node from its base and
// variable-specific attributes.
type VariableNodeConstructor func(base Base, value ua.DataValue, dataType ua.NodeID, valueRank int32, arrayDimensions []uint32, accessLevel, userAccessLevel uint8, minimumSamplingInterval *float64, historizing bool) (UaNode, error)

// DefaultObjectConstructor builds a plain *ObjectNode.
func DefaultObjectConstructor(base Base, eventNotifier uint8) (UaNode, error) {
	return &ObjectNode{Base: base, EventNotifier: eventNotifier}, nil
}

// DefaultVariableConstructor builds a plain *VariableNode.
func DefaultVariableConstructor(base Base, value ua.DataValue, dataType ua.NodeID, valueRank int32, arrayDimensions []uint32, accessLevel, userAccessLevel uint8, minimumSamplingInterval *float64, historizing bool) (UaNode, error) {
	return &VariableNode{
		Base:                    base,
		Value:                   value,
		DataType:                dataType,
		ValueRank:               valueRank,
		ArrayDimensions:         arrayDimensions,
		AccessLevel:             accessLevel,
		UserAccessLevel:         userAccessLevel,
		MinimumSamplingInterval: minimumSamplingInterval,
		Historizing:             historizing,
	}, nil
}

func checkClass(base Base, want NodeClass) error {
	if base.NodeClass != want {
		return fmt.Errorf("%w: expected NodeClass %s, got %s", ErrProtocolViolation, want, base.NodeClass)
	}
	return nil
}

// NewObjectNode builds an Object node from the full (base + remaining)
// attribute list, invoking ctor (or DefaultObjectConstructor) to produce
// the concrete value.
func NewObjectNode(nodeID ua.NodeID, attrs []ua.DataValue, ctor ObjectNodeConstructor) (UaNode, error) {
	class, browseName, displayName, description, writeMask, userWriteMask, err := extractBase(attrs)
	if err != nil {
		return nil, err
	}
	base := Base{nodeID, class, browseName, displayName, description, writeMask, userWriteMask}
	if err := checkClass(base, NodeClassObject); err != nil {
		return nil, err
	}
	if len(attrs) <= len(BaseAttributes) {
		return nil, fmt.Errorf("%w: missing Object attributes", ErrProtocolViolation)
	}
	eventNotifier := asUint8(attrs[len(BaseAttributes)])
	if ctor == nil {
		ctor = DefaultObjectConstructor
	}
	return ctor(base, eventNotifier)
}

// NewVariableNode builds a Variable node from the full attribute list.
func NewVariableNode(nodeID ua.NodeID, attrs []ua.DataValue, ctor VariableNodeConstructor) (UaNode, error) {
	class, browseName, displayName, description, writeMask, userWriteMask, err := extractBase(attrs)
	if err != nil {
		return nil, err
	}
	base := Base{nodeID, class, browseName, displayName, description, writeMask, userWriteMask}
	if err := checkClass(base, NodeClassVariable); err != nil {
		return nil, err
	}
	rest := attrs[len(BaseAttributes):]
	if len(rest) < 8 {
		return nil, fmt.Errorf("%w: missing Variable attributes", ErrProtocolViolation)
	}
	if ctor == nil {
		ctor = DefaultVariableConstructor
	}
	return ctor(
		base,
		rest[0],
		asNodeID(rest[1]),
		asInt32(rest[2]),
		asArrayDimensions(rest[3]),
		asUint8(rest[4]),
		asUint8(rest[5]),
		asMinimumSamplingInterval(rest[6]),
		asBool(rest[7]),
	)
}

// NewMethodNode builds a Method node from the full attribute list.
func NewMethodNode(nodeID ua.NodeID, attrs []ua.DataValue) (*MethodNode, error) {
	class, browseName, displayName, description, writeMask, userWriteMask, err := extractBase(attrs)
	if err != nil {
		return nil, err
	}
	base := Base{nodeID, class, browseName, displayName, description, writeMask, userWriteMask}
	if err := checkClass(base, NodeClassMethod); err != nil {
		return nil, err
	}
	rest := attrs[len(BaseAttributes):]
	if len(rest) < 2 {
		return nil, fmt.Errorf("%w: missing Method attributes", ErrProtocolViolation)
	}
	return &MethodNode{Base: base, Executable: asBool(rest[0]), UserExecutable: asBool(rest[1])}, nil
}

// NewViewNode builds a View node from the full attribute list.
func NewViewNode(nodeID ua.NodeID, attrs []ua.DataValue) (*ViewNode, error) {
	class, browseName, displayName, description, writeMask, userWriteMask, err := extractBase(attrs)
	if err != nil {
		return nil, err
	}
	base := Base{nodeID, class, browseName, displayName, description, writeMask, userWriteMask}
	if err := checkClass(base, NodeClassView); err != nil {
		return nil, err
	}
	rest := attrs[len(BaseAttributes):]
	if len(rest) < 2 {
		return nil, fmt.Errorf("%w: missing View attributes", ErrProtocolViolation)
	}
	return &ViewNode{Base: base, ContainsNoLoops: asBool(rest[0]), EventNotifier: asUint8(rest[1])}, nil
}

// NewObjectTypeNode builds an ObjectType node from the full attribute list.
func NewObjectTypeNode(nodeID ua.NodeID, attrs []ua.DataValue) (*ObjectTypeNode, error) {
	class, browseName, displayName, description, writeMask, userWriteMask, err := extractBase(attrs)
	if err != nil {
		return nil, err
	}
	base := Base{nodeID, class, browseName, displayName, description, writeMask, userWriteMask}
	if err := checkClass(base, NodeClassObjectType); err != nil {
		return nil, err
	}
	rest := attrs[len(BaseAttributes):]
	if len(rest) < 1 {
		return nil, fmt.Errorf("%w: missing ObjectType attributes", ErrProtocolViolation)
	}
	return &ObjectTypeNode{Base: base, IsAbstract: asBool(rest[0])}, nil
}

// NewDataTypeNode builds a DataType node from the full attribute list.
func NewDataTypeNode(nodeID ua.NodeID, attrs []ua.DataValue) (*DataTypeNode, error) {
	class, browseName, displayName, description, writeMask, userWriteMask, err := extractBase(attrs)
	if err != nil {
		return nil, err
	}
	base := Base{nodeID, class, browseName, displayName, description, writeMask, userWriteMask}
	if err := checkClass(base, NodeClassDataType); err != nil {
		return nil, err
	}
	rest := attrs[len(BaseAttributes):]
	if len(rest) < 1 {
		return nil, fmt.Errorf("%w: missing DataType attributes", ErrProtocolViolation)
	}
	return &DataTypeNode{Base: base, IsAbstract: asBool(rest[0])}, nil
}

// NewVariableTypeNode builds a VariableType node from the full attribute list.
func NewVariableTypeNode(nodeID ua.NodeID, attrs []ua.DataValue) (*VariableTypeNode, error) {
	class, browseName, displayName, description, writeMask, userWriteMask, err := extractBase(attrs)
	if err != nil {
		return nil, err
	}
	base := Base{nodeID, class, browseName, displayName, description, writeMask, userWriteMask}
	if err := checkClass(base, NodeClassVariableType); err != nil {
		return nil, err
	}
	rest := attrs[len(BaseAttributes):]
	if len(rest) < 5 {
		return nil, fmt.Errorf("%w: missing VariableType attributes", ErrProtocolViolation)
	}
	return &VariableTypeNode{
		Base:            base,
		Value:           rest[0],
		DataType:        asNodeID(rest[1]),
		ValueRank:       asInt32(rest[2]),
		ArrayDimensions: asArrayDimensions(rest[3]),
		IsAbstract:      asBool(rest[4]),
	}, nil
}

// NewReferenceTypeNode builds a ReferenceType node from the full attribute list.
func NewReferenceTypeNode(nodeID ua.NodeID, attrs []ua.DataValue) (*ReferenceTypeNode, error) {
	class, browseName, displayName, description, writeMask, userWriteMask, err := extractBase(attrs)
	if err != nil {
		return nil, err
	}
	base := Base{nodeID, class, browseName, displayName, description, writeMask, userWriteMask}
	if err := checkClass(base, NodeClassReferenceType); err != nil {
		return nil, err
	}
	rest := attrs[len(BaseAttributes):]
	if len(rest) < 3 {
		return nil, fmt.Errorf("%w: missing ReferenceType attributes", ErrProtocolViolation)
	}
	return &ReferenceTypeNode{
		Base:        base,
		IsAbstract:  asBool(rest[0]),
		Symmetric:   asBool(rest[1]),
		InverseName: asLocalizedText(rest[2]),
	}, nil
}
