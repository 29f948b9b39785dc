package model

import "github.com/awcullen/opcua/ua"

// Base carries the attributes common to every node class (§3), in the
// fixed order the attribute catalog reads them.
type Base struct {
	NodeID        ua.NodeID
	NodeClass     NodeClass
	BrowseName    ua.QualifiedName
	DisplayName   ua.LocalizedText
	Description   ua.LocalizedText
	WriteMask     uint32
	UserWriteMask uint32
}

// ID returns the node's identifier.
func (b Base) ID() ua.NodeID { return b.NodeID }

// Class returns the node's class. It must equal the concrete variant's
// tag — callers relying on UaNode should never see these disagree.
func (b Base) Class() NodeClass { return b.NodeClass }

// UaNode is the sum type over the eight node classes. Operations that
// accept "any node" type-switch on the concrete variant; operations that
// require a specific variant (e.g. GetObject) take that variant's
// concrete type directly.
type UaNode interface {
	ID() ua.NodeID
	Class() NodeClass
}

// ObjectNode is an Object instance node.
type ObjectNode struct {
	Base
	EventNotifier uint8
}

// VariableNode is a Variable instance node.
type VariableNode struct {
	Base
	Value                   ua.DataValue
	DataType                ua.NodeID
	ValueRank               int32
	ArrayDimensions         []uint32
	AccessLevel             uint8
	UserAccessLevel         uint8
	MinimumSamplingInterval *float64
	Historizing             bool
}

// MethodNode is a Method node.
type MethodNode struct {
	Base
	Executable     bool
	UserExecutable bool
}

// ViewNode is a View node.
type ViewNode struct {
	Base
	ContainsNoLoops bool
	EventNotifier   uint8
}

// ObjectTypeNode defines an Object type.
type ObjectTypeNode struct {
	Base
	IsAbstract bool
}

// VariableTypeNode defines a Variable type.
type VariableTypeNode struct {
	Base
	Value           ua.DataValue
	DataType        ua.NodeID
	ValueRank       int32
	ArrayDimensions []uint32
	IsAbstract      bool
}

// DataTypeNode defines a DataType.
type DataTypeNode struct {
	Base
	IsAbstract bool
}

// ReferenceTypeNode defines a ReferenceType.
type ReferenceTypeNode struct {
	Base
	IsAbstract  bool
	Symmetric   bool
	InverseName ua.LocalizedText
}
