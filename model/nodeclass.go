// Package model defines the typed node records and attribute catalog that
// make up the OPC UA information model as seen by this address space
// façade: the eight NodeClass variants, their mandated attributes, and the
// default constructors used when no type-specific constructor is
// registered.
package model

// NodeClass is the kind of a node, encoded as a power-of-two bitmask so
// browse filters can OR several classes together.
type NodeClass uint32

const (
	NodeClassObject        NodeClass = 1 << 0
	NodeClassVariable      NodeClass = 1 << 1
	NodeClassMethod        NodeClass = 1 << 2
	NodeClassObjectType    NodeClass = 1 << 3
	NodeClassVariableType  NodeClass = 1 << 4
	NodeClassReferenceType NodeClass = 1 << 5
	NodeClassDataType      NodeClass = 1 << 6
	NodeClassView          NodeClass = 1 << 7
)

// NodeClassMaskAll matches every NodeClass, the BrowseOptions default.
const NodeClassMaskAll NodeClass = 0xFF

// FromInt32 maps the raw NodeClass attribute value (as read off the wire)
// to a NodeClass constant. OPC UA encodes NodeClass as an Int32 enum whose
// values already line up with the bitmask, not a 0..7 ordinal.
func FromInt32(v int32) (NodeClass, bool) {
	switch NodeClass(v) {
	case NodeClassObject, NodeClassVariable, NodeClassMethod, NodeClassObjectType,
		NodeClassVariableType, NodeClassReferenceType, NodeClassDataType, NodeClassView:
		return NodeClass(v), true
	default:
		return 0, false
	}
}

func (c NodeClass) String() string {
	switch c {
	case NodeClassObject:
		return "Object"
	case NodeClassVariable:
		return "Variable"
	case NodeClassMethod:
		return "Method"
	case NodeClassObjectType:
		return "ObjectType"
	case NodeClassVariableType:
		return "VariableType"
	case NodeClassReferenceType:
		return "ReferenceType"
	case NodeClassDataType:
		return "DataType"
	case NodeClassView:
		return "View"
	default:
		return "Unknown"
	}
}
