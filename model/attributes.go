package model

import "github.com/awcullen/opcua/ua"

// BaseAttributes is the ordered list of attribute ids read for every node
// class, in the order the base UaNode fields are defined in (§3).
var BaseAttributes = []uint32{
	ua.AttributeIDNodeID,
	ua.AttributeIDNodeClass,
	ua.AttributeIDBrowseName,
	ua.AttributeIDDisplayName,
	ua.AttributeIDDescription,
	ua.AttributeIDWriteMask,
	ua.AttributeIDUserWriteMask,
}

// classAttributes holds, per NodeClass, the full ordered attribute list
// with BaseAttributes as a fixed prefix followed by the class-specific
// attributes in the order §3 lists their fields.
var classAttributes = map[NodeClass][]uint32{
	NodeClassObject: append(append([]uint32{}, BaseAttributes...),
		ua.AttributeIDEventNotifier,
	),
	NodeClassVariable: append(append([]uint32{}, BaseAttributes...),
		ua.AttributeIDValue,
		ua.AttributeIDDataType,
		ua.AttributeIDValueRank,
		ua.AttributeIDArrayDimensions,
		ua.AttributeIDAccessLevel,
		ua.AttributeIDUserAccessLevel,
		ua.AttributeIDMinimumSamplingInterval,
		ua.AttributeIDHistorizing,
	),
	NodeClassMethod: append(append([]uint32{}, BaseAttributes...),
		ua.AttributeIDExecutable,
		ua.AttributeIDUserExecutable,
	),
	NodeClassView: append(append([]uint32{}, BaseAttributes...),
		ua.AttributeIDContainsNoLoops,
		ua.AttributeIDEventNotifier,
	),
	NodeClassObjectType: append(append([]uint32{}, BaseAttributes...),
		ua.AttributeIDIsAbstract,
	),
	NodeClassDataType: append(append([]uint32{}, BaseAttributes...),
		ua.AttributeIDIsAbstract,
	),
	NodeClassVariableType: append(append([]uint32{}, BaseAttributes...),
		ua.AttributeIDValue,
		ua.AttributeIDDataType,
		ua.AttributeIDValueRank,
		ua.AttributeIDArrayDimensions,
		ua.AttributeIDIsAbstract,
	),
	NodeClassReferenceType: append(append([]uint32{}, BaseAttributes...),
		ua.AttributeIDIsAbstract,
		ua.AttributeIDSymmetric,
		ua.AttributeIDInverseName,
	),
}

// Attributes returns the full, ordered attribute id list for class.
func Attributes(class NodeClass) []uint32 {
	return classAttributes[class]
}

// RemainingAttributes returns Attributes(class) with the BaseAttributes
// prefix stripped, preserving relative order. This is the set read on a
// cache miss once the NodeClass is already known from the base-attribute
// read.
func RemainingAttributes(class NodeClass) []uint32 {
	full := classAttributes[class]
	if len(full) <= len(BaseAttributes) {
		return nil
	}
	return full[len(BaseAttributes):]
}
