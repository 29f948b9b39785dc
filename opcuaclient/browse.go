package opcuaclient

import "github.com/awcullen/opcua/ua"

// BrowseDirection selects which end of a reference the Browse service
// follows.
type BrowseDirection int32

const (
	BrowseDirectionForward BrowseDirection = iota
	BrowseDirectionInverse
	BrowseDirectionBoth
)

// BrowseResultMask controls which fields of ReferenceDescription the
// server populates. This façade always asks for All.
type BrowseResultMask uint32

const BrowseResultMaskAll BrowseResultMask = 0x3F

// BrowseDescription is the server-facing request for one Browse
// invocation (§4.5).
type BrowseDescription struct {
	NodeID          ua.NodeID
	Direction       BrowseDirection
	ReferenceTypeID ua.NodeID
	IncludeSubtypes bool
	NodeClassMask   uint32
	ResultMask      BrowseResultMask
}

// ReferenceDescription is one edge returned by Browse.
type ReferenceDescription struct {
	ReferenceTypeID ua.NodeID
	IsForward       bool
	NodeID          ua.ExpandedNodeID
	BrowseName      ua.QualifiedName
	DisplayName     ua.LocalizedText
	NodeClass       int32 // raw NodeClass attribute value; see model.FromInt32
	TypeDefinition  ua.ExpandedNodeID
}

// BrowseResult is the outcome of browsing from a single node. This core
// treats continuation points as already handled by the Client (§4.5):
// References is the full concatenation of every page, in server-return
// order.
type BrowseResult struct {
	StatusCode ua.StatusCode
	References []ReferenceDescription
}
