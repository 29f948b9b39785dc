package opcuaclient

import "github.com/awcullen/opcua/ua"

// TimestampsToReturn selects which timestamps a Read should return. The
// core always passes Neither (§6) — it only cares about attribute values.
type TimestampsToReturn int32

const (
	TimestampsToReturnSource TimestampsToReturn = iota
	TimestampsToReturnServer
	TimestampsToReturnBoth
	TimestampsToReturnNeither
)

// ReadValueID names one attribute of one node to read.
type ReadValueID struct {
	NodeID       ua.NodeID
	AttributeID  uint32
	IndexRange   string
	DataEncoding ua.QualifiedName
}

// ReadResponse is the result of a Read service call: one DataValue per
// ReadValueID, in the same order they were requested.
type ReadResponse struct {
	Results []ua.DataValue
}
