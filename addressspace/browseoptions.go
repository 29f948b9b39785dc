package addressspace

import (
	"github.com/awcullen/opcua/ua"

	"github.com/amine-amaach/opcua-addressspace/model"
	"github.com/amine-amaach/opcua-addressspace/opcuaclient"
)

// BrowseOptions controls how Browse walks references from a starting
// node (§4.5, §8). Values are immutable: every With* method returns a
// modified copy, never mutating the receiver. This is a deliberate
// correction of the Java original, whose builder only copied three of
// the four fields when deriving a new instance and silently dropped the
// browse direction — here copy() always copies all four.
type BrowseOptions struct {
	ReferenceTypeID ua.NodeID
	BrowseDirection opcuaclient.BrowseDirection
	IncludeSubtypes bool
	NodeClassMask   model.NodeClass
}

// DefaultBrowseOptions is the façade's default: forward hierarchical
// references (and their subtypes), matching any node class.
func DefaultBrowseOptions() BrowseOptions {
	return BrowseOptions{
		ReferenceTypeID: opcuaclient.HierarchicalReferences,
		BrowseDirection: opcuaclient.BrowseDirectionForward,
		IncludeSubtypes: true,
		NodeClassMask:   model.NodeClassMaskAll,
	}
}

// copy returns a field-for-field duplicate of o.
func (o BrowseOptions) copy() BrowseOptions {
	return BrowseOptions{
		ReferenceTypeID: o.ReferenceTypeID,
		BrowseDirection: o.BrowseDirection,
		IncludeSubtypes: o.IncludeSubtypes,
		NodeClassMask:   o.NodeClassMask,
	}
}

// WithReferenceTypeID returns a copy of o that browses referenceTypeID
// instead.
func (o BrowseOptions) WithReferenceTypeID(referenceTypeID ua.NodeID) BrowseOptions {
	c := o.copy()
	c.ReferenceTypeID = referenceTypeID
	return c
}

// WithBrowseDirection returns a copy of o that browses direction instead.
func (o BrowseOptions) WithBrowseDirection(direction opcuaclient.BrowseDirection) BrowseOptions {
	c := o.copy()
	c.BrowseDirection = direction
	return c
}

// WithIncludeSubtypes returns a copy of o with IncludeSubtypes set.
func (o BrowseOptions) WithIncludeSubtypes(includeSubtypes bool) BrowseOptions {
	c := o.copy()
	c.IncludeSubtypes = includeSubtypes
	return c
}

// WithNodeClassMask returns a copy of o restricted to mask.
func (o BrowseOptions) WithNodeClassMask(mask model.NodeClass) BrowseOptions {
	c := o.copy()
	c.NodeClassMask = mask
	return c
}

// WithNodeClasses returns a copy of o restricted to the union of
// classes, a convenience over WithNodeClassMask for callers that think
// in terms of a set of classes rather than a raw bitmask.
func (o BrowseOptions) WithNodeClasses(classes ...model.NodeClass) BrowseOptions {
	var mask model.NodeClass
	for _, c := range classes {
		mask |= c
	}
	return o.WithNodeClassMask(mask)
}
