// Package opcuaclient describes the capability this address space façade
// consumes from an OPC UA session (§6), and nothing more: a Read and a
// Browse service call, a namespace table, and the two extension
// registries the resolver consults during construction. The secure
// channel, the session, and the wire encoding of these services are all
// out of scope (§1) — a real implementation plugs them in behind this
// interface.
package opcuaclient

import "context"

// Client is the external capability the resolver is built on.
type Client interface {
	// Read reads one or more node attributes. The core always passes
	// maxAge 0.0 and timestamps Neither (§6).
	Read(ctx context.Context, maxAge float64, timestamps TimestampsToReturn, ids []ReadValueID) (ReadResponse, error)

	// Browse executes one Browse service call. Continuation points, if
	// any, are handled transparently by the implementation — the
	// returned BrowseResult.References is the full concatenation of
	// every page, in server-return order (§4.5).
	Browse(ctx context.Context, description BrowseDescription) (BrowseResult, error)

	// NamespaceTable returns the session's shared namespace table.
	NamespaceTable() NamespaceTable

	// ObjectTypeManager returns the registry of Object subtype
	// constructors.
	ObjectTypeManager() ObjectTypeManager

	// VariableTypeManager returns the registry of Variable subtype
	// constructors.
	VariableTypeManager() VariableTypeManager
}
