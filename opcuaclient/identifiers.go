package opcuaclient

import "github.com/awcullen/opcua/ua"

// Well-known NodeIDs this façade names directly. The teacher's vendored
// `ua` package trims the full OPC UA `Identifiers` table (it only carries
// what the simulator touches), so the handful this module needs are
// reproduced here from the standard OPC UA numeric node id assignments —
// the same values the original Java AddressSpace.java references as
// `Identifiers.*`.
var (
	// Server is the well-known Server object, always present in namespace 0.
	Server = ua.NodeIDNumeric{NamespaceIndex: 0, ID: 2253}

	// HasTypeDefinition is the reference type connecting an Object or
	// Variable instance to its type definition.
	HasTypeDefinition = ua.NodeIDNumeric{NamespaceIndex: 0, ID: 40}

	// HierarchicalReferences is the default BrowseOptions reference type.
	HierarchicalReferences = ua.NodeIDNumeric{NamespaceIndex: 0, ID: 33}

	// Organizes is a commonly-browsed hierarchical reference.
	Organizes = ua.NodeIDNumeric{NamespaceIndex: 0, ID: 35}

	// NamespaceArrayNodeID is the Server object's NamespaceArray variable,
	// whose Value attribute is the server's ordered list of namespace
	// uris (§4.4).
	NamespaceArrayNodeID = ua.NodeIDNumeric{NamespaceIndex: 0, ID: 2255}
)
