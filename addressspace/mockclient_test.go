package addressspace

import (
	"context"

	"github.com/awcullen/opcua/ua"

	"github.com/amine-amaach/opcua-addressspace/opcuaclient"
)

// mockClient is a minimal, test-only opcuaclient.Client: a map of node
// attributes plus a map of outgoing references, with no concurrency
// concerns of its own (tests exercise concurrency through the resolver,
// not this fixture).
type mockClient struct {
	attrs      map[ua.NodeID]map[uint32]ua.Variant
	refs       map[ua.NodeID][]opcuaclient.ReferenceDescription
	namespaces opcuaclient.NamespaceTable
	objectMgr  *opcuaclient.ObjectTypeRegistry
	variableMgr *opcuaclient.VariableTypeRegistry

	readErr   error
	browseErr error
	browseStatus ua.StatusCode
}

func newMockClient() *mockClient {
	c := &mockClient{
		attrs:       make(map[ua.NodeID]map[uint32]ua.Variant),
		refs:        make(map[ua.NodeID][]opcuaclient.ReferenceDescription),
		namespaces:  opcuaclient.NewNamespaceTable(),
		objectMgr:   opcuaclient.NewObjectTypeRegistry(),
		variableMgr: opcuaclient.NewVariableTypeRegistry(),
	}
	return c
}

func (c *mockClient) addBase(id ua.NodeID, class int32, browseName, displayName string) {
	c.attrs[id] = map[uint32]ua.Variant{
		ua.AttributeIDNodeID:        id,
		ua.AttributeIDNodeClass:     class,
		ua.AttributeIDBrowseName:    ua.QualifiedName{Name: browseName},
		ua.AttributeIDDisplayName:   ua.LocalizedText{Text: displayName},
		ua.AttributeIDDescription:   ua.LocalizedText{},
		ua.AttributeIDWriteMask:     uint32(0),
		ua.AttributeIDUserWriteMask: uint32(0),
	}
}

func (c *mockClient) addObject(id ua.NodeID, browseName, displayName string) {
	c.addBase(id, 1, browseName, displayName)
	c.attrs[id][ua.AttributeIDEventNotifier] = uint8(0)
}

func (c *mockClient) addVariable(id ua.NodeID, browseName, displayName string, value ua.Variant) {
	c.addBase(id, 2, browseName, displayName)
	c.attrs[id][ua.AttributeIDValue] = ua.DataValue{Value: value, StatusCode: ua.Good}
	c.attrs[id][ua.AttributeIDDataType] = ua.NodeIDNumeric{NamespaceIndex: 0, ID: 11}
	c.attrs[id][ua.AttributeIDValueRank] = int32(-1)
	c.attrs[id][ua.AttributeIDArrayDimensions] = []uint32(nil)
	c.attrs[id][ua.AttributeIDAccessLevel] = uint8(1)
	c.attrs[id][ua.AttributeIDUserAccessLevel] = uint8(1)
	c.attrs[id][ua.AttributeIDMinimumSamplingInterval] = float64(100)
	c.attrs[id][ua.AttributeIDHistorizing] = false
}

func (c *mockClient) addReference(from, referenceType ua.NodeID, to ua.ExpandedNodeID, browseName string, nodeClass int32, typeDefinition ua.ExpandedNodeID) {
	c.refs[from] = append(c.refs[from], opcuaclient.ReferenceDescription{
		ReferenceTypeID: referenceType,
		IsForward:       true,
		NodeID:          to,
		BrowseName:      ua.QualifiedName{Name: browseName},
		DisplayName:     ua.LocalizedText{Text: browseName},
		NodeClass:       nodeClass,
		TypeDefinition:  typeDefinition,
	})
}

func (c *mockClient) Read(ctx context.Context, maxAge float64, timestamps opcuaclient.TimestampsToReturn, ids []opcuaclient.ReadValueID) (opcuaclient.ReadResponse, error) {
	if c.readErr != nil {
		return opcuaclient.ReadResponse{}, c.readErr
	}
	results := make([]ua.DataValue, len(ids))
	for i, rv := range ids {
		attrs, ok := c.attrs[rv.NodeID]
		if !ok {
			results[i] = ua.DataValue{StatusCode: ua.StatusCode(0x80000000)}
			continue
		}
		value, ok := attrs[rv.AttributeID]
		if !ok {
			results[i] = ua.DataValue{StatusCode: ua.StatusCode(0x80000000)}
			continue
		}
		if dv, ok := value.(ua.DataValue); ok {
			results[i] = dv
			continue
		}
		results[i] = ua.DataValue{Value: value, StatusCode: ua.Good}
	}
	return opcuaclient.ReadResponse{Results: results}, nil
}

func (c *mockClient) Browse(ctx context.Context, description opcuaclient.BrowseDescription) (opcuaclient.BrowseResult, error) {
	if c.browseErr != nil {
		return opcuaclient.BrowseResult{}, c.browseErr
	}
	if !c.browseStatus.IsGood() {
		return opcuaclient.BrowseResult{StatusCode: c.browseStatus}, nil
	}
	all := c.refs[description.NodeID]
	matched := make([]opcuaclient.ReferenceDescription, 0, len(all))
	for _, ref := range all {
		if description.ReferenceTypeID != nil && ref.ReferenceTypeID != description.ReferenceTypeID {
			continue
		}
		matched = append(matched, ref)
	}
	return opcuaclient.BrowseResult{StatusCode: ua.Good, References: matched}, nil
}

func (c *mockClient) NamespaceTable() opcuaclient.NamespaceTable { return c.namespaces }

func (c *mockClient) ObjectTypeManager() opcuaclient.ObjectTypeManager { return c.objectMgr }

func (c *mockClient) VariableTypeManager() opcuaclient.VariableTypeManager { return c.variableMgr }
