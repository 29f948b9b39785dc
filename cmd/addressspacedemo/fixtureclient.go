package main

import (
	"context"

	"github.com/google/uuid"

	"github.com/awcullen/opcua/ua"

	"github.com/amine-amaach/opcua-addressspace/opcuaclient"
)

// statusBad marks an attribute or node that isn't present in the
// fixture. The vendored status code table only carries Good, so this
// stands in for the service's Bad severity band directly.
const statusBad = ua.StatusCode(ua.SeverityBad)

// fixtureClient is an in-memory, read-only opcuaclient.Client standing
// in for a real session against a server. It exists purely to drive the
// demo CLI below — the addressspace package never imports it.
type fixtureClient struct {
	attributes map[ua.NodeID]map[uint32]ua.Variant
	references map[ua.NodeID][]opcuaclient.ReferenceDescription
	namespaces opcuaclient.NamespaceTable
	objectMgr  *opcuaclient.ObjectTypeRegistry
	variableMgr *opcuaclient.VariableTypeRegistry
}

func newFixtureClient() *fixtureClient {
	c := &fixtureClient{
		attributes: make(map[ua.NodeID]map[uint32]ua.Variant),
		references: make(map[ua.NodeID][]opcuaclient.ReferenceDescription),
		namespaces: opcuaclient.NewNamespaceTable(),
		objectMgr:  opcuaclient.NewObjectTypeRegistry(),
		variableMgr: opcuaclient.NewVariableTypeRegistry(),
	}
	c.namespaces.Update(func(a *opcuaclient.NamespaceArray) {
		a.Put(1, "http://github.com/amine-amaach/opcua-addressspace/demo")
	})

	machines := ua.NodeIDGUID{NamespaceIndex: 1, ID: uuid.New()}
	temperature := ua.NodeIDString{NamespaceIndex: 1, ID: "Machines.Temperature"}
	folderType := ua.NodeIDNumeric{NamespaceIndex: 0, ID: 61}       // FolderType
	baseVariableType := ua.NodeIDNumeric{NamespaceIndex: 0, ID: 63} // BaseDataVariableType

	c.addObject(opcuaclient.Server, "Server", "Server", 0)
	c.addReference(opcuaclient.Server, opcuaclient.HierarchicalReferences, machines, "Machines", int32(1) /* Object */, ua.NilExpandedNodeID)

	c.addObject(machines, "Machines", "Machines", 0)
	c.addReference(machines, opcuaclient.HasTypeDefinition, folderType, "FolderType", int32(8) /* ObjectType */, ua.NilExpandedNodeID)
	c.addReference(machines, opcuaclient.HierarchicalReferences, temperature, "Temperature", int32(2) /* Variable */, ua.NewExpandedNodeID(baseVariableType))

	c.addVariable(temperature, "Temperature", "Temperature", ua.DataValue{Value: 21.5})
	c.addReference(temperature, opcuaclient.HasTypeDefinition, baseVariableType, "BaseDataVariableType", int32(16) /* VariableType */, ua.NilExpandedNodeID)

	return c
}

func (c *fixtureClient) addObject(id ua.NodeID, browseName, displayName string, eventNotifier uint8) {
	c.attributes[id] = map[uint32]ua.Variant{
		ua.AttributeIDNodeID:        id,
		ua.AttributeIDNodeClass:     int32(1), // Object
		ua.AttributeIDBrowseName:    ua.QualifiedName{Name: browseName},
		ua.AttributeIDDisplayName:   ua.LocalizedText{Text: displayName},
		ua.AttributeIDDescription:   ua.LocalizedText{},
		ua.AttributeIDWriteMask:     uint32(0),
		ua.AttributeIDUserWriteMask: uint32(0),
		ua.AttributeIDEventNotifier: eventNotifier,
	}
}

func (c *fixtureClient) addVariable(id ua.NodeID, browseName, displayName string, value ua.DataValue) {
	c.attributes[id] = map[uint32]ua.Variant{
		ua.AttributeIDNodeID:                    id,
		ua.AttributeIDNodeClass:                 int32(2), // Variable
		ua.AttributeIDBrowseName:                ua.QualifiedName{Name: browseName},
		ua.AttributeIDDisplayName:                ua.LocalizedText{Text: displayName},
		ua.AttributeIDDescription:                ua.LocalizedText{},
		ua.AttributeIDWriteMask:                  uint32(0),
		ua.AttributeIDUserWriteMask:              uint32(0),
		ua.AttributeIDValue:                      value,
		ua.AttributeIDDataType:                   ua.NodeIDNumeric{NamespaceIndex: 0, ID: 11}, // Double
		ua.AttributeIDValueRank:                  int32(-1),
		ua.AttributeIDArrayDimensions:            []uint32(nil),
		ua.AttributeIDAccessLevel:                uint8(1),
		ua.AttributeIDUserAccessLevel:            uint8(1),
		ua.AttributeIDMinimumSamplingInterval:    float64(100),
		ua.AttributeIDHistorizing:                false,
	}
}

func (c *fixtureClient) addReference(from, referenceType, to ua.NodeID, browseName string, nodeClass int32, typeDefinition ua.ExpandedNodeID) {
	c.references[from] = append(c.references[from], opcuaclient.ReferenceDescription{
		ReferenceTypeID: referenceType,
		IsForward:       true,
		NodeID:          ua.NewExpandedNodeID(to),
		BrowseName:      ua.QualifiedName{Name: browseName},
		DisplayName:     ua.LocalizedText{Text: browseName},
		NodeClass:       nodeClass,
		TypeDefinition:  typeDefinition,
	})
}

func (c *fixtureClient) Read(ctx context.Context, maxAge float64, timestamps opcuaclient.TimestampsToReturn, ids []opcuaclient.ReadValueID) (opcuaclient.ReadResponse, error) {
	results := make([]ua.DataValue, len(ids))
	for i, rv := range ids {
		attrs, ok := c.attributes[rv.NodeID]
		if !ok {
			results[i] = ua.DataValue{StatusCode: statusBad}
			continue
		}
		value, ok := attrs[rv.AttributeID]
		if !ok {
			results[i] = ua.DataValue{StatusCode: statusBad}
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

func (c *fixtureClient) Browse(ctx context.Context, description opcuaclient.BrowseDescription) (opcuaclient.BrowseResult, error) {
	all := c.references[description.NodeID]
	matched := make([]opcuaclient.ReferenceDescription, 0, len(all))
	for _, ref := range all {
		if description.ReferenceTypeID != nil && ref.ReferenceTypeID != description.ReferenceTypeID {
			continue
		}
		matched = append(matched, ref)
	}
	return opcuaclient.BrowseResult{StatusCode: ua.Good, References: matched}, nil
}

func (c *fixtureClient) NamespaceTable() opcuaclient.NamespaceTable { return c.namespaces }

func (c *fixtureClient) ObjectTypeManager() opcuaclient.ObjectTypeManager { return c.objectMgr }

func (c *fixtureClient) VariableTypeManager() opcuaclient.VariableTypeManager { return c.variableMgr }
