package addressspace

import (
	"context"

	"github.com/awcullen/opcua/ua"

	"github.com/amine-amaach/opcua-addressspace/model"
	"github.com/amine-amaach/opcua-addressspace/opcuaclient"
)

// readTypeDefinition browses forward along HasTypeDefinition from nodeID
// and returns the single, localized type-definition NodeID found, if any
// (§4.3). Object and Variable instances have exactly one; every other
// node class has none. A non-good browse status degrades to "none found"
// rather than an error — the caller falls back to the default
// constructor.
func readTypeDefinition(ctx context.Context, client opcuaclient.Client, nodeID ua.NodeID) (ua.NodeID, bool, error) {
	result, err := client.Browse(ctx, opcuaclient.BrowseDescription{
		NodeID:          nodeID,
		Direction:       opcuaclient.BrowseDirectionForward,
		ReferenceTypeID: opcuaclient.HasTypeDefinition,
		IncludeSubtypes: false,
		NodeClassMask:   uint32(model.NodeClassObjectType | model.NodeClassVariableType),
		ResultMask:      opcuaclient.BrowseResultMaskAll,
	})
	if err != nil {
		return nil, false, newUnexpectedError(err)
	}
	if !result.StatusCode.IsGood() {
		return nil, false, nil
	}
	for _, ref := range result.References {
		if ref.ReferenceTypeID != opcuaclient.HasTypeDefinition {
			continue
		}
		id, err := localize(ctx, client, ref.NodeID)
		if err != nil {
			return nil, false, err
		}
		return id, id != nil, nil
	}
	return nil, false, nil
}
