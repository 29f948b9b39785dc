package addressspace

import (
	"context"
	"math"

	"github.com/awcullen/opcua/ua"

	"github.com/amine-amaach/opcua-addressspace/opcuaclient"
)

// resolveLocal attempts to turn expanded into a NodeID using only the
// current contents of table, without any server round-trip.
func resolveLocal(expanded ua.ExpandedNodeID, table opcuaclient.NamespaceTable) (ua.NodeID, bool) {
	if expanded.ServerIndex != 0 {
		return nil, false
	}
	if expanded.NamespaceURI == "" {
		return expanded.NodeID, true
	}
	index, ok := table.Index(expanded.NamespaceURI)
	if !ok {
		return nil, false
	}
	switch n := expanded.NodeID.(type) {
	case ua.NodeIDNumeric:
		return ua.NodeIDNumeric{NamespaceIndex: index, ID: n.ID}, true
	case ua.NodeIDString:
		return ua.NodeIDString{NamespaceIndex: index, ID: n.ID}, true
	case ua.NodeIDGUID:
		return ua.NodeIDGUID{NamespaceIndex: index, ID: n.ID}, true
	case ua.NodeIDOpaque:
		return ua.NodeIDOpaque{NamespaceIndex: index, ID: n.ID}, true
	default:
		return nil, false
	}
}

// localize turns expanded into a local NodeID (C5, §4.4), refreshing the
// namespace table from the server exactly once on a miss. The original
// Java implementation never retries resolution against the table it just
// refreshed, which means a namespace learned by the refresh is reported
// unresolvable anyway; this is corrected here — the retry after refresh
// is intentional, not an oversight.
func localize(ctx context.Context, client opcuaclient.Client, expanded ua.ExpandedNodeID) (ua.NodeID, error) {
	table := client.NamespaceTable()
	if id, ok := resolveLocal(expanded, table); ok {
		return id, nil
	}

	resp, err := client.Read(ctx, 0, opcuaclient.TimestampsToReturnNeither, []opcuaclient.ReadValueID{
		{NodeID: opcuaclient.NamespaceArrayNodeID, AttributeID: ua.AttributeIDValue},
	})
	if err != nil {
		return nil, newUnexpectedError(err)
	}
	if len(resp.Results) != 1 {
		return nil, newUnexpectedError(errUnexpectedResultCount)
	}

	uris, ok := resp.Results[0].Value.([]string)
	if !ok {
		return nil, nil
	}

	table.Update(func(a *opcuaclient.NamespaceArray) {
		a.Clear()
		for i, uri := range uris {
			if i >= math.MaxUint16 {
				break
			}
			if uri == "" || a.Contains(uri) {
				continue
			}
			a.Put(uint16(i), uri)
		}
	})

	if id, ok := resolveLocal(expanded, table); ok {
		return id, nil
	}
	return nil, nil
}
