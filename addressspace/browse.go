package addressspace

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/awcullen/opcua/ua"

	"github.com/amine-amaach/opcua-addressspace/model"
	"github.com/amine-amaach/opcua-addressspace/opcuaclient"
)

// Browse walks references from id using the resolver's current
// BrowseOptions (§4.5, §4.6).
func (r *Resolver) Browse(ctx context.Context, id ua.NodeID) ([]model.UaNode, error) {
	return r.BrowseWithOptions(ctx, id, r.BrowseOptions())
}

// BrowseAsync is the non-blocking form of Browse.
func (r *Resolver) BrowseAsync(ctx context.Context, id ua.NodeID) *Future[[]model.UaNode] {
	return newFuture(func() ([]model.UaNode, error) { return r.Browse(ctx, id) })
}

// BrowseNode is the UaNode-valued counterpart of Browse, delegating to
// node's own NodeID (§6).
func (r *Resolver) BrowseNode(ctx context.Context, node model.UaNode) ([]model.UaNode, error) {
	return r.Browse(ctx, node.ID())
}

// BrowseNodeAsync is the non-blocking form of BrowseNode.
func (r *Resolver) BrowseNodeAsync(ctx context.Context, node model.UaNode) *Future[[]model.UaNode] {
	return newFuture(func() ([]model.UaNode, error) { return r.BrowseNode(ctx, node) })
}

// BrowseWithOptions walks references from id using opts instead of the
// resolver's stored options.
func (r *Resolver) BrowseWithOptions(ctx context.Context, id ua.NodeID, opts BrowseOptions) ([]model.UaNode, error) {
	result, err := r.client.Browse(ctx, opcuaclient.BrowseDescription{
		NodeID:          id,
		Direction:       opts.BrowseDirection,
		ReferenceTypeID: opts.ReferenceTypeID,
		IncludeSubtypes: opts.IncludeSubtypes,
		NodeClassMask:   uint32(opts.NodeClassMask),
		ResultMask:      opcuaclient.BrowseResultMaskAll,
	})
	if err != nil {
		return nil, newUnexpectedError(err)
	}
	if !result.StatusCode.IsGood() {
		return nil, newServiceError(result.StatusCode)
	}

	return r.resolveReferences(ctx, result.References)
}

// resolveReferences localizes and resolves every reference in parallel,
// preserving the server's return order in the result slice (§4.6). Each
// reference is independent: one failure does not cancel the others, but
// is propagated once every goroutine has finished.
func (r *Resolver) resolveReferences(ctx context.Context, refs []opcuaclient.ReferenceDescription) ([]model.UaNode, error) {
	nodes := make([]model.UaNode, len(refs))
	start := time.Now()

	var g errgroup.Group
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			node, err := r.resolveReference(ctx, ref)
			if err != nil {
				return err
			}
			nodes[i] = node
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	r.log.Debugf("resolved %d references in %s", len(refs), time.Since(start))
	return nodes, nil
}

// resolveReference localizes a single reference's target (and, for
// Object/Variable targets, its type definition in parallel) and resolves
// it to a typed node (§4.6.1, §4.6.2).
func (r *Resolver) resolveReference(ctx context.Context, ref opcuaclient.ReferenceDescription) (model.UaNode, error) {
	class, ok := model.FromInt32(ref.NodeClass)
	if !ok {
		return nil, newNodeClassInvalidError("reference carries an unrecognized NodeClass")
	}

	switch class {
	case model.NodeClassObject, model.NodeClassVariable:
		var targetID, typeDefinitionID ua.NodeID
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			targetID, err = localize(gctx, r.client, ref.NodeID)
			return err
		})
		g.Go(func() (err error) {
			typeDefinitionID, err = localize(gctx, r.client, ref.TypeDefinition)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if class == model.NodeClassObject {
			return r.GetObjectWithTypeDefinition(ctx, targetID, typeDefinitionID)
		}
		return r.GetVariableWithTypeDefinition(ctx, targetID, typeDefinitionID)
	default:
		targetID, err := localize(ctx, r.client, ref.NodeID)
		if err != nil {
			return nil, err
		}
		return r.get(ctx, targetID)
	}
}
