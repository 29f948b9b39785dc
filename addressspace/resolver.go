// Package addressspace is a client-side façade over an OPC UA address
// space: given a Client capability (read, browse, namespace table, type
// registries), it resolves node ids into typed UaNode values, caches
// them, and walks references while localizing expanded node ids along
// the way.
package addressspace

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/awcullen/opcua/ua"

	"github.com/amine-amaach/opcua-addressspace/model"
	"github.com/amine-amaach/opcua-addressspace/opcuaclient"
)

// discardLogger is the Resolver's default: a logrus.Logger wired to
// io.Discard, so a caller that never supplies WithLogger pays nothing
// for the diagnostic calls sprinkled through get/Browse.
func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Resolver is the public entry point (C7). One Resolver wraps one
// Client; it owns a bounded node cache and a mutable set of browse
// options, neither of which is shared across Resolver instances.
type Resolver struct {
	client opcuaclient.Client
	cache  *nodeCache
	log    *logrus.Logger

	mu            sync.Mutex
	browseOptions BrowseOptions
}

// Option configures a Resolver at construction time.
type Option func(*Resolver)

// WithCache overrides the default cache sizing (§3, §9). Only takes
// effect at construction time — a Resolver's cache bounds do not change
// over its lifetime.
func WithCache(expireAfter time.Duration, maximumSize uint64) Option {
	return func(r *Resolver) {
		r.cache.stop()
		r.cache = newNodeCache(expireAfter, maximumSize)
	}
}

// WithBrowseOptions overrides the default browse options.
func WithBrowseOptions(opts BrowseOptions) Option {
	return func(r *Resolver) { r.browseOptions = opts }
}

// WithLogger attaches logger for diagnostic messages (cache hits/misses,
// browse fan-out timing). A Resolver built without this option logs
// nothing.
func WithLogger(logger *logrus.Logger) Option {
	return func(r *Resolver) { r.log = logger }
}

// NewResolver builds a Resolver over client, with the default cache
// sizing and default browse options until overridden by opts.
func NewResolver(client opcuaclient.Client, opts ...Option) *Resolver {
	r := &Resolver{
		client:        client,
		cache:         newNodeCache(DefaultExpireAfter, DefaultMaximumSize),
		browseOptions: DefaultBrowseOptions(),
		log:           discardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Close releases the resolver's background cache-expiration goroutine.
func (r *Resolver) Close() {
	r.cache.stop()
}

// CacheStats returns cumulative cache hit/miss counts.
func (r *Resolver) CacheStats() (hits, misses uint64) {
	return r.cache.stats()
}

// BrowseOptions returns the options currently used by Browse calls that
// don't specify their own.
func (r *Resolver) BrowseOptions() BrowseOptions {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.browseOptions
}

// SetBrowseOptions replaces the resolver's browse options wholesale.
func (r *Resolver) SetBrowseOptions(opts BrowseOptions) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.browseOptions = opts
}

// ModifyBrowseOptions reads the current options, applies fn, and stores
// the result, all under the resolver's lock.
func (r *Resolver) ModifyBrowseOptions(fn func(BrowseOptions) BrowseOptions) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.browseOptions = fn(r.browseOptions)
}

// Get resolves id to its typed node, consulting the cache first (§4.2).
func (r *Resolver) Get(ctx context.Context, id ua.NodeID) (model.UaNode, error) {
	return r.get(ctx, id)
}

// GetAsync is the non-blocking form of Get.
func (r *Resolver) GetAsync(ctx context.Context, id ua.NodeID) *Future[model.UaNode] {
	return newFuture(func() (model.UaNode, error) { return r.get(ctx, id) })
}

// GetObject resolves id as an Object node, consulting the cache first
// (§4.6) — the type-definition browse only runs on a miss.
func (r *Resolver) GetObject(ctx context.Context, id ua.NodeID) (*model.ObjectNode, error) {
	if node, ok := r.cache.get(id); ok {
		r.log.Debugf("cache hit for %s", id)
		obj, ok := node.(*model.ObjectNode)
		if !ok {
			return nil, newVariantMismatchError("cached node for id is not an ObjectNode")
		}
		return obj, nil
	}
	r.log.Debugf("cache miss for %s", id)
	typeDefinitionID, _, err := readTypeDefinition(ctx, r.client, id)
	if err != nil {
		return nil, err
	}
	return r.createObjectWithTypeDefinition(ctx, id, typeDefinitionID)
}

// GetObjectAsync is the non-blocking form of GetObject.
func (r *Resolver) GetObjectAsync(ctx context.Context, id ua.NodeID) *Future[*model.ObjectNode] {
	return newFuture(func() (*model.ObjectNode, error) { return r.GetObject(ctx, id) })
}

// GetVariable resolves id as a Variable node, consulting the cache
// first (§4.6) — the type-definition browse only runs on a miss.
func (r *Resolver) GetVariable(ctx context.Context, id ua.NodeID) (*model.VariableNode, error) {
	if node, ok := r.cache.get(id); ok {
		r.log.Debugf("cache hit for %s", id)
		v, ok := node.(*model.VariableNode)
		if !ok {
			return nil, newVariantMismatchError("cached node for id is not a VariableNode")
		}
		return v, nil
	}
	r.log.Debugf("cache miss for %s", id)
	typeDefinitionID, _, err := readTypeDefinition(ctx, r.client, id)
	if err != nil {
		return nil, err
	}
	return r.createVariableWithTypeDefinition(ctx, id, typeDefinitionID)
}

// GetVariableAsync is the non-blocking form of GetVariable.
func (r *Resolver) GetVariableAsync(ctx context.Context, id ua.NodeID) *Future[*model.VariableNode] {
	return newFuture(func() (*model.VariableNode, error) { return r.GetVariable(ctx, id) })
}

// Localize turns expanded into a local NodeID, refreshing the
// resolver's namespace table from the server on a miss (§4.4, §6).
func (r *Resolver) Localize(ctx context.Context, expanded ua.ExpandedNodeID) (ua.NodeID, error) {
	return localize(ctx, r.client, expanded)
}

// LocalizeAsync is the non-blocking form of Localize.
func (r *Resolver) LocalizeAsync(ctx context.Context, expanded ua.ExpandedNodeID) *Future[ua.NodeID] {
	return newFuture(func() (ua.NodeID, error) { return r.Localize(ctx, expanded) })
}

// get is the cache-then-dispatch engine behind Get (§4.2, C2).
func (r *Resolver) get(ctx context.Context, id ua.NodeID) (model.UaNode, error) {
	if node, ok := r.cache.get(id); ok {
		r.log.Debugf("cache hit for %s", id)
		return node, nil
	}
	r.log.Debugf("cache miss for %s", id)

	resp, err := r.client.Read(ctx, 0, opcuaclient.TimestampsToReturnNeither, toReadValueIDs(id, model.BaseAttributes))
	if err != nil {
		return nil, newUnexpectedError(err)
	}
	if len(resp.Results) != len(model.BaseAttributes) {
		return nil, newUnexpectedError(errUnexpectedResultCount)
	}

	rawClass, ok := resp.Results[1].Value.(int32)
	if !ok {
		return nil, newNodeClassInvalidError("NodeClass attribute is not an Int32")
	}
	class, ok := model.FromInt32(rawClass)
	if !ok {
		return nil, newNodeClassInvalidError("NodeClass attribute holds an unrecognized value")
	}

	switch class {
	case model.NodeClassObject:
		return r.createObjectNode(ctx, id, resp.Results)
	case model.NodeClassVariable:
		return r.createVariableNode(ctx, id, resp.Results)
	default:
		return r.createPlainNode(ctx, id, class, resp.Results)
	}
}

// createObjectNode completes the dispatch for an Object node reached via
// Get: the remaining-attributes read and the type-definition browse run
// in parallel (§4.2), since neither is known yet.
func (r *Resolver) createObjectNode(ctx context.Context, id ua.NodeID, base []ua.DataValue) (*model.ObjectNode, error) {
	var remaining []ua.DataValue
	var typeDefinitionID ua.NodeID

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		remaining, err = r.readRemaining(gctx, id, model.NodeClassObject)
		return err
	})
	g.Go(func() error {
		tdef, _, err := readTypeDefinition(gctx, r.client, id)
		typeDefinitionID = tdef
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ctor := model.DefaultObjectConstructor
	if typeDefinitionID != nil {
		if c, ok := r.client.ObjectTypeManager().NodeConstructor(typeDefinitionID); ok {
			ctor = c
		}
	}

	node, err := model.NewObjectNode(id, append(append([]ua.DataValue{}, base...), remaining...), ctor)
	if err != nil {
		return nil, newUnexpectedError(err)
	}
	objectNode, ok := node.(*model.ObjectNode)
	if !ok {
		return nil, newNodeClassInvalidError("registered ObjectType constructor did not return an ObjectNode")
	}
	r.cache.put(id, objectNode)
	return objectNode, nil
}

// createVariableNode is the Variable-class counterpart of createObjectNode.
func (r *Resolver) createVariableNode(ctx context.Context, id ua.NodeID, base []ua.DataValue) (*model.VariableNode, error) {
	var remaining []ua.DataValue
	var typeDefinitionID ua.NodeID

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		remaining, err = r.readRemaining(gctx, id, model.NodeClassVariable)
		return err
	})
	g.Go(func() error {
		tdef, _, err := readTypeDefinition(gctx, r.client, id)
		typeDefinitionID = tdef
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ctor := model.DefaultVariableConstructor
	if typeDefinitionID != nil {
		if c, ok := r.client.VariableTypeManager().NodeConstructor(typeDefinitionID); ok {
			ctor = c
		}
	}

	node, err := model.NewVariableNode(id, append(append([]ua.DataValue{}, base...), remaining...), ctor)
	if err != nil {
		return nil, newUnexpectedError(err)
	}
	variableNode, ok := node.(*model.VariableNode)
	if !ok {
		return nil, newNodeClassInvalidError("registered VariableType constructor did not return a VariableNode")
	}
	r.cache.put(id, variableNode)
	return variableNode, nil
}

// createPlainNode handles the six node classes with no type-definition
// concept (Method, View, ObjectType, VariableType, DataType,
// ReferenceType).
func (r *Resolver) createPlainNode(ctx context.Context, id ua.NodeID, class model.NodeClass, base []ua.DataValue) (model.UaNode, error) {
	remaining, err := r.readRemaining(ctx, id, class)
	if err != nil {
		return nil, err
	}
	all := append(append([]ua.DataValue{}, base...), remaining...)

	var node model.UaNode
	switch class {
	case model.NodeClassMethod:
		node, err = model.NewMethodNode(id, all)
	case model.NodeClassView:
		node, err = model.NewViewNode(id, all)
	case model.NodeClassObjectType:
		node, err = model.NewObjectTypeNode(id, all)
	case model.NodeClassVariableType:
		node, err = model.NewVariableTypeNode(id, all)
	case model.NodeClassDataType:
		node, err = model.NewDataTypeNode(id, all)
	case model.NodeClassReferenceType:
		node, err = model.NewReferenceTypeNode(id, all)
	default:
		return nil, newNodeClassInvalidError("unreachable NodeClass in plain-node dispatch")
	}
	if err != nil {
		return nil, newUnexpectedError(err)
	}
	r.cache.put(id, node)
	return node, nil
}

// GetObjectWithTypeDefinition resolves id as an Object, skipping the
// type-definition browse because typeDefinitionID is already known
// (§4.6.1, §6) — useful when a caller already has the type definition
// from a prior browse.
func (r *Resolver) GetObjectWithTypeDefinition(ctx context.Context, id, typeDefinitionID ua.NodeID) (*model.ObjectNode, error) {
	if node, ok := r.cache.get(id); ok {
		if obj, ok := node.(*model.ObjectNode); ok {
			return obj, nil
		}
		return nil, newVariantMismatchError("cached node for id is not an ObjectNode")
	}
	return r.createObjectWithTypeDefinition(ctx, id, typeDefinitionID)
}

// createObjectWithTypeDefinition reads id's full Object attribute list,
// builds the node with the constructor registered for typeDefinitionID
// (or the default one) and publishes it. It does not consult the cache.
func (r *Resolver) createObjectWithTypeDefinition(ctx context.Context, id, typeDefinitionID ua.NodeID) (*model.ObjectNode, error) {
	all, err := r.readAll(ctx, id, model.NodeClassObject)
	if err != nil {
		return nil, err
	}

	ctor := model.DefaultObjectConstructor
	if typeDefinitionID != nil {
		if c, ok := r.client.ObjectTypeManager().NodeConstructor(typeDefinitionID); ok {
			ctor = c
		}
	}
	node, err := model.NewObjectNode(id, all, ctor)
	if err != nil {
		return nil, newUnexpectedError(err)
	}
	objectNode, ok := node.(*model.ObjectNode)
	if !ok {
		return nil, newNodeClassInvalidError("registered ObjectType constructor did not return an ObjectNode")
	}
	r.cache.put(id, objectNode)
	return objectNode, nil
}

// GetObjectWithTypeDefinitionAsync is the non-blocking form of
// GetObjectWithTypeDefinition.
func (r *Resolver) GetObjectWithTypeDefinitionAsync(ctx context.Context, id, typeDefinitionID ua.NodeID) *Future[*model.ObjectNode] {
	return newFuture(func() (*model.ObjectNode, error) {
		return r.GetObjectWithTypeDefinition(ctx, id, typeDefinitionID)
	})
}

// GetVariableWithTypeDefinition is the Variable-class counterpart of
// GetObjectWithTypeDefinition.
func (r *Resolver) GetVariableWithTypeDefinition(ctx context.Context, id, typeDefinitionID ua.NodeID) (*model.VariableNode, error) {
	if node, ok := r.cache.get(id); ok {
		if v, ok := node.(*model.VariableNode); ok {
			return v, nil
		}
		return nil, newVariantMismatchError("cached node for id is not a VariableNode")
	}
	return r.createVariableWithTypeDefinition(ctx, id, typeDefinitionID)
}

// createVariableWithTypeDefinition is the Variable-class counterpart of
// createObjectWithTypeDefinition.
func (r *Resolver) createVariableWithTypeDefinition(ctx context.Context, id, typeDefinitionID ua.NodeID) (*model.VariableNode, error) {
	all, err := r.readAll(ctx, id, model.NodeClassVariable)
	if err != nil {
		return nil, err
	}

	ctor := model.DefaultVariableConstructor
	if typeDefinitionID != nil {
		if c, ok := r.client.VariableTypeManager().NodeConstructor(typeDefinitionID); ok {
			ctor = c
		}
	}
	node, err := model.NewVariableNode(id, all, ctor)
	if err != nil {
		return nil, newUnexpectedError(err)
	}
	variableNode, ok := node.(*model.VariableNode)
	if !ok {
		return nil, newNodeClassInvalidError("registered VariableType constructor did not return a VariableNode")
	}
	r.cache.put(id, variableNode)
	return variableNode, nil
}

// GetVariableWithTypeDefinitionAsync is the non-blocking form of
// GetVariableWithTypeDefinition.
func (r *Resolver) GetVariableWithTypeDefinitionAsync(ctx context.Context, id, typeDefinitionID ua.NodeID) *Future[*model.VariableNode] {
	return newFuture(func() (*model.VariableNode, error) {
		return r.GetVariableWithTypeDefinition(ctx, id, typeDefinitionID)
	})
}

// readAll reads the full attribute list (base + class-specific) for id
// in a single Read call.
func (r *Resolver) readAll(ctx context.Context, id ua.NodeID, class model.NodeClass) ([]ua.DataValue, error) {
	ids := model.Attributes(class)
	resp, err := r.client.Read(ctx, 0, opcuaclient.TimestampsToReturnNeither, toReadValueIDs(id, ids))
	if err != nil {
		return nil, newUnexpectedError(err)
	}
	if len(resp.Results) != len(ids) {
		return nil, newUnexpectedError(errUnexpectedResultCount)
	}
	return resp.Results, nil
}

// readRemaining reads the class-specific attribute set beyond the base
// attributes, for class.
func (r *Resolver) readRemaining(ctx context.Context, id ua.NodeID, class model.NodeClass) ([]ua.DataValue, error) {
	ids := model.RemainingAttributes(class)
	if len(ids) == 0 {
		return nil, nil
	}
	resp, err := r.client.Read(ctx, 0, opcuaclient.TimestampsToReturnNeither, toReadValueIDs(id, ids))
	if err != nil {
		return nil, newUnexpectedError(err)
	}
	if len(resp.Results) != len(ids) {
		return nil, newUnexpectedError(errUnexpectedResultCount)
	}
	return resp.Results, nil
}

func toReadValueIDs(id ua.NodeID, attributeIDs []uint32) []opcuaclient.ReadValueID {
	ids := make([]opcuaclient.ReadValueID, len(attributeIDs))
	for i, attr := range attributeIDs {
		ids[i] = opcuaclient.ReadValueID{NodeID: id, AttributeID: attr}
	}
	return ids
}
