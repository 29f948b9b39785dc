package opcuaclient

import (
	"sync"

	"github.com/awcullen/opcua/ua"

	"github.com/amine-amaach/opcua-addressspace/model"
)

// ObjectTypeManager is an extension point, not polymorphism over the
// Object variant itself (§9): it maps a type-definition NodeID to a
// constructor that knows how to build the right Go subtype for that
// ObjectType.
type ObjectTypeManager interface {
	// NodeConstructor returns the constructor registered for
	// typeDefinition, if any.
	NodeConstructor(typeDefinition ua.NodeID) (model.ObjectNodeConstructor, bool)
}

// VariableTypeManager is the Variable-side counterpart of
// ObjectTypeManager.
type VariableTypeManager interface {
	NodeConstructor(typeDefinition ua.NodeID) (model.VariableNodeConstructor, bool)
}

// ObjectTypeRegistry is a simple map-backed ObjectTypeManager.
type ObjectTypeRegistry struct {
	mu           sync.RWMutex
	constructors map[ua.NodeID]model.ObjectNodeConstructor
}

// NewObjectTypeRegistry builds an empty registry.
func NewObjectTypeRegistry() *ObjectTypeRegistry {
	return &ObjectTypeRegistry{constructors: make(map[ua.NodeID]model.ObjectNodeConstructor)}
}

// RegisterType associates typeDefinition with ctor.
func (r *ObjectTypeRegistry) RegisterType(typeDefinition ua.NodeID, ctor model.ObjectNodeConstructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[typeDefinition] = ctor
}

// NodeConstructor implements ObjectTypeManager.
func (r *ObjectTypeRegistry) NodeConstructor(typeDefinition ua.NodeID) (model.ObjectNodeConstructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.constructors[typeDefinition]
	return ctor, ok
}

// VariableTypeRegistry is a simple map-backed VariableTypeManager.
type VariableTypeRegistry struct {
	mu           sync.RWMutex
	constructors map[ua.NodeID]model.VariableNodeConstructor
}

// NewVariableTypeRegistry builds an empty registry.
func NewVariableTypeRegistry() *VariableTypeRegistry {
	return &VariableTypeRegistry{constructors: make(map[ua.NodeID]model.VariableNodeConstructor)}
}

// RegisterType associates typeDefinition with ctor.
func (r *VariableTypeRegistry) RegisterType(typeDefinition ua.NodeID, ctor model.VariableNodeConstructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[typeDefinition] = ctor
}

// NodeConstructor implements VariableTypeManager.
func (r *VariableTypeRegistry) NodeConstructor(typeDefinition ua.NodeID) (model.VariableNodeConstructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.constructors[typeDefinition]
	return ctor, ok
}
