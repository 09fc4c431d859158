// Package object is the minimal native-object hook surfaced to script
// property access: a small in-memory "point" object with x/y
// properties, plus a registry that lets a WeakNativeObject notice when
// its target has gone away. It exists to exercise value.NativeObject
// and value.WeakNativeObject, not as a real object model.
package object

import (
	"fmt"
	"sync"

	"github.com/uliwitness/nimue/value"
)

// Point is a sample host object: a mutable 2-D point with a read-only
// id and read/write x, y properties.
type Point struct {
	id   int64
	X, Y float64
}

var _ value.NativeObject = (*Point)(nil)

func (p *Point) ID() int64 { return p.id }

func (p *Point) GetProperty(name string) (value.Value, error) {
	switch name {
	case "id":
		return value.NewInteger(p.id), nil
	case "x":
		return value.NewDouble(p.X), nil
	case "y":
		return value.NewDouble(p.Y), nil
	}
	return value.Value{}, &value.UnknownPropertyError{Name: name}
}

func (p *Point) SetProperty(name string, v value.Value) error {
	switch name {
	case "id":
		return &value.ReadOnlyPropertyError{Name: name}
	case "x":
		f, err := v.AsDouble(noStack{})
		if err != nil {
			return err
		}
		p.X = f
		return nil
	case "y":
		f, err := v.AsDouble(noStack{})
		if err != nil {
			return err
		}
		p.Y = f
		return nil
	}
	return &value.UnknownPropertyError{Name: name}
}

func (p *Point) String() string { return fmt.Sprintf("point(%g, %g)", p.X, p.Y) }

// noStack satisfies value.Stack for coercions that can't legally
// encounter a Reference: a property setter only ever receives a
// resolved Value from the VM, never a bare stack cell.
type noStack struct{}

func (noStack) At(i int) value.Value { return value.NewUnset() }

// Registry owns Points by id and lets WeakRefs discover when their
// target has been Forgotten, satisfying value.WeakNativeObject.
type Registry struct {
	mu      sync.Mutex
	nextID  int64
	objects map[int64]*Point
}

func NewRegistry() *Registry {
	return &Registry{objects: make(map[int64]*Point)}
}

// NewPoint allocates and registers a Point, returning its strong
// value.NativeObject handle.
func (r *Registry) NewPoint(x, y float64) *Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p := &Point{id: r.nextID, X: x, Y: y}
	r.objects[p.id] = p
	return p
}

// Forget removes an object from the registry; any WeakRef to it will
// subsequently fail to resolve.
func (r *Registry) Forget(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.objects, id)
}

// WeakRef is a non-owning observer of a registered object.
type WeakRef struct {
	registry *Registry
	id       int64
}

var _ value.WeakNativeObject = WeakRef{}

// Weaken returns a WeakRef observing obj through this registry.
func (r *Registry) Weaken(obj *Point) WeakRef {
	return WeakRef{registry: r, id: obj.ID()}
}

func (w WeakRef) Resolve() (value.NativeObject, bool) {
	w.registry.mu.Lock()
	defer w.registry.mu.Unlock()
	p, ok := w.registry.objects[w.id]
	if !ok {
		return nil, false
	}
	return p, true
}
