package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateID = errors.New("duplicate game object id")
	ErrEmptyID     = errors.New("game object id is empty")
)

// DuplicateIDError is returned by New when two objects share an id.
type DuplicateIDError struct {
	ID       string
	Existing Kind
	Incoming Kind
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate game object id %q: already registered as %s, colliding %s", e.ID, e.Existing, e.Incoming)
}

func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}

// Source pairs a kind with the objects built from its raw records.
type Source struct {
	Kind  Kind
	build func() ([]Object, error)
}

// FromRecords builds a Source that runs every record through build when the
// registry is constructed.
func FromRecords[R any](kind Kind, records []R, build func(R) (Object, error)) Source {
	return Source{
		Kind: kind,
		build: func() ([]Object, error) {
			out := make([]Object, 0, len(records))
			for i, rec := range records {
				obj, err := build(rec)
				if err != nil {
					return nil, fmt.Errorf("%s record %d: %w", kind, i, err)
				}
				out = append(out, obj)
			}
			return out, nil
		},
	}
}

// FromObjects wraps already-built objects.
func FromObjects(kind Kind, objects ...Object) Source {
	return Source{
		Kind: kind,
		build: func() ([]Object, error) {
			return objects, nil
		},
	}
}

// Registry is the read-only index of every game object. It is safe for
// concurrent readers once New returns.
type Registry struct {
	byID   map[string]Object
	kindOf map[string]Kind
	byKind map[Kind][]string
	kinds  []Kind
}

func New(sources ...Source) (*Registry, error) {
	r := &Registry{
		byID:   make(map[string]Object),
		kindOf: make(map[string]Kind),
		byKind: make(map[Kind][]string),
	}
	for _, src := range sources {
		if src.build == nil {
			continue
		}
		objects, err := src.build()
		if err != nil {
			return nil, err
		}
		if _, ok := r.byKind[src.Kind]; !ok {
			r.byKind[src.Kind] = []string{}
			r.kinds = append(r.kinds, src.Kind)
		}
		for _, obj := range objects {
			if err := r.insert(src.Kind, obj); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// MustNew panics when New fails. Only for static data that is covered by tests.
func MustNew(sources ...Source) *Registry {
	r, err := New(sources...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) insert(kind Kind, obj Object) error {
	id := obj.ObjectBase().ID
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s %q: %w", kind, obj.ObjectBase().Name, ErrEmptyID)
	}
	if existing, ok := r.kindOf[id]; ok {
		return &DuplicateIDError{ID: id, Existing: existing, Incoming: kind}
	}
	r.byID[id] = obj
	r.kindOf[id] = kind
	r.byKind[kind] = append(r.byKind[kind], id)
	return nil
}

func (r *Registry) Get(id string) (Object, bool) {
	obj, ok := r.byID[id]
	return obj, ok
}

func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

func (r *Registry) Len() int {
	return len(r.byID)
}

// Kinds lists the kinds the registry was built with, in construction order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, len(r.kinds))
	copy(out, r.kinds)
	return out
}

// GetByIDs resolves ids in order, skipping any that are not registered.
func (r *Registry) GetByIDs(ids []string) []Object {
	out := make([]Object, 0, len(ids))
	for _, id := range ids {
		if obj, ok := r.byID[id]; ok {
			out = append(out, obj)
		}
	}
	return out
}

func (r *Registry) AllOfKind(kind Kind) []Object {
	ids := r.byKind[kind]
	out := make([]Object, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	return out
}

// GetByKindAndIDs keeps only ids that resolve and were registered under kind.
func (r *Registry) GetByKindAndIDs(kind Kind, ids []string) []Object {
	out := make([]Object, 0, len(ids))
	for _, id := range ids {
		if k, ok := r.kindOf[id]; !ok || k != kind {
			continue
		}
		out = append(out, r.byID[id])
	}
	return out
}

// AllOf returns every registered object of variant T in index order.
func AllOf[T Object](r *Registry) []T {
	var zero T
	ids := r.byKind[zero.Kind()]
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if v, ok := r.byID[id].(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func lookup[T Object](r *Registry, id string) (T, bool) {
	v, ok := r.byID[id].(T)
	return v, ok
}

func (r *Registry) Monster(id string) (Monster, bool)     { return lookup[Monster](r, id) }
func (r *Registry) Potion(id string) (Potion, bool)       { return lookup[Potion](r, id) }
func (r *Registry) Vegetable(id string) (Vegetable, bool) { return lookup[Vegetable](r, id) }
func (r *Registry) Drop(id string) (Drop, bool)           { return lookup[Drop](r, id) }
func (r *Registry) Bar(id string) (Bar, bool)             { return lookup[Bar](r, id) }
