package catalog

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrUnknownObject   = errors.New("unknown game object")
	ErrNotCraftable    = errors.New("game object has no materials")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// KindUnknown marks a material whose id is not registered.
const KindUnknown Kind = "unknown"

type ResolvedMaterial struct {
	Material
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Kind  Kind   `json:"kind"`
	Found bool   `json:"found"`
}

type MaterialGroup struct {
	Kind      Kind               `json:"kind"`
	Materials []ResolvedMaterial `json:"materials"`
}

// ResolveMaterials looks every material up. Missing ids are kept with a name
// derived from the id.
func (r *Registry) ResolveMaterials(materials []Material) []ResolvedMaterial {
	out := make([]ResolvedMaterial, 0, len(materials))
	for _, m := range materials {
		rm := ResolvedMaterial{Material: m, Name: FallbackName(m.ID), Kind: KindUnknown}
		if obj, ok := r.byID[m.ID]; ok {
			base := obj.ObjectBase()
			rm.Name = base.Name
			rm.Icon = base.Icon
			rm.Kind = r.kindOf[m.ID]
			rm.Found = true
		}
		out = append(out, rm)
	}
	return out
}

// GroupByKind buckets resolved materials by kind in display order, unknown
// materials last. Empty groups are omitted.
func GroupByKind(resolved []ResolvedMaterial) []MaterialGroup {
	order := append(SupportedKinds(), KindUnknown)
	buckets := make(map[Kind][]ResolvedMaterial, len(order))
	for _, rm := range resolved {
		buckets[rm.Kind] = append(buckets[rm.Kind], rm)
	}
	out := make([]MaterialGroup, 0, len(buckets))
	for _, k := range order {
		if len(buckets[k]) == 0 {
			continue
		}
		out = append(out, MaterialGroup{Kind: k, Materials: buckets[k]})
	}
	return out
}

// FallbackName turns an id such as "iron_ore" into "Iron Ore".
func FallbackName(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

type PlanOptions struct {
	// Expand replaces bar materials with the ores they are smelted from.
	Expand bool
}

type MaterialPlan struct {
	ItemID    string             `json:"item_id"`
	ItemName  string             `json:"item_name"`
	Count     int                `json:"count"`
	Materials []ResolvedMaterial `json:"materials"`
	Groups    []MaterialGroup    `json:"groups"`
}

// PlanMaterials totals the materials needed to craft count of itemID.
func (r *Registry) PlanMaterials(itemID string, count int, opts PlanOptions) (MaterialPlan, error) {
	if count <= 0 {
		return MaterialPlan{}, ErrInvalidQuantity
	}
	obj, ok := r.byID[itemID]
	if !ok {
		return MaterialPlan{}, ErrUnknownObject
	}
	materials := MaterialsOf(obj)
	if len(materials) == 0 {
		return MaterialPlan{}, ErrNotCraftable
	}

	totals := map[string]int{}
	var order []string
	add := func(id string, qty int) {
		if _, ok := totals[id]; !ok {
			order = append(order, id)
		}
		totals[id] += qty
	}
	for _, m := range materials {
		need := m.Quantity * count
		if bar, ok := r.Bar(m.ID); ok && opts.Expand && len(bar.Materials) > 0 {
			for _, ore := range bar.Materials {
				add(ore.ID, ore.Quantity*need)
			}
			continue
		}
		add(m.ID, need)
	}

	flat := make([]Material, 0, len(order))
	for _, id := range order {
		flat = append(flat, Material{ID: id, Quantity: totals[id]})
	}
	resolved := r.ResolveMaterials(flat)
	return MaterialPlan{
		ItemID:    itemID,
		ItemName:  obj.ObjectBase().Name,
		Count:     count,
		Materials: resolved,
		Groups:    GroupByKind(resolved),
	}, nil
}
