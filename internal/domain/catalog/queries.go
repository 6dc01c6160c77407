package catalog

// The queries below scan the relevant kind on every call. The dataset is a
// few hundred objects; build reverse indexes in New if that changes.

// DropsByMonsterID returns every drop whose monster list contains monsterID.
func (r *Registry) DropsByMonsterID(monsterID string) []Drop {
	out := []Drop{}
	for _, d := range AllOf[Drop](r) {
		if d.IsDroppedBy(monsterID) {
			out = append(out, d)
		}
	}
	return out
}

// BarsFromOre returns every bar smelted from oreID.
func (r *Registry) BarsFromOre(oreID string) []Bar {
	out := []Bar{}
	for _, b := range AllOf[Bar](r) {
		if hasMaterial(b.Materials, oreID) {
			out = append(out, b)
		}
	}
	return out
}

// FloorsByDropID unions the floors of every monster that yields dropID, either
// listed on the drop or pointing at it through its loot drop.
func (r *Registry) FloorsByDropID(dropID string) []int {
	drop, ok := r.Drop(dropID)
	if !ok {
		return []int{}
	}
	var floors []int
	seen := map[string]bool{}
	for _, id := range drop.MonsterIDs {
		if m, ok := r.Monster(id); ok && !seen[id] {
			seen[id] = true
			floors = append(floors, m.Floors...)
		}
	}
	for _, m := range AllOf[Monster](r) {
		if m.LootDrop == dropID && !seen[m.ID] {
			seen[m.ID] = true
			floors = append(floors, m.Floors...)
		}
	}
	return normalizeFloors(floors)
}

func (r *Registry) FormattedFloorsByDropID(dropID string) string {
	return FormatFloors(r.FloorsByDropID(dropID))
}

// UsedIn lists every crafted object that takes materialID as an input.
func (r *Registry) UsedIn(materialID string) []Object {
	out := []Object{}
	for _, kind := range []Kind{KindPotion, KindBar, KindEquipment} {
		for _, obj := range r.AllOfKind(kind) {
			if hasMaterial(MaterialsOf(obj), materialID) {
				out = append(out, obj)
			}
		}
	}
	return out
}

func hasMaterial(materials []Material, id string) bool {
	for _, m := range materials {
		if m.ID == id {
			return true
		}
	}
	return false
}
