package catalog

type Kind string

const (
	KindMonster   Kind = "monster"
	KindPotion    Kind = "potion"
	KindVegetable Kind = "vegetable"
	KindDrop      Kind = "drop"
	KindBar       Kind = "bar"
	KindOre       Kind = "ore"
	KindEquipment Kind = "equipment"
	KindContainer Kind = "container"
)

func SupportedKinds() []Kind {
	return []Kind{
		KindMonster,
		KindPotion,
		KindVegetable,
		KindDrop,
		KindBar,
		KindOre,
		KindEquipment,
		KindContainer,
	}
}

func IsSupportedKind(k Kind) bool {
	for _, kind := range SupportedKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// Base carries the fields every game object shares. IDs are unique across the
// whole registry, not only within a kind.
type Base struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

func (b Base) ObjectBase() Base { return b }

// Object is implemented only by the variants in this package.
type Object interface {
	ObjectBase() Base
	Kind() Kind
	sealed()
}

type Material struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type Monster struct {
	Base
	Floors   []int  `json:"floors"`
	Boss     bool   `json:"boss"`
	LootDrop string `json:"loot_drop,omitempty"`
}

func (Monster) Kind() Kind { return KindMonster }
func (Monster) sealed()    {}

func (m Monster) DisplayFloors() string {
	return FormatFloors(m.Floors)
}

type Potion struct {
	Base
	Effect    string     `json:"effect"`
	Materials []Material `json:"materials"`
	SellPrice *int       `json:"sell_price"`
}

func (Potion) Kind() Kind { return KindPotion }
func (Potion) sealed()    {}

type Vegetable struct {
	Base
	GrowTime  int      `json:"grow_time"`
	BuyPrice  *int     `json:"buy_price"`
	SellPrice *int     `json:"sell_price"`
	Sources   []string `json:"sources,omitempty"`
}

func (Vegetable) Kind() Kind { return KindVegetable }
func (Vegetable) sealed()    {}

type Drop struct {
	Base
	MonsterIDs []string `json:"monster_ids"`
	SellPrice  *int     `json:"sell_price"`
	Sources    []string `json:"sources,omitempty"`
}

func (Drop) Kind() Kind { return KindDrop }
func (Drop) sealed()    {}

func (d Drop) IsDroppedBy(monsterID string) bool {
	for _, id := range d.MonsterIDs {
		if id == monsterID {
			return true
		}
	}
	return false
}

type Bar struct {
	Base
	Materials []Material `json:"materials"`
	SellPrice *int       `json:"sell_price"`
}

func (Bar) Kind() Kind { return KindBar }
func (Bar) sealed()    {}

type Ore struct {
	Base
	Sources   []string `json:"sources,omitempty"`
	SellPrice *int     `json:"sell_price"`
}

func (Ore) Kind() Kind { return KindOre }
func (Ore) sealed()    {}

// Equipment with nil Materials cannot be smithed.
type Equipment struct {
	Base
	Slot      string     `json:"slot"`
	Materials []Material `json:"materials"`
	SellPrice *int       `json:"sell_price"`
}

func (Equipment) Kind() Kind { return KindEquipment }
func (Equipment) sealed()    {}

type Container struct {
	Base
	SellPrice *int `json:"sell_price"`
}

func (Container) Kind() Kind { return KindContainer }
func (Container) sealed()    {}

// SellValue reports the sell price of obj, false when it cannot be sold.
func SellValue(obj Object) (int, bool) {
	var price *int
	switch o := obj.(type) {
	case Potion:
		price = o.SellPrice
	case Vegetable:
		price = o.SellPrice
	case Drop:
		price = o.SellPrice
	case Bar:
		price = o.SellPrice
	case Ore:
		price = o.SellPrice
	case Equipment:
		price = o.SellPrice
	case Container:
		price = o.SellPrice
	}
	if price == nil {
		return 0, false
	}
	return *price, true
}

// MaterialsOf returns the crafting inputs of obj; nil for kinds that are not crafted.
func MaterialsOf(obj Object) []Material {
	switch o := obj.(type) {
	case Potion:
		return o.Materials
	case Bar:
		return o.Materials
	case Equipment:
		return o.Materials
	default:
		return nil
	}
}

func IntPtr(v int) *int {
	return &v
}
