package gamedata

import (
	"errors"
	"fmt"

	"gamecodex/internal/domain/catalog"
)

var ErrInvalidRecord = errors.New("invalid game data record")

type materialRecord struct {
	ID       string `yaml:"id"`
	Quantity int    `yaml:"quantity"`
}

type monsterRecord struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Icon     string `yaml:"icon"`
	Floors   []int  `yaml:"floors"`
	Boss     bool   `yaml:"boss"`
	LootDrop string `yaml:"loot_drop"`
}

type potionRecord struct {
	ID        string           `yaml:"id"`
	Name      string           `yaml:"name"`
	Icon      string           `yaml:"icon"`
	Effect    string           `yaml:"effect"`
	Materials []materialRecord `yaml:"materials"`
	SellPrice *int             `yaml:"sell_price"`
}

type vegetableRecord struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Icon      string   `yaml:"icon"`
	GrowTime  int      `yaml:"grow_time"`
	BuyPrice  *int     `yaml:"buy_price"`
	SellPrice *int     `yaml:"sell_price"`
	Sources   []string `yaml:"sources"`
}

type dropRecord struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Icon       string   `yaml:"icon"`
	MonsterIDs []string `yaml:"monster_ids"`
	SellPrice  *int     `yaml:"sell_price"`
	Sources    []string `yaml:"sources"`
}

type barRecord struct {
	ID        string           `yaml:"id"`
	Name      string           `yaml:"name"`
	Icon      string           `yaml:"icon"`
	Materials []materialRecord `yaml:"materials"`
	SellPrice *int             `yaml:"sell_price"`
}

type oreRecord struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Icon      string   `yaml:"icon"`
	Sources   []string `yaml:"sources"`
	SellPrice *int     `yaml:"sell_price"`
}

type equipmentRecord struct {
	ID        string           `yaml:"id"`
	Name      string           `yaml:"name"`
	Icon      string           `yaml:"icon"`
	Slot      string           `yaml:"slot"`
	Materials []materialRecord `yaml:"materials"`
	SellPrice *int             `yaml:"sell_price"`
}

type containerRecord struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Icon      string `yaml:"icon"`
	SellPrice *int   `yaml:"sell_price"`
}

func newMonster(r monsterRecord) (catalog.Object, error) {
	for _, f := range r.Floors {
		if f <= 0 {
			return nil, fmt.Errorf("%w: monster %q has floor %d", ErrInvalidRecord, r.ID, f)
		}
	}
	return catalog.Monster{
		Base:     catalog.Base{ID: r.ID, Name: r.Name, Icon: r.Icon},
		Floors:   r.Floors,
		Boss:     r.Boss,
		LootDrop: r.LootDrop,
	}, nil
}

func newPotion(r potionRecord) (catalog.Object, error) {
	materials, err := toMaterials(r.ID, r.Materials)
	if err != nil {
		return nil, err
	}
	return catalog.Potion{
		Base:      catalog.Base{ID: r.ID, Name: r.Name, Icon: r.Icon},
		Effect:    r.Effect,
		Materials: materials,
		SellPrice: r.SellPrice,
	}, nil
}

func newVegetable(r vegetableRecord) (catalog.Object, error) {
	if r.GrowTime <= 0 {
		return nil, fmt.Errorf("%w: vegetable %q has grow_time %d", ErrInvalidRecord, r.ID, r.GrowTime)
	}
	return catalog.Vegetable{
		Base:      catalog.Base{ID: r.ID, Name: r.Name, Icon: r.Icon},
		GrowTime:  r.GrowTime,
		BuyPrice:  r.BuyPrice,
		SellPrice: r.SellPrice,
		Sources:   r.Sources,
	}, nil
}

func newDrop(r dropRecord) (catalog.Object, error) {
	return catalog.Drop{
		Base:       catalog.Base{ID: r.ID, Name: r.Name, Icon: r.Icon},
		MonsterIDs: r.MonsterIDs,
		SellPrice:  r.SellPrice,
		Sources:    r.Sources,
	}, nil
}

func newBar(r barRecord) (catalog.Object, error) {
	materials, err := toMaterials(r.ID, r.Materials)
	if err != nil {
		return nil, err
	}
	return catalog.Bar{
		Base:      catalog.Base{ID: r.ID, Name: r.Name, Icon: r.Icon},
		Materials: materials,
		SellPrice: r.SellPrice,
	}, nil
}

func newOre(r oreRecord) (catalog.Object, error) {
	return catalog.Ore{
		Base:      catalog.Base{ID: r.ID, Name: r.Name, Icon: r.Icon},
		Sources:   r.Sources,
		SellPrice: r.SellPrice,
	}, nil
}

func newEquipment(r equipmentRecord) (catalog.Object, error) {
	materials, err := toMaterials(r.ID, r.Materials)
	if err != nil {
		return nil, err
	}
	return catalog.Equipment{
		Base:      catalog.Base{ID: r.ID, Name: r.Name, Icon: r.Icon},
		Slot:      r.Slot,
		Materials: materials,
		SellPrice: r.SellPrice,
	}, nil
}

func newContainer(r containerRecord) (catalog.Object, error) {
	return catalog.Container{
		Base:      catalog.Base{ID: r.ID, Name: r.Name, Icon: r.Icon},
		SellPrice: r.SellPrice,
	}, nil
}

func toMaterials(owner string, in []materialRecord) ([]catalog.Material, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]catalog.Material, 0, len(in))
	for _, m := range in {
		if m.ID == "" {
			return nil, fmt.Errorf("%w: %q has a material without id", ErrInvalidRecord, owner)
		}
		if m.Quantity <= 0 {
			return nil, fmt.Errorf("%w: %q needs %d of %q", ErrInvalidRecord, owner, m.Quantity, m.ID)
		}
		out = append(out, catalog.Material{ID: m.ID, Quantity: m.Quantity})
	}
	return out, nil
}
