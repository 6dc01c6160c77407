// Package gamedata holds the hand-authored game tables and turns them into a
// catalog.Registry. The tables are embedded; a directory with the same file
// names can be loaded instead.
package gamedata

import (
	"embed"
	"fmt"
	"io/fs"

	"gamecodex/internal/domain/catalog"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// Embedded returns the tables compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Files maps each kind to its table file. Order is registry construction order.
var Files = []struct {
	Kind catalog.Kind
	Name string
}{
	{catalog.KindMonster, "monsters.yaml"},
	{catalog.KindDrop, "drops.yaml"},
	{catalog.KindVegetable, "vegetables.yaml"},
	{catalog.KindPotion, "potions.yaml"},
	{catalog.KindOre, "ores.yaml"},
	{catalog.KindBar, "bars.yaml"},
	{catalog.KindEquipment, "equipment.yaml"},
	{catalog.KindContainer, "containers.yaml"},
}

// Load reads every table from fsys and builds the registry.
func Load(fsys fs.FS) (*catalog.Registry, error) {
	sources, err := Sources(fsys)
	if err != nil {
		return nil, err
	}
	return catalog.New(sources...)
}

func Sources(fsys fs.FS) ([]catalog.Source, error) {
	out := make([]catalog.Source, 0, len(Files))
	for _, f := range Files {
		src, err := source(fsys, f.Kind, f.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, src)
	}
	return out, nil
}

func source(fsys fs.FS, kind catalog.Kind, name string) (catalog.Source, error) {
	switch kind {
	case catalog.KindMonster:
		return decode(fsys, kind, name, newMonster)
	case catalog.KindPotion:
		return decode(fsys, kind, name, newPotion)
	case catalog.KindVegetable:
		return decode(fsys, kind, name, newVegetable)
	case catalog.KindDrop:
		return decode(fsys, kind, name, newDrop)
	case catalog.KindBar:
		return decode(fsys, kind, name, newBar)
	case catalog.KindOre:
		return decode(fsys, kind, name, newOre)
	case catalog.KindEquipment:
		return decode(fsys, kind, name, newEquipment)
	case catalog.KindContainer:
		return decode(fsys, kind, name, newContainer)
	default:
		return catalog.Source{}, fmt.Errorf("no table for kind %q", kind)
	}
}

func decode[R any](fsys fs.FS, kind catalog.Kind, name string, build func(R) (catalog.Object, error)) (catalog.Source, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return catalog.Source{}, fmt.Errorf("read %s: %w", name, err)
	}
	var records []R
	if err := yaml.Unmarshal(b, &records); err != nil {
		return catalog.Source{}, fmt.Errorf("decode %s: %w", name, err)
	}
	return catalog.FromRecords(kind, records, build), nil
}
