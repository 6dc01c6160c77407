package farming

import "gamecodex/internal/domain/catalog"

// JoinVegetablesToPotions pairs each vegetable with the best sellable potion
// that uses it. Potions without a positive sell price are ignored. When
// several potions qualify the highest price wins, then the lowest potion id.
// Vegetables with no qualifying potion are left out.
func JoinVegetablesToPotions(reg *catalog.Registry) []Crop {
	potions := catalog.AllOf[catalog.Potion](reg)
	out := []Crop{}
	for _, veg := range catalog.AllOf[catalog.Vegetable](reg) {
		var (
			best   catalog.Potion
			amount int
			found  bool
		)
		for _, p := range potions {
			if p.SellPrice == nil || *p.SellPrice <= 0 {
				continue
			}
			qty := quantityOf(p.Materials, veg.ID)
			if qty <= 0 {
				continue
			}
			if found && !betterPotion(p, best) {
				continue
			}
			best, amount, found = p, qty, true
		}
		if !found {
			continue
		}
		out = append(out, Crop{
			Name:         veg.Name,
			VegetableID:  veg.ID,
			GrowTime:     veg.GrowTime,
			AmountNeeded: amount,
			PotionID:     best.ID,
			PotionName:   best.Name,
			PotionPrice:  *best.SellPrice,
		})
	}
	return out
}

func betterPotion(p, current catalog.Potion) bool {
	if *p.SellPrice != *current.SellPrice {
		return *p.SellPrice > *current.SellPrice
	}
	return p.ID < current.ID
}

func quantityOf(materials []catalog.Material, id string) int {
	total := 0
	for _, m := range materials {
		if m.ID == id {
			total += m.Quantity
		}
	}
	return total
}
