package catalog

import "testing"

func TestSearch_RanksExactBeforePrefixBeforeFuzzy(t *testing.T) {
	reg := testRegistry(t)

	hits := reg.Search("copper", 10)
	if len(hits) < 2 {
		t.Fatalf("expected copper hits, got %d", len(hits))
	}
	for _, h := range hits[:2] {
		if h.Match != "prefix" {
			t.Fatalf("expected prefix matches first, got %+v", h)
		}
	}
	if hits[0].Object.ObjectBase().ID != "copper_bar" {
		t.Fatalf("expected name order to break ties, got %s", hits[0].Object.ObjectBase().ID)
	}

	exact := reg.Search("Slime", 10)
	if len(exact) == 0 || exact[0].Match != "exact" || exact[0].Kind != KindMonster {
		t.Fatalf("expected exact slime first, got %+v", exact)
	}
}

func TestSearch_ToleratesTypos(t *testing.T) {
	reg := testRegistry(t)
	hits := reg.Search("golme", 5)
	if len(hits) == 0 {
		t.Fatalf("expected fuzzy hit for golme")
	}
	if hits[0].Object.ObjectBase().ID != "golem" || hits[0].Match != "fuzzy" {
		t.Fatalf("unexpected top hit: %+v", hits[0])
	}
}

func TestSearch_EmptyQueryAndLimit(t *testing.T) {
	reg := testRegistry(t)
	if got := reg.Search("   ", 5); len(got) != 0 {
		t.Fatalf("expected no hits for blank query, got %d", len(got))
	}
	if got := reg.Search("o", 1); len(got) != 1 {
		t.Fatalf("expected limit to cap hits, got %d", len(got))
	}
}

func TestSearch_KeepsNonASCIILetters(t *testing.T) {
	reg := MustNew(FromObjects(KindVegetable,
		Vegetable{Base: Base{ID: "jalapeno", Name: "Jalapeño"}, GrowTime: 10},
		Vegetable{Base: Base{ID: "japan_leek", Name: "Japan Leek"}, GrowTime: 10},
	))
	hits := reg.Search("jalapeño", 5)
	if len(hits) == 0 || hits[0].Match != "exact" || hits[0].Object.ObjectBase().ID != "jalapeno" {
		t.Fatalf("expected exact jalapeño hit, got %+v", hits)
	}
	if got := normaliseName("  Crème-Brûlée  "); got != "crème brûlée" {
		t.Fatalf("normaliseName mismatch: got=%q want=%q", got, "crème brûlée")
	}
}
