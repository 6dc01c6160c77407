package catalog

import catalogdomain "gamecodex/internal/domain/catalog"

// ObjectView pairs an object with its kind so callers can tell variants apart
// after JSON encoding.
type ObjectView struct {
	Kind   catalogdomain.Kind   `json:"kind"`
	Object catalogdomain.Object `json:"object"`
}

type GetRequest struct {
	ID string
}

type GetResponse struct {
	ObjectView
}

type ListRequest struct {
	Kind catalogdomain.Kind
}

type ListResponse struct {
	Kind    catalogdomain.Kind     `json:"kind"`
	Objects []catalogdomain.Object `json:"objects"`
}

type BatchRequest struct {
	Kind catalogdomain.Kind `json:"kind,omitempty"`
	IDs  []string           `json:"ids"`
}

type BatchResponse struct {
	Objects []ObjectView `json:"objects"`
	Missing []string     `json:"missing"`
}

type DropsResponse struct {
	MonsterID string               `json:"monster_id"`
	Drops     []catalogdomain.Drop `json:"drops"`
}

type BarsResponse struct {
	OreID string              `json:"ore_id"`
	Bars  []catalogdomain.Bar `json:"bars"`
}

type FloorsResponse struct {
	DropID    string `json:"drop_id"`
	Floors    []int  `json:"floors"`
	Formatted string `json:"formatted"`
}

type UsedInResponse struct {
	MaterialID string       `json:"material_id"`
	Items      []ObjectView `json:"items"`
}

type SearchRequest struct {
	Query string
	Limit int
}

type SearchResponse struct {
	Query string                    `json:"query"`
	Hits  []catalogdomain.SearchHit `json:"hits"`
}

type PlanRequest struct {
	ItemID string
	Count  int
	Expand bool
}

type PlanResponse struct {
	catalogdomain.MaterialPlan
}
