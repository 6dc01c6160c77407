package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gamecodex/internal/app/ports"
	catalogdomain "gamecodex/internal/domain/catalog"
)

var (
	ErrInvalidRequest = errors.New("invalid catalog request")
	ErrUnknownKind    = errors.New("unknown object kind")
)

const maxBatchIDs = 200

type UseCase struct {
	Registry *catalogdomain.Registry
	Metrics  ports.LookupMetrics
}

func (u UseCase) Get(_ context.Context, req GetRequest) (GetResponse, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return GetResponse{}, ErrInvalidRequest
	}
	obj, ok := u.Registry.Get(id)
	u.record("object", ok)
	if !ok {
		return GetResponse{}, fmt.Errorf("object %q: %w", id, ports.ErrNotFound)
	}
	return GetResponse{ObjectView: view(obj)}, nil
}

func (u UseCase) List(_ context.Context, req ListRequest) (ListResponse, error) {
	kind := catalogdomain.Kind(strings.TrimSpace(string(req.Kind)))
	if !catalogdomain.IsSupportedKind(kind) {
		return ListResponse{}, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}
	objects := u.Registry.AllOfKind(kind)
	u.record(string(kind), true)
	return ListResponse{Kind: kind, Objects: objects}, nil
}

// Batch resolves ids in request order. With a kind set, ids of other kinds
// count as missing.
func (u UseCase) Batch(_ context.Context, req BatchRequest) (BatchResponse, error) {
	if len(req.IDs) == 0 || len(req.IDs) > maxBatchIDs {
		return BatchResponse{}, ErrInvalidRequest
	}
	kind := catalogdomain.Kind(strings.TrimSpace(string(req.Kind)))
	if kind != "" && !catalogdomain.IsSupportedKind(kind) {
		return BatchResponse{}, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}

	out := BatchResponse{Objects: []ObjectView{}, Missing: []string{}}
	for _, id := range req.IDs {
		obj, ok := u.Registry.Get(id)
		if !ok || (kind != "" && obj.Kind() != kind) {
			out.Missing = append(out.Missing, id)
			continue
		}
		out.Objects = append(out.Objects, view(obj))
	}
	u.record("batch", len(out.Missing) == 0)
	return out, nil
}

func (u UseCase) DropsByMonster(_ context.Context, monsterID string) (DropsResponse, error) {
	monsterID = strings.TrimSpace(monsterID)
	if monsterID == "" {
		return DropsResponse{}, ErrInvalidRequest
	}
	drops := u.Registry.DropsByMonsterID(monsterID)
	u.record("drops", len(drops) > 0)
	return DropsResponse{MonsterID: monsterID, Drops: drops}, nil
}

func (u UseCase) BarsFromOre(_ context.Context, oreID string) (BarsResponse, error) {
	oreID = strings.TrimSpace(oreID)
	if oreID == "" {
		return BarsResponse{}, ErrInvalidRequest
	}
	bars := u.Registry.BarsFromOre(oreID)
	u.record("bars", len(bars) > 0)
	return BarsResponse{OreID: oreID, Bars: bars}, nil
}

func (u UseCase) DropFloors(_ context.Context, dropID string) (FloorsResponse, error) {
	dropID = strings.TrimSpace(dropID)
	if dropID == "" {
		return FloorsResponse{}, ErrInvalidRequest
	}
	if _, ok := u.Registry.Drop(dropID); !ok {
		u.record("floors", false)
		return FloorsResponse{}, fmt.Errorf("drop %q: %w", dropID, ports.ErrNotFound)
	}
	floors := u.Registry.FloorsByDropID(dropID)
	u.record("floors", true)
	return FloorsResponse{
		DropID:    dropID,
		Floors:    floors,
		Formatted: catalogdomain.FormatFloors(floors),
	}, nil
}

func (u UseCase) UsedIn(_ context.Context, materialID string) (UsedInResponse, error) {
	materialID = strings.TrimSpace(materialID)
	if materialID == "" {
		return UsedInResponse{}, ErrInvalidRequest
	}
	items := u.Registry.UsedIn(materialID)
	views := make([]ObjectView, 0, len(items))
	for _, obj := range items {
		views = append(views, view(obj))
	}
	u.record("used_in", len(views) > 0)
	return UsedInResponse{MaterialID: materialID, Items: views}, nil
}

func (u UseCase) Search(_ context.Context, req SearchRequest) (SearchResponse, error) {
	q := strings.TrimSpace(req.Query)
	if q == "" || req.Limit < 0 {
		return SearchResponse{}, ErrInvalidRequest
	}
	hits := u.Registry.Search(q, req.Limit)
	u.record("search", len(hits) > 0)
	return SearchResponse{Query: q, Hits: hits}, nil
}

func (u UseCase) Plan(_ context.Context, req PlanRequest) (PlanResponse, error) {
	id := strings.TrimSpace(req.ItemID)
	if id == "" {
		return PlanResponse{}, ErrInvalidRequest
	}
	plan, err := u.Registry.PlanMaterials(id, req.Count, catalogdomain.PlanOptions{Expand: req.Expand})
	switch {
	case errors.Is(err, catalogdomain.ErrUnknownObject):
		u.record("plan", false)
		return PlanResponse{}, fmt.Errorf("item %q: %w", id, ports.ErrNotFound)
	case err != nil:
		return PlanResponse{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	u.record("plan", true)
	return PlanResponse{MaterialPlan: plan}, nil
}

func (u UseCase) record(kind string, found bool) {
	if u.Metrics != nil {
		u.Metrics.RecordLookup(kind, found)
	}
}

func view(obj catalogdomain.Object) ObjectView {
	return ObjectView{Kind: obj.Kind(), Object: obj}
}
