package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gamecodex/internal/adapter/datafiles"
	pdfexport "gamecodex/internal/adapter/export/pdf"
	catalogapp "gamecodex/internal/app/catalog"
	datafilesapp "gamecodex/internal/app/datafiles"
	farmingapp "gamecodex/internal/app/farming"
	"gamecodex/internal/app/ports"
	settingsapp "gamecodex/internal/app/settings"
	catalogdomain "gamecodex/internal/domain/catalog"
	farmingdomain "gamecodex/internal/domain/farming"
	settingsdomain "gamecodex/internal/domain/settings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJSON  = errors.New("invalid json")
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidQuery = errors.New("invalid query parameter")
)

type Handler struct {
	CatalogUC  catalogapp.UseCase
	FarmingUC  farmingapp.UseCase
	SettingsUC settingsapp.UseCase
	DataUC     datafilesapp.UseCase
	KPI        kpiSnapshotProvider
	Now        func() time.Time
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.GET("/objects/:id", h.getObject)
	api.POST("/objects/batch", h.batchObjects)
	api.GET("/kinds/:kind", h.listKind)
	api.GET("/monsters/:id/drops", h.monsterDrops)
	api.GET("/ores/:id/bars", h.oreBars)
	api.GET("/drops/:id/floors", h.dropFloors)
	api.GET("/materials/:id/used-in", h.usedIn)
	api.GET("/search", h.search)
	api.GET("/plan/:id", h.plan)

	api.POST("/farming/analysis", h.analyze)
	api.GET("/farming/analysis.pdf", h.analysisPDF)

	api.GET("/data", h.dataIndex)
	api.GET("/data/:file", h.dataFile)

	api.GET("/settings/:profile", h.getSettings)
	api.POST("/settings/:profile", h.updateSettings)

	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) getObject(c context.Context, ctx *app.RequestContext) {
	resp, err := h.CatalogUC.Get(c, catalogapp.GetRequest{ID: ctx.Param("id")})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listKind(c context.Context, ctx *app.RequestContext) {
	resp, err := h.CatalogUC.List(c, catalogapp.ListRequest{Kind: catalogdomain.Kind(ctx.Param("kind"))})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) batchObjects(c context.Context, ctx *app.RequestContext) {
	var body catalogapp.BatchRequest
	if err := decodeJSON(ctx, &body, "kind", "ids"); err != nil {
		writeError(c, ctx, err)
		return
	}
	resp, err := h.CatalogUC.Batch(c, body)
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) monsterDrops(c context.Context, ctx *app.RequestContext) {
	resp, err := h.CatalogUC.DropsByMonster(c, ctx.Param("id"))
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) oreBars(c context.Context, ctx *app.RequestContext) {
	resp, err := h.CatalogUC.BarsFromOre(c, ctx.Param("id"))
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) dropFloors(c context.Context, ctx *app.RequestContext) {
	resp, err := h.CatalogUC.DropFloors(c, ctx.Param("id"))
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) usedIn(c context.Context, ctx *app.RequestContext) {
	resp, err := h.CatalogUC.UsedIn(c, ctx.Param("id"))
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) search(c context.Context, ctx *app.RequestContext) {
	limit, err := intQuery(ctx, "limit", 0)
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	resp, err := h.CatalogUC.Search(c, catalogapp.SearchRequest{
		Query: string(ctx.Query("q")),
		Limit: limit,
	})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) plan(c context.Context, ctx *app.RequestContext) {
	count, err := intQuery(ctx, "count", 1)
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	expand, err := boolQuery(ctx, "expand")
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	resp, err := h.CatalogUC.Plan(c, catalogapp.PlanRequest{
		ItemID: ctx.Param("id"),
		Count:  count,
		Expand: expand,
	})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type analysisRequest struct {
	ProfileID string                    `json:"profile_id"`
	Config    *farmingdomain.FarmConfig `json:"config"`
}

func (h Handler) analyze(c context.Context, ctx *app.RequestContext) {
	var body analysisRequest
	if err := decodeJSON(ctx, &body, "profile_id", "config"); err != nil {
		writeError(c, ctx, err)
		return
	}
	resp, err := h.FarmingUC.Analyze(c, farmingapp.Request{ProfileID: body.ProfileID, Config: body.Config})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) analysisPDF(c context.Context, ctx *app.RequestContext) {
	resp, err := h.FarmingUC.Analyze(c, farmingapp.Request{ProfileID: string(ctx.Query("profile_id"))})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	nowFn := h.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	var buf bytes.Buffer
	err = pdfexport.WriteRanking(&buf, pdfexport.Report{
		ProfileID:   resp.ProfileID,
		Config:      resp.Config,
		Ranking:     resp.Ranking,
		GeneratedAt: nowFn().UTC(),
	})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="crop-profitability.pdf"`)
	ctx.Data(consts.StatusOK, "application/pdf", buf.Bytes())
}

func (h Handler) getSettings(c context.Context, ctx *app.RequestContext) {
	resp, err := h.SettingsUC.Get(c, settingsapp.GetRequest{ProfileID: ctx.Param("profile")})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type settingsUpdateRequest struct {
	TotalPlots    *int  `json:"total_plots"`
	Fertilised    *bool `json:"fertilised"`
	CauldronLevel *int  `json:"cauldron_level"`
	Version       int64 `json:"version"`
}

func (h Handler) updateSettings(c context.Context, ctx *app.RequestContext) {
	var body settingsUpdateRequest
	if err := decodeJSON(ctx, &body, "total_plots", "fertilised", "cauldron_level", "version"); err != nil {
		writeError(c, ctx, err)
		return
	}
	if !gjson.GetBytes(ctx.Request.Body(), "version").Exists() {
		writeErrorBody(ctx, consts.StatusBadRequest, "version_required", "version is required")
		return
	}
	resp, err := h.SettingsUC.Update(c, settingsapp.UpdateRequest{
		ProfileID: ctx.Param("profile"),
		Version:   body.Version,
		Patch: settingsdomain.Patch{
			TotalPlots:    body.TotalPlots,
			Fertilised:    body.Fertilised,
			CauldronLevel: body.CauldronLevel,
		},
	})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) dataIndex(c context.Context, ctx *app.RequestContext) {
	resp, err := h.DataUC.Index(c)
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) dataFile(c context.Context, ctx *app.RequestContext) {
	b, err := h.DataUC.File(c, ctx.Param("file"))
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.Data(consts.StatusOK, "application/yaml; charset=utf-8", b)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

// decodeJSON unmarshals the request body into out. An empty body leaves out
// untouched; top-level keys outside allowed are rejected.
func decodeJSON(ctx *app.RequestContext, out any, allowed ...string) error {
	body := ctx.Request.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if !gjson.ValidBytes(body) {
		return ErrInvalidJSON
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return ErrInvalidJSON
	}
	if field, ok := unknownField(root, allowed); ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return nil
}

func unknownField(root gjson.Result, allowed []string) (string, bool) {
	var unknown string
	root.ForEach(func(key, _ gjson.Result) bool {
		for _, a := range allowed {
			if key.String() == a {
				return true
			}
		}
		unknown = key.String()
		return false
	})
	return unknown, unknown != ""
}

func intQuery(ctx *app.RequestContext, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(string(ctx.Query(key)))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQuery, key, raw)
	}
	return n, nil
}

func boolQuery(ctx *app.RequestContext, key string) (bool, error) {
	raw := strings.TrimSpace(string(ctx.Query(key)))
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidQuery, key, raw)
	}
	return b, nil
}

func writeError(c context.Context, ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrInvalidJSON):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", err.Error())
	case errors.Is(err, ErrUnknownField):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_field", err.Error())
	case errors.Is(err, ErrInvalidQuery):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_query", err.Error())
	case errors.Is(err, catalogapp.ErrUnknownKind):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_kind", err.Error())
	case errors.Is(err, farmingdomain.ErrInvalidFarmConfig):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_farm_config", err.Error())
	case errors.Is(err, datafiles.ErrInvalidDataPath):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_path", err.Error())
	case errors.Is(err, catalogapp.ErrInvalidRequest),
		errors.Is(err, farmingapp.ErrInvalidRequest),
		errors.Is(err, datafilesapp.ErrInvalidRequest),
		errors.Is(err, settingsapp.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "version_conflict", err.Error())
	default:
		hlog.CtxErrorf(c, "%s %s: %v", ctx.Method(), ctx.Path(), err)
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
