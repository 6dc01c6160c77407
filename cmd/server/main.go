package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"gamecodex/internal/adapter/datafiles"
	httpadapter "gamecodex/internal/adapter/http"
	metricsinmem "gamecodex/internal/adapter/metrics/inmemory"
	gormrepo "gamecodex/internal/adapter/repo/gorm"
	memoryrepo "gamecodex/internal/adapter/repo/memory"
	catalogapp "gamecodex/internal/app/catalog"
	datafilesapp "gamecodex/internal/app/datafiles"
	farmingapp "gamecodex/internal/app/farming"
	"gamecodex/internal/app/ports"
	settingsapp "gamecodex/internal/app/settings"
	"gamecodex/internal/gamedata"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		hlog.Warnf("load .env: %v", err)
	}
	cfg := loadConfig()
	hlog.SetLevel(parseLogLevel(cfg.LogLevel))

	dataFS := resolveDataFS(cfg.DataDir)
	reg, err := gamedata.Load(dataFS)
	if err != nil {
		hlog.Fatalf("load game data: %v", err)
	}
	hlog.Infof("loaded %d game objects across %d kinds", reg.Len(), len(reg.Kinds()))

	store, err := buildSettingsStore(context.Background(), cfg)
	if err != nil {
		hlog.Fatalf("settings store: %v", err)
	}
	hlog.Infof("settings store: %s", store.name)

	kpiRecorder := metricsinmem.NewRecorder()
	h := httpadapter.Handler{
		CatalogUC: catalogapp.UseCase{Registry: reg, Metrics: kpiRecorder},
		FarmingUC: farmingapp.UseCase{Registry: reg, Settings: store.repo, Metrics: kpiRecorder},
		SettingsUC: settingsapp.UseCase{
			TxManager: store.tx,
			Repo:      store.repo,
			Metrics:   kpiRecorder,
		},
		DataUC: datafilesapp.UseCase{Provider: datafiles.Provider{FS: dataFS}, Registry: reg},
		KPI:    kpiRecorder,
	}

	s := server.Default(
		server.WithHostPorts(cfg.Addr),
		server.WithMaxRequestBodySize(cfg.MaxBodyKB*1024),
	)
	h.RegisterRoutes(s)

	hlog.Infof("gamecodex server listening on %s", cfg.Addr)
	s.Spin()
}

type settingsStore struct {
	name string
	repo ports.GameSettingsRepository
	tx   ports.TxManager
}

// buildSettingsStore picks postgres, then sqlite, then process memory,
// depending on which is configured.
func buildSettingsStore(ctx context.Context, cfg config) (settingsStore, error) {
	var (
		db   *gorm.DB
		name string
		err  error
	)
	switch {
	case cfg.DBDSN != "":
		name = "postgres"
		db, err = gormrepo.OpenPostgres(cfg.DBDSN)
	case cfg.SQLitePath != "":
		name = "sqlite " + cfg.SQLitePath
		db, err = gormrepo.OpenSQLite(cfg.SQLitePath)
	default:
		mem := memoryrepo.NewStore()
		return settingsStore{name: "memory", repo: memoryrepo.NewGameSettingsRepo(mem), tx: memoryrepo.NewTxManager(mem)}, nil
	}
	if err != nil {
		return settingsStore{}, err
	}
	if cfg.AutoMigrate {
		applied, err := gormrepo.ApplyMigrations(ctx, db, os.DirFS(cfg.MigrationsDir))
		if err != nil {
			return settingsStore{}, err
		}
		hlog.Infof("applied %d migrations from %s", len(applied), cfg.MigrationsDir)
	}
	return settingsStore{name: name, repo: gormrepo.NewGameSettingsRepo(db), tx: gormrepo.NewTxManager(db)}, nil
}
