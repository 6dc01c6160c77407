package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gen"
	"gorm.io/gorm"
)

func main() {
	var dsn, out, tables string
	flag.StringVar(&dsn, "dsn", os.Getenv("CODEX_DB_DSN"), "postgres dsn")
	flag.StringVar(&out, "out", "internal/adapter/repo/gorm/model", "output dir for generated models")
	flag.StringVar(&tables, "tables", "game_settings", "comma separated tables to generate models for")
	flag.Parse()

	if dsn == "" {
		log.Fatal("missing --dsn or CODEX_DB_DSN")
	}
	names := splitTables(tables)
	if len(names) == 0 {
		log.Fatal("no tables given")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:      out,
		ModelPkgPath: "model",
		Mode:         gen.WithoutContext,
	})
	g.UseDB(db)
	for _, name := range names {
		g.GenerateModel(name)
	}
	g.Execute()

	fmt.Printf("generated %d gorm models at %s\n", len(names), out)
}

func splitTables(raw string) []string {
	var out []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" && t != "schema_migrations" {
			out = append(out, t)
		}
	}
	return out
}
