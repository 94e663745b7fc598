package main

import (
	"flag"

	"pinmap/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory for generated queries")
	flag.Parse()

	g := gen.NewGenerator(gen.Config{
		OutPath: *outPath,
	})

	g.ApplyBasic(model.BookmarkModel{})

	g.Execute()
}
