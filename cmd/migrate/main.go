package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	"github.com/atelier-dourado/backoffice/pkg/configuration"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	dir := flag.String("dir", "migrations", "directory with migration files")
	flag.Parse()

	command := "up"
	if args := flag.Args(); len(args) > 0 {
		command = args[0]
	}

	conf := configuration.Use()
	db, err := sql.Open("pgx", conf.Database.ConnectionString())
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("set dialect: %v", err)
	}

	var extra []string
	if args := flag.Args(); len(args) > 1 {
		extra = args[1:]
	}
	if err := goose.RunContext(context.Background(), command, db, *dir, extra...); err != nil {
		log.Fatalf("goose %s: %v", command, err)
	}
}
