package main

import (
	"flag"
	"log"

	"github.com/dapittriandi/simdor-service/pkg/config"
	"github.com/dapittriandi/simdor-service/pkg/database/postgresql"
	"github.com/dapittriandi/simdor-service/seeders"
)

func main() {
	runUsers := flag.Bool("users", false, "seed the default user accounts")
	runAll := flag.Bool("all", false, "run every seeder")
	flag.Parse()

	if !*runUsers && !*runAll {
		log.Println("no seeder selected")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAll || *runUsers {
		seeders.SeedUsers(dbPool)
	}
}
