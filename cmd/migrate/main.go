package main

import (
	"database/sql"
	"flag"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"coursedesk_backend/internals/configs"
	database "coursedesk_backend/internals/databases"
	"coursedesk_backend/internals/seeds"
)

func main() {
	down := flag.Int("down", 0, "roll back N migrations instead of migrating up")
	seed := flag.Bool("seed", false, "insert seed data after migrating")
	flag.Parse()

	configs.LoadEnv()
	log.Info("starting migrate")

	db, err := sql.Open("postgres", database.DSN(configs.Current.DB))
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			log.Errorf("closing the db: %v", err)
		}
	}(db)

	source, err := iofs.New(database.Migrations, "migrations")
	if err != nil {
		log.Fatal(err)
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal(err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		log.Fatal(err)
	}

	if *down > 0 {
		err = m.Steps(-*down)
	} else {
		err = m.Up()
	}
	if err != nil && err != migrate.ErrNoChange {
		log.Fatal(err)
	}
	version, dirty, _ := m.Version()
	log.WithFields(log.Fields{"version": version, "dirty": dirty}).Info("✅ migrations complete")

	if !*seed {
		return
	}
	gdb, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("open gorm: %v", err)
	}
	if err := seeds.RunAllSeeds(gdb, configs.Current.SeedFile); err != nil {
		log.Fatalf("❌ seeding failed: %v", err)
	}
	log.Info("✅ seed complete")
}
