package database

import (
	"fmt"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"coursedesk_backend/internals/configs"
)

var DB *gorm.DB

// DSN builds the postgres URL from cfg with a server-side statement timeout.
func DSN(cfg configs.DBConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Path:   "/" + cfg.Name,
	}
	q := url.Values{}
	q.Set("sslmode", cfg.SSLMode)
	q.Set("application_name", "coursedesk")
	q.Set("options", "-c statement_timeout=3000")
	u.RawQuery = q.Encode()
	return u.String()
}

func ConnectDB() {
	log.Info("🔌 Connecting to PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  DSN(configs.Current.DB),
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ database connection failed: %v", err)
	}
	DB = db
	log.Info("✅ DB connected.")

	if configs.Current.DB.AutoMigrate {
		if err := AutoMigrate(DB); err != nil {
			log.Fatalf("❌ auto migrate failed: %v", err)
		}
		log.Info("✅ schema auto-migrated")
	}
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Warnf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(DB); err != nil {
			log.Warnf("warm-up ping err: %v", err)
			return
		}
		// the course list is the first screen of the dashboard
		if err := DB.Exec("SELECT 1 FROM courses LIMIT 1").Error; err != nil {
			log.Debugf("warm-up query err: %v", err)
		}
	}()
}

func Ping(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database not initialised")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
