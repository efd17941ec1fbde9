package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"studio-booking-server/config"
	"studio-booking-server/models"
)

var DB *gorm.DB

// Initialize sets up the database connection and runs migrations.
// A Postgres URL in DB_URL wins; otherwise the SQLite file from
// SQLITE_DB is used (created along with its directory if missing).
func Initialize() error {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	var dialector gorm.Dialector
	if url := config.AppConfig.Database.URL; url != "" {
		dialector = postgres.Open(url)
	} else {
		path := config.AppConfig.Database.SQLitePath
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(path + "?_foreign_keys=on&_journal_mode=WAL")
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("✅ Successfully connected to database")

	if err := RunMigrations(DB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("✅ Database migrations completed successfully")

	return nil
}

// RunMigrations creates or updates database tables. Exported so tests
// can run the same schema against their own connection.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.Client{},
		&models.PasswordToken{},
		&models.Staff{},
		&models.Event{},
		&models.EventStaffAssignment{},
		&models.EventCancellation{},
		&models.Payment{},
		&models.Notification{},
		&models.Gallery{},
		&models.Album{},
		&models.GalleryMedia{},
		&models.StudioProfile{},
	); err != nil {
		return err
	}

	// Older deployments predate some event columns; patch them in
	// additively rather than failing on schema drift.
	if err := migrateEventsTable(db); err != nil {
		return err
	}

	if err := migrateClientsTable(db); err != nil {
		return err
	}

	return nil
}

// migrateEventsTable handles event columns added after the initial schema
func migrateEventsTable(db *gorm.DB) error {
	type patch struct {
		column string
		ddl    string
	}

	patches := []patch{
		{"paid_amount", "ALTER TABLE events ADD COLUMN paid_amount REAL DEFAULT 0"},
		{"advance", "ALTER TABLE events ADD COLUMN advance REAL DEFAULT 0"},
		{"amount_status", "ALTER TABLE events ADD COLUMN amount_status INTEGER DEFAULT 0"},
		{"stage", "ALTER TABLE events ADD COLUMN stage TEXT DEFAULT 'ENQUIRY'"},
		{"venue", "ALTER TABLE events ADD COLUMN venue TEXT"},
		{"guest_count", "ALTER TABLE events ADD COLUMN guest_count INTEGER"},
		{"enquiry_message", "ALTER TABLE events ADD COLUMN enquiry_message TEXT"},
		{"source", "ALTER TABLE events ADD COLUMN source TEXT DEFAULT 'WEBSITE'"},
	}

	for _, p := range patches {
		if db.Migrator().HasColumn(&models.Event{}, p.column) {
			continue
		}
		if err := db.Exec(p.ddl).Error; err != nil {
			return err
		}
		log.Printf("✅ events.%s column ensured", p.column)
	}

	// Events created before amount tracking default to unpaid.
	if err := db.Exec("UPDATE events SET amount_status = 0 WHERE amount_status IS NULL").Error; err != nil {
		log.Printf("⚠️  Could not backfill amount_status: %v", err)
	}

	return nil
}

// migrateClientsTable handles the client portal columns
func migrateClientsTable(db *gorm.DB) error {
	if !db.Migrator().HasColumn(&models.Client{}, "password_hash") {
		if err := db.Exec("ALTER TABLE clients ADD COLUMN password_hash TEXT").Error; err != nil {
			return err
		}
		log.Println("✅ clients.password_hash column ensured")
	}

	if !db.Migrator().HasColumn(&models.Client{}, "is_account_active") {
		if err := db.Exec("ALTER TABLE clients ADD COLUMN is_account_active INTEGER DEFAULT 0").Error; err != nil {
			return err
		}
		log.Println("✅ clients.is_account_active column ensured")
	}

	return nil
}

func GetDB() *gorm.DB {
	return DB
}
