package configs

import (
	"fmt"
	"log"
	"time"

	"github.com/Diyary311/onlineMenu/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	connectAttempts = 5
	connectBackoff  = 5 * time.Second
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the database selected by the config: postgres when
// DATABASE_URL is set, the local sqlite file otherwise. Transient failures
// are retried a few times before giving up.
func ConnectionDB(cfg *Config) error {
	var dial gorm.Dialector
	if cfg.DatabaseURL != "" {
		dial = postgres.Open(cfg.DatabaseURL)
		log.Println("using postgres database")
	} else {
		dial = sqlite.Open(cfg.DBSource)
		log.Println("using sqlite database:", cfg.DBSource)
	}

	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err = gorm.Open(dial, &gorm.Config{})
		if err == nil {
			return nil
		}
		log.Printf("database connect attempt %d/%d failed: %v", attempt, connectAttempts, err)
		if attempt < connectAttempts {
			time.Sleep(connectBackoff)
		}
	}
	return fmt.Errorf("connect database: %w", err)
}

// SetupDatabase migrates the schema on the global connection.
func SetupDatabase() error {
	return Migrate(db)
}

// Migrate creates the user table plus one category and one item table per
// kind. On postgres each item table also gets a cascading foreign key to its
// category table as a schema-level backstop behind the application's delete
// guard; sqlite cannot add constraints to existing tables, so there the
// transactional guard is the only enforcement.
func Migrate(g *gorm.DB) error {
	if err := g.AutoMigrate(&entity.User{}); err != nil {
		return err
	}
	for _, k := range entity.Kinds() {
		if err := g.Table(k.CategoryTable()).AutoMigrate(&entity.Category{}); err != nil {
			return err
		}
		if err := g.Table(k.ItemTable()).AutoMigrate(&entity.Item{}); err != nil {
			return err
		}
	}

	if g.Dialector.Name() == "postgres" {
		for _, k := range entity.Kinds() {
			stmt := fmt.Sprintf(`DO $$ BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%[1]s_category_fk') THEN
					ALTER TABLE %[1]s ADD CONSTRAINT %[1]s_category_fk
						FOREIGN KEY (category_id) REFERENCES %[2]s (id) ON DELETE CASCADE;
				END IF;
			END $$;`, k.ItemTable(), k.CategoryTable())
			if err := g.Exec(stmt).Error; err != nil {
				return fmt.Errorf("add %s foreign key: %w", k.ItemTable(), err)
			}
		}
	}
	return nil
}
