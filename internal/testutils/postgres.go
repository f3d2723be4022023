package testutils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dasomcenter/dasom-api/internal/domain/apply"
	"github.com/dasomcenter/dasom-api/internal/domain/category"
	"github.com/dasomcenter/dasom-api/internal/domain/form"
	"github.com/dasomcenter/dasom-api/internal/domain/post"
	"github.com/dasomcenter/dasom-api/internal/domain/program"
	"github.com/dasomcenter/dasom-api/internal/domain/user"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupPostgresForIntegration returns a migrated database. With TEST_DB_DSN
// set it connects there; otherwise it starts a throwaway postgres container.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal(err)
		}
		migrate(db)
		return db, func() {}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "dasom",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=dasom sslmode=disable", host, port.Port())

	var db *gorm.DB
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		log.Fatal(err)
	}

	migrate(db)

	cleanup := func() {
		_ = pg.Terminate(ctx)
	}
	return db, cleanup
}

func migrate(db *gorm.DB) {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE staff_role AS ENUM ('admin', 'staff'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE post_kind AS ENUM ('post', 'notice'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE program_status AS ENUM ('draft', 'open', 'closed'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}
	for _, enum := range enums {
		if err := db.Exec(enum).Error; err != nil {
			log.Fatal(err)
		}
	}

	if err := db.AutoMigrate(
		&user.User{},
		&category.Category{},
		&post.Post{},
		&program.Program{},
		&form.Record{},
		&apply.Application{},
	); err != nil {
		log.Fatal(err)
	}
}
