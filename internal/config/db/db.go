package db

import (
	"fmt"
	"log"

	"github.com/dasomcenter/dasom-api/internal/config"
	"github.com/dasomcenter/dasom-api/internal/domain/apply"
	"github.com/dasomcenter/dasom-api/internal/domain/category"
	"github.com/dasomcenter/dasom-api/internal/domain/form"
	"github.com/dasomcenter/dasom-api/internal/domain/post"
	"github.com/dasomcenter/dasom-api/internal/domain/program"
	"github.com/dasomcenter/dasom-api/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func createEnums() {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE staff_role AS ENUM ('admin', 'staff'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE post_kind AS ENUM ('post', 'notice'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE program_status AS ENUM ('draft', 'open', 'closed'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := DB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	createEnums()

	if err := DB.AutoMigrate(
		&user.User{},
		&category.Category{},
		&post.Post{},
		&program.Program{},
		&form.Record{},
		&apply.Application{},
	); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
