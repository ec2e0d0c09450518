package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"hhcc/internal/cache"
	"hhcc/internal/config"
	"hhcc/internal/db"
	"hhcc/internal/model"
	"hhcc/internal/repository"
	"hhcc/internal/service"
)

// Seed fixture shapes mirror the JSON collections the frontend was
// originally developed against.
type careCenterFile struct {
	CareCenters []model.CareCenter `json:"careCenters"`
}

type serviceFile struct {
	Services []model.Service `json:"services"`
}

type testimonialFile struct {
	Testimonials []model.Testimonial `json:"testimonials"`
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.CareCenter{},
		&model.Service{},
		&model.Testimonial{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	centerRepo := repository.NewCareCenterRepository(gormDB)
	serviceRepo := repository.NewServiceRepository(gormDB)
	testimonialRepo := repository.NewTestimonialRepository(gormDB)
	catalog := service.NewCatalogService(centerRepo, serviceRepo, cacheClient)

	ctx := context.Background()

	var centers careCenterFile
	if err := readFixture(cfg.SeedDataDir, "care-centers.json", &centers); err != nil {
		log.Fatalf("Failed to load care centers: %v", err)
	}
	count, err := catalog.SeedCareCenters(ctx, centers.CareCenters)
	if err != nil {
		log.Fatalf("Failed to seed care centers: %v", err)
	}
	log.Printf("Seeded %d care centers", count)

	var services serviceFile
	if err := readFixture(cfg.SeedDataDir, "services.json", &services); err != nil {
		log.Fatalf("Failed to load services: %v", err)
	}
	count, err = catalog.SeedServices(ctx, services.Services)
	if err != nil {
		log.Fatalf("Failed to seed services: %v", err)
	}
	log.Printf("Seeded %d services", count)

	var testimonials testimonialFile
	if err := readFixture(cfg.SeedDataDir, "testimonials.json", &testimonials); err != nil {
		log.Fatalf("Failed to load testimonials: %v", err)
	}
	seeded := 0
	for i := range testimonials.Testimonials {
		if err := testimonialRepo.Upsert(ctx, &testimonials.Testimonials[i]); err != nil {
			log.Fatalf("Failed to seed testimonial %s: %v", testimonials.Testimonials[i].ID, err)
		}
		seeded++
	}
	log.Printf("Seeded %d testimonials", seeded)

	log.Println("Seed completed successfully!")
}

// readFixture parses one JSON fixture from the seed data directory.
func readFixture(dir, name string, out interface{}) error {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
