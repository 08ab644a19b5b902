package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/f0xyris/psycho-therapy-sub001/internal/config"
	"github.com/f0xyris/psycho-therapy-sub001/internal/database"
	"github.com/f0xyris/psycho-therapy-sub001/internal/domain"
	"github.com/f0xyris/psycho-therapy-sub001/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	courses := repository.NewCourseRepository(db)
	services := repository.NewServiceRepository(db)
	reviews := repository.NewReviewRepository(db)

	// ================== ADMIN ==================
	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	exists, err := users.ExistsByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatal("admin lookup failed: ", err)
	}
	if exists {
		log.Println("Admin already present, skipping:", adminEmail)
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("hashing admin password failed: ", err)
		}
		admin := domain.User{
			Email:        adminEmail,
			PasswordHash: string(hash),
			FirstName:    "Admin",
			LastName:     "User",
			IsAdmin:      true,
		}
		if err := users.Create(ctx, &admin); err != nil {
			log.Fatal("creating admin failed: ", err)
		}
		log.Printf("Admin created: %s / %s", adminEmail, adminPassword)
	}

	// ================== COURSES ==================
	existing, err := courses.List(ctx)
	if err != nil {
		log.Fatal("course lookup failed: ", err)
	}
	if len(existing) > 0 {
		log.Println("Courses already present, skipping")
	} else {
		log.Println("Creating courses...")
		for _, c := range []domain.Course{
			{
				Name: domain.LocalizedText{
					"en": "Laser Hair Removal Basics", "uk": "Основи лазерної епіляції",
					"pl": "Podstawy depilacji laserowej", "ru": "Основы лазерной эпиляции",
				},
				Description: domain.LocalizedText{
					"en": "A hands-on introduction to diode laser treatment, safety and client care.",
					"uk": "Практичний вступ до діодного лазера, безпеки та догляду за клієнтом.",
				},
				Price:    450000,
				Duration: 960,
				ImageURL: "/images/courses/laser-basics.jpg",
			},
			{
				Name: domain.LocalizedText{
					"en": "Advanced Massage Techniques", "uk": "Поглиблені техніки масажу",
					"pl": "Zaawansowane techniki masażu", "ru": "Углублённые техники массажа",
				},
				Description: domain.LocalizedText{
					"en": "Deep tissue and lymphatic drainage protocols for practicing therapists.",
					"uk": "Протоколи глибокого та лімфодренажного масажу для практикуючих.",
				},
				Price:    380000,
				Duration: 720,
				ImageURL: "/images/courses/massage-advanced.jpg",
			},
		} {
			course := c
			if err := courses.Create(ctx, &course); err != nil {
				log.Fatal("creating course failed: ", err)
			}
		}
	}

	// ================== SERVICES ==================
	existingServices, err := services.List(ctx)
	if err != nil {
		log.Fatal("service lookup failed: ", err)
	}
	if len(existingServices) > 0 {
		log.Println("Services already present, skipping")
	} else {
		log.Println("Creating services...")
		for _, s := range []domain.Service{
			{
				Name: domain.LocalizedText{
					"en": "Full Body Laser Hair Removal", "uk": "Лазерна епіляція всього тіла",
					"pl": "Depilacja laserowa całego ciała", "ru": "Лазерная эпиляция всего тела",
				},
				Description: domain.LocalizedText{
					"en": "Single full-body session with a diode laser.",
					"uk": "Один сеанс для всього тіла діодним лазером.",
				},
				Price:    250000,
				Duration: 120,
				Category: "laser",
			},
			{
				Name: domain.LocalizedText{
					"en": "Relaxing Massage", "uk": "Розслаблюючий масаж",
					"pl": "Masaż relaksacyjny", "ru": "Расслабляющий массаж",
				},
				Description: domain.LocalizedText{
					"en": "60 minute full body relaxing massage.",
					"uk": "60 хвилин розслаблюючого масажу всього тіла.",
				},
				Price:    90000,
				Duration: 60,
				Category: "massage",
			},
			{
				Name: domain.LocalizedText{
					"en": "Spa Ritual", "uk": "Спа-ритуал",
					"pl": "Rytuał spa", "ru": "Спа-ритуал",
				},
				Description: domain.LocalizedText{
					"en": "Body scrub, wrap and massage in one visit.",
					"uk": "Скраб, обгортання та масаж за один візит.",
				},
				Price:    160000,
				Duration: 150,
				Category: "spa",
			},
		} {
			service := s
			if err := services.Create(ctx, &service); err != nil {
				log.Fatal("creating service failed: ", err)
			}
		}
	}

	// ================== REVIEWS ==================
	existingReviews, err := reviews.List(ctx, false)
	if err != nil {
		log.Fatal("review lookup failed: ", err)
	}
	if len(existingReviews) > 0 {
		log.Println("Reviews already present, skipping")
	} else {
		log.Println("Creating reviews...")
		for _, rv := range []domain.Review{
			{Name: "Olena", Rating: 5, Comment: "Great atmosphere and a very attentive specialist.", Status: domain.ReviewStatusApproved},
			{Name: "Marta", Rating: 4, Comment: "Booked online in a minute, the session started on time.", Status: domain.ReviewStatusApproved},
			{Name: "Iryna", Rating: 5, Comment: "The laser course was worth every penny.", Status: domain.ReviewStatusPending},
		} {
			review := rv
			if err := reviews.Create(ctx, &review); err != nil {
				log.Fatal("creating review failed: ", err)
			}
		}
	}

	log.Println("Seed completed")
}
