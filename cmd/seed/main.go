package main

import (
	"context"
	"errors"
	"log"

	"campushelper/internal/auth"
	"campushelper/internal/config"
	"campushelper/internal/db"
	apperrors "campushelper/internal/errors"
	"campushelper/internal/model"
	"campushelper/internal/repository"
)

type seedUser struct {
	Username string
	Email    string
	Password string
	IsAdmin  bool
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
		&model.User{},
		&model.Timetable{},
		&model.BusSchedule{},
		&model.CanteenMenu{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	timetableRepo := repository.NewTimetableRepository(gormDB)
	busRepo := repository.NewBusRepository(gormDB)
	canteenRepo := repository.NewCanteenRepository(gormDB)

	created, skipped, err := seedUsers(ctx, userRepo, []seedUser{
		{Username: "admin", Email: "admin@campus.edu", Password: "admin123", IsAdmin: true},
		{Username: "student", Email: "student@campus.edu", Password: "student123"},
	})
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Users seeded: %d created, %d already present", created, skipped)

	timetableRows := []model.Timetable{
		{Day: "Monday", Time: "09:00-10:00", Subject: "Mathematics", Room: "Room 101"},
		{Day: "Monday", Time: "10:00-11:00", Subject: "Physics", Room: "Room 102"},
		{Day: "Monday", Time: "11:00-12:00", Subject: "Chemistry", Room: "Room 103"},
		{Day: "Tuesday", Time: "09:00-10:00", Subject: "English", Room: "Room 201"},
		{Day: "Tuesday", Time: "10:00-11:00", Subject: "History", Room: "Room 202"},
		{Day: "Wednesday", Time: "09:00-10:00", Subject: "Computer Science", Room: "Lab 1"},
		{Day: "Wednesday", Time: "10:00-11:00", Subject: "Biology", Room: "Room 301"},
		{Day: "Thursday", Time: "09:00-10:00", Subject: "Geography", Room: "Room 401"},
		{Day: "Friday", Time: "09:00-10:00", Subject: "Art", Room: "Room 501"},
	}
	inserted := 0
	for i := range timetableRows {
		exists, err := timetableRepo.ExistsSlot(ctx, timetableRows[i].Day, timetableRows[i].Time, timetableRows[i].Room)
		if err != nil {
			log.Fatalf("Failed to check timetable slot: %v", err)
		}
		if exists {
			continue
		}
		if err := timetableRepo.Create(ctx, &timetableRows[i]); err != nil {
			log.Fatalf("Failed to seed timetable: %v", err)
		}
		inserted++
	}
	log.Printf("Timetable entries seeded: %d", inserted)

	busRows := []model.BusSchedule{
		{Route: "Main Gate to Engineering Block", Time: "08:00", BusNo: "BUS-001"},
		{Route: "Main Gate to Engineering Block", Time: "09:00", BusNo: "BUS-002"},
		{Route: "Main Gate to Engineering Block", Time: "10:00", BusNo: "BUS-001"},
		{Route: "Engineering Block to Main Gate", Time: "16:00", BusNo: "BUS-001"},
		{Route: "Engineering Block to Main Gate", Time: "17:00", BusNo: "BUS-002"},
		{Route: "Hostel to Academic Block", Time: "08:30", BusNo: "BUS-003"},
		{Route: "Hostel to Academic Block", Time: "09:30", BusNo: "BUS-004"},
		{Route: "Academic Block to Hostel", Time: "16:30", BusNo: "BUS-003"},
	}
	existing, err := busRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list bus schedules: %v", err)
	}
	if len(existing) == 0 {
		for i := range busRows {
			if err := busRepo.Create(ctx, &busRows[i]); err != nil {
				log.Fatalf("Failed to seed bus schedules: %v", err)
			}
		}
		log.Printf("Bus schedules seeded: %d", len(busRows))
	} else {
		log.Println("Bus schedules already present, skipping")
	}

	canteenRows := []model.CanteenMenu{
		{Day: "Monday", Item: "Idli Sambar", Price: 30, Category: "breakfast"},
		{Day: "Monday", Item: "Veg Thali", Price: 60, Category: "lunch"},
		{Day: "Monday", Item: "Samosa", Price: 15, Category: "snacks"},
		{Day: "Tuesday", Item: "Poha", Price: 25, Category: "breakfast"},
		{Day: "Tuesday", Item: "Chicken Curry Rice", Price: 80, Category: "lunch"},
		{Day: "Wednesday", Item: "Dosa", Price: 35, Category: "breakfast"},
		{Day: "Wednesday", Item: "Paneer Butter Masala", Price: 70, Category: "dinner"},
		{Day: "Thursday", Item: "Upma", Price: 25, Category: "breakfast"},
		{Day: "Friday", Item: "Biryani", Price: 90, Category: "lunch"},
	}
	inserted = 0
	for i := range canteenRows {
		exists, err := canteenRepo.ExistsItem(ctx, canteenRows[i].Day, canteenRows[i].Item)
		if err != nil {
			log.Fatalf("Failed to check menu item: %v", err)
		}
		if exists {
			continue
		}
		if err := canteenRepo.Create(ctx, &canteenRows[i]); err != nil {
			log.Fatalf("Failed to seed canteen menu: %v", err)
		}
		inserted++
	}
	log.Printf("Canteen menu items seeded: %d", inserted)

	log.Println("Seed completed successfully!")
}

// seedUsers provisions accounts, skipping usernames that already exist.
func seedUsers(ctx context.Context, repo repository.UserRepository, users []seedUser) (created, skipped int, err error) {
	for _, u := range users {
		hash, err := auth.HashPassword(u.Password)
		if err != nil {
			return created, skipped, err
		}
		user := &model.User{
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: hash,
			IsAdmin:      u.IsAdmin,
			IsActive:     true,
		}
		if err := repo.Create(ctx, user); err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				skipped++
				continue
			}
			return created, skipped, err
		}
		created++
	}
	return created, skipped, nil
}
