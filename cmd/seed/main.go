package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"shareit/internal/database"
	"shareit/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "shareit.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	defer func() { _ = database.Close(db) }()

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// children first
	log.Println("Cleaning old data...")
	for _, table := range []string{"comments", "bookings", "items", "requests", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("clean %s: %v", table, err)
		}
	}

	if err := db.Transaction(seed); err != nil {
		log.Fatal("Seed failed:", err)
	}

	log.Println("Seed completed!")
	log.Println("Users: ann@shareit.dev (owner), bob@shareit.dev and cat@shareit.dev (borrowers)")
	log.Println("Send X-Sharer-User-Id with the user id to act as that user.")
}

func seed(tx *gorm.DB) error {
	now := time.Now().UTC().Truncate(time.Hour)

	log.Println("Creating users...")
	users := []domain.User{
		{Name: "Ann", Email: "ann@shareit.dev"},
		{Name: "Bob", Email: "bob@shareit.dev"},
		{Name: "Cat", Email: "cat@shareit.dev"},
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(&users).Error; err != nil {
		return fmt.Errorf("users: %w", err)
	}
	ann, bob, cat := users[0], users[1], users[2]

	log.Println("Creating requests...")
	tent := domain.ItemRequest{Description: "Looking for a two-person tent", RequestorID: cat.ID, Created: now.Add(-72 * time.Hour)}
	if err := tx.Omit(clause.Associations).Create(&tent).Error; err != nil {
		return fmt.Errorf("requests: %w", err)
	}

	log.Println("Creating items...")
	items := []domain.Item{
		{Name: "Cordless drill", Description: "18V drill with two batteries", Available: true, OwnerID: ann.ID},
		{Name: "Ladder", Description: "Aluminium ladder, 3m", Available: true, OwnerID: ann.ID},
		{Name: "Tent", Description: "Two-person tent", Available: true, OwnerID: ann.ID, RequestID: &tent.ID},
		{Name: "Projector", Description: "Full HD projector", Available: false, OwnerID: bob.ID},
	}
	if err := tx.Omit(clause.Associations).Create(&items).Error; err != nil {
		return fmt.Errorf("items: %w", err)
	}
	drill, ladder := items[0], items[1]

	log.Println("Creating bookings...")
	bookings := []domain.Booking{
		{ItemID: drill.ID, BookerID: bob.ID, Start: now.Add(-96 * time.Hour), End: now.Add(-72 * time.Hour), Status: domain.BookingApproved},
		{ItemID: drill.ID, BookerID: cat.ID, Start: now.Add(-time.Hour), End: now.Add(24 * time.Hour), Status: domain.BookingApproved},
		{ItemID: drill.ID, BookerID: bob.ID, Start: now.Add(48 * time.Hour), End: now.Add(72 * time.Hour), Status: domain.BookingWaiting},
		{ItemID: ladder.ID, BookerID: cat.ID, Start: now.Add(24 * time.Hour), End: now.Add(30 * time.Hour), Status: domain.BookingRejected},
	}
	for i := range bookings {
		bookings[i].Version = 1
	}
	if err := tx.Omit(clause.Associations).Create(&bookings).Error; err != nil {
		return fmt.Errorf("bookings: %w", err)
	}

	log.Println("Creating comments...")
	comment := domain.Comment{Text: "Worked great, batteries last all day", ItemID: drill.ID, AuthorID: bob.ID, Created: now.Add(-70 * time.Hour)}
	if err := tx.Omit(clause.Associations).Create(&comment).Error; err != nil {
		return fmt.Errorf("comments: %w", err)
	}
	return nil
}
