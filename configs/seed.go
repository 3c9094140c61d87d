package configs

import (
	"log"
	"time"

	"github.com/Deepanghsh/Smart-Ward-Admin/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the warden account once, from config.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		ID:          "ADM001",
		Name:        "Dr. Suresh Patel",
		Email:       cfg.AdminEmail,
		Password:    string(hash),
		Role:        "admin",
		Designation: "Hostel Warden",
		Department:  "Administration",
	}
	return db.Create(&admin).Error
}

// SeedDemoData loads the demo students, issues, announcements and
// lost & found items used by the dev dashboard. Idempotent.
func SeedDemoData() error {
	var count int64
	db.Model(&entity.Issue{}).Count(&count)
	if count > 0 {
		return nil
	}

	studentHash, err := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	students := []entity.User{
		{
			ID: "STU001", Name: "Rahul Kumar", Email: "rahul@university.edu",
			Password: string(studentHash), Role: "student",
			Hostel: "Hostel A - Boys", Block: "Block B", Room: "204",
			Year: "3rd Year", Department: "Computer Science", Phone: "+91 98765 43210",
		},
		{
			ID: "STU002", Name: "Priya Sharma", Email: "priya@university.edu",
			Password: string(studentHash), Role: "student",
			Hostel: "Hostel C - Girls", Block: "Block A", Room: "105",
			Year: "2nd Year", Department: "Electronics", Phone: "+91 98765 43211",
		},
	}
	for i := range students {
		if err := db.FirstOrCreate(&students[i], entity.User{ID: students[i].ID}).Error; err != nil {
			return err
		}
	}

	assignedPlumber := "Rajesh (Plumber)"
	assignedIT := "IT Team"
	issues := []entity.Issue{
		{
			ID:          "ISS001",
			Title:       "Leaking tap in bathroom",
			Description: "The tap in the common bathroom on 2nd floor is continuously leaking, causing water wastage.",
			Category:    "plumbing", Priority: "high", Status: "in progress",
			Hostel: "Hostel A - Boys", Block: "Block B", Room: "204",
			ReporterID: "STU001", Reporter: "Rahul Kumar",
			AssignedTo: &assignedPlumber, Visibility: "public",
			ReportedDate: time.Date(2026, 1, 26, 10, 30, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2026, 1, 27, 14, 20, 0, 0, time.UTC),
			Images:       []string{},
			Comments: []entity.IssueComment{{
				ID: "CMT001", IssueID: "ISS001", UserID: "ADM001",
				UserName:  "Dr. Suresh Patel",
				Comment:   "Assigned to maintenance team. Will be fixed by tomorrow.",
				CreatedAt: time.Date(2026, 1, 26, 15, 0, 0, 0, time.UTC),
			}},
		},
		{
			ID:          "ISS002",
			Title:       "No internet connectivity in room",
			Description: "WiFi is not working in my room since yesterday evening. Other rooms seem to be working fine.",
			Category:    "internet", Priority: "medium", Status: "assigned",
			Hostel: "Hostel C - Girls", Block: "Block A", Room: "105",
			ReporterID: "STU002", Reporter: "Priya Sharma",
			AssignedTo: &assignedIT, Visibility: "public",
			ReportedDate: time.Date(2026, 1, 27, 14, 20, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2026, 1, 27, 15, 0, 0, 0, time.UTC),
			Images:       []string{},
		},
		{
			ID:          "ISS003",
			Title:       "Broken chair needs replacement",
			Description: "Study chair leg is broken and needs immediate replacement.",
			Category:    "furniture", Priority: "low", Status: "reported",
			Hostel: "Hostel B - Boys", Block: "Block C", Room: "312",
			ReporterID: "STU001", Reporter: "Rahul Kumar",
			Visibility:   "public",
			ReportedDate: time.Date(2026, 1, 27, 16, 45, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2026, 1, 27, 16, 45, 0, 0, time.UTC),
			Images:       []string{},
		},
	}
	for i := range issues {
		if err := db.Create(&issues[i]).Error; err != nil {
			return err
		}
	}

	announcements := []entity.Announcement{
		{
			ID:    "ANN001",
			Title: "Water Supply Maintenance",
			Content: "Water supply will be interrupted tomorrow (Jan 29) from 10 AM to 2 PM for routine maintenance. " +
				"Please store water accordingly.",
			Priority: "high", Hostel: entity.AllHostels,
			AuthorID: "ADM001", Author: "Hostel Administration", Type: "maintenance",
			Date:      time.Date(2026, 1, 28, 8, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2026, 1, 28, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:    "ANN002",
			Title: "Pest Control Drive",
			Content: "Annual pest control will be conducted in Hostel A and B on January 30th. " +
				"Please keep rooms accessible and store food items properly.",
			Priority: "medium", Hostel: "Hostel A - Boys, Hostel B - Boys",
			AuthorID: "ADM001", Author: "Maintenance Team", Type: "pest_control",
			Date:      time.Date(2026, 1, 27, 15, 30, 0, 0, time.UTC),
			CreatedAt: time.Date(2026, 1, 27, 15, 30, 0, 0, time.UTC),
		},
	}
	for i := range announcements {
		if err := db.Create(&announcements[i]).Error; err != nil {
			return err
		}
	}

	items := []entity.LostFoundItem{
		{
			ID: "LF001", Title: "Black Backpack",
			Description: "Black Nike backpack with laptop inside",
			Type:        "lost", Category: "Bag",
			Location: "Hostel A - Common Room", Hostel: "Hostel A - Boys",
			ReporterID: "STU001", Reporter: "Rahul Kumar",
			Contact: "rahul@university.edu", Phone: "+91 98765 43210",
			Status:    "active",
			Date:      time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC),
		},
		{
			ID: "LF002", Title: "Mobile Phone - iPhone 13",
			Description: "Blue iPhone 13 found near dining area",
			Type:        "found", Category: "Electronics",
			Location: "Hostel C - Mess", Hostel: "Hostel C - Girls",
			ReporterID: "STU002", Reporter: "Priya Sharma",
			Contact: "priya@university.edu", Phone: "+91 98765 43211",
			Status:    "active",
			Date:      time.Date(2026, 1, 26, 18, 30, 0, 0, time.UTC),
			CreatedAt: time.Date(2026, 1, 26, 18, 30, 0, 0, time.UTC),
		},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	log.Println("demo data seeded")
	return nil
}
