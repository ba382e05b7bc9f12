package main

import (
	"log"
	"os"

	"salone/internal/database"
	"salone/internal/domain"
)

type seedService struct {
	name        string
	durationMin int
	priceType   domain.PriceType
	priceFrom   float64
	priceTo     float64
	isFeatured  bool
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "salone.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}

	// ================== SETTINGS ==================
	log.Println("Seeding business settings...")
	var settings domain.BusinessSettings
	if db.First(&settings).RowsAffected == 0 {
		settings = domain.DefaultSettings()
		db.Create(&settings)
	}

	// ================== WEEKLY SCHEDULE ==================
	// Tue-Fri 09:00-19:00, Sat 09:00-13:00, closed Sun/Mon (no rows).
	log.Println("Seeding weekly schedule...")
	openDays := []struct {
		day         int
		open, close string
	}{
		{2, "09:00", "19:00"},
		{3, "09:00", "19:00"},
		{4, "09:00", "19:00"},
		{5, "09:00", "19:00"},
		{6, "09:00", "13:00"},
	}
	for _, d := range openDays {
		open, close := d.open, d.close
		var existing domain.WeeklySchedule
		if db.Where("day_of_week = ?", d.day).First(&existing).RowsAffected > 0 {
			continue
		}
		db.Create(&domain.WeeklySchedule{
			DayOfWeek: d.day,
			OpenTime:  &open,
			CloseTime: &close,
		})
	}

	// ================== STAFF ==================
	log.Println("Seeding staff...")
	var staff domain.StaffMember
	if db.First(&staff).RowsAffected == 0 {
		db.Create(&domain.StaffMember{Name: "Operatrice", IsActive: true})
	}

	// ================== CATALOG ==================
	log.Println("Seeding catalog...")
	catalog := map[string][]seedService{
		"Viso": {
			{"Pulizia viso specifica", 60, domain.PriceFixed, 40, 0, false},
			{"Trattamento viso", 60, domain.PriceFixed, 50, 0, false},
		},
		"Mani": {
			{"Semipermanente mani rinforzato", 60, domain.PriceFixed, 35, 0, true},
			{"Copertura gel unghia naturale", 75, domain.PriceFixed, 40, 0, false},
			{"Refill gel corte/medie", 75, domain.PriceFixed, 45, 0, false},
			{"Refill gel lunghe", 90, domain.PriceFixed, 50, 0, false},
			{"Ricostruzione unghie", 120, domain.PriceFixed, 70, 0, false},
			{"Riparazione unghia", 15, domain.PriceFixed, 10, 0, false},
		},
		"Piedi": {
			{"Pedicure completo", 60, domain.PriceFixed, 40, 0, true},
			{"Semipermanente piedi", 60, domain.PriceFixed, 35, 0, false},
			{"Pedicure curativo con semipermanente", 90, domain.PriceFixed, 60, 0, false},
		},
		"Ciglia & sopracciglia": {
			{"Laminazione ciglia", 60, domain.PriceFixed, 70, 0, true},
			{"Laminazione sopracciglia", 45, domain.PriceFixed, 60, 0, false},
		},
		"Epilazione": {
			{"Epilazione gambe", 30, domain.PriceRange, 20, 25, false},
			{"Epilazione gambe + inguine", 60, domain.PriceRange, 35, 45, true},
		},
	}

	sortOrder := map[string]int{
		"Viso": 1, "Mani": 2, "Piedi": 3, "Ciglia & sopracciglia": 4, "Epilazione": 5,
	}

	for catName, services := range catalog {
		var cat domain.ServiceCategory
		slug := slugify(catName)
		if db.Where("slug = ?", slug).First(&cat).RowsAffected == 0 {
			cat = domain.ServiceCategory{
				Name:      catName,
				Slug:      slug,
				SortOrder: sortOrder[catName],
			}
			db.Create(&cat)
		}

		for _, s := range services {
			var existing domain.Service
			if db.Where("name = ?", s.name).First(&existing).RowsAffected > 0 {
				continue
			}
			svc := domain.Service{
				CategoryID:  cat.ID,
				Name:        s.name,
				DurationMin: s.durationMin,
				PriceType:   s.priceType,
				PriceFrom:   s.priceFrom,
				IsFeatured:  s.isFeatured,
				IsActive:    true,
			}
			if s.priceTo > 0 {
				v := s.priceTo
				svc.PriceTo = &v
			}
			db.Create(&svc)
		}
	}

	log.Println("Seed complete.")
}

func slugify(s string) string {
	out := make([]rune, 0, len(s))
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
			lastDash = false
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			out = append(out, r)
			lastDash = false
		default:
			if !lastDash && len(out) > 0 {
				out = append(out, '-')
				lastDash = true
			}
		}
	}
	for len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	return string(out)
}
