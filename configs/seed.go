package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"foodchef/entity"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(cfg *Config) error {
	email := cfg.AdminEmail
	pass := cfg.AdminPassword
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: "admin",
		Email:    email,
		Password: string(hash),
		FullName: "Administrator",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedLookups inserts the default menu categories and site content.
func SeedLookups() error {
	categories := []entity.MenuCategory{
		{Name: "Starters", SortOrder: 1},
		{Name: "Main Course", SortOrder: 2},
		{Name: "Desserts", SortOrder: 3},
		{Name: "Beverages", SortOrder: 4},
	}
	for i := range categories {
		c := categories[i]
		if err := db.Where("name = ?", c.Name).FirstOrCreate(&c).Error; err != nil {
			return err
		}
	}

	var aboutCount int64
	if err := db.Model(&entity.AboutContent{}).Count(&aboutCount).Error; err != nil {
		return err
	}
	if aboutCount == 0 {
		about := entity.AboutContent{
			Title:   "Food Chef Cafe",
			Content: "Fresh food, warm service, every day.",
		}
		if err := db.Create(&about).Error; err != nil {
			return err
		}
	}
	return nil
}
