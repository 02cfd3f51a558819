package database

import (
	"absensi_sinergi/constants"
	"absensi_sinergi/model"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("sinergi123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		hashPassword = "sinergi123"
	}
	accounts := []model.Account{
		{Username: "admin", Password: hashPassword, FullName: "Administrator", Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		// Buat hanya jika belum ada
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	demo := model.Event{Name: "Event Demo", Slug: "event-demo", IsActive: true}
	if err := db.Where(model.Event{Slug: demo.Slug}).FirstOrCreate(&demo).Error; err != nil {
		log.Println("failed to seed demo event:", err)
	}
}
