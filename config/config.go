package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config mengambil nilai env, file .env dimuat sekali saja
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Tidak menemukan .env, memakai ENV dari sistem")
		}
	})
	return os.Getenv(key)
}
