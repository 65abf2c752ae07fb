package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type ENV struct {
	MongoURI       string
	MongoDB        string
	Port           string
	SESSION_KEY    string
	AppAuthKey     string
	AppEncKey      string
	CartDBPath     string
	StoreName      string
	StoreWhatsApp  string
	BulkCategories []string
	ImageDir       string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "katalog"),
		Port:           getEnv("APP_PORT", ":8080"),
		SESSION_KEY:    os.Getenv("SESSION_KEY"),
		AppAuthKey:     os.Getenv("APP_AUTH_KEY"),
		AppEncKey:      os.Getenv("APP_ENC_KEY"),
		CartDBPath:     getEnv("CART_DB_PATH", "carts.db"),
		StoreName:      getEnv("STORE_NAME", "Toko Laju"),
		StoreWhatsApp:  getEnv("STORE_WHATSAPP", "6281200000000"),
		BulkCategories: splitList(getEnv("BULK_CATEGORIES", "kaos-polos,kaos-sablon")),
		ImageDir:       getEnv("IMAGE_DIR", "images"),
	}

}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

var LoadENV = LoadEnv()
