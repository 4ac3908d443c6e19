package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	MongoURI     string
	DBName       string
	JWTSecret    string
	UserId       string
	UserName     string
	UserFullName string
	UserPassword string
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "library"
	}

	return Config{
		Port:         port,
		MongoURI:     os.Getenv("MONGO_URI"),
		DBName:       dbName,
		JWTSecret:    os.Getenv("JWT_SECRET"),
		UserId:       os.Getenv("HARD_CODED_USER_ID"),
		UserName:     os.Getenv("HARD_CODED_USER_NAME"),
		UserFullName: os.Getenv("HARD_CODED_USER_FULL_NAME"),
		UserPassword: os.Getenv("HARD_CODED_USER_PASSWORD"),
	}
}
