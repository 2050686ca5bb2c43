package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	// Driver de PostgreSQL
	_ "github.com/lib/pq"
)

// InitDB initializes and returns a database connection. Solo se usa
// cuando el backend del almacén es postgres.
func InitDB() (*sql.DB, error) {
	log.Print("initializing postgresql database connection...")

	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbSSLMode := os.Getenv("DB_SSLMODE")

	if dbUser == "" || dbPassword == "" || dbHost == "" || dbPort == "" || dbName == "" {
		return nil, fmt.Errorf("database environment variables DB_USER, DB_PASSWORD, DB_HOST, DB_PORT, DB_NAME must be set")
	}
	if dbSSLMode == "" {
		dbSSLMode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("PostgreSQL Database connection successfully established")
	return db, nil
}
