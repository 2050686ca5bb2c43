package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/kelydev/apiParticipantes/database"
	"github.com/kelydev/apiParticipantes/repository"
	"github.com/kelydev/apiParticipantes/routes"
	"github.com/kelydev/apiParticipantes/store"
)

func main() {
	log.Print("starting server...")

	// Cargar variables de entorno desde .env
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	almacen, err := buildStore()
	if err != nil {
		log.Fatal("Failed to initialize store: ", err)
	}

	registro := repository.NewRegistro(almacen)
	r := routes.SetupRoutes(registro)

	// CORS usando rs/cors
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:4200"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})
	httpHandler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
		log.Printf("defaulting to port %s", port)
	}

	log.Printf("listening on port %s", port)
	if err := http.ListenAndServe(":"+port, httpHandler); err != nil {
		log.Fatal(err)
	}
}

// buildStore elige el backend del almacén según STORE_BACKEND. El valor
// por defecto es el almacén en archivo local.
func buildStore() (store.Store, error) {
	backend := os.Getenv("STORE_BACKEND")

	switch backend {
	case "memoria":
		return store.NewMemoria(), nil

	case "redis":
		cliente := redis.NewClient(&redis.Options{
			Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		if err := cliente.Ping(context.Background()).Err(); err != nil {
			return nil, err
		}
		return store.NewRedis(cliente), nil

	case "postgres":
		db, err := database.InitDB()
		if err != nil {
			return nil, err
		}
		return store.NewPostgres(context.Background(), db)

	case "", "archivo":
		return store.NewArchivo(getenvDefault("STORE_FILE", "datos"))

	default:
		log.Printf("Unknown STORE_BACKEND %q, defaulting to archivo", backend)
		return store.NewArchivo(getenvDefault("STORE_FILE", "datos"))
	}
}

func getenvDefault(nombre, porDefecto string) string {
	if v := os.Getenv(nombre); v != "" {
		return v
	}
	return porDefecto
}
