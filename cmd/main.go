package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"

	"github.com/DominicRaja2005/library-management-system/configs"
	"github.com/DominicRaja2005/library-management-system/internal/daemon"
	"github.com/DominicRaja2005/library-management-system/internal/db"
	"github.com/DominicRaja2005/library-management-system/internal/handlers"
	"github.com/DominicRaja2005/library-management-system/internal/middleware"
	"github.com/DominicRaja2005/library-management-system/internal/service"
	"github.com/DominicRaja2005/library-management-system/internal/store"
	"github.com/DominicRaja2005/library-management-system/internal/utils"
)

func main() {
	cfg := configs.LoadConfig()
	db.Connect(cfg.MongoURI)
	utils.InitJwtSecret(cfg.JWTSecret)

	bookColl := db.GetCollection(cfg.DBName, "books")
	auditColl := db.GetCollection(cfg.DBName, "audit_logs")

	catalogStore := store.NewMongoCatalogStore(bookColl)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := catalogStore.EnsureIndexes(ctx); err != nil {
			log.Fatalf("Failed to create indexes: %v", err)
		}
		cancel()
	}

	auditLogger := &utils.Logger{Collection: auditColl}
	inventory := service.NewInventoryService(catalogStore, auditLogger)

	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)
	r.Use(middleware.JSONMiddleware)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "OK")
	})

	authHandler := &handlers.AuthHandler{
		ConfigCreds: struct {
			UserId       string
			Username     string
			UserFullName string
			UserPassword string
		}{
			UserId:       cfg.UserId,
			Username:     cfg.UserName,
			UserFullName: cfg.UserFullName,
			UserPassword: cfg.UserPassword,
		},
	}
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	bookHandler := handlers.NewBookHandler(inventory)
	statsHandler := &handlers.StatsHandler{Service: inventory}

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(middleware.JWTAuthMiddleware)

	apiRouter.HandleFunc("/books", bookHandler.GetBooks).Methods("GET")
	apiRouter.HandleFunc("/books", bookHandler.AddBook).Methods("POST")
	apiRouter.HandleFunc("/books/{id}", bookHandler.GetBook).Methods("GET")
	apiRouter.HandleFunc("/books/{id}", bookHandler.UpdateBook).Methods("PUT")
	apiRouter.HandleFunc("/books/{id}", bookHandler.DeleteBook).Methods("DELETE")
	apiRouter.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	daemonCtx, stopDaemon := context.WithCancel(context.Background())
	exporter := &daemon.LogExporter{Coll: auditColl}
	go exporter.Run(daemonCtx)

	var server = http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Println("Server starting on port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	log.Println("Shutting down gracefully...")
	stopDaemon()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}
	if err := db.Disconnect(ctx); err != nil {
		log.Printf("MongoDB disconnect failed: %v", err)
	}
	log.Println("Server shut down.")
}
