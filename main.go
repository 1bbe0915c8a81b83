package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"

	database "github.com/FahimDeveloper/restaurant-management-server/config"
	controller "github.com/FahimDeveloper/restaurant-management-server/controllers"
	"github.com/FahimDeveloper/restaurant-management-server/helper"
	"github.com/FahimDeveloper/restaurant-management-server/logger"
	"github.com/FahimDeveloper/restaurant-management-server/repository"
	"github.com/FahimDeveloper/restaurant-management-server/repository/memory"
	routes "github.com/FahimDeveloper/restaurant-management-server/routes"
	"github.com/FahimDeveloper/restaurant-management-server/services"
	"github.com/FahimDeveloper/restaurant-management-server/ws"
)

type stores struct {
	tables services.TableStore
	carts  services.CartStore
	orders services.OrderStore
	menu   services.MenuStore
	staff  services.StaffStore
	users  services.UserStore
}

func main() {
	cfg, err := database.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	appLogger := logger.NewLogger("restaurant-management-server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var st stores
	switch cfg.DBDriver {
	case database.DriverMemory:
		db := memory.New()
		st = stores{db.Tables(), db.Carts(), db.Orders(), db.Menu(), db.Staff(), db.Users()}
		appLogger.Warn("startup", "", "using the in-memory store, data is lost on exit")

	default:
		client, err := database.Connect(ctx, cfg)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(dctx); err != nil {
				appLogger.Error("shutdown", "", "disconnect from MongoDB", err)
			}
		}()

		db := client.Database(cfg.DBName)
		if err := database.EnsureIndexes(ctx, db); err != nil {
			log.Fatal(err)
		}
		repos := repository.New(db, cfg.DBTimeout)
		st = stores{repos.Tables, repos.Carts, repos.Orders, repos.Menu, repos.Staff, repos.Users}
		appLogger.Info("startup", "", "connected to MongoDB")
	}

	hub := ws.NewHub(cfg.CORSOrigins, appLogger)
	go hub.Run(ctx)

	h := &controller.Handler{
		Reservations:     services.NewReservationService(st.tables, appLogger),
		Carts:            services.NewCartService(st.carts, appLogger),
		Orders:           services.NewOrderService(st.orders, st.menu, st.users, st.staff, hub, appLogger),
		Menu:             services.NewMenuService(st.menu),
		Staff:            services.NewStaffService(st.staff),
		Users:            services.NewUserService(st.users),
		Tokens:           helper.NewTokenHelper(cfg.SecretKey, cfg.TokenTTL),
		OrderFeedHandler: hub,
		Log:              appLogger,
	}
	router := routes.NewRouter(h)

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.CORSOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", "X-Request-ID"}),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           cors(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("startup", "", "server running on port "+cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("startup", "", "server stopped", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("shutdown", "", "graceful shutdown failed", err)
	}
	appLogger.Info("shutdown", "", "server stopped")
}
