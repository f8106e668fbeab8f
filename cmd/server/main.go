package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"frontdesk/internal/api"
	"frontdesk/internal/config"
	"frontdesk/internal/service"
	"frontdesk/internal/store"
	"frontdesk/internal/store/memory"
	"frontdesk/internal/store/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var stores *store.Stores
	if cfg.DatabaseURL != "" {
		database, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to open DB: %v", err)
		}
		if err := database.Ping(); err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}
		stores = postgres.New(database)
		log.Println("Using Postgres store backend")
	} else {
		stores = memory.NewSeeded(cfg.StoreLatency)
		log.Println("Using in-memory store backend (seeded)")
	}

	var sender *service.SenderService
	if cfg.EmailEnabled() || cfg.SMSEnabled() {
		sender = service.NewSenderService(cfg)
	}
	notifier := service.NewNotifyService(stores, sender)

	reservationSvc := service.NewReservationService(stores, notifier)
	roomSvc := service.NewRoomService(stores, cfg.StrictRoomRelease)
	guestSvc := service.NewGuestService(stores)
	dashboardSvc := service.NewDashboardService(stores)
	profileSvc := service.NewProfileService(stores)
	jobSvc := service.NewJobService(stores, notifier)

	reservationHandler := api.NewReservationHandler(reservationSvc)
	roomHandler := api.NewRoomHandler(roomSvc)
	guestHandler := api.NewGuestHandler(guestSvc)
	dashboardHandler := api.NewDashboardHandler(dashboardSvc)
	notificationHandler := api.NewNotificationHandler(notifier)
	profileHandler := api.NewProfileHandler(profileSvc)

	r := mux.NewRouter()

	r.HandleFunc("/api/rooms", roomHandler.ListRooms).Methods("GET")
	r.HandleFunc("/api/rooms", roomHandler.CreateRoom).Methods("POST")
	r.HandleFunc("/api/rooms/{id}", roomHandler.GetRoom).Methods("GET")
	r.HandleFunc("/api/rooms/{id}", roomHandler.UpdateRoom).Methods("PUT")
	r.HandleFunc("/api/rooms/{id}", roomHandler.DeleteRoom).Methods("DELETE")
	r.HandleFunc("/api/rooms/{id}/status", roomHandler.SetRoomStatus).Methods("PUT")

	r.HandleFunc("/api/guests", guestHandler.ListGuests).Methods("GET")
	r.HandleFunc("/api/guests", guestHandler.CreateGuest).Methods("POST")
	r.HandleFunc("/api/guests/{id}", guestHandler.GetGuest).Methods("GET")
	r.HandleFunc("/api/guests/{id}", guestHandler.UpdateGuest).Methods("PUT")
	r.HandleFunc("/api/guests/{id}", guestHandler.DeleteGuest).Methods("DELETE")

	r.HandleFunc("/api/reservations", reservationHandler.ListReservations).Methods("GET")
	r.HandleFunc("/api/reservations", reservationHandler.CreateReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}", reservationHandler.GetReservation).Methods("GET")
	r.HandleFunc("/api/reservations/{id}", reservationHandler.UpdateReservation).Methods("PUT")
	r.HandleFunc("/api/reservations/{id}", reservationHandler.DeleteReservation).Methods("DELETE")
	r.HandleFunc("/api/reservations/{id}/status", reservationHandler.ChangeStatus).Methods("POST")
	r.HandleFunc("/api/checkin", reservationHandler.QuickCheckIn).Methods("POST")

	r.HandleFunc("/api/dashboard/stats", dashboardHandler.GetStats).Methods("GET")
	r.HandleFunc("/api/dashboard/schedule", dashboardHandler.GetSchedule).Methods("GET")

	r.HandleFunc("/api/notifications", notificationHandler.ListNotifications).Methods("GET")
	r.HandleFunc("/api/notifications/read-all", notificationHandler.MarkAllRead).Methods("PUT")
	r.HandleFunc("/api/notifications/{id}/read", notificationHandler.MarkRead).Methods("PUT")
	r.HandleFunc("/api/notifications/{id}", notificationHandler.DeleteNotification).Methods("DELETE")

	r.HandleFunc("/api/profile", profileHandler.GetProfile).Methods("GET")
	r.HandleFunc("/api/profile", profileHandler.UpdateProfile).Methods("PUT")

	c := cron.New()
	if _, err := c.AddFunc(cfg.HousekeepingCron, jobSvc.Run); err != nil {
		log.Fatalf("Failed to schedule housekeeping job: %v", err)
	}
	c.Start()
	defer c.Stop()

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
