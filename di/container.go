package di

import (
	"context"
	"fmt"

	"booking-widget/api"
	"booking-widget/api/hotel"
	"booking-widget/config"
	"booking-widget/dao/redis"
	"booking-widget/db"
	"booking-widget/server"
	"booking-widget/server/handlers"
	services "booking-widget/service"
	"booking-widget/util"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// Container holds all application dependencies.
type Container struct {
	Config                  config.Config
	RedisClient             db.RedisClient
	RedisSessionDao         *redis.RedisSessionDAO
	HotelAPI                hotel.HotelAPI
	BookingSessionService   *services.BookingSessionService
	SessionHandler          *handlers.SessionHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	BookingWidgetHttpServer *server.BookingWidgetHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg config.Config) *Container {
	log.Info().Str("env", cfg.Env).Msg("initializing container")
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	redisClient, err := db.NewGoRedisClient(ctx, redisInternalClient)
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	redisSessionDao := redis.NewRedisSessionDAO(redisClient, cfg.SessionTTL)

	var hotelAPI hotel.HotelAPI
	if cfg.UseMockAPI {
		log.Info().Msg("using mock hotel api")
		hotelAPI = hotel.NewHotelApiClientMock(config.GetResourcePath(config.FIND_ROOMS_RESPONSE_RESOURCE))
	} else {
		log.Info().Str("api_url", cfg.APIURL).Dur("timeout", cfg.APITimeout).Msg("using hotel api")
		hotelAPI = hotel.NewHotelApiClient(api.NewHTTPClient(cfg.APIURL, cfg.APITimeout))
	}

	bookingSessionService := services.NewBookingSessionService(
		redisSessionDao,
		hotelAPI,
		config.HOTEL_ID,
		util.NewPriceFormatter(cfg.DisplayLocale),
		services.NewLogNotifier(),
	)

	sessionHandler := handlers.NewSessionHandler(bookingSessionService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(sessionHandler, muxRouter)

	handler := server.NewHandler(
		muxRouter,
		server.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		cfg.CORSAllowedOrigins,
	)
	bookingWidgetHttpServer := server.NewBookingWidgetHttpServer(router, handler, cfg.ServerAddr)
	bookingWidgetHttpServer.OnShutdown(func() {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	})

	return &Container{
		Config:                  cfg,
		RedisClient:             redisClient,
		RedisSessionDao:         redisSessionDao,
		HotelAPI:                hotelAPI,
		BookingSessionService:   bookingSessionService,
		SessionHandler:          sessionHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		BookingWidgetHttpServer: bookingWidgetHttpServer,
	}
}
