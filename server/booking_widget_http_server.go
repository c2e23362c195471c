package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

const SHUTDOWN_TIMEOUT = 5 * time.Second

type BookingWidgetHttpServer struct {
	router  *Router
	handler http.Handler
	addr    string
	onClose []func()
}

func NewBookingWidgetHttpServer(router *Router, handler http.Handler, addr string) *BookingWidgetHttpServer {
	return &BookingWidgetHttpServer{
		router:  router,
		handler: handler,
		addr:    addr,
	}
}

// OnShutdown registers f to run when the server shuts down.
func (s *BookingWidgetHttpServer) OnShutdown(f func()) {
	s.onClose = append(s.onClose, f)
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *BookingWidgetHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	for _, f := range s.onClose {
		srv.RegisterOnShutdown(f)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", s.addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	<-stop
	log.Info().Msg("shutting down the server")

	ctx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}
