package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SessionRoutes is implemented by handlers.SessionHandler.
type SessionRoutes interface {
	Ping(w http.ResponseWriter, r *http.Request)
	CreateSession(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	CloseSession(w http.ResponseWriter, r *http.Request)
	SetCriteria(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	ToggleRoom(w http.ResponseWriter, r *http.Request)
	NextPhoto(w http.ResponseWriter, r *http.Request)
	PreviousPhoto(w http.ResponseWriter, r *http.Request)
	JumpToPhoto(w http.ResponseWriter, r *http.Request)
	SetGuest(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	PriceChart(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	sessionHandler SessionRoutes
	router         *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	sessionHandler SessionRoutes,
	router *mux.Router) *Router {
	return &Router{
		sessionHandler: sessionHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/ping", r.sessionHandler.Ping).Methods("GET")

	v1 := r.router.PathPrefix("/v1/sessions").Subrouter()
	v1.HandleFunc("", r.sessionHandler.CreateSession).Methods("POST")
	v1.HandleFunc("/{id}", r.sessionHandler.GetSession).Methods("GET")
	v1.HandleFunc("/{id}", r.sessionHandler.CloseSession).Methods("DELETE")
	// body: any of {"entryDate":"2024-06-01","exitDate":"2024-06-05","adults":2,"children":0}
	v1.HandleFunc("/{id}/criteria", r.sessionHandler.SetCriteria).Methods("PUT")
	v1.HandleFunc("/{id}/search", r.sessionHandler.Search).Methods("POST")
	v1.HandleFunc("/{id}/rooms/{roomId}/toggle", r.sessionHandler.ToggleRoom).Methods("POST")
	v1.HandleFunc("/{id}/rooms/{roomId}/photos/next", r.sessionHandler.NextPhoto).Methods("POST")
	v1.HandleFunc("/{id}/rooms/{roomId}/photos/previous", r.sessionHandler.PreviousPhoto).Methods("POST")
	v1.HandleFunc("/{id}/rooms/{roomId}/photos/{index:[0-9]+}", r.sessionHandler.JumpToPhoto).Methods("PUT")
	// body: {"name":"...","email":"...","phone":"..."}
	v1.HandleFunc("/{id}/guest", r.sessionHandler.SetGuest).Methods("PUT")
	v1.HandleFunc("/{id}/reservation", r.sessionHandler.Submit).Methods("POST")
	v1.HandleFunc("/{id}/prices/chart", r.sessionHandler.PriceChart).Methods("GET")
}
