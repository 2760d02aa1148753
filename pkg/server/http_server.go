package server

import (
	"net/http"
	"strings"

	"github.com/NYTimes/gziphandler"
	"github.com/atelier-dourado/backoffice/pkg/application"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewHTTPServer(app application.Application, allowedOrigins string) *HTTPServer {
	return &HTTPServer{
		Controllers:    app.Controllers(),
		Middlewares:    app.Middleware(),
		AllowedOrigins: strings.Split(allowedOrigins, ","),
	}
}

type HTTPServer struct {
	Controllers    []application.Controller
	Middlewares    []mux.MiddlewareFunc
	AllowedOrigins []string
}

func (s *HTTPServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.Middlewares...)
	for _, controller := range s.Controllers {
		controller.Register(r)
	}
	return r
}

func (s *HTTPServer) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: s.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return gziphandler.GzipHandler(c.Handler(s.Router()))
}

func (s *HTTPServer) Start(socketAddress string) error {
	return http.ListenAndServe(socketAddress, s.Handler())
}
