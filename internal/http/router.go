package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router uses the standard library http.ServeMux (avoids pulling in a
// third-party router for two routes).
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterConnectivityRoutes wires the processing endpoint and health check.
func (r *Router) RegisterConnectivityRoutes(h *ConnectivityHandler) {
	r.Handle("/connectivity/api/v1/process", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Process(w, req)
	})

	r.Handle("/connectivity/api/v1/health", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Health(w, req)
	})
}
