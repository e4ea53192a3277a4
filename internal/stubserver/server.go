package stubserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Zeldris69240/reqres-app/internal/client/models"
	"github.com/Zeldris69240/reqres-app/internal/logging"
)

// Server bundles the repo, token issuer and router.
type Server struct {
	repo   *UserRepo
	tokens *TokenIssuer
	logger logging.Logger
}

func NewServer(repo *UserRepo, tokens *TokenIssuer, logger logging.Logger) *Server {
	return &Server{repo: repo, tokens: tokens, logger: logger}
}

// Router mounts the directory contract under /api.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Get("/users", s.handleListUsers)
		r.Put("/users/{id}", s.handleUpdateUser)
		r.Delete("/users/{id}", s.handleDeleteUser)
	})
	return r
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Email == "" || in.Password == "" {
		httpError(w, http.StatusBadRequest, "Missing email or password")
		return
	}

	if !s.repo.CheckPassword(in.Email, in.Password) {
		httpError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := s.tokens.Issue(in.Email)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "token error")
		return
	}

	s.logger.Info(r.Context(), "login", "email", in.Email)
	jsonOK(w, map[string]string{"token": token})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	// Single fixed page; any page value returns the whole collection.
	jsonOK(w, map[string]any{
		"page": 1,
		"data": s.repo.List(),
	})
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var in struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if !s.repo.Update(id, in.FirstName, in.LastName, in.Email) {
		httpError(w, http.StatusNotFound, "user not found")
		return
	}

	s.logger.Info(r.Context(), "user updated", "id", id)
	jsonOK(w, models.User{ID: id, FirstName: in.FirstName, LastName: in.LastName, Email: in.Email})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, http.StatusBadRequest, "invalid id")
		return
	}

	s.repo.Delete(id)
	s.logger.Info(r.Context(), "user deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
