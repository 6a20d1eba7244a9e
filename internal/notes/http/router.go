package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/notekeeper/internal/notes/service"
	"github.com/aussiebroadwan/notekeeper/internal/notes/store"
	"github.com/aussiebroadwan/notekeeper/pkg/httpx"
	"github.com/aussiebroadwan/notekeeper/pkg/slogx"

	_ "github.com/aussiebroadwan/notekeeper/api/notes" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	corsOrigin   string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	TokenService   *service.TokenService
	AccountService *service.AccountService
	NoteService    *service.NoteService
}

func NewRouter(
	buildVersion, corsOrigin string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		corsOrigin:   corsOrigin,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORSMiddleware(r.corsOrigin),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerNotes()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Notekeeper API
//	@version		0.1.0
//	@description	Note storage service with bearer credential authentication.
//	@description
//	@description				Access tokens are HS256 JWTs valid for one hour. Refresh tokens do not expire and stay valid until logout.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/notekeeper
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) gate(h http.Handler) http.Handler {
	return httpx.Chain(h, httpx.AuthnMiddleware(r.TokenService))
}

func (r *Router) registerAuth() {
	accounts := &AccountHandler{AccountService: r.AccountService}
	tokens := &TokenHandler{TokenService: r.TokenService}

	r.Mux.HandleFunc("POST /register", accounts.HandleRegister)
	r.Mux.HandleFunc("POST /login", accounts.HandleLogin)
	r.Mux.HandleFunc("POST /refresh_access_token", tokens.HandleRefresh)
	r.Mux.HandleFunc("DELETE /logout", tokens.HandleLogout)

	r.Mux.Handle("GET /test_auth_middleware", r.gate(http.HandlerFunc(HandleWhoami)))
	r.Mux.Handle("GET /verify_access_token", r.gate(http.HandlerFunc(HandleVerifyAccessToken)))
}

func (r *Router) registerNotes() {
	h := &NotesHandler{NoteService: r.NoteService}

	r.Mux.Handle("POST /secret_message", r.gate(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("GET /secret_message", r.gate(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /secret_message/get_single_secret/{id}", r.gate(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("DELETE /secret_message/{id}", r.gate(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
