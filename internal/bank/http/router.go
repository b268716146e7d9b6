package http

import (
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aussiebroadwan/cardbank/api/bank" // Swagger docs
	"github.com/aussiebroadwan/cardbank/internal/bank/domain"
	"github.com/aussiebroadwan/cardbank/internal/bank/service"
	"github.com/aussiebroadwan/cardbank/internal/bank/store"
	"github.com/aussiebroadwan/cardbank/pkg/httpx"
	"github.com/aussiebroadwan/cardbank/pkg/jwtx"
	"github.com/aussiebroadwan/cardbank/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware
	handler     http.Handler

	tokens       *jwtx.Provider
	cardProbe    service.CardProtector
	buildVersion string
	startTime    time.Time
	trustProxy   bool
	logger       *slog.Logger

	store       store.Store
	AuthService *service.AuthService
	UserService *service.UserService
	CardService *service.CardService
}

// RouterOptions configures the global middleware chain.
type RouterOptions struct {
	BuildVersion  string
	LookupTimeout time.Duration

	// TrustProxy keys IP rate limits on X-Forwarded-For and X-Real-IP.
	TrustProxy bool
}

func NewRouter(
	tokens *jwtx.Provider,
	cards service.CardProtector,
	st store.Store,
	logger *slog.Logger,
	opts RouterOptions,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		tokens:       tokens,
		cardProbe:    cards,
		buildVersion: opts.BuildVersion,
		startTime:    time.Now(),
		trustProxy:   opts.TrustProxy,
		store:        st,
		logger:       logger,
		UserService:  &service.UserService{Store: st},
	}

	// Every request passes the authentication gate; routes decide whether
	// an anonymous caller is acceptable.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.AuthnMiddleware(tokens, r.UserService, httpx.AuthnOptions{
			LookupTimeout: opts.LookupTimeout,
		}),
	}

	return r
}

// ApplyRoutes registers every route and builds the global chain. It must be
// called once, after the services are set, before serving.
func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerCards()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	r.handler = httpx.Chain(r.Mux, r.middlewares...)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Card Bank API
//	@version		0.1.0
//	@description	Card storage service. Bearer tokens are HS512 JWTs issued by the login endpoint.
//	@description	Card numbers are encrypted at rest and only ever returned masked.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/cardbank
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// POST /register - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.ParseRateLimitFromEnv("REGISTER", httpx.StrictLimit), r.trustProxy),
		),
	)

	// POST /login - strict rate limit by IP to slow down credential stuffing
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.ParseRateLimitFromEnv("LOGIN", httpx.StrictLimit), r.trustProxy),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UserHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.RequireAuthenticated(nil),
			httpx.RateLimitByPrincipal(httpx.LenientLimit, r.trustProxy),
		),
	)

	admin := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			httpx.RequireAnyAuthority(string(domain.RoleAdmin)),
			httpx.RateLimitByPrincipal(httpx.LenientLimit, r.trustProxy),
		)
	}
	r.Mux.Handle("POST /v1/users/{id}/lock", admin(h.HandleLock))
	r.Mux.Handle("POST /v1/users/{id}/unlock", admin(h.HandleUnlock))
}

func (r *Router) registerCards() {
	h := &CardHandler{CardService: r.CardService}

	secured := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			httpx.RequireAuthenticated(nil),
			httpx.RateLimitByPrincipal(httpx.LenientLimit, r.trustProxy),
		)
	}
	r.Mux.Handle("POST /v1/cards", secured(h.HandleCreate))
	r.Mux.Handle("GET /v1/cards", secured(h.HandleList))
	r.Mux.Handle("GET /v1/cards/{id}", secured(h.HandleGet))
}

func (r *Router) registerSystem() {
	h := &HealthHandler{
		Version:   r.buildVersion,
		StartTime: r.startTime,
		Store:     r.store,
		Tokens:    r.tokens,
		Cards:     r.cardProbe,
	}

	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(http.HandlerFunc(h.HandleLivez),
			httpx.RateLimitByIP(httpx.LenientLimit, r.trustProxy),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(http.HandlerFunc(h.HandleReadyz),
			httpx.RateLimitByIP(httpx.LenientLimit, r.trustProxy),
		),
	)
}
