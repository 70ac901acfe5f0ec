package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/frontpage/internal/frontpage/service"
	"github.com/aussiebroadwan/frontpage/pkg/httpx"
	"github.com/aussiebroadwan/frontpage/pkg/redditsdk"
	"github.com/aussiebroadwan/frontpage/pkg/slogx"

	_ "github.com/aussiebroadwan/frontpage/api/frontpage" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	tokens       *redditsdk.TokenManager
	apiKey       string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	FeedService     *service.FeedService
	ThreadService   *service.ThreadService
	MutationService *service.MutationService
	AccountService  *service.AccountService
}

// NewRouter creates a router. An empty apiKey leaves /api/* open.
func NewRouter(
	tokens *redditsdk.TokenManager,
	apiKey, buildVersion string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		tokens:       tokens,
		apiKey:       apiKey,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerFeed()
	r.registerMutations()
	r.registerAccount()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Frontpage API
//	@version		0.1.0
//	@description	Personal feed aggregator. Fetches listings from the upstream API and re-filters, re-ranks and re-orders them.
//	@description
//	@description				Votes and comments are proxied with the account configured on the server.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/frontpage
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	APIKeyAuth
//	@in							header
//	@name						X-API-Key
//	@description				Shared API key, required when FRONTPAGE_API_KEY is set. May also be passed as ?key=.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// api applies the rate limit and then the API key gate, so key guessing is throttled.
func (r *Router) api(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.RateLimitByIP(limit),
		httpx.RequireAPIKey(r.apiKey),
	)
}

func (r *Router) registerFeed() {
	feed := &FeedHandler{FeedService: r.FeedService}
	comments := &CommentsHandler{ThreadService: r.ThreadService}

	r.Mux.Handle("GET /api/feed", r.api(feed, httpx.ReadLimit))
	r.Mux.Handle("GET /api/comments", r.api(comments, httpx.ReadLimit))
}

func (r *Router) registerMutations() {
	vote := &VoteHandler{MutationService: r.MutationService}
	comment := &CommentHandler{MutationService: r.MutationService}

	r.Mux.Handle("POST /api/vote", r.api(vote, httpx.WriteLimit))
	r.Mux.Handle("POST /api/comment", r.api(comment, httpx.WriteLimit))
}

func (r *Router) registerAccount() {
	h := &AccountHandler{AccountService: r.AccountService}

	r.Mux.Handle("GET /api/me", r.api(http.HandlerFunc(h.HandleMe), httpx.ReadLimit))
	r.Mux.Handle("GET /api/mysubs", r.api(http.HandlerFunc(h.HandleSubscriptions), httpx.ReadLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.tokens),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
