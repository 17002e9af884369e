// Package server provides the HTTP REST API for the message polisher.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/message-polisher/internal/compose"
	"github.com/jonathan/message-polisher/internal/config"
	"github.com/jonathan/message-polisher/internal/phrasebank"
	"github.com/jonathan/message-polisher/internal/server/middleware"
	"github.com/jonathan/message-polisher/internal/server/ratelimit"
)

// Name and Version identify the service in the root metadata endpoint.
const (
	Name    = "Message Polisher API"
	Version = "1.0.0"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	banks       *phrasebank.Banks
	composer    *compose.Composer
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService // nil when bearer auth is disabled
}

// Config holds server configuration
type Config struct {
	Port        int
	ProxySecret string
	Banks       *phrasebank.Banks
	JWTConfig   *config.JWTConfig // optional; enables bearer auth when set
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	banks := cfg.Banks
	if banks == nil {
		banks = phrasebank.Defaults()
	}

	s := &Server{
		banks:       banks,
		composer:    compose.New(banks),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	var bearer middleware.TokenValidator
	if cfg.JWTConfig != nil {
		s.jwtService = NewJWTService(cfg.JWTConfig)
		bearer = s.jwtService.AsTokenValidator()
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /polish", s.handlePolish)
	mux.HandleFunc("POST /buzzwordify", s.handleBuzzwordify)
	mux.HandleFunc("POST /reply-suggestions", s.handleReplySuggestions)
	mux.HandleFunc("GET /phrases", s.handlePhrases)

	// Middleware chain, outermost first: throttling runs before anything
	// else, auth runs after CORS so preflights never need credentials.
	var handler http.Handler = mux
	handler = middleware.BearerAuth(bearer)(handler)
	handler = middleware.ProxySecret(cfg.ProxySecret)(handler)
	handler = s.withCORS(handler)
	handler = s.withLogging(handler)
	handler = middleware.RequestID(handler)
	handler = s.withRateLimit(handler)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+middleware.ProxySecretHeader)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s id=%s", r.Method, r.URL.Path, r.RemoteAddr, middleware.GetRequestID(r))
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleRoot returns service metadata
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"name":      Name,
		"version":   Version,
		"endpoints": []string{"/polish", "/buzzwordify", "/reply-suggestions", "/phrases", "/health"},
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; a deployment behind a trusted
// proxy would switch to X-Forwarded-For here.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit
// information, or a 403 when the client is blacklisted outright.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	if info.Blocked {
		log.Printf("[rate-limit] Blocked client denied")
		s.jsonResponse(w, http.StatusForbidden, map[string]string{
			"error":   "client_blocked",
			"message": "This client is blocked from accessing the service.",
		})
		return
	}

	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
