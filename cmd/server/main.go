package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"jackut/internal/config"
	"jackut/internal/snapshot"
	"jackut/internal/store"
	"jackut/internal/transport/http/handlers"
	"jackut/internal/transport/http/middleware"
	"jackut/internal/transport/ws"
	"jackut/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if err := logger.Init(cfg.Env); err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	// Snapshot
	snap, err := snapshot.Open(cfg.SnapshotPath)
	if err != nil {
		log.Fatal("opening snapshot", zap.Error(err))
	}
	defer snap.Close()

	// Store, replayed from the snapshot
	st := store.New()
	users, communities, err := snap.Load(context.Background())
	if err != nil {
		log.Fatal("loading snapshot", zap.Error(err))
	}
	st.Load(users, communities)
	log.Info("store loaded",
		zap.Int("users", len(users)),
		zap.Int("communities", len(communities)),
	)

	// WebSocket hub
	hub := ws.NewHub()
	go hub.Run()

	// Handlers
	h := handlers.New(st, snap, hub, cfg.JWTSecret)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/v1/users", h.CreateUser)
	mux.HandleFunc("POST /api/v1/sessions", h.OpenSession)
	mux.HandleFunc("GET /api/v1/users/{login}/attributes/{attribute}", h.GetAttribute)
	mux.HandleFunc("GET /api/v1/users/{login}/friends", h.GetFriends)
	mux.HandleFunc("GET /api/v1/users/{login}/friends/{other}", h.AreFriends)
	mux.HandleFunc("GET /api/v1/users/{login}/fans", h.GetFans)
	mux.HandleFunc("GET /api/v1/users/{login}/idols/{idol}", h.IsFan)
	mux.HandleFunc("GET /api/v1/users/{login}/flirts", h.GetFlirts)
	mux.HandleFunc("GET /api/v1/users/{login}/flirts/{other}", h.IsFlirt)
	mux.HandleFunc("GET /api/v1/users/{login}/communities", h.GetUserCommunities)
	mux.HandleFunc("GET /api/v1/communities/{name}", h.GetCommunity)

	// Protected - profile and account
	mux.Handle("PUT /api/v1/profile/attributes", auth(http.HandlerFunc(h.SetAttribute)))
	mux.Handle("DELETE /api/v1/account", auth(http.HandlerFunc(h.DeleteAccount)))

	// Protected - relations
	mux.Handle("POST /api/v1/friends", auth(http.HandlerFunc(h.AddFriend)))
	mux.Handle("POST /api/v1/idols", auth(http.HandlerFunc(h.AddIdol)))
	mux.Handle("POST /api/v1/flirts", auth(http.HandlerFunc(h.AddFlirt)))
	mux.Handle("POST /api/v1/enemies", auth(http.HandlerFunc(h.AddEnemy)))

	// Protected - messaging
	mux.Handle("POST /api/v1/messages", auth(http.HandlerFunc(h.SendMessage)))
	mux.Handle("POST /api/v1/messages/read", auth(http.HandlerFunc(h.ReadMessage)))
	mux.Handle("POST /api/v1/posts/read", auth(http.HandlerFunc(h.ReadPost)))

	// Protected - communities
	mux.Handle("POST /api/v1/communities", auth(http.HandlerFunc(h.CreateCommunity)))
	mux.Handle("POST /api/v1/communities/{name}/members", auth(http.HandlerFunc(h.JoinCommunity)))
	mux.Handle("POST /api/v1/communities/{name}/posts", auth(http.HandlerFunc(h.PostToCommunity)))

	// System lifecycle
	mux.Handle("POST /api/v1/system/shutdown", auth(http.HandlerFunc(h.Shutdown)))
	mux.Handle("POST /api/v1/system/reset", auth(http.HandlerFunc(h.Reset)))

	// Event stream
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, cfg.JWTSecret, h.SessionResolver()))

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: middleware.CORS(middleware.AccessLog(log)(mux)),
	}

	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("server shutdown", zap.Error(err))
	}

	// Persist the final state, same boundary as the explicit shutdown verb.
	u, c := st.Snapshot()
	if err := snap.Save(ctx, u, c); err != nil {
		log.Error("saving snapshot", zap.Error(err))
	}
}
