package main

import (
	auth "ChainDrive/internal/auth"
	chain "ChainDrive/internal/calc/chain"
	autodesign "ChainDrive/internal/calc/premium/autodesign"
	batch "ChainDrive/internal/calc/premium/batch"
	importer "ChainDrive/internal/calc/premium/importer"
	recommend "ChainDrive/internal/calc/premium/recommend"
	report "ChainDrive/internal/calc/report"
	config "ChainDrive/internal/config"
	repo "ChainDrive/internal/repo"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, cfg config.Config, userRepo repo.Repository) {
	authEnv := &auth.Authenv{JWTkey: []byte(cfg.TokenKey), Repo: userRepo}
	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	chainH := &chain.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	recommendH := &recommend.Handler{}
	autoH := &autodesign.Handler{}

	tools := secureApi.PathPrefix("/tools/chain").Subrouter()
	tools.HandleFunc("/calc", chainH.Calc).Methods("POST")
	tools.HandleFunc("/catalog", chainH.Catalog).Methods("GET")
	tools.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")
	tools.HandleFunc("/batch", batchH.Chain).Methods("POST")
	tools.HandleFunc("/import", importerH.Chain).Methods("POST")
	tools.HandleFunc("/export", importerH.Export).Methods("POST")
	tools.HandleFunc("/service-factor", recommendH.ServiceFactor).Methods("POST")
	tools.HandleFunc("/autodesign", autoH.Chain).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config error: ", err)
	}

	db, err := repo.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Database error: ", err)
	}
	defer db.Close()

	mux := mux.NewRouter()
	HandleList(mux, cfg, repo.NewPostgresUserDB(db))
	handler := CORS(mux)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	log.Printf("Starting server on %s (tls=%v)", cfg.Addr, cfg.TLS())
	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
