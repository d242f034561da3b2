package main

import (
	auth "Stratum/internal/auth"
	allowable "Stratum/internal/calc/allowable"
	bearing "Stratum/internal/calc/bearing"
	chart "Stratum/internal/calc/chart"
	classify "Stratum/internal/calc/classify"
	autosize "Stratum/internal/calc/premium/autosize"
	batch "Stratum/internal/calc/premium/batch"
	importer "Stratum/internal/calc/premium/importer"
	report "Stratum/internal/calc/report"
	spt "Stratum/internal/calc/spt"
	metrics "Stratum/internal/metrics"
	profile "Stratum/internal/profile"
	repo "Stratum/internal/repo"
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func initLogger() {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	slog.SetDefault(slog.New(handler))
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not loaded", "error", err)
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		slog.Error("TOKEN_KEY environment variable is not set")
		os.Exit(1)
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	mux.Handle("/metrics", metrics.Handler()).Methods("GET")

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)
	api.Use(metrics.Middleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile/history", profileH.History).Methods("GET")
	secureApi.HandleFunc("/profile/history", profileH.SaveCalculation).Methods("POST")

	bearingH := &bearing.Handler{}
	allowableH := &allowable.Handler{}
	sptH := &spt.Handler{}
	classifyH := &classify.Handler{}
	reportH := &report.Handler{}
	chartH := &chart.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	autosizeH := &autosize.Handler{}

	secureApi.HandleFunc("/tools/bearing/calc", bearingH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/bearing/factors", bearingH.Factors).Methods("POST")
	secureApi.HandleFunc("/tools/allowable/calc", allowableH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/spt/calc", sptH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/classify/calc", classifyH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/chart/capacity", chartH.Capacity).Methods("POST")

	secureApi.HandleFunc("/premium/batch/bearing", batchH.Bearing).Methods("POST")
	secureApi.HandleFunc("/premium/batch/allowable", batchH.Allowable).Methods("POST")
	secureApi.HandleFunc("/premium/import/bearing", importerH.Bearing).Methods("POST")
	secureApi.HandleFunc("/premium/export/bearing", importerH.Export).Methods("POST")
	secureApi.HandleFunc("/premium/autosize/footing", autosizeH.Footing).Methods("POST")

	authFileServer := http.FileServer(http.Dir("./static/auth"))
	mux.PathPrefix("/auth/").
		Handler(authEnv.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
	profileFileServer := http.FileServer(http.Dir("./static/profile"))
	mux.PathPrefix("/profile/").
		Handler(authEnv.AuthMiddleware(http.StripPrefix("/profile", profileFileServer)))
	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	initLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":443"
	}
	slog.Info("starting server", "addr", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")

	wg.Wait()
}
