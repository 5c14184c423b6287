package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"gigflare/internal/config"
	"gigflare/internal/handlers"
	"gigflare/internal/ratelimit"
	"gigflare/internal/repositories"
	"gigflare/internal/services"
	"gigflare/utils"
)

const (
	readLimit  = 60
	writeLimit = 10
	rateWindow = time.Minute
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB

	userService *services.UserService

	userHandler     *handlers.UserHandler
	gigHandler      *handlers.GigHandler
	requestHandler  *handlers.RequestHandler
	proposalHandler *handlers.ProposalHandler
	uploadHandler   *handlers.UploadHandler
	healthHandler   *handlers.HealthHandler
}

func initializeApp(cfg config.Config, db *sql.DB, rdb *redis.Client, errorLog, infoLog *log.Logger) (*application, error) {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	gigRepo := repositories.GigRepository{DB: db}
	requestRepo := repositories.RequestRepository{DB: db}
	proposalRepo := repositories.ProposalRepository{DB: db}

	// Services
	tokens, err := utils.NewManager(cfg.Auth.SigningKey, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
	if err != nil {
		return nil, err
	}
	userService := &services.UserService{UserRepo: &userRepo, Tokens: tokens}
	gigService := &services.GigService{GigRepo: &gigRepo}
	requestService := &services.RequestService{RequestRepo: &requestRepo}
	proposalService := &services.ProposalService{ProposalRepo: &proposalRepo, RequestRepo: &requestRepo}

	storage, err := utils.NewStorage(utils.StorageConfig{
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		Endpoint:   cfg.Storage.Endpoint,
		PublicBase: cfg.Storage.PublicBase,
	})
	if err != nil {
		return nil, err
	}

	store := rateStore(rdb, infoLog)

	return &application{
		errorLog:    errorLog,
		infoLog:     infoLog,
		db:          db,
		userService: userService,
		userHandler: &handlers.UserHandler{
			Service:   userService,
			AuthLimit: ratelimit.New("auth:write", writeLimit, rateWindow, store),
		},
		gigHandler: &handlers.GigHandler{
			Service:     gigService,
			ListLimit:   ratelimit.New("gigs:list", readLimit, rateWindow, store),
			CreateLimit: ratelimit.New("gigs:create", writeLimit, rateWindow, store),
		},
		requestHandler: &handlers.RequestHandler{
			Service:     requestService,
			ListLimit:   ratelimit.New("requests:list", readLimit, rateWindow, store),
			CreateLimit: ratelimit.New("requests:create", writeLimit, rateWindow, store),
		},
		proposalHandler: &handlers.ProposalHandler{
			Service:     proposalService,
			ListLimit:   ratelimit.New("proposals:list", readLimit, rateWindow, store),
			CreateLimit: ratelimit.New("proposals:create", writeLimit, rateWindow, store),
		},
		uploadHandler: &handlers.UploadHandler{
			Storage: storage,
			Limit:   ratelimit.New("uploads:presign", writeLimit, rateWindow, store),
		},
		healthHandler: &handlers.HealthHandler{DB: db},
	}, nil
}

// rateStore prefers Redis so limits hold across instances. Without Redis a
// single-process in-memory store takes over.
func rateStore(rdb *redis.Client, infoLog *log.Logger) ratelimit.Store {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if rdb != nil {
		if err := rdb.Ping(ctx).Err(); err == nil {
			return ratelimit.NewRedisStore(rdb)
		}
		infoLog.Printf("redis unavailable, using in-memory rate limit store")
	}
	mem := ratelimit.NewMemoryStore()
	mem.StartJanitor(context.Background(), 5*time.Minute)
	return mem
}
