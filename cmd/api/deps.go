package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/JPCabral04/PersonalFinance/internal/domain/account"
	"github.com/JPCabral04/PersonalFinance/internal/domain/ledger"
	"github.com/JPCabral04/PersonalFinance/internal/domain/user"
	"github.com/JPCabral04/PersonalFinance/internal/infrastructure/memory"
	"github.com/JPCabral04/PersonalFinance/internal/infrastructure/postgres"
	httphandlers "github.com/JPCabral04/PersonalFinance/internal/interfaces/http"
	"github.com/JPCabral04/PersonalFinance/internal/shared/auth"
	"github.com/JPCabral04/PersonalFinance/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB *postgres.DB // nil when running on the memory driver

	AuthHandler        *httphandlers.AuthHandler
	UserHandler        *httphandlers.UserHandler
	AccountHandler     *httphandlers.AccountHandler
	TransactionHandler *httphandlers.TransactionHandler

	JWT *auth.JWT
}

// NewDependencies initializes all application dependencies. The stores are
// built explicitly and injected; nothing holds process-wide repository state.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	var (
		db              *postgres.DB
		accountRepo     account.Repository
		transactionRepo ledger.TransactionStore
		userRepo        user.Repository
	)

	switch cfg.Database.Driver {
	case "postgres":
		var err error
		db, err = postgres.New(cfg.Database.ConnectionString())
		if err != nil {
			return nil, err
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("connected to database", zap.String("driver", "postgres"))

		accountRepo = postgres.NewAccountRepository(db)
		transactionRepo = postgres.NewTransactionRepository(db)
		userRepo = postgres.NewUserRepository(db)

	case "memory":
		logger.Info("using in-memory stores", zap.String("driver", "memory"))
		txStore := memory.NewTransactionStore()
		accountRepo = memory.NewAccountStore(txStore)
		transactionRepo = txStore
		userRepo = memory.NewUserStore()

	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	// Domain services
	userService := user.NewService(userRepo)
	accountService := account.NewService(accountRepo, userRepo)
	ledgerService := ledger.NewService(accountRepo, transactionRepo)

	// Auth components
	jwt := auth.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	return &Dependencies{
		DB:                 db,
		AuthHandler:        httphandlers.NewAuthHandler(userService, jwt, logger),
		UserHandler:        httphandlers.NewUserHandler(userService, logger),
		AccountHandler:     httphandlers.NewAccountHandler(accountService, logger),
		TransactionHandler: httphandlers.NewTransactionHandler(ledgerService, logger),
		JWT:                jwt,
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
