package main

import (
	"context"
	"fmt"
	"os"

	"gitlab.com/dirk.krummacker/contacts-app/internal/config"
	"gitlab.com/dirk.krummacker/contacts-app/internal/logging"
	"gitlab.com/dirk.krummacker/contacts-app/internal/service"
	"gitlab.com/dirk.krummacker/contacts-app/internal/store"
	"go.uber.org/zap"
)

// Usage example on the command line:
// > PORT=8080 GIN_MODE=release go run main.go
// > PORT=8080 STORE=mysql DBHOST=localhost DBUSER=dirk DBPWD=bullo92 GIN_MODE=release GIN_LOGGING=OFF go run main.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("could not load configuration", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Println("could not create logger", err)
		os.Exit(1)
	}
	defer logger.Sync()

	contacts, err := openStore(cfg)
	if err != nil {
		logger.Fatal("could not open store", zap.String("store", cfg.Store), zap.Error(err))
	}
	defer contacts.Close()

	if cfg.Seed {
		added, err := store.Seed(context.Background(), contacts)
		if err != nil {
			logger.Fatal("could not seed contacts", zap.Error(err))
		}
		logger.Info("seeded contacts", zap.Int("added", added))
	}

	router := service.SetupHttpRouter(contacts, logger, cfg.RequestLogging())
	logger.Info("starting contacts service", zap.String("addr", cfg.Addr()), zap.String("store", cfg.Store))
	if err := router.Run(cfg.Addr()); err != nil {
		logger.Fatal("http server stopped", zap.Error(err))
	}
}

// openStore returns the store selected by the STORE setting.
func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.Store == config.StoreMySQL {
		return store.OpenMySQL(cfg.DSN())
	}
	return store.NewMemoryStore(), nil
}
