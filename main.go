package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/api"
	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/memory"
	"github.com/carson-networks/ledger-server/internal/storage/sqlite"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("ledger-server starting")

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}

	ledger, err := openLedger(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("storage.open")
		return
	}
	defer ledger.Close()

	ops := operator.NewOperatorDelegator(ledger, 1)
	ops.Start()
	defer ops.Stop()

	svc := service.NewService(ledger, ops)

	rest := api.Rest{
		Logger:         logger,
		Port:           cfg.Server.Port,
		Service:        svc,
		MetricsEnabled: cfg.Server.MetricsEnabled,
	}
	if cfg.Auth.Enabled {
		tokens := auth.NewTokenService(cfg.Auth.SigningSecret)
		rest.Credentials = auth.NewCredentialStore(credentialsFromConfig(cfg))
		rest.Tokens = tokens
		rest.Guard = auth.NewGuard(tokens)
	}

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		rest.Serve()
	}()

	wg.Wait()
}

func openLedger(cfg *config.Config) (storage.Ledger, error) {
	if cfg.Storage.Backend == "sqlite" {
		return sqlite.NewLedger(cfg.Storage.SQLitePath)
	}
	return memory.NewLedger(), nil
}

func credentialsFromConfig(cfg *config.Config) []auth.Credential {
	credentials := make([]auth.Credential, len(cfg.Auth.Credentials))
	for i, c := range cfg.Auth.Credentials {
		credentials[i] = auth.Credential{
			Username: c.Username,
			Password: c.Password,
			Role:     auth.Role(c.Role),
		}
	}
	return credentials
}
