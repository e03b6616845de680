package service

import (
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Ledger *LedgerService
}

// NewService creates a new Service over the given store and operator.
func NewService(ledger storage.Ledger, ops *operator.OperatorDelegator) *Service {
	return &Service{
		Ledger: NewLedgerService(ledger, ops),
	}
}
