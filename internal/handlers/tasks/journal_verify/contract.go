//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=journal_verify_test
package journal_verify

import (
	"context"

	"ledger/internal/service/journal"
)

type Verifier interface {
	Verify(ctx context.Context) (*journal.VerifyResult, error)
}
