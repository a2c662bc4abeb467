//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=healthcheck_head_test
package healthcheck_head

import "context"

// Storage хранилище журнала: postgres пул или in-memory store.
type Storage interface {
	Ping(ctx context.Context) error
}
