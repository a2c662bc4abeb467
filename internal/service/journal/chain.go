package journal

import (
	"bytes"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"
	"ledger/internal/entities"
)

const hashContext = "ledger 2026-01-01 event chain v1"

const HashSize = 32

// GenesisHash PrevHash первого события.
var GenesisHash = make([]byte, HashSize)

var encMode = mustEncMode()

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cbor encoding mode: %v", err))
	}
	return em
}

// envelope каноническое представление события для хеширования.
// Ключи целые, порядок и кодирование детерминированы (RFC 8949 core deterministic).
type envelope struct {
	Sequence   int64  `cbor:"1,keyasint"`
	ID         []byte `cbor:"2,keyasint"`
	Type       string `cbor:"3,keyasint"`
	ShipmentID int64  `cbor:"4,keyasint"`
	Actor      string `cbor:"5,keyasint"`
	Payload    []byte `cbor:"6,keyasint"`
	RecordedAt int64  `cbor:"7,keyasint"`
	PrevHash   []byte `cbor:"8,keyasint"`
}

// ComputeHash хеш события по всем полям кроме самого Hash.
func ComputeHash(e *entities.Event) ([]byte, error) {
	raw, err := encMode.Marshal(envelope{
		Sequence:   e.Sequence,
		ID:         e.ID[:],
		Type:       e.Type.String(),
		ShipmentID: e.ShipmentID,
		Actor:      e.Actor.String(),
		Payload:    e.Payload,
		RecordedAt: e.RecordedAt.UnixMicro(),
		PrevHash:   e.PrevHash,
	})
	if err != nil {
		return nil, fmt.Errorf("encode event envelope: %w", err)
	}

	h := blake3.NewDeriveKey(hashContext)
	_, _ = h.Write(raw)
	return h.Sum(nil), nil
}

// Verifier проверяет цепочку событие за событием. Нулевое значение
// ждет событие с Sequence=1 и GenesisHash.
type Verifier struct {
	lastSequence int64
	lastHash     []byte
}

// NewVerifier продолжает проверку с уже проверенной точки (checkpoint).
func NewVerifier(lastSequence int64, lastHash []byte) *Verifier {
	return &Verifier{
		lastSequence: lastSequence,
		lastHash:     bytes.Clone(lastHash),
	}
}

func (v *Verifier) Next(e *entities.Event) error {
	if e.Sequence != v.lastSequence+1 {
		return fmt.Errorf("%w: expected %d, got %d", ErrSequenceGap, v.lastSequence+1, e.Sequence)
	}

	expectedPrev := v.lastHash
	if v.lastSequence == 0 {
		expectedPrev = GenesisHash
	}
	if !bytes.Equal(e.PrevHash, expectedPrev) {
		return fmt.Errorf("%w: event %d does not link to its predecessor", ErrChainBroken, e.Sequence)
	}

	hash, err := ComputeHash(e)
	if err != nil {
		return err
	}
	if !bytes.Equal(hash, e.Hash) {
		return fmt.Errorf("%w: event %d hash mismatch", ErrChainBroken, e.Sequence)
	}

	v.lastSequence = e.Sequence
	v.lastHash = bytes.Clone(e.Hash)
	return nil
}

func (v *Verifier) LastSequence() int64 {
	return v.lastSequence
}

func (v *Verifier) LastHash() []byte {
	return bytes.Clone(v.lastHash)
}
