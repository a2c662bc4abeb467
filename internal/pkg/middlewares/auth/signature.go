package auth

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/zeebo/blake3"
	"ledger/internal/entities"
)

const (
	HeaderPublicKey = "X-Ledger-Public-Key"
	HeaderTimestamp = "X-Ledger-Timestamp"
	HeaderSignature = "X-Ledger-Signature"
)

var (
	ErrInvalidSignature = errors.New("invalid request signature")
	ErrStaleTimestamp   = errors.New("request timestamp outside the allowed window")
	ErrReplayedRequest  = errors.New("request signature already used")
)

type callerKey struct{}

// Caller адрес проверенного вызывающего, NullAddress для анонимного запроса.
func Caller(ctx context.Context) entities.Address {
	addr, _ := ctx.Value(callerKey{}).(entities.Address)
	return addr
}

func WithCaller(ctx context.Context, addr entities.Address) context.Context {
	return context.WithValue(ctx, callerKey{}, addr)
}

// AddressFromPublicKey "0x" + последние 20 байт BLAKE3(pub).
func AddressFromPublicKey(pub ed25519.PublicKey) entities.Address {
	sum := blake3.Sum256(pub)
	return entities.Address("0x" + hex.EncodeToString(sum[12:]))
}

// SigningMessage METHOD \n REQUEST-URI \n TIMESTAMP \n hex(BLAKE3(body)).
func SigningMessage(method, requestURI string, timestamp int64, body []byte) []byte {
	bodyHash := blake3.Sum256(body)
	return []byte(method + "\n" + requestURI + "\n" + strconv.FormatInt(timestamp, 10) + "\n" + hex.EncodeToString(bodyHash[:]))
}

// Sign проставляет заголовки подписи. body должен совпадать с телом запроса.
func Sign(r *http.Request, priv ed25519.PrivateKey, body []byte, now time.Time) {
	ts := now.Unix()
	sig := ed25519.Sign(priv, SigningMessage(r.Method, r.URL.RequestURI(), ts, body))

	pub, _ := priv.Public().(ed25519.PublicKey)
	r.Header.Set(HeaderPublicKey, hex.EncodeToString(pub))
	r.Header.Set(HeaderTimestamp, strconv.FormatInt(ts, 10))
	r.Header.Set(HeaderSignature, hex.EncodeToString(sig))
}

// Signed запрос несет хотя бы один заголовок подписи.
func Signed(r *http.Request) bool {
	return r.Header.Get(HeaderPublicKey) != "" ||
		r.Header.Get(HeaderTimestamp) != "" ||
		r.Header.Get(HeaderSignature) != ""
}

func verify(r *http.Request, body []byte, now time.Time, maxSkew time.Duration) (entities.Address, error) {
	pub, err := hex.DecodeString(r.Header.Get(HeaderPublicKey))
	if err != nil || len(pub) != ed25519.PublicKeySize {
		return entities.NullAddress, fmt.Errorf("%w: malformed %s", ErrInvalidSignature, HeaderPublicKey)
	}

	ts, err := strconv.ParseInt(r.Header.Get(HeaderTimestamp), 10, 64)
	if err != nil {
		return entities.NullAddress, fmt.Errorf("%w: malformed %s", ErrInvalidSignature, HeaderTimestamp)
	}
	skew := now.Sub(time.Unix(ts, 0))
	if skew > maxSkew || skew < -maxSkew {
		return entities.NullAddress, fmt.Errorf("%w: skew %s", ErrStaleTimestamp, skew)
	}

	sig, err := hex.DecodeString(r.Header.Get(HeaderSignature))
	if err != nil || len(sig) != ed25519.SignatureSize {
		return entities.NullAddress, fmt.Errorf("%w: malformed %s", ErrInvalidSignature, HeaderSignature)
	}

	if !ed25519.Verify(pub, SigningMessage(r.Method, r.URL.RequestURI(), ts, body), sig) {
		return entities.NullAddress, ErrInvalidSignature
	}
	return AddressFromPublicKey(pub), nil
}
