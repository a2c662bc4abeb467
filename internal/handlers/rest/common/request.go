package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"ledger/internal/entities"
)

var ErrTrailingData = errors.New("unexpected data after JSON body")

// DecodeJSON строгий разбор тела: незнакомые поля и мусор после объекта запрещены.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	if dec.More() {
		return ErrTrailingData
	}
	return nil
}

func ShipmentID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed shipment id %q", raw)
	}
	return id, nil
}

func PathAddress(r *http.Request, name string) (entities.Address, error) {
	return entities.ParseAddress(mux.Vars(r)[name])
}
