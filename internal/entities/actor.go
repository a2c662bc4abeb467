package entities

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Address идентификатор участника: "0x" + 40 hex в нижнем регистре.
// Пустая строка это null identity.
type Address string

const NullAddress Address = ""

const zeroAddress = "0x0000000000000000000000000000000000000000"

var addressRe = regexp.MustCompile(`^0x[0-9a-f]{40}$`)

// ParseAddress нормализует адрес. Пустая строка и нулевой адрес дают NullAddress.
func ParseAddress(s string) (Address, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == zeroAddress {
		return NullAddress, nil
	}
	if !addressRe.MatchString(s) {
		return NullAddress, fmt.Errorf("malformed address %q: %w", s, ErrInvalidInput)
	}
	return Address(s), nil
}

func (a Address) IsNull() bool {
	return a == NullAddress
}

func (a Address) String() string {
	return string(a)
}

type Role string

const (
	RoleNone             Role = "none"
	RoleShipper          Role = "shipper"
	RoleCarrier          Role = "carrier"
	RoleConsignee        Role = "consignee"
	RoleTerminalOperator Role = "terminal_operator"
)

func (r Role) String() string {
	return string(r)
}

// Assignable роль, которую можно выдать при регистрации. None выдать нельзя.
func (r Role) Assignable() bool {
	switch r {
	case RoleShipper, RoleCarrier, RoleConsignee, RoleTerminalOperator:
		return true
	default:
		return false
	}
}

type Actor struct {
	Address      Address
	Role         Role
	RegisteredBy Address
	RegisteredAt time.Time
}
