package entity

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "Available"
	PropertyStatusRented    PropertyStatus = "Rented"
	PropertyStatusInactive  PropertyStatus = "Inactive"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusRented, PropertyStatusInactive:
		return true
	default:
		return false
	}
}

type Property struct {
	ID uint64

	LandlordID uint64
	Title      string

	District        string
	City            string
	Municipality    string
	Ward            int32
	NearestLandmark *string

	Price  decimal.Decimal
	Status PropertyStatus
}

// Address renders "<municipality>-<ward>, <city>, <district>", skipping empty parts.
func (p *Property) Address() string {
	if p == nil {
		return ""
	}

	parts := make([]string, 0, 4)
	local := strings.TrimSpace(p.Municipality)
	if local != "" && p.Ward > 0 {
		local += "-" + strconv.Itoa(int(p.Ward))
	}
	for _, part := range []string{local, strings.TrimSpace(p.City), strings.TrimSpace(p.District)} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
