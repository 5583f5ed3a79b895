package domain

import "github.com/shopspring/decimal"

// Stock is the sellable state of an item.
type Stock struct {
	Price    decimal.Decimal
	Quantity uint32
}

// Info carries optional descriptive data about an item.
type Info struct {
	Name        *string
	Description *string
}

// Item is a single inventory entry keyed by SKU.
type Item struct {
	SKU   string
	Stock *Stock
	Info  *Info
}

// Clone returns a deep copy so callers can never mutate stored state
// through a returned snapshot.
func (it Item) Clone() Item {
	out := Item{SKU: it.SKU}
	if it.Stock != nil {
		st := *it.Stock
		out.Stock = &st
	}
	if it.Info != nil {
		info := Info{}
		if it.Info.Name != nil {
			name := *it.Info.Name
			info.Name = &name
		}
		if it.Info.Description != nil {
			desc := *it.Info.Description
			info.Description = &desc
		}
		out.Info = &info
	}
	return out
}

// Equal reports whether two items carry the same SKU, stock and info.
func (it Item) Equal(other Item) bool {
	if it.SKU != other.SKU {
		return false
	}
	if (it.Stock == nil) != (other.Stock == nil) {
		return false
	}
	if it.Stock != nil {
		if !it.Stock.Price.Equal(other.Stock.Price) || it.Stock.Quantity != other.Stock.Quantity {
			return false
		}
	}
	if (it.Info == nil) != (other.Info == nil) {
		return false
	}
	if it.Info != nil {
		if !strPtrEqual(it.Info.Name, other.Info.Name) {
			return false
		}
		if !strPtrEqual(it.Info.Description, other.Info.Description) {
			return false
		}
	}
	return true
}

func strPtrEqual(a, b *string) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}
