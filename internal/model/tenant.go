package model

import "github.com/google/uuid"

// ShopRef is the composite tenant key. Every read or write of customers,
// products, invoices and offers is scoped by both identifiers; data belonging
// to one shop is never visible through another shop's ref.
type ShopRef struct {
	OwnerID uuid.UUID `json:"ownerId"`
	ShopID  uuid.UUID `json:"shopId"`
}

// NewShopRef builds a ShopRef from owner and shop identifiers.
func NewShopRef(ownerID, shopID uuid.UUID) ShopRef {
	return ShopRef{OwnerID: ownerID, ShopID: shopID}
}

// Validate rejects refs with a missing owner or shop identifier before any
// storage access is attempted.
func (r ShopRef) Validate() error {
	if r.OwnerID == uuid.Nil || r.ShopID == uuid.Nil {
		return ErrInvalidShopRef
	}
	return nil
}
