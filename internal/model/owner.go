package model

import (
	"time"

	"github.com/google/uuid"
)

// Owner represents a shop owner provisioned by the company admin.
// Owners log in with their mobile number.
type Owner struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email,omitempty" db:"email"`
	Mobile       string     `json:"mobile" db:"mobile"`
	PasswordHash string     `json:"-" db:"password_hash"`
	ShopName     string     `json:"shopName" db:"shop_name"`
	Address      string     `json:"address,omitempty" db:"address"`
	OTPCode      string     `json:"-" db:"otp_code"`
	OTPExpiresAt *time.Time `json:"-" db:"otp_expires_at"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
}

// OwnerRequest represents the request payload for creating or updating an owner.
type OwnerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
	ShopName string `json:"shopName"`
	Address  string `json:"address"`
}

// Shop represents a single store belonging to an owner. A shop is the unit of
// tenant isolation together with its owner id.
type Shop struct {
	ID        uuid.UUID `json:"id" db:"id"`
	OwnerID   uuid.UUID `json:"ownerId" db:"owner_id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location,omitempty" db:"location"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ShopRequest represents the request payload for creating a shop.
type ShopRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}
