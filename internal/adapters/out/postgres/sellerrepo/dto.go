// Package sellerrepo provides persistence for seller account projections.
// Balance and rating columns are only ever touched with atomic SQL increments
// so concurrent settlements and reviews stay commutative.
package sellerrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/seller"

	"github.com/google/uuid"
)

// SellerDTO is the database row for a seller account projection.
// The average rating is intentionally absent: it is derived from the sum and
// count at read time.
type SellerDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	DisplayName           string
	AvailableBalanceCents int64
	TotalEarningsCents    int64
	RatingSum             int64
	RatingCount           int64
}

// TableName specifies the database table name for seller rows.
func (SellerDTO) TableName() string {
	return "sellers"
}

// fromDomain converts a seller account to its database representation.
func fromDomain(account *seller.Account) SellerDTO {
	return SellerDTO{
		ID:                    account.ID().Bytes(),
		DisplayName:           account.DisplayName(),
		AvailableBalanceCents: account.AvailableBalance().Cents(),
		TotalEarningsCents:    account.TotalEarnings().Cents(),
		RatingSum:             account.RatingSum(),
		RatingCount:           account.RatingCount(),
	}
}

// toDomain converts a database row back into a seller account.
func toDomain(dto SellerDTO) (*seller.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	balance, err := kernel.NewMoneyFromCents(dto.AvailableBalanceCents)
	if err != nil {
		return nil, err
	}
	earnings, err := kernel.NewMoneyFromCents(dto.TotalEarningsCents)
	if err != nil {
		return nil, err
	}

	return seller.RestoreAccount(id, dto.DisplayName, balance, earnings, dto.RatingSum, dto.RatingCount)
}
