package model

import "math/big"

// RentalStatus is derived only for the viewer who currently rents the book.
// Which fields are meaningful depends on Model.
type RentalStatus struct {
	Model EconomicModel

	// TimeBased
	TimeRemainingDays uint64
	IsPenalty         bool
	PenaltyDueWei     *big.Int
	RefundDueWei      *big.Int

	// DepositBased
	DaysRented uint64
	FeeDueWei  *big.Int
}

// RentalTerms are the raw on-chain inputs of a DepositBased status derivation.
type RentalTerms struct {
	StartTime    uint64
	Now          uint64
	DailyRentWei *big.Int
	DepositWei   *big.Int
}

// IsOverdue reports a rental the renter should be reminded of: a TimeBased
// rental past its due date, or a DepositBased one whose fees ate the deposit.
func (s RentalStatus) IsOverdue() bool {
	switch s.Model {
	case TimeBased:
		return s.IsPenalty
	case DepositBased:
		return s.RefundDueWei != nil && s.RefundDueWei.Sign() == 0
	default:
		return false
	}
}
