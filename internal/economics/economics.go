// Package economics mirrors the rental contract's fee, deposit and penalty
// arithmetic. Every figure is an unbounded integer in wei; the only place a
// fractional unit appears is FormatEther, which is for display.
package economics

import (
	"book_rental_dapp/internal/model"
	"fmt"
	"math/big"
)

// RequiredDeposit returns days*dailyRent + maxPenaltyDays*penaltyPerDay.
func RequiredDeposit(dailyRent, days, maxPenaltyDays, penaltyPerDay *big.Int) *big.Int {
	rent := new(big.Int).Mul(days, dailyRent)
	collateral := new(big.Int).Mul(maxPenaltyDays, penaltyPerDay)
	return rent.Add(rent, collateral)
}

// RequiredValue is the payable amount a rentBook call must carry for rec.
// Days are validated before any arithmetic runs.
func RequiredValue(m model.EconomicModel, rec model.BookRecord, days uint64, p model.EconomicsParams) (*big.Int, error) {
	if rec.DailyRentWei == nil || rec.DailyRentWei.Sign() < 0 {
		return nil, ErrNegativeAmount
	}

	switch m {
	case model.TimeBased:
		if days < 1 {
			return nil, ErrInvalidDays
		}
		return RequiredDeposit(rec.DailyRentWei, new(big.Int).SetUint64(days), p.MaxPenaltyDays, p.PenaltyPerDayWei), nil
	case model.DepositBased:
		if rec.DepositWei == nil {
			return nil, ErrMissingDeposit
		}
		if rec.DepositWei.Sign() < 0 {
			return nil, ErrNegativeAmount
		}
		return new(big.Int).Set(rec.DepositWei), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, m)
	}
}

// DeriveTimeBasedStatus computes what getRentalStatus reports for a rental
// that started at startTime for the given number of days. Before the due time
// TimeRemainingDays counts whole days left; after it, whole days overdue.
func DeriveTimeBasedStatus(startTime, days, now uint64, p model.EconomicsParams) model.RentalStatus {
	due := new(big.Int).Mul(new(big.Int).SetUint64(days), p.SecondsPerDay)
	due.Add(due, new(big.Int).SetUint64(startTime))
	at := new(big.Int).SetUint64(now)

	status := model.RentalStatus{Model: model.TimeBased}
	if at.Cmp(due) <= 0 {
		left := new(big.Int).Sub(due, at)
		status.TimeRemainingDays = left.Quo(left, p.SecondsPerDay).Uint64()
	} else {
		overdue := new(big.Int).Sub(at, due)
		status.TimeRemainingDays = overdue.Quo(overdue, p.SecondsPerDay).Uint64()
		status.IsPenalty = true
	}

	return SettleTimeBased(status, p)
}

// SettleTimeBased fills the penalty accrued so far and the part of the penalty
// collateral that would come back if the book were returned now.
func SettleTimeBased(status model.RentalStatus, p model.EconomicsParams) model.RentalStatus {
	collateral := new(big.Int).Mul(p.MaxPenaltyDays, p.PenaltyPerDayWei)

	penalty := new(big.Int)
	if status.IsPenalty {
		penaltyDays := new(big.Int).SetUint64(status.TimeRemainingDays)
		if penaltyDays.Cmp(p.MaxPenaltyDays) > 0 {
			penaltyDays.Set(p.MaxPenaltyDays)
		}
		penalty.Mul(penaltyDays, p.PenaltyPerDayWei)
	}

	status.PenaltyDueWei = penalty
	status.RefundDueWei = collateral.Sub(collateral, penalty)
	return status
}

// DeriveDepositStatus computes days rented, the fee accrued and the refund
// left from the fixed deposit. A started day counts as a full day and at
// least one day is always charged.
func DeriveDepositStatus(terms model.RentalTerms, p model.EconomicsParams) model.RentalStatus {
	elapsed := new(big.Int)
	if terms.Now > terms.StartTime {
		elapsed.SetUint64(terms.Now - terms.StartTime)
	}

	days, rem := new(big.Int).QuoRem(elapsed, p.SecondsPerDay, new(big.Int))
	if rem.Sign() > 0 {
		days.Add(days, big.NewInt(1))
	}
	if days.Sign() == 0 {
		days.SetInt64(1)
	}

	rent := terms.DailyRentWei
	if rent == nil {
		rent = new(big.Int)
	}
	fee := new(big.Int).Mul(days, rent)

	refund := new(big.Int)
	if terms.DepositWei != nil && terms.DepositWei.Cmp(fee) > 0 {
		refund.Sub(terms.DepositWei, fee)
	}

	return model.RentalStatus{
		Model:        model.DepositBased,
		DaysRented:   days.Uint64(),
		FeeDueWei:    fee,
		RefundDueWei: refund,
	}
}
