package economics

import (
	"book_rental_dapp/internal/model"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type economicsSuite struct {
	suite.Suite

	params model.EconomicsParams
}

func TestEconomicsSuite(t *testing.T) {
	suite.Run(t, new(economicsSuite))
}

func (s *economicsSuite) SetupTest() {
	s.params = model.DefaultEconomicsParams()
}

func bigFromString(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad number " + s)
	}
	return v
}

func (s *economicsSuite) Test_RequiredDeposit_MatchesContractFormula() {
	collateral := big.NewInt(500_000_000_000_000)
	rents := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(1_000_000_000_000_000),
		bigFromString("123456789012345678901234567890"),
	}

	for _, rent := range rents {
		for _, days := range []int64{1, 2, 3, 30, 365} {
			expected := new(big.Int).Mul(big.NewInt(days), rent)
			expected.Add(expected, collateral)

			res := RequiredDeposit(rent, big.NewInt(days), big.NewInt(5), big.NewInt(100_000_000_000_000))

			assert.Equal(s.T(), 0, expected.Cmp(res), "rent=%s days=%d", rent, days)
		}
	}
}

func (s *economicsSuite) Test_RequiredDeposit_DoesNotMutateInputs() {
	rent := big.NewInt(7)
	days := big.NewInt(3)

	_ = RequiredDeposit(rent, days, s.params.MaxPenaltyDays, s.params.PenaltyPerDayWei)

	assert.Equal(s.T(), int64(7), rent.Int64())
	assert.Equal(s.T(), int64(3), days.Int64())
	assert.Equal(s.T(), int64(5), s.params.MaxPenaltyDays.Int64())
}

func (s *economicsSuite) Test_RequiredValue_TimeBasedThreeDays() {
	rec := model.BookRecord{ID: 1, DailyRentWei: big.NewInt(1_000_000_000_000_000), IsAvailable: true}

	res, err := RequiredValue(model.TimeBased, rec, 3, s.params)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "3500000000000000", res.String())
}

func (s *economicsSuite) Test_RequiredValue_BeyondUint64() {
	rec := model.BookRecord{ID: 1, DailyRentWei: bigFromString("18446744073709551615")}

	res, err := RequiredValue(model.TimeBased, rec, 2, s.params)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "36893488147419103230", new(big.Int).Sub(res, big.NewInt(500_000_000_000_000)).String())
}

func (s *economicsSuite) Test_RequiredValue_FreeRental() {
	rec := model.BookRecord{ID: 1, DailyRentWei: big.NewInt(0)}

	res, err := RequiredValue(model.TimeBased, rec, 10, s.params)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "500000000000000", res.String())
}

func (s *economicsSuite) Test_RequiredValue_ZeroDaysErr() {
	rec := model.BookRecord{ID: 1, DailyRentWei: big.NewInt(1)}

	_, err := RequiredValue(model.TimeBased, rec, 0, s.params)

	assert.ErrorIs(s.T(), err, ErrInvalidDays)
}

func (s *economicsSuite) Test_RequiredValue_DepositBasedUsesRecordDeposit() {
	rec := model.BookRecord{ID: 1, DailyRentWei: big.NewInt(10), DepositWei: big.NewInt(999)}

	res, err := RequiredValue(model.DepositBased, rec, 0, s.params)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), int64(999), res.Int64())

	res.SetInt64(1)
	assert.Equal(s.T(), int64(999), rec.DepositWei.Int64())
}

func (s *economicsSuite) Test_RequiredValue_DepositBasedMissingDepositErr() {
	rec := model.BookRecord{ID: 1, DailyRentWei: big.NewInt(10)}

	_, err := RequiredValue(model.DepositBased, rec, 1, s.params)

	assert.ErrorIs(s.T(), err, ErrMissingDeposit)
}

func (s *economicsSuite) Test_RequiredValue_UnknownModelErr() {
	rec := model.BookRecord{ID: 1, DailyRentWei: big.NewInt(10)}

	_, err := RequiredValue(model.EconomicModel(42), rec, 1, s.params)

	assert.ErrorIs(s.T(), err, ErrUnknownModel)
}

func (s *economicsSuite) Test_DeriveTimeBasedStatus() {
	const day = 86_400
	start := uint64(1_700_000_000)

	testCases := []struct {
		name       string
		now        uint64
		remaining  uint64
		penalty    bool
		penaltyWei string
		refundWei  string
	}{
		{name: "just rented", now: start, remaining: 3, penaltyWei: "0", refundWei: "500000000000000"},
		{name: "half a day in", now: start + day/2, remaining: 2, penaltyWei: "0", refundWei: "500000000000000"},
		{name: "exactly due", now: start + 3*day, remaining: 0, penaltyWei: "0", refundWei: "500000000000000"},
		{name: "two days late", now: start + 5*day, remaining: 2, penalty: true, penaltyWei: "200000000000000", refundWei: "300000000000000"},
		{name: "penalty capped", now: start + 30*day, remaining: 27, penalty: true, penaltyWei: "500000000000000", refundWei: "0"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			res := DeriveTimeBasedStatus(start, 3, tc.now, s.params)

			assert.Equal(s.T(), model.TimeBased, res.Model)
			assert.Equal(s.T(), tc.remaining, res.TimeRemainingDays)
			assert.Equal(s.T(), tc.penalty, res.IsPenalty)
			assert.Equal(s.T(), tc.penaltyWei, res.PenaltyDueWei.String())
			assert.Equal(s.T(), tc.refundWei, res.RefundDueWei.String())
		})
	}
}

func (s *economicsSuite) Test_DeriveDepositStatus() {
	const day = 86_400
	start := uint64(1_700_000_000)
	rent := big.NewInt(1_000)
	deposit := big.NewInt(5_500)

	testCases := []struct {
		name   string
		now    uint64
		days   uint64
		fee    int64
		refund int64
	}{
		{name: "same second", now: start, days: 1, fee: 1_000, refund: 4_500},
		{name: "clock behind start", now: start - 10, days: 1, fee: 1_000, refund: 4_500},
		{name: "one second into day two", now: start + day + 1, days: 2, fee: 2_000, refund: 3_500},
		{name: "exactly three days", now: start + 3*day, days: 3, fee: 3_000, refund: 2_500},
		{name: "fee above deposit", now: start + 10*day, days: 10, fee: 10_000, refund: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			res := DeriveDepositStatus(model.RentalTerms{
				StartTime:    start,
				Now:          tc.now,
				DailyRentWei: rent,
				DepositWei:   deposit,
			}, s.params)

			assert.Equal(s.T(), model.DepositBased, res.Model)
			assert.Equal(s.T(), tc.days, res.DaysRented)
			assert.Equal(s.T(), tc.fee, res.FeeDueWei.Int64())
			assert.Equal(s.T(), tc.refund, res.RefundDueWei.Int64())
		})
	}
}

func (s *economicsSuite) Test_DeriveDepositStatus_FreeRental() {
	res := DeriveDepositStatus(model.RentalTerms{
		StartTime:    100,
		Now:          100 + 5*86_400,
		DailyRentWei: big.NewInt(0),
		DepositWei:   big.NewInt(42),
	}, s.params)

	assert.Equal(s.T(), uint64(5), res.DaysRented)
	assert.Equal(s.T(), int64(0), res.FeeDueWei.Int64())
	assert.Equal(s.T(), int64(42), res.RefundDueWei.Int64())
}
