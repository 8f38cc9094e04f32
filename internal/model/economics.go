package model

import (
	"fmt"
	"math/big"
	"strings"
)

// EconomicModel selects which deployed contract shape the engine talks to.
// The two shapes are mutually exclusive per deployment.
type EconomicModel int

const (
	TimeBased EconomicModel = iota
	DepositBased
)

func (m EconomicModel) String() string {
	switch m {
	case TimeBased:
		return "time_based"
	case DepositBased:
		return "deposit_based"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

func ParseEconomicModel(s string) (EconomicModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "time_based", "timebased", "":
		return TimeBased, nil
	case "deposit_based", "depositbased":
		return DepositBased, nil
	default:
		return 0, fmt.Errorf("unknown economic model %q", s)
	}
}

// EconomicsParams mirrors the contract constants. All values are in wei or seconds.
type EconomicsParams struct {
	MaxPenaltyDays   *big.Int
	PenaltyPerDayWei *big.Int
	SecondsPerDay    *big.Int
}

func DefaultEconomicsParams() EconomicsParams {
	return EconomicsParams{
		MaxPenaltyDays:   big.NewInt(5),
		PenaltyPerDayWei: big.NewInt(100_000_000_000_000),
		SecondsPerDay:    big.NewInt(86_400),
	}
}
