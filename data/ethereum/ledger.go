package ethereum

import (
	"book_rental_dapp/config"
	"book_rental_dapp/internal/chain"
	"book_rental_dapp/internal/model"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Ledger is the rental contract bound for the configured economic model.
type Ledger struct {
	Model    model.EconomicModel
	Params   model.EconomicsParams
	ABI      abi.ABI
	Contract *bind.BoundContract
	Reader   *chain.Reader
}

func NewLedger(cfg *config.Config, client *ethclient.Client) (*Ledger, error) {
	econModel, err := cfg.EconomicModel()
	if err != nil {
		return nil, err
	}

	params, err := cfg.EconomicsParams()
	if err != nil {
		return nil, err
	}

	if !common.IsHexAddress(cfg.Chain.ContractAddress) {
		return nil, fmt.Errorf("CHAIN_CONTRACT_ADDRESS is not an address: %q", cfg.Chain.ContractAddress)
	}

	contract, contractABI, err := chain.NewContract(common.HexToAddress(cfg.Chain.ContractAddress), econModel, client)
	if err != nil {
		return nil, err
	}

	return &Ledger{
		Model:    econModel,
		Params:   params,
		ABI:      contractABI,
		Contract: contract,
		Reader:   chain.NewReader(econModel, params, contractABI, contract, client),
	}, nil
}

func MustInitLedger(cfg *config.Config, client *ethclient.Client) *Ledger {
	ledger, err := NewLedger(cfg, client)
	if err != nil {
		slog.Error("Error while binding rental contract", slog.String("err", err.Error()))
		panic(err)
	}

	slog.Info("Rental contract bound", slog.String("address", cfg.Chain.ContractAddress), slog.String("model", ledger.Model.String()))

	return ledger
}
