package ethereum

import (
	"book_rental_dapp/config"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

var ErrNoPrivateKey = errors.New("CHAIN_PRIVATE_KEY is not set")

// MustInitClient dials the ledger node and checks it serves the configured chain.
func MustInitClient(cfg *config.Config) *ethclient.Client {
	ctx := context.Background()

	client, err := ethclient.DialContext(ctx, cfg.Chain.RpcUrl)
	if err != nil {
		slog.Error("Error while dialing ledger node", slog.String("err", err.Error()))
		panic(err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		slog.Error("Error while reading chain id", slog.String("err", err.Error()))
		panic(err)
	}

	if chainID.Cmp(big.NewInt(cfg.Chain.ChainID)) != 0 {
		err = fmt.Errorf("node serves chain %s, expected %d", chainID, cfg.Chain.ChainID)
		slog.Error("Wrong chain", slog.String("err", err.Error()))
		panic(err)
	}

	slog.Info("Ledger node connected", slog.String("chainId", chainID.String()))

	return client
}

// NewSigner builds transact options from CHAIN_PRIVATE_KEY.
func NewSigner(cfg *config.Config) (*bind.TransactOpts, error) {
	if cfg.Chain.PrivateKey == "" {
		return nil, ErrNoPrivateKey
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.Chain.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	return bind.NewKeyedTransactorWithChainID(key, big.NewInt(cfg.Chain.ChainID))
}
