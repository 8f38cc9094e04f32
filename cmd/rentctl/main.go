package main

import (
	"book_rental_dapp/config"
	"book_rental_dapp/data/db/postgres"
	"book_rental_dapp/data/ethereum"
	"book_rental_dapp/internal/catalog"
	"book_rental_dapp/internal/metadata"
	"book_rental_dapp/internal/pinning"
	"book_rental_dapp/internal/repository"
	"book_rental_dapp/internal/service/listingService"
	sessionCtx "book_rental_dapp/internal/session"
	"book_rental_dapp/internal/submitter"
	"book_rental_dapp/utils"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app holds what the commands share. Connections are opened on first use.
type app struct {
	cfg     *config.Config
	account string

	client     *ethclient.Client
	ledger     *ethereum.Ledger
	sess       *sessionCtx.Context
	aggregator *catalog.Aggregator
	db         *sqlx.DB
	repo       *repository.Postgres
	signer     *bind.TransactOpts
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "rentctl",
		Short:         "Browse the book rental contract and send rent, return and list transactions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cfg = config.MustLoad()
			setupLogger(a.cfg)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.account, "account", "", "view the catalogue as this address (defaults to the signer)")

	rootCmd.AddCommand(
		catalogCmd(a),
		bookCmd(a),
		rentalsCmd(a),
		quoteCmd(a),
		rentCmd(a),
		returnCmd(a),
		listCmd(a),
		historyCmd(a),
	)

	if err := rootCmd.ExecuteContext(utils.NewCtxWithRqID(context.Background())); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.client != nil {
		a.client.Close()
	}
}

// connect dials the node, binds the contract and probes it once so the
// session starts out reachable.
func (a *app) connect(ctx context.Context) error {
	if a.client != nil {
		return nil
	}

	client, err := ethclient.DialContext(ctx, a.cfg.Chain.RpcUrl)
	if err != nil {
		return fmt.Errorf("dial ledger node: %w", err)
	}
	a.client = client

	a.ledger, err = ethereum.NewLedger(a.cfg, client)
	if err != nil {
		return err
	}

	a.sess = sessionCtx.NewContext()
	if err = sessionCtx.NewProber(a.sess, client, a.cfg.Jobs.ChainProbeTimeout).Probe(ctx); err != nil {
		return err
	}

	a.aggregator = catalog.NewAggregator(a.cfg, a.ledger.Reader, metadata.NewResolver(a.cfg))

	account := a.account
	if account == "" && a.cfg.Chain.PrivateKey != "" {
		signer, err := a.loadSigner()
		if err != nil {
			return err
		}
		account = signer.From.Hex()
	}

	if account != "" {
		if _, err = a.sess.Connect(account); err != nil {
			return err
		}
	}

	return nil
}

// loadSigner reads CHAIN_PRIVATE_KEY, asking for it on the terminal when unset.
func (a *app) loadSigner() (*bind.TransactOpts, error) {
	if a.signer != nil {
		return a.signer, nil
	}

	signer, err := ethereum.NewSigner(a.cfg)
	if errors.Is(err, ethereum.ErrNoPrivateKey) && term.IsTerminal(int(syscall.Stdin)) {
		key, readErr := readPrivateKey("Private key: ")
		if readErr != nil {
			return nil, fmt.Errorf("failed to read private key: %w", readErr)
		}
		a.cfg.Chain.PrivateKey = key
		signer, err = ethereum.NewSigner(a.cfg)
	}
	if err != nil {
		return nil, err
	}

	a.signer = signer
	return signer, nil
}

// signingSession connects with the signer as identity. An --account different
// from the signer is refused by the submitter.
func (a *app) signingSession(ctx context.Context) (*submitter.Submitter, error) {
	signer, err := a.loadSigner()
	if err != nil {
		return nil, err
	}

	if err = a.connect(ctx); err != nil {
		return nil, err
	}

	if a.account == "" {
		if _, err = a.sess.Connect(signer.From.Hex()); err != nil {
			return nil, err
		}
	}

	var journal submitter.Journal
	if a.repo != nil {
		journal = a.repo
	} else if postgres.Enabled(a.cfg) {
		a.db = postgres.NewPostgresClient(a.cfg)
		postgres.MustMigrate(a.cfg, a.db)
		a.repo = repository.NewPostgresRepo(a.db)
		journal = a.repo
	}

	return submitter.New(
		a.ledger.Model,
		a.ledger.Params,
		a.ledger.ABI,
		a.ledger.Contract,
		a.ledger.Reader,
		a.client,
		signer,
		journal,
	), nil
}

func (a *app) listingService(ctx context.Context) (*listingService.ListingService, error) {
	sub, err := a.signingSession(ctx)
	if err != nil {
		return nil, err
	}

	uploader, err := pinning.New(a.cfg)
	if err != nil {
		return nil, err
	}

	return listingService.New(uploader, sub), nil
}

func readPrivateKey(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(bytePassword)), nil
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
