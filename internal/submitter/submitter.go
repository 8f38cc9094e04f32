package submitter

import (
	"book_rental_dapp/internal/chain"
	"book_rental_dapp/internal/economics"
	"book_rental_dapp/internal/model"
	"book_rental_dapp/internal/session"
	"book_rental_dapp/utils"
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
)

//go:generate mockgen -source=submitter.go -destination=mocks/mock_submitter.go -package=mocks

type Transactor interface {
	Transact(opts *bind.TransactOpts, method string, params ...interface{}) (*types.Transaction, error)
}

type RecordReader interface {
	GetBookRecord(ctx context.Context, id uint64) (model.BookRecord, error)
	GetStoreOwner(ctx context.Context) (string, error)
}

type ReceiptBackend interface {
	bind.DeployBackend
}

type Journal interface {
	SaveSubmission(ctx context.Context, sub model.Submission) error
}

// Submitter sends rent, return and list transactions. Nothing is retried:
// a failed submission is reported once and left to the caller.
type Submitter struct {
	econModel model.EconomicModel
	params    model.EconomicsParams
	abi       abi.ABI
	contract  Transactor
	reader    RecordReader
	backend   ReceiptBackend
	signer    *bind.TransactOpts
	journal   Journal
}

func New(
	econModel model.EconomicModel,
	params model.EconomicsParams,
	contractABI abi.ABI,
	contract Transactor,
	reader RecordReader,
	backend ReceiptBackend,
	signer *bind.TransactOpts,
	journal Journal,
) *Submitter {
	return &Submitter{
		econModel: econModel,
		params:    params,
		abi:       contractABI,
		contract:  contract,
		reader:    reader,
		backend:   backend,
		signer:    signer,
		journal:   journal,
	}
}

// Account is the address transactions are signed with, or "" without a key.
func (s *Submitter) Account() string {
	if s.signer == nil {
		return ""
	}
	return s.signer.From.Hex()
}

// Quote re-reads the record and returns the value a rent call has to carry.
func (s *Submitter) Quote(ctx context.Context, id, days uint64) (*big.Int, model.BookRecord, error) {
	rec, err := s.reader.GetBookRecord(ctx, id)
	if err != nil {
		return nil, model.BookRecord{}, err
	}

	value, err := economics.RequiredValue(s.econModel, rec, days, s.params)
	if err != nil {
		return nil, rec, err
	}

	return value, rec, nil
}

// Rent pays for id. days is ignored under the deposit model.
func (s *Submitter) Rent(ctx context.Context, sess model.Session, id, days uint64) (*types.Receipt, error) {
	if err := s.checkIdentity(sess); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRentFailed, err)
	}

	value, rec, err := s.Quote(ctx, id, days)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRentFailed, err)
	}

	if !rec.IsAvailable {
		return nil, fmt.Errorf("%w: %w: id %d", ErrRentFailed, ErrBookNotAvailable, id)
	}

	args := []interface{}{new(big.Int).SetUint64(id)}
	if s.econModel == model.TimeBased {
		args = append(args, new(big.Int).SetUint64(days))
	}

	sub := s.newSubmission(model.SubmissionRent, id, value)
	return s.submit(ctx, sub, ErrRentFailed, chain.MethodRentBook, args...)
}

// Return hands id back. Whether the caller is the renter is for the ledger to decide.
func (s *Submitter) Return(ctx context.Context, sess model.Session, id uint64) (*types.Receipt, error) {
	if err := s.checkIdentity(sess); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReturnFailed, err)
	}

	sub := s.newSubmission(model.SubmissionReturn, id, nil)
	return s.submit(ctx, sub, ErrReturnFailed, chain.MethodReturnBook, new(big.Int).SetUint64(id))
}

// List adds a book under metadataCid. depositWei is required only by the deposit model.
func (s *Submitter) List(ctx context.Context, sess model.Session, metadataCid string, dailyRentWei, depositWei *big.Int) (*types.Receipt, error) {
	if strings.TrimSpace(metadataCid) == "" {
		return nil, fmt.Errorf("%w: %w", ErrListFailed, ErrEmptyMetadataCid)
	}

	if dailyRentWei == nil || dailyRentWei.Sign() < 0 {
		return nil, fmt.Errorf("%w: %w", ErrListFailed, economics.ErrNegativeAmount)
	}

	args := []interface{}{metadataCid, dailyRentWei}
	if s.econModel == model.DepositBased {
		if depositWei == nil {
			return nil, fmt.Errorf("%w: %w", ErrListFailed, economics.ErrMissingDeposit)
		}
		if depositWei.Sign() < 0 {
			return nil, fmt.Errorf("%w: %w", ErrListFailed, economics.ErrNegativeAmount)
		}
		args = append(args, depositWei)
	}

	if err := s.CanList(ctx, sess); err != nil {
		return nil, err
	}

	sub := s.newSubmission(model.SubmissionList, 0, nil)
	sub.MetadataCid = metadataCid
	return s.submit(ctx, sub, ErrListFailed, chain.MethodListBook, args...)
}

// CanList reports whether sess may list books: it signs for the store owner.
// When the owner cannot be read the ledger has the last word.
func (s *Submitter) CanList(ctx context.Context, sess model.Session) error {
	op := "Submitter.CanList"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := s.checkIdentity(sess); err != nil {
		return fmt.Errorf("%w: %w", ErrListFailed, err)
	}

	owner, err := s.reader.GetStoreOwner(ctx)
	if err != nil {
		slog.Warn(
			"store owner unknown, leaving the check to the ledger",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil
	}

	if !model.SameAccount(owner, sess.Account) {
		return fmt.Errorf("%w: %w", ErrListFailed, ErrNotStoreOwner)
	}

	return nil
}

func (s *Submitter) checkIdentity(sess model.Session) error {
	if err := session.RequireIdentity(sess); err != nil {
		return err
	}

	if s.signer == nil {
		return ErrNoSigner
	}

	if !model.SameAccount(sess.Account, s.signer.From.Hex()) {
		return ErrIdentityMismatch
	}

	return nil
}

func (s *Submitter) newSubmission(kind model.SubmissionKind, bookID uint64, value *big.Int) model.Submission {
	return model.Submission{
		ID:        uuid.New(),
		Kind:      kind,
		BookID:    bookID,
		Account:   s.Account(),
		ValueWei:  value,
		CreatedAt: time.Now().UTC(),
	}
}

func (s *Submitter) submit(ctx context.Context, sub model.Submission, failErr error, method string, args ...interface{}) (*types.Receipt, error) {
	op := "Submitter.submit"
	rqID := utils.GetRequestIDFromCtx(ctx)

	opts := *s.signer
	opts.Context = ctx
	if sub.ValueWei != nil {
		opts.Value = new(big.Int).Set(sub.ValueWei)
	}

	slog.Info(
		"sending transaction",
		slog.String("rqID", rqID),
		slog.String("op", op),
		slog.String("method", method),
		slog.Uint64("bookId", sub.BookID),
		slog.String("valueEth", economics.FormatEther(sub.ValueWei)),
	)

	tx, err := s.contract.Transact(&opts, method, args...)
	if err != nil {
		reason := s.reason(err)
		s.record(ctx, sub, model.SubmissionRejected, reason)
		return nil, fmt.Errorf("%w: %s", failErr, reason)
	}
	sub.TxHash = tx.Hash().Hex()

	receipt, err := bind.WaitMined(ctx, s.backend, tx)
	if err != nil {
		s.record(ctx, sub, model.SubmissionSent, err.Error())
		return nil, fmt.Errorf("%w: waiting for %s: %w", failErr, sub.TxHash, err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		s.record(ctx, sub, model.SubmissionReverted, ErrTransactionFailed.Error())
		return receipt, fmt.Errorf("%w: %w: %s", failErr, ErrTransactionFailed, sub.TxHash)
	}

	s.record(ctx, sub, model.SubmissionMined, "")

	slog.Info(
		"transaction mined",
		slog.String("rqID", rqID),
		slog.String("op", op),
		slog.String("method", method),
		slog.String("txHash", sub.TxHash),
		slog.String("block", receipt.BlockNumber.String()),
	)

	return receipt, nil
}

func (s *Submitter) reason(err error) string {
	reason := chain.RevertReason(s.abi, err)
	if reason == "" {
		return ErrTransactionFailed.Error()
	}
	return reason
}

// record writes the journal line. A journal failure never fails the submission.
func (s *Submitter) record(ctx context.Context, sub model.Submission, status model.SubmissionStatus, reason string) {
	if s.journal == nil {
		return
	}

	sub.Status = status
	sub.Reason = reason

	if err := s.journal.SaveSubmission(context.WithoutCancel(ctx), sub); err != nil {
		slog.Error(
			"failed to journal submission",
			slog.String("rqID", utils.GetRequestIDFromCtx(ctx)),
			slog.String("op", "Submitter.record"),
			slog.String("submissionId", sub.ID.String()),
			slog.String("err", err.Error()),
		)
	}
}
