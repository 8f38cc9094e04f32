package chain

import (
	"book_rental_dapp/internal/economics"
	"book_rental_dapp/internal/model"
	"book_rental_dapp/utils"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ContractCaller is the read side of a bound contract.
type ContractCaller interface {
	Call(opts *bind.CallOpts, results *[]interface{}, method string, params ...interface{}) error
}

type HeaderReader interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

// Reader is a read-only view over the rental contract. It never retries and
// never translates transport failures; calls are safe to run concurrently.
type Reader struct {
	econModel model.EconomicModel
	params    model.EconomicsParams
	abi       abi.ABI
	contract  ContractCaller
	headers   HeaderReader
}

func NewReader(econModel model.EconomicModel, params model.EconomicsParams, contractABI abi.ABI, contract ContractCaller, headers HeaderReader) *Reader {
	return &Reader{
		econModel: econModel,
		params:    params,
		abi:       contractABI,
		contract:  contract,
		headers:   headers,
	}
}

func (r *Reader) Model() model.EconomicModel {
	return r.econModel
}

// GetCatalogSize returns N such that valid book ids are 1..N.
func (r *Reader) GetCatalogSize(ctx context.Context) (uint64, error) {
	var out []interface{}
	if err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, MethodNextBookID); err != nil {
		return 0, r.classify(ctx, "Reader.GetCatalogSize", err)
	}

	if len(out) != 1 {
		return 0, fmt.Errorf("%w: %s returned %d values", ErrUnexpectedOutput, MethodNextBookID, len(out))
	}

	next, ok := out[0].(*big.Int)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnexpectedOutput, MethodNextBookID)
	}

	if next.Sign() <= 0 {
		return 0, nil
	}

	size := new(big.Int).Sub(next, big.NewInt(1))
	if !size.IsUint64() {
		return 0, fmt.Errorf("%w: %s = %s out of range", ErrUnexpectedOutput, MethodNextBookID, next)
	}

	return size.Uint64(), nil
}

func (r *Reader) GetBookRecord(ctx context.Context, id uint64) (model.BookRecord, error) {
	if id == 0 {
		return model.BookRecord{}, fmt.Errorf("%w: id 0", ErrRecordNotFound)
	}

	// getBookDetails of the deposit contract has no owner; its public books
	// mapping does, and answers a zero record for unknown ids.
	method := MethodGetBookDetails
	if r.econModel == model.DepositBased {
		method = MethodBooks
	}

	var out []interface{}
	if err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, new(big.Int).SetUint64(id)); err != nil {
		err = r.classify(ctx, "Reader.GetBookRecord", err)
		if errors.Is(err, ErrCallReverted) {
			return model.BookRecord{}, fmt.Errorf("%w: id %d: %w", ErrRecordNotFound, id, err)
		}
		return model.BookRecord{}, err
	}

	switch r.econModel {
	case model.TimeBased:
		return decodeTimeBasedRecord(id, out)
	case model.DepositBased:
		return decodeDepositBasedRecord(id, out)
	default:
		return model.BookRecord{}, fmt.Errorf("%w: unknown economic model %s", ErrUnexpectedOutput, r.econModel)
	}
}

// GetRentedBookIDs lists the ids account rents. Only the deposit contract keeps
// this index; the time-based one answers ErrNotSupported.
func (r *Reader) GetRentedBookIDs(ctx context.Context, account string) ([]uint64, error) {
	if r.econModel != model.DepositBased {
		return nil, ErrNotSupported
	}

	if !common.IsHexAddress(account) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAccount, account)
	}

	var out []interface{}
	if err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, MethodUserRentedBooks, common.HexToAddress(account)); err != nil {
		return nil, r.classify(ctx, "Reader.GetRentedBookIDs", err)
	}

	if len(out) != 1 {
		return nil, fmt.Errorf("%w: %s returned %d values", ErrUnexpectedOutput, MethodUserRentedBooks, len(out))
	}

	raw, ok := out[0].([]*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedOutput, MethodUserRentedBooks)
	}

	ids := make([]uint64, 0, len(raw))
	for _, v := range raw {
		if v == nil || !v.IsUint64() {
			return nil, fmt.Errorf("%w: %s id out of range", ErrUnexpectedOutput, MethodUserRentedBooks)
		}
		ids = append(ids, v.Uint64())
	}

	return ids, nil
}

// GetRentalStatus is defined only when account is the record's current renter;
// otherwise it fails with ErrNotRenter.
func (r *Reader) GetRentalStatus(ctx context.Context, id uint64, account string) (model.RentalStatus, error) {
	if !common.IsHexAddress(account) {
		return model.RentalStatus{}, fmt.Errorf("%w: %q", ErrInvalidAccount, account)
	}
	user := common.HexToAddress(account)

	switch r.econModel {
	case model.TimeBased:
		return r.timeBasedStatus(ctx, id, user)
	case model.DepositBased:
		return r.depositBasedStatus(ctx, id, user)
	default:
		return model.RentalStatus{}, fmt.Errorf("%w: unknown economic model %s", ErrUnexpectedOutput, r.econModel)
	}
}

func (r *Reader) GetStoreOwner(ctx context.Context) (string, error) {
	var out []interface{}
	if err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, MethodStoreOwner); err != nil {
		return "", r.classify(ctx, "Reader.GetStoreOwner", err)
	}

	if len(out) != 1 {
		return "", fmt.Errorf("%w: %s returned %d values", ErrUnexpectedOutput, MethodStoreOwner, len(out))
	}

	owner, ok := out[0].(common.Address)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedOutput, MethodStoreOwner)
	}

	return addressToAccount(owner), nil
}

func (r *Reader) timeBasedStatus(ctx context.Context, id uint64, user common.Address) (model.RentalStatus, error) {
	var out []interface{}
	opts := &bind.CallOpts{Context: ctx, From: user}
	if err := r.contract.Call(opts, &out, MethodGetRentalStatus, new(big.Int).SetUint64(id), user); err != nil {
		return model.RentalStatus{}, r.classify(ctx, "Reader.GetRentalStatus", err)
	}

	if len(out) != 2 {
		return model.RentalStatus{}, fmt.Errorf("%w: %s returned %d values", ErrUnexpectedOutput, MethodGetRentalStatus, len(out))
	}

	remaining, ok1 := out[0].(*big.Int)
	isPenalty, ok2 := out[1].(bool)
	if !ok1 || !ok2 {
		return model.RentalStatus{}, fmt.Errorf("%w: %s", ErrUnexpectedOutput, MethodGetRentalStatus)
	}

	status := model.RentalStatus{
		Model:             model.TimeBased,
		TimeRemainingDays: remaining.Uint64(),
		IsPenalty:         isPenalty,
	}

	return economics.SettleTimeBased(status, r.params), nil
}

func (r *Reader) depositBasedStatus(ctx context.Context, id uint64, user common.Address) (model.RentalStatus, error) {
	rec, err := r.GetBookRecord(ctx, id)
	if err != nil {
		return model.RentalStatus{}, err
	}

	if !model.SameAccount(rec.CurrentRenter, user.Hex()) {
		return model.RentalStatus{}, ErrNotRenter
	}

	var out []interface{}
	if err = r.contract.Call(&bind.CallOpts{Context: ctx}, &out, MethodRentalStartTimes, user, new(big.Int).SetUint64(id)); err != nil {
		return model.RentalStatus{}, r.classify(ctx, "Reader.GetRentalStatus", err)
	}

	if len(out) != 1 {
		return model.RentalStatus{}, fmt.Errorf("%w: %s returned %d values", ErrUnexpectedOutput, MethodRentalStartTimes, len(out))
	}

	start, ok := out[0].(*big.Int)
	if !ok {
		return model.RentalStatus{}, fmt.Errorf("%w: %s", ErrUnexpectedOutput, MethodRentalStartTimes)
	}

	header, err := r.headers.HeaderByNumber(ctx, nil)
	if err != nil {
		return model.RentalStatus{}, r.classify(ctx, "Reader.GetRentalStatus", err)
	}

	return economics.DeriveDepositStatus(model.RentalTerms{
		StartTime:    start.Uint64(),
		Now:          header.Time,
		DailyRentWei: rec.DailyRentWei,
		DepositWei:   rec.DepositWei,
	}, r.params), nil
}

// classify maps err onto ErrCallReverted, ErrNotRenter or ErrChainUnreachable.
func (r *Reader) classify(ctx context.Context, op string, err error) error {
	rqID := utils.GetRequestIDFromCtx(ctx)

	if IsRevert(err) {
		if RevertName(r.abi, err) == errorNotRenter {
			return ErrNotRenter
		}

		reason := RevertReason(r.abi, err)
		slog.Debug("contract call reverted", slog.String("rqID", rqID), slog.String("op", op), slog.String("reason", reason))
		return fmt.Errorf("%w: %s", ErrCallReverted, reason)
	}

	slog.Debug("contract call failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	return fmt.Errorf("%w: %w", ErrChainUnreachable, err)
}

func decodeTimeBasedRecord(id uint64, out []interface{}) (model.BookRecord, error) {
	if len(out) != 5 {
		return model.BookRecord{}, fmt.Errorf("%w: %s returned %d values", ErrUnexpectedOutput, MethodGetBookDetails, len(out))
	}

	rent, ok1 := out[0].(*big.Int)
	owner, ok2 := out[1].(common.Address)
	isAvailable, ok3 := out[2].(bool)
	renter, ok4 := out[3].(common.Address)
	cid, ok5 := out[4].(string)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return model.BookRecord{}, fmt.Errorf("%w: %s", ErrUnexpectedOutput, MethodGetBookDetails)
	}

	return model.BookRecord{
		ID:            id,
		Owner:         addressToAccount(owner),
		DailyRentWei:  rent,
		IsAvailable:   isAvailable,
		CurrentRenter: addressToAccount(renter),
		MetadataCid:   cid,
	}, nil
}

func decodeDepositBasedRecord(id uint64, out []interface{}) (model.BookRecord, error) {
	if len(out) != 7 {
		return model.BookRecord{}, fmt.Errorf("%w: %s returned %d values", ErrUnexpectedOutput, MethodBooks, len(out))
	}

	storedID, ok1 := out[0].(*big.Int)
	rent, ok2 := out[1].(*big.Int)
	owner, ok3 := out[2].(common.Address)
	isAvailable, ok4 := out[3].(bool)
	renter, ok5 := out[4].(common.Address)
	deposit, ok6 := out[5].(*big.Int)
	cid, ok7 := out[6].(string)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 || !ok7 {
		return model.BookRecord{}, fmt.Errorf("%w: %s", ErrUnexpectedOutput, MethodBooks)
	}

	if !storedID.IsUint64() || storedID.Uint64() != id {
		return model.BookRecord{}, fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
	}

	return model.BookRecord{
		ID:            id,
		Owner:         addressToAccount(owner),
		DailyRentWei:  rent,
		IsAvailable:   isAvailable,
		CurrentRenter: addressToAccount(renter),
		DepositWei:    deposit,
		MetadataCid:   cid,
	}, nil
}

func addressToAccount(addr common.Address) string {
	if addr == (common.Address{}) {
		return ""
	}
	return addr.Hex()
}
