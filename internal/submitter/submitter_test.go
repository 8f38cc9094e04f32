package submitter

import (
	"book_rental_dapp/internal/chain"
	"book_rental_dapp/internal/economics"
	"book_rental_dapp/internal/model"
	"book_rental_dapp/internal/session"
	"book_rental_dapp/internal/submitter/mocks"
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	signerHex   = "0xabcdef0123456789abcdef0123456789abcdef01"
	strangerHex = "0x2222222222222222222222222222222222222222"
)

type revertErr struct {
	data string
}

func (e revertErr) Error() string          { return "execution reverted" }
func (e revertErr) ErrorCode() int         { return 3 }
func (e revertErr) ErrorData() interface{} { return e.data }

type bigIntMatcher struct {
	want *big.Int
}

func (m bigIntMatcher) Matches(x any) bool {
	v, ok := x.(*big.Int)
	return ok && v.Cmp(m.want) == 0
}

func (m bigIntMatcher) String() string {
	return fmt.Sprintf("is big.Int %s", m.want)
}

func bigEq(v int64) gomock.Matcher {
	return bigIntMatcher{want: big.NewInt(v)}
}

type submitterSuite struct {
	suite.Suite

	mockCtrl *gomock.Controller
	params   model.EconomicsParams
	timeABI  abi.ABI
	depABI   abi.ABI
	contract *mocks.MockTransactor
	reader   *mocks.MockRecordReader
	backend  *mocks.MockReceiptBackend
	journal  *mocks.MockJournal
	signer   *bind.TransactOpts
	sess     model.Session
}

func TestSubmitterSuite(t *testing.T) {
	suite.Run(t, new(submitterSuite))
}

func (s *submitterSuite) SetupSuite() {
	var err error
	s.params = model.DefaultEconomicsParams()

	s.timeABI, err = chain.ParseABI(model.TimeBased)
	s.Require().NoError(err)

	s.depABI, err = chain.ParseABI(model.DepositBased)
	s.Require().NoError(err)

	s.sess = model.Session{Account: "0xABCDEF0123456789ABCDEF0123456789ABCDEF01", ChainReachable: true, Generation: 1}
}

func (s *submitterSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.contract = mocks.NewMockTransactor(s.mockCtrl)
	s.reader = mocks.NewMockRecordReader(s.mockCtrl)
	s.backend = mocks.NewMockReceiptBackend(s.mockCtrl)
	s.journal = mocks.NewMockJournal(s.mockCtrl)
	s.signer = &bind.TransactOpts{From: common.HexToAddress(signerHex)}
}

func (s *submitterSuite) timeSubmitter() *Submitter {
	return New(model.TimeBased, s.params, s.timeABI, s.contract, s.reader, s.backend, s.signer, s.journal)
}

func (s *submitterSuite) depositSubmitter() *Submitter {
	return New(model.DepositBased, s.params, s.depABI, s.contract, s.reader, s.backend, s.signer, s.journal)
}

func newTx(value *big.Int) *types.Transaction {
	to := common.HexToAddress("0x3333333333333333333333333333333333333333")
	return types.NewTx(&types.LegacyTx{Nonce: 7, To: &to, Value: value, Gas: 100_000, GasPrice: big.NewInt(1)})
}

func (s *submitterSuite) expectReceipt(tx *types.Transaction, status uint64) {
	s.backend.EXPECT().
		TransactionReceipt(gomock.Any(), tx.Hash()).
		Return(&types.Receipt{Status: status, TxHash: tx.Hash(), BlockNumber: big.NewInt(10)}, nil)
}

func (s *submitterSuite) expectJournal(status model.SubmissionStatus) *model.Submission {
	saved := &model.Submission{}
	s.journal.EXPECT().
		SaveSubmission(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sub model.Submission) error {
			*saved = sub
			return nil
		})
	s.T().Cleanup(func() {
		assert.Equal(s.T(), status, saved.Status)
	})
	return saved
}

func availableRecord(id uint64, rent int64) model.BookRecord {
	return model.BookRecord{ID: id, DailyRentWei: big.NewInt(rent), IsAvailable: true, MetadataCid: "Qx1"}
}

func (s *submitterSuite) Test_Rent_TimeBasedThreeDays() {
	ctx := context.Background()
	value := big.NewInt(3_500_000_000_000_000)
	tx := newTx(value)

	s.reader.EXPECT().GetBookRecord(ctx, uint64(1)).Return(availableRecord(1, 1_000_000_000_000_000), nil)
	s.contract.EXPECT().
		Transact(gomock.Any(), chain.MethodRentBook, bigEq(1), bigEq(3)).
		DoAndReturn(func(opts *bind.TransactOpts, _ string, _ ...any) (*types.Transaction, error) {
			assert.Equal(s.T(), "3500000000000000", opts.Value.String())
			assert.Equal(s.T(), common.HexToAddress(signerHex), opts.From)
			return tx, nil
		})
	s.expectReceipt(tx, types.ReceiptStatusSuccessful)
	saved := s.expectJournal(model.SubmissionMined)

	res, err := s.timeSubmitter().Rent(ctx, s.sess, 1, 3)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), tx.Hash(), res.TxHash)
	assert.Equal(s.T(), model.SubmissionRent, saved.Kind)
	assert.Equal(s.T(), uint64(1), saved.BookID)
	assert.Equal(s.T(), 0, value.Cmp(saved.ValueWei))
	assert.Equal(s.T(), tx.Hash().Hex(), saved.TxHash)
}

func (s *submitterSuite) Test_Rent_DepositBasedPaysDeposit() {
	ctx := context.Background()
	rec := availableRecord(2, 10)
	rec.DepositWei = big.NewInt(777)
	tx := newTx(rec.DepositWei)

	s.reader.EXPECT().GetBookRecord(ctx, uint64(2)).Return(rec, nil)
	s.contract.EXPECT().
		Transact(gomock.Any(), chain.MethodRentBook, bigEq(2)).
		DoAndReturn(func(opts *bind.TransactOpts, _ string, _ ...any) (*types.Transaction, error) {
			assert.Equal(s.T(), int64(777), opts.Value.Int64())
			return tx, nil
		})
	s.expectReceipt(tx, types.ReceiptStatusSuccessful)
	s.expectJournal(model.SubmissionMined)

	_, err := s.depositSubmitter().Rent(ctx, s.sess, 2, 0)

	assert.Nil(s.T(), err)
}

func (s *submitterSuite) Test_Rent_NotAvailableErr() {
	ctx := context.Background()
	rec := availableRecord(1, 1)
	rec.IsAvailable = false
	rec.CurrentRenter = strangerHex

	s.reader.EXPECT().GetBookRecord(ctx, uint64(1)).Return(rec, nil)

	_, err := s.timeSubmitter().Rent(ctx, s.sess, 1, 3)

	assert.ErrorIs(s.T(), err, ErrRentFailed)
	assert.ErrorIs(s.T(), err, ErrBookNotAvailable)
}

func (s *submitterSuite) Test_Rent_ZeroDaysErr() {
	ctx := context.Background()

	s.reader.EXPECT().GetBookRecord(ctx, uint64(1)).Return(availableRecord(1, 1), nil)

	_, err := s.timeSubmitter().Rent(ctx, s.sess, 1, 0)

	assert.ErrorIs(s.T(), err, ErrRentFailed)
	assert.ErrorIs(s.T(), err, economics.ErrInvalidDays)
}

func (s *submitterSuite) Test_Rent_RecordReadErr() {
	ctx := context.Background()

	s.reader.EXPECT().
		GetBookRecord(ctx, uint64(9)).
		Return(model.BookRecord{}, fmt.Errorf("%w: id 9", chain.ErrRecordNotFound))

	_, err := s.timeSubmitter().Rent(ctx, s.sess, 9, 1)

	assert.ErrorIs(s.T(), err, ErrRentFailed)
	assert.ErrorIs(s.T(), err, chain.ErrRecordNotFound)
}

func (s *submitterSuite) Test_Rent_RevertReasonSurfaced() {
	ctx := context.Background()
	abiErr := s.timeABI.Errors["InsufficientPayment"]
	packed, err := abiErr.Inputs.Pack(big.NewInt(3_500), big.NewInt(3_000))
	s.Require().NoError(err)
	data := hexutil.Encode(append(abiErr.ID[:4:4], packed...))

	s.reader.EXPECT().GetBookRecord(ctx, uint64(1)).Return(availableRecord(1, 1_000), nil)
	s.contract.EXPECT().
		Transact(gomock.Any(), chain.MethodRentBook, bigEq(1), bigEq(3)).
		Return(nil, revertErr{data: data})
	saved := s.expectJournal(model.SubmissionRejected)

	_, err = s.timeSubmitter().Rent(ctx, s.sess, 1, 3)

	assert.ErrorIs(s.T(), err, ErrRentFailed)
	assert.Contains(s.T(), err.Error(), "InsufficientPayment(required=3500, provided=3000)")
	assert.Equal(s.T(), "InsufficientPayment(required=3500, provided=3000)", saved.Reason)
	assert.Equal(s.T(), "", saved.TxHash)
}

func (s *submitterSuite) Test_Rent_UserRejectedSigning() {
	ctx := context.Background()

	s.reader.EXPECT().GetBookRecord(ctx, uint64(1)).Return(availableRecord(1, 1_000), nil)
	s.contract.EXPECT().
		Transact(gomock.Any(), chain.MethodRentBook, bigEq(1), bigEq(1)).
		Return(nil, errors.New("user rejected the request"))
	s.expectJournal(model.SubmissionRejected)

	_, err := s.timeSubmitter().Rent(ctx, s.sess, 1, 1)

	assert.ErrorIs(s.T(), err, ErrRentFailed)
	assert.Contains(s.T(), err.Error(), "user rejected the request")
}

func (s *submitterSuite) Test_Rent_RevertedReceiptErr() {
	ctx := context.Background()
	tx := newTx(big.NewInt(1))

	s.reader.EXPECT().GetBookRecord(ctx, uint64(1)).Return(availableRecord(1, 1_000), nil)
	s.contract.EXPECT().
		Transact(gomock.Any(), chain.MethodRentBook, bigEq(1), bigEq(2)).
		Return(tx, nil)
	s.expectReceipt(tx, types.ReceiptStatusFailed)
	s.expectJournal(model.SubmissionReverted)

	_, err := s.timeSubmitter().Rent(ctx, s.sess, 1, 2)

	assert.ErrorIs(s.T(), err, ErrRentFailed)
	assert.ErrorIs(s.T(), err, ErrTransactionFailed)
}

func (s *submitterSuite) Test_Rent_JournalErrDoesNotFail() {
	ctx := context.Background()
	tx := newTx(big.NewInt(1))

	s.reader.EXPECT().GetBookRecord(ctx, uint64(1)).Return(availableRecord(1, 1_000), nil)
	s.contract.EXPECT().
		Transact(gomock.Any(), chain.MethodRentBook, bigEq(1), bigEq(1)).
		Return(tx, nil)
	s.expectReceipt(tx, types.ReceiptStatusSuccessful)
	s.journal.EXPECT().
		SaveSubmission(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	_, err := s.timeSubmitter().Rent(ctx, s.sess, 1, 1)

	assert.Nil(s.T(), err)
}

func (s *submitterSuite) Test_Rent_NoJournal() {
	ctx := context.Background()
	tx := newTx(big.NewInt(1))
	sub := New(model.TimeBased, s.params, s.timeABI, s.contract, s.reader, s.backend, s.signer, nil)

	s.reader.EXPECT().GetBookRecord(ctx, uint64(1)).Return(availableRecord(1, 1_000), nil)
	s.contract.EXPECT().
		Transact(gomock.Any(), chain.MethodRentBook, bigEq(1), bigEq(1)).
		Return(tx, nil)
	s.expectReceipt(tx, types.ReceiptStatusSuccessful)

	_, err := sub.Rent(ctx, s.sess, 1, 1)

	assert.Nil(s.T(), err)
}

func (s *submitterSuite) Test_Rent_NoIdentityErr() {
	_, err := s.timeSubmitter().Rent(context.Background(), model.Session{ChainReachable: true}, 1, 1)

	assert.ErrorIs(s.T(), err, ErrRentFailed)
	assert.ErrorIs(s.T(), err, session.ErrNoIdentity)
}

func (s *submitterSuite) Test_Rent_IdentityMismatchErr() {
	other := model.Session{Account: strangerHex, ChainReachable: true}

	_, err := s.timeSubmitter().Rent(context.Background(), other, 1, 1)

	assert.ErrorIs(s.T(), err, ErrIdentityMismatch)
}

func (s *submitterSuite) Test_Rent_NoSignerErr() {
	sub := New(model.TimeBased, s.params, s.timeABI, s.contract, s.reader, s.backend, nil, s.journal)

	_, err := sub.Rent(context.Background(), s.sess, 1, 1)

	assert.ErrorIs(s.T(), err, ErrNoSigner)
	assert.Equal(s.T(), "", sub.Account())
}

func (s *submitterSuite) Test_Return_Success() {
	ctx := context.Background()
	tx := newTx(big.NewInt(0))

	s.contract.EXPECT().
		Transact(gomock.Any(), chain.MethodReturnBook, bigEq(4)).
		DoAndReturn(func(opts *bind.TransactOpts, _ string, _ ...any) (*types.Transaction, error) {
			assert.Nil(s.T(), opts.Value)
			return tx, nil
		})
	s.expectReceipt(tx, types.ReceiptStatusSuccessful)
	saved := s.expectJournal(model.SubmissionMined)

	_, err := s.timeSubmitter().Return(ctx, s.sess, 4)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), model.SubmissionReturn, saved.Kind)
}

func (s *submitterSuite) Test_Return_NotRenterErr() {
	ctx := context.Background()
	abiErr := s.timeABI.Errors["NotRenter"]

	s.contract.EXPECT().
		Transact(gomock.Any(), chain.MethodReturnBook, bigEq(4)).
		Return(nil, revertErr{data: hexutil.Encode(abiErr.ID[:4])})
	s.expectJournal(model.SubmissionRejected)

	_, err := s.timeSubmitter().Return(ctx, s.sess, 4)

	assert.ErrorIs(s.T(), err, ErrReturnFailed)
	assert.Contains(s.T(), err.Error(), "NotRenter")
}

func (s *submitterSuite) Test_List_TimeBasedSuccess() {
	ctx := context.Background()
	tx := newTx(big.NewInt(0))

	s.reader.EXPECT().GetStoreOwner(ctx).Return(common.HexToAddress(signerHex).Hex(), nil)
	s.contract.EXPECT().
		Transact(gomock.Any(), chain.MethodListBook, "QxMeta", bigEq(1_000)).
		Return(tx, nil)
	s.expectReceipt(tx, types.ReceiptStatusSuccessful)
	saved := s.expectJournal(model.SubmissionMined)

	_, err := s.timeSubmitter().List(ctx, s.sess, "QxMeta", big.NewInt(1_000), nil)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), model.SubmissionList, saved.Kind)
	assert.Equal(s.T(), "QxMeta", saved.MetadataCid)
}

func (s *submitterSuite) Test_List_DepositBasedSendsDeposit() {
	ctx := context.Background()
	tx := newTx(big.NewInt(0))

	s.reader.EXPECT().GetStoreOwner(ctx).Return(signerHex, nil)
	s.contract.EXPECT().
		Transact(gomock.Any(), chain.MethodListBook, "QxMeta", bigEq(1_000), bigEq(9_000)).
		Return(tx, nil)
	s.expectReceipt(tx, types.ReceiptStatusSuccessful)
	s.expectJournal(model.SubmissionMined)

	_, err := s.depositSubmitter().List(ctx, s.sess, "QxMeta", big.NewInt(1_000), big.NewInt(9_000))

	assert.Nil(s.T(), err)
}

func (s *submitterSuite) Test_List_DepositBasedMissingDepositErr() {
	_, err := s.depositSubmitter().List(context.Background(), s.sess, "QxMeta", big.NewInt(1_000), nil)

	assert.ErrorIs(s.T(), err, ErrListFailed)
	assert.ErrorIs(s.T(), err, economics.ErrMissingDeposit)
}

func (s *submitterSuite) Test_List_NotStoreOwnerErr() {
	ctx := context.Background()

	s.reader.EXPECT().GetStoreOwner(ctx).Return(strangerHex, nil)

	_, err := s.timeSubmitter().List(ctx, s.sess, "QxMeta", big.NewInt(1_000), nil)

	assert.ErrorIs(s.T(), err, ErrListFailed)
	assert.ErrorIs(s.T(), err, ErrNotStoreOwner)
}

func (s *submitterSuite) Test_List_OwnerUnknownLedgerDecides() {
	ctx := context.Background()
	tx := newTx(big.NewInt(0))

	s.reader.EXPECT().GetStoreOwner(ctx).Return("", chain.ErrChainUnreachable)
	s.contract.EXPECT().
		Transact(gomock.Any(), chain.MethodListBook, "QxMeta", bigEq(0)).
		Return(tx, nil)
	s.expectReceipt(tx, types.ReceiptStatusSuccessful)
	s.expectJournal(model.SubmissionMined)

	_, err := s.timeSubmitter().List(ctx, s.sess, "QxMeta", big.NewInt(0), nil)

	assert.Nil(s.T(), err)
}

func (s *submitterSuite) Test_CanList_StoreOwner() {
	ctx := context.Background()

	s.reader.EXPECT().GetStoreOwner(ctx).Return(common.HexToAddress(signerHex).Hex(), nil)

	assert.Nil(s.T(), s.timeSubmitter().CanList(ctx, s.sess))
}

func (s *submitterSuite) Test_CanList_NotStoreOwnerErr() {
	ctx := context.Background()

	s.reader.EXPECT().GetStoreOwner(ctx).Return(strangerHex, nil)

	err := s.timeSubmitter().CanList(ctx, s.sess)

	assert.ErrorIs(s.T(), err, ErrNotStoreOwner)
}

func (s *submitterSuite) Test_CanList_NoIdentityErr() {
	err := s.timeSubmitter().CanList(context.Background(), model.Session{ChainReachable: true})

	assert.ErrorIs(s.T(), err, ErrListFailed)
	assert.ErrorIs(s.T(), err, session.ErrNoIdentity)
}

func (s *submitterSuite) Test_List_EmptyCidErr() {
	_, err := s.timeSubmitter().List(context.Background(), s.sess, "  ", big.NewInt(1), nil)

	assert.ErrorIs(s.T(), err, ErrEmptyMetadataCid)
}

func (s *submitterSuite) Test_Quote() {
	ctx := context.Background()

	s.reader.EXPECT().GetBookRecord(ctx, uint64(1)).Return(availableRecord(1, 1_000_000_000_000_000), nil)

	value, rec, err := s.timeSubmitter().Quote(ctx, 1, 3)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "3500000000000000", value.String())
	assert.Equal(s.T(), uint64(1), rec.ID)
}
