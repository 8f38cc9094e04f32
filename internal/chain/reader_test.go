package chain

import (
	"book_rental_dapp/internal/chain/mocks"
	"book_rental_dapp/internal/model"
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
	ownerHex  = "0x1111111111111111111111111111111111111111"
	renterHex = "0xAbCdEf0123456789aBcDeF0123456789AbCdEf01"
)

type revertErr struct {
	data string
}

func (e revertErr) Error() string          { return "execution reverted" }
func (e revertErr) ErrorCode() int         { return 3 }
func (e revertErr) ErrorData() interface{} { return e.data }

type nodeErr struct {
	code int
	msg  string
}

func (e nodeErr) Error() string  { return e.msg }
func (e nodeErr) ErrorCode() int { return e.code }

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

func returns(values ...any) func(*bind.CallOpts, *[]any, string, ...any) error {
	return func(_ *bind.CallOpts, results *[]any, _ string, _ ...any) error {
		*results = values
		return nil
	}
}

func customErrorData(contractABI abi.ABI, name string, args ...any) string {
	abiErr := contractABI.Errors[name]
	packed, err := abiErr.Inputs.Pack(args...)
	if err != nil {
		panic(err)
	}
	return hexutil.Encode(append(abiErr.ID[:4:4], packed...))
}

type readerSuite struct {
	suite.Suite

	mockCtrl *gomock.Controller
	contract *mocks.MockContractCaller
	headers  *mocks.MockHeaderReader
	params   model.EconomicsParams
	timeABI  abi.ABI
	depABI   abi.ABI
}

func TestReaderSuite(t *testing.T) {
	suite.Run(t, new(readerSuite))
}

func (s *readerSuite) SetupSuite() {
	var err error
	s.params = model.DefaultEconomicsParams()

	s.timeABI, err = ParseABI(model.TimeBased)
	s.Require().NoError(err)

	s.depABI, err = ParseABI(model.DepositBased)
	s.Require().NoError(err)
}

func (s *readerSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.contract = mocks.NewMockContractCaller(s.mockCtrl)
	s.headers = mocks.NewMockHeaderReader(s.mockCtrl)
}

func (s *readerSuite) timeReader() *Reader {
	return NewReader(model.TimeBased, s.params, s.timeABI, s.contract, s.headers)
}

func (s *readerSuite) depositReader() *Reader {
	return NewReader(model.DepositBased, s.params, s.depABI, s.contract, s.headers)
}

func (s *readerSuite) Test_GetCatalogSize_Success() {
	s.contract.EXPECT().
		Call(gomock.Any(), gomock.Any(), MethodNextBookID).
		DoAndReturn(returns(big.NewInt(6)))

	res, err := s.timeReader().GetCatalogSize(context.Background())

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), uint64(5), res)
}

func (s *readerSuite) Test_GetCatalogSize_EmptyCatalogue() {
	s.contract.EXPECT().
		Call(gomock.Any(), gomock.Any(), MethodNextBookID).
		DoAndReturn(returns(big.NewInt(0)))

	res, err := s.timeReader().GetCatalogSize(context.Background())

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), uint64(0), res)
}

func (s *readerSuite) Test_GetCatalogSize_UnreachableErr() {
	transportErr := errors.New("dial tcp 127.0.0.1:8545: connect: connection refused")

	s.contract.EXPECT().
		Call(gomock.Any(), gomock.Any(), MethodNextBookID).
		Return(transportErr)

	_, err := s.timeReader().GetCatalogSize(context.Background())

	assert.ErrorIs(s.T(), err, ErrChainUnreachable)
	assert.ErrorIs(s.T(), err, transportErr)
}

func (s *readerSuite) Test_GetCatalogSize_NodeErrIsUnreachable() {
	s.contract.EXPECT().
		Call(gomock.Any(), gomock.Any(), MethodNextBookID).
		Return(nodeErr{code: -32005, msg: "rate limit exceeded"})

	_, err := s.timeReader().GetCatalogSize(context.Background())

	assert.ErrorIs(s.T(), err, ErrChainUnreachable)
	assert.NotErrorIs(s.T(), err, ErrCallReverted)
}

func (s *readerSuite) Test_GetCatalogSize_OutOfRangeErr() {
	next := new(big.Int).Lsh(big.NewInt(1), 64)
	next.Add(next, big.NewInt(1))

	s.contract.EXPECT().
		Call(gomock.Any(), gomock.Any(), MethodNextBookID).
		DoAndReturn(returns(next))

	res, err := s.timeReader().GetCatalogSize(context.Background())

	assert.ErrorIs(s.T(), err, ErrUnexpectedOutput)
	assert.Equal(s.T(), uint64(0), res)
}

func (s *readerSuite) Test_GetBookRecord_TimeBasedSuccess() {
	s.contract.EXPECT().
		Call(gomock.Any(), gomock.Any(), MethodGetBookDetails, bigEq(1)).
		DoAndReturn(returns(
			big.NewInt(1_000_000_000_000_000),
			common.HexToAddress(ownerHex),
			true,
			common.Address{},
			"Qx1",
		))

	res, err := s.timeReader().GetBookRecord(context.Background(), 1)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), uint64(1), res.ID)
	assert.Equal(s.T(), common.HexToAddress(ownerHex).Hex(), res.Owner)
	assert.Equal(s.T(), "1000000000000000", res.DailyRentWei.String())
	assert.True(s.T(), res.IsAvailable)
	assert.Equal(s.T(), "", res.CurrentRenter)
	assert.Nil(s.T(), res.DepositWei)
	assert.Equal(s.T(), "Qx1", res.MetadataCid)
}

func (s *readerSuite) Test_GetBookRecord_DepositBasedSuccess() {
	s.contract.EXPECT().
		Call(gomock.Any(), gomock.Any(), MethodBooks, bigEq(2)).
		DoAndReturn(returns(
			big.NewInt(2),
			big.NewInt(10),
			common.HexToAddress(ownerHex),
			false,
			common.HexToAddress(renterHex),
			big.NewInt(500),
			"QxDep",
		))

	res, err := s.depositReader().GetBookRecord(context.Background(), 2)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), common.HexToAddress(ownerHex).Hex(), res.Owner)
	assert.False(s.T(), res.IsAvailable)
	assert.True(s.T(), model.SameAccount(renterHex, res.CurrentRenter))
	assert.Equal(s.T(), int64(500), res.DepositWei.Int64())
	assert.Equal(s.T(), "QxDep", res.MetadataCid)
}

func (s *readerSuite) Test_GetBookRecord_DepositBasedUnknownIDNotFound() {
	s.contract.EXPECT().
		Call(gomock.Any(), gomock.Any(), MethodBooks, bigEq(42)).
		DoAndReturn(returns(
			big.NewInt(0),
			big.NewInt(0),
			common.Address{},
			false,
			common.Address{},
			big.NewInt(0),
			"",
		))

	_, err := s.depositReader().GetBookRecord(context.Background(), 42)

	assert.ErrorIs(s.T(), err, ErrRecordNotFound)
}

func (s *readerSuite) Test_GetRentedBookIDs_DepositBased() {
	s.contract.EXPECT().
		Call(gomock.Any(), gomock.Any(), MethodUserRentedBooks, common.HexToAddress(renterHex)).
		DoAndReturn(returns([]*big.Int{big.NewInt(3), big.NewInt(7)}))

	res, err := s.depositReader().GetRentedBookIDs(context.Background(), renterHex)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), []uint64{3, 7}, res)
}

func (s *readerSuite) Test_GetRentedBookIDs_TimeBasedNotSupported() {
	_, err := s.timeReader().GetRentedBookIDs(context.Background(), renterHex)

	assert.ErrorIs(s.T(), err, ErrNotSupported)
}

func (s *readerSuite) Test_GetBookRecord_RevertedIsNotFound() {
	s.contract.EXPECT().
		Call(gomock.Any(), gomock.Any(), MethodGetBookDetails, bigEq(99)).
		Return(revertErr{data: customErrorData(s.timeABI, "BookDoesNotExist")})

	_, err := s.timeReader().GetBookRecord(context.Background(), 99)

	assert.ErrorIs(s.T(), err, ErrRecordNotFound)
	assert.ErrorIs(s.T(), err, ErrCallReverted)
	assert.Contains(s.T(), err.Error(), "BookDoesNotExist")
}

func (s *readerSuite) Test_GetBookRecord_NodeErrIsNotNotFound() {
	s.contract.EXPECT().
		Call(gomock.Any(), gomock.Any(), MethodGetBookDetails, bigEq(1)).
		Return(nodeErr{code: -32000, msg: "missing trie node"})

	_, err := s.timeReader().GetBookRecord(context.Background(), 1)

	assert.ErrorIs(s.T(), err, ErrChainUnreachable)
	assert.NotErrorIs(s.T(), err, ErrRecordNotFound)
}

func (s *readerSuite) Test_GetBookRecord_ZeroIDNotFound() {
	_, err := s.timeReader().GetBookRecord(context.Background(), 0)

	assert.ErrorIs(s.T(), err, ErrRecordNotFound)
}

func (s *readerSuite) Test_GetBookRecord_MalformedOutputErr() {
	s.contract.EXPECT().
		Call(gomock.Any(), gomock.Any(), MethodGetBookDetails, bigEq(1)).
		DoAndReturn(returns(big.NewInt(1), "not an address"))

	_, err := s.timeReader().GetBookRecord(context.Background(), 1)

	assert.ErrorIs(s.T(), err, ErrUnexpectedOutput)
}

func (s *readerSuite) Test_GetRentalStatus_TimeBasedInPenalty() {
	s.contract.EXPECT().
		Call(gomock.Any(), gomock.Any(), MethodGetRentalStatus, bigEq(4), common.HexToAddress(renterHex)).
		DoAndReturn(returns(big.NewInt(2), true))

	res, err := s.timeReader().GetRentalStatus(context.Background(), 4, renterHex)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), model.TimeBased, res.Model)
	assert.Equal(s.T(), uint64(2), res.TimeRemainingDays)
	assert.True(s.T(), res.IsPenalty)
	assert.Equal(s.T(), "200000000000000", res.PenaltyDueWei.String())
	assert.Equal(s.T(), "300000000000000", res.RefundDueWei.String())
}

func (s *readerSuite) Test_GetRentalStatus_TimeBasedNotRenter() {
	s.contract.EXPECT().
		Call(gomock.Any(), gomock.Any(), MethodGetRentalStatus, bigEq(4), gomock.Any()).
		Return(revertErr{data: customErrorData(s.timeABI, "NotRenter")})

	_, err := s.timeReader().GetRentalStatus(context.Background(), 4, ownerHex)

	assert.ErrorIs(s.T(), err, ErrNotRenter)
}

func (s *readerSuite) Test_GetRentalStatus_InvalidAccountErr() {
	_, err := s.timeReader().GetRentalStatus(context.Background(), 4, "not-an-address")

	assert.ErrorIs(s.T(), err, ErrInvalidAccount)
}

func (s *readerSuite) Test_GetRentalStatus_DepositBased() {
	const day = 86_400
	start := uint64(1_700_000_000)

	s.contract.EXPECT().
		Call(gomock.Any(), gomock.Any(), MethodBooks, bigEq(3)).
		DoAndReturn(returns(
			big.NewInt(3),
			big.NewInt(1_000),
			common.HexToAddress(ownerHex),
			false,
			common.HexToAddress(renterHex),
			big.NewInt(5_000),
			"Qx3",
		))

	s.contract.EXPECT().
		Call(gomock.Any(), gomock.Any(), MethodRentalStartTimes, common.HexToAddress(renterHex), bigEq(3)).
		DoAndReturn(returns(new(big.Int).SetUint64(start)))

	s.headers.EXPECT().
		HeaderByNumber(gomock.Any(), gomock.Nil()).
		Return(&types.Header{Time: start + 2*day + 5}, nil)

	res, err := s.depositReader().GetRentalStatus(context.Background(), 3, "0xabcdef0123456789abcdef0123456789abcdef01")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), model.DepositBased, res.Model)
	assert.Equal(s.T(), uint64(3), res.DaysRented)
	assert.Equal(s.T(), int64(3_000), res.FeeDueWei.Int64())
	assert.Equal(s.T(), int64(2_000), res.RefundDueWei.Int64())
}

func (s *readerSuite) Test_GetRentalStatus_DepositBasedNotRenter() {
	s.contract.EXPECT().
		Call(gomock.Any(), gomock.Any(), MethodBooks, bigEq(3)).
		DoAndReturn(returns(
			big.NewInt(3),
			big.NewInt(1_000),
			common.HexToAddress(ownerHex),
			false,
			common.HexToAddress(renterHex),
			big.NewInt(5_000),
			"Qx3",
		))

	_, err := s.depositReader().GetRentalStatus(context.Background(), 3, ownerHex)

	assert.ErrorIs(s.T(), err, ErrNotRenter)
}

func (s *readerSuite) Test_GetStoreOwner_Success() {
	s.contract.EXPECT().
		Call(gomock.Any(), gomock.Any(), MethodStoreOwner).
		DoAndReturn(returns(common.HexToAddress(ownerHex)))

	res, err := s.timeReader().GetStoreOwner(context.Background())

	assert.Nil(s.T(), err)
	assert.True(s.T(), model.SameAccount(ownerHex, res))
}

func (s *readerSuite) Test_RevertReason_DecodesCustomErrorArgs() {
	err := revertErr{data: customErrorData(s.timeABI, "InsufficientPayment", big.NewInt(3_500), big.NewInt(3_000))}

	assert.Equal(s.T(), "InsufficientPayment(required=3500, provided=3000)", RevertReason(s.timeABI, err))
	assert.Equal(s.T(), "InsufficientPayment", RevertName(s.timeABI, err))
}

func (s *readerSuite) Test_RevertReason_FallsBackToMessage() {
	err := errors.New("user rejected transaction")

	assert.Equal(s.T(), "user rejected transaction", RevertReason(s.timeABI, err))
	assert.False(s.T(), IsRevert(err))
}

func TestIsRevert(t *testing.T) {
	assert.True(t, IsRevert(revertErr{data: "0x"}))
	assert.True(t, IsRevert(errors.New("execution reverted: not owner")))
	assert.True(t, IsRevert(fmt.Errorf("call: %w", bind.ErrNoCode)))
	assert.False(t, IsRevert(nodeErr{code: -32005, msg: "rate limit exceeded"}))
	assert.False(t, IsRevert(nodeErr{code: -32000, msg: "header not found"}))
	assert.False(t, IsRevert(nil))
}
