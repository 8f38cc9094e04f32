package listingService

import (
	"book_rental_dapp/internal/economics"
	"book_rental_dapp/internal/model"
	"book_rental_dapp/internal/service"
	"book_rental_dapp/internal/service/listingService/mocks"
	"book_rental_dapp/internal/submitter"
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type weiMatcher struct {
	want string
}

func (m weiMatcher) Matches(x any) bool {
	v, ok := x.(*big.Int)
	return ok && v != nil && v.String() == m.want
}

func (m weiMatcher) String() string {
	return fmt.Sprintf("is %s wei", m.want)
}

type listingServiceSuite struct {
	suite.Suite

	mockCtrl *gomock.Controller
	service  *ListingService
	uploader *mocks.MockUploader
	lister   *mocks.MockLister
	sess     model.Session
}

func TestListingServiceSuite(t *testing.T) {
	suite.Run(t, new(listingServiceSuite))
}

func (s *listingServiceSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.uploader = mocks.NewMockUploader(s.mockCtrl)
	s.lister = mocks.NewMockLister(s.mockCtrl)
	s.sess = model.Session{Account: "0x1111111111111111111111111111111111111111", ChainReachable: true, Generation: 1}

	s.service = New(s.uploader, s.lister)
}

func (s *listingServiceSuite) Test_ListBook_TimeBasedSuccess() {
	ctx := context.Background()
	image := bytes.NewReader([]byte("jpeg"))

	s.lister.EXPECT().CanList(ctx, s.sess).Return(nil)
	s.uploader.EXPECT().
		UploadFile(ctx, image, "dune.jpg").
		Return("QmImage", nil)

	s.uploader.EXPECT().
		UploadJSON(ctx, model.ListingMetadata{Title: "Dune", Author: "Frank Herbert", ImageCid: "QmImage"}, "dune-metadata.json").
		Return("QmMeta", nil)

	s.lister.EXPECT().
		List(ctx, s.sess, "QmMeta", weiMatcher{want: "1000000000000000"}, gomock.Nil()).
		Return(&types.Receipt{TxHash: common.HexToHash("0x01"), BlockNumber: big.NewInt(12)}, nil)

	res, err := s.service.ListBook(ctx, s.sess, model.ListingRequest{
		Title:     " Dune ",
		Author:    "Frank Herbert",
		Image:     image,
		ImageName: "dune.jpg",
		RentEth:   "0.001",
	})

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "QmImage", res.ImageCid)
	assert.Equal(s.T(), "QmMeta", res.MetadataCid)
	assert.Equal(s.T(), common.HexToHash("0x01").Hex(), res.TxHash)
	assert.Equal(s.T(), uint64(12), res.BlockNumber)
}

func (s *listingServiceSuite) Test_ListBook_DepositPassedThrough() {
	ctx := context.Background()
	image := bytes.NewReader([]byte("png"))

	s.lister.EXPECT().CanList(ctx, s.sess).Return(nil)
	s.uploader.EXPECT().UploadFile(ctx, image, "cover.png").Return("QmImage", nil)
	s.uploader.EXPECT().UploadJSON(ctx, gomock.Any(), gomock.Any()).Return("QmMeta", nil)

	s.lister.EXPECT().
		List(ctx, s.sess, "QmMeta", weiMatcher{want: "2000000000000000"}, weiMatcher{want: "10000000000000000"}).
		Return(&types.Receipt{TxHash: common.HexToHash("0x02")}, nil)

	res, err := s.service.ListBook(ctx, s.sess, model.ListingRequest{
		Title:      "Solaris",
		Image:      image,
		ImageName:  "cover.png",
		RentEth:    "0.002",
		DepositEth: "0.01",
	})

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), uint64(0), res.BlockNumber)
}

func (s *listingServiceSuite) Test_ListBook_SubWeiRentRejectedBeforeUpload() {
	_, err := s.service.ListBook(context.Background(), s.sess, model.ListingRequest{
		Title:   "Dune",
		Image:   bytes.NewReader(nil),
		RentEth: "0.0000000000000000001",
	})

	assert.ErrorIs(s.T(), err, economics.ErrSubWeiPrecision)
}

func (s *listingServiceSuite) Test_ListBook_InvalidDepositErr() {
	_, err := s.service.ListBook(context.Background(), s.sess, model.ListingRequest{
		Title:      "Dune",
		Image:      bytes.NewReader(nil),
		RentEth:    "0.001",
		DepositEth: "-1",
	})

	assert.ErrorIs(s.T(), err, economics.ErrNegativeAmount)
}

func (s *listingServiceSuite) Test_ListBook_NoImageErr() {
	_, err := s.service.ListBook(context.Background(), s.sess, model.ListingRequest{Title: "Dune", RentEth: "1"})

	assert.Equal(s.T(), service.ErrNoImage, err)
}

func (s *listingServiceSuite) Test_ListBook_EmptyTitleErr() {
	_, err := s.service.ListBook(context.Background(), s.sess, model.ListingRequest{Title: "  ", Image: bytes.NewReader(nil)})

	assert.Equal(s.T(), service.ErrEmptyTitle, err)
}

func (s *listingServiceSuite) Test_ListBook_ImageUploadErr() {
	ctx := context.Background()
	expectedErr := errors.New("upload failed")

	s.lister.EXPECT().CanList(ctx, s.sess).Return(nil)
	s.uploader.EXPECT().UploadFile(ctx, gomock.Any(), gomock.Any()).Return("", expectedErr)

	_, err := s.service.ListBook(ctx, s.sess, model.ListingRequest{
		Title:   "Dune",
		Image:   bytes.NewReader(nil),
		RentEth: "0.001",
	})

	assert.Equal(s.T(), expectedErr, err)
}

func (s *listingServiceSuite) Test_ListBook_ListErrKeepsPinnedCids() {
	ctx := context.Background()
	expectedErr := errors.New("receipt timeout")

	s.lister.EXPECT().CanList(ctx, s.sess).Return(nil)
	s.uploader.EXPECT().UploadFile(ctx, gomock.Any(), gomock.Any()).Return("QmImage", nil)
	s.uploader.EXPECT().UploadJSON(ctx, gomock.Any(), gomock.Any()).Return("QmMeta", nil)
	s.lister.EXPECT().
		List(ctx, s.sess, "QmMeta", gomock.Any(), gomock.Any()).
		Return(nil, expectedErr)

	res, err := s.service.ListBook(ctx, s.sess, model.ListingRequest{
		Title:   "Dune",
		Image:   bytes.NewReader(nil),
		RentEth: "0.001",
	})

	assert.ErrorIs(s.T(), err, expectedErr)
	assert.Equal(s.T(), "QmMeta", res.MetadataCid)
	assert.Equal(s.T(), "", res.TxHash)
}

func (s *listingServiceSuite) Test_ListBook_NotStoreOwnerUploadsNothing() {
	ctx := context.Background()

	s.lister.EXPECT().CanList(ctx, s.sess).Return(submitter.ErrNotStoreOwner)

	_, err := s.service.ListBook(ctx, s.sess, model.ListingRequest{
		Title:   "Dune",
		Image:   bytes.NewReader([]byte("jpeg")),
		RentEth: "0.001",
	})

	assert.ErrorIs(s.T(), err, submitter.ErrNotStoreOwner)
}

func TestMetadataName(t *testing.T) {
	assert.Equal(t, "the-left-hand-of-darkness-metadata.json", metadataName("The Left Hand of Darkness"))
	assert.Equal(t, "book-metadata.json", metadataName("Пикник"))
}
