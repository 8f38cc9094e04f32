package listingService

import (
	"book_rental_dapp/internal/economics"
	"book_rental_dapp/internal/model"
	"book_rental_dapp/internal/service"
	"book_rental_dapp/utils"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=listingService.go -destination=mocks/mock_listingService.go -package=mocks

type Uploader interface {
	UploadFile(ctx context.Context, reader io.Reader, filename string) (cid string, err error)
	UploadJSON(ctx context.Context, v any, name string) (cid string, err error)
}

type Lister interface {
	CanList(ctx context.Context, sess model.Session) error
	List(ctx context.Context, sess model.Session, metadataCid string, dailyRentWei, depositWei *big.Int) (*types.Receipt, error)
}

type ListingService struct {
	uploader Uploader
	lister   Lister
}

func New(uploader Uploader, lister Lister) *ListingService {
	return &ListingService{uploader: uploader, lister: lister}
}

// ListBook pins the cover and the metadata document, then lists the book
// under the metadata cid. Amounts and the store owner are checked before
// anything is uploaded.
func (s *ListingService) ListBook(ctx context.Context, sess model.Session, req model.ListingRequest) (model.ListingResult, error) {
	op := "ListingService.ListBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if strings.TrimSpace(req.Title) == "" {
		return model.ListingResult{}, service.ErrEmptyTitle
	}

	if req.Image == nil {
		return model.ListingResult{}, service.ErrNoImage
	}

	rentWei, err := economics.ParseEther(req.RentEth)
	if err != nil {
		return model.ListingResult{}, fmt.Errorf("daily rent: %w", err)
	}

	var depositWei *big.Int
	if strings.TrimSpace(req.DepositEth) != "" {
		depositWei, err = economics.ParseEther(req.DepositEth)
		if err != nil {
			return model.ListingResult{}, fmt.Errorf("deposit: %w", err)
		}
	}

	if err = s.lister.CanList(ctx, sess); err != nil {
		return model.ListingResult{}, err
	}

	imageCid, err := s.uploader.UploadFile(ctx, req.Image, req.ImageName)
	if err != nil {
		slog.Error("got error from uploader.UploadFile", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.ListingResult{}, err
	}

	metadata := model.ListingMetadata{
		Title:    strings.TrimSpace(req.Title),
		Author:   strings.TrimSpace(req.Author),
		ImageCid: imageCid,
	}

	metadataCid, err := s.uploader.UploadJSON(ctx, metadata, metadataName(metadata.Title))
	if err != nil {
		slog.Error("got error from uploader.UploadJSON", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.ListingResult{}, err
	}

	slog.Info(
		"metadata pinned",
		slog.String("rqID", rqID),
		slog.String("op", op),
		slog.String("imageCid", imageCid),
		slog.String("metadataCid", metadataCid),
	)

	receipt, err := s.lister.List(ctx, sess, metadataCid, rentWei, depositWei)
	if err != nil {
		return model.ListingResult{ImageCid: imageCid, MetadataCid: metadataCid}, err
	}

	res := model.ListingResult{
		ImageCid:    imageCid,
		MetadataCid: metadataCid,
		TxHash:      receipt.TxHash.Hex(),
	}
	if receipt.BlockNumber != nil {
		res.BlockNumber = receipt.BlockNumber.Uint64()
	}

	return res, nil
}

func metadataName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, strings.ToLower(title))

	if name == "" {
		name = "book"
	}

	return name + "-metadata.json"
}
