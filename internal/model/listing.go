package model

import "io"

// ListingRequest is what a store owner fills in to list a new book.
// Amounts are decimal ETH strings.
type ListingRequest struct {
	Title      string
	Author     string
	Image      io.Reader
	ImageName  string
	RentEth    string
	DepositEth string // DepositBased only
}

// ListingMetadata is the JSON document pinned for a listed book.
type ListingMetadata struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	ImageCid string `json:"imageCid"`
}

type ListingResult struct {
	ImageCid    string
	MetadataCid string
	TxHash      string
	BlockNumber uint64
}
