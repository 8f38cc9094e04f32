package model

import "math/big"

const (
	DefaultTitle  = "Untitled"
	DefaultAuthor = "Unknown"
)

// BookRecord is the raw ledger view of a single book.
type BookRecord struct {
	ID            uint64
	Owner         string
	DailyRentWei  *big.Int
	IsAvailable   bool
	CurrentRenter string   // empty when nobody rents the book
	DepositWei    *big.Int // only set under DepositBased
	MetadataCid   string
}

type Metadata struct {
	Title    string
	Author   string
	ImageCid string // empty when absent
}

func DefaultMetadata() Metadata {
	return Metadata{Title: DefaultTitle, Author: DefaultAuthor}
}

// DisplayRecord merges on-chain and off-chain data of one book for a viewer.
type DisplayRecord struct {
	ID               uint64
	Owner            string
	CurrentRenter    string
	Title            string
	Author           string
	DailyRentWei     *big.Int
	DepositWei       *big.Int
	IsAvailable      bool
	ImageURI         string
	IsOwnedByViewer  bool
	IsRentedByViewer bool
	Status           *RentalStatus
}

// CatalogPage is a slice of the catalogue shown to a chat.
type CatalogPage struct {
	Books       []DisplayRecord
	Page        int
	HasNextPage bool
	Total       int
}
