package chain

import (
	"book_rental_dapp/internal/model"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const (
	MethodNextBookID       = "nextBookId"
	MethodGetBookDetails   = "getBookDetails"
	MethodGetRentalStatus  = "getRentalStatus"
	MethodRentalStartTimes = "rentalStartTimes"
	MethodStoreOwner       = "rentalStoreOwner"
	MethodRentBook         = "rentBook"
	MethodReturnBook       = "returnBook"
	MethodListBook         = "listBook"
	MethodBooks            = "books"
	MethodUserRentedBooks  = "getUserRentedBooks"

	errorNotRenter = "NotRenter"
)

const sharedErrorsABI = `
	{"type":"error","name":"BookDoesNotExist","inputs":[]},
	{"type":"error","name":"BookNotAvailable","inputs":[]},
	{"type":"error","name":"InsufficientPayment","inputs":[{"name":"required","type":"uint256"},{"name":"provided","type":"uint256"}]},
	{"type":"error","name":"NotRenter","inputs":[]},
	{"type":"error","name":"TransferFailed","inputs":[]},
	{"type":"function","name":"nextBookId","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"rentalStoreOwner","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"returnBook","stateMutability":"nonpayable","inputs":[{"name":"id","type":"uint256"}],"outputs":[]}`

// timeBasedABI is the contract shape with per-rental days and a capped daily penalty.
const timeBasedABI = `[` + sharedErrorsABI + `,
	{"type":"function","name":"getBookDetails","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[
		{"name":"dailyRentWei","type":"uint256"},
		{"name":"owner","type":"address"},
		{"name":"isAvailable","type":"bool"},
		{"name":"currentRenter","type":"address"},
		{"name":"metadataCid","type":"string"}]},
	{"type":"function","name":"getRentalStatus","stateMutability":"view","inputs":[{"name":"id","type":"uint256"},{"name":"user","type":"address"}],"outputs":[
		{"name":"timeRemaining","type":"uint256"},
		{"name":"isPenalty","type":"bool"}]},
	{"type":"function","name":"rentBook","stateMutability":"payable","inputs":[{"name":"id","type":"uint256"},{"name":"days","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"listBook","stateMutability":"nonpayable","inputs":[{"name":"metadataCid","type":"string"},{"name":"dailyRentWei","type":"uint256"}],"outputs":[]}
]`

// depositBasedABI is the contract shape with a fixed deposit refunded on return.
const depositBasedABI = `[` + sharedErrorsABI + `,
	{"type":"function","name":"getBookDetails","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[
		{"name":"dailyRentWei","type":"uint256"},
		{"name":"isAvailable","type":"bool"},
		{"name":"currentRenter","type":"address"},
		{"name":"depositAmountWei","type":"uint256"},
		{"name":"metadataCid","type":"string"}]},
	{"type":"function","name":"books","stateMutability":"view","inputs":[{"name":"","type":"uint256"}],"outputs":[
		{"name":"id","type":"uint256"},
		{"name":"dailyRentWei","type":"uint256"},
		{"name":"owner","type":"address"},
		{"name":"isAvailable","type":"bool"},
		{"name":"currentRenter","type":"address"},
		{"name":"depositAmountWei","type":"uint256"},
		{"name":"metadataCid","type":"string"}]},
	{"type":"function","name":"getUserRentedBooks","stateMutability":"view","inputs":[{"name":"user","type":"address"}],"outputs":[{"name":"","type":"uint256[]"}]},
	{"type":"function","name":"rentalStartTimes","stateMutability":"view","inputs":[{"name":"","type":"address"},{"name":"","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"rentBook","stateMutability":"payable","inputs":[{"name":"id","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"listBook","stateMutability":"nonpayable","inputs":[{"name":"metadataCid","type":"string"},{"name":"dailyRentWei","type":"uint256"},{"name":"depositWei","type":"uint256"}],"outputs":[]}
]`

// ParseABI returns the contract ABI for the given economic model.
func ParseABI(m model.EconomicModel) (abi.ABI, error) {
	switch m {
	case model.TimeBased:
		return abi.JSON(strings.NewReader(timeBasedABI))
	case model.DepositBased:
		return abi.JSON(strings.NewReader(depositBasedABI))
	default:
		return abi.ABI{}, fmt.Errorf("no contract ABI for economic model %s", m)
	}
}

// NewContract binds the rental contract deployed at address.
func NewContract(address common.Address, m model.EconomicModel, backend bind.ContractBackend) (*bind.BoundContract, abi.ABI, error) {
	parsed, err := ParseABI(m)
	if err != nil {
		return nil, abi.ABI{}, err
	}

	return bind.NewBoundContract(address, parsed, backend, backend, backend), parsed, nil
}
