package model

import (
	"math/big"
	"time"

	"github.com/google/uuid"
)

type SubmissionKind string

const (
	SubmissionRent   SubmissionKind = "rent"
	SubmissionReturn SubmissionKind = "return"
	SubmissionList   SubmissionKind = "list"
)

type SubmissionStatus string

const (
	SubmissionSent     SubmissionStatus = "sent"
	SubmissionMined    SubmissionStatus = "mined"
	SubmissionReverted SubmissionStatus = "reverted"
	SubmissionRejected SubmissionStatus = "rejected"
)

// Submission is one journal line describing a state-changing call.
type Submission struct {
	ID          uuid.UUID
	Kind        SubmissionKind
	BookID      uint64
	Account     string
	ValueWei    *big.Int
	MetadataCid string // list only
	TxHash      string
	Status      SubmissionStatus
	Reason      string
	CreatedAt   time.Time
}
