package repository

import (
	"book_rental_dapp/internal/model"
	"book_rental_dapp/utils"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type submissionRow struct {
	ID          uuid.UUID      `db:"id"`
	Kind        string         `db:"kind"`
	BookID      int64          `db:"book_id"`
	Account     string         `db:"account"`
	ValueWei    sql.NullString `db:"value_wei"`
	MetadataCid string         `db:"metadata_cid"`
	TxHash      string         `db:"tx_hash"`
	Status      string         `db:"status"`
	Reason      string         `db:"reason"`
	CreatedAt   time.Time      `db:"created_at"`
}

// Postgres is the submission journal. It is an audit trail only; nothing
// reads it back to decide ledger state.
type Postgres struct {
	db *sqlx.DB
}

func NewPostgresRepo(db *sqlx.DB) *Postgres {
	return &Postgres{db}
}

func (r *Postgres) SaveSubmission(ctx context.Context, sub model.Submission) error {
	op := "Postgres.SaveSubmission"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `INSERT INTO submissions (id, kind, book_id, account, value_wei, metadata_cid, tx_hash, status, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET tx_hash = EXCLUDED.tx_hash, status = EXCLUDED.status, reason = EXCLUDED.reason`

	var value sql.NullString
	if sub.ValueWei != nil {
		value = sql.NullString{String: sub.ValueWei.String(), Valid: true}
	}

	_, err := r.db.ExecContext(
		ctx,
		query,
		sub.ID,
		string(sub.Kind),
		int64(sub.BookID),
		sub.Account,
		value,
		sub.MetadataCid,
		sub.TxHash,
		string(sub.Status),
		sub.Reason,
		sub.CreatedAt,
	)
	if err != nil {
		slog.Error(
			"Failed to save submission",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.String("submissionId", sub.ID.String()),
		)
		return err
	}

	slog.Debug(
		"Submission saved",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.String("submissionId", sub.ID.String()),
		slog.String("status", string(sub.Status)),
	)
	return nil
}

// ListSubmissions returns the latest submissions of account, newest first.
func (r *Postgres) ListSubmissions(ctx context.Context, account string, limit int) ([]model.Submission, error) {
	op := "Postgres.ListSubmissions"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `SELECT id, kind, book_id, account, value_wei, metadata_cid, tx_hash, status, reason, created_at
		FROM submissions WHERE lower(account) = lower($1) ORDER BY created_at DESC LIMIT $2`

	rows := make([]submissionRow, 0, limit)
	if err := r.db.SelectContext(ctx, &rows, query, account, limit); err != nil {
		slog.Error(
			"Failed to list submissions",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.String("account", account),
		)
		return nil, err
	}

	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	subs := make([]model.Submission, 0, len(rows))
	for _, row := range rows {
		sub, err := row.toModel()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		subs = append(subs, sub)
	}

	return subs, nil
}

func (row submissionRow) toModel() (model.Submission, error) {
	sub := model.Submission{
		ID:          row.ID,
		Kind:        model.SubmissionKind(row.Kind),
		BookID:      uint64(row.BookID),
		Account:     row.Account,
		MetadataCid: row.MetadataCid,
		TxHash:      row.TxHash,
		Status:      model.SubmissionStatus(row.Status),
		Reason:      row.Reason,
		CreatedAt:   row.CreatedAt,
	}

	if row.ValueWei.Valid {
		value, ok := new(big.Int).SetString(row.ValueWei.String, 10)
		if !ok {
			return model.Submission{}, fmt.Errorf("bad value_wei %q for submission %s", row.ValueWei.String, row.ID)
		}
		sub.ValueWei = value
	}

	return sub, nil
}
