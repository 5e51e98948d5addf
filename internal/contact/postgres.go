package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/groupe-serrurerie/contact-api/pkg/logging"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock satisfies
// it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores leads in the contacts table.
type PostgresRepository struct {
	db     DB
	logger *logging.Logger
}

// NewPostgresRepository initializes a repo backed by pgx.
func NewPostgresRepository(db DB, logger *logging.Logger) *PostgresRepository {
	if db == nil {
		panic("contact: pgx pool required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &PostgresRepository{db: db, logger: logger}
}

const probeQuery = `SELECT id FROM contacts LIMIT 1`

const insertQuery = `
	INSERT INTO contacts (id, name, email, phone, ville, address, message, service, ip_address, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING created_at
`

// Create probes the contacts table and inserts the lead. Probe failures are
// reported as TABLE_ERROR without attempting the insert; check-constraint
// violations are mapped to a field-specific user message.
func (r *PostgresRepository) Create(ctx context.Context, lead *Lead) (string, error) {
	if _, err := r.db.Exec(ctx, probeQuery); err != nil {
		r.logger.Error("contacts table probe failed", "error", err)
		return "", &StoreError{
			Code:   CodeTableError,
			Detail: "table probe failed: " + err.Error(),
		}
	}

	id := uuid.New()
	var createdAt time.Time
	err := r.db.QueryRow(ctx, insertQuery,
		id,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Ville,
		lead.Address,
		lead.Message,
		nullable(lead.Service),
		lead.IPAddress,
		lead.CreatedAt,
	).Scan(&createdAt)
	if err != nil {
		r.logger.Error("lead insert failed", "error", err, "email", lead.Email)
		return "", mapInsertError(err)
	}

	return id.String(), nil
}

func mapInsertError(err error) *StoreError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		storeErr := &StoreError{Code: pgErr.Code, Detail: pgErr.Message}
		if pgErr.Code == CodeCheckViolation {
			// The table carries check constraints on email and phone shape;
			// tell the caller which one bit instead of a raw SQLSTATE.
			switch {
			case mentionsField(pgErr, "email"):
				storeErr.UserMessage = MsgInvalidEmailSQL
			case mentionsField(pgErr, "phone"):
				storeErr.UserMessage = MsgInvalidPhoneSQL
			}
		}
		return storeErr
	}
	return &StoreError{Code: CodeTableError, Detail: err.Error()}
}

func mentionsField(pgErr *pgconn.PgError, field string) bool {
	return strings.Contains(pgErr.ConstraintName, field) || strings.Contains(pgErr.Message, field)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
