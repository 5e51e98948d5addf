package contact

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupe-serrurerie/contact-api/pkg/logging"
)

func newMockRepo(t *testing.T) (*PostgresRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresRepository(mock, logging.New("error")), mock
}

func testLead(t *testing.T) *Lead {
	t.Helper()
	return &Lead{
		Name:      "Jean Dupont",
		Email:     "jean@test.fr",
		Phone:     "0612345678",
		Ville:     "Paris",
		Address:   "12 Rue de Paris",
		Message:   "Porte bloquée besoin urgent",
		Service:   "ouverture-de-porte",
		IPAddress: "203.0.113.7",
		CreatedAt: mustTime(t),
	}
}

func TestPostgresCreateSuccess(t *testing.T) {
	repo, mock := newMockRepo(t)
	lead := testLead(t)

	mock.ExpectExec(regexp.QuoteMeta(probeQuery)).
		WillReturnResult(pgxmock.NewResult("SELECT", 0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contacts")).
		WithArgs(pgxmock.AnyArg(), lead.Name, lead.Email, lead.Phone, lead.Ville,
			lead.Address, lead.Message, lead.Service, lead.IPAddress, lead.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	id, err := repo.Create(context.Background(), lead)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateNullsEmptyService(t *testing.T) {
	repo, mock := newMockRepo(t)
	lead := testLead(t)
	lead.Service = ""

	mock.ExpectExec(regexp.QuoteMeta(probeQuery)).
		WillReturnResult(pgxmock.NewResult("SELECT", 0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contacts")).
		WithArgs(pgxmock.AnyArg(), lead.Name, lead.Email, lead.Phone, lead.Ville,
			lead.Address, lead.Message, nil, lead.IPAddress, lead.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	_, err := repo.Create(context.Background(), lead)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateProbeFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(probeQuery)).
		WillReturnError(errors.New(`relation "contacts" does not exist`))

	_, err := repo.Create(context.Background(), testLead(t))
	require.Error(t, err)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, CodeTableError, storeErr.Code)
	assert.Equal(t, MsgDatabaseError, storeErr.User())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateEmailConstraintViolation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(probeQuery)).
		WillReturnResult(pgxmock.NewResult("SELECT", 0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contacts")).
		WillReturnError(&pgconn.PgError{
			Code:           CodeCheckViolation,
			Message:        `new row for relation "contacts" violates check constraint "contacts_email_format"`,
			ConstraintName: "contacts_email_format",
		})

	_, err := repo.Create(context.Background(), testLead(t))
	require.Error(t, err)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, CodeCheckViolation, storeErr.Code)
	assert.Equal(t, MsgInvalidEmailSQL, storeErr.User())
}

func TestPostgresCreatePhoneConstraintViolation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(probeQuery)).
		WillReturnResult(pgxmock.NewResult("SELECT", 0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contacts")).
		WillReturnError(&pgconn.PgError{
			Code:           CodeCheckViolation,
			Message:        `new row for relation "contacts" violates check constraint "contacts_phone_format"`,
			ConstraintName: "contacts_phone_format",
		})

	_, err := repo.Create(context.Background(), testLead(t))
	require.Error(t, err)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, MsgInvalidPhoneSQL, storeErr.User())
}

func TestPostgresCreateOtherInsertFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(probeQuery)).
		WillReturnResult(pgxmock.NewResult("SELECT", 0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contacts")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), testLead(t))
	require.Error(t, err)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, CodeTableError, storeErr.Code)
	assert.Equal(t, MsgDatabaseError, storeErr.User())
}
