package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epickup/epickup-backend/internal/pkg/apperrors"
	"github.com/epickup/epickup-backend/internal/pkg/models"
)

func setupAccountRepoTest(t *testing.T) (*AccountRepo, sqlmock.Sqlmock, func()) {
	// Create SQL mock
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	// Create sqlx DB with mock
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := NewAccountRepo(&models.Config{}, sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

var accountColumns = []string{
	"id", "original_uid", "phone_number", "full_name", "role",
	"is_verified", "is_active", "created_at", "updated_at", "last_login_at", "payload",
}

func TestGetAccount(t *testing.T) {
	testCases := []struct {
		name       string
		id         string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, account *models.Account, err error)
	}{
		{
			name: "Success - Driver Account",
			id:   "uf3a9c1d2e4b5a6f7c8d9e0a1b2c",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(accountColumns).
					AddRow("uf3a9c1d2e4b5a6f7c8d9e0a1b2c", "fb-raw-uid", "+918123456789",
						"Asha D.", "driver", true, true, time.Now(), time.Now(), time.Now(),
						[]byte(`{"wallet_balance":150.5,"is_available":true}`))
				mock.ExpectQuery("^SELECT (.+) FROM accounts").
					WithArgs("uf3a9c1d2e4b5a6f7c8d9e0a1b2c").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, account *models.Account, err error) {
				assert.NoError(t, err)
				require.NotNil(t, account)
				assert.Equal(t, "uf3a9c1d2e4b5a6f7c8d9e0a1b2c", account.ID)
				assert.Equal(t, "fb-raw-uid", account.OriginalUID)
				assert.Equal(t, models.RoleDriver, account.Role)
				assert.True(t, account.IsActive)

				var payload models.DriverPayload
				require.NoError(t, json.Unmarshal(account.Payload, &payload))
				assert.Equal(t, 150.5, payload.WalletBalance)
			},
		},
		{
			name: "Account Not Found",
			id:   "umissing0000000000000000000",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM accounts").
					WithArgs("umissing0000000000000000000").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, account *models.Account, err error) {
				assert.Nil(t, account)
				assert.True(t, apperrors.HasCode(err, apperrors.CodeAccountNotFound))
			},
		},
		{
			name: "Database Error",
			id:   "uf3a9c1d2e4b5a6f7c8d9e0a1b2c",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM accounts").
					WithArgs("uf3a9c1d2e4b5a6f7c8d9e0a1b2c").
					WillReturnError(errors.New("connection reset"))
			},
			assertFunc: func(t *testing.T, account *models.Account, err error) {
				assert.Nil(t, account)
				assert.Error(t, err)
				// Infrastructure failure is never misreported as NotFound.
				assert.False(t, apperrors.HasCode(err, apperrors.CodeAccountNotFound))
				assert.Contains(t, err.Error(), "failed to get account")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupAccountRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			account, err := repo.GetAccount(context.Background(), tc.id)

			tc.assertFunc(t, account, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func newAccountForInsert() *models.Account {
	payload, _ := models.DefaultPayload(models.RoleDriver)
	return &models.Account{
		ID:          "uf3a9c1d2e4b5a6f7c8d9e0a1b2c",
		OriginalUID: "fb-raw-uid",
		PhoneNumber: "+918123456789",
		FullName:    "Asha D.",
		Role:        models.RoleDriver,
		IsVerified:  true,
		IsActive:    true,
		Payload:     payload,
	}
}

func TestCreateAccount(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, inserted bool, err error)
	}{
		{
			name: "Success - Row Inserted",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO accounts").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, inserted bool, err error) {
				assert.NoError(t, err)
				assert.True(t, inserted)
			},
		},
		{
			name: "Conflict - Concurrent Create Won",
			mockSetup: func(mock sqlmock.Sqlmock) {
				// ON CONFLICT (id) DO NOTHING reports zero rows; the caller
				// re-reads the surviving record instead of failing.
				mock.ExpectExec("^INSERT INTO accounts").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, inserted bool, err error) {
				assert.NoError(t, err)
				assert.False(t, inserted)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO accounts").
					WillReturnError(errors.New("connection reset"))
			},
			assertFunc: func(t *testing.T, inserted bool, err error) {
				assert.Error(t, err)
				assert.False(t, inserted)
				assert.Contains(t, err.Error(), "failed to insert account")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupAccountRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			inserted, err := repo.CreateAccount(context.Background(), newAccountForInsert())

			tc.assertFunc(t, inserted, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateAccount_StampsTimestamps(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^INSERT INTO accounts").
		WillReturnResult(sqlmock.NewResult(0, 1))

	account := newAccountForInsert()
	before := time.Now()

	_, err := repo.CreateAccount(context.Background(), account)
	require.NoError(t, err)

	assert.False(t, account.CreatedAt.Before(before))
	assert.Equal(t, account.CreatedAt, account.UpdatedAt)
	assert.Equal(t, account.CreatedAt, account.LastLoginAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTouchLastLogin(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^UPDATE accounts SET last_login_at").
		WithArgs("uf3a9c1d2e4b5a6f7c8d9e0a1b2c", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.TouchLastLogin(context.Background(), "uf3a9c1d2e4b5a6f7c8d9e0a1b2c")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAccountsByPhone(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows(accountColumns).
		AddRow("ucust0000000000000000000000a", "fb-raw-uid", "+918123456789",
			"Asha", "customer", true, true, time.Now(), time.Now(), time.Now(),
			[]byte(`{}`)).
		AddRow("udrv00000000000000000000000b", "fb-raw-uid", "+918123456789",
			"Asha D.", "driver", true, true, time.Now(), time.Now(), time.Now(),
			[]byte(`{}`))
	mock.ExpectQuery("^SELECT (.+) FROM accounts WHERE phone_number").
		WithArgs("+918123456789").
		WillReturnRows(rows)

	accounts, err := repo.GetAccountsByPhone(context.Background(), "+918123456789")

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, models.RoleCustomer, accounts[0].Role)
	assert.Equal(t, models.RoleDriver, accounts[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAccountActive(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE accounts SET is_active").
					WithArgs("uf3a9c1d2e4b5a6f7c8d9e0a1b2c", false, sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "No Such Account",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE accounts SET is_active").
					WithArgs("uf3a9c1d2e4b5a6f7c8d9e0a1b2c", false, sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.True(t, apperrors.HasCode(err, apperrors.CodeAccountNotFound))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupAccountRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.SetAccountActive(context.Background(), "uf3a9c1d2e4b5a6f7c8d9e0a1b2c", false)

			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateRolePayload(t *testing.T) {
	payload := json.RawMessage(`{"is_available":true,"wallet_balance":200.75}`)

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE accounts SET payload").
					WithArgs("uf3a9c1d2e4b5a6f7c8d9e0a1b2c", []byte(payload), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "No Such Account",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE accounts SET payload").
					WithArgs("uf3a9c1d2e4b5a6f7c8d9e0a1b2c", []byte(payload), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.True(t, apperrors.HasCode(err, apperrors.CodeAccountNotFound))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupAccountRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.UpdateRolePayload(context.Background(), "uf3a9c1d2e4b5a6f7c8d9e0a1b2c", payload)

			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
