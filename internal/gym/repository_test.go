package gym

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestCreateGym(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`INSERT INTO gyms.*`).
		WithArgs("Downtown", "City X", "owner@downtown.example").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "contact_email", "created_at"}).
			AddRow(1, "Downtown", "City X", "owner@downtown.example", time.Now()))

	gym, err := repo.CreateGym(context.Background(), "Downtown", "City X", "owner@downtown.example")
	assert.NoError(t, err)
	assert.Equal(t, 1, gym.ID)
	assert.Equal(t, "Downtown", gym.Name)
	assert.Equal(t, "owner@downtown.example", gym.ContactEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllGyms(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`SELECT id, name, location, contact_email, created_at FROM gyms.*`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "contact_email", "created_at"}).
			AddRow(1, "Downtown", "City X", "a@x.example", time.Now()).
			AddRow(2, "Riverside", "City Y", "b@y.example", time.Now()))

	gyms, err := repo.GetAllGyms(context.Background())
	assert.NoError(t, err)
	assert.Len(t, gyms, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGymByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`SELECT id, name, location, contact_email, created_at FROM gyms WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "contact_email", "created_at"}).
			AddRow(1, "Downtown", "City X", "a@x.example", time.Now()))

	gym, err := repo.GetGymByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, gym.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
