package cvbank

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoDB(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return NewRepository(gormDB), mock
}

func TestEscapeLike(t *testing.T) {
	cases := []struct{ in, want string }{
		{"mehmet", "mehmet"},
		{"%50", `\%50`},
		{"a_b", `a\_b`},
		{`c:\temp`, `c:\\temp`},
		{"%_", `\%\_`},
		{"kadıköy", "kadıköy"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, escapeLike(tc.in), "input %q", tc.in)
	}
}

func TestSearchA_BindsEscapedTerm(t *testing.T) {
	repo, mock := setupRepoDB(t)

	// A typed % must reach the driver escaped, so it matches the
	// literal character instead of every row.
	like := `%\%50%`
	mock.ExpectQuery(`SELECT \* FROM "cv_havuzu_a"`).
		WithArgs(like, like, like, like, like, like).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.SearchA(context.Background(), "%50")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchB_BindsEscapedTerm(t *testing.T) {
	repo, mock := setupRepoDB(t)

	like := `%a\_b%`
	mock.ExpectQuery(`SELECT \* FROM "cv_havuzu_b"`).
		WithArgs(like, like, like, like, like).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.SearchB(context.Background(), "a_b")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
