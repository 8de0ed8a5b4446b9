//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"campsite-reservation/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		kinds      []infra.RepositoryErrorKind
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:       "defaults to DB failure",
			err:        errors.New("connection refused"),
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "explicit kind wins",
			err:        nil,
			kinds:      []infra.RepositoryErrorKind{infra.KindNotFound},
			expectKind: infra.KindNotFound,
		},
		{
			name:       "unique violation classified by SQLSTATE",
			err:        &pgconn.PgError{Code: "23505"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "foreign key violation classified by SQLSTATE",
			err:        &pgconn.PgError{Code: "23503"},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("boom", tc.err, tc.kinds...)
			assert.True(t, infra.IsKind(err, tc.expectKind))
		})
	}
}

func TestIsKind(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindNotFound))

	wrapped := infra.WrapRepoErr("missing", nil, infra.KindNotFound)
	assert.True(t, infra.IsKind(wrapped, infra.KindNotFound))
	assert.False(t, infra.IsKind(wrapped, infra.KindDBFailure))
}
