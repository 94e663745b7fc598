package postgres

import (
	"testing"

	domainerrors "pinmap/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateWriteError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantValidation bool
	}{
		{
			name:           "not null violation",
			err:            errors.New(`ERROR: null value in column "name" violates not-null constraint (SQLSTATE 23502)`),
			wantValidation: true,
		},
		{
			name:           "check violation by message",
			err:            errors.New(`ERROR: new row violates check constraint "location_bookmarks_lat_check" (SQLSTATE 23514)`),
			wantValidation: true,
		},
		{
			name:           "translated check violation",
			err:            gorm.ErrCheckConstraintViolated,
			wantValidation: true,
		},
		{
			name: "connection failure",
			err:  errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateWriteError(tt.err, "failed to create bookmark")

			if tt.wantValidation {
				assert.ErrorIs(t, got, domainerrors.ErrValidationFailed)

				return
			}

			var appErr domainerrors.AppError
			assert.True(t, errors.As(got, &appErr))
			assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestBookmarkMappers_RoundTripNullableFields(t *testing.T) {
	m := fromBookmarkDomain(nil)
	assert.Nil(t, m)
	assert.Nil(t, toBookmarkDomain(nil))
}
