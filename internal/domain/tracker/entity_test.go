//go:build unit

package tracker_test

import (
	"strconv"
	"testing"
	"time"

	"mercado-tracker/internal/domain/tracker"
	"mercado-tracker/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.TrackerBuilder)
	errIs  error
}

func TestNew(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewTrackerBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID)
		assert.Equal(t, "Playstation 5", actual.SearchTerm)
		assert.Equal(t, tracker.ConditionAll, actual.Condition)
		assert.Equal(t, "RJ", actual.Location)
		assert.Equal(t, tracker.StatusPending, actual.Status)
		assert.True(t, actual.IsPending())
		assert.False(t, actual.IsActive())
		assert.Len(t, actual.ConfirmationCode, 4)

		n, convErr := strconv.Atoi(actual.ConfirmationCode)
		require.NoError(t, convErr)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	})

	t.Run("search term validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty search term",
				mutate: func(b *builder.TrackerBuilder) { b.SearchTerm = "" },
				errIs:  tracker.ErrEmptySearchTerm,
			},
			{
				name:   "whitespace only search term",
				mutate: func(b *builder.TrackerBuilder) { b.SearchTerm = "   " },
				errIs:  tracker.ErrEmptySearchTerm,
			},
			{
				name:   "single character term",
				mutate: func(b *builder.TrackerBuilder) { b.SearchTerm = "x" },
			},
		})
	})

	t.Run("notify address validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty notify address",
				mutate: func(b *builder.TrackerBuilder) { b.NotifyAddress = "" },
				errIs:  tracker.ErrEmptyNotifyAddress,
			},
			{
				name:   "whitespace only notify address",
				mutate: func(b *builder.TrackerBuilder) { b.NotifyAddress = "  " },
				errIs:  tracker.ErrEmptyNotifyAddress,
			},
		})
	})

	t.Run("condition validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty condition defaults to all",
				mutate: func(b *builder.TrackerBuilder) { b.Condition = "" },
			},
			{
				name:   "new condition",
				mutate: func(b *builder.TrackerBuilder) { b.Condition = "new" },
			},
			{
				name:   "used condition",
				mutate: func(b *builder.TrackerBuilder) { b.Condition = "used" },
			},
			{
				name:   "mixed case condition normalized",
				mutate: func(b *builder.TrackerBuilder) { b.Condition = "Used" },
			},
			{
				name:   "unknown condition",
				mutate: func(b *builder.TrackerBuilder) { b.Condition = "refurbished" },
				errIs:  tracker.ErrInvalidCondition,
			},
		})
	})

	t.Run("location validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty location means nationwide",
				mutate: func(b *builder.TrackerBuilder) { b.Location = "" },
			},
			{
				name:   "two letter state code",
				mutate: func(b *builder.TrackerBuilder) { b.Location = "sp" },
			},
			{
				name:   "location exceeds maximum length",
				mutate: func(b *builder.TrackerBuilder) { b.Location = "RIO" },
				errIs:  tracker.ErrLocationTooLong,
			},
		})
	})

	t.Run("location is upper-cased", func(t *testing.T) {
		actual, err := builder.NewTrackerBuilder().
			With(func(b *builder.TrackerBuilder) { b.Location = "sp" }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "SP", actual.Location)
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero prices mean unbounded",
				mutate: func(b *builder.TrackerBuilder) { b.MinPrice = 0; b.MaxPrice = 0 },
			},
			{
				name:   "min above max is accepted",
				mutate: func(b *builder.TrackerBuilder) { b.MinPrice = 5000; b.MaxPrice = 100 },
			},
			{
				name:   "negative min price",
				mutate: func(b *builder.TrackerBuilder) { b.MinPrice = -1 },
				errIs:  tracker.ErrNegativePrice,
			},
			{
				name:   "negative max price",
				mutate: func(b *builder.TrackerBuilder) { b.MaxPrice = -1 },
				errIs:  tracker.ErrNegativePrice,
			},
		})
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		actual, err := tracker.New("  Nintendo Switch  ", 0, 0, "", "", "  +55 11 97777-7777  ", time.Now())
		require.NoError(t, err)
		assert.Equal(t, "Nintendo Switch", actual.SearchTerm)
		assert.Equal(t, "+55 11 97777-7777", actual.NotifyAddress)
	})
}

func TestConfirm(t *testing.T) {
	t.Run("correct code activates and clears the code", func(t *testing.T) {
		trk, err := builder.NewTrackerBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, trk.Confirm(trk.ConfirmationCode))
		assert.True(t, trk.IsActive())
		assert.Empty(t, trk.ConfirmationCode)
	})

	t.Run("wrong code leaves the tracker pending with its code intact", func(t *testing.T) {
		trk, err := builder.NewTrackerBuilder().BuildDomain()
		require.NoError(t, err)
		code := trk.ConfirmationCode

		require.ErrorIs(t, trk.Confirm("0000"), tracker.ErrCodeMismatch)
		assert.True(t, trk.IsPending())
		assert.Equal(t, code, trk.ConfirmationCode)

		// Retries are unlimited, the stored code still works.
		require.NoError(t, trk.Confirm(code))
		assert.True(t, trk.IsActive())
	})

	t.Run("empty code never matches", func(t *testing.T) {
		trk, err := builder.NewTrackerBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, trk.Confirm(""), tracker.ErrCodeMismatch)
	})

	t.Run("confirming an active tracker fails", func(t *testing.T) {
		trk, err := builder.NewTrackerBuilder().BuildDomain()
		require.NoError(t, err)
		code := trk.ConfirmationCode
		require.NoError(t, trk.Confirm(code))

		require.ErrorIs(t, trk.Confirm(code), tracker.ErrAlreadyActive)
	})
}

func TestRotateCode(t *testing.T) {
	t.Run("previous code becomes invalid, new code works", func(t *testing.T) {
		trk, err := builder.NewTrackerBuilder().BuildDomain()
		require.NoError(t, err)
		old := trk.ConfirmationCode

		require.NoError(t, trk.RotateCode())
		assert.True(t, trk.IsPending())
		assert.Len(t, trk.ConfirmationCode, 4)

		if trk.ConfirmationCode != old {
			require.ErrorIs(t, trk.Confirm(old), tracker.ErrCodeMismatch)
		}
		require.NoError(t, trk.Confirm(trk.ConfirmationCode))
	})

	t.Run("active tracker cannot rotate", func(t *testing.T) {
		trk, err := builder.NewTrackerBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, trk.Confirm(trk.ConfirmationCode))

		require.ErrorIs(t, trk.RotateCode(), tracker.ErrNotPending)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewTrackerBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
