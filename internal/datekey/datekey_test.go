package datekey_test

import (
	"testing"

	"github.com/Tamjid17/TGBot/internal/datekey"
	"github.com/stretchr/testify/require"
)

func TestNormalize_ValidKeys(t *testing.T) {
	valid := []string{
		"2024-05-10",
		"2024-02-29",
		"2000-02-29",
		"1999-12-31",
		"2023-01-01",
	}
	for _, input := range valid {
		key, err := datekey.Normalize(input)
		require.NoError(t, err, input)
		require.Equal(t, input, key)
	}
}

func TestNormalize_InvalidKeys(t *testing.T) {
	invalid := []string{
		"",
		"not-a-date",
		"2024-5-10",
		"2024-05-1",
		"2024-05-10 ",
		" 2024-05-10",
		"2024/05/10",
		"2024-13-01",
		"2024-00-01",
		"2024-01-00",
		"2024-01-32",
		"2023-02-29",
		"2023-02-30",
		"2100-02-29",
		"2024-04-31",
		"24-05-10",
		"2024-05-100",
		"yesterday",
		"today",
	}
	for _, input := range invalid {
		_, err := datekey.Normalize(input)
		require.ErrorIs(t, err, datekey.ErrInvalidDate, input)
	}
}

func TestToday_IsValidKey(t *testing.T) {
	key, err := datekey.Normalize(datekey.Today())
	require.NoError(t, err)
	require.Len(t, key, 10)
}
