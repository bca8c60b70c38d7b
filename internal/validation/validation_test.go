package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateDate(t *testing.T) {
	require.NoError(t, ValidateDate("2026-08-30"))
	require.Error(t, ValidateDate("30/08/2026"))
	require.Error(t, ValidateDate("2026-13-01"))
	require.Error(t, ValidateDate(""))
}

func TestValidateClockTime(t *testing.T) {
	require.NoError(t, ValidateClockTime("08:00"))
	require.NoError(t, ValidateClockTime("23:59"))
	require.Error(t, ValidateClockTime("8am"))
	require.Error(t, ValidateClockTime("24:00"))
	require.Error(t, ValidateClockTime(""))
}

func TestValidateName(t *testing.T) {
	require.NoError(t, ValidateName("Gabriel"))
	require.Error(t, ValidateName(""))
	require.Error(t, ValidateName("   "))
	require.Error(t, ValidateName(strings.Repeat("x", 61)))
	require.NoError(t, ValidateName(strings.Repeat("x", 60)))
}
