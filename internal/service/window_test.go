package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotto-stats/backend/internal/pkg/apierr"
)

func TestParseWindow(t *testing.T) {
	type testCase struct {
		in   string
		want Window
	}

	testCases := []testCase{
		{"all", AllDraws()},
		{" ALL ", AllDraws()},
		{"recent:100", RecentDraws(100)},
		{"recent_10", RecentDraws(10)},
		{"range:5-9", DrawRange(5, 9)},
		{"range_3-3", DrawRange(3, 3)},
	}

	for _, tc := range testCases {
		got, err := ParseWindow(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)

		again, err := ParseWindow(got.String())
		require.NoError(t, err)
		assert.Equal(t, got, again)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"", "latest", "recent:0", "recent:x", "range:9-5", "range:0-5", "range:5"} {
		_, err := ParseWindow(in)
		var apiErr *apierr.APIError
		require.ErrorAs(t, err, &apiErr, in)
		assert.Equal(t, apierr.CodeInvalidRequest, apiErr.ErrorCode)
	}
}
