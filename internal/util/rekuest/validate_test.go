package rekuest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotto-stats/backend/internal/pkg/apierr"
)

type query struct {
	Limit int    `validate:"omitempty,min=1,max=5000"`
	Type  string `validate:"required,caseinsensitiveoneof=ac sum"`
	Bonus int    `validate:"omitempty,lottonumber"`
}

func TestValidStruct(t *testing.T) {
	assert.NoError(t, ValidStruct(&query{Limit: 10, Type: "AC"}))

	err := ValidStruct(&query{Limit: 0, Type: "gaps", Bonus: 46})
	var apiErr *apierr.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.CodeInvalidRequest, apiErr.ErrorCode)

	violations, ok := (*apiErr.Extras)["violations"].([]*ErrorResponse)
	require.True(t, ok)
	require.Len(t, violations, 2)
	assert.Equal(t, "Type", violations[0].Field)
	assert.Equal(t, "caseinsensitiveoneof", violations[0].Violation)
	assert.Equal(t, "lottonumber", violations[1].Violation)
	assert.Equal(t, "Bonus must be a lottery number between 1 and 45", violations[1].Message)
}
