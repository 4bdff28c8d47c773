package lifecycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/dapittriandi/simdor-service/pkg/errors"
)

func TestStatusSequenceOrder(t *testing.T) {
	require.Len(t, StatusSequence, 8)
	assert.Equal(t, StatusNewOrder, StatusSequence[0])
	assert.Equal(t, StatusSelesai, StatusSequence[len(StatusSequence)-1])

	for i, s := range StatusSequence {
		assert.Equal(t, i, StatusIndex(s))
		assert.True(t, IsValidStatus(s))
	}
}

func TestNextStatusWalksTheWholeSequence(t *testing.T) {
	current := StatusNewOrder
	for i := 0; i < len(StatusSequence)-1; i++ {
		next, err := NextStatus(current)
		require.NoError(t, err)
		assert.Equal(t, StatusSequence[i+1], next)
		current = next
	}
	assert.Equal(t, StatusSelesai, current)
}

func TestNextStatusAtTerminal(t *testing.T) {
	_, err := NextStatus(StatusSelesai)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyTerminal))
}

func TestNextStatusUnknown(t *testing.T) {
	_, err := NextStatus(Status("Dikirim"))
	require.Error(t, err)

	var inputErr *apperrors.InvalidInputError
	assert.True(t, errors.As(err, &inputErr))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusSelesai))
	for _, s := range StatusSequence[:len(StatusSequence)-1] {
		assert.False(t, IsTerminal(s), string(s))
	}
}

func TestRequiredFieldsAreStageRelevant(t *testing.T) {
	// Every required field of a stage must also be part of that stage's
	// field set.
	for _, s := range StatusSequence {
		stageSet := make(map[Field]bool)
		for _, f := range StageFields(s) {
			stageSet[f] = true
		}
		for _, f := range RequiredFields(s) {
			assert.True(t, stageSet[f], "required field %s missing from stage set of %s", f, s)
		}
	}
}

func TestRequiredFieldsReturnsCopy(t *testing.T) {
	a := RequiredFields(StatusNewOrder)
	require.NotEmpty(t, a)
	a[0] = Field("tampered")
	b := RequiredFields(StatusNewOrder)
	assert.NotEqual(t, a[0], b[0])
}
