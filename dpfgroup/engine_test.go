package dpfgroup

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRejectsBadLambda(t *testing.T) {
	_, err := Init(100)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestGenEvalCorrectness(t *testing.T) {
	for _, lambda := range []int{128, 192, 256} {
		e, err := Init(lambda)
		require.NoError(t, err)

		alpha := big.NewInt(42)
		beta := big.NewInt(7)
		k0, k1, err := e.Gen(alpha, beta)
		require.NoError(t, err)

		for _, x := range []int64{0, 1, 42, 43, 1000} {
			y0, err := e.Eval(k0, big.NewInt(x))
			require.NoError(t, err)
			y1, err := e.Eval(k1, big.NewInt(x))
			require.NoError(t, err)

			combined := e.CombineResults(y0, y1)
			if x == 42 {
				assert.Equalf(t, beta, combined, "lambda=%d x=%d", lambda, x)
			} else {
				assert.Equalf(t, 0, combined.Sign(), "lambda=%d x=%d", lambda, x)
			}
		}
	}
}

func TestGenRejectsOversizedPoint(t *testing.T) {
	e, err := Init(128)
	require.NoError(t, err)

	tooLarge := new(big.Int).Lsh(big.NewInt(1), 128)
	_, _, err = e.Gen(tooLarge, big.NewInt(1))
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestKeySerializeRoundTrip(t *testing.T) {
	e, err := Init(128)
	require.NoError(t, err)

	k0, _, err := e.Gen(big.NewInt(9), big.NewInt(3))
	require.NoError(t, err)

	data, err := k0.Serialize()
	require.NoError(t, err)

	decoded, err := DeserializeKey(data)
	require.NoError(t, err)
	assert.Equal(t, k0, decoded)
}

func TestEvalRejectsWrongCorrectionWordCount(t *testing.T) {
	e, err := Init(128)
	require.NoError(t, err)
	k0, _, err := e.Gen(big.NewInt(1), big.NewInt(1))
	require.NoError(t, err)

	k0.CW = k0.CW[:len(k0.CW)-1]
	_, err = e.Eval(k0, big.NewInt(1))
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestCombineResultsCommutative(t *testing.T) {
	e, err := Init(128)
	require.NoError(t, err)
	k0, k1, err := e.Gen(big.NewInt(5), big.NewInt(11))
	require.NoError(t, err)

	y0, err := e.Eval(k0, big.NewInt(5))
	require.NoError(t, err)
	y1, err := e.Eval(k1, big.NewInt(5))
	require.NoError(t, err)

	assert.Equal(t, e.CombineResults(y0, y1), e.CombineResults(y1, y0))
}
