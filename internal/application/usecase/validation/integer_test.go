package validation

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/defend-your-code/form/internal/domain/error"
	"github.com/defend-your-code/form/internal/domain/valueobject"
)

func TestValidateFirstInteger(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int32
		valid bool
	}{
		{name: "one digit", input: "1", want: 1, valid: true},
		{name: "multiple digits", input: "234", want: 234, valid: true},
		{name: "negative", input: "-234", want: -234, valid: true},
		{name: "zero", input: "0", want: 0, valid: true},
		{name: "negative zero", input: "-0", want: 0, valid: true},
		{name: "leading zeros", input: "007", want: 7, valid: true},
		{name: "max", input: "2147483647", want: math.MaxInt32, valid: true},
		{name: "min", input: "-2147483648", want: math.MinInt32, valid: true},
		{name: "empty", input: ""},
		{name: "dash only", input: "-"},
		{name: "word", input: "ten"},
		{name: "symbols", input: "$19"},
		{name: "decimal", input: "4.99"},
		{name: "plus sign", input: "+1"},
		{name: "surrounding space", input: " 1"},
		{name: "over max", input: "2147483648"},
		{name: "under min", input: "-2147483649"},
		{name: "far beyond int64", input: "99999999999999999999999999"},
		{name: "exponent", input: "1e3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			result := f.validator.ValidateFirstInteger(tt.input)

			first, stored := f.validator.First()
			if !tt.valid {
				assert.False(t, result.Valid())
				assert.Equal(t, domainerror.ErrCodeInvalidInteger, result.Code())
				assert.False(t, stored)
				return
			}
			require.True(t, result.Valid(), "unexpected rejection: %s", result.Reason())
			assert.True(t, stored)
			assert.Equal(t, tt.want, first)
		})
	}
}

func TestValidateFirstInteger_StoresEveryAcceptedValue(t *testing.T) {
	f := newFixture()
	samples := []int64{math.MinInt32, math.MinInt32 + 1, -46341, -1, 0, 1, 46340, math.MaxInt32 - 1, math.MaxInt32}

	for _, n := range samples {
		require.True(t, f.validator.ValidateFirstInteger(strconv.FormatInt(n, 10)).Valid())
		first, ok := f.validator.First()
		require.True(t, ok)
		assert.Equal(t, int32(n), first)
	}
}

func TestValidateSecondInteger(t *testing.T) {
	sqrtMax := int64(math.Floor(math.Sqrt(math.MaxInt32)))

	tests := []struct {
		name     string
		first    int64
		second   string
		wantCode domainerror.ValidationErrorCode
	}{
		{name: "one and one", first: 1, second: "1"},
		{name: "multiple digits", first: 1, second: "2342"},
		{name: "sum reaches max", first: math.MaxInt32 - 1, second: "1"},
		{name: "min plus one minus one", first: math.MinInt32 + 1, second: "-1"},
		{name: "product of min and one", first: math.MinInt32, second: "1"},
		{name: "largest square root product", first: sqrtMax, second: strconv.FormatInt(-sqrtMax, 10)},
		{name: "zero and zero", first: 0, second: "0"},
		{name: "negative zero", first: 12, second: "-0"},
		{name: "empty", first: 0, second: "", wantCode: domainerror.ErrCodeInvalidInteger},
		{name: "dash only", first: 0, second: "-", wantCode: domainerror.ErrCodeInvalidInteger},
		{name: "word", first: 0, second: "ten", wantCode: domainerror.ErrCodeInvalidInteger},
		{name: "symbols", first: 0, second: "$19", wantCode: domainerror.ErrCodeInvalidInteger},
		{name: "decimal", first: 0, second: "4.99", wantCode: domainerror.ErrCodeInvalidInteger},
		{name: "second under min", first: 0, second: "-2147483649", wantCode: domainerror.ErrCodeInvalidInteger},
		{name: "sum overflows", first: math.MaxInt32, second: "1", wantCode: domainerror.ErrCodeIntegerOverflow},
		{name: "sum underflows", first: math.MinInt32, second: "-1", wantCode: domainerror.ErrCodeIntegerOverflow},
		{name: "product of halves overflows", first: math.MaxInt32 / 2, second: strconv.Itoa(math.MaxInt32 / 2), wantCode: domainerror.ErrCodeIntegerOverflow},
		{name: "square just past max", first: sqrtMax + 1, second: strconv.FormatInt(sqrtMax+1, 10), wantCode: domainerror.ErrCodeIntegerOverflow},
		{name: "product underflows", first: 65536, second: "-32769", wantCode: domainerror.ErrCodeIntegerOverflow},
		{name: "min times minus one", first: math.MinInt32, second: "-1", wantCode: domainerror.ErrCodeIntegerOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			require.True(t, f.validator.ValidateFirstInteger(strconv.FormatInt(tt.first, 10)).Valid())

			result := f.validator.ValidateSecondInteger(tt.second)

			if tt.wantCode == "" {
				require.True(t, result.Valid(), "unexpected rejection: %s", result.Reason())
				pair, ok := f.validator.Pair()
				require.True(t, ok)
				assert.Equal(t, int32(tt.first), pair.First)
				return
			}
			assert.False(t, result.Valid())
			assert.Equal(t, tt.wantCode, result.Code())
			_, ok := f.validator.Pair()
			assert.False(t, ok)
		})
	}
}

func TestValidateSecondInteger_FirstNotSet(t *testing.T) {
	f := newFixture()

	result := f.validator.ValidateSecondInteger("1")

	assert.False(t, result.Valid())
	assert.True(t, result.IsPrecondition())
	assert.Equal(t, domainerror.ErrCodeFirstIntegerNotSet, result.Code())
	assert.True(t, errors.Is(result.Err(), domainerror.ErrFirstIntegerNotSet))
}

func TestValidateSecondInteger_RejectedFirstDoesNotCount(t *testing.T) {
	f := newFixture()
	require.False(t, f.validator.ValidateFirstInteger("2147483648").Valid())

	assert.True(t, f.validator.ValidateSecondInteger("1").IsPrecondition())
}

func TestValidateSecondInteger_UsesLatestFirst(t *testing.T) {
	f := newFixture()
	require.True(t, f.validator.ValidateFirstInteger("10").Valid())
	require.True(t, f.validator.ValidateFirstInteger("2147483647").Valid())

	assert.Equal(t, domainerror.ErrCodeIntegerOverflow, f.validator.ValidateSecondInteger("1").Code())

	require.True(t, f.validator.ValidateFirstInteger("10").Valid())
	require.True(t, f.validator.ValidateSecondInteger("1").Valid())

	pair, ok := f.validator.Pair()
	require.True(t, ok)
	assert.Equal(t, valueobject.Int32Pair{First: 10, Second: 1}, pair)
	assert.Equal(t, int64(11), pair.Sum())
	assert.Equal(t, int64(10), pair.Product())
}

func TestValidateFirstInteger_ReentryClearsSecond(t *testing.T) {
	f := newFixture()
	require.True(t, f.validator.ValidateFirstInteger("3").Valid())
	require.True(t, f.validator.ValidateSecondInteger("4").Valid())

	require.True(t, f.validator.ValidateFirstInteger("5").Valid())

	_, ok := f.validator.Pair()
	assert.False(t, ok)
}
