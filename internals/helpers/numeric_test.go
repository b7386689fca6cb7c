package helper

import (
	"math"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericStringDecodesLoosely(t *testing.T) {
	cases := map[string]string{
		`1000`:             "1000",
		`"1000"`:           "1000",
		`" 25 "`:           "25",
		`9007199254740993`: "9007199254740993",
		`1e19`:             "1e19",
		`"abc"`:            "abc",
		`true`:             "true",
		`{"value":1}`:      `{"value":1}`,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			var body struct {
				Amount *NumericString `json:"amount"`
			}
			require.NoError(t, sonic.Unmarshal([]byte(`{"amount": `+in+`}`), &body))
			require.NotNil(t, body.Amount)
			assert.Equal(t, want, string(*body.Amount))
		})
	}
}

func TestNumericStringInt64(t *testing.T) {
	ok := map[string]int64{
		"1000":                1000,
		"100.0":               100,
		"1e2":                 100,
		"+7":                  7,
		"-3":                  -3,
		"9007199254740993":    9007199254740993,
		"9223372036854775807": math.MaxInt64,
	}
	for in, want := range ok {
		got, err := NumericString(in).Int64()
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	bad := map[string]error{
		"abc":                 ErrNotNumeric,
		"":                    ErrNotNumeric,
		"true":                ErrNotNumeric,
		"1,000":               ErrNotNumeric,
		"10.5":                ErrNotInteger,
		"1e-999999":           ErrNotInteger,
		"1e19":                ErrOutOfRange,
		"9223372036854775808": ErrOutOfRange,
		"1e999999":            ErrOutOfRange,
	}
	for in, want := range bad {
		_, err := NumericString(in).Int64()
		assert.ErrorIs(t, err, want, in)
	}
}
