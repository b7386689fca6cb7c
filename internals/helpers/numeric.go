package helper

import (
	"errors"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

// NumericString keeps a JSON number, or a JSON string holding one, as its
// literal text. Other JSON values are kept verbatim so the numeric rules
// report them as field errors instead of failing the whole body decode.
type NumericString string

var reNumeric = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// exponents beyond this cannot be an int64 and would make big.Rat allocate wildly
const maxNumericExponent = 400

var (
	ErrNotNumeric = errors.New("not a number")
	ErrNotInteger = errors.New("not an integer")
	ErrOutOfRange = errors.New("out of int64 range")
)

func (n *NumericString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := sonic.Unmarshal(b, &v); err != nil {
			return err
		}
		s = strings.TrimSpace(v)
	}
	*n = NumericString(s)
	return nil
}

// Rat parses the value exactly.
func (n NumericString) Rat() (*big.Rat, error) {
	s := strings.TrimSpace(string(n))
	m := reNumeric.FindStringSubmatch(s)
	if m == nil {
		return nil, ErrNotNumeric
	}
	if exp := m[3]; exp != "" {
		e, err := strconv.Atoi(strings.TrimLeft(exp[1:], "+"))
		switch {
		case err != nil && strings.HasPrefix(exp[1:], "-"), e < -maxNumericExponent:
			return nil, ErrNotInteger
		case err != nil, e > maxNumericExponent:
			return nil, ErrOutOfRange
		}
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, ErrNotNumeric
	}
	return r, nil
}

// Int64 accepts whole values in any numeric form ("100", "100.0", "1e2").
func (n NumericString) Int64() (int64, error) {
	r, err := n.Rat()
	if err != nil {
		return 0, err
	}
	if !r.IsInt() {
		return 0, ErrNotInteger
	}
	if !r.Num().IsInt64() {
		return 0, ErrOutOfRange
	}
	return r.Num().Int64(), nil
}
