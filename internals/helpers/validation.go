package helper

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"sync"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validator wraps validator.v10 with English messages keyed by JSON field name.
type Validator struct {
	v     *validator.Validate
	trans ut.Translator

	// Now and Location are read by the date rules; overridable in tests.
	Now      func() time.Time
	Location *time.Location
}

// FieldErrors maps a JSON field name to its messages, with Order keeping the
// struct field order for deterministic output.
type FieldErrors struct {
	Errors map[string][]string
	Order  []string
}

func (fe *FieldErrors) Add(field, msg string) {
	if fe.Errors == nil {
		fe.Errors = map[string][]string{}
	}
	if _, ok := fe.Errors[field]; !ok {
		fe.Order = append(fe.Order, field)
	}
	fe.Errors[field] = append(fe.Errors[field], msg)
}

func (fe *FieldErrors) Empty() bool { return len(fe.Errors) == 0 }

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseFlexibleTime accepts RFC 3339 and the common "Y-m-d[ H:i[:s]]" forms.
// Values without a zone are read in loc (UTC when nil).
func ParseFlexibleTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// DisplayName renders a field key the way messages show it: "donation_date" → "donation date".
func DisplayName(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		panic(fmt.Sprintf("validator translations: %v", err))
	}

	x := &Validator{
		v:        v,
		trans:    trans,
		Now:      time.Now,
		Location: time.UTC,
	}
	x.mustOverride()
	x.mustRule("flexdate", x.flexDate, "The {0} field must be a valid date.")
	x.mustRule("before_or_equal_now", x.beforeOrEqualNow, "The {0} field must be a date before or equal to now.")
	x.mustRule("numeric", numericRule, "The {0} field must be a number.")
	x.mustRule("integer", integerRule, "The {0} field must be an integer.")
	x.mustRule("int_min", intMinRule, "The {0} field must be at least {1}.")
	x.mustRule("int_max", intMaxRule, "The {0} field must not be greater than {1}.")
	return x
}

// Engine exposes the underlying validator.
func (x *Validator) Engine() *validator.Validate { return x.v }

// RegisterRule adds a context-aware rule plus its message ({0} = field, {1} = param).
func (x *Validator) RegisterRule(tag string, fn validator.FuncCtx, message string) error {
	if err := x.v.RegisterValidationCtx(tag, fn); err != nil {
		return err
	}
	return x.v.RegisterTranslation(tag, x.trans,
		func(t ut.Translator) error { return t.Add(tag, message, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, err := t.T(tag, DisplayName(fe.Field()), fe.Param())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
}

func (x *Validator) mustRule(tag string, fn validator.FuncCtx, message string) {
	if err := x.RegisterRule(tag, fn, message); err != nil {
		panic(fmt.Sprintf("register %s: %v", tag, err))
	}
}

type ruleErrKey struct{}

type ruleErr struct {
	mu  sync.Mutex
	err error
}

// RuleFailed lets a rule that needs I/O report a lookup failure. The rule
// should then return true; Struct returns err instead of field errors.
func RuleFailed(ctx context.Context, err error) {
	if slot, ok := ctx.Value(ruleErrKey{}).(*ruleErr); ok && err != nil {
		slot.mu.Lock()
		if slot.err == nil {
			slot.err = err
		}
		slot.mu.Unlock()
	}
}

// Struct validates s and returns per-field messages. A non-nil error means
// validation could not run (s is not a struct, or a rule hit RuleFailed).
func (x *Validator) Struct(ctx context.Context, s any) (FieldErrors, error) {
	var out FieldErrors
	slot := &ruleErr{}
	err := x.v.StructCtx(context.WithValue(ctx, ruleErrKey{}, slot), s)
	if slot.err != nil {
		return out, slot.err
	}
	if err == nil {
		return out, nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return out, err
	}
	for _, fe := range ve {
		out.Add(fe.Field(), fe.Translate(x.trans))
	}
	return out, nil
}

/* ===============================
   Built-in rules
=================================*/

func (x *Validator) flexDate(_ context.Context, fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := ParseFlexibleTime(fl.Field().String(), x.Location)
	return err == nil
}

func (x *Validator) beforeOrEqualNow(_ context.Context, fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	t, err := ParseFlexibleTime(fl.Field().String(), x.Location)
	if err != nil {
		return false
	}
	return !t.After(x.Now())
}

// Rules for NumericString fields (kind string). Run them in the order
// numeric, integer, int_min, int_max so each reports one problem.

func numericRat(fl validator.FieldLevel) (*big.Rat, bool) {
	if fl.Field().Kind() != reflect.String {
		return nil, false
	}
	r, err := NumericString(fl.Field().String()).Rat()
	return r, err == nil
}

func numericRule(_ context.Context, fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := NumericString(fl.Field().String()).Rat()
	return !errors.Is(err, ErrNotNumeric)
}

func integerRule(_ context.Context, fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	r, err := NumericString(fl.Field().String()).Rat()
	switch {
	case err == nil:
		return r.IsInt()
	case errors.Is(err, ErrOutOfRange):
		// whole but huge; int_max reports it
		return true
	}
	return false
}

func compareParam(fl validator.FieldLevel) (int, bool) {
	bound, ok := new(big.Int).SetString(fl.Param(), 10)
	if !ok {
		panic(fmt.Sprintf("bad bound %q on %s", fl.Param(), fl.FieldName()))
	}
	r, ok := numericRat(fl)
	if !ok {
		return 0, false
	}
	return r.Cmp(new(big.Rat).SetInt(bound)), true
}

func intMinRule(_ context.Context, fl validator.FieldLevel) bool {
	c, ok := compareParam(fl)
	if !ok {
		// unparsable exponent: sign decides
		return !strings.HasPrefix(strings.TrimSpace(fl.Field().String()), "-")
	}
	return c >= 0
}

func intMaxRule(_ context.Context, fl validator.FieldLevel) bool {
	c, ok := compareParam(fl)
	if !ok {
		return strings.HasPrefix(strings.TrimSpace(fl.Field().String()), "-")
	}
	return c <= 0
}

/* ===============================
   Message overrides
=================================*/

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func (x *Validator) mustOverride() {
	type override struct {
		tag    string
		number string
		text   string
	}
	overrides := []override{
		{tag: "required", number: "The {0} field is required.", text: "The {0} field is required."},
		{tag: "min", number: "The {0} field must be at least {1}.", text: "The {0} field must be at least {1} characters."},
		{tag: "max", number: "The {0} field must not be greater than {1}.", text: "The {0} field must not be greater than {1} characters."},
		{tag: "oneof", number: "The selected {0} is invalid.", text: "The selected {0} is invalid."},
	}
	for _, o := range overrides {
		o := o
		numKey, textKey := o.tag+"-number", o.tag+"-text"
		err := x.v.RegisterTranslation(o.tag, x.trans,
			func(t ut.Translator) error {
				if err := t.Add(numKey, o.number, true); err != nil {
					return err
				}
				return t.Add(textKey, o.text, true)
			},
			func(t ut.Translator, fe validator.FieldError) string {
				key := textKey
				if isNumberKind(fe.Kind()) {
					key = numKey
				}
				msg, err := t.T(key, DisplayName(fe.Field()), fe.Param())
				if err != nil {
					return fe.Error()
				}
				return msg
			},
		)
		if err != nil {
			panic(fmt.Sprintf("override %s: %v", o.tag, err))
		}
	}
}
