package engine

import (
	"errors"
	"strings"
	"testing"
)

var errAreaCode = errors.New("area code cannot start with 0")

func areaCode() Validator {
	return ValidatorFunc(func(value, masked string) error {
		if strings.HasPrefix(value, "0") {
			return errAreaCode
		}
		return nil
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		input    string
		wantCode Code
		wantMsg  string
	}{
		{"blank allowed", nil, "", "", ""},
		{"blank required", []Option{WithAllowBlank(false)}, "", CodeRequired, "value required"},
		{"partial rejected", nil, "555-12", CodePartial, "must match mask format (###) ###-####"},
		{"partial allowed", []Option{WithAllowPartial(true)}, "555-12", "", ""},
		{"complete", nil, "2125551234", "", ""},
		{"custom fails", []Option{WithValidator(areaCode())}, "0125551234", CodeCustom, errAreaCode.Error()},
		{"custom passes", []Option{WithValidator(areaCode())}, "2125551234", "", ""},
		{"partial before custom", []Option{WithValidator(areaCode())}, "01", CodePartial, "must match mask format (###) ###-####"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newField(t, phoneMask, tt.opts...)
			typeString(f, tt.input)

			err := f.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if ve.Code != tt.wantCode || ve.Error() != tt.wantMsg {
				t.Errorf("Validate() = {%s %q}, want {%s %q}", ve.Code, ve.Error(), tt.wantCode, tt.wantMsg)
			}
			if f.LastError() != err {
				t.Errorf("LastError() = %v, want %v", f.LastError(), err)
			}
		})
	}
}

func TestCustomValidatorCause(t *testing.T) {
	f := newField(t, phoneMask, WithValidator(areaCode()))
	typeString(f, "0125551234")

	err := f.Validate()
	if !errors.Is(err, errAreaCode) {
		t.Errorf("Validate() = %v, want it to wrap the validator error", err)
	}
}

func TestCustomValidatorOrder(t *testing.T) {
	var calls []string
	record := func(name string, fail bool) Validator {
		return ValidatorFunc(func(value, masked string) error {
			calls = append(calls, name)
			if fail {
				return &ValidationError{Code: "format", Message: name + " failed"}
			}
			return nil
		})
	}

	f := newField(t, "##",
		WithValidator(record("first", false)),
		WithValidator(record("second", true)),
		WithValidator(record("third", true)),
	)

	f.SetValue("")
	if err := f.Validate(); err != nil {
		t.Fatalf("blank value: Validate() = %v", err)
	}
	if len(calls) != 0 {
		t.Errorf("custom validators ran on a blank value: %v", calls)
	}

	f.SetValue("12")
	err := f.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Code != "format" || ve.Message != "second failed" {
		t.Fatalf("Validate() = %#v", err)
	}
	if strings.Join(calls, ",") != "first,second" {
		t.Errorf("calls = %v, want first,second", calls)
	}
}

func TestValidatorSeesMaskValue(t *testing.T) {
	var gotValue, gotMasked string
	f := newField(t, phoneMask,
		WithAllowPartial(true),
		WithValidator(ValidatorFunc(func(value, masked string) error {
			gotValue, gotMasked = value, masked
			return nil
		})),
	)
	typeString(f, "212")
	_ = f.Validate()

	if gotValue != "212" || gotMasked != "(212) ###-####" {
		t.Errorf("validator got (%q, %q)", gotValue, gotMasked)
	}
}

func TestAppendErrors(t *testing.T) {
	good := newField(t, phoneMask)
	good.SetValue("2125551234")
	bad := newField(t, phoneMask, WithAllowBlank(false))

	var errs []error
	errs = good.AppendErrors(errs)
	errs = bad.AppendErrors(errs)

	if len(errs) != 1 {
		t.Fatalf("len(errs) = %d, want 1", len(errs))
	}
	var ve *ValidationError
	if !errors.As(errs[0], &ve) || ve.Code != CodeRequired {
		t.Errorf("errs[0] = %v", errs[0])
	}
}
