package main

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/dshills/maskfield/internal/config"
)

func TestRunBatchArgs(t *testing.T) {
	spec := config.Field{Name: "phone", Mask: "(###) ###-####"}
	var out bytes.Buffer

	err := runBatch(spec, []string{"2125551234", "555-12", "0"}, nil, &out, zap.NewNop())
	if err != nil {
		t.Fatalf("runBatch() error = %v", err)
	}

	want := []string{
		"(212) 555-1234\t2125551234\t",
		"(555) 12 -    \t55512\tmust match mask format (###) ###-####",
		"(   )    -    \t\t",
	}
	got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRunBatchStdin(t *testing.T) {
	spec := config.Field{Name: "ssn", Mask: "###-##-####"}
	var out bytes.Buffer

	in := strings.NewReader("123456789\n123-45-6789\n")
	if err := runBatch(spec, nil, in, &out, zap.NewNop()); err != nil {
		t.Fatalf("runBatch() error = %v", err)
	}

	want := "123-45-6789\t123456789\t\n123-45-6789\t123456789\t\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunBatchLuaValidator(t *testing.T) {
	spec := config.Field{
		Name: "month",
		Mask: "##",
		LuaValidator: `function validate(value, masked)
  if tonumber(value) > 12 then return "bad month" end
  return true
end`,
	}
	var out bytes.Buffer
	if err := runBatch(spec, []string{"07", "13"}, nil, &out, zap.NewNop()); err != nil {
		t.Fatalf("runBatch() error = %v", err)
	}
	want := "07\t07\t\n13\t13\tbad month\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunBatchBadMask(t *testing.T) {
	err := runBatch(config.Field{Name: "x", Mask: "---"}, []string{"1"}, nil, &bytes.Buffer{}, zap.NewNop())
	if err == nil {
		t.Fatal("runBatch() with a mask without placeholders should fail")
	}
}

func TestBatchField(t *testing.T) {
	form := &config.Form{Fields: []config.Field{
		{Name: "a", Mask: "#"},
		{Name: "b", Mask: "A"},
	}}

	if spec, err := batchField(form, ""); err != nil || spec.Name != "a" {
		t.Errorf("batchField(\"\") = %v, %v, want a", spec.Name, err)
	}
	if spec, err := batchField(form, "b"); err != nil || spec.Name != "b" {
		t.Errorf("batchField(\"b\") = %v, %v, want b", spec.Name, err)
	}
	if _, err := batchField(form, "c"); err == nil {
		t.Error("batchField(\"c\") should fail")
	}
}

func TestLoadFormFromMask(t *testing.T) {
	form, err := loadForm(options{mask: "##/##"})
	if err != nil {
		t.Fatalf("loadForm() error = %v", err)
	}
	if len(form.Fields) != 1 || form.Fields[0].Name != defaultFieldName || form.Fields[0].Mask != "##/##" {
		t.Errorf("loadForm() fields = %+v", form.Fields)
	}

	if _, err := loadForm(options{}); err == nil {
		t.Error("loadForm() without -config or -mask should fail")
	}
}
