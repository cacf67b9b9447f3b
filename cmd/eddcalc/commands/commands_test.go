package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"edd-calculator/internal/domain/obstetric"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCLI_Calculations(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"lmp", "--lmp", "01012024", "--ref", "02012024"}, "LMP: 01/01/2024 | EDD: 10/07/2024 | GA on 02/01/2024: 4w3d"},
		{[]string{"ga-date", "--edd", "10/07/2024", "-w", "4", "-d", "3"}, "Date when patient will be 4w3d: 02/01/2024"},
		{[]string{"us", "--us-date", "2024-03-01", "-w", "8", "-d", "2"}, "US date: 03/01/2024 | US GA: 8w2d | EDD from ultrasound: 10/09/2024"},
		{[]string{"reconcile", "--lmp", "01012024", "--us-date", "03012024", "-w", "8", "-d", "2"}, "Recommendation: Keep LMP EDD: 10/07/2024"},
	}
	for _, c := range cases {
		out, err := run(t, c.args...)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", c.args, err)
		}
		if !strings.Contains(out, c.want) {
			t.Fatalf("%v: expected %q in output %q", c.args, c.want, out)
		}
	}
}

func TestCLI_InvalidDate(t *testing.T) {
	_, err := run(t, "lmp", "--lmp", "2024")
	if !errors.Is(err, obstetric.ErrInvalidDateFormat) {
		t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
	}

	if _, err := run(t, "lmp"); err == nil {
		t.Fatalf("expected error for missing --lmp")
	}
}

func TestCLI_Copy(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error { copied = s; return nil }
	defer func() { copyToClipboard = orig }()

	out, err := run(t, "ga-date", "--edd", "10072024", "-w", "40", "--copy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if copied != "Date when patient will be 40w0d: 10/07/2024" {
		t.Fatalf("unexpected clipboard content %q", copied)
	}
	if !strings.Contains(out, "Copied!") {
		t.Fatalf("expected copy confirmation, got %q", out)
	}

	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	if _, err := run(t, "ga-date", "--edd", "10072024", "-c"); err == nil {
		t.Fatalf("expected clipboard error to surface")
	}
}
