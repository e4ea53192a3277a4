package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(r, "Prompt", &out)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(out.String(), "Prompt") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(r, "Prompt", &out)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != "no newline" {
		t.Fatalf("got %q", got)
	}
}

func TestGetField_EmptyKeepsCurrent(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("\n"))

	got, err := GetField(r, "First name", "Jo", &out)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != "Jo" {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(out.String(), "[Jo]") {
		t.Fatalf("current value not shown: %q", out.String())
	}
}

func TestGetField_NewValueReplaces(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("Joanna\n"))

	got, err := GetField(r, "First name", "Jo", &out)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != "Joanna" {
		t.Fatalf("got %q", got)
	}
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("pistol"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	got, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != "pistol" {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(out.String(), "Enter password:") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}
