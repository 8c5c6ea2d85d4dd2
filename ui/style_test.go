package ui

import (
	"os"
	"strings"
	"testing"
)

func TestBox_Plain(t *testing.T) {
	got := Box([]Field{
		{Label: "Session", Value: "proj+main"},
		{Label: "UUID", Value: "afe19c61-d53f-581c-985c-56e9daf4e63d"},
	}, false)

	want := "┌" + rule + "\n" +
		"│ Session: proj+main\n" +
		"│ UUID:    afe19c61-d53f-581c-985c-56e9daf4e63d\n" +
		"└" + rule + "\n"
	if got != want {
		t.Errorf("Box =\n%s\nwant\n%s", got, want)
	}
}

func TestBox_ColorKeepsValues(t *testing.T) {
	got := Box([]Field{{Label: "Status", Value: "new"}}, true)
	if !strings.Contains(got, "new") {
		t.Errorf("styled box lost its value: %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("styled box should end with a newline")
	}
}

func TestHeading_Plain(t *testing.T) {
	if got := Heading("USAGE:", false); got != "USAGE:" {
		t.Errorf("Heading = %q", got)
	}
}

func TestColorEnabled(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if ColorEnabled(f) {
		t.Error("regular file should not be treated as a terminal")
	}

	t.Setenv("NO_COLOR", "1")
	if ColorEnabled(os.Stdout) {
		t.Error("NO_COLOR should disable styling")
	}
}
