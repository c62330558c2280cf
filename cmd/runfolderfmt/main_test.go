package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carbocation/runfolder"
)

func TestRunNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.xml")
	doc := `<runfolder><report>QC_Report_001</report><samplefolder name="a"/><samplefolder name="b"/></runfolder>`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := run(path, nil, true, true, &buf); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, `xmlns="setup.xml.molmed"`) {
		t.Errorf("Expected the setup namespace in:\n%s", out)
	}
	if strings.Index(out, `name="a"`) > strings.Index(out, `name="b"`) {
		t.Errorf("Samplefolders were reordered:\n%s", out)
	}

	rf, err := runfolder.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if rf.Samplefolders().Len() != 2 {
		t.Errorf("Expected 2 samplefolders, got %d", rf.Samplefolders().Len())
	}
}

func TestRunRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.xml")
	if err := os.WriteFile(path, []byte(`<runfolder><samplefolder/><report>r</report></runfolder>`), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := run(path, nil, true, false, &buf); err == nil {
		t.Error("Expected a validation error")
	}
	if buf.Len() != 0 {
		t.Errorf("Wrote output for an invalid file:\n%s", buf.String())
	}
}

func TestRunStrictWithoutValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.xml")
	if err := os.WriteFile(path, []byte(`<runfolder><samplefolder name="a"/></runfolder>`), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := run(path, nil, true, false, &buf); err == nil {
		t.Error("Expected validation to reject a runfolder without a report")
	}

	buf.Reset()
	if err := run(path, nil, false, false, &buf); err != nil {
		t.Fatalf("Expected the file to be written without validation, got %v", err)
	}
	if strings.Contains(buf.String(), "<report") || !strings.Contains(buf.String(), `name="a"`) {
		t.Errorf("Unexpected output:\n%s", buf.String())
	}

	buf.Reset()
	if err := run(path, nil, false, true, &buf); !errors.Is(err, runfolder.ErrReportUnset) {
		t.Errorf("Expected ErrReportUnset with -strict, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Wrote output in strict mode:\n%s", buf.String())
	}
}
