package main

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carbocation/runfolder"
)

func TestRows(t *testing.T) {
	rf := runfolder.NewBuilder().
		Report("QC_Report_001").
		Add(runfolder.NewSamplefolder(
			xml.Attr{Name: xml.Name{Local: "name"}, Value: "P1142_101"},
			xml.Attr{Name: xml.Name{Local: "lane"}, Value: "1"},
		)).
		Add(runfolder.Samplefolder{Content: "<sample/>"}).
		Build()

	rows := Rows(rf)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Attributes != "name=P1142_101;lane=1" || rows[0].Index != 0 || rows[0].Report != "QC_Report_001" {
		t.Errorf("Unexpected first row %+v", rows[0])
	}
	if rows[1].Index != 1 || rows[1].InnerBytes != len("<sample/>") {
		t.Errorf("Unexpected second row %+v", rows[1])
	}

	var buf bytes.Buffer
	if err := WriteRows(&buf, rows); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected a header and 2 rows, got:\n%s", buf.String())
	}
	if lines[0] != "report\tindex\tattributes\tinner_bytes" {
		t.Errorf("Unexpected header %q", lines[0])
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.xml")
	if err := os.WriteFile(valid, []byte(`<runfolder><report>r</report><samplefolder name="a"/></runfolder>`), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := run(valid, nil, true, nil, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "name=a") {
		t.Errorf("Unexpected output:\n%s", buf.String())
	}

	invalid := filepath.Join(dir, "invalid.xml")
	if err := os.WriteFile(invalid, []byte(`<runfolder><report>r</report></runfolder>`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run(invalid, nil, true, nil, &bytes.Buffer{}); err == nil {
		t.Error("Expected a validation error")
	}
	if err := run(invalid, nil, false, nil, &bytes.Buffer{}); err != nil {
		t.Errorf("Expected no error with validation off, got %v", err)
	}
}

func TestRunDebugDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.xml")
	if err := os.WriteFile(path, []byte(`<runfolder><report>QC_Report_001</report><samplefolder name="P1142_101"/></runfolder>`), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, dump bytes.Buffer
	if err := run(path, nil, true, &dump, &out); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"QC_Report_001", "P1142_101"} {
		if !strings.Contains(dump.String(), want) {
			t.Errorf("Expected %q in the debug dump:\n%s", want, dump.String())
		}
	}
	if strings.Contains(dump.String(), "Mutex") {
		t.Errorf("Debug dump includes lock state:\n%s", dump.String())
	}
}
