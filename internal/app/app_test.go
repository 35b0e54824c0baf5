package app

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"pdfdesk/internal/cliargs"
)

func TestWriteThenRead_RoundTrip(t *testing.T) {
	a := New()
	dir := t.TempDir()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "pdf magic bytes", data: []byte{0x25, 0x50, 0x44, 0x46}},
		{name: "empty payload", data: []byte{}},
		{name: "binary with zero bytes", data: []byte{0x00, 0xff, 0x00, 0x7f, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".pdf")
			if err := a.WritePDFFile(path, tt.data); err != nil {
				t.Fatalf("WritePDFFile() error: %v", err)
			}
			got, err := a.ReadPDFFile(path)
			if err != nil {
				t.Fatalf("ReadPDFFile() error: %v", err)
			}
			if !bytes.Equal(got, tt.data) {
				t.Errorf("round trip = %v, want %v", got, tt.data)
			}
		})
	}
}

func TestWritePDFFile_Overwrites(t *testing.T) {
	a := New()
	path := filepath.Join(t.TempDir(), "doc.pdf")

	if err := a.WritePDFFile(path, []byte("first version, longer payload")); err != nil {
		t.Fatalf("WritePDFFile() error: %v", err)
	}
	if err := a.WritePDFFile(path, []byte("second")); err != nil {
		t.Fatalf("WritePDFFile() overwrite error: %v", err)
	}

	got, err := a.ReadPDFFile(path)
	if err != nil {
		t.Fatalf("ReadPDFFile() error: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("contents after overwrite = %q, want %q", got, "second")
	}
}

func TestReadPDFFile_MissingFile(t *testing.T) {
	a := New()
	path := filepath.Join(t.TempDir(), "nope.pdf")

	_, err := a.ReadPDFFile(path)
	if err == nil {
		t.Fatal("ReadPDFFile() = nil error, want failure for missing file")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the path", err)
	}
}

func TestWritePDFFile_MissingParentDir(t *testing.T) {
	a := New()
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.pdf")

	err := a.WritePDFFile(path, []byte("data"))
	if err == nil {
		t.Fatal("WritePDFFile() = nil error, want failure for missing parent dir")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the path", err)
	}
}

func TestGetCLIPDFPaths_DelegatesToCapture(t *testing.T) {
	a := New()

	// Nothing captured yet in this test binary.
	if got := a.GetCLIPDFPaths(); len(got) != 0 {
		t.Fatalf("GetCLIPDFPaths() before capture = %v, want empty", got)
	}

	want := []string{"/tmp/one.pdf", "/tmp/two.pdf"}
	cliargs.Capture(want)

	if got := a.GetCLIPDFPaths(); !reflect.DeepEqual(got, want) {
		t.Errorf("GetCLIPDFPaths() = %v, want %v", got, want)
	}
}
