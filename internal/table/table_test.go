package table

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "camps.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing temp csv: %v", err)
	}
	return path
}

func TestLoadStripsByteOrderMark(t *testing.T) {
	path := writeTemp(t, "\ufeffOrganization,City\nLakeside Arts,Burlington\n")

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if tbl.Header[0] != "Organization" {
		t.Errorf("expected first header 'Organization', got %q", tbl.Header[0])
	}
	if got := tbl.Records[0].Get(FieldOrganization); got != "Lakeside Arts" {
		t.Errorf("expected organization 'Lakeside Arts', got %q", got)
	}
}

func TestLoadPadsShortRows(t *testing.T) {
	path := writeTemp(t, "Organization,City,Notes\nLakeside Arts,Burlington\n")

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rec := tbl.Records[0]
	if !rec.IsBlank(FieldNotes) {
		t.Errorf("expected padded Notes field to be blank, got %q", rec[FieldNotes])
	}
}

func TestSaveRoundTrip(t *testing.T) {
	original := "Organization,City,Cost\nLakeside Arts,Burlington,$250/week\nGreen Mountain Club,,\n"
	path := writeTemp(t, "\ufeff"+original)

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := tbl.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if strings.HasPrefix(string(data), "\ufeff") {
		t.Error("saved file should not start with a byte-order mark")
	}
	if string(data) != original {
		t.Errorf("round trip changed content:\ngot:  %q\nwant: %q", string(data), original)
	}

	// Header order and row order must survive a second load.
	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(reloaded.Header) != 3 || reloaded.Header[2] != "Cost" {
		t.Errorf("unexpected header after round trip: %v", reloaded.Header)
	}
	if len(reloaded.Records) != 2 {
		t.Fatalf("expected 2 records after round trip, got %d", len(reloaded.Records))
	}
	if got := reloaded.Records[1].Get(FieldOrganization); got != "Green Mountain Club" {
		t.Errorf("row order not preserved, second org = %q", got)
	}
}

func TestRecordGetTrims(t *testing.T) {
	rec := Record{FieldCity: "  Burlington "}
	if got := rec.Get(FieldCity); got != "Burlington" {
		t.Errorf("Get should trim, got %q", got)
	}
	if rec.IsBlank(FieldCity) {
		t.Error("city should not be blank")
	}
	if !rec.IsBlank(FieldNotes) {
		t.Error("missing field should read as blank")
	}
}
