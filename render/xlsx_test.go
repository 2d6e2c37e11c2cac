package render

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestXLSX(t *testing.T) {
	p := testParams()
	p.GridSize = 5
	f := testField(p)

	var buf bytes.Buffer
	if err := XLSX(&buf, f, p); err != nil {
		t.Fatalf("XLSX() = %v", err)
	}

	xf, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("OpenReader() = %v", err)
	}
	defer xf.Close()

	sheets := xf.GetSheetList()
	for _, want := range []string{patternSheet, parameterSheet} {
		found := false
		for _, s := range sheets {
			if s == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("sheets = %v, want %q present", sheets, want)
		}
	}

	rows, err := xf.GetRows(patternSheet)
	if err != nil {
		t.Fatalf("GetRows() = %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("pattern rows = %d, want 5", len(rows))
	}
	if len(rows[0]) != 5 {
		t.Fatalf("pattern cols = %d, want 5", len(rows[0]))
	}

	center, err := xf.GetCellValue(patternSheet, "C3")
	if err != nil {
		t.Fatalf("GetCellValue() = %v", err)
	}
	if center != "1" {
		t.Errorf("center cell = %q, want \"1\"", center)
	}

	modeCell, err := xf.GetCellValue(parameterSheet, "B1")
	if err != nil {
		t.Fatalf("GetCellValue() = %v", err)
	}
	if modeCell != "single" {
		t.Errorf("mode cell = %q, want \"single\"", modeCell)
	}
}
