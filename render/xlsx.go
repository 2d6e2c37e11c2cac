package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/slitviz/slitviz/entity"
	"github.com/slitviz/slitviz/entity/mode"
	"github.com/slitviz/slitviz/optics"
)

const (
	patternSheet   = "Pattern"
	parameterSheet = "Parameters"
)

// XLSX writes a workbook with the intensity grid on one sheet and the
// generating parameters on another. Grid rows are streamed so large fields
// do not hold the whole workbook in cell form.
func XLSX(w io.Writer, f *optics.Field, p *entity.Parameters) error {
	xf := excelize.NewFile()
	defer xf.Close()

	if err := xf.SetSheetName("Sheet1", patternSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writeParameterSheet(xf, p); err != nil {
		return err
	}

	sw, err := xf.NewStreamWriter(patternSheet)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}
	row := make([]interface{}, f.N())
	for i := 0; i < f.N(); i++ {
		for j, v := range f.Row(i) {
			row[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to locate row %d: %w", i, err)
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush stream writer: %w", err)
	}

	if err := xf.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeParameterSheet(xf *excelize.File, p *entity.Parameters) error {
	if _, err := xf.NewSheet(parameterSheet); err != nil {
		return fmt.Errorf("failed to create parameter sheet: %w", err)
	}

	slitName, slitValue := "Slit width (um)", p.SlitWidth
	if p.Mode == mode.DoubleSlit {
		slitName, slitValue = "Slit separation (um)", p.SlitSeparation
	}
	rows := [][]interface{}{
		{"Mode", p.Mode.String()},
		{"Wavelength (nm)", p.Wavelength},
		{slitName, slitValue},
		{"Screen distance (mm)", p.ScreenDistance},
		{"Grid size", p.GridSize},
		{"Colormap", p.Colormap},
	}
	for i, kv := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to locate parameter row %d: %w", i, err)
		}
		if err := xf.SetSheetRow(parameterSheet, cell, &kv); err != nil {
			return fmt.Errorf("failed to write parameter row %d: %w", i, err)
		}
	}
	return nil
}
