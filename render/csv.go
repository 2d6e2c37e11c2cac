package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/slitviz/slitviz/entity"
	"github.com/slitviz/slitviz/optics"
)

// CSV writes the field row-major, one grid row per record, preceded by a
// single comment record naming the parameters. A UTF-8 BOM keeps
// spreadsheet imports happy.
func CSV(w io.Writer, f *optics.Field, p *entity.Parameters) error {
	if _, err := w.Write([]byte("\xEF\xBB\xBF")); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	comment := fmt.Sprintf("# %s; %s; grid %d", title(p), settings(p), f.N())
	if err := cw.Write([]string{comment}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, f.N())
	for i := 0; i < f.N(); i++ {
		for j, v := range f.Row(i) {
			record[j] = fmt.Sprintf("%.8f", v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
