package report

import (
	"encoding/json"
	"fmt"

	alogger "fry.org/qft/trail/internal/application/logger"
	aprinter "fry.org/qft/trail/internal/application/printer"
	itail "fry.org/qft/trail/internal/infrastructure/follower/tail"
	"github.com/speijnik/go-errortree"
	"github.com/tidwall/pretty"
	"github.com/xuri/excelize/v2"
)

// Report renders the counters of a finished follow session in the mode
// requested through the printer port.
type Report struct {
	path      string
	stats     itail.Stats
	out       alogger.Printer
	excelFile string
}

func NewReport(path string, stats itail.Stats, out alogger.Printer, excelFile string) aprinter.Printer {

	return &Report{
		path:      path,
		stats:     stats,
		out:       out,
		excelFile: excelFile,
	}
}

func (r *Report) rows() [][2]interface{} {

	return [][2]interface{}{
		{"path", r.path},
		{"steps", r.stats.Steps},
		{"bytes_read", r.stats.BytesRead},
		{"chars_emitted", r.stats.CharsEmitted},
		{"rotations", r.stats.Rotations},
		{"truncations", r.stats.Truncations},
		{"decode_errors", r.stats.DecodeErrors},
		{"stat_failures", r.stats.StatFailures},
		{"open_retries", r.stats.OpenRetries},
	}
}

func (r *Report) Print(mode aprinter.PrinterMode) error {
	var rcerror error

	switch mode {
	case aprinter.PrinterModeNone:
		return nil
	case aprinter.PrinterModeText:
		for _, row := range r.rows() {
			r.out.Printf("%-14s %v\n", row[0], row[1])
		}
		return nil
	case aprinter.PrinterModeJSON:
		doc := map[string]interface{}{
			"path":  r.path,
			"stats": r.stats,
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			return errortree.Add(rcerror, "report.Print", err)
		}
		r.out.Print(string(pretty.Pretty(raw)))
		return nil
	case aprinter.PrinterModeExcel:
		return r.printExcel()
	}

	return errortree.Add(rcerror, "report.Print", fmt.Errorf("unsupported printer mode %d", mode))
}

func (r *Report) printExcel() error {
	var rcerror error

	x := excelize.NewFile()
	defer x.Close()
	sheet := "Session"
	if _, err := x.NewSheet(sheet); err != nil {
		return errortree.Add(rcerror, "report.printExcel", err)
	}
	if err := x.DeleteSheet("Sheet1"); err != nil {
		return errortree.Add(rcerror, "report.printExcel", err)
	}
	for i, row := range r.rows() {
		kCell, _ := excelize.CoordinatesToCellName(1, i+1)
		vCell, _ := excelize.CoordinatesToCellName(2, i+1)
		if err := x.SetCellValue(sheet, kCell, row[0]); err != nil {
			return errortree.Add(rcerror, "report.printExcel", err)
		}
		if err := x.SetCellValue(sheet, vCell, row[1]); err != nil {
			return errortree.Add(rcerror, "report.printExcel", err)
		}
	}
	if err := x.SaveAs(r.excelFile); err != nil {
		return errortree.Add(rcerror, "report.printExcel", err)
	}
	r.out.Printf("session report written to %s\n", r.excelFile)

	return nil
}
