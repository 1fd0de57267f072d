// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domenai

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteRejectionLog writes rejections as plain text, one per line in
// the form "Line N: reason | raw". Blank-line rejections are suppressed,
// matching the cleanup convention that empty input is noise, not signal.
func WriteRejectionLog(w io.Writer, rejections []Rejection) error {
	for _, r := range rejections {
		if r.Reason == ReasonEmptyLine {
			continue
		}
		if _, err := fmt.Fprintf(w, "Line %d: %s | %s\n", r.Line, r.Reason, r.Raw); err != nil {
			return err
		}
	}
	return nil
}

// WriteRejectionWorkbook exports rejections as a spreadsheet with
// Line, Reason, and Input columns. Blank-line rejections are suppressed
// as in [WriteRejectionLog].
func WriteRejectionWorkbook(path string, rejections []Rejection) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	if err := f.SetSheetRow(sheet, "A1", &[]any{"Line", "Reason", "Input"}); err != nil {
		return err
	}

	row := 2
	for _, r := range rejections {
		if r.Reason == ReasonEmptyLine {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]any{r.Line, string(r.Reason), r.Raw}); err != nil {
			return err
		}
		row++
	}

	return f.SaveAs(path)
}
