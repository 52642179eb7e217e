// Package documenttest builds tiny in-memory PDFs for tests.
package documenttest

import (
	"bytes"
	"fmt"
)

// MinimalPDF returns a syntactically complete PDF with the given number of
// empty pages and a correct cross-reference table.
func MinimalPDF(pages int) []byte {
	var buf bytes.Buffer
	var offsets []int

	write := func(s string) { buf.WriteString(s) }
	object := func(s string) {
		offsets = append(offsets, buf.Len())
		write(s)
	}

	write("%PDF-1.4\n")

	var kids bytes.Buffer
	for i := 0; i < pages; i++ {
		if i > 0 {
			kids.WriteString(" ")
		}
		fmt.Fprintf(&kids, "%d 0 R", 3+i)
	}

	object("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	object(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", kids.String(), pages))

	for i := 0; i < pages; i++ {
		object(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>\nendobj\n", 3+i))
	}

	xrefOffset := buf.Len()
	count := len(offsets) + 1

	write("xref\n")
	fmt.Fprintf(&buf, "0 %d\n", count)
	write("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", count, xrefOffset)

	return buf.Bytes()
}
