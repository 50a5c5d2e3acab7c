package export

import (
	"bytes"
	"fmt"
	"strings"
)

const pdfLinesPerPage = 52

// buildSimpleResumePDF writes a minimal PDF 1.4 document by hand: one
// Helvetica text column, paginated every pdfLinesPerPage lines. Good
// enough for the printable resume consultants hand to employers, with
// no PDF toolkit dependency to carry.
func buildSimpleResumePDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Özgeçmiş"}
	}

	pages := make([][]string, 0, len(lines)/pdfLinesPerPage+1)
	for start := 0; start < len(lines); start += pdfLinesPerPage {
		end := start + pdfLinesPerPage
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, lines[start:end])
	}

	// Object layout: 1 catalog, 2 pages, 3 font, then a page and a
	// content stream object per page.
	pageCount := len(pages)
	kids := make([]string, pageCount)
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+i*2)
	}

	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
			strings.Join(kids, " "), pageCount),
		"3 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
	}

	for i, page := range pages {
		pageObj := 4 + i*2
		contentObj := pageObj + 1

		var content strings.Builder
		content.WriteString("BT\n/F1 11 Tf\n14 TL\n50 800 Td\n")
		for j, line := range page {
			escaped := pdfEscape(pdfTransliterate(line))
			if j == 0 {
				content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
				continue
			}
			content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
		}
		content.WriteString("ET")
		stream := content.String()

		objects = append(objects,
			fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>\nendobj\n",
				pageObj, contentObj),
			fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
				contentObj, len(stream), stream),
		)
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}

// The built-in Helvetica Type1 font cannot encode Turkish letters, so
// candidate data goes through the same ASCII-ization as the section
// headers before it enters a content stream.
var turkishToASCII = strings.NewReplacer(
	"ç", "c", "Ç", "C",
	"ğ", "g", "Ğ", "G",
	"ı", "i", "İ", "I",
	"ö", "o", "Ö", "O",
	"ş", "s", "Ş", "S",
	"ü", "u", "Ü", "U",
)

func pdfTransliterate(v string) string {
	return turkishToASCII.Replace(v)
}
