// Package report renders batch assessment results for external
// reporting tools.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/olegrjumin/phishlens/internal/analyzer"
)

// csvHeader is the fixed column layout the reporting frontend consumes.
const csvHeader = "URL,Classification,Basic Score,Advanced Score,Combined Score"

// WriteCSV writes one row per assessment, in input order. The URL
// column is always double-quoted (URLs routinely contain commas);
// classification is upper-cased.
func WriteCSV(w io.Writer, results []*analyzer.Assessment) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(csvHeader + "\n"); err != nil {
		return err
	}
	for _, result := range results {
		if result == nil {
			continue
		}
		row := fmt.Sprintf("%s,%s,%d,%d,%d\n",
			quoteField(result.URL),
			strings.ToUpper(string(result.Classification)),
			result.BasicScore,
			result.AdvancedScore,
			result.CombinedScore,
		)
		if _, err := bw.WriteString(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// quoteField wraps s in double quotes, doubling embedded quotes per
// RFC 4180.
func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
