package main

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/carbocation/runfolder"
	"github.com/gocarina/gocsv"
)

type SamplefolderRow struct {
	Report     string `csv:"report"`
	Index      int    `csv:"index"`
	Attributes string `csv:"attributes"`
	InnerBytes int    `csv:"inner_bytes"`
}

// Rows flattens rf into one row per samplefolder, in document order.
func Rows(rf *runfolder.Runfolder) []*SamplefolderRow {
	report, _ := rf.Report()

	out := make([]*SamplefolderRow, 0, rf.Samplefolders().Len())
	for i, sf := range rf.Samplefolders().All() {
		attrs := make([]string, 0, len(sf.Attrs))
		for _, a := range sf.Attrs {
			attrs = append(attrs, a.Name.Local+"="+a.Value)
		}

		out = append(out, &SamplefolderRow{
			Report:     report,
			Index:      i,
			Attributes: strings.Join(attrs, ";"),
			InnerBytes: len(sf.Inner()),
		})
	}

	return out
}

// WriteRows writes rows as a tab-delimited table with a header line.
func WriteRows(w io.Writer, rows []*SamplefolderRow) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return err
	}
	cw.Flush()

	return cw.Error()
}

