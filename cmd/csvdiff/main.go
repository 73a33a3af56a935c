// Command csvdiff prints the records of the left CSV file that are absent
// from the right CSV file.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"

	"templates_backend/internal/csvdiff"
)

func main() {
	leftPath := flag.String("left", "", "path to the left CSV file (required)")
	rightPath := flag.String("right", "", "path to the right CSV file (required)")
	keyColumn := flag.Int("key", -1, "zero-based key column; negative compares whole records")
	hasHeader := flag.Bool("header", false, "treat the first record of each file as a header")
	outPath := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	if *leftPath == "" || *rightPath == "" {
		fmt.Fprintln(os.Stderr, "csvdiff: -left and -right are required")
		flag.Usage()
		os.Exit(2)
	}

	left, err := os.Open(*leftPath)
	if err != nil {
		fatal(err)
	}
	defer left.Close()

	right, err := os.Open(*rightPath)
	if err != nil {
		fatal(err)
	}
	defer right.Close()

	records, err := csvdiff.Diff(left, right, csvdiff.Options{
		KeyColumn: *keyColumn,
		HasHeader: *hasHeader,
	})
	if err != nil {
		fatal(err)
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		out = f
	}

	writer := csv.NewWriter(out)
	if err := writer.WriteAll(records); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "csvdiff:", err)
	os.Exit(1)
}
