// Package data embeds a small sample of the cancer mortality dataset so the
// dashboard works out of the box when CANCER_CSV is not configured.
package data

import _ "embed"

//go:embed cancer_sample.csv
var SampleCSV []byte

// Sample returns the embedded dataset.
func Sample() []byte {
	return SampleCSV
}
