package core

import "github.com/shopspring/decimal"

// ScanSummary describes the work done by one scan over one text.
type ScanSummary struct {
	TextLength int // runes in the text
	Windows    int // alignments of the scan window
	Inspected  int // text characters compared against trie edges
	Matches    int
	ShiftTotal int // sum of all window shifts
}

// InspectionRate returns inspected characters per text character, rounded
// to two places. Values below 1 mean the scan skipped part of the text.
func (s ScanSummary) InspectionRate() decimal.Decimal {
	if s.TextLength == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.Inspected)).
		Div(decimal.NewFromInt(int64(s.TextLength))).
		Round(2)
}

// AverageShift returns the mean window advance, rounded to two places.
func (s ScanSummary) AverageShift() decimal.Decimal {
	if s.Windows == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.ShiftTotal)).
		Div(decimal.NewFromInt(int64(s.Windows))).
		Round(2)
}

// Add accumulates another summary into s.
func (s *ScanSummary) Add(other ScanSummary) {
	s.TextLength += other.TextLength
	s.Windows += other.Windows
	s.Inspected += other.Inspected
	s.Matches += other.Matches
	s.ShiftTotal += other.ShiftTotal
}
