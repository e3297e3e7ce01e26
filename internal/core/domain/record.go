package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Column names the engine reads and writes.
const (
	FieldACOS         = "acos"
	FieldCurrentBid   = "current_bid"
	FieldSuggestedBid = "suggested_bid"
	FieldTargetACOS   = "target_acos"
	FieldNewMaxBid    = "new_max_bid"
)

// Column is one named cell of a source row, kept in header order so the
// response mirrors the uploaded spreadsheet.
type Column struct {
	Name  string
	Value any
}

// CampaignRecord is one row of campaign performance data. ACOS and
// CurrentBid are the typed inputs of the bid rule and are nil when the
// source cell is blank or the column is absent. Columns holds every source
// column untouched for pass-through.
type CampaignRecord struct {
	Row          int
	ACOS         *float64
	CurrentBid   *float64
	SuggestedBid *float64
	Columns      []Column
}

// MarshalJSON renders the source columns in order followed by exactly one
// suggested_bid key. A source column of the same name is replaced.
func (r CampaignRecord) MarshalJSON() ([]byte, error) {
	return marshalColumns(r.Columns, Column{Name: FieldSuggestedBid, Value: floatOrNil(r.SuggestedBid)})
}

// MaxBidRecord is a campaign record with the target-ACOS max bid attached.
type MaxBidRecord struct {
	Record     CampaignRecord
	TargetACOS float64
	NewMaxBid  float64
}

func (r MaxBidRecord) MarshalJSON() ([]byte, error) {
	return marshalColumns(r.Record.Columns,
		Column{Name: FieldTargetACOS, Value: r.TargetACOS},
		Column{Name: FieldNewMaxBid, Value: r.NewMaxBid},
	)
}

// CampaignRecordsFromSheet builds one record per sheet row. A sheet with
// rows but no acos or current_bid column fails with a *MissingFieldError
// whose Row is 0. Blank cells leave the typed field nil; values that are
// present but not numeric fail with *TypeMismatchError.
func CampaignRecordsFromSheet(s *Sheet) ([]CampaignRecord, error) {
	var (
		acosIdx = s.ColumnIndex(FieldACOS)
		bidIdx  = s.ColumnIndex(FieldCurrentBid)
		records = make([]CampaignRecord, 0, len(s.Rows))
	)
	if len(s.Rows) > 0 {
		if acosIdx < 0 {
			return nil, &MissingFieldError{Field: FieldACOS}
		}
		if bidIdx < 0 {
			return nil, &MissingFieldError{Field: FieldCurrentBid}
		}
	}
	for _, row := range s.Rows {
		rec := CampaignRecord{
			Row:     row.Number,
			Columns: make([]Column, len(s.Header)),
		}
		for i, name := range s.Header {
			rec.Columns[i] = Column{Name: name, Value: row.Cell(i)}
		}
		var err error
		if rec.ACOS, err = numericField(row, acosIdx, FieldACOS); err != nil {
			return nil, err
		}
		if rec.CurrentBid, err = numericField(row, bidIdx, FieldCurrentBid); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func numericField(row SheetRow, idx int, field string) (*float64, error) {
	if idx < 0 {
		return nil, nil
	}
	raw := row.Cell(idx)
	f, present, ok := ToFloat(raw)
	if !ok {
		return nil, &TypeMismatchError{Field: field, Row: row.Number, Value: raw}
	}
	if !present {
		return nil, nil
	}
	return &f, nil
}

func floatOrNil(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// marshalColumns writes cols as a JSON object in order, then appends extra.
// Source columns sharing a name with an extra column are dropped.
func marshalColumns(cols []Column, extra ...Column) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	write := func(c Column) error {
		key, err := json.Marshal(c.Name)
		if err != nil {
			return err
		}
		val, err := json.Marshal(c.Value)
		if err != nil {
			return err
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		return nil
	}
	for _, c := range cols {
		if shadowed(c.Name, extra) {
			continue
		}
		if err := write(c); err != nil {
			return nil, err
		}
	}
	for _, c := range extra {
		if err := write(c); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func shadowed(name string, extra []Column) bool {
	for _, c := range extra {
		if strings.EqualFold(strings.TrimSpace(name), c.Name) {
			return true
		}
	}
	return false
}
