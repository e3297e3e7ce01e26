package spreadsheet

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode/utf16"

	"github.com/extrame/ole2"
)

// BIFF record types read by scanXLSCells.
const (
	recFormula    = 0x0006
	recEOF        = 0x000A
	recBoundSheet = 0x0085
	recMulRK      = 0x00BD
	recRString    = 0x00D6
	recLabelSST   = 0x00FD
	recNumber     = 0x0203
	recLabel      = 0x0204
	recBoolErr    = 0x0205
	recString     = 0x0207
	recRK         = 0x027E
	recBOF        = 0x0809
)

const (
	biff5 = 0x0500
	biff8 = 0x0600
)

var xlsErrorText = map[byte]string{
	0x00: "#NULL!",
	0x07: "#DIV/0!",
	0x0F: "#VALUE!",
	0x17: "#REF!",
	0x1D: "#NAME?",
	0x24: "#NUM!",
	0x2A: "#N/A",
}

// xlsCell is a non-blank cell of the first worksheet. Label cells carry only
// their position; their text lives in the shared string table.
type xlsCell struct {
	row, col int
	label    bool
	value    string
}

type biffRecord struct {
	id   uint16
	data []byte
}

type biffReader struct {
	r   io.Reader
	hdr [4]byte
}

func (b *biffReader) next() (biffRecord, error) {
	if _, err := io.ReadFull(b.r, b.hdr[:]); err != nil {
		return biffRecord{}, err
	}
	rec := biffRecord{
		id:   binary.LittleEndian.Uint16(b.hdr[0:]),
		data: make([]byte, binary.LittleEndian.Uint16(b.hdr[2:])),
	}
	if _, err := io.ReadFull(b.r, rec.data); err != nil {
		return biffRecord{}, fmt.Errorf("record %#04x: %w", rec.id, io.ErrUnexpectedEOF)
	}
	return rec, nil
}

// scanXLSCells reads the values of every non-label cell of the first
// worksheet. Numbers are decoded whatever their display format, and
// formulas yield their cached result.
func scanXLSCells(rs io.ReadSeeker) ([]xlsCell, error) {
	stream, err := openWorkbookStream(rs)
	if err != nil {
		return nil, err
	}
	br := &biffReader{r: stream}

	var (
		version  uint16
		sheetPos int64 = -1
	)
	for first := true; ; first = false {
		rec, err := br.next()
		if err != nil {
			return nil, fmt.Errorf("read workbook globals: %w", err)
		}
		if first {
			if rec.id != recBOF || len(rec.data) < 2 {
				return nil, errors.New("not a BIFF workbook")
			}
			version = binary.LittleEndian.Uint16(rec.data)
			if version != biff5 && version != biff8 {
				return nil, fmt.Errorf("unsupported BIFF version %#04x", version)
			}
		}
		if rec.id == recBoundSheet && sheetPos < 0 && len(rec.data) >= 4 {
			sheetPos = int64(binary.LittleEndian.Uint32(rec.data))
		}
		if rec.id == recEOF {
			break
		}
	}
	if sheetPos < 0 {
		return nil, errors.New("workbook has no sheets")
	}
	if _, err := stream.Seek(sheetPos, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek worksheet: %w", err)
	}

	s := &sheetScanner{biff8: version == biff8, pending: -1}
	for depth := 0; ; {
		rec, err := br.next()
		if err != nil {
			return nil, fmt.Errorf("read worksheet: %w", err)
		}
		switch rec.id {
		case recBOF:
			depth++
			continue
		case recEOF:
			if depth--; depth <= 0 {
				return s.cells, nil
			}
			continue
		}
		// embedded chart substreams have their own BOF..EOF
		if depth != 1 {
			continue
		}
		if err := s.record(rec); err != nil {
			return nil, err
		}
	}
}

func openWorkbookStream(rs io.ReadSeeker) (io.ReadSeeker, error) {
	doc, err := ole2.Open(rs, xlsCharset)
	if err != nil {
		return nil, err
	}
	dir, err := doc.ListDir()
	if err != nil {
		return nil, err
	}
	var book, root *ole2.File
	for _, f := range dir {
		switch f.Name() {
		case "Workbook", "Book":
			book = f
		case "Root Entry":
			root = f
		}
	}
	if book == nil || root == nil {
		return nil, errors.New("no workbook stream")
	}
	return doc.OpenFile(book, root), nil
}

type sheetScanner struct {
	biff8 bool
	cells []xlsCell
	// pending is the formula cell whose string result follows in a STRING
	// record, -1 for none.
	pending int
}

func (s *sheetScanner) record(rec biffRecord) error {
	d := rec.data
	switch rec.id {
	case recNumber:
		if len(d) < 14 {
			return shortRecord(rec)
		}
		s.add(d, formatXLSNumber(math.Float64frombits(binary.LittleEndian.Uint64(d[6:]))))
	case recRK:
		if len(d) < 10 {
			return shortRecord(rec)
		}
		s.add(d, formatXLSNumber(decodeRK(binary.LittleEndian.Uint32(d[6:]))))
	case recMulRK:
		if len(d) < 6 {
			return shortRecord(rec)
		}
		row, first := int(binary.LittleEndian.Uint16(d)), int(binary.LittleEndian.Uint16(d[2:]))
		for i := 0; i < (len(d)-6)/6; i++ {
			rk := binary.LittleEndian.Uint32(d[4+6*i+2:])
			s.cells = append(s.cells, xlsCell{row: row, col: first + i, value: formatXLSNumber(decodeRK(rk))})
		}
	case recFormula:
		if len(d) < 14 {
			return shortRecord(rec)
		}
		if binary.LittleEndian.Uint16(d[12:]) != 0xFFFF {
			s.add(d, formatXLSNumber(math.Float64frombits(binary.LittleEndian.Uint64(d[6:]))))
			break
		}
		switch d[6] {
		case 0:
			s.add(d, "")
			s.pending = len(s.cells) - 1
		case 1:
			s.add(d, formatXLSBool(d[8]))
		case 2:
			s.add(d, xlsErrorText[d[8]])
		}
	case recString:
		if s.pending < 0 {
			break
		}
		s.cells[s.pending].value = s.text(d)
		s.pending = -1
	case recBoolErr:
		if len(d) < 8 {
			return shortRecord(rec)
		}
		if d[7] != 0 {
			s.add(d, xlsErrorText[d[6]])
		} else {
			s.add(d, formatXLSBool(d[6]))
		}
	case recLabelSST, recLabel:
		if len(d) < 6 {
			return shortRecord(rec)
		}
		s.cells = append(s.cells, xlsCell{
			row:   int(binary.LittleEndian.Uint16(d)),
			col:   int(binary.LittleEndian.Uint16(d[2:])),
			label: true,
		})
	case recRString:
		if len(d) < 8 {
			return shortRecord(rec)
		}
		s.add(d, s.text(d[6:]))
	}
	return nil
}

// add appends the cell addressed by the row and column words of d.
func (s *sheetScanner) add(d []byte, value string) {
	s.cells = append(s.cells, xlsCell{
		row:   int(binary.LittleEndian.Uint16(d)),
		col:   int(binary.LittleEndian.Uint16(d[2:])),
		value: value,
	})
}

// text decodes a string with a 16-bit character count. Characters cut off
// by the end of the record are dropped.
func (s *sheetScanner) text(d []byte) string {
	if len(d) < 2 {
		return ""
	}
	n := int(binary.LittleEndian.Uint16(d))
	d = d[2:]
	wide := false
	if s.biff8 {
		if len(d) == 0 {
			return ""
		}
		flags := d[0]
		d = d[1:]
		wide = flags&0x01 != 0
		if flags&0x08 != 0 && len(d) >= 2 {
			d = d[2:]
		}
		if flags&0x04 != 0 && len(d) >= 4 {
			d = d[4:]
		}
	}
	if wide {
		n = min(n, len(d)/2)
		units := make([]uint16, n)
		for i := range units {
			units[i] = binary.LittleEndian.Uint16(d[2*i:])
		}
		return string(utf16.Decode(units))
	}
	n = min(n, len(d))
	runes := make([]rune, n)
	for i, c := range d[:n] {
		runes[i] = rune(c)
	}
	return string(runes)
}

// decodeRK expands an RK value: a 30-bit signed integer or the high 30 bits
// of an IEEE double, optionally scaled by 1/100.
func decodeRK(rk uint32) float64 {
	var f float64
	if rk&0x02 != 0 {
		f = float64(int32(rk) >> 2)
	} else {
		f = math.Float64frombits(uint64(rk&^0x03) << 32)
	}
	if rk&0x01 != 0 {
		f /= 100
	}
	return f
}

func formatXLSNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatXLSBool(b byte) string {
	if b != 0 {
		return "TRUE"
	}
	return "FALSE"
}

func shortRecord(rec biffRecord) error {
	return fmt.Errorf("record %#04x: %d bytes is too short", rec.id, len(rec.data))
}
