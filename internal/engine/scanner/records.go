package scanner

import (
	"encoding/xml"
	"errors"
	"io"
	"iter"
)

const (
	recordTag  = "NATION"
	nameTag    = "NAME"
	counterTag = "ISSUES_ANSWERED"
)

type field int

const (
	fieldNone field = iota
	fieldName
	fieldCounter
)

// record is one closed NATION element.
// counter aliases a buffer reused across records and is only valid until the next one is produced.
type record struct {
	name       string
	counter    []byte
	hasName    bool
	hasCounter bool
	offset     int64
}

// records yields every NATION element as soon as its end tag is read.
// Only the direct NAME and ISSUES_ANSWERED children are retained; every other
// subtree is tokenized and dropped, so memory stays flat however large the dump is.
// A decoding error is yielded once and ends the sequence.
func records(dec *xml.Decoder) iter.Seq2[record, error] {
	return func(yield func(record, error) bool) {
		var (
			rec     record
			depth   int
			current field
			nameBuf []byte
			numBuf  []byte
		)

		for {
			tok, err := dec.Token()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				yield(record{}, err)
				return
			}

			switch t := tok.(type) {
			case xml.StartElement:
				if depth == 0 {
					if t.Name.Local == recordTag {
						depth = 1
						rec = record{offset: dec.InputOffset()}
						nameBuf = nameBuf[:0]
						numBuf = numBuf[:0]
					}
					continue
				}
				depth++
				current = fieldNone
				if depth != 2 {
					continue
				}
				switch t.Name.Local {
				case nameTag:
					current = fieldName
					rec.hasName = true
					nameBuf = nameBuf[:0]
				case counterTag:
					current = fieldCounter
					rec.hasCounter = true
					numBuf = numBuf[:0]
				}

			case xml.CharData:
				if depth != 2 {
					continue
				}
				switch current {
				case fieldName:
					nameBuf = append(nameBuf, t...)
				case fieldCounter:
					numBuf = append(numBuf, t...)
				case fieldNone:
				}

			case xml.EndElement:
				if depth == 0 {
					continue
				}
				if depth == 2 {
					current = fieldNone
				}
				depth--
				if depth > 0 {
					continue
				}
				rec.name = string(nameBuf)
				rec.counter = numBuf
				if !yield(rec, nil) {
					return
				}
			}
		}
	}
}
