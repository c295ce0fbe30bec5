package massive

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/spf13/cast"
)

// Field names of an annotated utterance record.
const (
	FieldID        = "id"
	FieldUtt       = "utt"
	FieldAnnotUtt  = "annot_utt"
	FieldLocale    = "locale"
	FieldPartition = "partition"
)

// Record is one annotated utterance, one line of a JSONL file.
// All original keys are kept in their original order,
// so a record can be written back unchanged.
type Record struct {
	data *orderedmap.OrderedMap
}

func ParseRecord(line string) (*Record, error) {
	data := orderedmap.New()
	if err := json.Unmarshal([]byte(line), data); err != nil {
		return nil, err
	}
	return &Record{data: data}, nil
}

// String returns the field value as a string. A missing field defaults to an empty string.
func (r *Record) String(key string) string {
	value, found := r.data.Get(key)
	if !found {
		return ""
	}
	return cast.ToString(value)
}

func (r *Record) ID() string {
	return r.String(FieldID)
}

func (r *Record) Utt() string {
	return r.String(FieldUtt)
}

func (r *Record) AnnotUtt() string {
	return r.String(FieldAnnotUtt)
}

func (r *Record) Locale() string {
	return r.String(FieldLocale)
}

func (r *Record) Partition() string {
	return r.String(FieldPartition)
}

// Language returns the locale part before the first hyphen,
// eg. "en-US" -> "en". A locale without a hyphen is returned whole.
func (r *Record) Language() string {
	locale := r.Locale()
	if index := strings.IndexByte(locale, '-'); index >= 0 {
		return locale[:index]
	}
	return locale
}

// MarshalASCII serializes the record to a single JSON line,
// with all non-ASCII characters escaped as \uXXXX sequences.
func (r *Record) MarshalASCII() (string, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(r.data); err != nil {
		return "", err
	}

	// Encoder appends a newline, the caller joins lines itself
	line := strings.TrimRight(buffer.String(), "\n")
	return escapeNonASCII(line), nil
}
