package vietqr

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// splitFields splits s by the two-digit tag, two-digit length grammar. It
// fails on any truncated field so that leftover bytes are caught.
func splitFields(s string) ([]Field, error) {
	var fields []Field
	offset := 0
	for offset < len(s) {
		if offset+TagLen+LengthLen > len(s) {
			return nil, fmt.Errorf("insufficient data for header at offset %d", offset)
		}
		tag := s[offset : offset+TagLen]
		offset += TagLen

		lengthStr := s[offset : offset+LengthLen]
		length, err := strconv.Atoi(lengthStr)
		if err != nil {
			return nil, fmt.Errorf("invalid length %q: %w", lengthStr, err)
		}
		offset += LengthLen

		if offset+length > len(s) {
			return nil, fmt.Errorf("insufficient data for value at offset %d: need %d, got %d", offset, length, len(s)-offset)
		}
		fields = append(fields, Field{Tag: tag, Value: s[offset : offset+length]})
		offset += length
	}
	return fields, nil
}

func findField(fields []Field, tag string) (Field, bool) {
	for _, f := range fields {
		if f.Tag == tag {
			return f, true
		}
	}
	return Field{}, false
}

func TestFormatField(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "000201", FormatField("00", "01"))
	assert.Equal(t, "5406500000", FormatField("54", "500000"))
	assert.Equal(t, "0800", FormatField("08", ""))
	assert.Equal(t, "62"+"99"+strings.Repeat("x", 99), FormatField("62", strings.Repeat("x", 99)))
}

func TestFormatField_CountsBytes(t *testing.T) {
	t.Parallel()

	// "ễ" is three bytes in UTF-8.
	assert.Equal(t, "0803ễ", FormatField("08", "ễ"))
}

func TestField_StringAndLen(t *testing.T) {
	t.Parallel()

	f := Field{Tag: "58", Value: "VN"}
	assert.Equal(t, "5802VN", f.String())
	assert.Equal(t, 6, f.Len())
	assert.Equal(t, len(f.String()), f.Len())
}

func TestPackFields_AndComposite(t *testing.T) {
	t.Parallel()

	packed := PackFields(Field{Tag: "00", Value: "970436"}, Field{Tag: "01", Value: "1058526128"})
	assert.Equal(t, "00069704360110"+"1058526128", packed)

	c := Composite("01", Field{Tag: "00", Value: "970436"}, Field{Tag: "01", Value: "1058526128"})
	assert.Equal(t, "01", c.Tag)
	assert.Equal(t, packed, c.Value)
	assert.Equal(t, "0124"+packed, c.String())

	assert.Equal(t, "", PackFields())
}

func TestField_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Field{Tag: "62", Value: strings.Repeat("a", 99)}.Validate())

	err := Field{Tag: "62", Value: strings.Repeat("a", 100)}.Validate()
	var ferr *FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "62", ferr.Tag)
	assert.Equal(t, "length", ferr.Rule)
	assert.ErrorIs(t, err, ErrValueTooLong)

	for _, tag := range []string{"", "6", "620", "A1", "6 "} {
		assert.ErrorIs(t, Field{Tag: tag, Value: "x"}.Validate(), ErrInvalidTag, tag)
	}
}

func TestSplitFields_RejectsTruncation(t *testing.T) {
	t.Parallel()

	_, err := splitFields("000201010")
	assert.Error(t, err)

	_, err = splitFields("0005abc")
	assert.Error(t, err)

	fields, err := splitFields("0002010102115802VN")
	require.NoError(t, err)
	assert.Equal(t, []Field{{"00", "01"}, {"01", "11"}, {"58", "VN"}}, fields)
}
