package vietqr

import "strconv"

// FormatField renders tag + two-digit length + value. Length is the byte
// length of value. Callers must keep value within MaxValueLen; nothing is
// checked here.
func FormatField(tag, value string) string {
	return tag + formatLength(len(value)) + value
}

// formatLength zero-pads n to LengthLen digits.
func formatLength(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// String renders the field in its wire form.
func (f Field) String() string {
	return FormatField(f.Tag, f.Value)
}

// Len returns the number of bytes the rendered field occupies.
func (f Field) Len() int {
	return TagLen + LengthLen + len(f.Value)
}

// Validate checks the tag is two ASCII digits and the value fits the
// two-digit length.
func (f Field) Validate() error {
	return basicValidator.ValidateField(f)
}

// PackFields concatenates the rendered fields in order.
func PackFields(fields ...Field) string {
	buf := getBuffer()
	defer putBuffer(buf)

	for _, f := range fields {
		buf.WriteString(f.Tag)
		buf.WriteString(formatLength(len(f.Value)))
		buf.WriteString(f.Value)
	}
	return buf.String()
}

// Composite builds a field whose value is the packed children.
func Composite(tag string, children ...Field) Field {
	return Field{Tag: tag, Value: PackFields(children...)}
}
