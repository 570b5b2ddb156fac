package vietqr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum_ReferenceVector(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "29B1", Checksum("123456789"))
	assert.Equal(t, uint16(0x29B1), CRC16([]byte("123456789")))
}

func TestChecksum_EmptyInputIsInitialRegister(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "FFFF", Checksum(""))
}

func TestChecksum_ZeroPadsAndUppercases(t *testing.T) {
	t.Parallel()

	// Trailers taken from payloads accepted by banking apps.
	assert.Equal(t, "0B2A", Checksum("00020101021238540010A00000072701240006970436011010585261280208QRIBFTTA530370454065000005802VN62220818Nguyen Van A HD1236304"))
	assert.Equal(t, "0A3B", Checksum("00020101021138570010A00000072701270006970407011300110012345670208QRIBFTTA53037045802VN6304"))
}

func TestEncodeHex16(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0000", encodeHex16(0))
	assert.Equal(t, "00AF", encodeHex16(0xAF))
	assert.Equal(t, "FFFF", encodeHex16(0xFFFF))
}
