package vietqr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveTones(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"name", "Nguyễn Văn A", "Nguyen Van A"},
		{"empty", "", ""},
		{"plain ascii", "HD123 abc", "HD123 abc"},
		{"d stroke", "Đặng Đình Đức đi đâu", "Dang Dinh Duc di dau"},
		{"hooked vowels", "Ương Ơn Ưng ướt ở", "Uong On Ung uot o"},
		{"all a variants", "àáạảãâầấậẩẫăằắặẳẵ", strings.Repeat("a", 17)},
		{"all upper o variants", "ÒÓỌỎÕÔỒỐỘỔỖƠỜỚỢỞỠ", strings.Repeat("O", 17)},
		{"y variants", "ỳýỵỷỹỲÝỴỶỸ", "yyyyyYYYYY"},
		{"punctuation becomes space", "HD-123/2024, phí: 5%", "HD 123 2024  phi  5"},
		{"trims edges", "  ...Chuyển tiền!  ", "Chuyen tien"},
		{"decomposed input", "Nguye\u0302\u0303n", "Nguyen"},
		{"other latin diacritics", "Café Über", "Cafe Uber"},
		{"non latin", "Tiền 钱 ₫", "Tien"},
		{"tabs and newlines", "a\tb\nc", "a b c"},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RemoveTones(tt.in))
		})
	}
}

func TestRemoveTones_OutputIsRestrictedASCII(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Cộng hòa xã hội chủ nghĩa Việt Nam",
		"Thanh toán hợp đồng #A-99 (kỳ 3)",
		"\xff\xfe invalid utf8",
		"😀 emoji",
	}
	for _, in := range inputs {
		out := RemoveTones(in)
		for i := 0; i < len(out); i++ {
			c := out[i]
			ok := c == ' ' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
			assert.Truef(t, ok, "unexpected byte %q in %q", c, out)
		}
		assert.Equal(t, strings.TrimSpace(out), out)
	}
}

func TestTruncateMemo(t *testing.T) {
	t.Parallel()

	got, cut := truncateMemo("abc", 5)
	assert.Equal(t, "abc", got)
	assert.False(t, cut)

	got, cut = truncateMemo("abcdef", 5)
	assert.Equal(t, "abcde", got)
	assert.True(t, cut)
}
