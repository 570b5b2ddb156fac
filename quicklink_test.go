package vietqr

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickLink_URL(t *testing.T) {
	t.Parallel()

	u, err := QuickLink{
		BankCode:      "vcb",
		AccountNumber: "1058526128",
		Amount:        500000,
		AddInfo:       "Nguyễn Văn A HD123",
		AccountName:   "DOANH NGHIEP TU NHAN Y99",
	}.URL()
	require.NoError(t, err)

	parsed, err := url.Parse(u)
	require.NoError(t, err)
	assert.Equal(t, "img.vietqr.io", parsed.Host)
	assert.Equal(t, "/image/VCB-1058526128-compact.png", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "500000", q.Get("amount"))
	assert.Equal(t, "Nguyễn Văn A HD123", q.Get("addInfo"))
	assert.Equal(t, "DOANH NGHIEP TU NHAN Y99", q.Get("accountName"))
}

func TestQuickLink_Defaults(t *testing.T) {
	t.Parallel()

	u, err := QuickLink{AccountNumber: "42"}.URL()
	require.NoError(t, err)
	assert.Equal(t, "https://img.vietqr.io/image/VCB-42-compact.png", u)

	u, err = QuickLink{AccountNumber: "42", BankCode: "TCB", Template: "print"}.URL()
	require.NoError(t, err)
	assert.Equal(t, "https://img.vietqr.io/image/TCB-42-print.png", u)
}

func TestQuickLink_MissingAccount(t *testing.T) {
	t.Parallel()

	_, err := QuickLink{BankCode: "VCB"}.URL()
	assert.ErrorIs(t, err, ErrMissingAccount)
}
