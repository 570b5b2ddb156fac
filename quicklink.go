package vietqr

import (
	"net/url"
	"strings"
)

const (
	QuickLinkBaseURL         = "https://img.vietqr.io/image/"
	DefaultQuickLinkTemplate = "compact"
)

// QuickLink describes an image URL on the public VietQR rendering service.
// It only builds the URL; nothing is fetched.
type QuickLink struct {
	BankCode      string
	AccountNumber string
	Template      string
	Amount        float64
	AddInfo       string
	AccountName   string
}

// URL renders the link as
// {base}{bank}-{account}-{template}.png?accountName=..&addInfo=..&amount=..
// Empty query values are left out.
func (q QuickLink) URL() (string, error) {
	if q.AccountNumber == "" {
		return "", ErrMissingAccount
	}

	bank := normalizeCode(q.BankCode)
	if bank == "" {
		bank = DefaultBankCode
	}
	template := q.Template
	if template == "" {
		template = DefaultQuickLinkTemplate
	}

	var sb strings.Builder
	sb.WriteString(QuickLinkBaseURL)
	sb.WriteString(url.PathEscape(bank))
	sb.WriteByte('-')
	sb.WriteString(url.PathEscape(q.AccountNumber))
	sb.WriteByte('-')
	sb.WriteString(url.PathEscape(template))
	sb.WriteString(".png")

	query := url.Values{}
	if amount, ok := formatAmount(q.Amount); ok {
		query.Set("amount", amount)
	}
	if q.AddInfo != "" {
		query.Set("addInfo", q.AddInfo)
	}
	if q.AccountName != "" {
		query.Set("accountName", q.AccountName)
	}
	if len(query) > 0 {
		sb.WriteByte('?')
		sb.WriteString(query.Encode())
	}
	return sb.String(), nil
}
