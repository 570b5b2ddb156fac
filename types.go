package vietqr

// Top-level tags of the merchant-presented payload.
const (
	TagPayloadFormat    = "00"
	TagInitiationMethod = "01"
	TagMerchantAccount  = "38"
	TagCurrency         = "53"
	TagAmount           = "54"
	TagCountry          = "58"
	TagAdditionalData   = "62"
	TagCRC              = "63"
)

// Sub-tags nested under TagMerchantAccount and TagAdditionalData.
const (
	SubTagGUID        = "00"
	SubTagBeneficiary = "01"
	SubTagService     = "02"

	SubTagBIN     = "00"
	SubTagAccount = "01"

	SubTagPurpose = "08"
)

// Fixed values of the domestic instant-transfer scheme.
const (
	PayloadFormatIndicator = "01"
	MethodStatic           = "11"
	MethodDynamic          = "12"
	SchemeGUID             = "A000000727"
	ServiceAccountTransfer = "QRIBFTTA"
	CurrencyVND            = "704"
	CountryVN              = "VN"
	DefaultBankCode        = "VCB"
)

const (
	TagLen      = 2
	LengthLen   = 2
	MaxValueLen = 99
	// MaxMemoLen leaves room for the 4-byte "08LL" header inside tag 62.
	MaxMemoLen = MaxValueLen - TagLen - LengthLen
	crcHeader  = TagCRC + "04"
)

type ValidationLevel int

const (
	ValidationNone ValidationLevel = iota
	ValidationStrict
)

// Field is a single tag-length-value element. Value may itself be a packed
// sequence of fields.
type Field struct {
	Tag   string
	Value string
}

// Request carries the scalar inputs for one payload. Zero values mean absent:
// a non-positive Amount, an empty Memo, and an empty BankCode (default bank).
type Request struct {
	AccountNumber string  `json:"account" yaml:"account"`
	Amount        float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
	Memo          string  `json:"memo,omitempty" yaml:"memo,omitempty"`
	BankCode      string  `json:"bank,omitempty" yaml:"bank,omitempty"`
}

// RoutingEntry maps a short bank code to its 6-digit BIN.
type RoutingEntry struct {
	Code string `json:"code" yaml:"code"`
	BIN  string `json:"bin" yaml:"bin"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}
