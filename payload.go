package vietqr

import (
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Encoder assembles VietQR payload strings. It holds only immutable
// configuration and is safe for concurrent use.
type Encoder struct {
	routing         *RoutingTable
	log             logrus.FieldLogger
	validationLevel ValidationLevel
	validator       *Validator
}

var defaultEncoder = NewEncoder()

// NewEncoder creates an encoder backed by DefaultRoutingTable.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{
		routing:   DefaultRoutingTable,
		log:       logrus.StandardLogger(),
		validator: StrictValidator(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RoutingTable returns the table the encoder resolves bank codes with.
func (e *Encoder) RoutingTable() *RoutingTable {
	return e.routing
}

// GeneratePayload encodes a transfer with the default encoder. It returns
// "" when accountNumber is empty. A non-positive amount and an empty memo
// are treated as absent; an empty or unknown bankCode resolves to VCB.
func GeneratePayload(accountNumber string, amount float64, memo, bankCode string) string {
	return defaultEncoder.Generate(Request{
		AccountNumber: accountNumber,
		Amount:        amount,
		Memo:          memo,
		BankCode:      bankCode,
	})
}

// Generate encodes req and returns "" when the account number is missing.
// Validation level is ignored: some payload is always produced.
func (e *Encoder) Generate(req Request) string {
	if req.AccountNumber == "" {
		return ""
	}
	top, _ := e.fields(req)
	return seal(top)
}

// Encode is Generate with explicit errors. It returns ErrMissingAccount
// instead of "", and in strict mode a *FieldError for any emitted field
// that breaks the framing rules.
func (e *Encoder) Encode(req Request) (string, error) {
	if req.AccountNumber == "" {
		return "", ErrMissingAccount
	}

	top, nested := e.fields(req)
	if e.validationLevel == ValidationStrict {
		if err := e.validator.Validate(nested...); err != nil {
			return "", err
		}
		if err := e.validator.Validate(top...); err != nil {
			return "", err
		}
	}
	return seal(top), nil
}

// fields builds the top-level fields in wire order along with every nested
// child, innermost first.
func (e *Encoder) fields(req Request) (top []Field, nested []Field) {
	bin := e.resolveBIN(req.BankCode)

	beneficiary := []Field{
		{Tag: SubTagBIN, Value: bin},
		{Tag: SubTagAccount, Value: req.AccountNumber},
	}
	merchant := []Field{
		{Tag: SubTagGUID, Value: SchemeGUID},
		Composite(SubTagBeneficiary, beneficiary...),
		{Tag: SubTagService, Value: ServiceAccountTransfer},
	}
	nested = append(nested, beneficiary...)
	nested = append(nested, merchant...)

	amount, hasAmount := formatAmount(req.Amount)

	method := MethodStatic
	if hasAmount || req.Memo != "" {
		method = MethodDynamic
	}

	top = make([]Field, 0, 7)
	top = append(top,
		Field{Tag: TagPayloadFormat, Value: PayloadFormatIndicator},
		Field{Tag: TagInitiationMethod, Value: method},
		Composite(TagMerchantAccount, merchant...),
		Field{Tag: TagCurrency, Value: CurrencyVND},
	)
	if hasAmount {
		top = append(top, Field{Tag: TagAmount, Value: amount})
	}
	top = append(top, Field{Tag: TagCountry, Value: CountryVN})

	if memo := e.cleanMemo(req.Memo); memo != "" {
		purpose := Field{Tag: SubTagPurpose, Value: memo}
		nested = append(nested, purpose)
		top = append(top, Composite(TagAdditionalData, purpose))
	}

	return top, nested
}

func (e *Encoder) resolveBIN(code string) string {
	if code == "" {
		return e.routing.Default().BIN
	}
	entry, ok := e.routing.Resolve(code)
	if !ok {
		e.log.WithFields(logrus.Fields{
			"bank_code": code,
			"bin":       entry.BIN,
		}).Debug("unknown bank code, using default")
	}
	return entry.BIN
}

func (e *Encoder) cleanMemo(memo string) string {
	if memo == "" {
		return ""
	}
	full := RemoveTones(memo)
	clean, truncated := truncateMemo(full, MaxMemoLen)
	if truncated {
		e.log.WithFields(logrus.Fields{
			"memo_len": len(full),
			"max_len":  MaxMemoLen,
		}).Debug("memo truncated")
	}
	return clean
}

// seal packs the fields, appends the CRC header and the checksum computed
// over everything before it.
func seal(fields []Field) string {
	buf := getBuffer()
	defer putBuffer(buf)

	for _, f := range fields {
		buf.WriteString(f.Tag)
		buf.WriteString(formatLength(len(f.Value)))
		buf.WriteString(f.Value)
	}
	buf.WriteString(crcHeader)
	buf.WriteString(encodeHex16(CRC16(buf.Bytes())))
	return buf.String()
}

// formatAmount renders a positive, finite amount in plain decimal form.
func formatAmount(amount float64) (string, bool) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", false
	}
	return strconv.FormatFloat(amount, 'f', -1, 64), true
}
