package vietqr

import "sync"

// Builder pool for reuse
var builderPool = sync.Pool{
	New: func() interface{} {
		return &Builder{
			errors: make([]error, 0, 4),
		}
	},
}

// Builder assembles a Request fluently and encodes it.
type Builder struct {
	enc    *Encoder
	req    Request
	errors []error
}

// NewBuilder takes a builder from the pool. Options configure a dedicated
// encoder; without options the package default is used.
func NewBuilder(opts ...EncoderOption) *Builder {
	b := builderPool.Get().(*Builder)
	b.enc = defaultEncoder
	if len(opts) > 0 {
		b.enc = NewEncoder(opts...)
	}
	b.req = Request{}
	b.errors = b.errors[:0]
	return b
}

// Release returns the builder to the pool
func (b *Builder) Release() {
	b.enc = nil
	b.req = Request{}
	b.errors = b.errors[:0]
	builderPool.Put(b)
}

func (b *Builder) Account(accountNumber string) *Builder {
	if accountNumber == "" {
		b.errors = append(b.errors, ErrMissingAccount)
		return b
	}
	b.req.AccountNumber = accountNumber
	return b
}

func (b *Builder) Amount(amount float64) *Builder {
	b.req.Amount = amount
	return b
}

func (b *Builder) Memo(memo string) *Builder {
	b.req.Memo = memo
	return b
}

func (b *Builder) Bank(code string) *Builder {
	b.req.BankCode = code
	return b
}

// Request returns the request built so far.
func (b *Builder) Request() Request {
	return b.req
}

func (b *Builder) Build() (string, error) {
	if len(b.errors) > 0 {
		return "", b.errors[0]
	}
	return b.enc.Encode(b.req)
}

func (b *Builder) MustBuild() string {
	payload, err := b.Build()
	if err != nil {
		panic(err)
	}
	return payload
}
