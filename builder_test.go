package vietqr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	defer b.Release()

	payload, err := b.Account("1058526128").
		Amount(500000).
		Memo("Nguyễn Văn A HD123").
		Bank("vcb").
		Build()
	require.NoError(t, err)
	assert.Equal(t, goldenDynamic, payload)
	assert.Equal(t, Request{AccountNumber: "1058526128", Amount: 500000, Memo: "Nguyễn Văn A HD123", BankCode: "vcb"}, b.Request())
}

func TestBuilder_MissingAccount(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	defer b.Release()

	_, err := b.Account("").Amount(1000).Build()
	assert.ErrorIs(t, err, ErrMissingAccount)

	assert.Panics(t, func() { b.MustBuild() })
}

func TestBuilder_NeverSetAccount(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	defer b.Release()

	_, err := b.Memo("hi").Build()
	assert.ErrorIs(t, err, ErrMissingAccount)
}

func TestBuilder_WithOptions(t *testing.T) {
	t.Parallel()

	b := NewBuilder(WithStrictValidation())
	defer b.Release()

	_, err := b.Account("12ễ").Build()
	assert.ErrorIs(t, err, ErrNonASCII)
}

func TestBuilder_ReleaseResetsState(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.Account("").Memo("leftover")
	b.Release()

	b2 := NewBuilder()
	defer b2.Release()
	assert.Equal(t, Request{}, b2.Request())
	assert.Equal(t, goldenStatic, b2.Account("1058526128").MustBuild())
}
