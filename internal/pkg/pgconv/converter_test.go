//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"

	"fleet-ledger/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestUint128FromNumeric(t *testing.T) {
	big39, ok := new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	require.True(t, ok)

	cases := []struct {
		name  string
		in    pgtype.Numeric
		want  uint128.Uint128
		errIs error
	}{
		{name: "plain", in: pgconv.Uint128ToNumeric(uint128.From64(900)), want: uint128.From64(900)},
		{name: "max", in: pgtype.Numeric{Int: big39, Valid: true}, want: uint128.Max},
		{name: "positive exponent", in: pgtype.Numeric{Int: big.NewInt(9), Exp: 2, Valid: true}, want: uint128.From64(900)},
		{name: "negative exponent without fraction", in: pgtype.Numeric{Int: big.NewInt(9000), Exp: -1, Valid: true}, want: uint128.From64(900)},
		{name: "fraction", in: pgtype.Numeric{Int: big.NewInt(9001), Exp: -1, Valid: true}, errIs: pgconv.ErrInvalidNumeric},
		{name: "null", in: pgtype.Numeric{}, errIs: pgconv.ErrInvalidNumeric},
		{name: "negative", in: pgtype.Numeric{Int: big.NewInt(-1), Valid: true}, errIs: pgconv.ErrInvalidNumeric},
		{name: "too wide", in: pgtype.Numeric{Int: big39, Exp: 1, Valid: true}, errIs: pgconv.ErrNumericOverflow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pgconv.Uint128FromNumeric(tc.in)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUint64FromNumeric(t *testing.T) {
	got, err := pgconv.Uint64FromNumeric(pgconv.Uint64ToNumeric(^uint64(0)))
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), got)

	_, err = pgconv.Uint64FromNumeric(pgconv.Uint128ToNumeric(uint128.New(0, 1)))
	assert.ErrorIs(t, err, pgconv.ErrNumericOverflow)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}
