package pgconv

import (
	"database/sql"
	"errors"
	"math/big"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"lukechampine.com/uint128"
)

var (
	ErrInvalidNumeric  = errors.New("numeric is null, fractional or out of range")
	ErrNumericOverflow = errors.New("numeric overflows target width")
)

var maxUint128 = uint128.Max.Big()

func Uint128ToNumeric(v uint128.Uint128) pgtype.Numeric {
	return pgtype.Numeric{Int: v.Big(), Exp: 0, Valid: true}
}

func Uint64ToNumeric(v uint64) pgtype.Numeric {
	return pgtype.Numeric{Int: new(big.Int).SetUint64(v), Exp: 0, Valid: true}
}

func Uint128FromNumeric(n pgtype.Numeric) (uint128.Uint128, error) {
	i, err := integer(n)
	if err != nil {
		return uint128.Zero, err
	}
	if i.Cmp(maxUint128) > 0 {
		return uint128.Zero, ErrNumericOverflow
	}
	return uint128.FromBig(i), nil
}

func Uint64FromNumeric(n pgtype.Numeric) (uint64, error) {
	i, err := integer(n)
	if err != nil {
		return 0, err
	}
	if !i.IsUint64() {
		return 0, ErrNumericOverflow
	}
	return i.Uint64(), nil
}

// integer scales n by its exponent; postgres may strip trailing zeros into Exp.
func integer(n pgtype.Numeric) (*big.Int, error) {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		return nil, ErrInvalidNumeric
	}
	i := new(big.Int).Set(n.Int)
	if n.Exp > 0 {
		i.Mul(i, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n.Exp)), nil))
	} else if n.Exp < 0 {
		var rem big.Int
		i.QuoRem(i, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-n.Exp)), nil), &rem)
		if rem.Sign() != 0 {
			return nil, ErrInvalidNumeric
		}
	}
	if i.Sign() < 0 {
		return nil, ErrInvalidNumeric
	}
	return i, nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
