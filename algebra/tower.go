// SPDX-License-Identifier: MIT
// Package algebra: the type-coercion tower.
//
// Tiers form a total order
//
//	TierInteger < TierFraction < TierPolynomial < TierRationalFunction < TierSum
//
// CastUp lifts a value one tier at a time:
//
//	Integer → Fraction             n/1
//	Fraction → Polynomial          [c]
//	Polynomial → RationalFunction  p/1
//	RationalFunction → Sum         single-term sum
//
// The binary operators below lift the lower operand to the higher tier and
// dispatch on a closed type switch; no reflection is involved.

package algebra

import (
	"fmt"
	"math/big"
)

// Tier is a level of the promotion order.
type Tier int

// Tiers in ascending promotion order.
const (
	TierInteger Tier = iota
	TierFraction
	TierPolynomial
	TierRationalFunction
	TierSum
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierInteger:
		return "Integer"
	case TierFraction:
		return "Fraction"
	case TierPolynomial:
		return "Polynomial"
	case TierRationalFunction:
		return "RationalFunction"
	case TierSum:
		return "RationalFunctionSum"
	}

	return fmt.Sprintf("Tier(%d)", int(t))
}

// Value is any member of the tower: Integer, Fraction, *Polynomial,
// *RationalFunction or *RationalFunctionSum.
type Value interface {
	Tier() Tier
	String() string
}

// Integer is the integer-literal case of the tower.
type Integer int64

// Tier reports TierInteger.
func (n Integer) Tier() Tier { return TierInteger }

// String formats n in base 10.
func (n Integer) String() string { return fmt.Sprint(int64(n)) }

// checkTier verifies that v's concrete type matches its declared tier.
func checkTier(v Value) error {
	ok := false
	switch x := v.(type) {
	case Integer:
		ok = x.Tier() == TierInteger
	case Fraction:
		ok = x.Tier() == TierFraction
	case *Polynomial:
		ok = x != nil
	case *RationalFunction:
		ok = x != nil
	case *RationalFunctionSum:
		ok = x != nil
	}
	if !ok {
		return fmt.Errorf("value of type %T: %w", v, ErrTypeMismatch)
	}

	return nil
}

// liftOnce moves v exactly one tier up. v has already passed checkTier.
func liftOnce(v Value) (Value, error) {
	switch x := v.(type) {
	case Integer:
		return FractionFromInt(int64(x)), nil
	case Fraction:
		return PolyFromFractions(x), nil
	case *Polynomial:
		return PolyToRationalFunction(x), nil
	case *RationalFunction:
		return NewRationalFunctionSum(x), nil
	}

	return nil, fmt.Errorf("cannot lift %s: %w", v.Tier(), ErrTypeMismatch)
}

// CastUp returns a value equivalent to v at the target tier.
// Returns ErrTypeMismatch if target is below v's tier, if target is not a
// valid tier, or if v is nil or not a member of the tower.
func CastUp(v Value, target Tier) (Value, error) {
	if v == nil {
		return nil, algebraErrorf(opCastUp, fmt.Errorf("nil value: %w", ErrTypeMismatch))
	}
	if err := checkTier(v); err != nil {
		return nil, algebraErrorf(opCastUp, err)
	}
	if target < v.Tier() || target > TierSum {
		return nil, algebraErrorf(opCastUp,
			fmt.Errorf("%s to %s: %w", v.Tier(), target, ErrTypeMismatch))
	}
	var err error
	for v.Tier() < target {
		if v, err = liftOnce(v); err != nil {
			return nil, algebraErrorf(opCastUp, err)
		}
	}

	return v, nil
}

// AsFraction casts v up to a Fraction.
func AsFraction(v Value) (Fraction, error) {
	x, err := CastUp(v, TierFraction)
	if err != nil {
		return Fraction{}, err
	}

	return x.(Fraction), nil
}

// AsPolynomial casts v up to a *Polynomial.
func AsPolynomial(v Value) (*Polynomial, error) {
	x, err := CastUp(v, TierPolynomial)
	if err != nil {
		return nil, err
	}

	return x.(*Polynomial), nil
}

// AsRationalFunction casts v up to a *RationalFunction.
func AsRationalFunction(v Value) (*RationalFunction, error) {
	x, err := CastUp(v, TierRationalFunction)
	if err != nil {
		return nil, err
	}

	return x.(*RationalFunction), nil
}

// AsSum casts v up to a *RationalFunctionSum.
func AsSum(v Value) (*RationalFunctionSum, error) {
	x, err := CastUp(v, TierSum)
	if err != nil {
		return nil, err
	}

	return x.(*RationalFunctionSum), nil
}

// lift brings a and b to their common (higher) tier.
func lift(tag string, a, b Value) (Value, Value, error) {
	if a == nil || b == nil {
		return nil, nil, algebraErrorf(tag, fmt.Errorf("nil operand: %w", ErrTypeMismatch))
	}
	t := max(a.Tier(), b.Tier())
	x, err := CastUp(a, t)
	if err != nil {
		return nil, nil, algebraErrorf(tag, err)
	}
	y, err := CastUp(b, t)
	if err != nil {
		return nil, nil, algebraErrorf(tag, err)
	}

	return x, y, nil
}

// integerResult keeps z as an Integer when it fits in int64 and promotes it
// to a Fraction otherwise.
func integerResult(z *big.Int) Value {
	if z.IsInt64() {
		return Integer(z.Int64())
	}

	return canonical(z, big.NewInt(1))
}

// Add returns a + b at the higher of the two tiers. Integer results that
// overflow int64 are returned as a Fraction.
func Add(a, b Value) (Value, error) {
	x, y, err := lift(opAdd, a, b)
	if err != nil {
		return nil, err
	}
	switch u := x.(type) {
	case Integer:
		return integerResult(new(big.Int).Add(big.NewInt(int64(u)), big.NewInt(int64(y.(Integer))))), nil
	case Fraction:
		return u.Add(y.(Fraction)), nil
	case *Polynomial:
		return u.Add(y.(*Polynomial)), nil
	case *RationalFunction:
		return u.Add(y.(*RationalFunction)), nil
	case *RationalFunctionSum:
		return u.Add(y.(*RationalFunctionSum)), nil
	}

	return nil, algebraErrorf(opAdd, ErrTypeMismatch)
}

// Sub returns a − b at the higher of the two tiers.
func Sub(a, b Value) (Value, error) {
	nb, err := Mul(b, Integer(-1))
	if err != nil {
		return nil, algebraErrorf(opSub, err)
	}

	return Add(a, nb)
}

// Mul returns a · b at the higher of the two tiers. A sum times a sum
// collapses both operands first; a sum times a lower tier distributes the
// lower operand across the terms.
func Mul(a, b Value) (Value, error) {
	if a != nil && b != nil && a.Tier() != b.Tier() && max(a.Tier(), b.Tier()) == TierSum {
		s, o := a, b
		if b.Tier() == TierSum {
			s, o = b, a
		}
		sum, err := AsSum(s)
		if err != nil {
			return nil, algebraErrorf(opMul, err)
		}
		rf, err := AsRationalFunction(o)
		if err != nil {
			return nil, algebraErrorf(opMul, err)
		}

		return sum.Distribute(rf), nil
	}
	x, y, err := lift(opMul, a, b)
	if err != nil {
		return nil, err
	}
	switch u := x.(type) {
	case Integer:
		return integerResult(new(big.Int).Mul(big.NewInt(int64(u)), big.NewInt(int64(y.(Integer))))), nil
	case Fraction:
		return u.Mul(y.(Fraction)), nil
	case *Polynomial:
		return u.Mul(y.(*Polynomial)), nil
	case *RationalFunction:
		return u.Mul(y.(*RationalFunction)), nil
	case *RationalFunctionSum:
		return u.Mul(y.(*RationalFunctionSum)), nil
	}

	return nil, algebraErrorf(opMul, ErrTypeMismatch)
}

// Equal compares a and b after lifting both to the higher tier, so a
// polynomial equals a bare Fraction or Integer with the same value.
func Equal(a, b Value) (bool, error) {
	x, y, err := lift(opEqual, a, b)
	if err != nil {
		return false, err
	}
	switch u := x.(type) {
	case Integer:
		return u == y.(Integer), nil
	case Fraction:
		return u.Equal(y.(Fraction)), nil
	case *Polynomial:
		return u.Equal(y.(*Polynomial)), nil
	case *RationalFunction:
		return u.Equal(y.(*RationalFunction)), nil
	case *RationalFunctionSum:
		return u.Equal(y.(*RationalFunctionSum)), nil
	}

	return false, algebraErrorf(opEqual, ErrTypeMismatch)
}

// Evaluate returns v(x) for any tier. Integers and Fractions are constants.
// ok is false when v is undefined at x (a pole of some denominator).
// Returns ErrTypeMismatch for values outside the tower.
func Evaluate(v Value, x Fraction) (Fraction, bool, error) {
	if v == nil {
		return Fraction{}, false, algebraErrorf(opEvaluate, ErrTypeMismatch)
	}
	if err := checkTier(v); err != nil {
		return Fraction{}, false, algebraErrorf(opEvaluate, err)
	}
	switch u := v.(type) {
	case Integer:
		return FractionFromInt(int64(u)), true, nil
	case Fraction:
		return u, true, nil
	case *Polynomial:
		return u.Evaluate(x), true, nil
	case *RationalFunction:
		r, ok := u.Evaluate(x)
		return r, ok, nil
	case *RationalFunctionSum:
		r, ok := u.Evaluate(x)
		return r, ok, nil
	}

	return Fraction{}, false, algebraErrorf(opEvaluate, ErrTypeMismatch)
}
