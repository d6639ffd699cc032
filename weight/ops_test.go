// SPDX-License-Identifier: MIT

package weight_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/shortpath/weight"
)

func TestInt64_SumSaturates(t *testing.T) {
	ops := weight.Int64()
	inf := ops.Infinity()

	assert.Equal(t, int64(0), ops.Zero())
	assert.Equal(t, int64(7), ops.Sum(3, 4))
	assert.Equal(t, int64(-1), ops.Sum(-3, 2))
	assert.Equal(t, inf, ops.Sum(inf, -5), "Infinity absorbs negative addends")
	assert.Equal(t, inf, ops.Sum(-5, inf))
	assert.Equal(t, inf, ops.Sum(math.MaxInt64-1, 10), "overflow saturates")
}

func TestInt64_Subtract(t *testing.T) {
	ops := weight.Int64()
	inf := ops.Infinity()

	assert.Equal(t, int64(-1), ops.Subtract(2, 3))
	assert.Equal(t, inf, ops.Subtract(inf, 100))
	assert.Equal(t, inf, ops.Subtract(math.MaxInt64-1, -10))
}

func TestCompare(t *testing.T) {
	ops := weight.Int()
	assert.Equal(t, -1, ops.Compare(1, 2))
	assert.Equal(t, 0, ops.Compare(2, 2))
	assert.Equal(t, 1, ops.Compare(3, 2))
	assert.True(t, weight.Less(ops, -4, 0))
	assert.False(t, weight.Less(ops, 0, 0))
}

func TestFloat64(t *testing.T) {
	ops := weight.Float64()
	assert.True(t, math.IsInf(ops.Infinity(), 1))
	assert.True(t, weight.IsInfinite(ops, ops.Sum(ops.Infinity(), -1.5)))
	assert.InDelta(t, 0.5, ops.Sum(2, -1.5), 1e-12)
	assert.False(t, weight.IsInfinite(ops, 1e300))
}

func TestNumeric_CustomSentinel(t *testing.T) {
	ops := weight.Numeric[int32](1000)
	assert.Equal(t, int32(1000), ops.Sum(999, 5))
	assert.Equal(t, int32(995), ops.Sum(990, 5))
	assert.True(t, weight.IsInfinite(ops, ops.Sum(1000, -1)))
}

func TestInt64_NegativeOverflowClampsToFloor(t *testing.T) {
	ops := weight.Int64()

	s := ops.Sum(math.MinInt64, -1)
	assert.Equal(t, int64(math.MinInt64), s)
	assert.False(t, weight.IsInfinite(ops, s), "wrapping below the floor must not read as unreached")
	assert.Equal(t, int64(math.MinInt64), ops.Sum(-1, math.MinInt64))
	assert.Equal(t, int64(math.MinInt64), ops.Sum(math.MinInt64+5, -10))
	assert.Equal(t, int64(math.MinInt64+5), ops.Sum(math.MinInt64+10, -5))

	d := ops.Subtract(math.MinInt64+5, 10)
	assert.Equal(t, int64(math.MinInt64), d)
	assert.False(t, weight.IsInfinite(ops, d))
	assert.Equal(t, int64(math.MinInt64), ops.Subtract(math.MinInt64+10, 10))
}

func TestNumeric_FloorPerType(t *testing.T) {
	i8 := weight.Numeric[int8](100)
	assert.Equal(t, int8(math.MinInt8), i8.Sum(-100, -100))
	assert.Equal(t, int8(-120), i8.Sum(-60, -60))
	assert.Equal(t, int8(math.MinInt8), i8.Subtract(-100, 50))

	u8 := weight.Numeric[uint8](200)
	assert.Equal(t, uint8(0), u8.Subtract(3, 5), "unsigned results clamp at zero")
	assert.Equal(t, uint8(7), u8.Sum(3, 4))

	f := weight.Float64()
	assert.True(t, math.IsInf(f.Sum(-math.MaxFloat64, -math.MaxFloat64), -1))
	assert.False(t, weight.IsInfinite(f, f.Subtract(-math.MaxFloat64, math.MaxFloat64)))
}
