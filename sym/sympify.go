package sym

import (
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Sympify converts a Go value to an expression. Accepted values are
// expressions, signed and unsigned integers, finite floats (converted
// exactly from their shortest decimal representation), *big.Int,
// *big.Rat and strings. A string is parsed as a rational ("3", "-1/2",
// "0.25"), the constants "pi" and "I", or otherwise a symbol name.
func Sympify(v interface{}) (Expr, error) {
	switch x := v.(type) {
	case Expr:
		return x, nil
	case *big.Int:
		return newNum(new(big.Rat).SetInt(x)), nil
	case *big.Rat:
		return NewNum(x), nil
	case string:
		return sympifyString(x)
	case float32:
		return sympifyFloat(float64(x), 32)
	case float64:
		return sympifyFloat(x, 64)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return newNum(new(big.Rat).SetInt(new(big.Int).SetUint64(rv.Uint()))), nil
	}
	return nil, errors.Wrapf(ErrSympify, "value %v of type %T", v, v)
}

func sympifyFloat(f float64, bits int) (Expr, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.Wrapf(ErrSympify, "non-finite float %v", f)
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, bits))
	if !ok {
		return nil, errors.Wrapf(ErrSympify, "float %v", f)
	}
	return newNum(r), nil
}

func sympifyString(s string) (Expr, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "pi":
		return Pi, nil
	case "I":
		return I, nil
	}
	if r, ok := new(big.Rat).SetString(s); ok {
		return newNum(r), nil
	}
	if isIdentifier(s) {
		return NewSymbol(s), nil
	}
	return nil, errors.Wrapf(ErrSympify, "string %q", s)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// SympifyVector converts a slice or array of sympifiable values, a
// gonum mat.Vector, or a column vector Matrix to a slice of
// expressions.
func SympifyVector(v interface{}) ([]Expr, error) {
	switch x := v.(type) {
	case []Expr:
		return append([]Expr(nil), x...), nil
	case *Matrix:
		if x.cols != 1 {
			return nil, errors.Wrapf(ErrSympify, "%dx%d matrix is not a "+
				"column vector", x.rows, x.cols)
		}
		return x.Col(0), nil
	case mat.Vector:
		out := make([]Expr, x.Len())
		for i := range out {
			e, err := sympifyFloat(x.AtVec(i), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			out[i] = e
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.Wrapf(ErrSympify, "%T is not a vector", v)
	}
	out := make([]Expr, rv.Len())
	for i := range out {
		e, err := Sympify(rv.Index(i).Interface())
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		out[i] = e
	}
	return out, nil
}

// SympifyMatrix converts a Matrix, a gonum mat.Matrix, or a slice of
// equal length rows of sympifiable values to a Matrix.
func SympifyMatrix(v interface{}) (*Matrix, error) {
	switch x := v.(type) {
	case *Matrix:
		return x, nil
	case mat.Matrix:
		r, c := x.Dims()
		data := make([]Expr, 0, r*c)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				e, err := sympifyFloat(x.At(i, j), 64)
				if err != nil {
					return nil, errors.Wrapf(err, "element (%d, %d)", i, j)
				}
				data = append(data, e)
			}
		}
		return &Matrix{rows: r, cols: c, data: data}, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.Wrapf(ErrSympify, "%T is not a matrix", v)
	}
	rows := make([][]Expr, rv.Len())
	for i := range rows {
		row, err := SympifyVector(rv.Index(i).Interface())
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		rows[i] = row
	}
	m, err := NewMatrix(rows)
	if err != nil {
		return nil, errors.Wrap(ErrSympify, err.Error())
	}
	return m, nil
}
