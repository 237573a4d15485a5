package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/units/units"
)

// operators maps calc's operator argument to the engine operation.
var operators = map[string]func(units.Engine, units.Value, units.Value) (units.Value, error){
	"+": units.Engine.Add,
	"-": units.Engine.Sub,
	"*": units.Engine.Mul,
	"x": units.Engine.Mul,
	"/": units.Engine.Div,
}

func parseQuantity(cat *units.Catalog, amount, unit string) (units.Scalar, error) {
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return units.Scalar{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return cat.New(v, unit)
}

// runConvert handles: <amount> <from> <to>
func runConvert(w io.Writer, cat *units.Catalog, args []string) error {
	src, err := parseQuantity(cat, args[0], args[1])
	if err != nil {
		return err
	}
	got, err := cat.Convert(src, args[2])
	if err != nil {
		return err
	}
	logrus.Debugf("converted %s (%g base units) to %s", src, src.Base(), got)
	_, err = fmt.Fprintln(w, got)
	return err
}

// runCalc handles: <amount> <unit> <op> <amount> <unit>
func runCalc(w io.Writer, cat *units.Catalog, e units.Engine, args []string) error {
	a, err := parseQuantity(cat, args[0], args[1])
	if err != nil {
		return err
	}
	op, ok := operators[args[2]]
	if !ok {
		return fmt.Errorf("unknown operator %q (valid: + - * /)", args[2])
	}
	b, err := parseQuantity(cat, args[3], args[4])
	if err != nil {
		return err
	}
	got, err := op(e, a, b)
	if err != nil {
		return err
	}
	logrus.Debugf("%s %s %s = %s (strict=%t)", a, args[2], b, got, e.Strict)
	_, err = fmt.Fprintln(w, got)
	return err
}
