package main

import (
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	num "github.com/shabbyrobe/go-num256"
	"gopkg.in/alecthomas/kingpin.v2"
)

// f256bits prints the binary256 encoding of a value, or of the result of an
// operation on two values, so rounding at the edges of the format can be
// inspected by hand.

var (
	app = kingpin.New("f256bits", "Inspect binary256 encodings")

	dump = app.Flag("dump", "Dump the decoded sign, exponent and significand").Bool()

	show  = app.Command("show", "Show the encoding of a value.")
	showX = show.Arg("x", "Value (decimal, hex float, nan or inf).").Required().String()

	calc   = app.Command("calc", "Apply an operation and show the encoding of the result.")
	calcOp = calc.Flag("op", "Operation").Short('o').Default("add").Enum("add", "sub", "mul", "quo", "rem", "cmp")
	calcX  = calc.Arg("x", "Left operand.").Required().String()
	calcY  = calc.Arg("y", "Right operand.").Required().String()
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	command, err := app.Parse(args)
	if err != nil {
		return fmt.Errorf("parsing arguments: %w. Try --help", err)
	}

	switch command {
	case show.FullCommand():
		x, err := num.F256FromString(*showX)
		if err != nil {
			return err
		}
		printF256("x", x)

	case calc.FullCommand():
		x, err := num.F256FromString(*calcX)
		if err != nil {
			return err
		}
		y, err := num.F256FromString(*calcY)
		if err != nil {
			return err
		}
		printF256("x", x)
		printF256("y", y)

		var out num.F256
		switch *calcOp {
		case "add":
			out = x.Add(y)
		case "sub":
			out = x.Sub(y)
		case "mul":
			out = x.Mul(y)
		case "quo":
			out = x.Quo(y)
		case "rem":
			out = x.Rem(y)
		case "cmp":
			c, ok := x.Cmp(y)
			fmt.Printf("cmp:   %d ordered:%v total:%d\n", c, ok, x.TotalCmp(y))
			return nil
		}
		printF256(*calcOp, out)
	}
	return nil
}

func printF256(name string, f num.F256) {
	fmt.Printf("%-5s  %s\n", name+":", f)
	fmt.Printf("       class:%s bits:%#064x\n", f.Class(), f.Bits())
	if *dump && f.IsFinite() && !f.IsZero() {
		sign, exp, signif := f.Decode()
		spew.Dump(struct {
			Sign   uint
			Exp    int
			Signif string
		}{sign, exp, signif.String()})
	}
}
