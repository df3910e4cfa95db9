package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amirasaad/moneykit/infra/initializer"
	"github.com/amirasaad/moneykit/pkg/money"
	"github.com/amirasaad/moneykit/pkg/validator"
	"github.com/fatih/color"
)

var (
	errUsage   = errors.New("usage error")
	errInvalid = errors.New("invalid values")
)

const usage = `Usage: moneyctl <command> [flags] [arguments]

Commands:
  new <cents> [currency]              build a value, using the default currency if allowed
  parse <value>                       show the cents and currency of a value
  format [flags] <value>              render a value for humans
  add <a> <b>                         add two values
  sub <a> <b>                         subtract b from a
  split [-round-up] <value> <parts>   divide a value into parts
  validate [flags] [values...]        validate values, or stdin lines
  currency <code>                     show a currency symbol
  country <code>                      show the currency of a country

Values use the canonical form "10.40 EUR". Put "--" before negative values.`

type cli struct {
	deps            *initializer.Deps
	in              io.Reader
	out             io.Writer
	stdinIsTerminal bool

	good, bad, faint *color.Color
}

func newCLI(deps *initializer.Deps, in io.Reader, out io.Writer) *cli {
	c := &cli{
		deps:  deps,
		in:    in,
		out:   out,
		good:  color.New(color.FgGreen, color.Bold),
		bad:   color.New(color.FgRed, color.Bold),
		faint: color.New(color.Faint),
	}
	c.setColor(false)
	return c
}

func (c *cli) setColor(enabled bool) {
	for _, col := range []*color.Color{c.good, c.bad, c.faint} {
		if enabled {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
}

func (c *cli) run(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(c.out, usage)
		return errUsage
	}
	cmds := map[string]func([]string) error{
		"new":      c.newValue,
		"parse":    c.parse,
		"format":   c.format,
		"add":      func(a []string) error { return c.combine("add", a) },
		"sub":      func(a []string) error { return c.combine("sub", a) },
		"split":    c.split,
		"validate": c.validate,
		"currency": c.currency,
		"country":  c.country,
	}
	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		fmt.Fprintln(c.out, usage)
		return nil
	}
	cmd, ok := cmds[name]
	if !ok {
		fmt.Fprintf(c.out, "Unknown command: %s\n\n%s\n", name, usage)
		return errUsage
	}
	return cmd(args[1:])
}

func (c *cli) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.out)
	return fs
}

// parseArgs parses flags and checks the number of positional arguments.
func parseArgs(fs *flag.FlagSet, args []string, want int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}
	if want >= 0 && fs.NArg() != want {
		return nil, fmt.Errorf("%w: %s expects %d argument(s), got %d", errUsage, fs.Name(), want, fs.NArg())
	}
	return fs.Args(), nil
}

func (c *cli) newValue(args []string) error {
	fs := c.flagSet("new")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		return fmt.Errorf("%w: new expects <cents> [currency]", errUsage)
	}
	cents, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: cents must be an integer, got %q", errUsage, fs.Arg(0))
	}
	m, err := c.deps.Policy.New(cents, money.Code(strings.ToUpper(fs.Arg(1))))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, m)
	return nil
}

func (c *cli) parse(args []string) error {
	rest, err := parseArgs(c.flagSet("parse"), args, 1)
	if err != nil {
		return err
	}
	m, err := money.Parse(rest[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s %s\n", c.faint.Sprint("cents:"), strconv.FormatInt(m.Cents(), 10))
	fmt.Fprintf(c.out, "%s %s\n", c.faint.Sprint("currency:"), m.Currency())
	fmt.Fprintf(c.out, "%s %s\n", c.faint.Sprint("canonical:"), m)
	return nil
}

func (c *cli) format(args []string) error {
	fs := c.flagSet("format")
	locale := fs.String("locale", "", "display locale, e.g. nl-NL (default from MONEY_LOCALE)")
	sign := fs.Bool("sign", false, "prefix positive amounts with +")
	compact := fs.Bool("compact", false, "remove spaces")
	skipDecimals := fs.Bool("skip-decimals", false, "omit the cents of whole amounts")
	html := fs.Bool("html", false, "use non-breaking spaces")
	rest, err := parseArgs(fs, args, 1)
	if err != nil {
		return err
	}
	m, err := money.Parse(rest[0])
	if err != nil {
		return err
	}

	opts := c.deps.DisplayOptions()
	if *locale != "" {
		opts = append(opts, money.WithLocale(*locale))
	}
	if *sign {
		opts = append(opts, money.WithExplicitSign())
	}
	if *compact {
		opts = append(opts, money.WithCompact())
	}
	if *skipDecimals {
		opts = append(opts, money.WithSkipDecimals())
	}
	if *html {
		fmt.Fprintln(c.out, m.HTML(opts...))
		return nil
	}
	fmt.Fprintln(c.out, m.Display(opts...))
	return nil
}

func (c *cli) combine(op string, args []string) error {
	rest, err := parseArgs(c.flagSet(op), args, 2)
	if err != nil {
		return err
	}
	a, err := money.Parse(rest[0])
	if err != nil {
		return err
	}
	b, err := money.Parse(rest[1])
	if err != nil {
		return err
	}
	var result money.Money
	if op == "sub" {
		result, err = a.Sub(b)
	} else {
		result, err = a.Add(b)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, result)
	return nil
}

func (c *cli) split(args []string) error {
	fs := c.flagSet("split")
	roundUp := fs.Bool("round-up", false, "round the share up to cover the whole amount")
	rest, err := parseArgs(fs, args, 2)
	if err != nil {
		return err
	}
	m, err := money.Parse(rest[0])
	if err != nil {
		return err
	}
	parts, err := strconv.Atoi(rest[1])
	if err != nil {
		return fmt.Errorf("%w: parts must be an integer, got %q", errUsage, rest[1])
	}
	shares, err := m.Allocate(parts)
	if err != nil {
		return err
	}
	share, err := m.Div(money.Int(int64(parts)), *roundUp)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s %s\n", c.faint.Sprint("share:"), share)
	for i, s := range shares {
		fmt.Fprintf(c.out, "%s %s\n", c.faint.Sprintf("#%d:", i+1), s)
	}
	return nil
}

func (c *cli) validate(args []string) error {
	fs := c.flagSet("validate")
	positive := fs.Bool("positive", false, "reject negative values")
	minCents := fs.Int64("min-cents", 0, "reject values below this many cents")
	code := fs.String("currency", "", "require this currency")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	var opts []validator.Option
	if *positive {
		opts = append(opts, validator.Positive())
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "min-cents" {
			opts = append(opts, validator.MinCents(*minCents))
		}
	})
	if *code != "" {
		opts = append(opts, validator.Currency(money.Code(strings.ToUpper(*code))))
	}

	values := fs.Args()
	if len(values) == 0 {
		if c.stdinIsTerminal {
			return fmt.Errorf("%w: no values given", errUsage)
		}
		lines, err := readLines(c.in)
		if err != nil {
			return err
		}
		values = lines
	}

	record := validator.RecordFunc(func(name string) (string, bool) {
		i, err := strconv.Atoi(name)
		if err != nil || i < 0 || i >= len(values) {
			return "", false
		}
		return values[i], true
	})
	fields := make([]string, len(values))
	for i := range values {
		fields[i] = strconv.Itoa(i)
	}
	errs := validator.Messages{}
	valid := c.deps.Validator.Validate(record, fields, &errs, opts...)

	for i, v := range values {
		msgs := errs[fields[i]]
		if len(msgs) == 0 {
			fmt.Fprintf(c.out, "%s %s\n", c.good.Sprint("ok"), v)
			continue
		}
		fmt.Fprintf(c.out, "%s %s: %s\n", c.bad.Sprint("invalid"), v, strings.Join(msgs, "; "))
	}
	if !valid {
		return errInvalid
	}
	return nil
}

func (c *cli) currency(args []string) error {
	rest, err := parseArgs(c.flagSet("currency"), args, 1)
	if err != nil {
		return err
	}
	code := strings.ToUpper(rest[0])
	symbol, ok := c.deps.Catalog.CurrencyToSymbol(code)
	if !ok {
		return fmt.Errorf("%w: %q", money.ErrUnknownCurrency, code)
	}
	if symbol == "" {
		symbol = c.faint.Sprint("(no symbol)")
	}
	fmt.Fprintf(c.out, "%s %s\n", code, symbol)
	return nil
}

func (c *cli) country(args []string) error {
	rest, err := parseArgs(c.flagSet("country"), args, 1)
	if err != nil {
		return err
	}
	code, ok := c.deps.Catalog.CountryToCurrency(rest[0])
	if !ok {
		return fmt.Errorf("no currency for country %q", rest[0])
	}
	fmt.Fprintln(c.out, code)
	return nil
}

// readLines returns the non-blank lines of r, trimmed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
