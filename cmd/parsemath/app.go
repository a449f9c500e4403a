package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	lru "github.com/hashicorp/golang-lru"
	"github.com/jcgregorio/logger"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/zephyrtronium/parsemath"
)

// flag names
const (
	inFlagName          = "in"
	fmtFlagName         = "fmt"
	linesFlagName       = "lines"
	echoFlagName        = "echo"
	implicitMulFlagName = "implicit-mul"
	ieeeFlagName        = "ieee"
	cacheSizeFlagName   = "cache-size"
	noColorFlagName     = "no-color"
	verboseFlagName     = "verbose"
)

func newApp(stdin io.Reader, stdout io.Writer, stderr logger.SyncWriter) *cli.App {
	return &cli.App{
		Name:      "parsemath",
		Usage:     "evaluate arithmetic expressions",
		ArgsUsage: "[expression...]",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    inFlagName,
				Usage:   "input file, or - for stdin (default stdin if no args given)",
				EnvVars: []string{"PARSEMATH_IN"},
			},
			&cli.StringFlag{
				Name:    fmtFlagName,
				Value:   "%g",
				Usage:   "result formatting string",
				EnvVars: []string{"PARSEMATH_FMT"},
			},
			&cli.BoolFlag{
				Name:    linesFlagName,
				Aliases: []string{"n"},
				Usage:   "parse separate input lines as separate expressions",
				EnvVars: []string{"PARSEMATH_LINES"},
			},
			&cli.BoolFlag{
				Name:    echoFlagName,
				Usage:   "print parse trees",
				EnvVars: []string{"PARSEMATH_ECHO"},
			},
			&cli.BoolFlag{
				Name:    implicitMulFlagName,
				Usage:   "allow implicit multiplication like 2(3+4)",
				EnvVars: []string{"PARSEMATH_IMPLICIT_MUL"},
			},
			&cli.BoolFlag{
				Name:    ieeeFlagName,
				Usage:   "produce infinities and NaN instead of arithmetic errors",
				EnvVars: []string{"PARSEMATH_IEEE"},
			},
			&cli.IntFlag{
				Name:    cacheSizeFlagName,
				Value:   128,
				Usage:   "number of distinct expression results to remember, 0 to disable",
				EnvVars: []string{"PARSEMATH_CACHE_SIZE"},
			},
			&cli.BoolFlag{
				Name:    noColorFlagName,
				Usage:   "do not color error messages",
				EnvVars: []string{"PARSEMATH_NO_COLOR", "NO_COLOR"},
			},
			&cli.BoolFlag{
				Name:    verboseFlagName,
				Usage:   "log debugging information to stderr",
				EnvVars: []string{"PARSEMATH_VERBOSE"},
			},
		},
		Action: func(ctx *cli.Context) error {
			log := logger.NewFromOptions(&logger.Options{
				SyncWriter:   stderr,
				IncludeDebug: ctx.Bool(verboseFlagName),
			})
			calc, err := newCalculator(ctx, log)
			if err != nil {
				return err
			}
			srcs, err := inputs(ctx, stdin)
			if err != nil {
				return err
			}
			return calc.run(srcs)
		},
	}
}

// inputs collects the expressions to evaluate: the contents of --in first,
// then each argument.
func inputs(ctx *cli.Context, stdin io.Reader) ([]string, error) {
	var srcs []string
	name := ctx.String(inFlagName)
	var in io.Reader
	switch {
	case name != "" && name != "-":
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", name)
		}
		defer f.Close()
		in = f
	case name == "-", ctx.NArg() == 0:
		name = "stdin"
		in = stdin
	}
	if in != nil {
		s, err := readExprs(in, ctx.Bool(linesFlagName))
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", name)
		}
		srcs = append(srcs, s...)
	}
	return append(srcs, ctx.Args().Slice()...), nil
}

// readExprs reads either the entire input as one expression or each non-blank
// line as its own.
func readExprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(string(b)) == "" {
			return nil, nil
		}
		return []string{string(b)}, nil
	}
	var srcs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		srcs = append(srcs, sc.Text())
	}
	return srcs, sc.Err()
}

// calculator evaluates expressions and prints their results.
type calculator struct {
	out  io.Writer
	log  *logger.Logger
	red  *color.Color
	verb string
	echo bool
	opts []parsemath.ParseOption
	// cache maps expression text to its result. It is nil if caching is
	// disabled. The parse options are fixed for a run, so the text alone
	// determines the result.
	cache *lru.Cache
}

// result is the outcome of evaluating one expression.
type result struct {
	tree string
	r    float64
	err  error
}

func newCalculator(ctx *cli.Context, log *logger.Logger) (*calculator, error) {
	c := &calculator{
		out:  ctx.App.Writer,
		log:  log,
		red:  color.New(color.FgRed),
		verb: ctx.String(fmtFlagName) + "\n",
		echo: ctx.Bool(echoFlagName),
	}
	if ctx.Bool(noColorFlagName) {
		c.red.DisableColor()
	}
	if ctx.Bool(implicitMulFlagName) {
		c.opts = append(c.opts, parsemath.ImplicitMul())
	}
	if ctx.Bool(ieeeFlagName) {
		c.opts = append(c.opts, parsemath.IEEEArithmetic())
	}
	switch n := ctx.Int(cacheSizeFlagName); {
	case n < 0:
		return nil, errors.Errorf("--%s must not be negative, got %d", cacheSizeFlagName, n)
	case n > 0:
		cache, err := lru.New(n)
		if err != nil {
			return nil, errors.Wrap(err, "creating result cache")
		}
		c.cache = cache
	}
	return c, nil
}

// run evaluates and prints each expression in order. It returns an error if
// any of them failed.
func (c *calculator) run(srcs []string) error {
	var failed int
	for _, src := range srcs {
		res := c.eval(src)
		if c.echo && res.tree != "" {
			fmt.Fprintf(c.out, "%s : ", res.tree)
		}
		if res.err != nil {
			failed++
			c.red.Fprintln(c.out, res.err)
			continue
		}
		fmt.Fprintf(c.out, c.verb, res.r)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d expressions failed", failed, len(srcs))
	}
	return nil
}

func (c *calculator) eval(src string) result {
	if c.cache != nil {
		if v, ok := c.cache.Get(src); ok {
			c.log.Debugf("cache hit for %q", src)
			return v.(result)
		}
	}
	c.log.Debugf("evaluating %q", src)
	var res result
	if c.echo {
		e, err := parsemath.Compile(src, c.opts...)
		if err != nil {
			res.err = err
		} else {
			res.tree = e.String()
			c.log.Debugf("compiled %q to %s", src, res.tree)
			res.r, res.err = e.Eval()
		}
	} else {
		res.r, res.err = parsemath.Eval(src, c.opts...)
	}
	if c.cache != nil {
		c.cache.Add(src, res)
	}
	return res
}
