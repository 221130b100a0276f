package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erickos/bares/lib/grammar"
	"github.com/erickos/bares/lib/parser"
	"github.com/erickos/bares/lib/project"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func checkFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "Read expressions from a file, one per line",
		},
		&cli.BoolFlag{
			Name:    "tokens",
			Aliases: []string{"t"},
			Usage:   "Print the tokens recognized in each expression",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "Output format: text, yaml or json",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a " + project.FileName + " file",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
		&cli.BoolFlag{
			Name:  "ebnf",
			Usage: "Print the EBNF grammar and exit",
		},
	}
}

func init() {
	commands = append(commands, &cli.Command{
		Name:      "check",
		Usage:     "Parse expressions and report syntax errors",
		ArgsUsage: "[expression...]",
		Flags:     checkFlags(),
		Action:    check,
	})
}

// Report is the outcome of checking one expression.
type Report struct {
	Expression string         `json:"expression" yaml:"expression"`
	Result     parser.Result  `json:"result" yaml:"result"`
	Message    string         `json:"message,omitempty" yaml:"message,omitempty"`
	Tokens     []parser.Token `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

func check(c *cli.Context) error {
	if c.Bool("ebnf") {
		fmt.Fprintln(c.App.Writer, grammar.EBNF())
		return nil
	}

	conf, err := loadConfig(c)
	if err != nil {
		return cli.Exit(color.RedString("Error loading config: %s", err), 1)
	}
	if !conf.Color {
		color.NoColor = true
	}

	exprs, err := readExpressions(c)
	if err != nil {
		return cli.Exit(color.RedString("Error reading expressions: %s", err), 1)
	}

	reports := checkExpressions(exprs, conf.Tokens)
	if err := writeReports(c.App.Writer, reports, conf); err != nil {
		return cli.Exit(color.RedString("Error writing report: %s", err), 1)
	}

	failed := 0
	for _, r := range reports {
		if !r.Result.OK() {
			failed++
		}
	}
	if failed > 0 {
		return cli.Exit(color.RedString("%d of %d expressions failed", failed, len(reports)), 1)
	}
	return nil
}

func loadConfig(c *cli.Context) (project.Config, error) {
	var (
		conf project.Config
		err  error
	)
	if path := c.String("config"); path != "" {
		conf, err = project.LoadFile(path)
	} else {
		conf, err = project.Load(".")
	}
	if err != nil {
		return project.Config{}, err
	}

	if c.IsSet("format") {
		conf.Format = c.String("format")
	}
	if c.IsSet("tokens") {
		conf.Tokens = c.Bool("tokens")
	}
	if c.Bool("no-color") {
		conf.Color = false
	}
	return conf, conf.Validate()
}

func readExpressions(c *cli.Context) ([]string, error) {
	if c.Args().Present() {
		return c.Args().Slice(), nil
	}

	var r io.Reader = os.Stdin
	if filename := c.String("file"); filename != "" {
		file, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}
	return readLines(r)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}

func checkExpressions(exprs []string, withTokens bool) []Report {
	p := parser.New()
	reports := make([]Report, 0, len(exprs))
	for _, expr := range exprs {
		result := p.Parse(expr)
		r := Report{Expression: expr, Result: result}
		if err := result.Err(); err != nil {
			r.Message = err.Error()
		}
		if withTokens {
			r.Tokens = p.Tokens()
		}
		reports = append(reports, r)
	}
	return reports
}

func writeReports(w io.Writer, reports []Report, conf project.Config) error {
	switch conf.Format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(reports)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(reports); err != nil {
			return err
		}
		return encoder.Close()
	}

	for _, r := range reports {
		writeText(w, r, conf.Tokens)
	}
	return nil
}

func writeText(w io.Writer, r Report, withTokens bool) {
	fmt.Fprintf(w, ">>> Parsing %q\n", r.Expression)
	if r.Result.OK() {
		fmt.Fprintln(w, color.GreenString("    Expression successfully parsed!"))
	} else {
		fmt.Fprintln(w, color.RedString("    Error: %s", r.Message))
		fmt.Fprintf(w, "    %q\n", r.Expression)
		fmt.Fprintf(w, "    %s\n", marker(r.Expression, r.Result.Column))
	}
	if withTokens {
		strs := make([]string, len(r.Tokens))
		for i, tok := range r.Tokens {
			strs[i] = tok.String()
		}
		fmt.Fprintf(w, "    Tokens: [%s]\n", strings.Join(strs, ", "))
	}
}

// marker returns a line with a caret under column col of the quoted
// expression printed above it.
func marker(expr string, col int) string {
	quoted := len(fmt.Sprintf("%q", expr[:min(col, len(expr))])) - 1
	return strings.Repeat(" ", quoted) + color.YellowString("^")
}
