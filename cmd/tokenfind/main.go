package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fstilman/tokens/pkg/tokenfind"
)

const version = "0.1.0"

var (
	flagType      string
	flagNth       int
	flagRulesFile string
	flagLine      string
	flagMakeRules bool
	flagNoColor   bool
)

var matchColor = color.New(color.FgRed, color.Bold)

var rootCmd = &cobra.Command{
	Use:   "tokenfind",
	Short: "Find the Nth occurrence of a named token pattern on a line of text",
	Long: `tokenfind locates tokens (numbers, emails, IP addresses, dates, ...)
on single lines of text using a configurable set of named regex patterns.

With --type any (the default), each pattern is tried in its configured
order and the first one that matches wins. The matched text is printed to
stdout so it can be captured by the surrounding shell.

Lines are read from stdin unless --line is given. Exit codes: 0 if at
least one line matched, 1 if nothing matched, 2 on error.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagType, "type", "any", "token type to search for, or \"any\"")
	rootCmd.Flags().IntVar(&flagNth, "nth", 1, "which occurrence to select (1-based)")
	rootCmd.Flags().StringVar(&flagRulesFile, "rules", "", "YAML rules file (defaults to the built-in token set)")
	rootCmd.Flags().StringVar(&flagLine, "line", "", "search this line instead of reading stdin")
	rootCmd.Flags().BoolVar(&flagMakeRules, "make-rules", false, "write the default rules YAML to stdout and exit")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable highlighted output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tokenfind: %v\n", err)
		os.Exit(2)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagMakeRules {
		return writeDefaultRules(os.Stdout)
	}

	rules := tokenfind.DefaultRules()
	if flagRulesFile != "" {
		var err error
		rules, err = tokenfind.LoadRulesFile(flagRulesFile)
		if err != nil {
			return err
		}
	}

	reg, err := tokenfind.NewRegistryFromRules(rules)
	if err != nil {
		return err
	}

	if flagNoColor {
		color.NoColor = true
	}

	found, err := search(os.Stdout, reg, rules, cmd.Flags().Changed("line"))
	if err != nil {
		return err
	}
	if !found {
		// No match is a routine outcome: exit 1, no message.
		os.Exit(1)
	}
	return nil
}

// search runs the selection over --line, or over each stdin line in turn,
// and reports whether anything matched.
func search(out io.Writer, reg *tokenfind.Registry, rules *tokenfind.RulesFile, lineGiven bool) (bool, error) {
	if lineGiven {
		return searchLine(out, flagLine, reg, rules)
	}

	found := false
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		ok, err := searchLine(out, scanner.Text(), reg, rules)
		if err != nil {
			return found, err
		}
		if ok {
			found = true
		}
	}
	if err := scanner.Err(); err != nil {
		return found, fmt.Errorf("reading stdin: %w", err)
	}
	return found, nil
}

// searchLine applies the requested selection to one line and prints the
// outcome. Capture, highlight, and confirmation are all performed here,
// outside the engine.
func searchLine(out io.Writer, line string, reg *tokenfind.Registry, rules *tokenfind.RulesFile) (bool, error) {
	var m *tokenfind.Match
	var err error

	if flagType == "any" || flagType == "" {
		m, err = tokenfind.SelectAny(line, reg, flagNth)
	} else {
		m, err = tokenfind.SelectByType(line, reg, tokenfind.Type(flagType), flagNth)
	}
	if err != nil {
		return false, err
	}
	if m == nil {
		return false, nil
	}

	fmt.Fprintf(out, "%s\t%d\t%d\t%s\n", m.Type, m.Span.Start, m.Span.End, m.Text)
	if rules.Highlight {
		fmt.Fprintf(os.Stderr, "%s%s%s\n",
			line[:m.Span.Start], matchColor.Sprint(m.Text), line[m.Span.End:])
	}
	if rules.Verbose {
		fmt.Fprintf(os.Stderr, "matched %s at %d-%d\n", m.Type, m.Span.Start, m.Span.End)
	}
	return true, nil
}

// writeDefaultRules outputs the built-in token set in YAML format so it
// can be saved and edited as a starting rules file.
func writeDefaultRules(out io.Writer) error {
	yamlBytes, err := yaml.Marshal(tokenfind.DefaultRules())
	if err != nil {
		return fmt.Errorf("failed to marshal default rules to YAML: %w", err)
	}
	_, err = out.Write(yamlBytes)
	return err
}
