package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/velora-dev/patternexp"
)

// Version information set at build time.
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "patternc",
		Short: "Compile URL-routing patterns into regular expressions",
		Long: `patternc compiles WHATWG URL Pattern pattern strings into anchored
regular expressions.

Patterns mix literal text with ":name" placeholders, "*" wildcards,
"(...)" custom regular-expression groups, "{...}" grouping and the
"?", "*", "+" repetition modifiers:

  patternc compile -d / -p / "/users/:id"
  patternc compile -d / -p / "/assets/*"
  patternc gen -d / -p / --package routes -o routes_gen.go user=/users/:id`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		compileCmd(),
		normalizeCmd(),
		genCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func compileCmd() *cobra.Command {
	var flags compileFlags

	cmd := &cobra.Command{
		Use:   "compile <pattern>",
		Short: "Print the regular expression for a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			regexp, names, err := patternexp.Compile(args[0], opts)
			if err != nil {
				return err
			}

			fmt.Println(regexp)
			if len(names) > 0 {
				fmt.Println("groups:", strings.Join(names, ", "))
			}

			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func normalizeCmd() *cobra.Command {
	var flags compileFlags

	cmd := &cobra.Command{
		Use:   "normalize <pattern>",
		Short: "Print the canonical form of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			normalized, err := patternexp.Normalize(args[0], opts)
			if err != nil {
				return err
			}

			fmt.Println(normalized)

			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the patternc version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("patternc", version)
		},
	}
}

// compileFlags holds the pattern compilation flags shared by the compile,
// normalize and gen commands.
type compileFlags struct {
	delimiter  string
	prefix     string
	ignoreCase bool
}

func (f *compileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.delimiter, "delimiter", "d", "", "segment delimiter character, e.g. / for pathnames")
	cmd.Flags().StringVarP(&f.prefix, "prefix", "p", "", "placeholder prefix character, e.g. / for pathnames")
	cmd.Flags().BoolVar(&f.ignoreCase, "ignore-case", false, "generate a case-insensitive expression")
}

func (f *compileFlags) options() (patternexp.Options, error) {
	var opts patternexp.Options
	var err error

	if opts.Delimiter, err = singleRune("delimiter", f.delimiter); err != nil {
		return opts, err
	}
	if opts.Prefix, err = singleRune("prefix", f.prefix); err != nil {
		return opts, err
	}
	opts.IgnoreCase = f.ignoreCase

	return opts, nil
}

func singleRune(name, value string) (rune, error) {
	if value == "" {
		return 0, nil
	}

	runes := []rune(value)
	if len(runes) != 1 {
		return 0, fmt.Errorf("--%s must be a single character, got %q", name, value)
	}

	return runes[0], nil
}
