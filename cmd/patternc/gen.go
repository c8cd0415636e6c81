package main

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
	"github.com/spf13/cobra"
	"github.com/velora-dev/patternexp"
)

func genCmd() *cobra.Command {
	var flags compileFlags
	var pkg, output string

	cmd := &cobra.Command{
		Use:   "gen <name=pattern>...",
		Short: "Generate Go source with precompiled patterns",
		Long: `gen compiles each name=pattern argument and writes a Go source file
declaring, for every pattern, a regexp.MustCompile variable <Name>Pattern
and a <Name>Groups variable holding its capture-group names in group order.

Example:
  patternc gen -d / -p / --package routes -o routes_gen.go \
      user=/users/:id asset=/assets/*`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			f := jen.NewFile(pkg)
			f.HeaderComment("Code generated by patternc gen. DO NOT EDIT.")

			for _, arg := range args {
				name, pattern, ok := strings.Cut(arg, "=")
				if !ok || name == "" {
					return fmt.Errorf("argument %q is not of the form name=pattern", arg)
				}

				expr, groups, err := patternexp.Compile(pattern, opts)
				if err != nil {
					return fmt.Errorf("compiling %q: %w", pattern, err)
				}

				ident := exportedIdent(name)

				f.Commentf("%sPattern matches the pattern %q.", ident, pattern)
				f.Var().Id(ident + "Pattern").Op("=").Qual("regexp", "MustCompile").Call(jen.Lit(expr))

				groupValues := make([]jen.Code, len(groups))
				for i, group := range groups {
					groupValues[i] = jen.Lit(group)
				}

				f.Commentf("%sGroups holds the capture-group names of %sPattern in group order.", ident, ident)
				f.Var().Id(ident + "Groups").Op("=").Index().String().Values(groupValues...)
			}

			if output == "" {
				return f.Render(os.Stdout)
			}

			if err := f.Save(output); err != nil {
				return err
			}

			fmt.Println("wrote", output)

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&pkg, "package", "main", "package name of the generated file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// exportedIdent turns a route name like "user-profile" into an exported Go
// identifier like "UserProfile".
func exportedIdent(name string) string {
	var b strings.Builder
	upper := true

	for _, r := range name {
		switch {
		case r == '-' || r == '_' || r == ' ':
			upper = true
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
