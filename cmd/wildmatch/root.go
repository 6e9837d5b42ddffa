package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coregx/wildmatch"
)

var (
	wildcardFlag string
	fileFlag     string
	countFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "wildmatch [flags] PATTERN [TEXT]",
	Short: "find wildcard pattern matches in text",
	Long: `wildmatch reports every offset at which a pattern with single-character
wildcards matches a text.

The text comes from the second argument, from --file, or from stdin. With no
arguments at all, the pattern and text are read as the first two
whitespace-delimited tokens on stdin. Offsets are 0-indexed, one per line.`,
	Example: `  wildmatch 'a?c' abcaac
  wildmatch --wildcard '_' 'a_c' abcaac
  wildmatch --count 'ab?' --file corpus.txt
  printf 'a?c abcaac' | wildmatch`,
	Args:          cobra.RangeArgs(0, 2),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&wildcardFlag, "wildcard", "w", "?", "wildcard character")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "read text from file instead of argument or stdin")
	rootCmd.Flags().BoolVarP(&countFlag, "count", "c", false, "print only the number of matches")
}

func run(cmd *cobra.Command, args []string) error {
	if len(wildcardFlag) != 1 {
		return fmt.Errorf("wildcard must be a single character, got %q", wildcardFlag)
	}

	pattern, text, err := resolveInputs(cmd, args)
	if err != nil {
		return err
	}

	offsets := wildmatch.FindAll(pattern, text, wildcardFlag[0])

	out := cmd.OutOrStdout()
	if countFlag {
		fmt.Fprintln(out, len(offsets))
		return nil
	}
	for _, off := range offsets {
		fmt.Fprintln(out, off)
	}
	return nil
}

func resolveInputs(cmd *cobra.Command, args []string) (pattern, text string, err error) {
	switch len(args) {
	case 2:
		if fileFlag != "" {
			return "", "", fmt.Errorf("--file conflicts with a TEXT argument")
		}
		return args[0], args[1], nil

	case 1:
		pattern = args[0]
		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return "", "", fmt.Errorf("reading text: %w", err)
			}
			return pattern, strings.TrimSuffix(string(data), "\n"), nil
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return pattern, strings.TrimSuffix(string(data), "\n"), nil

	default:
		// Token form: pattern and text as the first two whitespace-delimited
		// tokens on stdin.
		if fileFlag != "" {
			return "", "", fmt.Errorf("--file requires a PATTERN argument")
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		tokens := strings.Fields(string(data))
		if len(tokens) < 2 {
			return "", "", fmt.Errorf("expected pattern and text on stdin, got %d token(s)", len(tokens))
		}
		return tokens[0], tokens[1], nil
	}
}
