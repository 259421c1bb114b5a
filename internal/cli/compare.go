package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plocket/llm-survey/internal/adapter/analyzer"
	"github.com/plocket/llm-survey/internal/adapter/report"
	"github.com/plocket/llm-survey/internal/adapter/scorer"
	"github.com/plocket/llm-survey/internal/domain"
)

var tokenizeUnique bool

var compareCmd = &cobra.Command{
	Use:   "compare <first> <second>",
	Short: "Show the ratios computed for one pair of responses",
	Long: `Tokenize two responses and print the difference and overlap ratios
the scorer would record for them, comparing the first against the second.

Examples:
  consistency compare "cats and dogs" "cats and birds"`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <text>",
	Short: "Print the words kept after stopword removal",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(tokenizeCmd)
	tokenizeCmd.Flags().BoolVarP(&tokenizeUnique, "unique", "u", false, "print each word once, sorted")
}

func runCompare(cmd *cobra.Command, args []string) error {
	tokenizer := analyzer.NewTokenizer(GetConfig().Analyzer.ExtraStopwords)

	a := tokenizer.Tokenize(args[0])
	b := tokenizer.Tokenize(args[1])

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "first:  %s\n", joinSet(a))
	fmt.Fprintf(out, "second: %s\n", joinSet(b))

	res, ok := scorer.Compare(a, b)
	if !ok {
		fmt.Fprintln(out, "both responses are empty after stopword removal; ratios are undefined")
		return nil
	}
	fmt.Fprintf(out, "diff ratio: %s\n", report.FormatValue(res.DiffRatio))
	fmt.Fprintf(out, "same ratio: %s\n", report.FormatValue(res.SameRatio))
	return nil
}

func runTokenize(cmd *cobra.Command, args []string) error {
	tokenizer := analyzer.NewTokenizer(GetConfig().Analyzer.ExtraStopwords)

	if tokenizeUnique {
		fmt.Fprintln(cmd.OutOrStdout(), joinSet(tokenizer.Tokenize(args[0])))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tokenizer.Words(args[0]), " "))
	return nil
}

func joinSet(s domain.TokenSet) string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return "{" + strings.Join(words, ", ") + "}"
}
