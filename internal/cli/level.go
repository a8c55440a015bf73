package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/faizmokh/pulse/internal/wellbeing"
)

func newLevelCommand() *cobra.Command {
	domains := map[wellbeing.Domain]*int{
		wellbeing.DomainPhysical:  new(int),
		wellbeing.DomainEmotional: new(int),
		wellbeing.DomainCognitive: new(int),
	}

	cmd := &cobra.Command{
		Use:   "level <score>",
		Short: "Classify a burnout test score without contacting the portal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid score %q: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			level := wellbeing.ClassifyTotal(total)
			fmt.Fprintf(out, "Score %d: %s\n", total, level.Label())

			for _, d := range []wellbeing.Domain{wellbeing.DomainPhysical, wellbeing.DomainEmotional, wellbeing.DomainCognitive} {
				if !cmd.Flags().Changed(string(d)) {
					continue
				}
				score := *domains[d]
				fmt.Fprintf(out, "%s %d/%d: %s (%d%%)\n",
					d, score, d.Max(), wellbeing.ClassifyDomain(d, score).ShortLabel(), wellbeing.FillFor(d, score))
			}

			fmt.Fprintln(out, wellbeing.RecommendationFor(&level).Headline)
			return nil
		},
	}

	for d, score := range domains {
		cmd.Flags().IntVar(score, string(d), 0, fmt.Sprintf("%s domain score (0-%d)", d, d.Max()))
	}
	return cmd
}
