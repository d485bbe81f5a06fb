package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/budget-buddy/backend/internal/application/usecase/goal"
	"github.com/budget-buddy/backend/internal/domain/entity"
	"github.com/budget-buddy/backend/internal/integration/entrypoint/dto"
)

func overviewCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Print the all-time balance and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.close()

			overview, err := a.useCases.Overview.Execute(cmd.Context())
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.output, dto.ToBudgetOverviewResponse(overview), func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintf(tw, "Balance\t%s\n", overview.Balance.StringFixed(2))
				fmt.Fprintf(tw, "Income\t%s\n", overview.TotalIncome.StringFixed(2))
				fmt.Fprintf(tw, "Expenses\t%s\n", overview.TotalExpenses.StringFixed(2))
				fmt.Fprintf(tw, "Transactions\t%d\n", overview.TransactionCount)
				return tw.Flush()
			})
		},
	}
}

func statsCmd(opts *globalOptions) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print income, expenses and savings rate for a date range",
		Long: `Print income, expenses and savings rate for the transactions dated within
--start and --end (YYYY-MM-DD, both inclusive). Without flags the current
calendar month is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (start == "") != (end == "") {
				return fmt.Errorf("--start and --end must be given together")
			}

			a, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.close()

			var stats *entity.MonthlyStats
			if start == "" {
				stats, err = a.useCases.MonthlyStats.CurrentMonth(cmd.Context())
			} else {
				var from, to time.Time
				if from, err = dto.ParseDate(start); err != nil {
					return fmt.Errorf("invalid --start: %w", err)
				}
				if to, err = dto.ParseDate(end); err != nil {
					return fmt.Errorf("invalid --end: %w", err)
				}
				stats, err = a.useCases.MonthlyStats.Execute(cmd.Context(), from, to)
			}
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.output, dto.ToMonthlyStatsResponse(stats), func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintf(tw, "Period\t%s\n", stats.Period)
				fmt.Fprintf(tw, "Income\t%s\n", stats.Income.StringFixed(2))
				fmt.Fprintf(tw, "Expenses\t%s\n", stats.Expenses.StringFixed(2))
				fmt.Fprintf(tw, "Balance\t%s\n", stats.Balance.StringFixed(2))
				fmt.Fprintf(tw, "Savings rate\t%.2f%%\n", stats.SavingsRate)
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first day of the range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "last day of the range (YYYY-MM-DD)")

	return cmd
}

func goalsCmd(opts *globalOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Print active goals with their progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.close()

			if all {
				out, err := a.useCases.ListGoals.Execute(cmd.Context(), goal.ListGoalsInput{})
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.output, dto.ToGoalListResponse(out.Goals), func(w io.Writer) error {
					tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
					fmt.Fprintln(tw, "TITLE\tSAVED\tTARGET\tDEADLINE\tDONE")
					for _, g := range out.Goals {
						fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n",
							g.Title, g.CurrentAmount.StringFixed(2), g.TargetAmount.StringFixed(2), deadline(g.Deadline), g.IsCompleted)
					}
					return tw.Flush()
				})
			}

			goals, err := a.useCases.GoalProgress.Execute(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, dto.ToGoalProgressListResponse(goals), func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "TITLE\tPROGRESS\tREMAINING\tDEADLINE\tDAYS LEFT")
				for _, g := range goals {
					daysLeft := "-"
					if g.DaysUntilDeadline != nil {
						daysLeft = fmt.Sprint(*g.DaysUntilDeadline)
					}
					fmt.Fprintf(tw, "%s\t%.2f%%\t%s\t%s\t%s\n",
						g.Goal.Title, g.ProgressPercentage, g.RemainingAmount.StringFixed(2), deadline(g.Goal.Deadline), daysLeft)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every goal, completed ones included")

	return cmd
}

func deadline(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return dto.FormatDate(*t)
}
