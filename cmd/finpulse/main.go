package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/rvillegas/finpulse/internal/calculation"
	"github.com/rvillegas/finpulse/internal/config"
	"github.com/rvillegas/finpulse/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "finpulse %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "finpulse",
	Short: "Personal finance projection and scoring engine",
	Long:  "Retirement projections, financial health scoring, payment scheduling and shopping price estimation over a YAML dataset",
}

func loadDataset(filename string) (*config.Dataset, error) {
	parser := config.NewInputParser()
	return parser.LoadFromFile(filename)
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Project retirement savings and drawdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataset, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		if dataset.RetirementPlan == nil {
			return fmt.Errorf("dataset has no retirement plan")
		}

		projector := calculation.NewRetirementProjector()
		projection := projector.Project(*dataset.RetirementPlan)
		recommendations := projector.Recommend(projection, dataset.RetirementPlan.TargetMonthlyIncome)

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "csv":
			formatter := &output.CSVFormatter{}
			out, err := formatter.FormatProjection(projection)
			if err != nil {
				return err
			}
			fmt.Print(out)
		case "json":
			formatter := &output.JSONFormatter{Pretty: true}
			out, err := formatter.Format(projection)
			if err != nil {
				return err
			}
			fmt.Println(out)
		default:
			formatter := &output.TableFormatter{Currency: dataset.Assumptions.Currency}
			fmt.Print(formatter.FormatProjection(*dataset.RetirementPlan, projection, recommendations))
		}
		return nil
	},
}

var healthCmd = &cobra.Command{
	Use:   "health [input-file]",
	Short: "Score financial health from the dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataset, err := loadDataset(args[0])
		if err != nil {
			return err
		}

		scorer := calculation.NewFinancialHealthScorer()
		report := scorer.Score(dataset.Transactions, dataset.Accounts, dataset.Debts, dataset.Budgets, dataset.AsOf())

		format, _ := cmd.Flags().GetString("format")
		if format == "json" {
			formatter := &output.JSONFormatter{Pretty: true}
			out, err := formatter.Format(report)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		}

		formatter := &output.TableFormatter{Currency: dataset.Assumptions.Currency}
		fmt.Print(formatter.FormatHealthReport(report))
		return nil
	},
}

var paymentsCmd = &cobra.Command{
	Use:   "payments [input-file]",
	Short: "List upcoming payments inside the lookahead window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataset, err := loadDataset(args[0])
		if err != nil {
			return err
		}

		days, _ := cmd.Flags().GetInt("days")
		if days <= 0 {
			days = dataset.LookaheadDays()
		}

		scheduler := calculation.NewUpcomingPaymentsScheduler()
		payments := scheduler.Schedule(dataset.Transactions, dataset.Debts, dataset.Accounts, days, dataset.AsOf())

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "csv":
			formatter := &output.CSVFormatter{}
			out, err := formatter.FormatPayments(payments)
			if err != nil {
				return err
			}
			fmt.Print(out)
		case "json":
			formatter := &output.JSONFormatter{Pretty: true}
			out, err := formatter.Format(payments)
			if err != nil {
				return err
			}
			fmt.Println(out)
		default:
			formatter := &output.TableFormatter{Currency: dataset.Assumptions.Currency}
			fmt.Print(formatter.FormatPayments(payments,
				scheduler.Total(payments), scheduler.Urgent(payments), scheduler.Overdue(payments)))
		}
		return nil
	},
}

var estimateCmd = &cobra.Command{
	Use:   "estimate [input-file]",
	Short: "Estimate shopping list prices",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataset, err := loadDataset(args[0])
		if err != nil {
			return err
		}

		estimator := calculation.NewPriceEstimator()
		perItem := make([]decimal.Decimal, 0, len(dataset.ShoppingList))
		for _, item := range dataset.ShoppingList {
			perItem = append(perItem, estimator.Estimate(item))
		}
		total := estimator.EstimateTotal(dataset.ShoppingList)

		formatter := &output.TableFormatter{Currency: dataset.Assumptions.Currency}
		fmt.Print(formatter.FormatShoppingList(dataset.ShoppingList, perItem, total))
		return nil
	},
}

func main() {
	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(paymentsCmd)
	rootCmd.AddCommand(estimateCmd)

	calculateCmd.Flags().String("format", "console", "Output format: console, csv, json")
	healthCmd.Flags().String("format", "console", "Output format: console, json")
	paymentsCmd.Flags().String("format", "console", "Output format: console, csv, json")
	paymentsCmd.Flags().Int("days", 0, "Lookahead window in days (overrides dataset)")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
