package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"newsvendor/adapters/dist"
	"newsvendor/adapters/export"
	"newsvendor/adapters/sampler"
	"newsvendor/app"
	"newsvendor/domain/model"
	"newsvendor/internal"
	"newsvendor/internal/config"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type cli struct {
	cfg    *config.Config
	log    *internal.Logger
	solver *app.Solver
	eval   *app.Evaluator
	sweep  *app.Sweep

	// demand and economics flags, shared by every command
	mean    float64
	stdDev  float64
	price   float64
	cost    float64
	salvage float64
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	solver := app.NewSolver(dist.NewGonum())
	c := &cli{
		cfg:    cfg,
		log:    internal.NewDefaultLogger(),
		solver: solver,
		eval:   app.NewEvaluator(solver, sampler.NewSeeded()),
	}
	c.sweep = app.NewSweep(c.eval)

	rootCmd := &cobra.Command{
		Use:   "newsvendor",
		Short: "Single-period order quantity optimization under normal demand",
	}
	rootCmd.PersistentFlags().Float64Var(&c.mean, "mean", 0, "mean demand")
	rootCmd.PersistentFlags().Float64Var(&c.stdDev, "std-dev", 0, "demand standard deviation")
	rootCmd.PersistentFlags().Float64Var(&c.price, "price", 0, "unit selling price")
	rootCmd.PersistentFlags().Float64Var(&c.cost, "cost", 0, "unit cost")
	rootCmd.PersistentFlags().Float64Var(&c.salvage, "salvage", 0, "unit salvage value")

	rootCmd.AddCommand(
		c.newParamsCmd(),
		c.newSolveCmd(),
		c.newEvaluateCmd(),
		c.newSweepCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (c *cli) params() model.Params {
	return model.NewParams(c.mean, c.stdDev, c.price, c.cost, c.salvage)
}

func (c *cli) simConfig(trials, simulations int, seed int64) app.SimConfig {
	if trials == 0 {
		trials = c.cfg.Trials
	}
	if simulations == 0 {
		simulations = c.cfg.Simulations
	}
	if seed == 0 {
		seed = c.cfg.Seed
	}
	return app.SimConfig{Simulations: simulations, Trials: trials, Seed: seed}
}

func (c *cli) newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Show the model parameters and derived critical ratio",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := c.params()
			printLabels(p.Describe())
			fmt.Printf("%-28s %v\n", "Underage Cost (Cu)", p.UnderageCost())
			fmt.Printf("%-28s %v\n", "Overage Cost (Co)", p.OverageCost())
			fmt.Printf("%-28s %v\n", "Critical Ratio", p.CriticalRatio())
			return nil
		},
	}
}

func (c *cli) newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Compute the profit-maximizing order quantity analytically",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := c.params()
			plan, err := c.solver.OptimalQuantity(p)
			if err != nil {
				return err
			}
			stockout, err := c.solver.StockoutProbability(p, plan.OrderQuantity)
			if err != nil {
				return err
			}
			printLabels(plan.Labels())
			fmt.Printf("%-28s %v\n", "Stockout Probability", stockout)
			return nil
		},
	}
}

func (c *cli) newEvaluateCmd() *cobra.Command {
	var (
		quantity     float64
		serviceLevel float64
		trials       int
		simulations  int
		seed         int64
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Simulate performance at the optimal, a service-level, or a chosen quantity",
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.NewString()
			p := c.params()
			cfg := c.simConfig(trials, simulations, seed)
			ctx := context.Background()

			var (
				report model.Report
				err    error
			)
			switch {
			case cmd.Flags().Changed("quantity"):
				c.log.Info("run %s: evaluating chosen quantity %v", runID, quantity)
				report, err = c.eval.EvaluateAtQuantity(ctx, p, quantity, cfg)
			case cmd.Flags().Changed("service-level"):
				c.log.Info("run %s: evaluating service level %v", runID, serviceLevel)
				report, err = c.eval.EvaluateAtServiceLevel(ctx, p, serviceLevel, cfg)
			default:
				c.log.Info("run %s: evaluating optimal quantity", runID)
				report, err = c.eval.EvaluateAtOptimalQuantity(ctx, p, cfg)
			}
			if err != nil {
				return err
			}

			printLabels(report.Labels())
			return nil
		},
	}

	cmd.Flags().Float64Var(&quantity, "quantity", 0, "evaluate this order quantity instead of the optimal")
	cmd.Flags().Float64Var(&serviceLevel, "service-level", 0, "evaluate the quantity for this in-stock probability")
	cmd.Flags().IntVar(&trials, "trials", 0, "trials per simulation")
	cmd.Flags().IntVar(&simulations, "simulations", 0, "simulation batches")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = nondeterministic)")
	return cmd
}

func (c *cli) newSweepCmd() *cobra.Command {
	var (
		profile string
		bound   float64
		step    int
		workers int
		trials  int
		seed    int64
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate a range of candidate quantities",
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.NewString()
			p := c.params()

			if !cmd.Flags().Changed("bound") {
				bound = c.cfg.UpperStdDevBound
			}
			if step == 0 {
				step = c.cfg.StepSize
			}
			if workers == 0 {
				workers = c.cfg.Workers
			}
			cfg := app.SweepConfig{
				UpperStdDevBound: app.Bound(bound),
				StepSize:         step,
				Workers:          workers,
				Sim:              c.simConfig(trials, 0, seed),
			}
			ctx := context.Background()

			switch profile {
			case "fill":
				c.log.Info("run %s: fill-rate sweep, step %d", runID, step)
				points, err := c.sweep.FillRateCurve(ctx, p, cfg)
				if err != nil {
					return err
				}
				fmt.Printf("%-10s %s\n", "Quantity", "Fill Rate")
				for _, pt := range points {
					fmt.Printf("%-10d %.4f\n", pt.Quantity, pt.FillRate)
				}
				if outFile != "" {
					return export.WriteFillRateCurve(outFile, points)
				}
			case "profit":
				c.log.Info("run %s: profit sweep, step %d", runID, step)
				points, err := c.sweep.ProfitProfile(ctx, p, cfg)
				if err != nil {
					return err
				}
				fmt.Printf("%-10s %-12s %-12s %-12s %-10s %-10s %s\n",
					"Quantity", "Avg Profit", "Max Profit", "Min Profit", "Sold", "Lost", "Leftover")
				for _, pt := range points {
					fmt.Printf("%-10d %-12.2f %-12.2f %-12.2f %-10.0f %-10.0f %.0f\n",
						pt.Quantity, pt.AvgProfit, pt.MaxProfit, pt.MinProfit,
						pt.AvgUnitsSold, pt.AvgLostSales, pt.AvgLeftover)
				}
				if outFile != "" {
					return export.WriteProfitProfile(outFile, points)
				}
			default:
				return fmt.Errorf("unknown profile %q: use fill or profit", profile)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "fill", "sweep profile: fill or profit")
	cmd.Flags().Float64Var(&bound, "bound", 0, "upper bound in standard deviations above mean demand")
	cmd.Flags().IntVar(&step, "step", 0, "candidate quantity step size")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent candidate evaluations")
	cmd.Flags().IntVar(&trials, "trials", 0, "trials per candidate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = nondeterministic)")
	cmd.Flags().StringVar(&outFile, "export", "", "write the table to this .xlsx file")
	return cmd
}

// printLabels renders a labeled mapping in stable alphabetical order.
func printLabels(labels map[string]float64) {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%-28s %v\n", k, labels[k])
	}
}
