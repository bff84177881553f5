// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ratdom/dominance"
	"github.com/katalvlaran/ratdom/model"
)

func (a *app) statesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "List the states of the urn model in index order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, s := range model.States(a.cfg.Size) {
				fmt.Fprintf(out, "%d\t%s\n", i, s)
			}
			return nil
		},
	}
}

func (a *app) matrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Print the non-zero entries of the transition matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.TransitionMatrix(a.cfg.Size)
			if err != nil {
				return err
			}
			states := model.States(a.cfg.Size)
			out := cmd.OutOrStdout()
			for i := 0; i < m.Rows(); i++ {
				for j, v := range m.Row(i) {
					if v.IsZero() {
						continue
					}
					fmt.Fprintf(out, "%s -> %s: %s\n", states[i], states[j], v)
				}
			}
			return nil
		},
	}
}

func (a *app) relationCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "relation",
		Short: "Compute the symbolic dominance relation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.TransitionMatrix(a.cfg.Size)
			if err != nil {
				return err
			}
			start := time.Now()
			r, err := dominance.Compute(cmd.Context(), m,
				dominance.WithRounds(a.cfg.Rounds),
				dominance.WithWorkers(a.cfg.Workers),
				dominance.WithLogger(a.logger))
			if err != nil {
				return err
			}
			a.logger.Info("relation computed",
				zap.Int("size", a.cfg.Size), zap.Int("states", r.Size()),
				zap.Int("rounds", a.cfg.Rounds), zap.Duration("elapsed", time.Since(start)))

			return a.report(cmd, r, strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail unless the relation is a partial order")

	return cmd
}

func (a *app) sampleCmd() *cobra.Command {
	var compare bool
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Compute the relation numerically at the configured λ samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.TransitionMatrix(a.cfg.Size)
			if err != nil {
				return err
			}
			lambdas, err := a.cfg.Lambdas()
			if err != nil {
				return err
			}
			r, err := dominance.Sampled(cmd.Context(), m, lambdas, a.cfg.Powers,
				dominance.WithWorkers(a.cfg.Workers), dominance.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if err := a.report(cmd, r, false); err != nil {
				return err
			}
			if !compare {
				return nil
			}
			sym, err := dominance.Compute(cmd.Context(), m,
				dominance.WithRounds(a.cfg.Rounds), dominance.WithWorkers(a.cfg.Workers), dominance.WithLogger(a.logger))
			if err != nil {
				return err
			}
			diff := r.Diff(sym)
			fmt.Fprintf(cmd.OutOrStdout(), "disagreements with symbolic: %d %v\n", len(diff), diff)
			return nil
		},
	}
	cmd.Flags().BoolVar(&compare, "compare", false, "Also compute the symbolic relation and list differing cells")

	return cmd
}

// report prints r, its partial-order status, a linear extension and the
// covering pairs labelled with states.
func (a *app) report(cmd *cobra.Command, r dominance.Relation, strict bool) error {
	out := cmd.OutOrStdout()
	states := model.States(a.cfg.Size)
	fmt.Fprint(out, r)

	if err := r.Validate(); err != nil {
		if strict {
			return err
		}
		fmt.Fprintf(out, "partial order: no (%v)\n", err)
		return nil
	}
	fmt.Fprintln(out, "partial order: yes")

	order, err := r.LinearExtension(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprint(out, "order:")
	for _, i := range order {
		fmt.Fprintf(out, " %s", states[i])
	}
	fmt.Fprintln(out)

	h, err := r.Hasse()
	if err != nil {
		return err
	}
	for _, e := range h.Edges() {
		fmt.Fprintf(out, "%s > %s\n", states[e.From], states[e.To])
	}

	return nil
}
