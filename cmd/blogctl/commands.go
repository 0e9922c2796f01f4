package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/blog-domain/internal/adapters/fixture"
	"github.com/jsamuelsen11/blog-domain/internal/adapters/memory"
	"github.com/jsamuelsen11/blog-domain/internal/platform/health"
	"github.com/jsamuelsen11/blog-domain/internal/platform/logging"
	"github.com/jsamuelsen11/blog-domain/internal/ports"
)

func newValidateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate every record of a fixture file",
		Long: "Loads FILE through the domain model and prints one line per rejected\n" +
			"record with its error kind. Exits non-zero when any record is rejected.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			report, err := rt.seed(rt.withLogger(cmd.Context()), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failures := report.Failures()
			for _, o := range failures {
				fmt.Fprintln(out, o)
			}
			if len(failures) > 0 {
				fmt.Fprintf(out, "%d of %d records rejected\n", len(failures), len(report.Outcomes))
				return errRejected
			}
			fmt.Fprintf(out, "ok: %d records\n", len(report.Outcomes))
			return nil
		},
	}
}

// reportOutput is the JSON document printed by the report command.
type reportOutput struct {
	Counts   map[string]int      `json:"counts"`
	Rejected []string            `json:"rejected,omitempty"`
	Posts    []ports.PostSummary `json:"posts"`
	Popular  []ports.PopularPost `json:"popular"`
}

func newReportCmd(opts *globalOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "report FILE",
		Short: "Seed a fixture and print the published and popular posts as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rt, err := bootstrap(ctx, opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()
			ctx = rt.withLogger(ctx)

			report, err := rt.seed(ctx, args[0])
			if err != nil {
				return err
			}
			if strict && !report.OK() {
				for _, o := range report.Failures() {
					fmt.Fprintln(cmd.ErrOrStderr(), o)
				}
				return errRejected
			}

			registry := do.MustInvoke[ports.HealthRegistry](rt.injector)
			if err := checkHealth(ctx, registry); err != nil {
				return err
			}

			svc := do.MustInvoke[ports.BlogService](rt.injector)
			posts, err := svc.ListPosts(ctx)
			if err != nil {
				return fmt.Errorf("listing posts: %w", err)
			}
			popular, err := svc.ListPopularPosts(ctx)
			if err != nil {
				return fmt.Errorf("listing popular posts: %w", err)
			}

			return writeJSON(cmd.OutOrStdout(), reportOutput{
				Counts:   do.MustInvoke[*memory.Store](rt.injector).Counts(),
				Rejected: outcomeLines(report.Failures()),
				Posts:    posts,
				Popular:  popular,
			})
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of reporting when any record is rejected")
	return cmd
}

func newShowCmd(opts *globalOptions) *cobra.Command {
	var postPK, viewerPK int64

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Seed a fixture and print one post as seen by a viewer",
		Long: "Seeds FILE, then fetches the post as the viewer would, recording a view\n" +
			"unless the viewer is the author or viewed it recently.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rt, err := bootstrap(ctx, opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()
			ctx = rt.withLogger(ctx)

			if _, err := rt.seed(ctx, args[0]); err != nil {
				return err
			}

			svc := do.MustInvoke[ports.BlogService](rt.injector)
			detail, err := svc.GetPost(ctx, postPK, viewerPK)
			if err != nil {
				return fmt.Errorf("showing post %d: %w", postPK, err)
			}
			return writeJSON(cmd.OutOrStdout(), detail)
		},
	}

	cmd.Flags().Int64Var(&postPK, "post", 0, "primary key of the post (required)")
	cmd.Flags().Int64Var(&viewerPK, "viewer", 0, "primary key of the viewing user (required)")
	_ = cmd.MarkFlagRequired("post")
	_ = cmd.MarkFlagRequired("viewer")
	return cmd
}

// checkHealth runs every registered checker and fails if any is unhealthy.
func checkHealth(ctx context.Context, registry ports.HealthRegistry) error {
	err := health.Err(registry.CheckAll(ctx))
	if err != nil {
		logging.FromContext(ctx).ErrorContext(ctx, "health check failed", slog.Any("error", err))
	}
	return err
}

func outcomeLines(outcomes []fixture.Outcome) []string {
	lines := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		lines = append(lines, o.String())
	}
	return lines
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
