package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vetclinic/portal/internal/core/authz"
	"github.com/vetclinic/portal/internal/core/domain"
)

// NewPolicyCommand creates the policy command and its subcommands, which
// print and audit the compiled-in access policy.
func NewPolicyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Inspect the compiled-in access policy",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "routes",
		Short: "List route declarations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printRoutes(cmd.OutOrStdout(), rootOpts.Format)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "features",
		Short: "List the feature permission table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printFeatures(cmd.OutOrStdout(), rootOpts.Format)
		},
	})

	var role string
	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Show the navigation menu of a role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := domain.ParseRole(role)
			if err != nil {
				return err
			}
			return printMenu(cmd.OutOrStdout(), rootOpts.Format, r)
		},
	}
	menuCmd.Flags().StringVar(&role, "role", "", "role wire value (Admin, Veterinario, Recepcionista, Cliente)")
	_ = menuCmd.MarkFlagRequired("role")
	cmd.AddCommand(menuCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Verify the policy is consistent",
		Long: `Verify the compiled-in policy: the route table is well formed, every
role's home admits that role, and every menu entry is a screen the guard
authorizes for the roles that see it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := CheckPolicy()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range problems {
				fmt.Fprintln(out, "✗", p)
			}
			if len(problems) > 0 {
				return fmt.Errorf("policy check failed: %d problem(s)", len(problems))
			}
			fmt.Fprintln(out, "✓ policy consistent")
			return nil
		},
	})

	return cmd
}

// CheckPolicy builds the default guard and checks every role's menu against
// it. A table that cannot be built at all is returned as err.
func CheckPolicy() ([]string, error) {
	g, err := authz.NewGuard(authz.Routes(), authz.DefaultPaths)
	if err != nil {
		return nil, err
	}
	var problems []string
	for _, role := range domain.AllRoles {
		viewer := authz.SignedIn(domain.Identity{ID: "policy-check", Role: role})
		for _, entry := range authz.BuildMenu(viewer) {
			d, err := g.Evaluate(entry.Path, viewer)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s: menu entry %s: %v", role, entry.Path, err))
				continue
			}
			if d.State != authz.StateAuthorized {
				problems = append(problems, fmt.Sprintf("%s: menu entry %s is %s", role, entry.Path, d.State))
			}
		}
	}
	return problems, nil
}

func printRoutes(w io.Writer, format string) error {
	routes := authz.Routes()
	if format == "json" {
		return writeJSON(w, routes)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tROLES\tFEATURE")
	for _, r := range routes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Path, joinRoles(r.Roles), r.Feature)
	}
	return tw.Flush()
}

func printFeatures(w io.Writer, format string) error {
	table := authz.PermissionTable()
	if format == "json" {
		return writeJSON(w, table)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FEATURE\tROLES")
	for _, f := range domain.AllFeatures {
		fmt.Fprintf(tw, "%s\t%s\n", f, joinRoles(table[f]))
	}
	return tw.Flush()
}

func printMenu(w io.Writer, format string, role domain.Role) error {
	entries := authz.MenuFor(role)
	if format == "json" {
		return writeJSON(w, entries)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LABEL\tPATH\tICON")
	for _, m := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Label, m.Path, m.Icon)
	}
	return tw.Flush()
}

func joinRoles(roles []domain.Role) string {
	s := make([]string, len(roles))
	for i, r := range roles {
		s[i] = string(r)
	}
	return strings.Join(s, ",")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
