package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biglinehq/bigline/pkg/errors"
	"github.com/biglinehq/bigline/pkg/lineage"
)

// pathCommand creates the path command for shortest relationship search.
func (c *CLI) pathCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path [roster.json] [from] [to]",
		Short: "Find the shortest big/little chain between two members",
		Long: `Find the shortest big/little chain between two members.

The search treats every sponsorship as undirected, so the chain may run
through shared bigs as well as shared littles. The returned chain always
has the minimum number of hops.

Endpoint names are resolved case-insensitively against member names and
nicknames. When from/to are omitted, an interactive picker is shown.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := "", ""
			if len(args) > 1 {
				from = args[1]
			}
			if len(args) > 2 {
				to = args[2]
			}
			return c.runPath(cmd.Context(), args[0], from, to)
		},
	}

	return cmd
}

// runPath resolves endpoints and runs the search.
func (c *CLI) runPath(ctx context.Context, input, from, to string) error {
	_, g, err := readGraph(input)
	if err != nil {
		return err
	}
	if g.MemberCount() == 0 {
		return errors.New(errors.ErrCodeInvalidRoster, "roster %s has no members", input)
	}

	if from == "" {
		if from, err = pickMember(g, "Select the first member"); err != nil {
			return err
		}
	}
	if to == "" {
		if to, err = pickMember(g, "Select the second member"); err != nil {
			return err
		}
	}

	fromName, ok := g.Resolve(from)
	if !ok {
		return errors.New(errors.ErrCodeMemberNotFound, "no member matching %q", from)
	}
	toName, ok := g.Resolve(to)
	if !ok {
		return errors.New(errors.ErrCodeMemberNotFound, "no member matching %q", to)
	}

	runner := c.newRunner(true)
	defer runner.Close()

	res, err := runner.FindPath(ctx, g, fromName, toName)
	if err != nil {
		// Resolution already succeeded, so this indicates graph corruption.
		return fmt.Errorf("search %s to %s: %w", fromName, toName, err)
	}

	if !res.Found {
		printNoPath(res)
		return nil
	}
	printPath(res)
	return nil
}

// memberSummary is the one-line description shown in the picker.
func memberSummary(m *lineage.Member) string {
	s := m.Name
	if m.Nickname != "" {
		s += fmt.Sprintf(" %q", m.Nickname)
	}
	if fam := m.PrimaryFamily(); fam != "" {
		s += " · " + fam
	}
	if m.PledgeClass != "" {
		s += " · " + m.PledgeClass
	}
	return s
}
