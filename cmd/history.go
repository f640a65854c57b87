package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/boxtools-cli/internal/adapters/render/items"
	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/bnema/boxtools-cli/internal/state"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

type recentJSON struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ParentID   string `json:"parent_id,omitempty"`
	ParentName string `json:"parent_name,omitempty"`
}

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	var oldestFirst bool
	var pattern string
	var itemType string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "hist",
		Short: "Show remembered items, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, err := historyQuery(limit, oldestFirst, pattern, itemType)
			if err != nil {
				return err
			}

			var found []domain.Item
			for item := range a.session.History().Entries(query) {
				found = append(found, item)
			}

			if asJSON {
				return writeJSON(cmd, itemViews(found))
			}
			return writeSections(cmd, items.ItemList{Title: "history", Items: found})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show only the N most recent matches")
	cmd.Flags().BoolVar(&oldestFirst, "oldest-first", false, "List oldest entries first")
	cmd.Flags().StringVar(&pattern, "glob", "", "Filter names with a case-insensitive glob")
	cmd.Flags().StringVar(&itemType, "type", "", "Filter by item type (file|folder|web_link)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	cmd.AddCommand(newHistoryClearCmd(a), newHistoryForgetCmd(a))

	return cmd
}

func historyQuery(limit int, oldestFirst bool, pattern, itemType string) (state.Query, error) {
	query := state.Query{Order: state.NewestFirst, Limit: limit}
	if oldestFirst {
		query.Order = state.OldestFirst
	}

	var filters []func(domain.Item) bool
	if pattern != "" {
		g, err := glob.Compile(strings.ToLower(pattern))
		if err != nil {
			return state.Query{}, fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
		filters = append(filters, func(item domain.Item) bool {
			return g.Match(strings.ToLower(item.Name))
		})
	}
	if itemType != "" {
		parsed, err := domain.ParseItemType(itemType)
		if err != nil {
			return state.Query{}, err
		}
		filters = append(filters, func(item domain.Item) bool {
			return item.Type == parsed
		})
	}

	if len(filters) > 0 {
		query.Filter = func(item domain.Item) bool {
			for _, keep := range filters {
				if !keep(item) {
					return false
				}
			}
			return true
		}
	}
	return query, nil
}

func newHistoryClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget every remembered item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			count := a.session.History().Len()
			a.session.ClearHistory()
			return writeMessage(cmd, "forgot %d items", count)
		},
	}
}

func newHistoryForgetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "forget ITEM...",
		Short: "Forget specific items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := a.resolveAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			return writeMessage(cmd, "forgot %d items", a.session.Forget(ids...))
		},
	}
}

func newRecentCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "lsh",
		Short: "Show recently listed folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			folders := a.session.Recent().All()
			if asJSON {
				out := make([]recentJSON, 0, len(folders))
				for _, folder := range folders {
					out = append(out, recentJSON{
						ID:         string(folder.ID),
						Name:       folder.Name,
						ParentID:   string(folder.ParentID),
						ParentName: folder.ParentName,
					})
				}
				return writeJSON(cmd, out)
			}
			return writeSections(cmd, items.Recent{Folders: folders})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget recently listed folders",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a.session.ClearRecent()
			return nil
		},
	})

	return cmd
}
