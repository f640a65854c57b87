package cmd

import (
	"context"
	"errors"
	"strings"

	"github.com/bnema/boxtools-cli/internal/adapters/render/items"
	"github.com/bnema/boxtools-cli/internal/application"
	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/bnema/boxtools-cli/internal/ports"
	"github.com/spf13/cobra"
)

type listingJSON struct {
	Folder itemJSON   `json:"folder"`
	Items  []itemJSON `json:"items"`
}

type treeEntryJSON struct {
	itemJSON
	Depth int `json:"depth"`
}

type userJSON struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Login      string `json:"login"`
	SpaceUsed  int64  `json:"space_used"`
	SpaceTotal int64  `json:"space_total"`
}

func newListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ls [FOLDER...]",
		Short: "List folders (defaults to the current folder)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var folderIDs []domain.ItemID
			if len(args) == 0 {
				folderIDs = []domain.ItemID{a.currentFolder()}
			} else {
				ids, err := a.resolveAll(cmd.Context(), args)
				if err != nil {
					return err
				}
				folderIDs = ids
			}

			service, err := a.remote(cmd.Context())
			if err != nil {
				return err
			}

			var sections []items.Section
			var listings []listingJSON
			for _, id := range folderIDs {
				var folder domain.Item
				var entries []domain.Item
				err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Listing folder...", func(ctx context.Context) error {
					var err error
					folder, entries, err = service.List(ctx, id)
					return err
				})
				if err != nil {
					return err
				}

				sections = append(sections, items.Listing{Folder: folder, Items: entries})
				listings = append(listings, listingJSON{Folder: itemView(folder), Items: itemViews(entries)})
			}

			if asJSON {
				return writeJSON(cmd, listings)
			}
			return writeSections(cmd, sections...)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var itemType string
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Search item names and content",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ports.SearchQuery{Text: strings.Join(args, " "), Limit: limit}
			if itemType != "" {
				parsed, err := domain.ParseItemType(itemType)
				if err != nil {
					return err
				}
				query.Type = parsed
			}

			service, err := a.remote(cmd.Context())
			if err != nil {
				return err
			}

			var found []domain.Item
			err = withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Searching...", func(ctx context.Context) error {
				var err error
				found, err = service.Search(ctx, query)
				return err
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, itemViews(found))
			}
			return writeSections(cmd, items.ItemList{Title: "search " + query.Text, Items: found})
		},
	}

	cmd.Flags().StringVar(&itemType, "type", "", "Restrict to an item type (file|folder|web_link)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newStatCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stat ITEM...",
		Short: "Show item details",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := a.resolveAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			service, err := a.remote(cmd.Context())
			if err != nil {
				return err
			}

			found := make([]domain.Item, 0, len(ids))
			for _, id := range ids {
				item, err := service.Stat(cmd.Context(), id)
				if err != nil {
					return err
				}
				found = append(found, item)
			}

			if asJSON {
				return writeJSON(cmd, itemViews(found))
			}
			return writeSections(cmd, items.ItemList{Items: found})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newPathCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "path ITEM...",
		Short: "Show the full path of items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := a.resolveAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			service, err := a.remote(cmd.Context())
			if err != nil {
				return err
			}

			var sections []items.Section
			var paths [][]itemJSON
			for _, id := range ids {
				path, err := service.Path(cmd.Context(), id)
				if err != nil {
					return err
				}
				sections = append(sections, items.Path{Items: path})
				paths = append(paths, itemViews(path))
			}

			if asJSON {
				return writeJSON(cmd, paths)
			}
			return writeSections(cmd, sections...)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newTreeCmd(a *app) *cobra.Command {
	var depth int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tree [FOLDER]",
		Short: "Walk a folder recursively",
		Long:  "Walk a folder recursively. Interrupting the walk prints what was collected so far.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rootID := a.currentFolder()
			if len(args) == 1 {
				id, err := a.resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				rootID = id
			}

			service, err := a.remote(cmd.Context())
			if err != nil {
				return err
			}

			var entries []application.TreeEntry
			walkErr := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Walking folder...", func(ctx context.Context) error {
				var err error
				entries, err = service.Tree(ctx, rootID, depth)
				return err
			})

			interrupted := errors.Is(walkErr, context.Canceled)
			if walkErr != nil && (!interrupted || len(entries) == 0) {
				return walkErr
			}

			if asJSON {
				out := make([]treeEntryJSON, 0, len(entries))
				for _, entry := range entries {
					out = append(out, treeEntryJSON{itemJSON: itemView(entry.Item), Depth: entry.Depth})
				}
				return writeJSON(cmd, out)
			}
			return writeSections(cmd, items.Tree{Entries: entries, Interrupted: interrupted})
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 0, "Maximum depth below the folder (0 for no limit)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newUserInfoCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "userinfo",
		Short: "Show the logged-in user and storage usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := a.remote(cmd.Context())
			if err != nil {
				return err
			}

			user, err := service.UserInfo(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, userJSON{
					ID:         user.ID,
					Name:       user.Name,
					Login:      user.Login,
					SpaceUsed:  user.SpaceUsed,
					SpaceTotal: user.SpaceTotal,
				})
			}
			return writeSections(cmd, items.User{User: user})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
