package cmd

import (
	"github.com/bnema/boxtools-cli/internal/adapters/render/items"
	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mv ITEM... DEST",
		Short: "Move items into a folder",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := a.resolveAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			service, err := a.remote(cmd.Context())
			if err != nil {
				return err
			}

			dest := ids[len(ids)-1]
			moved := make([]domain.Item, 0, len(ids)-1)
			for _, id := range ids[:len(ids)-1] {
				item, err := service.Move(cmd.Context(), id, dest)
				if err != nil {
					return err
				}
				moved = append(moved, item)
			}

			return writeSections(cmd, items.ItemList{Title: "moved", Items: moved})
		},
	}
}

func newCopyCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "cp ITEM DEST",
		Short: "Copy an item into a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := a.resolveAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			service, err := a.remote(cmd.Context())
			if err != nil {
				return err
			}

			copied, err := service.Copy(cmd.Context(), ids[0], ids[1], name)
			if err != nil {
				return err
			}
			return writeMessage(cmd, "copied to %s", describe(copied))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the copy")

	return cmd
}

func newRenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ITEM NAME",
		Short: "Rename an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			service, err := a.remote(cmd.Context())
			if err != nil {
				return err
			}

			renamed, err := service.Rename(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			return writeMessage(cmd, "renamed to %s", describe(renamed))
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "rm ITEM...",
		Short: "Delete items",
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

			for _, id := range ids {
				label := string(id)
				if item, ok := a.session.History().Get(id); ok {
					label = describe(item)
				}
				if err := service.Remove(cmd.Context(), id, recursive); err != nil {
					return err
				}
				if err := writeMessage(cmd, "removed %s", label); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Delete non-empty folders")

	return cmd
}

func newMakeFolderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir PARENT NAME",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent, err := a.resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			service, err := a.remote(cmd.Context())
			if err != nil {
				return err
			}

			folder, err := service.MakeFolder(cmd.Context(), parent, args[1])
			if err != nil {
				return err
			}
			return writeMessage(cmd, "created %s", describe(folder))
		},
	}
}
