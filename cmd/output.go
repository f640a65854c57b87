package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/boxtools-cli/internal/adapters/render/items"
	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/spf13/cobra"
)

type itemJSON struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	ParentID   string `json:"parent_id,omitempty"`
	ParentName string `json:"parent_name,omitempty"`
}

func itemView(item domain.Item) itemJSON {
	return itemJSON{
		ID:         string(item.ID),
		Name:       item.Name,
		Type:       string(item.Type),
		ParentID:   string(item.ParentID),
		ParentName: item.ParentName,
	}
}

func itemViews(list []domain.Item) []itemJSON {
	out := make([]itemJSON, 0, len(list))
	for _, item := range list {
		out = append(out, itemView(item))
	}
	return out
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSections(cmd *cobra.Command, sections ...items.Section) error {
	rendered, err := items.Render(sections...)
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeMessage(cmd *cobra.Command, format string, args ...any) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
	return err
}

func describe(item domain.Item) string {
	return fmt.Sprintf("%s%s (%s)", items.Sanitize(item.Name), item.Type.Suffix(), item.ID)
}
