package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/utils"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printBookmarks выводит таблицу ID / TITLE / LINK.
func printBookmarks(w io.Writer, list []models.Bookmark) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "no bookmarks")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tLINK")
	for _, b := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", b.ID, b.Title, utils.Deref(b.Link, "-"))
	}
	return tw.Flush()
}
