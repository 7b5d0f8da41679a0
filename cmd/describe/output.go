package main

import (
	"dungeon-lore/internal/describe"
	"dungeon-lore/internal/formatted"
	"dungeon-lore/internal/item"
	"dungeon-lore/internal/monster"
	"fmt"
	"io"
)

func writeListing(w io.Writer, s *formatted.String, tagged bool) error {
	text := s.String()
	if tagged {
		text = s.Tagged()
	}
	_, err := io.WriteString(w, text)
	return err
}

func writeJSON(w io.Writer, d *describe.Describer, ss describe.Spellset, source *item.Book, mi *monster.Info) error {
	data, err := d.MarshalSpellset(ss, source, mi)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
