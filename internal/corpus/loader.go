package corpus

import (
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Load walks the corpus root and normalizes every recognized source file.
// Tabular (.csv) sources become product units; free-text sources become
// document units, one per file, not yet split into windows. Files of any
// other kind are ignored, and unreadable files are skipped with a log
// line rather than failing the run.
func Load(root string) (products, docs []Unit, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv":
			units, err := LoadProducts(path)
			if err != nil {
				log.Printf("skipping %s: %v", path, err)
				return nil
			}
			log.Printf("loaded %s: %d products", filepath.Base(path), len(units))
			products = append(products, units...)
		case ".txt", ".md", ".markdown", ".pdf":
			u, err := LoadDocument(path)
			if err != nil {
				log.Printf("skipping %s: %v", path, err)
				return nil
			}
			log.Printf("loaded %s: %d chars", u.Source, utf8.RuneCountInString(u.Content))
			docs = append(docs, u)
		}
		return nil
	})
	return products, docs, err
}
