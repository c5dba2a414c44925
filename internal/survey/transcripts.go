package survey

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var transcriptSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

// transcriptID slugifies a transcript filename into a stable identifier.
func transcriptID(fileName string) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	slug := transcriptSlugRe.ReplaceAllString(strings.ToLower(base), "-")
	return strings.Trim(slug, "-")
}

// LoadTranscripts reads every .txt file in dir, sorted by filename. Empty
// and unreadable files are dropped so one bad upload cannot break the whole
// pipeline.
func LoadTranscripts(dir string) ([]TranscriptDocument, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read transcripts dir: %w", err)
	}

	var names []string
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(ent.Name()), ".txt") {
			names = append(names, ent.Name())
		}
	}
	sort.Strings(names)

	docs := make([]TranscriptDocument, 0, len(names))
	for _, name := range names {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		text := strings.TrimSpace(string(b))
		if text == "" {
			continue
		}
		docs = append(docs, TranscriptDocument{
			ID:       transcriptID(name),
			FileName: name,
			Text:     text,
		})
	}
	return docs, nil
}
