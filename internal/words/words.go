// Package words loads language packs from a languages index and per-language
// word files, either from a directory on disk or from the data embedded in
// the binary.
//
// Layout of a data directory:
//
//	languages.yaml   list of {id, label, flag, file, disabled}
//	<file>           {answers: [...], words: [...]}
//
// Word files are YAML; JSON files parse too. Entries that are not five
// letters A-Z after trimming and upper-casing are dropped and counted.
package words

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-wordle/internal/registry"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// IndexFile is the name of the languages index inside a data directory.
const IndexFile = "languages.yaml"

//go:embed data
var embedded embed.FS

// ErrNoIndex is returned when a directory has no languages index.
var ErrNoIndex = errors.New("no " + IndexFile)

// Embedded returns the language data compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory
	}
	return sub
}

// Entry is one language in the index.
type Entry struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label"`
	Flag     string `yaml:"flag"`
	File     string `yaml:"file"`
	Disabled bool   `yaml:"disabled"`
}

// List is the on-disk shape of a word file.
type List struct {
	Answers []string `yaml:"answers"`
	Words   []string `yaml:"words"`
}

// Stats reports what a load kept and dropped for one language.
type Stats struct {
	ID       string
	Answers  int
	Valid    int
	Dropped  int
	Disabled bool
}

// Loader reads language packs from a filesystem.
type Loader struct {
	logger *log.Logger
}

// NewLoader creates a loader. A nil logger discards messages.
func NewLoader(logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{logger: logger}
}

// Load reads every language listed in fsys's index and registers the packs
// in a new registry, in index order.
func (l *Loader) Load(fsys fs.FS) (*registry.Registry, []Stats, error) {
	entries, err := ReadIndex(fsys)
	if err != nil {
		return nil, nil, err
	}

	reg := registry.New()
	stats := make([]Stats, 0, len(entries))
	for _, e := range entries {
		pack, st, err := l.loadEntry(fsys, e)
		if err != nil {
			return nil, nil, err
		}
		if err := reg.Register(pack); err != nil {
			return nil, nil, fmt.Errorf("words: %w", err)
		}
		stats = append(stats, st)
	}

	l.logger.Debug("language packs loaded", "count", reg.Len())
	return reg, stats, nil
}

// ReadIndex parses the languages index at the root of fsys.
func ReadIndex(fsys fs.FS) ([]Entry, error) {
	data, err := fs.ReadFile(fsys, IndexFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("words: %w", ErrNoIndex)
		}
		return nil, fmt.Errorf("words: read %s: %w", IndexFile, err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("words: parse %s: %w", IndexFile, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("words: %s lists no languages", IndexFile)
	}

	for i, e := range entries {
		if strings.TrimSpace(e.ID) == "" {
			return nil, fmt.Errorf("words: %s entry %d has no id", IndexFile, i)
		}
		if e.File == "" && !e.Disabled {
			return nil, fmt.Errorf("words: language %q has no file", e.ID)
		}
	}
	return entries, nil
}

// loadEntry builds the pack for one index entry. A disabled entry without a
// file yields an empty pack that can be listed but not played.
func (l *Loader) loadEntry(fsys fs.FS, e Entry) (*wordle.LanguagePack, Stats, error) {
	info := wordle.PackInfo{
		ID:       e.ID,
		Label:    lo.Ternary(e.Label != "", e.Label, e.ID),
		Flag:     e.Flag,
		Disabled: e.Disabled,
	}

	var list List
	if e.File != "" {
		data, err := fs.ReadFile(fsys, path.Clean(e.File))
		if err != nil {
			return nil, Stats{}, fmt.Errorf("words: language %q: %w", e.ID, err)
		}
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, Stats{}, fmt.Errorf("words: language %q: parse %s: %w", e.ID, e.File, err)
		}
	}

	answers, droppedA := Normalize(list.Answers)
	words, droppedW := Normalize(list.Words)

	pack, err := wordle.NewLanguagePack(info, answers, words)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("words: %w", err)
	}

	st := Stats{
		ID:       e.ID,
		Answers:  pack.AnswerCount(),
		Valid:    pack.ValidCount(),
		Dropped:  droppedA + droppedW,
		Disabled: e.Disabled,
	}
	if st.Dropped > 0 {
		l.logger.Warn("dropped invalid words", "language", e.ID, "file", e.File, "count", st.Dropped)
	}
	l.logger.Debug("language loaded", "language", e.ID, "answers", st.Answers, "valid", st.Valid, "disabled", e.Disabled)
	return pack, st, nil
}

// Normalize trims and upper-cases every entry, drops anything that is not
// five letters A-Z and removes duplicates. It returns the kept words in
// input order and the number of dropped entries.
func Normalize(in []string) ([]string, int) {
	upper := lo.Map(in, func(w string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(w))
	})
	valid := lo.Filter(upper, func(w string, _ int) bool {
		return wordle.ValidateWord(w) == nil
	})
	return lo.Uniq(valid), len(in) - len(valid)
}

// Open resolves the language data to use.
// Search order: customDir -> ~/.wordle/languages -> ./languages -> embedded.
// It returns the filesystem and a description of where it came from.
func Open(customDir string) (fs.FS, string, error) {
	if customDir != "" {
		fsys := os.DirFS(customDir)
		if _, err := fs.Stat(fsys, IndexFile); err != nil {
			return nil, "", fmt.Errorf("words: %s: %w", customDir, ErrNoIndex)
		}
		return fsys, customDir, nil
	}

	for _, dir := range searchDirs() {
		if _, err := os.Stat(filepath.Join(dir, IndexFile)); err == nil {
			return os.DirFS(dir), dir, nil
		}
	}

	return Embedded(), "embedded", nil
}

// searchDirs returns the on-disk directories probed by Open.
func searchDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".wordle", "languages"))
	}
	return append(dirs, "languages")
}

// LoadDefault opens the language data from customDir or the search order and
// loads it.
func LoadDefault(customDir string, logger *log.Logger) (*registry.Registry, error) {
	l := NewLoader(logger)

	fsys, where, err := Open(customDir)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("reading languages", "from", where)

	reg, _, err := l.Load(fsys)
	return reg, err
}
