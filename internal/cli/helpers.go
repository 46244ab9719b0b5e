package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/NikitaCOEUR/scriptcomplete/internal/action"
	"github.com/NikitaCOEUR/scriptcomplete/internal/buffer"
	"github.com/NikitaCOEUR/scriptcomplete/internal/config"
	"github.com/NikitaCOEUR/scriptcomplete/internal/derrors"
	"github.com/NikitaCOEUR/scriptcomplete/internal/logger"
	"github.com/NikitaCOEUR/scriptcomplete/internal/snippet"
)

// components holds initialized scriptcomplete components
type components struct {
	config   *config.Config
	registry *snippet.Registry
	catalog  *action.Catalog
	log      *logger.Logger
}

// initializeComponents loads the configuration and builds the rule registry
// and action catalog from it. An empty configPath resolves the local or
// global config file; an empty logLevel falls back to the config value.
func initializeComponents(configPath, logLevel string, logOutput io.Writer) (*components, error) {
	if configPath == "" {
		currentDir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		configPath = config.Resolve(currentDir)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	if logOutput == nil {
		logOutput = os.Stderr
	}
	log := logger.New(logLevel, logOutput)

	source := cfg.Source
	if source == "" {
		source = "defaults"
	}
	log.Debug().Str("config", source).Msg("Loaded configuration")

	registry := snippet.NewRegistry(namespaceFrom(cfg.Namespace))
	catalog := action.NewCatalog(registry,
		action.WithWords(cfg.Words...),
		action.WithInserts(insertsFrom(cfg.Inserts)...),
		action.WithInsertFiltering(cfg.FilterInserts),
		action.WithLogger(log.With("catalog")),
	)

	return &components{
		config:   cfg,
		registry: registry,
		catalog:  catalog,
		log:      log,
	}, nil
}

// namespaceFrom converts the configured prefixes to a snippet namespace
func namespaceFrom(ns config.NamespaceConfig) snippet.Namespace {
	return snippet.Namespace{
		Types:  ns.Types,
		Props:  ns.Props,
		Keymap: ns.Keymap,
	}
}

// insertsFrom converts configured inserts to catalog inserts
func insertsFrom(inserts []config.InsertConfig) []action.Insert {
	out := make([]action.Insert, 0, len(inserts))
	for _, ins := range inserts {
		out = append(out, action.Insert{Name: ins.Name, Text: ins.Text})
	}
	return out
}

// InputParams describes where the edited text and caret come from
type InputParams struct {
	// Line is a single line of text with the caret at its end
	Line string
	// File is a path to read, "-" for stdin
	File string
	// Row is the 1-based caret row in File, 0 for the last line
	Row int
	// Col is the caret column in bytes, negative for the end of the line
	Col int
	// Stdin is read when File is "-"
	Stdin io.Reader
}

// input is a document plus what is needed to print it back
type input struct {
	doc             *buffer.Document
	trailingNewline bool
}

// readInput builds the document described by p
func readInput(p InputParams) (*input, error) {
	if p.File == "" {
		col := p.Col
		if col < 0 {
			col = len(p.Line)
		}
		return &input{doc: buffer.NewDocument(p.Line, 0, col)}, nil
	}

	if p.Line != "" {
		return nil, derrors.NewInputError("flags", "use either --line or --file, not both", nil)
	}

	var (
		content []byte
		err     error
	)
	if p.File == "-" {
		stdin := p.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(p.File)
	}
	if err != nil {
		return nil, derrors.NewInputError(p.File, "failed to read input", err)
	}

	text := string(content)
	trailing := strings.HasSuffix(text, "\n")
	if trailing {
		text = strings.TrimSuffix(text, "\n")
	}

	lines := strings.Split(text, "\n")
	row := len(lines) - 1
	if p.Row > 0 {
		if p.Row > len(lines) {
			return nil, derrors.NewInputError(p.File, fmt.Sprintf("row %d is past the last line (%d)", p.Row, len(lines)), nil)
		}
		row = p.Row - 1
	}

	col := p.Col
	if col < 0 {
		col = len(lines[row])
	}

	return &input{
		doc:             buffer.NewDocument(text, row, col),
		trailingNewline: trailing,
	}, nil
}

// text returns the document text, restoring a trailing newline read from a file
func (in *input) text() string {
	if in.trailingNewline {
		return in.doc.Text() + "\n"
	}
	return in.doc.Text()
}

// kindOf names the source of an action
func kindOf(a action.Action) string {
	switch a.(type) {
	case *action.WordExtend:
		return "word"
	case *action.TextInsert:
		return "insert"
	case *action.DynamicSnippet:
		return "snippet"
	default:
		return "unknown"
	}
}

// outputOrStdout defaults a nil writer to stdout
func outputOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
