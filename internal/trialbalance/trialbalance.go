// Package trialbalance reads delimited TEA trial balance exports. Files are
// headerless: each row carries an account code followed by up to three
// amount columns (current year actual, budget, prior year actual).
package trialbalance

import (
	"io"
	"strings"

	"github.com/afrgen-dev/afrgen/internal/model"
)

// Parser converts a delimited trial balance file into rows.
type Parser interface {
	Parse(r io.Reader) ([]model.TrialBalanceRow, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats lists the registered format names.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewCSVParser())
	r.Register(NewTSVParser())
	return r
}

// FormatForFile picks a parser format from a file name: .tsv and .txt use
// the tab reader, everything else the comma reader.
func FormatForFile(name string) string {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".tsv") || strings.HasSuffix(lower, ".txt") {
		return "tsv"
	}
	return "csv"
}
