package corpus

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
)

// Generator defaults.
const (
	DefaultSize = 6 * 1024 * 1024
	DefaultSeed = 42
)

// GenerateOptions controls Generate.
type GenerateOptions struct {
	// Size is the minimum number of bytes to write.
	Size int
	Seed uint64
}

var (
	words = []string{
		"the", "be", "to", "of", "and", "a", "in", "that", "have", "I",
		"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
		"this", "but", "his", "by", "from", "they", "we", "say", "her", "she",
		"function", "return", "if", "else", "while", "for", "var", "const", "let",
		"import", "export", "class", "interface", "type", "struct", "package",
		"server", "client", "request", "response", "data", "file", "config",
	}

	logLevels    = []string{"error", "warning", "fatal", "critical"}
	httpVersions = []string{"HTTP/1.0", "HTTP/1.1", "HTTP/2.0"}
	emails       = []string{"user@example.com", "admin@test.org", "info@company.net", "support@example.com"}
	filenames    = []string{"readme.txt", "config.log", "notes.md", "data.txt", "server.log", "docs.md"}
	uris         = []string{
		"http://example.com/path/to/resource",
		"https://api.github.com/repos/user/repo?page=1",
		"ftp://files.server.net/downloads/file.zip",
		"https://www.google.com/search?q=regex#results",
	}
	ips = []string{
		"192.168.1.1", "10.0.0.255", "172.16.0.1", "255.255.255.0",
		"8.8.8.8", "127.0.0.1", "203.0.113.42", "198.51.100.7",
	}
	fruits = []string{
		"apple", "banana", "cherry", "date", "elderberry", "fig",
		"grape", "honeydew", "kiwi", "lemon", "mango", "orange",
	}
	versions = []string{
		"1.0.0", "2.1.3", "3.14.159", "10.20.30", "0.9.1", "4.5.6",
		"1.2.3", "7.8.9", "12.0.1", "2.0.0", "5.4.3", "99.99.99",
	}
)

type lineGen struct {
	rng *rand.Rand
}

func (g *lineGen) pick(list []string) string {
	return list[g.rng.IntN(len(list))]
}

func (g *lineGen) words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = g.pick(words)
	}
	return strings.Join(parts, " ")
}

// line returns the n-th line (1-based). Some line numbers carry a sample
// that each benchmark pattern is guaranteed to hit.
func (g *lineGen) line(n int) string {
	switch {
	case n%500 == 1:
		return fmt.Sprintf("%s 200 OK %s", g.pick(httpVersions), g.words(5))
	case n%100 == 2:
		return fmt.Sprintf("[%s] %s %s", g.pick(logLevels), g.words(8), g.pick(filenames))
	case n%150 == 3:
		return fmt.Sprintf("Contact: %s for %s", g.pick(emails), g.words(6))
	case n%80 == 4:
		return fmt.Sprintf("File: %s - %s", g.pick(filenames), g.words(7))
	case n%120 == 5:
		return fmt.Sprintf("Link: %s %s", g.pick(uris), g.words(5))
	case n%90 == 6:
		return fmt.Sprintf("Server %s responded with %s", g.pick(ips), g.words(4))
	case n%70 == 7:
		return fmt.Sprintf("Fresh %s available at the market %s", g.pick(fruits), g.words(5))
	case n%60 == 8:
		return fmt.Sprintf("Updated to version %s with %s", g.pick(versions), g.words(6))
	default:
		return g.words(8 + g.rng.IntN(12))
	}
}

// Generate writes a deterministic newline-terminated text corpus of at
// least opts.Size bytes to w and returns the number of bytes written.
func Generate(w io.Writer, opts GenerateOptions) (int, error) {
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}

	g := &lineGen{rng: rand.New(rand.NewPCG(opts.Seed, opts.Seed))}
	bw := bufio.NewWriter(w)

	written := 0
	for n := 1; written < opts.Size; n++ {
		k, err := bw.WriteString(g.line(n) + "\n")
		written += k
		if err != nil {
			return written, err
		}
	}

	return written, bw.Flush()
}
