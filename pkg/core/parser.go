package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PlaceholderTodo is used when a TODO marker carries no text
const PlaceholderTodo = "TODO"

// ClassifyLine reports whether line is a comment under the default configuration
// and returns its trimmed payload.
func ClassifyLine(line string) (string, bool) {
	return DefaultConfig().ClassifyLine(line)
}

// ClassifyLine reports whether line starts with one of the configured comment
// prefixes and returns the text following it.
func (c Config) ClassifyLine(line string) (string, bool) {
	trimmed := trimSpace(line)
	if trimmed == "" {
		return "", false
	}

	for _, prefix := range c.prefixes() {
		if rest, ok := strings.CutPrefix(trimmed, prefix); ok {
			return trimSpace(rest), true
		}
	}

	return "", false
}

// ExtractTodos collects TODO items from lines using the default configuration
func ExtractTodos(lines []string) []string {
	return DefaultConfig().Extract(slices.Values(lines))
}

// Extract walks lines once, in order, and returns the text of every TODO marker
// found in a comment line. Repeated items are kept.
func (c Config) Extract(lines iter.Seq[string]) []string {
	var todos []string

	for line := range lines {
		if todo, ok := c.matchTodo(line); ok {
			todos = append(todos, todo)
		}
	}

	return todos
}

func (c Config) matchTodo(line string) (string, bool) {
	comment, ok := c.ClassifyLine(line)
	if !ok {
		return "", false
	}

	match := c.findMarker(comment)
	if match == nil {
		return "", false
	}

	re := c.pattern()
	text := comment[match[1]:]
	if idx := re.SubexpIndex("text"); idx > 0 && match[2*idx] >= 0 {
		text = comment[match[2*idx]:match[2*idx+1]]
	}

	text = trimSpace(text)
	if text == "" {
		return PlaceholderTodo, true
	}

	return text, true
}

// findMarker returns the submatch indexes of the first pattern match in comment
// whose marker group is not glued to a letter, digit or underscore. RE2 only
// treats ASCII as word characters for \b, so the check is repeated here with
// Unicode classes.
func (c Config) findMarker(comment string) []int {
	re := c.pattern()
	marker := re.SubexpIndex("marker")

	for offset := 0; offset <= len(comment); {
		loc := re.FindStringSubmatchIndex(comment[offset:])
		if loc == nil {
			return nil
		}

		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += offset
			}
		}

		if marker < 0 || loc[2*marker] < 0 || isBounded(comment, loc[2*marker], loc[2*marker+1]) {
			return loc
		}

		_, size := utf8.DecodeRuneInString(comment[loc[0]:])
		offset = loc[0] + max(size, 1)
	}

	return nil
}

func isBounded(s string, start, end int) bool {
	if before, _ := utf8.DecodeLastRuneInString(s[:start]); start > 0 && isWordRune(before) {
		return false
	}

	if after, _ := utf8.DecodeRuneInString(s[end:]); end < len(s) && isWordRune(after) {
		return false
	}

	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// trimSpace strips Unicode white space and the ASCII information separators U+001C..U+001F.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// ReadTodos extracts TODO items from a UTF-8 text stream. Lines end at "\n",
// "\r\n" or a lone "\r" and may be of any length.
// On any read or decoding error no items are returned.
func (c Config) ReadTodos(r io.Reader) ([]string, error) {
	var readErr error

	todos := c.Extract(func(yield func(string) bool) {
		for line, err := range readLines(r) {
			if err != nil {
				readErr = err
				return
			}
			if !yield(line) {
				return
			}
		}
	})

	if readErr != nil {
		return nil, readErr
	}

	return todos, nil
}

// readLines yields lines split with universal newlines. The first read or
// decoding error is yielded once and ends the sequence.
func readLines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		reader := bufio.NewReader(r)
		lineNum := 0

		for {
			chunk, err := reader.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				yield("", err)
				return
			}

			if chunk != "" {
				chunk = strings.TrimSuffix(chunk, "\n")
				chunk = strings.TrimSuffix(chunk, "\r")

				for _, line := range strings.Split(chunk, "\r") {
					lineNum++
					if !utf8.ValidString(line) {
						yield("", fmt.Errorf("line %d: invalid UTF-8", lineNum))
						return
					}
					if !yield(line, nil) {
						return
					}
				}
			}

			if err != nil {
				return
			}
		}
	}
}

// ReadTodosFromFile opens path and extracts TODO items from it with the default configuration
func ReadTodosFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DefaultConfig().ReadTodos(file)
}
