package marina

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Delimiter separates the fields of a line.
const Delimiter = ","

// fieldCount is the number of fields of a line: name, length, kind, location and amount owed.
const fieldCount = 5

// trimEOL removes the line terminator, if any.
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// ParseLine parses one line of the inventory file:
//
//	name,length,kind,location,owed
//
// The amount owed is the last field and runs to the end of the line, so it may
// contain the delimiter; only its leading number is used. Numbers are read
// permissively (see ParseFeet, ParseMoney and ParseLocation) and an unknown
// kind is read as storage.
//
// It returns an error wrapping ErrMalformedLine if there are fewer than five
// fields, the name is empty or a land location has no bay.
func ParseLine(line string) (Boat, error) {
	fields := strings.SplitN(trimEOL(line), Delimiter, fieldCount)
	if len(fields) < fieldCount {
		return Boat{}, fmt.Errorf("%w: %d fields, want %d", ErrMalformedLine, len(fields), fieldCount)
	}
	name, length, kind, location, owed := fields[0], fields[1], fields[2], fields[3], fields[4]
	if name == "" {
		return Boat{}, fmt.Errorf("%w: empty name", ErrMalformedLine)
	}

	k := ParseKind(kind)
	loc, err := ParseLocation(k, location)
	if err != nil {
		return Boat{}, err
	}
	return NewBoat(name, ParseFeet(length), loc, ParseMoney(owed, DefaultCurrency)), nil
}

// FormatLine formats a boat as a line of the inventory file, terminator included.
//
// The length is written in whole feet: any fraction of a foot is lost.
// The amount owed is written with exactly two decimals.
func FormatLine(b Boat) string {
	var sb strings.Builder
	sb.WriteString(b.Name)
	sb.WriteString(Delimiter)
	sb.WriteString(b.Length.Whole())
	sb.WriteString(Delimiter)
	sb.WriteString(b.Kind().String())
	sb.WriteString(Delimiter)
	if b.Location != nil {
		sb.WriteString(b.Location.Value())
	}
	sb.WriteString(Delimiter)
	sb.WriteString(b.Owed.Fixed())
	sb.WriteString("\n")
	return sb.String()
}

// ParseLines parses every non blank line.
//
// It returns the boats that could be parsed, in order, and the lines that
// could not joined in the error, each as a *LineError.
func ParseLines(lines []string) ([]Boat, error) {
	var boats []Boat
	var errs []error
	for n, line := range lines {
		line = trimEOL(line)
		if line == "" {
			continue
		}
		b, err := ParseLine(line)
		if err != nil {
			errs = append(errs, &LineError{Line: n + 1, Text: line, Err: err})
			continue
		}
		boats = append(boats, b)
	}
	return boats, errors.Join(errs...)
}

// ReadLines reads all lines from r, without their terminator.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return lines, nil
}

// ReadBoats reads and parses every line from r. See ParseLines for the
// meaning of the returned error, unless it wraps ErrIO.
func ReadBoats(r io.Reader) ([]Boat, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return ParseLines(lines)
}

// EncodeBoats writes boats to w, one line each, in the given order.
func EncodeBoats(w io.Writer, boats []Boat) error {
	bw := bufio.NewWriter(w)
	for _, b := range boats {
		if _, err := bw.WriteString(FormatLine(b)); err != nil {
			return fmt.Errorf("failed to write boat %q: %w", b.Name, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write boats: %w", err)
	}
	return nil
}
