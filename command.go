package quickquery

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// command is a statement bound to its arguments for a given dialect.
type command struct {
	id    uuid.UUID
	query string
	args  []any
}

// buildCommand rewrites the @name placeholders of query into positional
// placeholders for the dialect and collects the matching values in order.
// A name used more than once is bound once per occurrence.
//
// Quoted literals, quoted identifiers and comments are copied untouched,
// following the quoting rules of the dialect.
func buildCommand(dialect SQLDialect, query string, params Parameters) (*command, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	var (
		b    strings.Builder
		args []any
	)
	b.Grow(len(query))

	for i := 0; i < len(query); {
		c := query[i]
		end := -1

		switch {
		case c == '\'' || c == '"':
			end = skipQuoted(query, i, c, dialect.backslashEscapes() || isEscapeString(dialect, query, i))

		case c == '`' && dialect.backtickIdentifiers():
			end = skipQuoted(query, i, c, false)

		case c == '$' && dialect.dollarQuoting():
			end = skipDollarQuoted(query, i)

		case c == '-' && i+1 < len(query) && query[i+1] == '-',
			c == '#' && dialect.hashComments():
			end = lineEnd(query, i)

		case c == '/' && i+1 < len(query) && query[i+1] == '*':
			end = strings.Index(query[i+2:], "*/")
			if end < 0 {
				end = len(query)
			} else {
				end += i + 4
			}

		case c == '@' && i+1 < len(query) && query[i+1] == '@':
			// system variable, e.g. @@ROWCOUNT
			end = i + 2
			for end < len(query) && isIdentPart(query[end]) {
				end++
			}

		case c == '@' && i+1 < len(query) && isIdentStart(query[i+1]):
			end = i + 2
			for end < len(query) && isIdentPart(query[end]) {
				end++
			}
			name := query[i+1 : end]
			v, ok := params.lookup(name)
			if !ok {
				return nil, fmt.Errorf("%w: @%s", ErrMissingParameter, name)
			}
			args = append(args, v)
			b.WriteString(dialect.placeholder(len(args)))
			i = end
			continue
		}

		if end <= i {
			b.WriteByte(c)
			i++
			continue
		}
		b.WriteString(query[i:end])
		i = end
	}

	return &command{
		id:    uuid.New(),
		query: b.String(),
		args:  args,
	}, nil
}

// skipQuoted returns the index just past the literal opened by quote at start.
// A doubled quote inside the literal is an escaped quote, and so is a quote
// preceded by a backslash when backslash is set.
func skipQuoted(query string, start int, quote byte, backslash bool) int {
	i := start + 1
	for i < len(query) {
		switch {
		case backslash && query[i] == '\\':
			i += 2
		case query[i] == quote && i+1 < len(query) && query[i+1] == quote:
			i += 2
		case query[i] == quote:
			return i + 1
		default:
			i++
		}
	}
	return len(query)
}

// isEscapeString reports whether the quote at i opens a postgres E'...' string.
func isEscapeString(dialect SQLDialect, query string, i int) bool {
	if dialect != SQLDialectPostgres || query[i] != '\'' || i == 0 {
		return false
	}
	if query[i-1] != 'E' && query[i-1] != 'e' {
		return false
	}
	return i < 2 || !isIdentPart(query[i-2])
}

// skipDollarQuoted returns the index just past the $tag$ ... $tag$ constant
// starting at start, or -1 when the '$' does not open one (e.g. $1).
func skipDollarQuoted(query string, start int) int {
	if start > 0 && (isIdentPart(query[start-1]) || query[start-1] == '$') {
		return -1
	}

	i := start + 1
	if i < len(query) && isIdentStart(query[i]) {
		i++
		for i < len(query) && isIdentPart(query[i]) {
			i++
		}
	}
	if i >= len(query) || query[i] != '$' {
		return -1
	}

	tag := query[start : i+1]
	end := strings.Index(query[i+1:], tag)
	if end < 0 {
		return len(query)
	}
	return i + 1 + end + len(tag)
}

// lineEnd returns the index of the newline ending the comment at start.
func lineEnd(query string, start int) int {
	end := strings.IndexByte(query[start:], '\n')
	if end < 0 {
		return len(query)
	}
	return start + end
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// executeCommand runs cmd once and returns the number of affected rows.
// Driver errors are returned as is.
func executeCommand(ctx context.Context, execer Execer, cmd *command) (int64, error) {
	res, err := execer.ExecContext(ctx, cmd.query, cmd.args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
