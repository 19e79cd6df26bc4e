package pairtable

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strconv"
)

// Format selects the source syntax a table is rendered in.
type Format string

// Supported formats.
const (
	// FormatCPP renders a static std::map initializer.
	FormatCPP Format = "cpp"
	// FormatGo renders a map[[2]string]bool variable.
	FormatGo Format = "go"
)

// Defaults used when the corresponding [Options] field is empty.
const (
	DefaultCPPTableName = "sk_validatorTests"
	DefaultGoTableName  = "validatorTests"
	DefaultKeyType      = "rpn::StrictTypeValidator"
)

// ParseFormat returns the [Format] named by s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCPP, FormatGo:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownFormat, s, FormatCPP, FormatGo)
	}
}

// Options configures [Render] and [Write]. The zero value renders the
// default C++ table.
type Options struct {
	// Format defaults to [FormatCPP].
	Format Format

	// TableName is the identifier of the declared table. It must be a Go
	// identifier for go output and a C identifier for cpp output.
	// Defaults to [DefaultCPPTableName] or [DefaultGoTableName].
	TableName string

	// KeyType is the element type of the std::pair key (cpp only).
	// Defaults to [DefaultKeyType].
	KeyType string

	// Package, if set, prepends a package clause (go only).
	Package string
}

// DefaultOptions returns the options [Generate] renders with.
func DefaultOptions() Options {
	return Options{
		Format:    FormatCPP,
		TableName: DefaultCPPTableName,
		KeyType:   DefaultKeyType,
	}
}

func (o Options) withDefaults() Options {
	if o.Format == "" {
		o.Format = FormatCPP
	}

	if o.TableName == "" {
		if o.Format == FormatGo {
			o.TableName = DefaultGoTableName
		} else {
			o.TableName = DefaultCPPTableName
		}
	}

	if o.KeyType == "" {
		o.KeyType = DefaultKeyType
	}

	return o
}

// checkNames rejects names that would change the shape of the emitted
// declaration instead of naming it.
func (o Options) checkNames() error {
	switch o.Format {
	case FormatGo:
		if !token.IsIdentifier(o.TableName) {
			return fmt.Errorf("%w: table name %q", ErrInvalidName, o.TableName)
		}

		if o.Package != "" && !token.IsIdentifier(o.Package) {
			return fmt.Errorf("%w: package %q", ErrInvalidName, o.Package)
		}
	case FormatCPP:
		if !isCIdentifier(o.TableName) {
			return fmt.Errorf("%w: table name %q", ErrInvalidName, o.TableName)
		}
	}

	return nil
}

// isCIdentifier reports whether s is [A-Za-z_][A-Za-z0-9_]*.
func isCIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}

// Generate renders catalogue as the default C++ table.
//
// Identical catalogues always produce byte-identical text. An empty catalogue
// yields only the declaration header and terminator.
func Generate(catalogue []string) string {
	var buf bytes.Buffer

	renderCPP(&buf, catalogue, DefaultOptions())

	return buf.String()
}

// Render renders catalogue in the layout described by opts.
func Render(catalogue []string, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	err := opts.checkNames()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	switch opts.Format {
	case FormatCPP:
		renderCPP(&buf, catalogue, opts)

		return buf.Bytes(), nil
	case FormatGo:
		return renderGo(&buf, catalogue, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

// Write renders catalogue and writes the result to w in a single call.
func Write(w io.Writer, catalogue []string, opts Options) error {
	data, err := Render(catalogue, opts)
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}

// renderCPP writes:
//
//	static const std::map<std::pair<K,K>, bool> NAME = {
//	  { { v1, v2 }, true },
//	};
//
// Entry lines keep a trailing space after the comma and the terminator is
// followed by a blank line; generated fixtures are diffed byte for byte.
func renderCPP(buf *bytes.Buffer, catalogue []string, opts Options) {
	fmt.Fprintf(buf, "static const std::map<std::pair<%s,%s>, bool> %s = {\n",
		opts.KeyType, opts.KeyType, opts.TableName)

	for _, e := range Build(catalogue) {
		buf.WriteString("  { { ")
		buf.WriteString(e.First)
		buf.WriteString(", ")
		buf.WriteString(e.Second)
		buf.WriteString(" }, ")
		buf.WriteString(strconv.FormatBool(e.Identical))
		buf.WriteString(" }, \n")
	}

	buf.WriteString("};\n\n")
}

func renderGo(buf *bytes.Buffer, catalogue []string, opts Options) ([]byte, error) {
	if opts.Package != "" {
		fmt.Fprintf(buf, "package %s\n\n", opts.Package)
	}

	fmt.Fprintf(buf, "var %s = map[[2]string]bool{\n", opts.TableName)

	for _, e := range Build(catalogue) {
		fmt.Fprintf(buf, "\t{%s, %s}: %t,\n", strconv.Quote(e.First), strconv.Quote(e.Second), e.Identical)
	}

	buf.WriteString("}\n")

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGoSourceInvalid, err)
	}

	return formatted, nil
}
