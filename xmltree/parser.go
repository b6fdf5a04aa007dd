package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/erraggy/edmxconv/edmxerrors"
)

// DefaultMaxFileSize is the default limit for ParseFile inputs (50MB).
const DefaultMaxFileSize int64 = 50 * 1024 * 1024

// Parser builds element trees from XML input.
type Parser struct {
	// MaxFileSize is the maximum size in bytes accepted by ParseFile.
	// Default: 50MB
	MaxFileSize int64
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{MaxFileSize: DefaultMaxFileSize}
}

// Document is the result of parsing an XML document.
type Document struct {
	// Root is the document element.
	Root *Element
	// SourcePath is the file path the document was read from, or "ParseReader.xml"
	// and "ParseBytes.xml" for in-memory sources.
	SourcePath string
	// LoadTime is the time taken to read and decode the input.
	LoadTime time.Duration
}

func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// ParseFile reads and parses the XML document at path.
func (p *Parser) ParseFile(path string) (*Document, error) {
	start := time.Now()
	maxSize := p.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &edmxerrors.ParseError{Path: path, Message: "cannot stat input", Cause: err}
	}
	if info.Size() > maxSize {
		return nil, &edmxerrors.ParseError{
			Path:    path,
			Message: fmt.Sprintf("file size %d exceeds limit %d", info.Size(), maxSize),
		}
	}

	f, err := os.Open(path) //nolint:gosec // path is supplied by the caller on purpose
	if err != nil {
		return nil, &edmxerrors.ParseError{Path: path, Message: "cannot open input", Cause: err}
	}
	defer func() { _ = f.Close() }()

	doc, err := p.parse(f, path)
	if err != nil {
		return nil, err
	}
	doc.LoadTime = time.Since(start)
	return doc, nil
}

// ParseReader parses an XML document from r.
func (p *Parser) ParseReader(r io.Reader) (*Document, error) {
	start := time.Now()
	doc, err := p.parse(r, "ParseReader.xml")
	if err != nil {
		return nil, err
	}
	doc.LoadTime = time.Since(start)
	return doc, nil
}

// ParseBytes parses an XML document held in memory.
func (p *Parser) ParseBytes(data []byte) (*Document, error) {
	start := time.Now()
	doc, err := p.parse(bytes.NewReader(data), "ParseBytes.xml")
	if err != nil {
		return nil, err
	}
	doc.LoadTime = time.Since(start)
	return doc, nil
}

// ParseString is a convenience function that parses s with default settings and
// returns the document element.
func ParseString(s string) (*Element, error) {
	doc, err := New().ParseReader(strings.NewReader(s))
	if err != nil {
		return nil, err
	}
	return doc.Root, nil
}

// Parse is a convenience function that parses the document read from r with
// default settings and returns the document element.
func Parse(r io.Reader) (*Element, error) {
	doc, err := New().ParseReader(r)
	if err != nil {
		return nil, err
	}
	return doc.Root, nil
}

func (p *Parser) parse(r io.Reader, sourcePath string) (*Document, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charsetReader

	var stack []*Element
	var root *Element

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &edmxerrors.ParseError{Path: sourcePath, Offset: decoder.InputOffset(), Cause: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, &edmxerrors.ParseError{
					Path:    sourcePath,
					Offset:  decoder.InputOffset(),
					Message: fmt.Sprintf("unexpected element %s after document end", t.Name.Local),
				}
			}
			elem := &Element{
				Space: t.Name.Space,
				Local: t.Name.Local,
				Attrs: convertAttrs(t.Attr),
			}
			if len(stack) > 0 {
				stack[len(stack)-1].AppendChild(elem)
			} else {
				root = elem
			}
			stack = append(stack, elem)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].AppendChild(Text(t))
			}

		case xml.Comment:
			if len(stack) > 0 {
				stack[len(stack)-1].AppendChild(Comment(t))
			}
		}
	}

	if root == nil {
		return nil, &edmxerrors.ParseError{Path: sourcePath, Message: "document has no root element", Cause: io.ErrUnexpectedEOF}
	}

	p.log().Debug("parsed XML document", "source", sourcePath, "root", root.Local)
	return &Document{Root: root, SourcePath: sourcePath}, nil
}

func convertAttrs(xmlAttrs []xml.Attr) []Attr {
	attrs := make([]Attr, 0, len(xmlAttrs))
	for _, a := range xmlAttrs {
		attrs = append(attrs, Attr{Space: a.Name.Space, Local: a.Name.Local, Value: a.Value})
	}
	return attrs
}
