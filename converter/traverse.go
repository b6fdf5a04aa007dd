package converter

import (
	"fmt"

	"github.com/erraggy/edmxconv/alias"
	"github.com/erraggy/edmxconv/edmxerrors"
	"github.com/erraggy/edmxconv/internal/pathutil"
	"github.com/erraggy/edmxconv/internal/severity"
	"github.com/erraggy/edmxconv/xmltree"
)

// pass identifies which traversal a conversion is running.
type pass int

const (
	// passAliases only records Alias declarations.
	passAliases pass = iota + 1
	// passFull builds the output tree.
	passFull
)

func (p pass) String() string {
	switch p {
	case passAliases:
		return "aliases"
	case passFull:
		return "full"
	}
	return "unknown"
}

// conversion is the state shared by every frame of one traversal.
type conversion struct {
	pass    pass
	result  Object
	aliases alias.Table
	path    *pathutil.PathBuilder
	issues  []ConversionIssue
	log     xmltree.Logger
}

func newConversion(p pass, aliases alias.Table, log xmltree.Logger) *conversion {
	return &conversion{
		pass:    p,
		result:  Object{},
		aliases: aliases,
		path:    pathutil.Get(),
		log:     log.With("pass", p.String()),
	}
}

// release returns the path builder to its pool. The conversion must not be
// used afterwards.
func (cv *conversion) release() {
	pathutil.Put(cv.path)
	cv.path = nil
}

// run traverses the tree rooted at root with the given configuration.
func (cv *conversion) run(root *xmltree.Element, config *node) error {
	cv.path.PushNamed(root.Local, pathName(root))
	defer cv.path.Pop()
	_, err := cv.traverse(root, scope{}, config)
	return err
}

// traverse processes e, then its recognized children in document order, then
// post-processes e with the children's results. Unrecognized children are
// skipped along with their subtrees.
func (cv *conversion) traverse(e *xmltree.Element, s scope, n *node) (any, error) {
	if n.processor != procNone {
		var err error
		if s, err = cv.process(n.processor, e, s); err != nil {
			return nil, err
		}
	}

	var results []any
	for _, child := range e.ChildElements() {
		childNode := n.child(child.Local)
		if childNode == nil {
			cv.skip(child)
			continue
		}

		cv.path.PushNamed(child.Local, pathName(child))
		v, err := cv.traverse(child, s, childNode)
		cv.path.Pop()
		if err != nil {
			return nil, err
		}
		if n.post != postNone {
			results = append(results, v)
		}
	}

	if n.post == postNone {
		return nil, nil
	}
	return cv.postProcess(n.post, e, results, s)
}

// skip reports an element the configuration does not recognize at its position.
// The alias pass ignores most of the document, so only the full pass reports.
func (cv *conversion) skip(e *xmltree.Element) {
	if cv.pass != passFull {
		return
	}
	cv.path.PushNamed(e.Local, pathName(e))
	defer cv.path.Pop()

	path := cv.path.String()
	cv.log.Debug("skipping unrecognized element", "path", path)
	cv.issues = append(cv.issues, ConversionIssue{
		Path:     path,
		Element:  e.Local,
		Message:  "element not recognized at this position; skipped",
		Severity: severity.SeverityInfo,
	})
}

// warn records a warning for e at the current path.
func (cv *conversion) warn(e *xmltree.Element, message, value string) {
	path := cv.path.String()
	cv.log.Warn(message, "path", path, "value", value)
	cv.issues = append(cv.issues, ConversionIssue{
		Path:     path,
		Element:  e.Local,
		Message:  message,
		Severity: severity.SeverityWarning,
		Value:    value,
	})
}

// errorf builds a *edmxerrors.ConversionError for e at the current path.
func (cv *conversion) errorf(e *xmltree.Element, format string, args ...any) error {
	return &edmxerrors.ConversionError{
		Path:    cv.path.String(),
		Element: e.Local,
		Message: fmt.Sprintf(format, args...),
	}
}

// outside reports e being processed without the ancestor it writes into.
func (cv *conversion) outside(e *xmltree.Element, ancestor string) error {
	return cv.errorf(e, "%s element outside of %s", e.Local, ancestor)
}
