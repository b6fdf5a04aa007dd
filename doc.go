// Package edmxconv converts OData CSDL XML metadata documents (EDMX) into the
// CSDL JSON representation.
//
// # Overview
//
// The library consists of these packages:
//
//   - xmltree: Parse an XML document into a namespace-stripped element tree
//   - converter: Convert an edmx:Edmx element tree into CSDL JSON
//   - alias: Resolve alias-qualified names against a document's alias table
//   - edmxerrors: Typed errors shared by the packages above
//
// Supported inputs are CSDL XML documents of OData versions 4.0 and 4.01:
//   - OData CSDL XML 4.01: https://docs.oasis-open.org/odata/odata-csdl-xml/v4.01/odata-csdl-xml-v4.01.html
//   - OData CSDL JSON 4.01: https://docs.oasis-open.org/odata/odata-csdl-json/v4.01/odata-csdl-json-v4.01.html
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/edmxconv
//
// # Quick Start
//
// Convert a metadata file:
//
//	import "github.com/erraggy/edmxconv/converter"
//
//	result, err := converter.ConvertWithOptions(converter.WithFilePath("metadata.xml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, err := result.Marshal(converter.FormatJSON)
//
// Convert an element tree that was parsed elsewhere:
//
//	root, err := xmltree.ParseString(document)
//	if err != nil {
//		log.Fatal(err)
//	}
//	metadata, err := converter.ConvertElement(root)
//
// # Conversion
//
// A conversion walks the document twice. The first pass collects every alias
// declared by edmx:Include and Schema elements; the second builds the JSON
// object. Aliases can therefore be used before the element that declares them.
//
// Elements the converter does not recognize are skipped and reported as info
// issues. Values that cannot be represented natively without loss, such as an
// Int literal beyond 2^53-1, are kept as strings and reported as warnings.
// Strict mode turns warnings into an error.
//
// # Command-Line Interface
//
// The edmxconv command wraps the converter:
//
//	edmxconv convert -o metadata.json metadata.xml
//	edmxconv aliases metadata.xml
//	edmxconv mcp
//
// The mcp subcommand serves the converter as Model Context Protocol tools over
// stdio.
package edmxconv
