// Package converter converts OData CSDL XML metadata (EDMX) into the JSON
// metadata format consumed by OData V4 data-access clients.
//
// The input is an element tree rooted at an edmx:Edmx element. The output is a
// tree of JSON-compatible Go values ([Object], slices, strings, booleans,
// int64 and float64) keyed by namespace and qualified name:
//
//	{
//	  "$Version": "4.0",
//	  "$EntityContainer": "tea_busi.Container",
//	  "tea_busi": {"$kind": "Schema", "$Annotations": {...}},
//	  "tea_busi.Worker": {"$kind": "EntityType", "$Key": ["ID"], "ID": {...}},
//	  "tea_busi.AcChangeTeam": [{"$kind": "Action", "$Parameter": [...]}]
//	}
//
// # Quick Start
//
// Convert a file using functional options:
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithFilePath("metadata.xml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	worker := result.Metadata["tea_busi.Worker"].(converter.Object)
//
// Or convert an element tree that is already in memory:
//
//	metadata, err := converter.ConvertElement(root)
//
// # How Conversion Works
//
// Conversion runs two traversals over the same tree. The first one only visits
// Schema and edmx:Include elements and collects their aliases. The second one
// receives the completed alias table and builds the output, so an alias may be
// used before the element that declares it.
//
// Both traversals are driven by a static configuration graph that names the
// child elements accepted below each element and the processing step that
// applies to each of them. Elements the graph does not know are skipped, which
// keeps the converter tolerant of vocabularies and CSDL extensions it does not
// understand.
//
// Attribute defaults are not written: Nullable only appears as false, OpenType,
// Abstract, HasStream, IsBound, IsComposable and IsFlags only appear as true, and
// an EnumType's UnderlyingType is omitted when it is Edm.Int32.
//
// # Conversion Issues
//
// The converter never fails on unknown input. It records issues instead:
// Info for skipped elements (when [Converter.IncludeInfo] is set) and Warning for
// literals that were kept as boxed strings because they are not representable as
// native JSON numbers. In strict mode any warning fails the conversion.
//
// # Related Packages
//
//   - [github.com/erraggy/edmxconv/xmltree] builds the element tree from XML input
//   - [github.com/erraggy/edmxconv/alias] resolves alias-qualified names and paths
//   - [github.com/erraggy/edmxconv/edmxerrors] defines the error types returned here
package converter
