// Package xmltree builds the minimal element tree that the converter walks.
//
// The tree keeps what a CSDL conversion needs from a DOM: element local names,
// attributes in document order and child nodes (elements, text and comments) in
// document order. Namespace prefixes are not preserved; element and attribute
// names are matched by local name.
//
// # Quick Start
//
//	doc, err := xmltree.New().ParseFile("metadata.xml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(doc.Root.Local) // "Edmx"
//
// Documents that declare a non-UTF-8 encoding in the XML declaration
// (for example ISO-8859-1 or windows-1252) are decoded through the IANA
// charset index of golang.org/x/text.
//
// # Building Trees in Code
//
// Trees can also be assembled directly, which is convenient when the metadata
// comes from another DOM implementation:
//
//	root := xmltree.NewElement("Edmx", xmltree.A("Version", "4.0"))
//	root.AppendChild(xmltree.NewElement("DataServices"))
package xmltree
