// Package edmxerrors defines the errors returned by xmltree and converter.
//
// Each error type matches a sentinel through errors.Is, so callers can branch on
// the failure class without a type assertion and use errors.As when they need
// the details:
//
//	_, err := converter.ConvertWithOptions(converter.WithFilePath("metadata.xml"))
//	switch {
//	case errors.Is(err, edmxerrors.ErrParse):
//		// not well-formed XML
//	case errors.Is(err, edmxerrors.ErrConversion):
//		var convErr *edmxerrors.ConversionError
//		errors.As(err, &convErr)
//		fmt.Println("failed at", convErr.Path)
//	}
package edmxerrors
