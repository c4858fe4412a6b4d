package folio

import "fmt"

// notSuppressed builds the CQL filter shared by every storage lookup: match
// one field exactly and exclude discovery-suppressed records. The value is
// embedded verbatim; percent-encoding happens when the query is put on the
// wire.
func notSuppressed(field, value string) string {
	return fmt.Sprintf(`(%s=="%s" NOT discoverySuppress==true)`, field, value)
}
