// Package folio provides a client for the FOLIO Okapi storage APIs.
//
// The client covers the subset of Okapi used to resolve a human-readable
// identifier (HRID) down to physical item records: authentication against
// /authn/login and lookups against the instance, holdings and item storage
// modules. The Operations type drives the full pipeline.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := folio.NewClient(
//		"https://folio.example.com",
//		"diku",
//		logger,
//		folio.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ops := folio.NewOperations(client, logger)
//	groups, err := ops.GetRecords(ctx, "diku_admin", "secret", "1234567890")
//
// # Error handling
//
// Remote-side faults are deliberately soft: a login response without a token
// leaves the client unauthenticated but does not fail, and a response body
// that cannot be decoded makes the affected lookup report zero matches. Only
// transport-level faults (connection refused, DNS failure, cancellation)
// surface as errors.
package folio
