// Package highrise provides a client for the Highrise CRM XML API.
//
// Highrise exposes people, companies and categories as XML documents under
// https://<account>.highrisehq.com/<endpoint>.xml. This package maps those
// documents to typed Go values and back.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Transport: one authenticated HTTP call per request, returning a Response
//     that is either an entity record or a no-content acknowledgement
//   - Entity mapping: per-entity field tables (schema) that decode and encode
//     record trees, including the nested contact-data collections
//   - Pagination: offset paging in steps of 500 until an empty page
//   - API: the interface implemented by Client, for testability
//
// # Usage
//
// Create a client with the account subdomain and an API token:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := highrise.NewClient("acme", "your-api-token", logger,
//		highrise.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	people, err := client.GetPeopleSince(ctx, "20240101000000")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// The package defines several error types:
//
//   - ErrInvalidConfig: Invalid client configuration
//   - ErrInvalidTimestamp: since value not in YYYYMMDDHHMMSS form (TimestampError)
//   - ErrMissingField: a required field was absent (FieldError)
//   - ErrUnknownCategoryKind: category kind other than task or deal
//   - ErrEmptyResponse: no body where an entity was expected
//   - APIError: non-2xx responses with status code and body
//   - ParseError: a body that could not be turned into entities
//   - MappingError: the index of the list element that failed to map
//
// API errors include helper methods for classification:
//
//	var apiErr *highrise.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// Handle missing record
//	}
package highrise
