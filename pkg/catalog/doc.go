// Package catalog holds the tools users can subscribe to.
//
// The catalog is read-only over HTTP. Tools are created and updated out of
// band through Import, which the catalog command feeds from a YAML file.
//
// Resolve accepts the loose tool reference clients send at checkout: a string
// made only of ASCII digits is treated as an id, anything else as a name
// matched case-insensitively.
//
//	tool, err := svc.Resolve(ctx, "GPT Helper")
//	if errors.Is(err, catalog.ErrToolNotFound) {
//		// 404
//	}
package catalog
