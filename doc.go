// Package cbcloud provides a native Go client for the Carbon Black Cloud
// REST API.
//
// # Features
//
//   - Service-based architecture for expandability
//   - Modern Go 1.25+ iterators for pagination
//   - Typed errors for precise error handling
//   - Functional options for flexible configuration
//   - v6 compatibility layer over the v7 alert API
//
// # Quick Start
//
//	client, err := cbcloud.NewClient(
//	    cbcloud.WithBaseURL("https://defense.conferdeploy.net"),
//	    cbcloud.WithToken("ABCDEFGHIJKLMNO/ABCD1234"),
//	    cbcloud.WithOrgKey("ABCD1234"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Search alerts
//	query := cbcloud.NewQuery().
//	    AddCriteria("device_os", "LINUX").
//	    SetMinimumSeverity(7)
//
//	for alert, err := range client.Alerts.Search(ctx, query) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("Alert: %s (%s)\n", alert.ID, alert.Type)
//	}
//
// Credentials can also come from a profile file with environment overrides:
//
//	client, err := cbcloud.NewClientFromProfile("credentials.cbc.yaml", "default")
//
// # Legacy Compatibility
//
// Applications written against the deprecated v6 API keep working through
// two compatibility layers. The legacy query setters map old filter
// dimensions onto v7 criteria keys:
//
//	query := cbcloud.NewQuery().SetDeviceIDs(123).SetReputations("PUP")
//
// And alerts fetched from the v7 API can be rendered in the v6 document
// shape:
//
//	alert, err := client.Alerts.Get(ctx, id)
//	legacy, err := alert.ToLegacyJSON()
//
// # Error Handling
//
// The package uses typed errors that can be inspected with errors.As:
//
//	alert, err := client.Alerts.Get(ctx, "invalid-id")
//	if err != nil {
//	    var notFound *cbcloud.NotFoundError
//	    if errors.As(err, &notFound) {
//	        // Handle not found
//	    }
//	}
//
// # Pagination
//
// Use iterators for automatic pagination:
//
//	// Iterate over all results
//	for alert, err := range client.Alerts.Search(ctx, query) {
//	    // ...
//	}
//
//	// Collect all results into a slice
//	alerts, err := cbcloud.Collect(client.Alerts.Search(ctx, query))
//
//	// Or use manual pagination
//	page, err := client.Alerts.SearchPage(ctx, query, &cbcloud.PageOptions{
//	    Start: 0,
//	    Rows:  100,
//	})
package cbcloud
