// Package sonnys provides types, interfaces, and helpers for working with
// the Sonny's CarWash Controls Data API.
//
// # Overview
//
// The sonnys package defines the domain types (e.g., Customer, Transaction,
// Recurring, Washbook) and the interfaces for resource-oriented clients
// (e.g., CustomersClient, TransactionsClient, StatsClient). A concrete
// implementation of these clients is provided by the sonnysclient package,
// which wires configuration, transport, rate limiting, and retry. Most
// consumers should import sonnysclient to construct a client and then
// interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/washmetrics/sonnys-go/pkg/sonnys"
//	  "github.com/washmetrics/sonnys-go/pkg/sonnysclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := sonnysclient.New(&sonnys.Config{APIID: "id", APIKey: "key"})
//	  if err != nil { log.Fatal(err) }
//
//	  sites, err := cli.Sites().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = sites
//	}
//
// List endpoints paginate to completion automatically; a List call returns
// every matching record, not one page.
//
// # Errors
//
// Failed exchanges are represented by ConnectionError and StatusError, the
// latter classified into an ErrorKind by status code. Helpers such as
// IsNotFound, IsRateLimit, and IsAuth make it easy to branch on common
// cases. Only 429 responses are retried, transparently, inside the HTTP
// pipeline; every other error surfaces to the caller unchanged.
//
// # Stats
//
// StatsClient computes business KPIs (sales, wash volume, membership
// conversion) client-side from bulk transaction listings. Report collapses
// the fetches for all KPIs of a period into one shared set of bulk calls.
//
// # Hooks
//
// HookChain carries structured observability events (request issued,
// response status and elapsed time, rate-limit waits, 429 retries) to
// whatever logging or metrics infrastructure the application provides.
package sonnys
