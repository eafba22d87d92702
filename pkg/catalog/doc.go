// Package catalog provides an embedded Go client for the catalogd
// resource search service, backed by Redis with the search and JSON
// modules.
//
// The client wires the same pipeline the HTTP API uses, without the
// HTTP layer:
//
//	client, _ := catalog.New(ctx, catalog.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	page, _ := client.Search(ctx, catalog.SearchQuery{
//	    Text: "riscv boot",
//	    MustInclude: map[string][]string{"category": {"kernel"}},
//	    Sort: "date",
//	})
//	for _, doc := range page.Documents {
//	    fmt.Println(doc["id"])
//	}
package catalog
