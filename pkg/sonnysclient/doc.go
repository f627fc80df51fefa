// Package sonnysclient is the entry point for building API clients.
//
// The typical usage is:
//
//	client, err := sonnysclient.New(&sonnys.Config{
//		APIID:  os.Getenv("SONNYS_API_ID"),
//		APIKey: os.Getenv("SONNYS_API_KEY"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sites, err := client.Sites().List(ctx)
//
// See the sonnys package for the client interface, configuration, typed
// records, and error taxonomy.
package sonnysclient
