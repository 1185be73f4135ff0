// Package tdclient turns a TDLib-style actor's single multiplexed
// notification channel into per-request callbacks, a blocking call
// primitive and a standing subscriber for unsolicited updates.
//
// The actor itself is an external collaborator injected behind the
// Transport interface: requests go out tagged with a correlation
// identifier, and responses come back on one shared channel tagged
// with the same identifier. This package correlates and dispatches; it
// never interprets payloads.
//
// # Basic Usage
//
//	client := tdclient.New(transport,
//	    tdclient.WithAPICredentials(apiID, apiHash),
//	    tdclient.WithCredentials(tdclient.NewReaderCredentialSource(os.Stdin, os.Stdout)),
//	)
//	defer client.Close()
//
//	if err := client.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Blocks until the authorization handshake completes, then until
//	// the response for this request arrives.
//	env, err := client.Execute(ctx, getMe{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if env.IsError() {
//	    // transport-reported error payload, routed like any response
//	}
//
// # Unsolicited Updates
//
// Notifications carrying identifier 0 belong to no specific request.
// Register standing callbacks for them; each setter preserves the
// other two:
//
//	client.SetUpdateCallback(func(env tdclient.Envelope) { ... })
//	client.SetErrorCallback(func(env tdclient.Envelope) { ... })
//	client.SetCloseCallback(func() { ... })
//
// # Authorization
//
// The client drives the actor's setup handshake automatically:
// configuration parameters and the encryption key check are answered
// from options, and the interactive states delegate to the configured
// CredentialSource. Calls made through Execute and ExecuteAsync block
// until the handshake reaches its ready state.
//
// # Logging
//
// By default, logging is disabled. Use WithLogger to enable it:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	client := tdclient.New(transport, tdclient.WithLogger(logger))
package tdclient
