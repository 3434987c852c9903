// Package profilestore provides a thread-safe, in-memory cache of loaded
// profiles, keyed by the reference they were loaded from.
//
// A build invocation loads each profile once and then resolves features from
// it many times, possibly from several goroutines. The store lets every caller
// share the first successfully loaded *profile.Profile. Profiles are immutable,
// so handing out the same pointer is safe.
//
// The store is ephemeral: it lives as long as the app.App that owns it and is
// never invalidated. A profile file edited during an invocation is not
// reloaded.
package profilestore
