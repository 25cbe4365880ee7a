// Package server provides an HTTP server with an explicit lifecycle and
// graceful shutdown.
//
// A Server is constructed, bound, run and stopped explicitly; nothing is
// created at package level:
//
//	srv := server.New(":3000", server.WithLogger(log))
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(srv.Run(ctx, router))
//	if err := eg.Wait(); err != nil {
//		// bind failure or serve error
//	}
//
// Start binds the TCP listener synchronously. A port that is already in use
// fails with an error wrapping ErrBindFailed before anything is logged;
// after a successful bind the server logs "server started in port <port>".
//
// Configuration can be loaded from the environment:
//
//	type Config struct {
//		Server server.Config
//	}
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
package server
