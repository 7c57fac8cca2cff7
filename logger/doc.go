// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package logger constructs zap loggers for the server and its tests.

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)

The "json" format uses zap's production config; anything else gets the
development console encoder. NewNop is for tests that need a silent logger;
a testing.T-backed logger lives in testutil with the other test helpers.
*/
package logger
