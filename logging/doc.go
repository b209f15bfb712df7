// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers injected into the refine, stencil,
// eval and mesh packages.
//
// New returns a logger writing a console core (stderr by default) and,
// when FileConfig.Path is set, a second core rotated by lumberjack. Its
// cleanup func flushes both cores and closes the rotated file. The
// library packages never log through globals: each takes a *zap.Logger
// option and defaults to zap.NewNop().
package logging
