// Package testutil provides utilities for testing ccsync components.
//
// Key components:
//   - TestEnvironment: a project root on an afero filesystem plus its Config
//   - FileTree: declarative file setup
//   - CaptureLogs: routes the global zerolog logger into a buffer
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated only where a real directory is
//     required (git repositories, subprocesses)
//   - Define test data inline
package testutil
