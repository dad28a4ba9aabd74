// Package toolchain abstracts running external command-line tools.
//
// Every interaction with an external CLI goes through the Runner interface:
// resolving a tool on PATH, running a command with inherited stdio, or
// running one and capturing its output. Production code uses ExecRunner;
// tests substitute Recorder to assert on the exact invocation sequence
// without touching real tools.
package toolchain
