// Package snapstore persists named snapshot documents behind one Store
// interface, with a local directory backend for everyday work and an S3
// backend for sharing snapshots between machines.
//
// Stores deal in opaque byte documents; encoding and decoding trees is the
// snapshot package's job. Names are flat keys validated by ValidName, and
// every backend maps a name to "<name>.json".
package snapstore
