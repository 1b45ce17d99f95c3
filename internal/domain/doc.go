// Package domain contains the core entities of the classroom assistant:
// educational trends, content updates, the in-memory catalog that holds them,
// and the per-process teacher session. It is independent of any specific
// infrastructure or delivery mechanism.
package domain
