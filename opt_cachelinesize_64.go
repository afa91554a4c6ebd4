//go:build htab_opt_cachelinesize_64

package htab

// CacheLineSize is pinned to 64 bytes when built with the
// `htab_opt_cachelinesize_64` tag, regardless of the target architecture.
const CacheLineSize = 64
