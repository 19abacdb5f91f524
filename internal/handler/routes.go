package handler

// DefaultBasePath is the base prefix stripped from clean URLs before the path
// is split into segments. Keep a single source of truth to avoid path drift
// across handlers and tests.
const DefaultBasePath = "/v1"
