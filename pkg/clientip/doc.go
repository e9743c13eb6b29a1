// Package clientip resolves the address of the client behind proxies and
// CDNs. GetIP checks CF-Connecting-IP, DO-Connecting-IP, X-Forwarded-For and
// X-Real-IP in that order, then RemoteAddr. Headers are trusted as sent, so
// only rely on them behind a proxy that overwrites them.
package clientip
